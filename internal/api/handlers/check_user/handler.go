package check_user

import (
	"errors"
	"net/http"

	"github.com/Narayana2527/health-safari-apis/internal/api/handlers"
	"github.com/Narayana2527/health-safari-apis/internal/service/availability"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgEmailRequired      = "Email is required"
	msgServerError        = "Server error"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /check-user
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckUserRequest
	if err := handlers.DecodeBody(r, &req); err != nil {
		h.logger.Warn("POST /check-user - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	exists, err := h.service.UserExists(r.Context(), req.Email.String())
	if err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgEmailRequired)
			return
		}
		h.logger.Error("POST /check-user - Failed to check user: %v", err)
		handlers.RespondJSON(w, http.StatusInternalServerError, CheckUserResponse{Exists: false, Message: msgServerError})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CheckUserResponse{Exists: exists})
}
