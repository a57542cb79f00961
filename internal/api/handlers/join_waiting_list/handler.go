package join_waiting_list

import (
	"errors"
	"net/http"

	"github.com/Narayana2527/health-safari-apis/internal/api/handlers"
	joinWaitlist "github.com/Narayana2527/health-safari-apis/internal/usecase/join_waitlist"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgFieldsRequired     = "All fields are required"
	msgNotFound           = "Doctor or date not found"
	msgAmbiguousDoctor    = "Doctor name matches more than one doctor"
)

type Handler struct {
	useCase JoinWaitlistUseCase
	logger  Logger
}

func NewHandler(useCase JoinWaitlistUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /join-waiting-list
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req JoinWaitingListRequest
	if err := handlers.DecodeBody(r, &req); err != nil {
		h.logger.Warn("POST /join-waiting-list - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, joinWaitlist.ErrInvalidInput):
			h.logger.Warn("POST /join-waiting-list - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgFieldsRequired)

		case errors.Is(err, joinWaitlist.ErrDoctorOrDateNotFound):
			h.logger.Warn("POST /join-waiting-list - Not found: doctor=%q, date=%s", req.DoctorName, req.Date)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, joinWaitlist.ErrAmbiguousDoctor):
			h.logger.Warn("POST /join-waiting-list - Ambiguous doctor: doctor=%q", req.DoctorName)
			handlers.RespondConflict(w, msgAmbiguousDoctor)

		default:
			h.logger.Error("POST /join-waiting-list - Failed to join: doctor=%q, date=%s, error=%v", req.DoctorName, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /join-waiting-list - Added: doctor=%q, date=%s, position=%d", result.DoctorName, result.Date, result.Position)
	handlers.RespondJSON(w, http.StatusOK, MessageResponse{Message: result.Message})
}
