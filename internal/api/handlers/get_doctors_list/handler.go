package get_doctors_list

import (
	"net/http"

	"github.com/Narayana2527/health-safari-apis/internal/api/handlers"
)

const msgFetchFailed = "Error fetching doctors list"

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

// Handle GET /get-doctors-list
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.service.DoctorsList(r.Context())
	if err != nil {
		h.logger.Error("GET /get-doctors-list - Failed to get doctors: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgFetchFailed)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, doctors)
}
