package get_other_appointments

import (
	"net/http"

	"github.com/Narayana2527/health-safari-apis/internal/api/handlers"
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

// Handle GET /get-other-appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.service.OtherAppointments(r.Context())
	if err != nil {
		h.logger.Error("GET /get-other-appointments - Failed to get waiting list: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, OtherAppointmentsResponse{OtherAppointments: appointments})
}
