package get_booked_appointments

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

// Handle GET /get-booked-appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.service.BookedAppointments(r.Context())
	if err != nil {
		h.logger.Error("GET /get-booked-appointments - Failed to get appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, BookedAppointmentsResponse{BookedAppointments: appointments})
}
