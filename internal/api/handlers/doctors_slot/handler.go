package doctors_slot

import (
	"net/http"

	"github.com/Narayana2527/health-safari-apis/internal/api/handlers"
)

const msgFetchFailed = "Error fetching doctors' slots"

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

// Handle GET /doctors-slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.DoctorsSlotReport(r.Context())
	if err != nil {
		h.logger.Error("GET /doctors-slot - Failed to build report: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgFetchFailed)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, report)
}
