package available_slots

import (
	"net/http"

	"github.com/Narayana2527/health-safari-apis/internal/api/handlers"
	"github.com/Narayana2527/health-safari-apis/pkg/ptr"
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

// Handle GET /available-slots
// Query params: date (optional, точное совпадение с датой в документе)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := ptr.NonEmpty(r.URL.Query().Get("date"))

	slots, err := h.service.AvailableSlots(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /available-slots - Failed to get slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /available-slots - Slots retrieved: date=%s, records=%d", ptr.Deref(date, "all"), len(slots))
	handlers.RespondJSON(w, http.StatusOK, AvailableSlotsResponse{AvailableSlots: slots})
}
