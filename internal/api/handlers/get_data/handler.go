package get_data

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

// Handle GET /get-data
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.GetDocument(r.Context())
	if err != nil {
		h.logger.Error("GET /get-data - Failed to load document: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, doc)
}
