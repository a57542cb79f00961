package check_slot

import (
	"errors"
	"net/http"

	"github.com/Narayana2527/health-safari-apis/internal/api/handlers"
	"github.com/Narayana2527/health-safari-apis/internal/service/availability"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgFieldsRequired     = "Doctor name, date, and slot are required"
	msgNotFound           = "Doctor or date not found"
	msgAmbiguousDoctor    = "Doctor name matches more than one doctor"
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

// Handle POST /check-slot
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckSlotRequest
	if err := handlers.DecodeBody(r, &req); err != nil {
		h.logger.Warn("POST /check-slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CheckSlot(r.Context(), req.DoctorName.String(), req.Date.String(), req.SelectedSlot.String())
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgFieldsRequired)

		case errors.Is(err, availability.ErrDoctorOrDateNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, availability.ErrAmbiguousDoctor):
			handlers.RespondConflict(w, msgAmbiguousDoctor)

		default:
			h.logger.Error("POST /check-slot - Failed to check slot: doctor=%q, date=%s, slot=%s, error=%v",
				req.DoctorName, req.Date, req.SelectedSlot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
