package book_appointment

import (
	"errors"
	"net/http"

	"github.com/Narayana2527/health-safari-apis/internal/api/handlers"
	bookSlot "github.com/Narayana2527/health-safari-apis/internal/usecase/book_slot"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgFieldsRequired     = "All fields are required"
	msgNotFound           = "Doctor or date not found"
	msgSlotMissing        = "Time slot not found"
	msgAlreadyBooked      = "Slot is already booked"
	msgAmbiguousDoctor    = "Doctor name matches more than one doctor"
)

type Handler struct {
	useCase BookSlotUseCase
	logger  Logger
}

func NewHandler(useCase BookSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /book-appointment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookAppointmentRequest
	if err := handlers.DecodeBody(r, &req); err != nil {
		h.logger.Warn("POST /book-appointment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, bookSlot.ErrInvalidInput):
			h.logger.Warn("POST /book-appointment - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgFieldsRequired)

		case errors.Is(err, bookSlot.ErrDoctorOrDateNotFound):
			h.logger.Warn("POST /book-appointment - Not found: doctor=%q, date=%s", req.DoctorName, req.Date)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookSlot.ErrSlotMissing):
			h.logger.Warn("POST /book-appointment - Slot missing: doctor=%q, date=%s, slot=%s", req.DoctorName, req.Date, req.SelectedSlot)
			handlers.RespondNotFound(w, msgSlotMissing)

		case errors.Is(err, bookSlot.ErrAlreadyBooked):
			h.logger.Warn("POST /book-appointment - Already booked: doctor=%q, date=%s, slot=%s", req.DoctorName, req.Date, req.SelectedSlot)
			handlers.RespondConflict(w, msgAlreadyBooked)

		case errors.Is(err, bookSlot.ErrAmbiguousDoctor):
			h.logger.Warn("POST /book-appointment - Ambiguous doctor: doctor=%q", req.DoctorName)
			handlers.RespondConflict(w, msgAmbiguousDoctor)

		default:
			h.logger.Error("POST /book-appointment - Failed to book: doctor=%q, date=%s, slot=%s, error=%v",
				req.DoctorName, req.Date, req.SelectedSlot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /book-appointment - Booked: doctor=%q, date=%s, slot=%s", result.DoctorName, result.Date, result.TimeLabel)
	handlers.RespondJSON(w, http.StatusOK, MessageResponse{Message: result.Message})
}
