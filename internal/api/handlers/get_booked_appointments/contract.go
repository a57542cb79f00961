package get_booked_appointments

import (
	"context"

	"github.com/Narayana2527/health-safari-apis/internal/service/availability/models"
)

type AvailabilityService interface {
	BookedAppointments(ctx context.Context) ([]models.BookedAppointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
