package doctors_slot

import (
	"context"

	"github.com/Narayana2527/health-safari-apis/internal/service/availability/models"
)

type AvailabilityService interface {
	DoctorsSlotReport(ctx context.Context) ([]models.DoctorSlotReport, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
