package available_slots

import (
	"context"

	"github.com/Narayana2527/health-safari-apis/internal/service/availability/models"
)

type AvailabilityService interface {
	AvailableSlots(ctx context.Context, date *string) ([]models.AvailableSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
