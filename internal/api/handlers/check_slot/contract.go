package check_slot

import (
	"context"

	"github.com/Narayana2527/health-safari-apis/internal/service/availability/models"
)

type AvailabilityService interface {
	CheckSlot(ctx context.Context, doctorName, date, timeLabel string) (*models.CheckSlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
