package get_data

import (
	"context"

	"github.com/Narayana2527/health-safari-apis/internal/service/availability/models"
)

type AvailabilityService interface {
	GetDocument(ctx context.Context) (*models.Document, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
