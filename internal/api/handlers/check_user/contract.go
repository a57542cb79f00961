package check_user

import "context"

type AvailabilityService interface {
	UserExists(ctx context.Context, email string) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
