package availability

import (
	"context"

	"github.com/Narayana2527/health-safari-apis/internal/domain"
)

// DocumentRepository интерфейс хранилища документа доступности
type DocumentRepository interface {
	Load(ctx context.Context) (*domain.Document, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
