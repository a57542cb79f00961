package txmanager

import (
	"context"
	"sync"
)

// TransactionManager сериализует доступ к документу доступности
// Документ хранится целиком, поэтому любая мутация - это цикл load-modify-save,
// и два таких цикла не должны пересекаться
type TransactionManager struct {
	mu sync.RWMutex
}

// NewTransactionManager создает новый менеджер
func NewTransactionManager() *TransactionManager {
	return &TransactionManager{}
}

// DoSerializable выполняет fn под эксклюзивной блокировкой
// Используется для мутаций (бронирование, лист ожидания)
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Пока ждали блокировку, запрос мог быть отменен
	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(ctx)
}

// DoReadOnly выполняет fn под разделяемой блокировкой
// Читатели не видят документ в процессе записи
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(ctx)
}
