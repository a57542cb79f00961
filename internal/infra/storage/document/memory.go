package document

import (
	"context"
	"sync"

	"github.com/Narayana2527/health-safari-apis/internal/domain"
)

// MemoryRepository хранит сериализованный документ в памяти
// Каждый Load возвращает свежую копию, поэтому вызывающий код не может
// изменить хранимое состояние в обход Save
type MemoryRepository struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryRepository создает репозиторий; doc может быть nil (документ не загружен)
func NewMemoryRepository(doc *domain.Document) (*MemoryRepository, error) {
	r := &MemoryRepository{}
	if doc == nil {
		return r, nil
	}

	data, err := encode("NewMemoryRepository", doc)
	if err != nil {
		return nil, err
	}
	r.data = data
	return r, nil
}

func (r *MemoryRepository) Load(ctx context.Context) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	data := r.data
	r.mu.Unlock()

	if data == nil {
		return nil, ErrDocumentNotFound
	}
	return decode("Load", data)
}

func (r *MemoryRepository) Save(ctx context.Context, doc *domain.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encode("Save", doc)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.data = data
	r.mu.Unlock()
	return nil
}

// Snapshot возвращает копию сохраненных байт
func (r *MemoryRepository) Snapshot() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]byte(nil), r.data...)
}
