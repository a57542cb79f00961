package dbmetrics

import (
	"context"
	"time"

	"github.com/Narayana2527/health-safari-apis/internal/domain"
)

// Repository хранилище документа доступности
type Repository interface {
	Load(ctx context.Context) (*domain.Document, error)
	Save(ctx context.Context, doc *domain.Document) error
}

// Observer принимает замеры вызовов хранилища (реализуется *metrics.Metrics)
type Observer interface {
	ObserveStore(backend, operation string, duration time.Duration, err error)
}

// InstrumentedRepository оборачивает Repository и пишет метрики длительности и ошибок
type InstrumentedRepository struct {
	next     Repository
	observer Observer
	backend  string
}

// Wrap оборачивает репозиторий; при observer == nil возвращает repo как есть
func Wrap(repo Repository, observer Observer, backend string) Repository {
	if observer == nil {
		return repo
	}
	return &InstrumentedRepository{next: repo, observer: observer, backend: backend}
}

func (r *InstrumentedRepository) Load(ctx context.Context) (*domain.Document, error) {
	start := time.Now()
	doc, err := r.next.Load(ctx)
	r.observer.ObserveStore(r.backend, "load", time.Since(start), err)
	return doc, err
}

func (r *InstrumentedRepository) Save(ctx context.Context, doc *domain.Document) error {
	start := time.Now()
	err := r.next.Save(ctx, doc)
	r.observer.ObserveStore(r.backend, "save", time.Since(start), err)
	return err
}
