package document

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Narayana2527/health-safari-apis/internal/domain"
)

// DefaultRedisKey ключ документа по умолчанию
const DefaultRedisKey = "availability:document"

// RedisRepository хранит документ строкой под одним ключом
type RedisRepository struct {
	client redis.Cmdable
	key    string
}

// NewRedisRepository создает репозиторий поверх клиента Redis
func NewRedisRepository(client redis.Cmdable, key string) *RedisRepository {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisRepository{client: client, key: key}
}

func (r *RedisRepository) Load(ctx context.Context) (*domain.Document, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - get %s: %v", ErrRead, r.key, err)
	}

	return decode("Load", data)
}

func (r *RedisRepository) Save(ctx context.Context, doc *domain.Document) error {
	data, err := encode("Save", doc)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: Save - set %s: %v", ErrWrite, r.key, err)
	}
	return nil
}
