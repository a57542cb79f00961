package document

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisRepository_SaveLoad(t *testing.T) {
	mr, client := newTestRedis(t)
	repo := NewRedisRepository(client, "")

	require.NoError(t, repo.Save(context.Background(), testDocument()))
	assert.True(t, mr.Exists(DefaultRedisKey))

	doc, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testDocument(), doc)
}

func TestRedisRepository_NotFound(t *testing.T) {
	_, client := newTestRedis(t)

	_, err := NewRedisRepository(client, "camp").Load(context.Background())
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestRedisRepository_Corrupted(t *testing.T) {
	mr, client := newTestRedis(t)
	require.NoError(t, mr.Set("camp", "[{"))

	_, err := NewRedisRepository(client, "camp").Load(context.Background())
	assert.ErrorIs(t, err, ErrDecode)
}

func TestRedisRepository_ServerDown(t *testing.T) {
	mr, client := newTestRedis(t)
	mr.Close()

	repo := NewRedisRepository(client, "")
	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrRead)
	assert.ErrorIs(t, repo.Save(context.Background(), testDocument()), ErrWrite)
}
