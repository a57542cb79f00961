package document

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Narayana2527/health-safari-apis/internal/domain"
	"github.com/Narayana2527/health-safari-apis/pkg/psqlbuilder"
)

const documentsTable = "availability_documents"

// DefaultDocumentName имя строки с документом по умолчанию
const DefaultDocumentName = "main"

// PostgresRepository хранит документ одной строкой JSONB
type PostgresRepository struct {
	db   DBExecutor
	name string
}

// NewPostgresRepository создает репозиторий; name - ключ строки документа
func NewPostgresRepository(db DBExecutor, name string) *PostgresRepository {
	if name == "" {
		name = DefaultDocumentName
	}
	return &PostgresRepository{db: db, name: name}
}

// EnsureSchema создает таблицу документов, если ее нет
// Колонка body имеет тип JSON, а не JSONB: JSONB переупорядочивает ключи объектов,
// а порядок временных меток внутри дня - часть документа
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS ` + documentsTable + ` (
	name       TEXT PRIMARY KEY,
	body       JSON NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("%w: EnsureSchema - create table: %v", ErrWrite, err)
	}
	return nil
}

// Load читает документ
func (r *PostgresRepository) Load(ctx context.Context) (*domain.Document, error) {
	query, args, err := psqlbuilder.Select("body").
		From(documentsTable).
		Where(squirrel.Eq{"name": r.name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	var body []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - scan body: %v", ErrRead, err)
	}

	return decode("Load", body)
}

// Save записывает документ целиком (upsert)
func (r *PostgresRepository) Save(ctx context.Context, doc *domain.Document) error {
	data, err := encode("Save", doc)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Insert(documentsTable).
		Columns("name", "body").
		Values(r.name, string(data)).
		Suffix("ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrWrite, err)
	}
	return nil
}
