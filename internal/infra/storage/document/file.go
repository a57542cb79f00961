package document

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Narayana2527/health-safari-apis/internal/domain"
)

// FileRepository хранит документ в JSON файле (формат camp.json)
type FileRepository struct {
	path string
}

// NewFileRepository создает репозиторий поверх файла
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Load читает и разбирает файл целиком
func (r *FileRepository) Load(ctx context.Context) (*domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - read %s: %v", ErrRead, r.path, err)
	}

	return decode("Load", data)
}

// Save перезаписывает файл целиком
// Пишем во временный файл в той же директории и переименовываем,
// чтобы при сбое на диске не остался обрезанный документ
func (r *FileRepository) Save(ctx context.Context, doc *domain.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encode("Save", doc)
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: Save - create temp file: %v", ErrWrite, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: Save - write temp file: %v", ErrWrite, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: Save - sync temp file: %v", ErrWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: Save - close temp file: %v", ErrWrite, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("%w: Save - chmod temp file: %v", ErrWrite, err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("%w: Save - rename to %s: %v", ErrWrite, r.path, err)
	}

	return nil
}
