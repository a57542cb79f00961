package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/Narayana2527/health-safari-apis/internal/domain"
)

// DefaultS3Key ключ объекта по умолчанию
const DefaultS3Key = "availability/camp.json"

// S3Repository хранит документ одним объектом в бакете
type S3Repository struct {
	client S3API
	bucket string
	key    string
}

// NewS3Repository создает репозиторий поверх клиента S3
func NewS3Repository(client S3API, bucket, key string) *S3Repository {
	if key == "" {
		key = DefaultS3Key
	}
	return &S3Repository{client: client, bucket: bucket, key: key}
}

func (r *S3Repository) Load(ctx context.Context) (*domain.Document, error) {
	out, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(r.key),
	})
	if err != nil {
		var noSuchKey *s3types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("%w: Load - get s3://%s/%s: %v", ErrRead, r.bucket, r.key, err)
	}

	data, err := readAllAndClose(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: Load - read body: %v", ErrRead, err)
	}

	return decode("Load", data)
}

func (r *S3Repository) Save(ctx context.Context, doc *domain.Document) error {
	data, err := encode("Save", doc)
	if err != nil {
		return err
	}

	_, err = r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(r.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("%w: Save - put s3://%s/%s: %v", ErrWrite, r.bucket, r.key, err)
	}
	return nil
}
