package main

import (
	"context"
	"crypto/tls"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/Narayana2527/health-safari-apis/internal/config"
	"github.com/Narayana2527/health-safari-apis/internal/infra/storage/document"
	"github.com/Narayana2527/health-safari-apis/pkg/dbmetrics"
	"github.com/Narayana2527/health-safari-apis/pkg/logger"
	"github.com/Narayana2527/health-safari-apis/pkg/metrics"
)

// openRepository создает хранилище документа по storage.backend
// Возвращает функцию закрытия соединений
func openRepository(
	ctx context.Context,
	cfg *config.Config,
	log *logger.Logger,
	metricsCollector *metrics.Metrics,
) (dbmetrics.Repository, func(), error) {
	var (
		repo    dbmetrics.Repository
		closeFn = func() {}
	)

	switch cfg.Storage.Backend {
	case config.BackendFile:
		repo = document.NewFileRepository(cfg.Storage.File.Path)
		log.Info("Using file storage (path=%s)", cfg.Storage.File.Path)

	case config.BackendMemory:
		// Начальное состояние берем из storage.file.path, если файл есть
		seed, err := document.NewFileRepository(cfg.Storage.File.Path).Load(ctx)
		if err != nil && !errors.Is(err, document.ErrDocumentNotFound) {
			return nil, nil, fmt.Errorf("load initial document: %w", err)
		}

		mem, err := document.NewMemoryRepository(seed)
		if err != nil {
			return nil, nil, err
		}
		repo = mem
		log.Warn("Using in-memory storage (preloaded=%t): bookings are lost on restart", seed != nil)

	case config.BackendPostgres:
		pg := cfg.Storage.Postgres
		db, err := sql.Open("postgres", pg.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(pg.MaxOpenConns)
		db.SetMaxIdleConns(pg.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(pg.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("ping database: %w", err)
		}

		pgRepo := document.NewPostgresRepository(db, pg.DocumentName)
		if err := pgRepo.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}

		repo = pgRepo
		closeFn = func() { db.Close() }
		log.Info("Connected to database (host=%s, port=%d, db=%s, document=%s)",
			pg.Host, pg.Port, pg.DBName, pg.DocumentName)

	case config.BackendRedis:
		rc := cfg.Storage.Redis
		opts := &redis.Options{
			Addr:     rc.Addr,
			Password: rc.Password,
			DB:       rc.DB,
		}
		if rc.TLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}

		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}

		repo = document.NewRedisRepository(client, rc.Key)
		closeFn = func() { client.Close() }
		log.Info("Connected to redis (addr=%s, db=%d, key=%s)", rc.Addr, rc.DB, rc.Key)

	case config.BackendS3:
		sc := cfg.Storage.S3
		loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(sc.Region)}
		if sc.AccessKeyID != "" {
			loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(sc.AccessKeyID, sc.SecretAccessKey, ""),
			))
		}

		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, nil, fmt.Errorf("load aws config: %w", err)
		}

		client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if sc.Endpoint != "" {
				o.BaseEndpoint = aws.String(sc.Endpoint)
			}
			o.UsePathStyle = sc.UsePathStyle
		})

		repo = document.NewS3Repository(client, sc.Bucket, sc.Key)
		log.Info("Using s3 storage (bucket=%s, key=%s, region=%s)", sc.Bucket, sc.Key, sc.Region)

	default:
		return nil, nil, fmt.Errorf("unsupported storage backend %q", cfg.Storage.Backend)
	}

	if metricsCollector != nil {
		repo = dbmetrics.Wrap(repo, metricsCollector, cfg.Storage.Backend)
		log.Info("Storage metrics enabled")
	}

	return repo, closeFn, nil
}
