package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/Narayana2527/health-safari-apis/pkg/logger"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не удалось прочитать или разобрать
	ErrReadConfig = errors.New("config: failed to read config")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Бэкенды хранилища документа
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendS3       = "s3"
)

// Переменные окружения, перекрывающие значения из файла
const (
	EnvDBPassword     = "HSAPI_DB_PASSWORD"
	EnvRedisPassword  = "HSAPI_REDIS_PASSWORD"
	EnvStorageBackend = "HSAPI_STORAGE_BACKEND"
	EnvHTTPPort       = "HSAPI_HTTP_PORT"
)

type Config struct {
	Server  ServerConfig  `toml:"server"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Storage StorageConfig `toml:"storage"`
	Privacy PrivacyConfig `toml:"privacy"`
}

type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`     // секунды
	WriteTimeout    int      `toml:"write_timeout"`    // секунды
	IdleTimeout     int      `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int      `toml:"shutdown_timeout"` // секунды
	CORSOrigins     []string `toml:"cors_origins"`
}

type LogsConfig struct {
	Level  string `toml:"level"`
	File   string `toml:"file"`
	Pretty bool   `toml:"pretty"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type StorageConfig struct {
	Backend  string         `toml:"backend"`
	File     FileConfig     `toml:"file"`
	Postgres PostgresConfig `toml:"postgres"`
	Redis    RedisConfig    `toml:"redis"`
	S3       S3Config       `toml:"s3"`
}

// Shared сообщает, может ли документ быть доступен нескольким процессам сразу
// Блокировка документа действует только внутри одного процесса
func (c StorageConfig) Shared() bool {
	switch c.Backend {
	case BackendPostgres, BackendRedis, BackendS3:
		return true
	}
	return false
}

type FileConfig struct {
	Path string `toml:"path"`
}

type PostgresConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	DocumentName    string `toml:"document_name"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c PostgresConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   "/" + c.DBName,
	}
	q := u.Query()
	q.Set("sslmode", c.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Key      string `toml:"key"`
	TLS      bool   `toml:"tls"`
}

type S3Config struct {
	Bucket       string `toml:"bucket"`
	Key          string `toml:"key"`
	Region       string `toml:"region"`
	Endpoint     string `toml:"endpoint"` // для MinIO/localstack
	UsePathStyle bool   `toml:"use_path_style"`

	// Статические ключи; если не заданы, используется стандартная цепочка AWS
	AccessKeyID     string `toml:"access_key_id"`
	SecretAccessKey string `toml:"secret_access_key"`
}

type PrivacyConfig struct {
	// RedactPatientContacts маскирует email и телефон пациентов во всех выдачах
	RedactPatientContacts bool `toml:"redact_patient_contacts"`
}

// Load читает конфигурацию из TOML файла
// Перед чтением подхватывает .env из текущей директории, если он есть
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvDBPassword); v != "" {
		c.Storage.Postgres.Password = v
	}
	if v := os.Getenv(EnvRedisPassword); v != "" {
		c.Storage.Redis.Password = v
	}
	if v := os.Getenv(EnvStorageBackend); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv(EnvHTTPPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvHTTPPort, v)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, 5000)
	setDefault(&c.Server.ReadTimeout, 15)
	setDefault(&c.Server.WriteTimeout, 15)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 10)
	if c.Server.CORSOrigins == nil {
		c.Server.CORSOrigins = []string{"*"}
	}

	// Уровень приводится к каноническому имени: "INFO" -> "info", "warning" -> "warn"
	if lvl, err := logger.ParseLevel(c.Logs.Level); err == nil {
		c.Logs.Level = lvl.String()
	}

	setDefault(&c.Metrics.Path, "/metrics")
	setDefault(&c.Metrics.ServiceName, "health-safari-apis")

	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	setDefault(&c.Storage.Backend, BackendFile)
	setDefault(&c.Storage.File.Path, "camp.json")

	setDefault(&c.Storage.Postgres.Port, 5432)
	setDefault(&c.Storage.Postgres.SSLMode, "disable")
	setDefault(&c.Storage.Postgres.DocumentName, "main")
	setDefault(&c.Storage.Postgres.MaxOpenConns, 10)
	setDefault(&c.Storage.Postgres.MaxIdleConns, 5)
	setDefault(&c.Storage.Postgres.ConnMaxLifetime, 300)

	setDefault(&c.Storage.Redis.Key, "availability:document")

	setDefault(&c.Storage.S3.Key, "availability/camp.json")
	setDefault(&c.Storage.S3.Region, "us-east-1")
}

// Validate проверяет, что выбранный бэкенд полностью настроен
func (c *Config) Validate() error {
	var errs []error

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("server.http_port %d out of range", c.Server.HTTPPort))
	}

	if _, err := logger.ParseLevel(c.Logs.Level); err != nil {
		errs = append(errs, fmt.Errorf("logs.level %q is not one of debug, info, warn, error", c.Logs.Level))
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		errs = append(errs, fmt.Errorf("metrics.path %q must start with /", c.Metrics.Path))
	}

	switch c.Storage.Backend {
	case BackendFile:
		if c.Storage.File.Path == "" {
			errs = append(errs, errors.New("storage.file.path is required"))
		}
	case BackendMemory:
	case BackendPostgres:
		if c.Storage.Postgres.Host == "" {
			errs = append(errs, errors.New("storage.postgres.host is required"))
		}
		if c.Storage.Postgres.User == "" {
			errs = append(errs, errors.New("storage.postgres.user is required"))
		}
		if c.Storage.Postgres.DBName == "" {
			errs = append(errs, errors.New("storage.postgres.dbname is required"))
		}
	case BackendRedis:
		if c.Storage.Redis.Addr == "" {
			errs = append(errs, errors.New("storage.redis.addr is required"))
		}
	case BackendS3:
		if c.Storage.S3.Bucket == "" {
			errs = append(errs, errors.New("storage.s3.bucket is required"))
		}
		if (c.Storage.S3.AccessKeyID == "") != (c.Storage.S3.SecretAccessKey == "") {
			errs = append(errs, errors.New("storage.s3.access_key_id and secret_access_key must be set together"))
		}
	default:
		errs = append(errs, fmt.Errorf("storage.backend %q is not supported", c.Storage.Backend))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
