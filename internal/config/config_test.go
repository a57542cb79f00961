package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.HTTPPort)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "camp.json", cfg.Storage.File.Path)
	assert.False(t, cfg.Privacy.RedactPatientContacts)
}

func TestLoad_Postgres(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
cors_origins = ["https://healthsafari.example"]

[logs]
level = "debug"

[storage]
backend = "postgres"

[storage.postgres]
host = "db"
user = "hsapi"
password = "from-file"
dbname = "camp"

[privacy]
redact_patient_contacts = true
`)

	t.Setenv(EnvDBPassword, "s3cr3t")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "s3cr3t", cfg.Storage.Postgres.Password)
	assert.Equal(t, 5432, cfg.Storage.Postgres.Port)
	assert.Equal(t, "main", cfg.Storage.Postgres.DocumentName)
	assert.Equal(t, "postgres://hsapi:s3cr3t@db:5432/camp?sslmode=disable", cfg.Storage.Postgres.DSN())
	assert.True(t, cfg.Privacy.RedactPatientContacts)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[storage.redis]
addr = "localhost:6379"
`)

	t.Setenv(EnvStorageBackend, "Redis")
	t.Setenv(EnvHTTPPort, "9090")
	t.Setenv(EnvRedisPassword, "pw")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendRedis, cfg.Storage.Backend)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "pw", cfg.Storage.Redis.Password)
	assert.Equal(t, "availability:document", cfg.Storage.Redis.Key)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown backend", "[storage]\nbackend = \"mongo\""},
		{"postgres without host", "[storage]\nbackend = \"postgres\""},
		{"s3 without bucket", "[storage]\nbackend = \"s3\""},
		{"bad log level", "[logs]\nlevel = \"verbose\""},
		{"bad port", "[server]\nhttp_port = 70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_BadEnvPort(t *testing.T) {
	t.Setenv(EnvHTTPPort, "eighty")

	_, err := Load(writeConfig(t, ""))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestLoad_NormalizesLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  string
	}{
		{"INFO", "info"},
		{"warning", "warn"},
		{" Debug ", "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, "[logs]\nlevel = \""+tt.level+"\""))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Logs.Level)
		})
	}
}

func TestStorageConfig_Shared(t *testing.T) {
	tests := []struct {
		backend string
		want    bool
	}{
		{BackendFile, false},
		{BackendMemory, false},
		{BackendPostgres, true},
		{BackendRedis, true},
		{BackendS3, true},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			assert.Equal(t, tt.want, StorageConfig{Backend: tt.backend}.Shared())
		})
	}
}
