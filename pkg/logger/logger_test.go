package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{"debug", "debug", zerolog.DebugLevel},
		{"empty defaults to info", "", zerolog.InfoLevel},
		{"upper case warn", "WARN", zerolog.WarnLevel},
		{"error", "error", zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.level)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("", "warn", WithOutput(&buf))
	require.NoError(t, err)

	log.Info("hidden %d", 1)
	log.Warn("visible %d", 2)

	assert.NotContains(t, buf.String(), "hidden 1")
	assert.Contains(t, buf.String(), "visible 2")
}

func TestLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	var buf bytes.Buffer
	log, err := New(path, "info", WithOutput(&buf))
	require.NoError(t, err)

	log.Error("booking failed: %s", "Dr. X")
	log.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "booking failed: Dr. X")
	assert.Contains(t, buf.String(), "booking failed: Dr. X")
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Info("nothing")
	log.Close()
}

func TestLoggerDebug(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("", "debug", WithOutput(&buf))
	require.NoError(t, err)

	log.Debug("load took %s", "5ms")
	assert.Contains(t, buf.String(), `"level":"debug"`)
	assert.Contains(t, buf.String(), "load took 5ms")

	buf.Reset()
	quiet, err := New("", "info", WithOutput(&buf))
	require.NoError(t, err)
	quiet.Debug("hidden")
	assert.Empty(t, buf.String())
}
