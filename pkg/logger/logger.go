package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger логгер приложения с printf-подобным API поверх zerolog
type Logger struct {
	zl   zerolog.Logger
	file *os.File
}

// Option настройка логгера
type Option func(*options)

type options struct {
	pretty bool
	out    io.Writer
}

// WithPretty включает человекочитаемый вывод в консоль (для локальной разработки)
func WithPretty(pretty bool) Option {
	return func(o *options) {
		o.pretty = pretty
	}
}

// WithOutput подменяет основной вывод (по умолчанию os.Stdout)
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// New создает логгер с указанным уровнем
// Если filePath не пустой, логи дополнительно дописываются в файл
func New(filePath, level string, opts ...Option) (*Logger, error) {
	o := &options{out: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}

	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	var out io.Writer = o.out
	if o.pretty {
		out = zerolog.ConsoleWriter{Out: o.out, TimeFormat: "2006-01-02 15:04:05"}
	}

	var file *os.File
	if filePath != "" {
		file, err = os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file %s: %w", filePath, err)
		}
		out = zerolog.MultiLevelWriter(out, file)
	}

	zl := zerolog.New(out).Level(lvl).With().Timestamp().Logger()

	return &Logger{zl: zl, file: file}, nil
}

// ParseLevel переводит строковый уровень в zerolog.Level
// Пустая строка означает info
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("logger: unknown level %q", level)
	}
}

// Nop возвращает логгер, который ничего не пишет (для тестов)
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.zl.Debug().Msgf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.zl.Info().Msgf(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.zl.Warn().Msgf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.zl.Error().Msgf(format, v...)
}

// Close закрывает файл логов, если он был открыт
func (l *Logger) Close() {
	if l.file != nil {
		_ = l.file.Sync()
		_ = l.file.Close()
		l.file = nil
	}
}
