package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap so the rest of the service never imports it directly in
// wiring code.
type Logger struct {
	*zap.Logger
}

var (
	globalLogger *Logger
	once         sync.Once
)

// NewLogger builds the process-wide logger from LOG_LEVEL and LOG_FORMAT.
// The first call wins; later calls return the same instance.
func NewLogger() *Logger {
	once.Do(func() {
		level := getEnv("LOG_LEVEL", "info")
		format := getEnv("LOG_FORMAT", "json")

		var cfg zap.Config
		if level == "debug" {
			cfg = zap.NewDevelopmentConfig()
		} else {
			cfg = zap.NewProductionConfig()
			cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		}

		if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL %q, defaulting to info: %v\n", level, err)
			cfg.Level.SetLevel(zapcore.InfoLevel)
		}

		if strings.EqualFold(format, "console") || strings.EqualFold(format, "text") {
			cfg.Encoding = "console"
			cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		} else {
			cfg.Encoding = "json"
		}

		l, err := cfg.Build()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to build zap logger, falling back to production defaults: %v\n", err)
			l, _ = zap.NewProduction()
		}
		globalLogger = &Logger{Logger: l}
	})
	return globalLogger
}

// NewNop returns a logger that discards everything. For tests.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

func (l *Logger) Named(name string) *Logger {
	return &Logger{Logger: l.Logger.Named(name)}
}

func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{Logger: l.Logger.With(fields...)}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
