package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global logger instance
	Logger = zap.NewNop()
)

// InitLogger initializes the global logger. An unknown level keeps the
// production default (info).
func InitLogger(level string) error {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if level != "" {
		var l zapcore.Level
		if err := l.UnmarshalText([]byte(level)); err == nil {
			config.Level = zap.NewAtomicLevelAt(l)
		}
	}

	logger, err := config.Build(
		zap.Fields(
			zap.String("service", "dental-clinic"),
			zap.String("version", "v1"),
		),
	)
	if err != nil {
		return err
	}
	Logger = logger
	zap.ReplaceGlobals(logger)
	return nil
}

// Sync flushes buffered log entries.
func Sync() {
	_ = Logger.Sync()
}
