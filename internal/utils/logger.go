// internal/utils/logger.go
package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"receipt-encoder/internal/config"
)

// NewLogger builds a logger from the logging configuration. Output is
// stdout, stderr or a file path rotated by lumberjack.
func NewLogger(cfg *config.LoggingConfig) (*zap.Logger, error) {
	if cfg == nil {
		cfg = &config.Default().Logging
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: invalid log level: %w", err)
	}

	sink, err := openSink(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	core := zapcore.NewCore(newLogEncoder(cfg.Format), sink, level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

func newLogEncoder(format string) zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.MessageKey = "message"
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	if format == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.DateTime)
		return zapcore.NewConsoleEncoder(encoderConfig)
	}
	return zapcore.NewJSONEncoder(encoderConfig)
}

func openSink(cfg *config.LoggingConfig) (zapcore.WriteSyncer, error) {
	switch cfg.Output {
	case "stdout":
		return zapcore.Lock(os.Stdout), nil
	case "stderr", "":
		return zapcore.Lock(os.Stderr), nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Output), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Output,
		MaxSize:    cfg.MaxSize, // MB
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge, // days
		Compress:   cfg.Compress,
	}), nil
}

// EncoderLogger wraps zap.Logger with encoder-specific functionality
type EncoderLogger struct {
	*zap.Logger
	base         *zap.Logger
	encoderID    string
	language     string
	printerModel string
}

// NewEncoderLogger creates an encoder-specific logger
func NewEncoderLogger(baseLogger *zap.Logger, encoderID, language, printerModel string) *EncoderLogger {
	if baseLogger == nil {
		baseLogger = zap.NewNop()
	}

	logger := baseLogger.With(
		zap.String("encoder_id", encoderID),
		zap.String("language", language),
		zap.String("printer_model", printerModel),
		zap.String("component", "encoder"),
	)

	return &EncoderLogger{
		Logger:       logger,
		base:         baseLogger,
		encoderID:    encoderID,
		language:     language,
		printerModel: printerModel,
	}
}

// ID returns the id of the encoder the logger belongs to
func (el *EncoderLogger) ID() string {
	return el.encoderID
}

// Nested returns the logger of an encoder embedded in this one
func (el *EncoderLogger) Nested(encoderID string) *EncoderLogger {
	return NewEncoderLogger(
		el.base.With(zap.String("parent_id", el.encoderID)),
		encoderID, el.language, el.printerModel,
	)
}

// LogCapabilityWarning logs an operation the printer cannot perform
func (el *EncoderLogger) LogCapabilityWarning(operation, message string) {
	el.Warn("Operation not supported by printer",
		zap.String("operation", operation),
		zap.String("reason", message),
	)
}

// LogLine logs the text content of one drained line
func (el *EncoderLogger) LogLine(content string, height int) {
	el.Debug("Line",
		zap.String("content", "|"+content+"|"),
		zap.Int("height", height),
	)
}

// LogDocument logs a summary of drained output
func (el *EncoderLogger) LogDocument(lines, bytes int) {
	el.Debug("Document encoded",
		zap.Int("lines", lines),
		zap.Int("bytes", bytes),
	)
}

// LogError is a helper function for consistent error logging
func LogError(logger *zap.Logger, message string, err error, fields ...zap.Field) {
	allFields := append([]zap.Field{zap.Error(err)}, fields...)
	logger.Error(message, allFields...)
}

// CloseLogger flushes buffered log entries. Terminals and pipes that
// cannot be synced are not reported.
func CloseLogger(logger *zap.Logger) error {
	err := logger.Sync()
	if errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}
	return err
}
