package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"receipt-encoder/internal/config"
)

func TestNewLoggerLevels(t *testing.T) {
	logger, err := NewLogger(&config.LoggingConfig{Level: "warn", Format: "console", Output: "stderr"})
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	_, err = NewLogger(&config.LoggingConfig{Level: "verbose"})
	assert.ErrorContains(t, err, "invalid log level")
}

func TestNewLoggerFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "encoder.log")

	logger, err := NewLogger(&config.LoggingConfig{
		Level:      "info",
		Format:     "json",
		Output:     path,
		MaxSize:    1,
		MaxBackups: 1,
	})
	require.NoError(t, err)

	logger.Info("written to file")
	require.NoError(t, CloseLogger(logger))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"message":"written to file"`)
}

func TestNewLoggerNilConfig(t *testing.T) {
	logger, err := NewLogger(nil)
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.NoError(t, CloseLogger(logger))
}

func TestNewLoggerConsoleFormat(t *testing.T) {
	logger, err := NewLogger(&config.LoggingConfig{Level: "", Format: "console", Output: "stdout"})
	require.NoError(t, err)

	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestEncoderLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewEncoderLogger(zap.New(core), "enc-1", "esc-pos", "epson-tm-t88vi")

	logger.LogCapabilityWarning("qrcode", "qr codes are not supported by this printer")
	logger.LogLine("hello", 2)
	logger.LogDocument(3, 42)

	entries := logs.All()
	require.Len(t, entries, 3)

	warning := entries[0]
	assert.Equal(t, zapcore.WarnLevel, warning.Level)
	fields := warning.ContextMap()
	assert.Equal(t, "enc-1", fields["encoder_id"])
	assert.Equal(t, "esc-pos", fields["language"])
	assert.Equal(t, "epson-tm-t88vi", fields["printer_model"])
	assert.Equal(t, "encoder", fields["component"])
	assert.Equal(t, "qrcode", fields["operation"])

	line := entries[1].ContextMap()
	assert.Equal(t, "|hello|", line["content"])
	assert.EqualValues(t, 2, line["height"])

	assert.EqualValues(t, 42, entries[2].ContextMap()["bytes"])
}

func TestEncoderLoggerNested(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	parent := NewEncoderLogger(zap.New(core), "parent", "esc-pos", "")
	child := parent.Nested("child")

	assert.Equal(t, "child", child.ID())
	child.LogCapabilityWarning("font", "unsupported")

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "parent", fields["parent_id"])
	assert.Equal(t, "child", fields["encoder_id"])
}

func TestNewEncoderLoggerNilBase(t *testing.T) {
	logger := NewEncoderLogger(nil, "id", "esc-pos", "")
	assert.NotPanics(t, func() {
		logger.LogDocument(1, 1)
		LogError(logger.Logger, "failed", errors.New("boom"))
	})
}
