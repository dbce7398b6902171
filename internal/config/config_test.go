package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	config, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "", config.Encoder.Language)
	assert.Equal(t, 0, config.Encoder.Columns)
	assert.Equal(t, "relaxed", config.Encoder.Errors)
	assert.Nil(t, config.Encoder.AutoFlush)
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, "json", config.Logging.Format)
	assert.Equal(t, "stderr", config.Logging.Output)
}

func TestLoadFile(t *testing.T) {
	dir := writeConfig(t, `
encoder:
  language: star-prnt
  printer_model: star-mpop
  columns: 32
  codepage_candidates: [cp437, windows1252]
  newline: "\n"
  auto_flush: false
  errors: strict
  debug: true
logging:
  level: debug
  format: console
`)

	config, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "star-prnt", config.Encoder.Language)
	assert.Equal(t, "star-mpop", config.Encoder.PrinterModel)
	assert.Equal(t, 32, config.Encoder.Columns)
	assert.Equal(t, []string{"cp437", "windows1252"}, config.Encoder.CodepageCandidates)
	assert.Equal(t, "\n", config.Encoder.Newline)
	require.NotNil(t, config.Encoder.AutoFlush)
	assert.False(t, *config.Encoder.AutoFlush)
	assert.Equal(t, "strict", config.Encoder.Errors)
	assert.True(t, config.Encoder.Debug)
	assert.Equal(t, "console", config.Logging.Format)

	// a file path works as well as its directory
	config, err = Load(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "star-mpop", config.Encoder.PrinterModel)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("RECEIPT_ENCODER_ENCODER_LANGUAGE", "esc-pos")
	t.Setenv("RECEIPT_ENCODER_ENCODER_COLUMNS", "48")
	t.Setenv("RECEIPT_ENCODER_LOGGING_LEVEL", "warn")

	config, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "esc-pos", config.Encoder.Language)
	assert.Equal(t, 48, config.Encoder.Columns)
	assert.Equal(t, "warn", config.Logging.Level)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{"language", "encoder:\n  language: zpl\n", "encoder.language must be one of: [esc-pos star-line star-prnt]"},
		{"errors", "encoder:\n  errors: loud\n", "encoder.errors"},
		{"image mode", "encoder:\n  image_mode: halftone\n", "encoder.image_mode"},
		{"columns", "encoder:\n  columns: -1\n", "encoder.columns"},
		{"log level", "logging:\n  level: verbose\n", "logging.level"},
		{"log format", "logging:\n  format: xml\n", "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoadBrokenFile(t *testing.T) {
	_, err := Load(writeConfig(t, "encoder: [unbalanced"))
	assert.ErrorContains(t, err, "error reading config file")
}

func TestDefault(t *testing.T) {
	config := Default()

	assert.Equal(t, "relaxed", config.Encoder.Errors)
	assert.Equal(t, "info", config.Logging.Level)
	assert.NoError(t, validate(config))
}
