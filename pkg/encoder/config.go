// pkg/encoder/config.go
package encoder

import (
	"fmt"

	"go.uber.org/zap"

	"receipt-encoder/internal/config"
	"receipt-encoder/internal/utils"
	"receipt-encoder/pkg/devicetypes"
	"receipt-encoder/pkg/driver"
)

// NewFromConfig creates an encoder from loaded configuration. Unset keys
// are resolved from the printer model and language.
func NewFromConfig(cfg *config.EncoderConfig, logger *zap.Logger) (*Encoder, error) {
	if cfg == nil {
		cfg = &config.Default().Encoder
	}

	return New(Options{
		Language:           devicetypes.Language(cfg.Language),
		PrinterModel:       cfg.PrinterModel,
		Columns:            cfg.Columns,
		CodepageMapping:    cfg.CodepageMapping,
		CodepageTable:      cfg.CodepageTable,
		CodepageCandidates: cfg.CodepageCandidates,
		Newline:            devicetypes.Newline(cfg.Newline),
		ImageMode:          driver.ImageMode(cfg.ImageMode),
		FeedBeforeCut:      cfg.FeedBeforeCut,
		AutoFlush:          cfg.AutoFlush,
		Errors:             devicetypes.ErrorPolicy(cfg.Errors),
		Debug:              cfg.Debug,
		Logger:             logger,
	})
}

// NewFromFile loads the configuration at path, builds the configured
// logger and creates an encoder from it. path is a directory holding
// config.yaml or the file itself. Close the encoder to flush its logger.
func NewFromFile(path string) (*Encoder, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := utils.NewLogger(&cfg.Logging)
	if err != nil {
		return nil, err
	}

	e, err := NewFromConfig(&cfg.Encoder, logger)
	if err != nil {
		utils.LogError(logger, "Failed to create encoder", err)
		_ = utils.CloseLogger(logger)
		return nil, err
	}

	e.base = logger
	return e, nil
}
