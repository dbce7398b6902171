// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"receipt-encoder/internal/driver"
	"receipt-encoder/pkg/devicetypes"
)

// Config represents the encoder configuration
type Config struct {
	Encoder EncoderConfig `mapstructure:"encoder"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// EncoderConfig represents the default options of new encoders. Empty
// values leave the choice to the language or printer model.
type EncoderConfig struct {
	Language           string         `mapstructure:"language"`
	PrinterModel       string         `mapstructure:"printer_model"`
	Columns            int            `mapstructure:"columns"`
	CodepageMapping    string         `mapstructure:"codepage_mapping"`
	CodepageTable      map[string]int `mapstructure:"codepage_table"`
	CodepageCandidates []string       `mapstructure:"codepage_candidates"`
	Newline            string         `mapstructure:"newline"`
	ImageMode          string         `mapstructure:"image_mode"`
	FeedBeforeCut      int            `mapstructure:"feed_before_cut"`
	AutoFlush          *bool          `mapstructure:"auto_flush"`
	Errors             string         `mapstructure:"errors"`
	Debug              bool           `mapstructure:"debug"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

// Load loads configuration from an optional file and environment variables.
// path is either a directory holding config.yaml or the file itself.
func Load(path string) (*Config, error) {
	v := viper.New()

	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if path != "" {
			v.AddConfigPath(path)
		}
		v.AddConfigPath(".")
	}

	// Environment variable support
	v.SetEnvPrefix("RECEIPT_ENCODER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Default returns the configuration used when nothing is configured
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	_ = v.Unmarshal(&config)
	return &config
}

// setDefaults sets default configuration values. Empty encoder defaults
// make the keys known to viper so environment variables reach them.
func setDefaults(v *viper.Viper) {
	// Encoder defaults
	v.SetDefault("encoder.language", "")
	v.SetDefault("encoder.printer_model", "")
	v.SetDefault("encoder.columns", 0)
	v.SetDefault("encoder.codepage_mapping", "")
	v.SetDefault("encoder.newline", "")
	v.SetDefault("encoder.image_mode", "")
	v.SetDefault("encoder.feed_before_cut", 0)
	v.SetDefault("encoder.errors", "relaxed")
	v.SetDefault("encoder.debug", false)
	_ = v.BindEnv("encoder.auto_flush")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stderr")
	v.SetDefault("logging.max_size", 100)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age", 28)
	v.SetDefault("logging.compress", true)
}

// validate validates the configuration
func validate(config *Config) error {
	encoder := config.Encoder

	if registry := driver.DefaultRegistry(); encoder.Language != "" && !registry.IsSupported(devicetypes.Language(encoder.Language)) {
		return fmt.Errorf("encoder.language must be one of: %v", registry.ListLanguages())
	}

	validNewlines := []string{"", "\n\r", "\n", "none"}
	if !slices.Contains(validNewlines, encoder.Newline) {
		return fmt.Errorf("encoder.newline must be one of: %q", validNewlines[1:])
	}

	validImageModes := []string{"", "column", "raster"}
	if !slices.Contains(validImageModes, encoder.ImageMode) {
		return fmt.Errorf("encoder.image_mode must be one of: %v", validImageModes[1:])
	}

	validErrors := []string{"relaxed", "strict"}
	if !slices.Contains(validErrors, encoder.Errors) {
		return fmt.Errorf("encoder.errors must be one of: %v", validErrors)
	}

	if encoder.Columns < 0 {
		return fmt.Errorf("encoder.columns must not be negative")
	}
	if encoder.FeedBeforeCut < 0 {
		return fmt.Errorf("encoder.feed_before_cut must not be negative")
	}

	// Validate logging level
	validLevels := []string{"debug", "info", "warn", "error", "fatal"}
	if !slices.Contains(validLevels, config.Logging.Level) {
		return fmt.Errorf("logging.level must be one of: %v", validLevels)
	}

	validFormats := []string{"json", "console"}
	if !slices.Contains(validFormats, config.Logging.Format) {
		return fmt.Errorf("logging.format must be one of: %v", validFormats)
	}

	return nil
}
