// internal/driver/registry_init.go
package driver

import (
	"sync"

	"go.uber.org/zap"

	"receipt-encoder/internal/driver/escpos"
	"receipt-encoder/internal/driver/starprnt"
	"receipt-encoder/pkg/devicetypes"
)

// RegisterDefaultLanguages registers the built-in printer languages
func RegisterDefaultLanguages(registry *Registry, logger *zap.Logger) {
	registry.Register(devicetypes.LanguageESCPOS, escpos.New)

	// Star Line mode printers accept the StarPRNT command set
	registry.Register(devicetypes.LanguageStarPRNT, starprnt.New)
	registry.Register(devicetypes.LanguageStarLine, starprnt.NewStarLine)

	logger.Debug("Printer languages registered",
		zap.Int("languages", 3),
	)
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process wide registry holding the built-in
// languages
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		logger := zap.NewNop()
		defaultRegistry = NewRegistry(logger)
		RegisterDefaultLanguages(defaultRegistry, logger)
	})
	return defaultRegistry
}
