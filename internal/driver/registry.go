// internal/driver/registry.go
package driver

import (
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"receipt-encoder/pkg/devicetypes"
	"receipt-encoder/pkg/driver"
)

// LanguageFactory creates a printer command language
type LanguageFactory func(logger *zap.Logger) driver.Language

// Registry manages printer language registration and creation
type Registry struct {
	languages map[devicetypes.Language]LanguageFactory
	mu        sync.RWMutex
	logger    *zap.Logger
}

// NewRegistry creates a new language registry
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Registry{
		languages: make(map[devicetypes.Language]LanguageFactory),
		logger:    logger,
	}
}

// Register registers a language factory under a name
func (r *Registry) Register(name devicetypes.Language, factory LanguageFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.languages[name] = factory
	r.logger.Debug("Language registered",
		zap.String("language", string(name)),
	)
}

// CreateLanguage creates the language registered under name
func (r *Registry) CreateLanguage(name devicetypes.Language, logger *zap.Logger) (driver.Language, error) {
	r.mu.RLock()
	factory, exists := r.languages[name]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("no language found for name=%s", name)
	}

	if logger == nil {
		logger = r.logger
	}
	return factory(logger), nil
}

// ListLanguages returns all registered language names in sorted order
func (r *Registry) ListLanguages() []devicetypes.Language {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]devicetypes.Language, 0, len(r.languages))
	for name := range r.languages {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsSupported checks if a language is registered
func (r *Registry) IsSupported(name devicetypes.Language) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.languages[name]
	return exists
}
