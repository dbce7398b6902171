package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"receipt-encoder/internal/driver/escpos"
	"receipt-encoder/pkg/devicetypes"
)

func TestRegistryCreateLanguage(t *testing.T) {
	logger := zaptest.NewLogger(t)
	registry := NewRegistry(logger)
	RegisterDefaultLanguages(registry, logger)

	for _, name := range []devicetypes.Language{
		devicetypes.LanguageESCPOS,
		devicetypes.LanguageStarPRNT,
		devicetypes.LanguageStarLine,
	} {
		language, err := registry.CreateLanguage(name, nil)
		require.NoError(t, err)
		assert.Equal(t, name, language.Name())
		assert.True(t, registry.IsSupported(name))
	}
}

func TestRegistryUnknownLanguage(t *testing.T) {
	registry := NewRegistry(nil)

	_, err := registry.CreateLanguage("zpl", nil)
	assert.EqualError(t, err, "no language found for name=zpl")
	assert.False(t, registry.IsSupported("zpl"))
}

func TestRegistryListLanguages(t *testing.T) {
	registry := NewRegistry(nil)
	registry.Register(devicetypes.LanguageStarPRNT, escpos.New)
	registry.Register(devicetypes.LanguageESCPOS, escpos.New)

	assert.Equal(t, []devicetypes.Language{
		devicetypes.LanguageESCPOS,
		devicetypes.LanguageStarPRNT,
	}, registry.ListLanguages())
}

func TestDefaultRegistry(t *testing.T) {
	assert.Same(t, DefaultRegistry(), DefaultRegistry())
	assert.Len(t, DefaultRegistry().ListLanguages(), 3)

	language, err := DefaultRegistry().CreateLanguage(devicetypes.LanguageESCPOS, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, devicetypes.LanguageESCPOS, language.Name())
}
