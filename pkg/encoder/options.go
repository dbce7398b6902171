// pkg/encoder/options.go
package encoder

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	internaldriver "receipt-encoder/internal/driver"
	"receipt-encoder/internal/printers"
	"receipt-encoder/pkg/devicetypes"
	"receipt-encoder/pkg/driver"
)

// Options configures an encoder. Zero values are resolved from the printer
// model, then from the language, then from the global defaults.
type Options struct {
	Language     devicetypes.Language
	PrinterModel string

	Columns int
	Width   int // alias for Columns, wins when set

	// CodepageMapping names a mapping table of the language. CodepageTable
	// replaces the named mapping with an explicit name to id table.
	CodepageMapping    string
	CodepageTable      map[string]int
	CodepageCandidates []string

	Newline       devicetypes.Newline
	ImageMode     driver.ImageMode
	FeedBeforeCut int
	AutoFlush     *bool
	Errors        devicetypes.ErrorPolicy
	Debug         bool

	// Embedded is set for encoders rendering a table cell or box body
	Embedded bool

	Logger *zap.Logger
}

// Global defaults
const (
	DefaultColumns         = 42
	DefaultLanguage        = devicetypes.LanguageESCPOS
	DefaultImageMode       = driver.ImageModeColumn
	DefaultNewline         = devicetypes.NewlineLFCR
	DefaultCodepageMapping = "epson"
	DefaultErrors          = devicetypes.ErrorsRelaxed
)

// resolveOptions applies the precedence chain and validates the result.
// The returned capabilities belong to the configured printer model.
func resolveOptions(opts Options) (Options, printers.Capabilities, error) {
	resolved := Options{
		Columns:         DefaultColumns,
		Language:        DefaultLanguage,
		ImageMode:       DefaultImageMode,
		Newline:         DefaultNewline,
		CodepageMapping: DefaultCodepageMapping,
		Errors:          DefaultErrors,
	}
	capabilities := printers.DefaultCapabilities()

	if opts.Language != "" {
		resolved.Columns = 48
		resolved.CodepageMapping = "star"
		if opts.Language == devicetypes.LanguageESCPOS {
			resolved.Columns = 42
			resolved.CodepageMapping = "epson"
		}
	}

	if opts.PrinterModel != "" {
		definition, ok := printers.DefaultDatabase().Lookup(opts.PrinterModel)
		if !ok {
			return Options{}, capabilities, fmt.Errorf("%w: unknown printer model %q", ErrInvalidConfiguration, opts.PrinterModel)
		}

		capabilities = definition.Capabilities
		resolved.Columns = capabilities.Fonts[devicetypes.FontA].Columns
		resolved.Language = capabilities.Language
		if capabilities.Codepages != "" {
			resolved.CodepageMapping = capabilities.Codepages
		}
		if capabilities.Newline != "" {
			resolved.Newline = capabilities.Newline
		}
		if capabilities.Cutter.Feed != 0 {
			resolved.FeedBeforeCut = capabilities.Cutter.Feed
		}
		if capabilities.Images.Mode != "" {
			resolved.ImageMode = capabilities.Images.Mode
		}
	}

	// Explicit options
	resolved.PrinterModel = opts.PrinterModel
	resolved.Embedded = opts.Embedded
	resolved.Debug = opts.Debug
	resolved.Logger = opts.Logger
	resolved.AutoFlush = opts.AutoFlush
	resolved.CodepageTable = opts.CodepageTable
	resolved.CodepageCandidates = slices.Clone(opts.CodepageCandidates)

	if opts.Language != "" {
		resolved.Language = opts.Language
	}
	if opts.Columns != 0 {
		resolved.Columns = opts.Columns
	}
	if opts.Width != 0 {
		resolved.Columns = opts.Width
	}
	resolved.Width = resolved.Columns
	if opts.CodepageMapping != "" {
		resolved.CodepageMapping = opts.CodepageMapping
	}
	if opts.Newline != "" {
		resolved.Newline = opts.Newline
	}
	if opts.ImageMode != "" {
		resolved.ImageMode = opts.ImageMode
	}
	if opts.FeedBeforeCut != 0 {
		resolved.FeedBeforeCut = opts.FeedBeforeCut
	}
	if opts.Errors != "" {
		resolved.Errors = opts.Errors
	}

	if resolved.AutoFlush == nil {
		autoFlush := !resolved.Embedded && resolved.Language == devicetypes.LanguageStarPRNT
		resolved.AutoFlush = &autoFlush
	}

	if err := validateOptions(resolved); err != nil {
		return Options{}, capabilities, err
	}

	return resolved, capabilities, nil
}

func validateOptions(opts Options) error {
	if registry := internaldriver.DefaultRegistry(); !registry.IsSupported(opts.Language) {
		return fmt.Errorf("%w: the specified language is not supported, expected one of %v", ErrInvalidConfiguration, registry.ListLanguages())
	}

	if !opts.Embedded && !slices.Contains(devicetypes.AllowedColumns, opts.Columns) {
		return fmt.Errorf("%w: the width of the paper must be one of %v columns", ErrInvalidConfiguration, devicetypes.AllowedColumns)
	}
	if opts.Columns <= 0 {
		return fmt.Errorf("%w: columns must be positive", ErrInvalidConfiguration)
	}

	switch opts.Newline {
	case devicetypes.NewlineLFCR, devicetypes.NewlineLF, devicetypes.NewlineNone:
	default:
		return fmt.Errorf("%w: unknown newline %q", ErrInvalidConfiguration, opts.Newline)
	}

	switch opts.ImageMode {
	case driver.ImageModeColumn, driver.ImageModeRaster:
	default:
		return fmt.Errorf("%w: unknown image mode %q", ErrInvalidConfiguration, opts.ImageMode)
	}

	switch opts.Errors {
	case devicetypes.ErrorsRelaxed, devicetypes.ErrorsStrict:
	default:
		return fmt.Errorf("%w: unknown error policy %q", ErrInvalidConfiguration, opts.Errors)
	}

	if opts.FeedBeforeCut < 0 {
		return fmt.Errorf("%w: feed before cut must not be negative", ErrInvalidConfiguration)
	}

	return nil
}

// codepageMapping resolves the codepage table and automatic selection
// candidates of the options
func codepageMapping(opts Options) (*printers.CodepageMapping, error) {
	var mapping *printers.CodepageMapping

	if opts.CodepageTable != nil {
		names := make([]string, 0, len(opts.CodepageTable))
		for name := range opts.CodepageTable {
			names = append(names, name)
		}
		slices.SortFunc(names, func(a, b string) int {
			if d := opts.CodepageTable[a] - opts.CodepageTable[b]; d != 0 {
				return d
			}
			return strings.Compare(a, b)
		})

		mapping = &printers.CodepageMapping{
			Name:       "custom",
			IDs:        make(map[string]int, len(opts.CodepageTable)),
			Candidates: names,
		}
		for name, id := range opts.CodepageTable {
			mapping.IDs[name] = id
		}
	} else {
		var err error
		mapping, err = printers.Mapping(opts.Language, opts.CodepageMapping)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
		}
	}

	if len(opts.CodepageCandidates) > 0 {
		mapping.Candidates = slices.Clone(opts.CodepageCandidates)
	}

	return mapping, nil
}
