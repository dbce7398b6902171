// pkg/encoder/encoder.go
package encoder

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"receipt-encoder/internal/codepage"
	internaldriver "receipt-encoder/internal/driver"
	"receipt-encoder/internal/layout"
	"receipt-encoder/internal/printers"
	"receipt-encoder/internal/utils"
	"receipt-encoder/pkg/devicetypes"
	"receipt-encoder/pkg/driver"
)

// Capabilities describes what a printer model can do
type Capabilities = printers.Capabilities

// ModelInfo identifies a known printer model
type ModelInfo = printers.ModelInfo

// encoderState tracks the printer state while serializing
type encoderState struct {
	codepage     int
	codepageName string
	font         devicetypes.FontType
}

// Encoder builds a receipt and encodes it into printer commands. Builder
// methods return the encoder for chaining. The first failure is recorded,
// later builder calls are ignored until the document is drained with
// Commands or Encode.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	id           string
	options      Options
	logger       *utils.EncoderLogger
	language     driver.Language
	charset      *codepage.Encoder
	composer     *layout.Composer
	capabilities printers.Capabilities
	mapping      *printers.CodepageMapping

	codepage string
	state    encoderState
	queue    [][]driver.Item
	err      error

	// base is set when the encoder built its own logger
	base *zap.Logger
}

// New creates an encoder
func New(opts Options) (*Encoder, error) {
	id := uuid.NewString()
	logger := utils.NewEncoderLogger(opts.Logger, id, string(opts.Language), opts.PrinterModel)
	return newEncoder(id, opts, logger)
}

func newEncoder(id string, opts Options, logger *utils.EncoderLogger) (*Encoder, error) {
	resolved, capabilities, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	language, err := internaldriver.DefaultRegistry().CreateLanguage(resolved.Language, logger.Logger)
	if err != nil {
		return nil, fmt.Errorf("%w: the specified language is not supported: %w", ErrInvalidConfiguration, err)
	}

	mapping, err := codepageMapping(resolved)
	if err != nil {
		return nil, err
	}

	e := &Encoder{
		id:           id,
		options:      resolved,
		logger:       logger,
		language:     language,
		charset:      codepage.New(),
		capabilities: capabilities,
		mapping:      mapping,
	}

	e.composer = layout.NewComposer(layout.ComposerOptions{
		Embedded: resolved.Embedded,
		Columns:  resolved.Columns,
		Align:    driver.AlignLeft,
		Callback: func(items []driver.Item) {
			e.queue = append(e.queue, items)
		},
	})

	e.reset()

	logger.Debug("Encoder created",
		zap.Int("columns", resolved.Columns),
		zap.String("codepage_mapping", mapping.Name),
		zap.Bool("auto_flush", *resolved.AutoFlush),
		zap.Bool("embedded", resolved.Embedded),
	)

	return e, nil
}

// nested creates an embedded encoder for a table cell or box body. It
// shares the resolved configuration and uses the active codepage.
func (e *Encoder) nested(columns int, align driver.Alignment) (*Encoder, error) {
	if columns <= 0 {
		return nil, fmt.Errorf("%w: width must be positive, got %d", ErrInvalidArgument, columns)
	}

	opts := e.options
	opts.Columns = columns
	opts.Width = columns
	opts.Embedded = true
	opts.CodepageCandidates = e.mapping.Candidates

	id := uuid.NewString()
	child, err := newEncoder(id, opts, e.logger.Nested(id))
	if err != nil {
		return nil, err
	}

	child.Codepage(e.codepage)
	if align != "" {
		child.Align(align)
	}
	if child.err != nil {
		return nil, child.err
	}

	return child, nil
}

// reset starts a new document
func (e *Encoder) reset() {
	e.queue = nil
	e.err = nil

	e.codepage = "cp437"
	if e.options.Language != devicetypes.LanguageESCPOS {
		e.codepage = "star/standard"
	}

	e.state = encoderState{
		codepage:     0,
		codepageName: e.codepage,
		font:         devicetypes.FontA,
	}
}

// fail records the first error
func (e *Encoder) fail(err error) *Encoder {
	if e.err == nil {
		e.err = err
		e.logger.Debug("Encoder operation failed", zap.Error(err))
	}
	return e
}

// unsupported applies the error policy to an operation the printer cannot
// perform
func (e *Encoder) unsupported(operation, message string) *Encoder {
	if e.options.Errors == devicetypes.ErrorsStrict {
		return e.fail(fmt.Errorf("%w: %s", ErrUnsupported, message))
	}

	e.logger.LogCapabilityWarning(operation, message)
	return e
}

// embedded records an error when a page level operation is used inside a
// table cell or box
func (e *Encoder) embedded(operation string) bool {
	if e.options.Embedded {
		e.fail(fmt.Errorf("%w: %s", ErrEmbedded, operation))
		return true
	}
	return false
}

// Err returns the first error recorded since the last drain
func (e *Encoder) Err() error {
	return e.err
}

// Close flushes the logger the encoder built from configuration. Encoders
// logging to a caller supplied logger leave it untouched.
func (e *Encoder) Close() error {
	if e.base == nil {
		return nil
	}
	return utils.CloseLogger(e.base)
}

// ID returns the unique id of the encoder
func (e *Encoder) ID() string {
	return e.id
}

// Columns returns the current number of columns, which depends on the font
func (e *Encoder) Columns() int {
	return e.composer.Columns()
}

// Language returns the printer language
func (e *Encoder) Language() devicetypes.Language {
	return e.options.Language
}

// PrinterCapabilities returns a copy of the printer capabilities
func (e *Encoder) PrinterCapabilities() Capabilities {
	return e.capabilities.Clone()
}

// PrinterModels lists the known printer models
func PrinterModels() []ModelInfo {
	return printers.DefaultDatabase().Models()
}
