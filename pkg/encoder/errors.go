// pkg/encoder/errors.go
package encoder

import (
	"errors"

	"receipt-encoder/internal/codepage"
)

// Errors recorded by the encoder. ErrUnsupported is the only one subject
// to the error policy, the others are always reported.
var (
	ErrInvalidConfiguration = errors.New("invalid encoder configuration")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrEmbedded             = errors.New("not supported in table cells or boxes")
	ErrMidLine              = errors.New("not supported in the middle of a line")
	ErrBoxTooWide           = errors.New("box is too wide")
	ErrUnknownCodepage      = codepage.ErrUnknownCodepage
	ErrCodepageNotSupported = errors.New("codepage not supported by printer")
	ErrUnsupported          = errors.New("unsupported by printer")
)
