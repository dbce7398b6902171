// pkg/encoder/page.go
package encoder

import (
	"fmt"

	"receipt-encoder/internal/layout"
	"receipt-encoder/pkg/driver"
)

var (
	flushLine    = layout.FlushOptions{}
	forceNewline = layout.FlushOptions{ForceNewline: true}
	pageFlush    = layout.FlushOptions{ForceFlush: true, IgnoreAlignment: true}
)

// CutType selects a full or partial cut
type CutType = driver.CutType

// Cut types
const (
	CutFull    = driver.CutTypeFull
	CutPartial = driver.CutTypePartial
)

// PulseOptions configures a cash drawer pulse
type PulseOptions = driver.PulseOptions

// Initialize resets the printer to its power on state
func (e *Encoder) Initialize() *Encoder {
	if e.err != nil || e.embedded("initialize") {
		return e
	}

	e.composer.Raw(0, e.language.Initialize())
	return e
}

// Cut feeds the configured number of lines and cuts the paper. The cut is
// full unless a type is given.
func (e *Encoder) Cut(value ...CutType) *Encoder {
	if e.err != nil || e.embedded("cut") {
		return e
	}

	cut := CutFull
	if len(value) > 0 && value[0] != "" {
		cut = value[0]
	}
	if cut != CutFull && cut != CutPartial {
		return e.fail(fmt.Errorf("%w: unknown cut type %q", ErrInvalidArgument, cut))
	}

	for i := 0; i < e.options.FeedBeforeCut; i++ {
		e.composer.Flush(forceNewline)
	}

	e.composer.Flush(pageFlush)
	e.composer.Raw(0, e.language.Cut(cut))
	e.composer.Flush(pageFlush)

	return e
}

// Pulse sends a pulse to the cash drawer. Zero durations select the
// printer language defaults.
func (e *Encoder) Pulse(options PulseOptions) *Encoder {
	if e.err != nil || e.embedded("pulse") {
		return e
	}

	if options.Device != 0 && options.Device != 1 {
		return e.fail(fmt.Errorf("%w: drawer device must be 0 or 1, got %d", ErrInvalidArgument, options.Device))
	}
	if options.On < 0 || options.Off < 0 {
		return e.fail(fmt.Errorf("%w: pulse durations must not be negative", ErrInvalidArgument))
	}

	e.composer.Flush(pageFlush)
	e.composer.Raw(0, e.language.Pulse(options))
	e.composer.Flush(pageFlush)

	return e
}
