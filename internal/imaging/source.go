// internal/imaging/source.go
package imaging

import (
	"errors"
	"fmt"
	"image"
)

// ErrInvalidSource is returned for image input that cannot be read
var ErrInvalidSource = errors.New("invalid image source")

// Source is image input for the encoder. The set of sources is closed:
// RGBA, FromImage and FromDrawer.
type Source interface {
	load(width, height int) (image.Image, error)
}

// RGBA is a raw buffer of non-premultiplied pixels, four bytes per pixel,
// row by row
type RGBA struct {
	Width  int
	Height int
	Pix    []byte
}

func (s RGBA) load(int, int) (image.Image, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidSource, s.Width, s.Height)
	}
	if len(s.Pix) < s.Width*s.Height*4 {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d pixels", ErrInvalidSource, len(s.Pix), s.Width, s.Height)
	}

	return &image.NRGBA{
		Pix:    s.Pix,
		Stride: s.Width * 4,
		Rect:   image.Rect(0, 0, s.Width, s.Height),
	}, nil
}

type imageSource struct {
	img image.Image
}

// FromImage wraps a decoded image
func FromImage(img image.Image) Source {
	return imageSource{img: img}
}

func (s imageSource) load(int, int) (image.Image, error) {
	if s.img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidSource)
	}
	return s.img, nil
}

// Drawer renders an image at the requested size
type Drawer interface {
	Draw(width, height int) (image.Image, error)
}

type drawerSource struct {
	drawer Drawer
}

// FromDrawer wraps something that can render itself
func FromDrawer(drawer Drawer) Source {
	return drawerSource{drawer: drawer}
}

func (s drawerSource) load(width, height int) (image.Image, error) {
	if s.drawer == nil {
		return nil, fmt.Errorf("%w: nil drawer", ErrInvalidSource)
	}

	img, err := s.drawer.Draw(width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to draw image: %w", err)
	}
	if img == nil {
		return nil, fmt.Errorf("%w: drawer returned no image", ErrInvalidSource)
	}
	return img, nil
}
