package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(width, height int, c color.NRGBA) RGBA {
	pix := make([]byte, 0, width*height*4)
	for i := 0; i < width*height; i++ {
		pix = append(pix, c.R, c.G, c.B, c.A)
	}
	return RGBA{Width: width, Height: height, Pix: pix}
}

func countBlack(img *image.Gray) int {
	count := 0
	for _, v := range img.Pix {
		if v == 0 {
			count++
		}
	}
	return count
}

func TestPrepareThreshold(t *testing.T) {
	black := solid(8, 8, color.NRGBA{A: 0xFF})

	img, err := Prepare(black, 8, 8, AlgorithmThreshold, 128)
	require.NoError(t, err)
	assert.Equal(t, 64, countBlack(img))

	white := solid(8, 8, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	img, err = Prepare(white, 8, 8, "", 0)
	require.NoError(t, err)
	assert.Zero(t, countBlack(img))
}

func TestPrepareFlattensTransparentPixelsOntoWhite(t *testing.T) {
	transparent := solid(8, 8, color.NRGBA{})

	img, err := Prepare(transparent, 8, 8, AlgorithmThreshold, 128)
	require.NoError(t, err)
	assert.Zero(t, countBlack(img))
}

func TestPrepareResizes(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 4))

	img, err := Prepare(FromImage(src), 16, 8, AlgorithmThreshold, 128)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 8), img.Bounds())
	assert.Equal(t, 16*8, countBlack(img))
}

type drawerFunc func(width, height int) (image.Image, error)

func (f drawerFunc) Draw(width, height int) (image.Image, error) { return f(width, height) }

func TestPrepareDrawer(t *testing.T) {
	var requested image.Point
	drawer := drawerFunc(func(width, height int) (image.Image, error) {
		requested = image.Pt(width, height)
		return image.NewGray(image.Rect(0, 0, width, height)), nil
	})

	img, err := Prepare(FromDrawer(drawer), 24, 16, AlgorithmThreshold, 0)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(24, 16), requested)
	assert.Equal(t, 24*16, countBlack(img))

	failing := drawerFunc(func(int, int) (image.Image, error) {
		return nil, errors.New("no canvas")
	})
	_, err = Prepare(FromDrawer(failing), 8, 8, AlgorithmThreshold, 0)
	assert.ErrorContains(t, err, "no canvas")
}

func TestPrepareInvalidSource(t *testing.T) {
	_, err := Prepare(RGBA{Width: 8, Height: 8, Pix: make([]byte, 10)}, 8, 8, AlgorithmThreshold, 0)
	assert.ErrorIs(t, err, ErrInvalidSource)

	_, err = Prepare(FromImage(nil), 8, 8, AlgorithmThreshold, 0)
	assert.ErrorIs(t, err, ErrInvalidSource)

	_, err = Prepare(nil, 8, 8, AlgorithmThreshold, 0)
	assert.ErrorIs(t, err, ErrInvalidSource)
}

func TestDitherMidGray(t *testing.T) {
	gray := solid(8, 8, color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF})

	for _, algorithm := range []Algorithm{AlgorithmBayer, AlgorithmFloydSteinberg, AlgorithmAtkinson} {
		t.Run(string(algorithm), func(t *testing.T) {
			img, err := Prepare(gray, 8, 8, algorithm, 128)
			require.NoError(t, err)

			black := countBlack(img)
			assert.Greater(t, black, 0)
			assert.Less(t, black, 64)
		})
	}
}

func TestDitherUnknownAlgorithm(t *testing.T) {
	_, err := Dither(image.NewRGBA(image.Rect(0, 0, 8, 8)), "halftone", 0)
	assert.Error(t, err)
}

func TestLuminance(t *testing.T) {
	assert.Equal(t, 255, luminance(color.White))
	assert.Equal(t, 0, luminance(color.Black))
	assert.Equal(t, 76, luminance(color.RGBA{R: 0xFF, A: 0xFF}))
}
