package views

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestRenderImageFitsBounds(t *testing.T) {
	t.Parallel()

	data := encodePNG(t, 40, 20, color.RGBA{R: 255, A: 255})
	out, err := renderImage(data, 20, 8)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.LessOrEqual(t, len(lines), 8)
	for _, line := range lines {
		assert.Contains(t, line, "▀")
	}
}

func TestRenderImageKeepsAspect(t *testing.T) {
	t.Parallel()

	// A wide image must be limited by the column bound, not the row
	// bound. One text row covers two pixel rows.
	data := encodePNG(t, 100, 10, color.RGBA{G: 255, A: 255})
	out, err := renderImage(data, 50, 40)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.LessOrEqual(t, len(lines), 3, "50 columns of a 10:1 image is at most 5 pixel rows")
}

func TestRenderImageRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := renderImage([]byte("not a png"), 20, 8)
	assert.Error(t, err)
}
