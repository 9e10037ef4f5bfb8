package views

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// renderImage scales the PNG onto the terminal cell grid and draws it
// with half blocks: every cell carries two vertical pixels, the upper
// one as the foreground of '▀' and the lower one as the background.
func renderImage(data []byte, maxCols, maxRows int) (string, error) {
	src, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode png: %w", err)
	}

	bounds := src.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return "", fmt.Errorf("empty image")
	}

	// A cell is one pixel wide and two pixels tall.
	scaleX := float64(maxCols) / float64(srcW)
	scaleY := float64(maxRows*2) / float64(srcH)
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}

	cols := int(float64(srcW) * scale)
	rows := int(float64(srcH) * scale / 2)
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)

	out := &strings.Builder{}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			upper := hexColor(dst.RGBAAt(x, y*2))
			lower := hexColor(dst.RGBAAt(x, y*2+1))
			cell := lipgloss.NewStyle().
				Foreground(lipgloss.Color(upper)).
				Background(lipgloss.Color(lower)).
				Render("▀")
			out.WriteString(cell)
		}
		if y < rows-1 {
			out.WriteString("\n")
		}
	}
	return out.String(), nil
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
