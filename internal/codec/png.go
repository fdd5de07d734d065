// Package codec converts grids to and from PNG images. Cells missing from a
// grid are drawn with the [grid.Out] color, and pixels of that color are
// skipped when reading.
package codec

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/vancomm/levelgen/internal/grid"
)

var ErrTranslucent = errors.New("image has translucent pixels")

func toColor(c color.Color) (grid.Color, bool) {
	r, g, b, a := c.RGBA()
	if a != 0xffff {
		return 0, false
	}
	return grid.ColorFromRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8)), true
}

func fromColor(c grid.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Decode reads an image and returns every pixel that is not [grid.Out].
// Any image format registered with [image] is accepted as long as every
// pixel is fully opaque.
func Decode(r io.Reader) (grid.Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("unable to decode image: %w", err)
	}
	bounds := img.Bounds()
	g := make(grid.Grid, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c, ok := toColor(img.At(x, y))
			if !ok {
				return nil, fmt.Errorf("pixel (%d,%d): %w", x, y, ErrTranslucent)
			}
			if c == grid.Out {
				continue
			}
			g[grid.Pos{X: x - bounds.Min.X, Y: y - bounds.Min.Y}] = c
		}
	}
	return g, nil
}

func Load(path string) (grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

/*
Encode writes g as a PNG. The canvas is the bounding box of g plus a one
pixel border; the border and every hole inside the box are [grid.Out].
*/
func Encode(w io.Writer, g grid.Grid) error {
	lo, hi, err := g.Bounds()
	if err != nil {
		return fmt.Errorf("unable to encode: %w", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, hi.X-lo.X+3, hi.Y-lo.Y+3))
	out := fromColor(grid.Out)
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = out.R
		img.Pix[i+1] = out.G
		img.Pix[i+2] = out.B
		img.Pix[i+3] = out.A
	}
	for p, c := range g {
		img.SetRGBA(p.X-lo.X+1, p.Y-lo.Y+1, fromColor(c))
	}
	return png.Encode(w, img)
}

func Save(path string, g grid.Grid) (err error) {
	if len(g) == 0 {
		return fmt.Errorf("unable to save %s: %w", path, grid.ErrEmptyGrid)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("unable to close %s: %w", path, cerr)
		}
	}()

	if err := Encode(f, g); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
