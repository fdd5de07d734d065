// Package preview draws a grid on a terminal, two characters per cell.
package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/vancomm/levelgen/internal/grid"
)

type Renderer struct {
	au aurora.Aurora
}

// New returns a renderer; with colors off every cell is drawn by its glyph
// alone.
func New(colors bool) *Renderer {
	return &Renderer{au: aurora.NewAurora(colors)}
}

func glyph(c grid.Color) string {
	switch c {
	case grid.Empty:
		return ". "
	case grid.Wild:
		return "* "
	case grid.Rule:
		return "= "
	case grid.RuleThen:
		return "> "
	default:
		return "# "
	}
}

// xterm maps c to the nearest entry of the 6x6x6 xterm-256 color cube.
func xterm(c grid.Color) uint8 {
	r, g, b := c.RGB()
	level := func(v uint8) uint8 {
		return uint8((int(v)*5 + 127) / 255)
	}
	return 16 + 36*level(r) + 6*level(g) + level(b)
}

// Render writes g row by row within its bounding box. Holes are left blank.
func (r *Renderer) Render(w io.Writer, g grid.Grid) error {
	lo, hi, err := g.Bounds()
	if err != nil {
		return fmt.Errorf("unable to render: %w", err)
	}
	var b strings.Builder
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			c, ok := g[grid.Pos{X: x, Y: y}]
			if !ok {
				fmt.Fprint(&b, "  ")
				continue
			}
			fmt.Fprint(&b, r.au.BgIndex(xterm(c), glyph(c)))
		}
		fmt.Fprint(&b, "\n")
	}
	_, err = io.WriteString(w, b.String())
	return err
}
