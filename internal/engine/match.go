// Package engine matches rewrite rules against a level and drives the
// stochastic rewrite loop.
package engine

import (
	"github.com/vancomm/levelgen/internal/grid"
	"github.com/vancomm/levelgen/internal/rule"
)

/*
IsValidAt reports whether r may be applied to g when moved by offset.

Every cell of the before pattern has to land inside g: wild cells on any
non-empty color, other cells on exactly their own color. Every cell the
after pattern adds on top of before has to land on an empty cell of g.
*/
func IsValidAt(g grid.Grid, r rule.Rule, offset grid.Pos) bool {
	for p, color := range r.Before {
		current, ok := g[p.Add(offset)]
		if !ok {
			return false
		}
		if color == grid.Wild {
			if current == grid.Empty {
				return false
			}
		} else if current != color {
			return false
		}
	}
	for p := range r.After {
		if _, ok := r.Before[p]; ok {
			continue
		}
		current, ok := g[p.Add(offset)]
		if !ok {
			// must remain fully within the level
			return false
		}
		if current != grid.Empty {
			return false
		}
	}
	return true
}

/*
Apply rewrites g in place: the before pattern is cleared first, so a before
larger than its after leaves empty cells behind, then the after pattern is
painted. Wild cells are never written.

The caller must have checked [IsValidAt]; touching a cell outside g panics
with an [AssertionError].
*/
func Apply(g grid.Grid, r rule.Rule, offset grid.Pos) {
	paint := func(p grid.Pos, color grid.Color) {
		target := p.Add(offset)
		if _, ok := g[target]; !ok {
			panic(assertionf("rule cell %s lands outside the level at %s", p, target))
		}
		g[target] = color
	}
	for p, color := range r.Before {
		if color != grid.Wild {
			paint(p, grid.Empty)
		}
	}
	for p, color := range r.After {
		if color != grid.Wild {
			paint(p, color)
		}
	}
}
