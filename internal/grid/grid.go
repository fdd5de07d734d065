// Package grid holds the sparse colored grid shared by levels and rule
// patterns. A position missing from a Grid lies outside of it, which is
// different from a position holding [Empty].
package grid

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

var ErrEmptyGrid = errors.New("grid is empty")

type Grid map[Pos]Color

func (g Grid) Clone() Grid {
	return maps.Clone(g)
}

// Shift returns a copy of g with every position translated by delta.
func (g Grid) Shift(delta Pos) Grid {
	shifted := make(Grid, len(g))
	for p, c := range g {
		shifted[p.Add(delta)] = c
	}
	return shifted
}

func (g Grid) Equal(other Grid) bool {
	return maps.Equal(g, other)
}

// Bounds returns the min and max corners of the occupied area.
func (g Grid) Bounds() (lo, hi Pos, err error) {
	if len(g) == 0 {
		return Pos{}, Pos{}, ErrEmptyGrid
	}
	first := true
	for p := range g {
		if first {
			lo, hi = p, p
			first = false
			continue
		}
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	return lo, hi, nil
}

// Positions returns every key of g ordered by [ComparePos].
func (g Grid) Positions() []Pos {
	return slices.SortedFunc(maps.Keys(g), ComparePos)
}

// PositionsOf returns the sorted positions holding color c.
func (g Grid) PositionsOf(c Color) []Pos {
	var ps []Pos
	for p, color := range g {
		if color == c {
			ps = append(ps, p)
		}
	}
	slices.SortFunc(ps, ComparePos)
	return ps
}

func (g Grid) Count(c Color) (n int) {
	for _, color := range g {
		if color == c {
			n++
		}
	}
	return
}

// Colors returns the distinct colors present in g, ascending.
func (g Grid) Colors() []Color {
	seen := make(map[Color]struct{})
	for _, c := range g {
		seen[c] = struct{}{}
	}
	return slices.Sorted(maps.Keys(seen))
}

// Grid implements [fmt.Stringer]
func (g Grid) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "{")
	for i, p := range g.Positions() {
		if i > 0 {
			fmt.Fprint(&b, " ")
		}
		fmt.Fprintf(&b, "%s:%s", p, g[p])
	}
	fmt.Fprint(&b, "}")
	return b.String()
}
