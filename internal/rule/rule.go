// Package rule describes local rewrite rules and parses them out of exemplar
// grids drawn by hand.
package rule

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/levelgen/internal/grid"
)

var Log = logrus.New()

var ErrWildMismatch = errors.New("wild cells of before and after do not line up")

// Rule rewrites the Before pattern into the After pattern. Both grids share
// one coordinate frame anchored on their wild cells.
type Rule struct {
	Before grid.Grid
	After  grid.Grid
}

// Rule implements [fmt.Stringer]
func (r Rule) String() string {
	return fmt.Sprintf("%s -> %s", r.Before, r.After)
}

func rotate(g grid.Grid) grid.Grid {
	rotated := make(grid.Grid, len(g))
	for p, c := range g {
		rotated[p.Rotated90()] = c
	}
	return rotated
}

// Rotated90 turns both patterns a quarter turn with the same handedness.
func (r Rule) Rotated90() Rule {
	return Rule{
		Before: rotate(r.Before),
		After:  rotate(r.After),
	}
}

// Rotations returns r turned by 0, 90, 180 and 270 degrees.
func (r Rule) Rotations() [4]Rule {
	var rots [4]Rule
	rots[0] = Rule{Before: r.Before.Clone(), After: r.After.Clone()}
	for i := 1; i < len(rots); i++ {
		rots[i] = rots[i-1].Rotated90()
	}
	return rots
}

// Anchors returns the sorted wild positions of Before.
func (r Rule) Anchors() []grid.Pos {
	return r.Before.PositionsOf(grid.Wild)
}

// Validate checks that Before and After carry the same wild skeleton.
func (r Rule) Validate() error {
	before := wildSkeleton(r.Before)
	after := wildSkeleton(r.After)
	if !slices.Equal(before, after) {
		return fmt.Errorf("%w: before %v, after %v", ErrWildMismatch, before, after)
	}
	return nil
}

// wildSkeleton returns the wild positions of g translated so that their
// bounding box starts at the origin, in sorted order.
func wildSkeleton(g grid.Grid) []grid.Pos {
	wilds := g.PositionsOf(grid.Wild)
	normalize(wilds)
	return wilds
}

// normalize moves ps so that its bounding box starts at the origin, sorts it
// and returns the translation that was applied. An empty ps needs none.
func normalize(ps []grid.Pos) grid.Pos {
	if len(ps) == 0 {
		return grid.Pos{}
	}
	lo := ps[0]
	for _, p := range ps[1:] {
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
	}
	shift := lo.Neg()
	for i := range ps {
		ps[i] = ps[i].Add(shift)
	}
	slices.SortFunc(ps, grid.ComparePos)
	return shift
}
