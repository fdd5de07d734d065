package engine

import (
	"slices"

	"github.com/vancomm/levelgen/internal/grid"
	"github.com/vancomm/levelgen/internal/rule"
	"github.com/zyedidia/generic/mapset"
)

/*
ValidShifts returns every offset at which r may be applied to g, ordered by
[grid.ComparePos].

A legal placement has to put some wild anchor of the before pattern on an
occupied cell, so candidates are limited to (seed - anchor) for every
non-empty seed of g and every anchor of r. A rule without anchors never
matches.
*/
func ValidShifts(g grid.Grid, r rule.Rule) []grid.Pos {
	anchors := r.Anchors()
	if len(anchors) == 0 {
		return nil
	}

	candidates := mapset.New[grid.Pos]()
	for seed, color := range g {
		if color == grid.Empty {
			continue
		}
		for _, anchor := range anchors {
			candidates.Put(seed.Sub(anchor))
		}
	}

	var shifts []grid.Pos
	candidates.Each(func(offset grid.Pos) {
		if IsValidAt(g, r, offset) {
			shifts = append(shifts, offset)
		}
	})
	slices.SortFunc(shifts, grid.ComparePos)
	return shifts
}
