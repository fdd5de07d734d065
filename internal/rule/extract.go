package rule

import (
	"slices"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/levelgen/internal/grid"
	"github.com/zyedidia/generic/mapset"
)

/*
An exemplar is a single image holding many rule drawings. Every drawing is
an island of ordinary cells; islands are joined by wires of connector cells.
An island linked by a wire to another island rewrites into it, and the other
way around.
*/
type exemplar struct {
	src     grid.Grid
	islands []grid.Grid
	owner   map[grid.Pos]int // island index of every non-connector cell
}

func isIsland(c grid.Color) bool {
	return !c.IsConnector()
}

/*
flood collects the 4-connected component of start made of cells whose color
satisfies keep. Every reached cell is put into visited.
*/
func flood(
	g grid.Grid, start grid.Pos,
	keep func(grid.Color) bool, visited mapset.Set[grid.Pos],
) []grid.Pos {
	var (
		queue deque.Deque[grid.Pos]
		comp  []grid.Pos
	)
	visited.Put(start)
	queue.PushBack(start)
	for queue.Len() > 0 {
		p := queue.PopFront()
		comp = append(comp, p)
		for _, n := range p.Neighbors4() {
			c, ok := g[n]
			if !ok || visited.Has(n) || !keep(c) {
				continue
			}
			visited.Put(n)
			queue.PushBack(n)
		}
	}
	return comp
}

// segment splits the non-connector cells of g into islands. Islands are
// numbered in the order their smallest position is met.
func segment(g grid.Grid) *exemplar {
	e := &exemplar{
		src:   g,
		owner: make(map[grid.Pos]int),
	}
	visited := mapset.New[grid.Pos]()
	for _, p := range g.Positions() {
		if visited.Has(p) || !isIsland(g[p]) {
			continue
		}
		island := make(grid.Grid)
		for _, q := range flood(g, p, isIsland, visited) {
			island[q] = g[q]
			e.owner[q] = len(e.islands)
		}
		e.islands = append(e.islands, island)
	}
	return e
}

/*
links returns, for every island, the sorted indices of the other islands it
reaches through a wire. A wire may bend and branch; every island touching
any of its cells is reachable from every other island touching it.
*/
func (e *exemplar) links() [][]int {
	reach := make([]mapset.Set[int], len(e.islands))
	for i := range reach {
		reach[i] = mapset.New[int]()
	}

	visited := mapset.New[grid.Pos]()
	for _, p := range e.src.Positions() {
		if visited.Has(p) || !e.src[p].IsConnector() {
			continue
		}
		touched := mapset.New[int]()
		for _, w := range flood(e.src, p, grid.Color.IsConnector, visited) {
			for _, n := range w.Neighbors4() {
				if i, ok := e.owner[n]; ok {
					touched.Put(i)
				}
			}
		}
		touched.Each(func(a int) {
			touched.Each(func(b int) {
				if a != b {
					reach[a].Put(b)
				}
			})
		})
	}

	links := make([][]int, len(reach))
	for i, set := range reach {
		set.Each(func(j int) {
			links[i] = append(links[i], j)
		})
		slices.Sort(links[i])
	}
	return links
}

// anchorShift is the translation putting the wild cells of island at the
// origin. Islands without wild cells are anchored on their bounding box.
func anchorShift(island grid.Grid) grid.Pos {
	anchors := island.PositionsOf(grid.Wild)
	if len(anchors) == 0 {
		anchors = island.Positions()
	}
	return normalize(anchors)
}

func align(before, after grid.Grid) (Rule, error) {
	r := Rule{
		Before: before.Shift(anchorShift(before)),
		After:  after.Shift(anchorShift(after)),
	}
	if err := r.Validate(); err != nil {
		return Rule{}, err
	}
	return r, nil
}

/*
Extract parses every rule drawn in the exemplar g. Each pair of islands
joined by a wire yields a rule in both directions. Pairs whose wild cells do
not line up are logged and left out.
*/
func Extract(g grid.Grid) ([]Rule, error) {
	if len(g) == 0 {
		return nil, grid.ErrEmptyGrid
	}
	Log.WithField("colors", g.Colors()).Debug("exemplar palette")

	e := segment(g)
	var rules []Rule
	for a, targets := range e.links() {
		for _, b := range targets {
			fields := logrus.Fields{"before": a, "after": b}
			if e.islands[a].Count(grid.Wild) == 0 || e.islands[b].Count(grid.Wild) == 0 {
				Log.WithFields(fields).Debug("island has no wild cells")
			}
			r, err := align(e.islands[a], e.islands[b])
			if err != nil {
				Log.WithFields(fields).WithError(err).Warn("rule rejected")
				continue
			}
			Log.WithFields(fields).Debug("rule extracted")
			rules = append(rules, r)
		}
	}
	Log.WithFields(logrus.Fields{
		"islands": len(e.islands),
		"rules":   len(rules),
	}).Debug("exemplar parsed")
	return rules, nil
}
