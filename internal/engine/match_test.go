package engine_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/levelgen/internal/engine"
	"github.com/vancomm/levelgen/internal/grid"
	"github.com/vancomm/levelgen/internal/rule"
)

var (
	colorA = grid.ColorFromRGB(200, 0, 0)
	colorB = grid.ColorFromRGB(0, 200, 0)
	colorX = grid.ColorFromRGB(0, 0, 200)
)

func TestMain(m *testing.M) {
	engine.Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func TestRecolorOnlyOnce(t *testing.T) {
	level := grid.Grid{{X: 0, Y: 0}: colorA}
	r := rule.Rule{
		Before: grid.Grid{{X: 0, Y: 0}: colorA},
		After:  grid.Grid{{X: 0, Y: 0}: colorB},
	}
	origin := grid.Pos{}

	require.True(t, engine.IsValidAt(level, r, origin))
	engine.Apply(level, r, origin)
	assert.Equal(t, grid.Grid{{X: 0, Y: 0}: colorB}, level)
	assert.False(t, engine.IsValidAt(level, r, origin))
}

func TestGrowthOnly(t *testing.T) {
	r := rule.Rule{
		Before: grid.Grid{},
		After:  grid.Grid{{X: 0, Y: 0}: colorX},
	}

	assert.True(t, engine.IsValidAt(grid.Grid{{X: 0, Y: 0}: grid.Empty}, r, grid.Pos{}))
	assert.False(t, engine.IsValidAt(grid.Grid{{X: 1, Y: 0}: grid.Empty}, r, grid.Pos{}))
	assert.False(t, engine.IsValidAt(grid.Grid{{X: 0, Y: 0}: colorA}, r, grid.Pos{}))
	assert.True(t, engine.IsValidAt(grid.Grid{{X: 1, Y: 0}: grid.Empty}, r, grid.Pos{X: 1}))
}

func TestIsValidAt(t *testing.T) {
	rows := [][]grid.Color{
		{colorB, colorA, grid.Empty},
		{grid.Empty, colorA, grid.Empty},
		{colorB, colorB, grid.Empty},
		{colorB, colorA},
		{colorB, colorA, colorX},
	}
	level := make(grid.Grid)
	for y, row := range rows {
		for x, c := range row {
			level[grid.Pos{X: x, Y: y}] = c
		}
	}
	grow := rule.Rule{
		Before: grid.Grid{{X: 0, Y: 0}: grid.Wild, {X: 1, Y: 0}: colorA},
		After:  grid.Grid{{X: 0, Y: 0}: grid.Wild, {X: 1, Y: 0}: grid.Empty, {X: 2, Y: 0}: colorA},
	}

	testCases := []struct {
		name   string
		offset grid.Pos
		want   bool
	}{
		{"fits", grid.Pos{X: 0, Y: 0}, true},
		{"wild on empty", grid.Pos{X: 0, Y: 1}, false},
		{"before color mismatch", grid.Pos{X: 0, Y: 2}, false},
		{"after outside the level", grid.Pos{X: 0, Y: 3}, false},
		{"after on occupied cell", grid.Pos{X: 0, Y: 4}, false},
		{"before outside the level", grid.Pos{X: 0, Y: 5}, false},
	}
	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, engine.IsValidAt(level, grow, test.offset))
		})
	}
}

func TestIsValidAtDoesNotMutate(t *testing.T) {
	level := grid.Grid{{X: 0, Y: 0}: colorB, {X: 1, Y: 0}: colorA}
	before := level.Clone()
	r := rule.Rule{
		Before: grid.Grid{{X: 0, Y: 0}: grid.Wild, {X: 1, Y: 0}: colorA},
		After:  grid.Grid{{X: 0, Y: 0}: grid.Wild, {X: 1, Y: 0}: colorX},
	}
	engine.IsValidAt(level, r, grid.Pos{})
	assert.Equal(t, before, level)
}

func TestApplyClearsBeforeAndKeepsWilds(t *testing.T) {
	level := grid.Grid{
		{X: 0, Y: 0}: colorB,
		{X: 1, Y: 0}: colorA,
		{X: 2, Y: 0}: colorA,
		{X: 0, Y: 1}: grid.Empty,
	}
	// shrink a two-cell bar into a single cell dropping down
	r := rule.Rule{
		Before: grid.Grid{{X: 0, Y: 0}: grid.Wild, {X: 1, Y: 0}: colorA, {X: 2, Y: 0}: colorA},
		After:  grid.Grid{{X: 0, Y: 0}: grid.Wild, {X: 0, Y: 1}: colorX},
	}
	require.True(t, engine.IsValidAt(level, r, grid.Pos{}))

	engine.Apply(level, r, grid.Pos{})
	want := grid.Grid{
		{X: 0, Y: 0}: colorB,
		{X: 1, Y: 0}: grid.Empty,
		{X: 2, Y: 0}: grid.Empty,
		{X: 0, Y: 1}: colorX,
	}
	if diff := cmp.Diff(want, level); diff != "" {
		t.Errorf("level after apply (-want +got):\n%s", diff)
	}
}

func TestApplyWithOffset(t *testing.T) {
	level := grid.Grid{{X: 5, Y: 5}: colorB, {X: 6, Y: 5}: grid.Empty}
	r := rule.Rule{
		Before: grid.Grid{{X: 0, Y: 0}: grid.Wild},
		After:  grid.Grid{{X: 0, Y: 0}: grid.Wild, {X: 1, Y: 0}: colorX},
	}
	offset := grid.Pos{X: 5, Y: 5}
	require.True(t, engine.IsValidAt(level, r, offset))

	engine.Apply(level, r, offset)
	assert.Equal(t, grid.Grid{{X: 5, Y: 5}: colorB, {X: 6, Y: 5}: colorX}, level)
}

func TestApplyOutsidePanics(t *testing.T) {
	level := grid.Grid{{X: 0, Y: 0}: colorA}
	r := rule.Rule{
		Before: grid.Grid{{X: 0, Y: 0}: colorA},
		After:  grid.Grid{{X: 0, Y: 0}: colorA, {X: 1, Y: 0}: colorB},
	}
	require.False(t, engine.IsValidAt(level, r, grid.Pos{}))

	defer func() {
		rec := recover()
		require.NotNil(t, rec)
		err, ok := rec.(error)
		require.True(t, ok, "panic value %v is not an error", rec)
		var ae engine.AssertionError
		assert.True(t, errors.As(err, &ae))
	}()
	engine.Apply(level, r, grid.Pos{})
}
