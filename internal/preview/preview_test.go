package preview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/levelgen/internal/grid"
)

func TestRenderPlain(t *testing.T) {
	g := grid.Grid{
		{X: 1, Y: 1}: grid.Wild,
		{X: 2, Y: 1}: grid.ColorFromRGB(10, 20, 30),
		{X: 1, Y: 2}: grid.Empty,
		{X: 3, Y: 2}: grid.Rule,
	}
	var buf bytes.Buffer
	require.NoError(t, New(false).Render(&buf, g))

	want := strings.Join([]string{
		"* #   ",
		".   = ",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestRenderColors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(true).Render(&buf, grid.Grid{{X: 0, Y: 0}: grid.Wild}))

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "* ")
}

func TestRenderEmpty(t *testing.T) {
	assert.ErrorIs(t, New(false).Render(&bytes.Buffer{}, grid.Grid{}), grid.ErrEmptyGrid)
}

func TestXterm(t *testing.T) {
	assert.Equal(t, uint8(16), xterm(grid.Empty))
	assert.Equal(t, uint8(231), xterm(grid.ColorFromRGB(255, 255, 255)))
	assert.Equal(t, uint8(201), xterm(grid.Wild))
	assert.Equal(t, uint8(226), xterm(grid.Rule))
}
