package grid

import "fmt"

type Pos struct {
	X, Y int
}

// Pos implements [fmt.Stringer]
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func (p Pos) Shift(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

func (p Pos) Add(d Pos) Pos {
	return p.Shift(d.X, d.Y)
}

func (p Pos) Sub(d Pos) Pos {
	return p.Shift(-d.X, -d.Y)
}

func (p Pos) Neg() Pos {
	return Pos{X: -p.X, Y: -p.Y}
}

// Neighbors4 returns the orthogonal neighbors: right, down, left, up.
func (p Pos) Neighbors4() [4]Pos {
	return [4]Pos{
		p.Shift(1, 0),
		p.Shift(0, 1),
		p.Shift(-1, 0),
		p.Shift(0, -1),
	}
}

// Rotated90 maps (x, y) to (-y, x). Four applications are the identity.
func (p Pos) Rotated90() Pos {
	return Pos{X: -p.Y, Y: p.X}
}

// ComparePos orders positions by x, then by y.
func ComparePos(a, b Pos) int {
	if a.X < b.X {
		return -1
	}
	if a.X > b.X {
		return 1
	}
	if a.Y < b.Y {
		return -1
	}
	if a.Y > b.Y {
		return 1
	}
	return 0
}
