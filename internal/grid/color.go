package grid

import "fmt"

// Color is a palette entry packed as 0xRRGGBB.
type Color uint32

const (
	Out      Color = 0x000040 // codec border only, never stored in a Grid
	Empty    Color = 0x000000
	Rule     Color = 0xffff00
	RuleThen Color = 0xff8000
	Wild     Color = 0xff00ff
)

func ColorFromRGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// IsConnector reports whether c separates islands in a rule exemplar.
// RuleThen behaves exactly like Rule.
func (c Color) IsConnector() bool {
	return c == Rule || c == RuleThen
}

// Color implements [fmt.Stringer]
func (c Color) String() string {
	switch c {
	case Out:
		return "out"
	case Empty:
		return "empty"
	case Rule:
		return "rule"
	case RuleThen:
		return "rule-then"
	case Wild:
		return "wild"
	default:
		r, g, b := c.RGB()
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
}
