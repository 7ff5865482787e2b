// Package rgb provides the 8-bit RGB color used for sphere colors and pixels.
package rgb

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an 8-bit-per-channel RGB color.
type Color struct {
	R, G, B uint8
}

// Predefined colors.
var (
	White = Color{255, 255, 255}
	Black = Color{0, 0, 0}
	Red   = Color{255, 0, 0}
	Green = Color{0, 255, 0}
	Blue  = Color{0, 0, 255}
)

// Scale multiplies every channel by k and saturates at 255.
// k is expected to be non-negative; negative or NaN products clamp to 0.
func (c Color) Scale(k float64) Color {
	return Color{
		R: scaleChannel(c.R, k),
		G: scaleChannel(c.G, k),
		B: scaleChannel(c.B, k),
	}
}

func scaleChannel(ch uint8, k float64) uint8 {
	v := float64(ch) * k
	switch {
	case !(v > 0):
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

// RGBA implements color.Color. Colors are always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex formats the color as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex parses "#RRGGBB" or "RRGGBB".
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
