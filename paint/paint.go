// Package paint holds the RGB color type shared by the simulation and both front ends.
package paint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned for strings that are neither a known name nor a hex triplet
var ErrInvalidColor = errors.New("invalid color")

// Color is an opaque 24-bit RGB color
// Implements image/color.Color so it can be handed to ebiten directly
type Color struct {
	R, G, B uint8
}

// Common colors
var (
	Black = Color{}
	White = Color{R: 255, G: 255, B: 255}
	Gray  = Color{R: 128, G: 128, B: 128}
)

// RGB creates a color from 8-bit components
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Parse accepts "#rgb", "#rrggbb" or an SVG color name ("blue", "tomato")
func Parse(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Color{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}

	if strings.HasPrefix(s, "#") {
		cc, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return fromColorful(cc), nil
	}

	named, ok := colornames.Map[s]
	if !ok {
		return Color{}, fmt.Errorf("%w: unknown name %q", ErrInvalidColor, s)
	}
	return Color{R: named.R, G: named.G, B: named.B}, nil
}

// MustParse is Parse for compile-time constants, panics on error
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the "#rrggbb" form
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// String implements fmt.Stringer
func (c Color) String() string {
	return c.Hex()
}

// RGBA implements image/color.Color with full opacity
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Contrast returns black or white, whichever reads better on top of c
func (c Color) Contrast() Color {
	l, _, _ := c.colorful().Lab()
	if l > 0.6 {
		return Black
	}
	return White
}

// Distance is the perceptual (CIE Lab) distance between two colors
func (c Color) Distance(other Color) float64 {
	return c.colorful().DistanceLab(other.colorful())
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(cc colorful.Color) Color {
	r, g, b := cc.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}
