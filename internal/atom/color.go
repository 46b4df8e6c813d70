package atom

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

// ParseColor reads "#RRGGBB" or the short "#RGB" form.
func ParseColor(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	r, g, b := c.RGB255()
	return Color{r, g, b}, nil
}

// MustColor is ParseColor for package-level constants.
func MustColor(hex string) Color {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Hex returns the lowercase "#rrggbb" form.
func (c Color) Hex() string { return c.Colorful().Hex() }

// Blend mixes toward o in Lab space; t=0 is c, t=1 is o.
func (c Color) Blend(o Color, t float64) Color {
	r, g, b := c.Colorful().BlendLab(o.Colorful(), t).Clamped().RGB255()
	return Color{r, g, b}
}

func (c Color) MarshalText() ([]byte, error) { return []byte(c.Hex()), nil }

func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
