package render

import (
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/cyberfx/vmath"
)

// Color is an RGB value with straight (non-premultiplied) alpha in [0, 1]
type Color struct {
	RGB
	A float64
}

// RGBA builds a Color, alpha is clamped to [0, 1]
func RGBA(r, g, b uint8, a float64) Color {
	return Color{RGB: RGB{r, g, b}, A: vmath.Clamp01(a)}
}

// Opaque wraps an RGB with full alpha
func Opaque(c RGB) Color {
	return Color{RGB: c, A: 1}
}

// Hex parses "#rrggbb" or "#rgb" into an opaque Color
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{RGB: RGB{r, g, b}, A: 1}, nil
}

// MustHex is Hex for package-level palette literals, panics on malformed input
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns c with alpha replaced, clamped to [0, 1]
func (c Color) WithAlpha(a float64) Color {
	c.A = vmath.Clamp01(a)
	return c
}

// Fade returns c with alpha multiplied by k, clamped to [0, 1]
func (c Color) Fade(k float64) Color {
	c.A = vmath.Clamp01(c.A * k)
	return c
}

// Visible reports whether drawing c would change anything
func (c Color) Visible() bool {
	return c.A > 0
}

// Mix interpolates two colors in CIE-L*a*b* space, alpha interpolates linearly
func Mix(a, b Color, t float64) Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendLab(cb, t).Clamped().RGB255()
	return Color{RGB: RGB{r, g, bl}, A: vmath.Lerp(a.A, b.A, t)}
}

// CSS formats c as an rgba() string for canvas clients
func (c Color) CSS() string {
	return "rgba(" + strconv.Itoa(int(c.R)) + "," + strconv.Itoa(int(c.G)) + "," +
		strconv.Itoa(int(c.B)) + "," + strconv.FormatFloat(c.A, 'f', 3, 64) + ")"
}

// MarshalJSON encodes c as its CSS string
func (c Color) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(c.CSS())), nil
}

// UnmarshalJSON accepts the CSS form written by MarshalJSON or a #rrggbb hex string
func (c *Color) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("color: %w", err)
	}
	if len(s) > 0 && s[0] == '#' {
		v, err := Hex(s)
		if err != nil {
			return err
		}
		*c = v
		return nil
	}
	var r, g, b int
	var a float64
	if _, err := fmt.Sscanf(s, "rgba(%d,%d,%d,%g)", &r, &g, &b, &a); err != nil {
		return fmt.Errorf("color %q: %w", s, err)
	}
	*c = RGBA(uint8(r), uint8(g), uint8(b), a)
	return nil
}
