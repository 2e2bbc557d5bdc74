package effect

import "github.com/lixenwraith/cyberfx/render"

// Neon palette shared across effects
var (
	colorBlack    = render.MustHex("#000000")
	colorWhite    = render.MustHex("#ffffff")
	colorGreen    = render.MustHex("#00ff41")
	colorCyan     = render.MustHex("#00fff0")
	colorMagenta  = render.MustHex("#ff00ff")
	colorRed      = render.MustHex("#ff0040")
	colorAmber    = render.MustHex("#ffb000")
	colorDimGreen = render.MustHex("#0a3d1a")
	colorUABlue   = render.MustHex("#0057b7")
	colorUAYellow = render.MustHex("#ffd700")
)

// pick returns a random palette entry
func pick(env Env, palette []render.Color) render.Color {
	return palette[env.Rand.Intn(len(palette))]
}

// mustPalette parses a list of hex colors
func mustPalette(hex ...string) []render.Color {
	out := make([]render.Color, len(hex))
	for i, h := range hex {
		out[i] = render.MustHex(h)
	}
	return out
}
