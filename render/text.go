package render

import "github.com/mattn/go-runewidth"

// GlyphAspect is the advance width of a single-width monospace glyph relative to its size
const GlyphAspect = 0.6

// TextWidth returns the display width of s in terminal cells
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}

// RuneAdvance returns the pixel advance of r at glyph size px
func RuneAdvance(r rune, px float64) float64 {
	return float64(runewidth.RuneWidth(r)) * px * GlyphAspect
}

// MeasureText returns the pixel width of s at glyph size px
func MeasureText(s string, px float64) float64 {
	return float64(runewidth.StringWidth(s)) * px * GlyphAspect
}

// alignOffset returns the left edge for text of width w anchored at x
func alignOffset(x, w float64, align Align) float64 {
	switch align {
	case AlignCenter:
		return x - w/2
	case AlignRight:
		return x - w
	default:
		return x
	}
}
