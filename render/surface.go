package render

// Align selects horizontal text anchoring relative to the x coordinate
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is a fixed-size 2D drawing target addressed in pixel coordinates
// Colors carry their own alpha, every op composites over existing content
type Surface interface {
	// Size returns the pixel extent, zero means not yet laid out
	Size() (w, h float64)

	// Clear resets the whole surface to transparent black
	Clear()

	// Fill composites c over the whole surface
	Fill(c Color)

	FillRect(x, y, w, h float64, c Color)
	Line(x0, y0, x1, y1, width float64, c Color)
	FillCircle(cx, cy, r float64, c Color)
	StrokeCircle(cx, cy, r, width float64, c Color)

	// Text draws s with its baseline at y, size is the nominal glyph height in pixels
	Text(x, y float64, s string, size float64, align Align, c Color)
}

// Resizer is implemented by surfaces whose pixel extent can be assigned
type Resizer interface {
	SetSize(w, h float64)
}
