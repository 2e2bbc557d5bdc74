package render

import (
	"math"

	"github.com/mattn/go-runewidth"
)

// Cell is one terminal character cell of a Grid
// Rune 0 marks an empty cell or the trailing half of a wide glyph
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

var emptyCell = Cell{Rune: 0, Fg: RGBWhite, Bg: RGBBlack}

// Grid is a Surface rasterized onto terminal cells
// Pixel coordinates map onto cells through a per-axis scale derived from the virtual extent
type Grid struct {
	cells []Cell
	cols  int
	rows  int

	w, h   float64 // virtual pixel extent
	cw, ch float64 // pixels per cell

	ops uint64
}

// NewGrid creates a grid of cols×rows cells spanning a w×h pixel surface
func NewGrid(cols, rows int, w, h float64) *Grid {
	g := &Grid{}
	g.Resize(cols, rows)
	g.SetSize(w, h)
	return g
}

// Resize adjusts cell dimensions, reallocates only if capacity insufficient
func (g *Grid) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	size := cols * rows
	if cap(g.cells) < size {
		g.cells = make([]Cell, size)
	} else {
		g.cells = g.cells[:size]
	}
	g.cols = cols
	g.rows = rows
	g.rescale()
	g.reset()
}

// SetSize assigns the virtual pixel extent
func (g *Grid) SetSize(w, h float64) {
	g.w = math.Max(w, 0)
	g.h = math.Max(h, 0)
	g.rescale()
}

func (g *Grid) rescale() {
	g.cw, g.ch = 1, 1
	if g.cols > 0 && g.w > 0 {
		g.cw = g.w / float64(g.cols)
	}
	if g.rows > 0 && g.h > 0 {
		g.ch = g.h / float64(g.rows)
	}
}

// Size returns the virtual pixel extent
func (g *Grid) Size() (float64, float64) {
	return g.w, g.h
}

// Dims returns the cell dimensions
func (g *Grid) Dims() (cols, rows int) {
	return g.cols, g.rows
}

// At returns the cell at col, row or an empty cell when out of bounds
func (g *Grid) At(col, row int) Cell {
	if !g.inBounds(col, row) {
		return emptyCell
	}
	return g.cells[row*g.cols+col]
}

// Ops returns the number of drawing calls applied since creation
func (g *Grid) Ops() uint64 {
	return g.ops
}

func (g *Grid) inBounds(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// reset fills all cells with emptyCell using exponential copy
func (g *Grid) reset() {
	if len(g.cells) == 0 {
		return
	}
	g.cells[0] = emptyCell
	for filled := 1; filled < len(g.cells); filled *= 2 {
		copy(g.cells[filled:], g.cells[:filled])
	}
}

// paint composites c over both layers of a cell, an opaque paint erases the glyph
func (g *Grid) paint(col, row int, c Color) {
	if !g.inBounds(col, row) {
		return
	}
	dst := &g.cells[row*g.cols+col]
	dst.Bg = Blend(dst.Bg, c.RGB, c.A)
	dst.Fg = Blend(dst.Fg, c.RGB, c.A)
	if c.A >= 1 {
		dst.Rune = 0
	}
}

func (g *Grid) col(x float64) int {
	return int(math.Floor(x / g.cw))
}

func (g *Grid) row(y float64) int {
	return int(math.Floor(y / g.ch))
}

// ===== SURFACE API =====

func (g *Grid) Clear() {
	g.ops++
	g.reset()
}

func (g *Grid) Fill(c Color) {
	g.ops++
	if !c.Visible() {
		return
	}
	for i := range g.cells {
		g.cells[i].Bg = Blend(g.cells[i].Bg, c.RGB, c.A)
		g.cells[i].Fg = Blend(g.cells[i].Fg, c.RGB, c.A)
		if c.A >= 1 {
			g.cells[i].Rune = 0
		}
	}
}

func (g *Grid) FillRect(x, y, w, h float64, c Color) {
	g.ops++
	if !c.Visible() || w <= 0 || h <= 0 {
		return
	}
	c0, r0 := g.col(x), g.row(y)
	c1 := int(math.Ceil((x+w)/g.cw)) - 1
	r1 := int(math.Ceil((y+h)/g.ch)) - 1
	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, g.cols-1), min(r1, g.rows-1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			g.paint(col, row, c)
		}
	}
}

// Line rasterizes with Bresenham in cell space, each cell is painted once
func (g *Grid) Line(x0, y0, x1, y1, width float64, c Color) {
	g.ops++
	if !c.Visible() || width <= 0 {
		return
	}
	cx0, cy0 := g.col(x0), g.row(y0)
	cx1, cy1 := g.col(x1), g.row(y1)

	dx := cx1 - cx0
	if dx < 0 {
		dx = -dx
	}
	dy := cy1 - cy0
	if dy < 0 {
		dy = -dy
	}
	sx, sy := 1, 1
	if cx0 > cx1 {
		sx = -1
	}
	if cy0 > cy1 {
		sy = -1
	}
	e := dx - dy
	// Guard against runaway loops on huge off-screen coordinates
	limit := dx + dy + 1
	for i := 0; i <= limit; i++ {
		g.paint(cx0, cy0, c)
		if cx0 == cx1 && cy0 == cy1 {
			return
		}
		e2 := 2 * e
		if e2 > -dy {
			e -= dy
			cx0 += sx
		}
		if e2 < dx {
			e += dx
			cy0 += sy
		}
	}
}

// FillCircle paints every cell whose center lies inside the circle
// Circles smaller than a cell paint the containing cell
func (g *Grid) FillCircle(cx, cy, r float64, c Color) {
	g.ops++
	if !c.Visible() || r <= 0 {
		return
	}
	if r < g.cw/2 && r < g.ch/2 {
		g.paint(g.col(cx), g.row(cy), c)
		return
	}
	g.scanRing(cx, cy, 0, r, c)
}

func (g *Grid) StrokeCircle(cx, cy, r, width float64, c Color) {
	g.ops++
	if !c.Visible() || r <= 0 || width <= 0 {
		return
	}
	half := math.Max(width/2, math.Min(g.cw, g.ch)/2)
	g.scanRing(cx, cy, math.Max(r-half, 0), r+half, c)
}

// scanRing paints cells whose centers fall within [inner, outer] of (cx, cy)
func (g *Grid) scanRing(cx, cy, inner, outer float64, c Color) {
	r0 := max(g.row(cy-outer), 0)
	r1 := min(g.row(cy+outer), g.rows-1)
	c0 := max(g.col(cx-outer), 0)
	c1 := min(g.col(cx+outer), g.cols-1)
	in2, out2 := inner*inner, outer*outer
	for row := r0; row <= r1; row++ {
		py := (float64(row)+0.5)*g.ch - cy
		for col := c0; col <= c1; col++ {
			px := (float64(col)+0.5)*g.cw - cx
			d2 := px*px + py*py
			if d2 <= out2 && (inner == 0 || d2 >= in2) {
				g.paint(col, row, c)
			}
		}
	}
}

// Text places glyphs on the row containing the baseline, blending the glyph color over the cell background
func (g *Grid) Text(x, y float64, s string, size float64, align Align, c Color) {
	g.ops++
	if !c.Visible() || s == "" {
		return
	}
	row := g.row(y - g.ch/2)
	if row < 0 || row >= g.rows {
		return
	}
	width := runewidth.StringWidth(s)
	var col int
	switch align {
	case AlignCenter:
		col = int(math.Round(x/g.cw)) - width/2
	case AlignRight:
		col = int(math.Round(x/g.cw)) - width
	default:
		col = g.col(x)
	}
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if col >= 0 && col+rw <= g.cols {
			dst := &g.cells[row*g.cols+col]
			dst.Rune = r
			dst.Fg = Blend(dst.Bg, c.RGB, c.A)
			if rw == 2 {
				g.cells[row*g.cols+col+1].Rune = 0
			}
		}
		col += rw
	}
}
