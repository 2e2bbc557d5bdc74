package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// TcellToRGB converts a tcell.Color to RGB
func TcellToRGB(c tcell.Color) RGB {
	if c == tcell.ColorDefault {
		return RGBBlack
	}
	r, g, b := c.RGB()
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// RGBToTcell converts RGB to a true-color tcell.Color
func RGBToTcell(rgb RGB) tcell.Color {
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// Flush copies every cell into scr, the caller is responsible for Show
func (g *Grid) Flush(scr tcell.Screen) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			cell := g.cells[row*g.cols+col]
			style := tcell.StyleDefault.
				Foreground(RGBToTcell(cell.Fg)).
				Background(RGBToTcell(cell.Bg))
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			scr.SetContent(col, row, r, nil, style)
			if runewidth.RuneWidth(r) == 2 {
				col++
			}
		}
	}
}
