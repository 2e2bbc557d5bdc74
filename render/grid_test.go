package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestGridScale(t *testing.T) {
	g := NewGrid(58, 30, 580, 300)
	w, h := g.Size()
	if w != 580 || h != 300 {
		t.Fatalf("Size = %v×%v", w, h)
	}
	cols, rows := g.Dims()
	if cols != 58 || rows != 30 {
		t.Fatalf("Dims = %d×%d", cols, rows)
	}

	g.FillRect(0, 0, 10, 10, Opaque(RGBWhite))
	if g.At(0, 0).Bg != RGBWhite {
		t.Error("cell 0,0 should be painted")
	}
	if g.At(1, 0).Bg != RGBBlack {
		t.Error("cell 1,0 should be untouched")
	}
}

func TestGridClear(t *testing.T) {
	g := NewGrid(10, 10, 100, 100)
	g.Fill(RGBA(255, 0, 0, 1))
	g.Text(0, 10, "hi", 10, AlignLeft, Opaque(RGBWhite))
	g.Clear()
	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			if c := g.At(col, row); c != emptyCell {
				t.Fatalf("cell %d,%d = %+v after Clear", col, row, c)
			}
		}
	}
}

func TestGridAlphaComposite(t *testing.T) {
	g := NewGrid(4, 4, 40, 40)
	g.Fill(RGBA(200, 0, 0, 0.5))
	if got := g.At(2, 2).Bg; got != (RGB{100, 0, 0}) {
		t.Errorf("half alpha fill = %v", got)
	}
	g.FillRect(0, 0, 40, 40, RGBA(0, 0, 0, 0))
	if got := g.At(2, 2).Bg; got != (RGB{100, 0, 0}) {
		t.Errorf("transparent rect changed cell to %v", got)
	}
}

func TestGridLine(t *testing.T) {
	g := NewGrid(10, 10, 100, 100)
	g.Line(5, 5, 95, 95, 1, Opaque(RGBWhite))
	for i := 0; i < 10; i++ {
		if g.At(i, i).Bg != RGBWhite {
			t.Errorf("diagonal cell %d not painted", i)
		}
	}
	if g.At(0, 9).Bg != RGBBlack {
		t.Error("off-diagonal cell painted")
	}
}

func TestGridCircle(t *testing.T) {
	g := NewGrid(20, 20, 200, 200)
	g.FillCircle(100, 100, 30, Opaque(RGBWhite))
	if g.At(10, 10).Bg != RGBWhite {
		t.Error("circle center not painted")
	}
	if g.At(0, 0).Bg != RGBBlack {
		t.Error("corner painted by circle")
	}

	g.Clear()
	g.FillCircle(55, 55, 1, Opaque(RGBWhite))
	if g.At(5, 5).Bg != RGBWhite {
		t.Error("sub-cell circle should paint containing cell")
	}
}

func TestGridText(t *testing.T) {
	g := NewGrid(20, 5, 200, 50)
	g.Text(100, 30, "abcd", 10, AlignCenter, Opaque(RGBWhite))
	var got []rune
	for col := 0; col < 20; col++ {
		if r := g.At(col, 2).Rune; r != 0 {
			got = append(got, r)
		}
	}
	if string(got) != "abcd" {
		t.Errorf("row text = %q", string(got))
	}
	if g.At(8, 2).Rune != 'a' {
		t.Errorf("centered text should start at col 8, got %q", g.At(8, 2).Rune)
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(5, 5, 50, 50)
	g.FillRect(-100, -100, 10, 10, Opaque(RGBWhite))
	g.Line(-1000, -1000, -900, -900, 1, Opaque(RGBWhite))
	g.Text(-500, 10, "x", 10, AlignLeft, Opaque(RGBWhite))
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			if g.At(col, row) != emptyCell {
				t.Fatalf("cell %d,%d painted by off-surface op", col, row)
			}
		}
	}
}

func TestGridFlush(t *testing.T) {
	scr := tcell.NewSimulationScreen("")
	if err := scr.Init(); err != nil {
		t.Fatal(err)
	}
	defer scr.Fini()
	scr.SetSize(4, 2)

	g := NewGrid(4, 2, 40, 20)
	g.FillRect(0, 0, 10, 10, Opaque(RGB{0, 255, 65}))
	g.Text(10, 15, "ok", 10, AlignLeft, Opaque(RGBWhite))
	g.Flush(scr)
	scr.Show()

	mainc, _, style, _ := scr.GetContent(1, 1)
	if mainc != 'o' {
		t.Errorf("rune at 1,1 = %q", mainc)
	}
	fg, _, _ := style.Decompose()
	if TcellToRGB(fg) != RGBWhite {
		t.Errorf("fg = %v", TcellToRGB(fg))
	}
	_, _, style, _ = scr.GetContent(0, 0)
	_, bg, _ := style.Decompose()
	if TcellToRGB(bg) != (RGB{0, 255, 65}) {
		t.Errorf("bg = %v", TcellToRGB(bg))
	}
}
