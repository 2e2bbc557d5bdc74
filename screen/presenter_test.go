package screen

import (
	"context"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cyberfx/effect"
	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/parameter"
	"github.com/lixenwraith/cyberfx/render"
)

var quiet = effect.WithLogger(log.New(io.Discard, "", 0))

func newSim(t *testing.T, cols, rows int, opts ...Option) (*Presenter, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	p, err := New(sim, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sim.SetSize(cols, rows)
	p.handle(tcell.NewEventResize(cols, rows))
	t.Cleanup(p.Close)
	return p, sim
}

// rowText returns the runes of one simulated screen row
func rowText(sim tcell.SimulationScreen, row int) string {
	cells, w, _ := sim.GetContents()
	var b strings.Builder
	for col := 0; col < w; col++ {
		c := cells[row*w+col]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return b.String()
}

func TestPlayFlushesFramesAndClears(t *testing.T) {
	p, sim := newSim(t, 40, 12)

	var painted bool
	probe := effect.WithFrameHook(func(_ engine.Timing, s render.Surface) {
		g := s.(*render.Grid)
		cols, rows := g.Dims()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if g.At(c, r).Bg != render.RGBBlack {
					painted = true
				}
			}
		}
	})

	reason, err := p.Play(context.Background(), effect.PixelBurst, 150*time.Millisecond,
		quiet, effect.WithSeed(3), effect.WithFrameInterval(5*time.Millisecond), probe)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if reason != engine.EndExpired {
		t.Errorf("reason = %v, want expired", reason)
	}
	if !painted {
		t.Error("no frame painted the grid")
	}

	if cols, rows := p.grid.Dims(); cols != 40 || rows != 12 {
		t.Errorf("grid dims = %dx%d, want 40x12", cols, rows)
	}
	if w, h := p.grid.Size(); w != parameter.FallbackWidth || h != parameter.FallbackHeight {
		t.Errorf("grid extent = %vx%v, want fallback", w, h)
	}

	// Last frame is the terminal clear
	for row := 0; row < 12; row++ {
		if got := strings.TrimSpace(rowText(sim, row)); got != "" {
			t.Fatalf("row %d not cleared: %q", row, got)
		}
	}
}

func TestQuitKeyCancelsSession(t *testing.T) {
	p, sim := newSim(t, 40, 12)

	go func() {
		time.Sleep(50 * time.Millisecond)
		sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	}()

	start := time.Now()
	reason, err := p.Play(context.Background(), effect.ScanGrid, 5*time.Second, quiet)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if reason != engine.EndCancelled {
		t.Errorf("reason = %v, want cancelled", reason)
	}
	if time.Since(start) > 2*time.Second {
		t.Error("quit key did not stop the session promptly")
	}

	select {
	case <-p.Quit():
	default:
		t.Error("Quit channel not closed")
	}
}

func TestContextCancelStopsSession(t *testing.T) {
	p, _ := newSim(t, 20, 8)

	ctx, cancel := context.WithTimeout(context.Background(), 40*time.Millisecond)
	defer cancel()
	reason, err := p.Play(ctx, effect.GlitchStatic, 5*time.Second, quiet)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if reason != engine.EndCancelled {
		t.Errorf("reason = %v, want cancelled", reason)
	}
}

func TestResizeAppliesOnNextFrame(t *testing.T) {
	p, sim := newSim(t, 40, 12, WithSurfaceSize(400, 240))

	sim.SetSize(20, 6)
	p.handle(tcell.NewEventResize(20, 6))

	if _, err := p.Play(context.Background(), effect.SteamParticles, 30*time.Millisecond,
		quiet, effect.WithFrameInterval(5*time.Millisecond)); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if cols, rows := p.grid.Dims(); cols != 20 || rows != 6 {
		t.Errorf("grid dims = %dx%d, want 20x6", cols, rows)
	}
	if w, h := p.grid.Size(); w != 400 || h != 240 {
		t.Errorf("grid extent = %vx%v, want 400x240", w, h)
	}
}

func TestCaptionsKeepLastLines(t *testing.T) {
	p, sim := newSim(t, 30, 10)

	for _, line := range []string{"one", "two", "three", "four"} {
		if _, err := io.WriteString(p, line+"\n"); err != nil {
			t.Fatal(err)
		}
	}
	io.WriteString(p, "partial")

	got := p.Captions()
	want := []string{"two", "three", "four"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("captions = %v, want %v", got, want)
	}
	if row := strings.TrimSpace(rowText(sim, 9)); row != "four" {
		t.Errorf("bottom row = %q, want four", row)
	}
	if row := strings.TrimSpace(rowText(sim, 7)); row != "two" {
		t.Errorf("row 7 = %q, want two", row)
	}
}

func TestUnknownKindFails(t *testing.T) {
	p, _ := newSim(t, 10, 5)
	if _, err := p.Play(context.Background(), effect.Kind(255), time.Second, quiet); err == nil {
		t.Error("expected error for invalid kind")
	}
}
