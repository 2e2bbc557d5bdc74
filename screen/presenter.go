package screen

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/cyberfx/effect"
	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/parameter"
	"github.com/lixenwraith/cyberfx/render"
)

var captionStyle = tcell.StyleDefault.
	Foreground(tcell.NewRGBColor(0, 255, 65)).
	Background(tcell.ColorBlack)

// Presenter shows effect sessions on a terminal screen
// The grid is the session surface, frames reach the screen through Hook
type Presenter struct {
	screen tcell.Screen
	grid   *render.Grid

	mu       sync.Mutex
	resized  bool
	cols     int
	rows     int
	captions []string
	partial  []byte

	quit     chan struct{}
	quitOnce sync.Once
	polled   chan struct{}
}

// Option configures a Presenter
type Option func(*Presenter)

// WithSurfaceSize sets the virtual pixel extent effects lay out against
// Without it the first session applies the fallback size
func WithSurfaceSize(w, h float64) Option {
	return func(p *Presenter) { p.grid.SetSize(w, h) }
}

// New initializes scr and starts polling its events, Close releases it
func New(scr tcell.Screen, opts ...Option) (*Presenter, error) {
	if err := scr.Init(); err != nil {
		return nil, err
	}
	scr.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	scr.HideCursor()
	scr.Clear()

	cols, rows := scr.Size()
	p := &Presenter{
		screen: scr,
		grid:   render.NewGrid(cols, rows, 0, 0),
		cols:   cols,
		rows:   rows,
		quit:   make(chan struct{}),
		polled: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}

	go func() {
		defer close(p.polled)
		for {
			ev := scr.PollEvent()
			if ev == nil {
				return
			}
			p.handle(ev)
		}
	}()
	return p, nil
}

// NewTerminal opens the controlling terminal
func NewTerminal(opts ...Option) (*Presenter, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return New(scr, opts...)
}

// Close restores the terminal
func (p *Presenter) Close() {
	p.screen.Fini()
	select {
	case <-p.polled:
	case <-time.After(time.Second):
	}
}

// Surface returns the grid sessions draw on
func (p *Presenter) Surface() render.Surface {
	return p.grid
}

// Quit is closed once the user asks to leave
func (p *Presenter) Quit() <-chan struct{} {
	return p.quit
}

// Context derives a context cancelled when the user asks to leave
func (p *Presenter) Context(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	go func() {
		select {
		case <-p.quit:
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}

func (p *Presenter) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
			p.quitOnce.Do(func() { close(p.quit) })
		}

	case *tcell.EventResize:
		// Queued events can be stale, the screen knows the current size
		cols, rows := p.screen.Size()
		p.mu.Lock()
		if cols != p.cols || rows != p.rows {
			p.cols, p.rows = cols, rows
			p.resized = true
		}
		p.mu.Unlock()
		p.screen.Sync()
	}
}

// Hook flushes a finished frame to the screen, the loop calls it under its frame lock
func (p *Presenter) Hook(_ engine.Timing, _ render.Surface) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.resized {
		// New cell dimensions, same pixel extent; the next frame repaints
		p.grid.Resize(p.cols, p.rows)
		p.resized = false
		p.screen.Clear()
	}
	p.grid.Flush(p.screen)
	p.drawCaptions()
	p.screen.Show()
}

// Play runs one effect on the screen until it expires, ctx ends or the user quits
func (p *Presenter) Play(ctx context.Context, k effect.Kind, d time.Duration, opts ...effect.Option) (engine.EndReason, error) {
	ctx, cancel := p.Context(ctx)
	defer cancel()

	opts = append(opts[:len(opts):len(opts)], effect.WithFrameHook(p.Hook))
	l, err := effect.LaunchKind(p.grid, k, d, opts...)
	if err != nil {
		return engine.EndFailed, err
	}
	return l.Wait(ctx), nil
}

// Write shows complete lines of b as captions along the bottom rows
func (p *Presenter) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.partial = append(p.partial, b...)
	for {
		i := bytes.IndexByte(p.partial, '\n')
		if i < 0 {
			break
		}
		p.captions = append(p.captions, string(p.partial[:i]))
		p.partial = p.partial[i+1:]
	}
	if n := len(p.captions); n > parameter.CaptionLines {
		p.captions = append(p.captions[:0], p.captions[n-parameter.CaptionLines:]...)
	}

	p.drawCaptions()
	p.screen.Show()
	return len(b), nil
}

// Captions returns the visible caption lines, oldest first
func (p *Presenter) Captions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.captions))
	copy(out, p.captions)
	return out
}

// drawCaptions paints captions bottom-aligned, caller holds mu
func (p *Presenter) drawCaptions() {
	top := p.rows - len(p.captions)
	for i, line := range p.captions {
		row := top + i
		if row < 0 {
			continue
		}
		col := 0
		for _, r := range line {
			if col >= p.cols {
				break
			}
			p.screen.SetContent(col, row, r, nil, captionStyle)
			col += max(runewidth.RuneWidth(r), 1)
		}
		for ; col < p.cols; col++ {
			p.screen.SetContent(col, row, ' ', nil, captionStyle)
		}
	}
}
