package script

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/lixenwraith/cyberfx/effect"
	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/render"
)

// Player runs commands: lines go to out, effects play on the surface one at a time
type Player struct {
	table     *Table
	out       io.Writer
	surface   render.Surface
	styler    Styler
	durations func(effect.Kind) time.Duration
	fxOpts    []effect.Option
	onEffect  func(*engine.Loop)
	rand      *rand.Rand
	logger    *log.Logger
	noDelay   bool
}

// PlayerOption configures a Player
type PlayerOption func(*Player)

// WithStyler sets how text lines are rendered
func WithStyler(s Styler) PlayerOption {
	return func(p *Player) { p.styler = s }
}

// WithDurations overrides effect durations for directives that do not name one
func WithDurations(fn func(effect.Kind) time.Duration) PlayerOption {
	return func(p *Player) { p.durations = fn }
}

// WithEffectOptions is passed to every effect launch
func WithEffectOptions(opts ...effect.Option) PlayerOption {
	return func(p *Player) { p.fxOpts = append(p.fxOpts, opts...) }
}

// WithEffectStarted is called with each session right after launch
func WithEffectStarted(fn func(*engine.Loop)) PlayerOption {
	return func(p *Player) { p.onEffect = fn }
}

// WithRand sets the source used to pick among text choices
func WithRand(r *rand.Rand) PlayerOption {
	return func(p *Player) { p.rand = r }
}

// WithPlayerLogger sets the diagnostic logger
func WithPlayerLogger(l *log.Logger) PlayerOption {
	return func(p *Player) { p.logger = l }
}

// WithoutDelays skips delay_before and delay_after pauses
func WithoutDelays() PlayerOption {
	return func(p *Player) { p.noDelay = true }
}

// NewPlayer creates a player writing lines to out and drawing effects on surface
func NewPlayer(table *Table, out io.Writer, surface render.Surface, opts ...PlayerOption) *Player {
	p := &Player{
		table:     table,
		out:       out,
		surface:   surface,
		styler:    PlainStyler,
		durations: effect.Kind.DefaultDuration,
		rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:    log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run plays cmd to completion, cancelling ctx skips the rest and stops the running effect
func (p *Player) Run(ctx context.Context, cmd string) error {
	c, err := p.table.Lookup(cmd)
	if err != nil {
		return err
	}
	for i, d := range c.Response {
		if err := p.pause(ctx, d.DelayBefore); err != nil {
			return err
		}
		if d.IsText() {
			if _, err := fmt.Fprintln(p.out, p.styler(d.Style, p.line(d))); err != nil {
				return fmt.Errorf("write line: %w", err)
			}
		} else if err := p.play(ctx, d); err != nil {
			return fmt.Errorf("%s step %d: %w", c.Name, i+1, err)
		}
		if err := p.pause(ctx, d.DelayAfter); err != nil {
			return err
		}
	}
	return nil
}

func (p *Player) line(d Directive) string {
	if len(d.Choices) > 0 {
		return d.Choices[p.rand.Intn(len(d.Choices))]
	}
	return d.Text
}

func (p *Player) play(ctx context.Context, d Directive) error {
	dur := time.Duration(d.Duration) * time.Millisecond
	if dur <= 0 {
		dur = p.durations(d.Kind())
	}
	l, err := effect.LaunchKind(p.surface, d.Kind(), dur, p.fxOpts...)
	if err != nil {
		return err
	}
	if p.onEffect != nil {
		p.onEffect(l)
	}
	reason := l.Wait(ctx)
	p.logger.Printf("effect %v ended: %v after %d frames", d.Kind(), reason, l.Frames())
	if reason == engine.EndFailed {
		return fmt.Errorf("effect %v failed", d.Kind())
	}
	return ctx.Err()
}

func (p *Player) pause(ctx context.Context, ms int) error {
	if ms <= 0 || p.noDelay {
		return ctx.Err()
	}
	timer := time.NewTimer(time.Duration(ms) * time.Millisecond)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
