package effect

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/lixenwraith/cyberfx/audio"
	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/parameter"
	"github.com/lixenwraith/cyberfx/render"
)

// ErrNoSurface is returned when Launch is given a nil surface
var ErrNoSurface = errors.New("no surface")

var defaultLogger = log.New(os.Stderr, "[cyberfx] ", log.LstdFlags)

type options struct {
	clock    engine.TimeProvider
	seed     int64
	seeded   bool
	interval time.Duration
	logger   *log.Logger
	cues     audio.Cues
	hook     engine.FrameHook
	noRun    bool
}

// Option configures a started effect
type Option func(*options)

// WithClock replaces the monotonic clock, used with engine.MockTimeProvider in tests
func WithClock(clock engine.TimeProvider) Option {
	return func(o *options) { o.clock = clock }
}

// WithSeed makes the session's random initial state reproducible
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed, o.seeded = seed, true }
}

// WithFrameInterval sets the ticker interval driving frames
func WithFrameInterval(d time.Duration) Option {
	return func(o *options) { o.interval = d }
}

// WithLogger sets the diagnostic logger
func WithLogger(logger *log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithCues routes sound cues to c
func WithCues(c audio.Cues) Option {
	return func(o *options) { o.cues = c }
}

// WithFrameHook runs h after every frame under the loop's frame lock
// Hooks from repeated options run in the order given
func WithFrameHook(h engine.FrameHook) Option {
	return func(o *options) {
		prev := o.hook
		if prev == nil {
			o.hook = h
			return
		}
		o.hook = func(t engine.Timing, s render.Surface) {
			prev(t, s)
			h(t, s)
		}
	}
}

// WithoutRun constructs the session without scheduling it, the caller drives Tick
func WithoutRun() Option {
	return func(o *options) { o.noRun = true }
}

func newOptions(opts []Option) *options {
	o := &options{
		interval: parameter.FrameUpdateInterval,
		logger:   defaultLogger,
		cues:     audio.Silent{},
	}
	for _, opt := range opts {
		opt(o)
	}
	if !o.seeded {
		o.seed = time.Now().UnixNano()
	}
	if o.clock == nil {
		o.clock = engine.NewMonotonicTimeProvider()
	}
	return o
}

// Start runs the named effect on surface for d and returns its cancel handle
// Unknown names are logged and yield an inert handle, nothing is drawn
// The handle is idempotent and callers must invoke it when the surface goes away,
// otherwise the session keeps running until d elapses
func Start(surface render.Surface, name string, d time.Duration, opts ...Option) engine.CancelFunc {
	l, err := Launch(surface, name, d, opts...)
	if err != nil {
		newOptions(opts).logger.Printf("start effect: %v", err)
		return func() {}
	}
	return l.CancelFunc()
}

// Launch is Start returning the session loop, for callers that wait on Done
func Launch(surface render.Surface, name string, d time.Duration, opts ...Option) (*engine.Loop, error) {
	k, err := ParseKind(name)
	if err != nil {
		return nil, err
	}
	return LaunchKind(surface, k, d, opts...)
}

// LaunchKind starts an effect by kind
func LaunchKind(surface render.Surface, k Kind, d time.Duration, opts ...Option) (*engine.Loop, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownEffect, k)
	}
	if surface == nil {
		return nil, ErrNoSurface
	}
	o := newOptions(opts)

	w, h := surface.Size()
	if w <= 0 || h <= 0 {
		w, h = parameter.FallbackWidth, parameter.FallbackHeight
		if r, ok := surface.(render.Resizer); ok {
			r.SetSize(w, h)
		}
	}

	env := Env{
		Width:    w,
		Height:   h,
		Duration: d,
		Rand:     rand.New(rand.NewSource(o.seed)),
		Cues:     o.cues,
	}
	fx := registry[k].build(env)

	loopOpts := []engine.LoopOption{engine.WithLoopLogger(o.logger)}
	if o.hook != nil {
		loopOpts = append(loopOpts, engine.WithFrameHook(o.hook))
	}
	l := engine.NewLoop(o.clock, surface, d, fx.Frame, loopOpts...)
	if !o.noRun {
		l.Run(o.interval)
	}
	return l, nil
}
