package engine

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/cyberfx/render"
)

// EndReason records why a loop stopped
type EndReason uint8

const (
	// EndNone means the loop is still running
	EndNone EndReason = iota
	// EndExpired means elapsed time reached the duration and the surface was cleared
	EndExpired
	// EndCancelled means the cancel handle was invoked first
	EndCancelled
	// EndFailed means a frame panicked, the surface is left as-is
	EndFailed
)

func (r EndReason) String() string {
	switch r {
	case EndExpired:
		return "expired"
	case EndCancelled:
		return "cancelled"
	case EndFailed:
		return "failed"
	default:
		return "running"
	}
}

// CancelFunc stops a session, safe to call any number of times from any goroutine
type CancelFunc func()

// StepFunc advances and draws one frame
type StepFunc func(t Timing, s render.Surface)

// FrameHook observes every frame after it is drawn, including the terminal clear
// It runs under the frame lock and must not call Cancel
type FrameHook func(t Timing, s render.Surface)

// LoopOption configures a Loop
type LoopOption func(*Loop)

// WithFrameHook installs a hook run after each frame
func WithFrameHook(h FrameHook) LoopOption {
	return func(l *Loop) { l.hook = h }
}

// WithLoopLogger sets the logger used for recovered panics
func WithLoopLogger(logger *log.Logger) LoopOption {
	return func(l *Loop) { l.logger = logger }
}

// Loop drives one effect session: it owns the clock, surface, duration and step
// Frames are strictly sequential, the mutex serializes Tick against Cancel
type Loop struct {
	mu       sync.Mutex
	clock    TimeProvider
	surface  render.Surface
	duration time.Duration
	step     StepFunc
	hook     FrameHook
	logger   *log.Logger

	start  time.Time
	last   Timing
	frames int
	ended  bool
	reason EndReason

	done    chan struct{}
	running atomic.Bool
}

// NewLoop captures the start time from clock, nothing is drawn until the first Tick
func NewLoop(clock TimeProvider, surface render.Surface, duration time.Duration, step StepFunc, opts ...LoopOption) *Loop {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	l := &Loop{
		clock:    clock,
		surface:  surface,
		duration: duration,
		step:     step,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.start = clock.Now()
	return l
}

// Tick runs one frame and reports whether more frames should follow
// Once elapsed reaches the duration the surface is cleared exactly once
// After termination or cancellation Tick is a no-op returning false
func (l *Loop) Tick() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.ended {
		return false
	}

	elapsed := l.clock.Now().Sub(l.start)
	// Progress never rewinds
	if elapsed < l.last.Elapsed {
		elapsed = l.last.Elapsed
	}

	t := NewTiming(elapsed, l.duration)
	t.Frame = l.frames
	if l.frames > 0 {
		t.Dt = frameDelta(elapsed - l.last.Elapsed)
	}

	if elapsed >= l.duration {
		l.surface.Clear()
		l.finish(EndExpired)
		if l.hook != nil {
			l.hook(t, l.surface)
		}
		return false
	}

	l.step(t, l.surface)
	l.last = t
	l.frames++
	if l.hook != nil {
		l.hook(t, l.surface)
	}
	return true
}

// finish marks the loop terminal, caller holds mu
func (l *Loop) finish(reason EndReason) {
	if l.ended {
		return
	}
	l.ended = true
	l.reason = reason
	close(l.done)
}

// Cancel stops the loop, no surface mutation happens after it returns
func (l *Loop) Cancel() {
	l.mu.Lock()
	l.finish(EndCancelled)
	l.mu.Unlock()
}

// Sync waits for a frame in progress, hook included, to return
func (l *Loop) Sync() {
	l.mu.Lock()
	l.mu.Unlock()
}

// CancelFunc returns Cancel as a handle
func (l *Loop) CancelFunc() CancelFunc {
	return l.Cancel
}

func (l *Loop) fail(any) {
	l.mu.Lock()
	l.finish(EndFailed)
	l.mu.Unlock()
}

// Run schedules Tick on a ticker in its own goroutine, the first frame runs immediately
// Calling Run more than once has no effect
func (l *Loop) Run(interval time.Duration) {
	if !l.running.CompareAndSwap(false, true) {
		return
	}
	if interval <= 0 {
		interval = time.Second / 60
	}
	Go(l.logger, func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		if !l.Tick() {
			return
		}
		for {
			select {
			case <-l.done:
				return
			case <-ticker.C:
				if !l.Tick() {
					return
				}
			}
		}
	}, l.fail)
}

// Done is closed when the loop ends for any reason
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Wait blocks until the loop ends or ctx is done, in which case the loop is cancelled
func (l *Loop) Wait(ctx context.Context) EndReason {
	select {
	case <-l.done:
	case <-ctx.Done():
		l.Cancel()
	}
	return l.Reason()
}

// Reason reports why the loop ended, EndNone while running
func (l *Loop) Reason() EndReason {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reason
}

// Ended reports whether the loop has terminated
func (l *Loop) Ended() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ended
}

// Frames returns the number of frames drawn, the terminal clear is not counted
func (l *Loop) Frames() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frames
}

// Duration returns the session length
func (l *Loop) Duration() time.Duration {
	return l.duration
}

// Surface returns the surface the loop draws on
func (l *Loop) Surface() render.Surface {
	return l.surface
}
