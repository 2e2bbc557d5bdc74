package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a manual clock for tests and deterministic headless runs
// Time is held as an offset from a fixed epoch so reads never block a ticking loop
type MockTimeProvider struct {
	epoch  time.Time
	offset atomic.Int64
}

// NewMockTimeProvider creates a clock frozen at startTime
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{epoch: startTime}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.epoch.Add(time.Duration(m.offset.Load()))
}

// Elapsed returns how far the clock has moved from its start time
func (m *MockTimeProvider) Elapsed() time.Duration {
	return time.Duration(m.offset.Load())
}

// SetTime jumps the clock, earlier times are allowed to exercise non-rewinding progress
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.offset.Store(int64(t.Sub(m.epoch)))
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.offset.Add(int64(d))
}

// Step advances the clock by d then ticks the loop, returning Tick's result
func (m *MockTimeProvider) Step(l *Loop, d time.Duration) bool {
	m.Advance(d)
	return l.Tick()
}

// Drive ticks l every interval of simulated time until it ends and returns the frames drawn
// The first frame is drawn at the current time
func (m *MockTimeProvider) Drive(l *Loop, interval time.Duration) int {
	if interval <= 0 {
		interval = time.Second / 60
	}
	for ok := l.Tick(); ok; ok = m.Step(l, interval) {
	}
	return l.Frames()
}
