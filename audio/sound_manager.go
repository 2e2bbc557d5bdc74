package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/cyberfx/parameter"
)

// DefaultConfig returns audio enabled at 70% volume
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.7,
		SampleRate:   parameter.AudioSampleRate,
	}
}

// Synth plays cues through the system speaker
// Play is a no-op until Initialize succeeds, so effects never depend on audio hardware
type Synth struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
	last        [cueCount]time.Time
	logger      *log.Logger
}

// NewSynth creates an uninitialized synthesizer
func NewSynth(cfg Config, logger *log.Logger) *Synth {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}
	return &Synth{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize opens the speaker, a disabled config succeeds without touching hardware
func (s *Synth) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized || !s.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(s.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Cleanup silences all cues, the speaker stays open for reuse
func (s *Synth) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

// Play mixes in cue c, repeats within MinCueGap are dropped
func (s *Synth) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || c < 0 || c >= cueCount {
		return
	}

	now := time.Now()
	if now.Sub(s.last[c]) < parameter.MinCueGap {
		return
	}
	s.last[c] = now

	streamer, err := CueStreamer(c, s.cfg)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("audio: %v", err)
		}
		return
	}

	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}
