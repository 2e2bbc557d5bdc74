package audio

import (
	"errors"
	"sync"
)

// Cue identifies a short sound an effect can trigger
type Cue int

const (
	CueBeat     Cue = iota // Heartbeat thump
	CueBurst               // Explosion, packet reset
	CueError               // Vim error buzz
	CueChime               // Completion chime
	CueFlatline            // Monitor flatline tone
	cueCount
)

var cueNames = [cueCount]string{"beat", "burst", "error", "chime", "flatline"}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// Cues receives sound cues from running effects, implementations must not block
type Cues interface {
	Play(c Cue)
}

// Silent discards every cue
type Silent struct{}

func (Silent) Play(Cue) {}

// CueLog records cues in order, used by headless runs and tests
type CueLog struct {
	mu   sync.Mutex
	cues []Cue
}

func (l *CueLog) Play(c Cue) {
	l.mu.Lock()
	l.cues = append(l.cues, c)
	l.mu.Unlock()
}

// Cues returns a copy of the recorded cues
func (l *CueLog) Cues() []Cue {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Cue, len(l.cues))
	copy(out, l.cues)
	return out
}

// Count returns how many times c was recorded
func (l *CueLog) Count(c Cue) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, v := range l.cues {
		if v == c {
			n++
		}
	}
	return n
}

// Config controls the synthesizer
type Config struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
}

// ErrUnknownCue is returned when a cue has no generator
var ErrUnknownCue = errors.New("unknown cue")
