package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// MinCueGap drops repeats of the same cue closer than this
	MinCueGap = 50 * time.Millisecond
)

// Beat Cue (heartbeat)
const (
	BeatCueDuration = 120 * time.Millisecond
	BeatCueAttack   = 4 * time.Millisecond
	BeatCueRelease  = 90 * time.Millisecond
	BeatCueFreq     = 60.0
)

// Burst Cue (explosions, resets)
const (
	BurstCueDuration = 260 * time.Millisecond
	BurstCueAttack   = 2 * time.Millisecond
	BurstCueRelease  = 220 * time.Millisecond
)

// Error Cue
const (
	ErrorCueDuration = 80 * time.Millisecond
	ErrorCueAttack   = 5 * time.Millisecond
	ErrorCueRelease  = 20 * time.Millisecond
	ErrorCueFreq     = 100.0
)

// Chime Cue
const (
	ChimeNote1Duration = 80 * time.Millisecond
	ChimeNote2Duration = 280 * time.Millisecond
	ChimeAttack        = 5 * time.Millisecond
	ChimeNote1Release  = 40 * time.Millisecond
	ChimeNote2Release  = 200 * time.Millisecond
)

// Flatline Cue
const (
	FlatlineCueDuration = 600 * time.Millisecond
	FlatlineCueAttack   = 5 * time.Millisecond
	FlatlineCueRelease  = 150 * time.Millisecond
	FlatlineCueFreq     = 1000.0
)
