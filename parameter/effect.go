package parameter

import "time"

// DefaultEffectDuration applies when neither caller nor config name a duration
const DefaultEffectDuration = 3 * time.Second

// EffectDurations are the per-effect default run times
var EffectDurations = map[string]time.Duration{
	"scan-grid":         4000 * time.Millisecond,
	"pixel-burst":       2500 * time.Millisecond,
	"steam-particles":   3000 * time.Millisecond,
	"circuit-pulse":     2500 * time.Millisecond,
	"network-pulse":     4000 * time.Millisecond,
	"glitch-static":     1500 * time.Millisecond,
	"typing-bubbles":    2000 * time.Millisecond,
	"ukraine-wave":      3500 * time.Millisecond,
	"file-rain":         3500 * time.Millisecond,
	"vim-takeover":      3000 * time.Millisecond,
	"blame-waterfall":   3000 * time.Millisecond,
	"sandwich-build":    2500 * time.Millisecond,
	"galaxy-converge":   4000 * time.Millisecond,
	"commit-graph":      3000 * time.Millisecond,
	"packet-flow":       3000 * time.Millisecond,
	"heartbeat-monitor": 2500 * time.Millisecond,
	"text-coalesce":     3000 * time.Millisecond,
}

// Velocities and accelerations below are in px per reference frame

// Scan Grid
const (
	ScanGridSpacing   = 30.0
	ScanHexLabels     = 18
	ScanHexPool       = 6
	ScanLabelRange    = 60.0
	ScanReticleRadius = 40.0
	ScanCursorBlinkMs = 500
)

// Pixel Burst
const (
	BurstPixelCount = 200
	BurstPixelSmall = 8.0
	BurstPixelLarge = 16.0
	BurstMaxSpeed   = 8.0
	BurstGravity    = 0.1
	BurstDrag       = 0.97
)

// Steam Particles
const (
	SteamMaxPuffs     = 200
	SteamInitialPuffs = 60
	SteamSpread       = 60.0
	SteamRiseMin      = 0.5
	SteamRiseMax      = 0.9
	SteamRadiusMin    = 2.0
	SteamRadiusMax    = 5.0
	SteamSpawnChance  = 0.3
)

// Circuit Pulse
const (
	CircuitTraceCount     = 20
	CircuitMargin         = 10.0
	CircuitMinSegments    = 3
	CircuitExtraSegments  = 2
	CircuitSegMin         = 40.0
	CircuitSegMax         = 80.0
	CircuitPulsesPerTrace = 3
)

// Network Pulse
const (
	NetworkHopTime    = 500 * time.Millisecond
	NetworkNodeRadius = 10.0
)

// Glitch Static
const (
	GlitchLowBands   = 3
	GlitchHighBands  = 6
	GlitchDecayBands = 5.0
	GlitchMaxShift   = 30.0
	GlitchNoiseDots  = 50
)

// Typing Bubbles
const (
	BubbleWidthMin = 60.0
	BubbleWidthMax = 120.0
	BubbleRiseMin  = 0.7
	BubbleRiseMax  = 1.0
	BubbleMaxDelay = 800 * time.Millisecond
	BubbleHeight   = 28.0
	BubbleCorner   = 8.0
)

// Ukraine Wave
const (
	WaveAmplitude   = 8.0
	WavePeriodMs    = 600.0
	WaveLength      = 60.0
	WaveColumns     = 116
	SunflowerCount  = 20
	SunflowerRadius = 3.0
)

// File Rain
const (
	FileRainCount     = 25
	FileRainFallMin   = 2.0
	FileRainFallMax   = 4.0
	FileRainFontPx    = 11.0
	FileRainRiseAccel = 1.01
)

// Vim Takeover
const (
	VimLineHeight      = 20.0
	VimTildeCount      = 20
	VimTildeIntervalMs = 30
	VimCursorBlinkMs   = 500
	VimStatusHeight    = 20.0
)

// Blame Waterfall
const (
	BlameAuthor      = "Illia Pogodin"
	BlameRowCount    = 25
	BlameRowsVisible = 20
	BlameLineHeight  = 18.0
	BlameFontPx      = 11.0
	BlameSpeedMin    = 1.5
	BlameSpeedMax    = 2.5
	BlameWrapWidth   = 600.0
)

// Sandwich Build
const (
	SandwichWidth         = 220.0
	SandwichSpringFPS     = 60
	SandwichSpringFreq    = 8.0
	SandwichSpringDamping = 0.3
	SandwichLandingKick   = 120.0 // px per second, downward
)

// Galaxy Converge
const (
	GalaxyCell       = 10.0
	GalaxyGap        = 20.0
	GalaxyDrift      = 0.25
	GalaxyGlowRadius = 6.0
	GalaxyNoiseStars = 150
)

// Commit Graph
const (
	CommitTop        = 20.0
	CommitSpacing    = 28.0
	CommitSpacingMin = 12.0
	CommitRevealStep = 200 * time.Millisecond
	CommitChaosDelay = 50 * time.Millisecond
	CommitChaosSwing = 40.0
	CommitNodeRadius = 6.0
	CommitFontPx     = 10.0
)

// Packet Flow
const (
	PacketHexPool    = 32
	PacketInterval   = 200 * time.Millisecond
	PacketNodeRadius = 20.0
	PacketPortInset  = 22.0
	PacketResetSpeed = 4.0
)

// Heartbeat Monitor
const (
	HeartbeatAmplitude    = 50.0
	HeartbeatCycleSamples = 80
	HeartbeatSampleRate   = 60
	HeartbeatLiveBlinkMs  = 600
)

// Text Coalesce
const (
	CoalesceFontPx     = 16.0
	CoalesceLineHeight = 30.0
	CoalesceNoiseCount = 25
	CoalesceDrift      = 0.75
)
