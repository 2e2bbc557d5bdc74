package effect

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/parameter"
)

// ErrUnknownEffect is returned for identifiers outside the registry
var ErrUnknownEffect = errors.New("unknown effect")

// Kind identifies one of the registered effects
type Kind uint8

const (
	ScanGrid Kind = iota
	PixelBurst
	SteamParticles
	CircuitPulse
	NetworkPulse
	GlitchStatic
	TypingBubbles
	UkraineWave
	FileRain
	VimTakeover
	BlameWaterfall
	SandwichBuild
	GalaxyConverge
	CommitGraph
	PacketFlow
	HeartbeatMonitor
	TextCoalesce
	kindCount
)

type entry struct {
	name   string
	phases engine.PhaseTable
	build  constructor
}

// registry is indexed by Kind so every value of the enum has exactly one entry
var registry = [kindCount]entry{
	ScanGrid:         {"scan-grid", scanGridPhases, newScanGrid},
	PixelBurst:       {"pixel-burst", pixelBurstPhases, newPixelBurst},
	SteamParticles:   {"steam-particles", steamPhases, newSteamParticles},
	CircuitPulse:     {"circuit-pulse", circuitPhases, newCircuitPulse},
	NetworkPulse:     {"network-pulse", networkPhases, newNetworkPulse},
	GlitchStatic:     {"glitch-static", glitchPhases, newGlitchStatic},
	TypingBubbles:    {"typing-bubbles", bubblePhases, newTypingBubbles},
	UkraineWave:      {"ukraine-wave", ukrainePhases, newUkraineWave},
	FileRain:         {"file-rain", fileRainPhases, newFileRain},
	VimTakeover:      {"vim-takeover", vimPhases, newVimTakeover},
	BlameWaterfall:   {"blame-waterfall", blamePhases, newBlameWaterfall},
	SandwichBuild:    {"sandwich-build", sandwichPhases, newSandwichBuild},
	GalaxyConverge:   {"galaxy-converge", galaxyPhases, newGalaxyConverge},
	CommitGraph:      {"commit-graph", commitPhases, newCommitGraph},
	PacketFlow:       {"packet-flow", packetPhases, newPacketFlow},
	HeartbeatMonitor: {"heartbeat-monitor", heartbeatPhases, newHeartbeatMonitor},
	TextCoalesce:     {"text-coalesce", coalescePhases, newTextCoalesce},
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return registry[k].name
}

// Valid reports whether k names a registered effect
func (k Kind) Valid() bool {
	return k < kindCount
}

// Phases returns the effect's phase table
func (k Kind) Phases() engine.PhaseTable {
	if !k.Valid() {
		return nil
	}
	return registry[k].phases
}

// DefaultDuration returns the run time used when none is given
func (k Kind) DefaultDuration() time.Duration {
	if d, ok := parameter.EffectDurations[k.String()]; ok {
		return d
	}
	return parameter.DefaultEffectDuration
}

// ParseKind resolves an effect identifier, matching is exact
func ParseKind(name string) (Kind, error) {
	for k := Kind(0); k < kindCount; k++ {
		if registry[k].name == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEffect, name)
}

// Kinds returns every registered kind in declaration order
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Names returns every registered identifier in declaration order
func Names() []string {
	out := make([]string, kindCount)
	for i := range out {
		out[i] = registry[i].name
	}
	return out
}
