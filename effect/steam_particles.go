package effect

import (
	"math"

	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/parameter"
	"github.com/lixenwraith/cyberfx/render"
	"github.com/lixenwraith/cyberfx/vmath"
)

var steamPhases = engine.PhaseTable{
	{Name: "ramp-up", From: 0, To: 0.5},
	{Name: "steady", From: 0.5, To: 0.8},
	{Name: "ramp-down", From: 0.8, To: 1},
}

var steamPalette = mustPalette("#FF8C00", "#FFF8DC", "#FFD700", "#FFA500")

type steamPuff struct {
	pos    vmath.Vec2
	vy     float64
	phase  float64
	radius float64
	color  render.Color
	born   float64 // session ms
}

// steamParticles keeps spawning puffs after start, gated by a density curve over the phases
type steamParticles struct {
	env   Env
	puffs []steamPuff
}

func newSteamParticles(env Env) Effect {
	sp := &steamParticles{env: env, puffs: make([]steamPuff, 0, parameter.SteamMaxPuffs)}
	for i := 0; i < parameter.SteamInitialPuffs; i++ {
		p := sp.spawn(0)
		p.pos.Y = env.Height - env.Rand.Float64()*env.Height
		sp.puffs = append(sp.puffs, p)
	}
	return sp
}

func (sp *steamParticles) spawn(ms float64) steamPuff {
	env := sp.env
	return steamPuff{
		pos:    vmath.V2(env.Width/2+env.Signed(parameter.SteamSpread/2), env.Height),
		vy:     -env.Range(parameter.SteamRiseMin, parameter.SteamRiseMax),
		phase:  env.Rand.Float64() * 2 * math.Pi,
		radius: env.Range(parameter.SteamRadiusMin, parameter.SteamRadiusMax),
		color:  pick(env, steamPalette),
		born:   ms,
	}
}

// steamDensity ramps 0→1 over ramp-up, holds, then falls 1→0 over ramp-down
func steamDensity(progress float64) float64 {
	ph, local := steamPhases.Select(progress)
	switch ph.Name {
	case "ramp-up":
		return local
	case "ramp-down":
		return 1 - local
	default:
		return 1
	}
}

func (sp *steamParticles) Frame(t engine.Timing, s render.Surface) {
	w, h := sp.env.Width, sp.env.Height
	ms := t.Ms()

	s.FillRect(0, 0, w, h, colorBlack.WithAlpha(0.08))

	if len(sp.puffs) < parameter.SteamMaxPuffs &&
		sp.env.Rand.Float64() < steamDensity(t.Progress)*parameter.SteamSpawnChance {
		sp.puffs = append(sp.puffs, sp.spawn(ms))
	}

	top := h * 0.3
	alive := sp.puffs[:0]
	for _, p := range sp.puffs {
		age := (ms - p.born) / 1000
		p.pos.Y += p.vy * t.Dt
		p.pos.X += math.Sin(ms/400+p.phase) * 0.4 * t.Dt

		if p.pos.Y < -10 {
			continue
		}

		alpha := 1.0
		switch {
		case age < 0.5:
			alpha = age / 0.5
		case p.pos.Y < top:
			alpha = math.Max(0, p.pos.Y/top)
		}
		s.FillCircle(p.pos.X, p.pos.Y, p.radius, p.color.WithAlpha(alpha*0.8))
		alive = append(alive, p)
	}
	sp.puffs = alive
}
