package effect

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/lixenwraith/cyberfx/audio"
	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/parameter"
	"github.com/lixenwraith/cyberfx/render"
	"github.com/lixenwraith/cyberfx/vmath"
)

// sandwichPhases gives the first slot to an empty plate, one slot per layer, shimmer in the last
var sandwichPhases = engine.Uniform("plate", "bottom-bun", "lettuce", "tomato", "cheese", "patty", "top-bun")

type layerStyle uint8

const (
	layerPlain layerStyle = iota
	layerBunBottom
	layerBunTop
	layerLettuce
	layerCheese
)

type sandwichLayer struct {
	label   string
	color   render.Color
	height  float64
	style   layerStyle
	targetY float64
	start   float64 // progress at which the layer enters

	landed bool
	pos    float64 // spring offset from targetY
	vel    float64
}

var sandwichRecipe = []sandwichLayer{
	{label: "Bottom Bun", color: render.MustHex("#D4A96A"), height: 22, style: layerBunBottom},
	{label: "Lettuce", color: render.MustHex("#4CAF50"), height: 14, style: layerLettuce},
	{label: "Tomato", color: render.MustHex("#E53935"), height: 16, style: layerPlain},
	{label: "Cheese", color: render.MustHex("#FFD600"), height: 14, style: layerCheese},
	{label: "Patty", color: render.MustHex("#5D4037"), height: 20, style: layerPlain},
	{label: "Top Bun", color: render.MustHex("#D4A96A"), height: 22, style: layerBunTop},
}

var sandwichBg = render.RGBA(10, 14, 39, 0.9)

type sandwichBuild struct {
	env    Env
	layers []sandwichLayer
	stackH float64
	x      float64
	baseY  float64
	spring harmonica.Spring
	acc    float64 // reference frames not yet stepped through the spring
	watch  phaseWatch
}

func newSandwichBuild(env Env) Effect {
	sb := &sandwichBuild{
		env:    env,
		layers: make([]sandwichLayer, len(sandwichRecipe)),
		x:      (env.Width - parameter.SandwichWidth) / 2,
		baseY:  env.Height * 0.75,
		spring: harmonica.NewSpring(harmonica.FPS(parameter.SandwichSpringFPS), parameter.SandwichSpringFreq, parameter.SandwichSpringDamping),
	}
	copy(sb.layers, sandwichRecipe)
	for i := range sb.layers {
		l := &sb.layers[i]
		l.targetY = sb.baseY - sb.stackH - l.height
		l.start = sandwichPhases[i+1].From
		sb.stackH += l.height
	}
	return sb
}

func (sb *sandwichBuild) Frame(t engine.Timing, s render.Surface) {
	i, entered := sb.watch.enter(sandwichPhases, t.Progress)
	if entered && i == len(sandwichPhases)-1 {
		sb.env.cue(audio.CueChime)
	}
	w, h := sb.env.Width, sb.env.Height
	p := t.Progress
	slot := 1.0 / float64(len(sandwichPhases))

	s.FillRect(0, 0, w, h, sandwichBg)

	sb.acc += t.Dt
	steps := int(sb.acc)
	sb.acc -= float64(steps)
	for j := range sb.layers {
		l := &sb.layers[j]
		if p < l.start {
			continue
		}

		lp := vmath.Clamp01((p - l.start) / (slot * 0.8))
		eased := vmath.EaseOutCubic(lp * 1.5)

		x := sb.x
		if eased < 1 {
			x += (1 - eased) * (w + 50)
		} else if !l.landed {
			l.landed = true
			l.vel = parameter.SandwichLandingKick
		}
		if l.landed {
			for k := 0; k < steps; k++ {
				l.pos, l.vel = sb.spring.Update(l.pos, l.vel, 0)
			}
		}

		sb.drawLayer(s, l, x, l.targetY+l.pos, math.Min(1, lp*3))
	}

	if i == len(sandwichPhases)-1 {
		sweep := sandwichPhases[i].Local(p)
		sx := sb.x + sweep*(parameter.SandwichWidth+40) - 20
		gold := colorUAYellow
		render.HorizontalGradient(s, sx-20, sb.baseY-sb.stackH, 40, sb.stackH, []render.Stop{
			{At: 0, Color: gold.WithAlpha(0)},
			{At: 0.5, Color: gold.WithAlpha(0.5)},
			{At: 1, Color: gold.WithAlpha(0)},
		})
	}
}

func (sb *sandwichBuild) drawLayer(s render.Surface, l *sandwichLayer, x, y, alpha float64) {
	lw := parameter.SandwichWidth
	if l.style == layerCheese {
		lw += 8
	}
	lx := x - (lw-parameter.SandwichWidth)/2
	c := l.color.WithAlpha(alpha)

	switch l.style {
	case layerBunBottom:
		fillRoundRect(s, lx, y, lw, l.height, 5, c)
	case layerBunTop:
		fillRoundRect(s, lx, y, lw, l.height, 10, c)
		seed := colorWhite.WithAlpha(alpha)
		for _, o := range [][2]float64{{0.3, 0.4}, {0.5, 0.3}, {0.7, 0.4}} {
			s.FillCircle(lx+lw*o[0], y+l.height*o[1], 2.5, seed)
		}
	case layerLettuce:
		for ox := 0.0; ox < lw; ox += 10 {
			top := y + math.Sin(ox/lw*math.Pi*4)*4
			s.FillRect(lx+ox, top, math.Min(10, lw-ox), y+l.height-top, c)
		}
	default:
		s.FillRect(lx, y, lw, l.height, c)
	}
}
