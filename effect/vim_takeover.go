package effect

import (
	"github.com/lixenwraith/cyberfx/audio"
	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/parameter"
	"github.com/lixenwraith/cyberfx/render"
	"github.com/lixenwraith/cyberfx/vmath"
)

var vimPhases = engine.PhaseTable{
	{Name: "insert", From: 0, To: 0.33},
	{Name: "error", From: 0.33, To: 0.66},
	{Name: "quit", From: 0.66, To: 0.8},
	{Name: "flash", From: 0.8, To: 1},
}

var (
	vimTilde  = render.MustHex("#5555ff")
	vimStatus = render.MustHex("#cccccc")
)

// vimTakeover has no per-session state beyond phase tracking
// Tilde reveal and cursor blink run on raw elapsed time
type vimTakeover struct {
	env   Env
	watch phaseWatch
}

func newVimTakeover(env Env) Effect {
	return &vimTakeover{env: env}
}

func (vt *vimTakeover) Frame(t engine.Timing, s render.Surface) {
	i, entered := vt.watch.enter(vimPhases, t.Progress)
	if entered && i == 1 {
		vt.env.cue(audio.CueError)
	}
	local := vimPhases[i].Local(t.Progress)
	w, h := vt.env.Width, vt.env.Height
	lh := parameter.VimLineHeight
	ms := t.Ms()

	s.FillRect(0, 0, w, h, colorBlack)

	tildes := min(parameter.VimTildeCount, int(ms/parameter.VimTildeIntervalMs))
	for j := 0; j < tildes; j++ {
		s.Text(8, float64(j+1)*lh, "~", 14, render.AlignLeft, vimTilde)
	}

	if vmath.Blink(ms, parameter.VimCursorBlinkMs) {
		s.Text(20, lh, "█", 14, render.AlignLeft, colorWhite)
	}

	sh := parameter.VimStatusHeight
	s.FillRect(0, h-sh, w, sh, vimStatus)

	var status string
	switch i {
	case 0:
		status = "-- INSERT --"
	case 1:
		status = "E: Command not found"
	case 2:
		status = typed(":q!", local)
	default:
		s.FillRect(0, 0, w, h, colorWhite.WithAlpha(vmath.Triangle(local, 0.3)))
	}
	if status != "" {
		s.Text(6, h-sh+14, status, 13, render.AlignLeft, colorBlack)
	}
}
