package effect

import (
	"fmt"

	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/parameter"
	"github.com/lixenwraith/cyberfx/render"
)

var blamePhases = engine.PhaseTable{
	{Name: "fade-in", From: 0, To: 0.2},
	{Name: "scroll", From: 0.2, To: 0.8},
	{Name: "signature", From: 0.8, To: 1},
}

var blameMessages = []string{
	"Fixed null ptr", "Fixed the fix", "Reverted fix", "Re-applied fix",
	"THIS IS THE FIX", "Removed the fix", "temp", "wip", "fix", "cleanup", "refactor",
}

var (
	blameHash    = render.MustHex("#555555")
	blameAuthor  = render.MustHex("#FF8C00")
	blameMessage = render.MustHex("#aaaaaa")
)

// blameRow is one annotated line scrolling leftward, re-entering at a fixed offset
type blameRow struct {
	hash, author, message string
	x, y                  float64
	speed                 float64
	reentry               float64
}

type blameWaterfall struct {
	env  Env
	rows []blameRow
}

func newBlameWaterfall(env Env) Effect {
	bw := &blameWaterfall{env: env, rows: make([]blameRow, parameter.BlameRowCount)}
	for i := range bw.rows {
		date := fmt.Sprintf("2024-%02d-%02d", env.Rand.Intn(12)+1, env.Rand.Intn(28)+1)
		bw.rows[i] = blameRow{
			hash:    fmt.Sprintf("%07x ", env.Rand.Intn(0xFFFFFFF)),
			author:  fmt.Sprintf("(%s %s) ", parameter.BlameAuthor, date),
			message: blameMessages[env.Rand.Intn(len(blameMessages))],
			x:       env.Width + env.Rand.Float64()*env.Width,
			y:       15 + float64(i%parameter.BlameRowsVisible)*parameter.BlameLineHeight,
			speed:   env.Range(parameter.BlameSpeedMin, parameter.BlameSpeedMax),
			reentry: env.Rand.Float64() * 200,
		}
	}
	return bw
}

func (bw *blameWaterfall) Frame(t engine.Timing, s render.Surface) {
	w, h := bw.env.Width, bw.env.Height
	p := t.Progress
	px := parameter.BlameFontPx

	s.FillRect(0, 0, w, h, colorBlack.WithAlpha(0.3))

	alpha := fadeAlpha(p, 0.2, 0.8)
	for i := range bw.rows {
		r := &bw.rows[i]
		r.x -= r.speed * t.Dt
		if r.x < -parameter.BlameWrapWidth {
			r.x = w + r.reentry
		}

		x := r.x
		s.Text(x, r.y, r.hash, px, render.AlignLeft, blameHash.WithAlpha(alpha))
		x += render.MeasureText(r.hash, px)
		s.Text(x, r.y, r.author, px, render.AlignLeft, blameAuthor.WithAlpha(alpha))
		x += render.MeasureText(r.author, px)
		s.Text(x, r.y, r.message, px, render.AlignLeft, blameMessage.WithAlpha(alpha))
	}

	if ph, _ := blamePhases.Select(p); ph.Name == "signature" {
		show := min(1, (p-0.8)/0.15)
		hide := 0.0
		if p > 0.95 {
			hide = (p - 0.95) / 0.05
		}
		s.Text(w/2, h/2, parameter.BlameAuthor, 28, render.AlignCenter, blameAuthor.WithAlpha(show-hide))
	}
}
