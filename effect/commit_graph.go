package effect

import (
	"math"
	"time"

	"github.com/lixenwraith/cyberfx/audio"
	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/parameter"
	"github.com/lixenwraith/cyberfx/render"
)

var commitPhases = engine.PhaseTable{
	{Name: "history", From: 0, To: 0.65},
	{Name: "chaos", From: 0.65, To: 0.9},
	{Name: "fade", From: 0.9, To: 1},
}

var commitMessages = []string{
	"feat: distributed consensus",
	"fix: race condition in payments",
	"refactor: clean architecture",
	"docs: update API spec",
	"feat: new payment flow",
	"fix: branch edge case",
	"fix",
	"wip",
	"???",
	"HEAD",
}

const (
	commitBranchFrom  = 3 // main commit the feature branch forks from
	commitBranchFirst = 4
	commitBranchLast  = 5
	commitChaosFirst  = 6
)

var (
	commitBranchColor = render.MustHex("#b900ff")
	commitMsgColor    = render.MustHex("#aaaaaa")
	commitChaosMsg    = render.MustHex("#ff5555")
	commitChaosLine   = render.RGBA(255, 50, 50, 0.4)
)

type commit struct {
	msg    string
	x, y   float64
	color  render.Color
	branch bool
	chaos  bool
	head   bool
	reveal time.Duration
}

type commitGraph struct {
	env     Env
	commits []commit
	mainX   float64
	branchX float64
	watch   phaseWatch
	shown   int
}

// commitSpacing tightens the gap under chaos commits down to a floor
func commitSpacing(i int) float64 {
	if i < commitChaosFirst {
		return parameter.CommitSpacing
	}
	return math.Max(parameter.CommitSpacingMin, parameter.CommitSpacing-float64(i-commitChaosFirst)*4)
}

func newCommitGraph(env Env) Effect {
	cg := &commitGraph{
		env:     env,
		commits: make([]commit, len(commitMessages)),
		mainX:   env.Width * 0.25,
		branchX: env.Width * 0.38,
	}
	y := parameter.CommitTop
	for i, msg := range commitMessages {
		c := commit{
			msg:    msg,
			x:      cg.mainX,
			y:      y,
			color:  colorCyan,
			branch: i == commitBranchFirst || i == commitBranchLast,
			chaos:  i >= commitChaosFirst,
			head:   i == len(commitMessages)-1,
			reveal: time.Duration(i) * parameter.CommitRevealStep,
		}
		if c.chaos {
			c.reveal += time.Duration(i-commitChaosFirst) * parameter.CommitChaosDelay
		}
		switch {
		case c.branch:
			c.x = cg.branchX
			c.color = commitBranchColor
		case c.head:
			c.color = colorWhite
		}
		cg.commits[i] = c
		y += commitSpacing(i)
	}
	return cg
}

// visible returns how many commits have been revealed at elapsed
func (cg *commitGraph) visible(elapsed time.Duration) int {
	n := 0
	for _, c := range cg.commits {
		if elapsed >= c.reveal {
			n++
		}
	}
	return n
}

func (cg *commitGraph) Frame(t engine.Timing, s render.Surface) {
	i, entered := cg.watch.enter(commitPhases, t.Progress)
	if entered && i == 1 {
		cg.env.cue(audio.CueError)
	}
	w, h := cg.env.Width, cg.env.Height
	ms := t.Ms()

	s.FillRect(0, 0, w, h, colorBlack.WithAlpha(0.3))

	n := cg.visible(t.Elapsed)
	if n > cg.shown {
		cg.shown = n
		cg.env.cue(audio.CueBeat)
	}
	shown := cg.commits[:n]

	lastMain := -1
	branches := 0
	for j, c := range shown {
		if c.branch {
			branches++
		} else {
			lastMain = j
		}
	}
	if lastMain >= 0 {
		s.Line(cg.mainX, parameter.CommitTop, cg.mainX, shown[lastMain].y, 2, colorCyan)
	}

	if branches > 0 {
		from := cg.commits[commitBranchFrom]
		end := cg.commits[commitBranchFirst]
		if branches > 1 {
			end = cg.commits[commitBranchLast]
		}
		s.Line(cg.mainX, from.y, cg.branchX, from.y+20, 1.5, commitBranchColor)
		s.Line(cg.branchX, from.y+20, cg.branchX, end.y, 1.5, commitBranchColor)

		if branches >= 2 && n > commitBranchLast {
			merge := cg.commits[commitBranchLast].y
			s.Line(cg.branchX, merge, cg.mainX, merge+20, 1.5, commitBranchColor)
		}
	}

	if i >= 1 {
		for j := commitChaosFirst; j < n; j++ {
			c := cg.commits[j]
			rx := cg.mainX + math.Sin(float64(j)*7.3)*parameter.CommitChaosSwing
			s.Line(cg.mainX, c.y-10, rx, c.y+5, 1, commitChaosLine)
		}
	}

	for _, c := range shown {
		r := parameter.CommitNodeRadius
		stroke := c.color
		if c.head {
			r += 2
			stroke = colorWhite
			pulse := 0.5 + 0.5*math.Sin(ms/200)
			render.Glow(s, c.x, c.y, r+15+pulse*10, colorWhite.WithAlpha(0.4))
		}
		s.FillCircle(c.x, c.y, r, c.color)
		s.StrokeCircle(c.x, c.y, r, 2, stroke)

		msgColor := commitMsgColor
		if c.chaos {
			msgColor = commitChaosMsg
		}
		s.Text(c.x+16, c.y+4, c.msg, parameter.CommitFontPx, render.AlignLeft, msgColor)
	}

	if i == 2 {
		s.FillRect(0, 0, w, h, colorBlack.WithAlpha(commitPhases[i].Local(t.Progress)))
	}
}
