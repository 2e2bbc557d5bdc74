package effect

import (
	"math"
	"time"

	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/parameter"
	"github.com/lixenwraith/cyberfx/render"
)

var bubblePhases = engine.PhaseTable{
	{Name: "rise", From: 0, To: 1},
}

var bubbleTexts = []string{"...", "...", "✓", "...", "✓✓", "...", "✓", "...", "...", "✓✓", "...", "✓", "...", "✓✓", "..."}

var (
	bubbleLeftFill  = render.RGBA(185, 0, 255, 0.7)
	bubbleRightFill = render.RGBA(0, 100, 120, 0.7)
	bubbleLeftText  = render.MustHex("#e0b4ff")
)

// bubble is a chat bubble released after its delay, alternating sides
type bubble struct {
	x, y  float64
	vy    float64
	width float64
	text  string
	left  bool
	phase float64
	delay time.Duration
}

type typingBubbles struct {
	env     Env
	bubbles []bubble
}

func newTypingBubbles(env Env) Effect {
	tb := &typingBubbles{env: env, bubbles: make([]bubble, len(bubbleTexts))}
	for i, text := range bubbleTexts {
		left := i%2 == 0
		bw := env.Range(parameter.BubbleWidthMin, parameter.BubbleWidthMax)
		x := env.Width*0.9 - bw
		if left {
			x = env.Width * 0.1
		}
		tb.bubbles[i] = bubble{
			x:     x,
			y:     env.Height + 20,
			vy:    -env.Range(parameter.BubbleRiseMin, parameter.BubbleRiseMax),
			width: bw,
			text:  text,
			left:  left,
			phase: env.Rand.Float64() * 2 * math.Pi,
			delay: time.Duration(env.Rand.Int63n(int64(parameter.BubbleMaxDelay))),
		}
	}
	return tb
}

func (tb *typingBubbles) Frame(t engine.Timing, s render.Surface) {
	w, h := tb.env.Width, tb.env.Height
	s.FillRect(0, 0, w, h, colorBlack.WithAlpha(0.1))

	bh := parameter.BubbleHeight
	for i := range tb.bubbles {
		b := &tb.bubbles[i]
		if t.Elapsed < b.delay || b.y < -bh {
			continue
		}

		b.y += b.vy * t.Dt
		b.x += math.Sin(t.Ms()/500+b.phase) * 0.3 * t.Dt

		alpha := 1.0
		if b.y < h*0.2 {
			alpha = math.Max(0, b.y/(h*0.2))
		}

		fill, text := bubbleRightFill, colorCyan
		if b.left {
			fill, text = bubbleLeftFill, bubbleLeftText
		}
		fillRoundRect(s, b.x, b.y, b.width, bh, parameter.BubbleCorner, fill.Fade(alpha))
		s.Text(b.x+b.width/2, b.y+bh/2+4, b.text, 11, render.AlignCenter, text.WithAlpha(alpha))
	}
}
