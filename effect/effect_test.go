package effect

import (
	"io"
	"log"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/lixenwraith/cyberfx/audio"
	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/parameter"
	"github.com/lixenwraith/cyberfx/render"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

var quiet = log.New(io.Discard, "", 0)

const frame = 16 * time.Millisecond

func testEnv(seed int64) Env {
	return Env{
		Width:    parameter.FallbackWidth,
		Height:   parameter.FallbackHeight,
		Duration: 3 * time.Second,
		Rand:     rand.New(rand.NewSource(seed)),
		Cues:     audio.Silent{},
	}
}

// session builds an effect directly so tests can inspect its state between frames
type session struct {
	fx    Effect
	clock *engine.MockTimeProvider
	rec   *render.Recorder
	loop  *engine.Loop
	env   Env
}

func newSession(k Kind, d time.Duration, cues audio.Cues) *session {
	env := testEnv(42)
	env.Duration = d
	if cues != nil {
		env.Cues = cues
	}
	s := &session{
		fx:    registry[k].build(env),
		clock: engine.NewMockTimeProvider(epoch),
		rec:   render.NewRecorder(env.Width, env.Height),
		env:   env,
	}
	s.loop = engine.NewLoop(s.clock, s.rec, d, s.fx.Frame, engine.WithLoopLogger(quiet))
	return s
}

// runTo ticks at frame cadence until elapsed reaches at, returning false if the loop stopped
func (s *session) runTo(at time.Duration) bool {
	now := s.clock.Now().Sub(epoch)
	if s.loop.Frames() == 0 && !s.loop.Tick() {
		return false
	}
	for now < at {
		step := min(frame, at-now)
		now += step
		if !s.clock.Step(s.loop, step) {
			return false
		}
	}
	return true
}

func TestEveryEffectDrawsThenStops(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			d := k.DefaultDuration()
			s := newSession(k, d, nil)

			if !s.runTo(d - frame) {
				t.Fatal("stopped before duration")
			}
			if s.rec.Total() == 0 {
				t.Fatal("no drawing before termination")
			}
			if s.clock.Step(s.loop, 2*frame) {
				t.Fatal("still running past duration")
			}
			if s.rec.Clears() != 1 {
				t.Errorf("Clears = %d, want 1", s.rec.Clears())
			}
			if s.loop.Reason() != engine.EndExpired {
				t.Errorf("Reason = %v, want expired", s.loop.Reason())
			}

			total := s.rec.Total()
			for i := 0; i < 5; i++ {
				s.clock.Step(s.loop, frame)
			}
			if s.rec.Total() != total {
				t.Errorf("surface mutated after termination: %d -> %d ops", total, s.rec.Total())
			}
		})
	}
}

func TestEffectsSurviveCoarseFrames(t *testing.T) {
	for _, k := range Kinds() {
		s := newSession(k, time.Second, nil)
		s.loop.Tick()
		for i := 0; i < 4; i++ {
			s.clock.Step(s.loop, 240*time.Millisecond)
		}
		for _, op := range s.rec.Ops() {
			for _, v := range []float64{op.X, op.Y, op.X2, op.Y2, op.W, op.H, op.R, op.Color.A} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("%v: non-finite value in %+v", k, op)
				}
			}
			if op.Color.A < 0 || op.Color.A > 1 {
				t.Fatalf("%v: alpha %v out of range in %+v", k, op.Color.A, op)
			}
			if op.R < 0 {
				t.Fatalf("%v: negative radius in %+v", k, op)
			}
		}
	}
}

func TestPixelBurstScenario(t *testing.T) {
	s := newSession(PixelBurst, 2500*time.Millisecond, nil)
	pb := s.fx.(*pixelBurst)
	c := s.env.Center()

	s.runTo(100 * time.Millisecond)
	for i, p := range pb.pixels {
		if p.pos != c {
			t.Fatalf("pixel %d at %v during charge, want center %v", i, p.pos, c)
		}
	}

	s.runTo(1500 * time.Millisecond)
	moved := 0
	for _, p := range pb.pixels {
		if p.pos != c {
			moved++
		}
	}
	if moved == 0 {
		t.Fatal("no pixel displaced after explode")
	}

	alphaAt := func() float64 {
		s.rec.Take()
		s.clock.Step(s.loop, frame)
		for _, op := range s.rec.Ops() {
			if op.Kind == render.OpRect && op.W < s.env.Width {
				return op.Color.A
			}
		}
		t.Fatal("no pixel drawn")
		return 0
	}
	first := alphaAt()
	s.runTo(2200 * time.Millisecond)
	if later := alphaAt(); later >= first {
		t.Errorf("alpha did not fade: %.3f -> %.3f", first, later)
	}

	if s.clock.Step(s.loop, 300*time.Millisecond) {
		t.Fatal("loop still running at 2501ms")
	}
	if s.rec.Clears() != 1 {
		t.Errorf("Clears = %d, want 1", s.rec.Clears())
	}
}

func TestHeartbeatFlatline(t *testing.T) {
	d := 2500 * time.Millisecond
	s := newSession(HeartbeatMonitor, d, nil)
	hm := s.fx.(*heartbeatMonitor)

	s.runTo(time.Duration(0.75 * float64(d)))
	s.rec.Take()
	s.clock.Step(s.loop, frame)

	if !hm.flatTail(5) {
		t.Error("newest samples are off baseline during flatline")
	}
	lines := 0
	for _, op := range s.rec.Ops() {
		if op.Kind != render.OpLine {
			continue
		}
		lines++
		if op.Y != hm.midY || op.Y2 != hm.midY {
			t.Fatalf("trace segment %+v deviates from baseline %.1f", op, hm.midY)
		}
	}
	if lines == 0 {
		t.Fatal("no trace drawn")
	}

	beat := newSession(HeartbeatMonitor, d, nil)
	beat.runTo(time.Duration(0.5 * float64(d)))
	off := false
	for _, y := range beat.fx.(*heartbeatMonitor).samples {
		if y != beat.fx.(*heartbeatMonitor).midY {
			off = true
			break
		}
	}
	if !off {
		t.Error("beat phase trace never leaves baseline")
	}
}

// flatTail reports whether the newest k samples sit on the baseline
func (hm *heartbeatMonitor) flatTail(k int) bool {
	n := len(hm.samples)
	for j := 1; j <= k && j <= n; j++ {
		if hm.samples[(hm.head-j+n)%n] != hm.midY {
			return false
		}
	}
	return true
}

func TestHeartbeatLiveDotBlinks(t *testing.T) {
	s := newSession(HeartbeatMonitor, 2500*time.Millisecond, nil)
	x := s.env.Width - 30

	dotAlpha := func(at time.Duration) float64 {
		t.Helper()
		s.runTo(at)
		s.rec.Take()
		s.clock.Step(s.loop, frame)
		for _, op := range s.rec.Ops() {
			if op.Kind == render.OpCircle && op.X == x && op.Y == 14 {
				return op.Color.A
			}
		}
		t.Fatalf("no LIVE dot drawn near %v", at)
		return 0
	}

	tests := []struct {
		at   time.Duration
		want float64
	}{
		{100 * time.Millisecond, 1},
		{700 * time.Millisecond, 0.2},
		{1300 * time.Millisecond, 1},
		{1900 * time.Millisecond, 0.2},
	}
	for _, tt := range tests {
		if got := dotAlpha(tt.at); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("dot alpha at %v = %.2f, want %.2f", tt.at, got, tt.want)
		}
	}
}

func TestGalaxySnapsToTargets(t *testing.T) {
	d := 4000 * time.Millisecond
	s := newSession(GalaxyConverge, d, nil)
	gc := s.fx.(*galaxyConverge)

	s.runTo(time.Duration(0.8 * float64(d)))
	s.rec.Take()
	s.clock.Step(s.loop, frame)
	early := noiseAlpha(s.rec)
	s.runTo(time.Duration(0.88 * float64(d)))
	s.rec.Take()
	s.clock.Step(s.loop, frame)
	if late := noiseAlpha(s.rec); late >= early {
		t.Errorf("noise alpha did not fall during snap: %.3f -> %.3f", early, late)
	}

	s.runTo(time.Duration(0.9*float64(d)) + frame)
	bound := 0
	for i, st := range gc.stars {
		if st.bound {
			bound++
			if dist := math.Hypot(st.pos.X-st.target.X, st.pos.Y-st.target.Y); dist > 1e-6 {
				t.Errorf("star %d is %.4f from its target", i, dist)
			}
		} else if st.alpha != 0 {
			t.Errorf("noise star %d alpha %.3f, want 0 while holding", i, st.alpha)
		}
	}
	if bound != 28 {
		t.Errorf("bound stars = %d, want 28", bound)
	}
}

// noiseAlpha sums the alpha of small circles drawn this frame, only noise stars draw them during snap
func noiseAlpha(rec *render.Recorder) float64 {
	sum := 0.0
	for _, op := range rec.Ops() {
		if op.Kind == render.OpCircle && op.R == 1 {
			sum += op.Color.A
		}
	}
	return sum
}

func TestSandwichLayersSettle(t *testing.T) {
	d := 2500 * time.Millisecond
	s := newSession(SandwichBuild, d, nil)
	sb := s.fx.(*sandwichBuild)

	s.runTo(d - frame)
	for i, l := range sb.layers {
		if !l.landed {
			t.Errorf("layer %q never landed", l.label)
			continue
		}
		// the top bun lands last and may still be bouncing
		if i < len(sb.layers)-1 && math.Abs(l.pos) > 1 {
			t.Errorf("layer %d offset %.2f after settling", i, l.pos)
		}
	}
	if sb.layers[0].targetY <= sb.layers[len(sb.layers)-1].targetY {
		t.Error("layers should stack upward")
	}
}

func TestSandwichBounceAtHighFrameRates(t *testing.T) {
	d := 2500 * time.Millisecond
	peak := func(step time.Duration) float64 {
		s := newSession(SandwichBuild, d, nil)
		sb := s.fx.(*sandwichBuild)
		top := 0.0
		for ok := s.loop.Tick(); ok; ok = s.clock.Step(s.loop, step) {
			top = math.Max(top, math.Abs(sb.layers[0].pos))
		}
		return top
	}

	ref := peak(frame)
	if ref < 1 {
		t.Fatalf("bounce at 16ms = %.3f, want a visible offset", ref)
	}
	for _, step := range []time.Duration{4 * time.Millisecond, 8 * time.Millisecond, 12 * time.Millisecond} {
		got := peak(step)
		if got < 1 {
			t.Errorf("frame %v: bounce offset %.3f, layer never moved", step, got)
		}
		if math.Abs(got-ref) > ref*0.25 {
			t.Errorf("frame %v: bounce offset %.3f, want close to %.3f", step, got, ref)
		}
	}
}

func TestCommitGraphRevealsInOrder(t *testing.T) {
	s := newSession(CommitGraph, 3*time.Second, nil)
	cg := s.fx.(*commitGraph)

	prev := 0
	for at := time.Duration(0); at < 2*time.Second; at += 100 * time.Millisecond {
		n := cg.visible(at)
		if n < prev {
			t.Fatalf("visible commits dropped at %v: %d -> %d", at, prev, n)
		}
		prev = n
	}
	if prev != len(commitMessages) {
		t.Errorf("visible after 2s = %d, want %d", prev, len(commitMessages))
	}
	for i := 1; i < len(cg.commits); i++ {
		if cg.commits[i].y <= cg.commits[i-1].y {
			t.Errorf("commit %d not below commit %d", i, i-1)
		}
	}
}

func TestTextCoalesceTargetsSpellLines(t *testing.T) {
	tc := newTextCoalesce(testEnv(7)).(*textCoalesce)
	var got []rune
	for _, p := range tc.particles {
		if p.bound {
			got = append(got, []rune(p.char)...)
		}
	}
	want := 0
	for _, line := range coalesceLines {
		for _, r := range line {
			if r != ' ' {
				want++
			}
		}
	}
	if len(got) != want {
		t.Errorf("bound glyphs = %d, want %d", len(got), want)
	}
	if len(tc.particles)-len(got) != parameter.CoalesceNoiseCount {
		t.Errorf("noise glyphs = %d, want %d", len(tc.particles)-len(got), parameter.CoalesceNoiseCount)
	}
}

func TestCuesFireOnPhaseEntry(t *testing.T) {
	tests := []struct {
		kind Kind
		cue  audio.Cue
	}{
		{PixelBurst, audio.CueBurst},
		{ScanGrid, audio.CueError},
		{HeartbeatMonitor, audio.CueFlatline},
		{VimTakeover, audio.CueError},
		{PacketFlow, audio.CueError},
	}
	for _, tt := range tests {
		cues := &audio.CueLog{}
		d := tt.kind.DefaultDuration()
		s := newSession(tt.kind, d, cues)
		s.runTo(d - frame)
		if n := cues.Count(tt.cue); n != 1 {
			t.Errorf("%v: %v fired %d times, want 1", tt.kind, tt.cue, n)
		}
	}
}

func TestSeededSessionsMatch(t *testing.T) {
	for _, k := range []Kind{CircuitPulse, FileRain, SteamParticles, GlitchStatic} {
		a := newSession(k, time.Second, nil)
		b := newSession(k, time.Second, nil)
		a.runTo(500 * time.Millisecond)
		b.runTo(500 * time.Millisecond)

		oa, ob := a.rec.Ops(), b.rec.Ops()
		if len(oa) != len(ob) {
			t.Fatalf("%v: op counts differ %d vs %d", k, len(oa), len(ob))
		}
		for i := range oa {
			if oa[i] != ob[i] {
				t.Fatalf("%v: op %d differs: %+v vs %+v", k, i, oa[i], ob[i])
			}
		}
	}
}
