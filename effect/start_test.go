package effect

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/parameter"
	"github.com/lixenwraith/cyberfx/render"
)

func TestStartUnknownEffectIsInert(t *testing.T) {
	var buf bytes.Buffer
	rec := render.NewRecorder(100, 100)

	cancel := Start(rec, "not-a-real-effect", time.Second, WithLogger(log.New(&buf, "", 0)))
	if cancel == nil {
		t.Fatal("Start returned nil handle")
	}
	cancel()
	cancel()

	if rec.Total() != 0 {
		t.Errorf("unknown effect drew %d ops", rec.Total())
	}
	if !strings.Contains(buf.String(), "not-a-real-effect") {
		t.Errorf("diagnostic not logged: %q", buf.String())
	}
}

func TestLaunchErrors(t *testing.T) {
	if _, err := Launch(render.NewRecorder(1, 1), "nope", time.Second); !errors.Is(err, ErrUnknownEffect) {
		t.Errorf("err = %v, want ErrUnknownEffect", err)
	}
	if _, err := LaunchKind(nil, ScanGrid, time.Second); !errors.Is(err, ErrNoSurface) {
		t.Errorf("err = %v, want ErrNoSurface", err)
	}
	if _, err := LaunchKind(render.NewRecorder(1, 1), kindCount, time.Second); !errors.Is(err, ErrUnknownEffect) {
		t.Errorf("err = %v, want ErrUnknownEffect", err)
	}
}

func TestLaunchAppliesFallbackSize(t *testing.T) {
	rec := render.NewRecorder(0, 0)
	clock := engine.NewMockTimeProvider(epoch)
	l, err := Launch(rec, "network-pulse", time.Second, WithClock(clock), WithoutRun(), WithLogger(quiet))
	if err != nil {
		t.Fatal(err)
	}
	defer l.Cancel()

	w, h := rec.Size()
	if w != parameter.FallbackWidth || h != parameter.FallbackHeight {
		t.Errorf("size = %vx%v, want %vx%v", w, h, parameter.FallbackWidth, parameter.FallbackHeight)
	}
	if !l.Tick() {
		t.Fatal("first frame should continue")
	}
	for _, op := range rec.Ops() {
		if op.Kind == render.OpRect && op.W == parameter.FallbackWidth {
			return
		}
	}
	t.Error("no full-surface fill at fallback width")
}

func TestCancelStopsMutation(t *testing.T) {
	for _, k := range Kinds() {
		rec := render.NewRecorder(320, 200)
		clock := engine.NewMockTimeProvider(epoch)
		l, err := LaunchKind(rec, k, 2*time.Second, WithClock(clock), WithoutRun(), WithLogger(quiet))
		if err != nil {
			t.Fatal(err)
		}
		l.Tick()
		clock.Step(l, frame)

		cancel := l.CancelFunc()
		cancel()
		cancel()
		total := rec.Total()

		if clock.Step(l, frame) {
			t.Errorf("%v: ticked after cancel", k)
		}
		if rec.Total() != total {
			t.Errorf("%v: surface mutated after cancel", k)
		}
		if rec.Clears() != 0 {
			t.Errorf("%v: cancel cleared the surface", k)
		}
		if l.Reason() != engine.EndCancelled {
			t.Errorf("%v: Reason = %v, want cancelled", k, l.Reason())
		}
	}
}

func TestSeedReproducesFrames(t *testing.T) {
	frames := func() []render.Op {
		rec := render.NewRecorder(320, 200)
		clock := engine.NewMockTimeProvider(epoch)
		l, err := Launch(rec, "circuit-pulse", time.Second, WithClock(clock), WithSeed(99), WithoutRun())
		if err != nil {
			t.Fatal(err)
		}
		l.Tick()
		clock.Step(l, 300*time.Millisecond)
		return rec.Ops()
	}
	a, b := frames(), frames()
	if len(a) != len(b) {
		t.Fatalf("op counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("op %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestStartRunsToCompletion(t *testing.T) {
	rec := render.NewRecorder(200, 100)
	l, err := Launch(rec, "glitch-static", 80*time.Millisecond, WithFrameInterval(5*time.Millisecond), WithLogger(quiet))
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if reason := l.Wait(ctx); reason != engine.EndExpired {
		t.Fatalf("Wait = %v, want expired", reason)
	}
	if l.Frames() == 0 {
		t.Error("no frames ran")
	}
	if rec.Clears() != 1 {
		t.Errorf("Clears = %d, want 1", rec.Clears())
	}
}

func TestFrameHookSeesEveryFrame(t *testing.T) {
	rec := render.NewRecorder(200, 100)
	clock := engine.NewMockTimeProvider(epoch)
	var calls int
	l, err := Launch(rec, "vim-takeover", 100*time.Millisecond,
		WithClock(clock), WithoutRun(), WithFrameHook(func(engine.Timing, render.Surface) { calls++ }))
	if err != nil {
		t.Fatal(err)
	}
	l.Tick()
	clock.Step(l, 50*time.Millisecond)
	clock.Step(l, 60*time.Millisecond)
	if calls != 3 {
		t.Errorf("hook calls = %d, want 3", calls)
	}
}
