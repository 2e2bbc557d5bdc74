package script

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/cyberfx/effect"
	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/render"
)

func TestDefaultTableCoversEveryEffect(t *testing.T) {
	table, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[effect.Kind]bool)
	for _, name := range table.Names() {
		c, err := table.Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		for _, k := range c.Effects() {
			seen[k] = true
		}
	}
	for _, k := range effect.Kinds() {
		if !seen[k] {
			t.Errorf("no command plays %v", k)
		}
	}
}

func TestLookupNormalizes(t *testing.T) {
	table, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		typed string
		want  effect.Kind
	}{
		{"hack", effect.ScanGrid},
		{"  HACK ", effect.ScanGrid},
		{"Sudo Make Me A Sandwich", effect.SandwichBuild},
		{"rm -rf /", effect.FileRain},
		{"42", effect.GalaxyConverge},
		{"cat /etc/motd\n", effect.TextCoalesce},
	}
	for _, tt := range tests {
		c, err := table.Lookup(tt.typed)
		if err != nil {
			t.Errorf("Lookup(%q): %v", tt.typed, err)
			continue
		}
		if fx := c.Effects(); len(fx) != 1 || fx[0] != tt.want {
			t.Errorf("Lookup(%q) effects = %v, want [%v]", tt.typed, fx, tt.want)
		}
	}

	if _, err := table.Lookup("matrix"); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("err = %v, want ErrUnknownCommand", err)
	}
}

func TestParseRejectsBadTables(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown effect", "x:\n  response:\n    - {type: matrix-rain}"},
		{"empty text", "x:\n  response:\n    - {type: text}"},
		{"negative delay", "x:\n  response:\n    - {type: text, text: hi, delay_after: -1}"},
		{"duplicate after normalize", "Hack:\n  response: []\nhack:\n  response: []"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.body)); !errors.Is(err, ErrInvalidScript) {
				t.Errorf("err = %v, want ErrInvalidScript", err)
			}
		})
	}
	if _, err := Parse([]byte("x: [")); err == nil {
		t.Error("malformed yaml accepted")
	}
}

func TestTableRoundTrip(t *testing.T) {
	table, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := table.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	again, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if got, want := strings.Join(again.Names(), ","), strings.Join(table.Names(), ","); got != want {
		t.Errorf("names = %s, want %s", got, want)
	}
}

const quickScript = `
boot:
  response:
    - {type: text, style: system, text: "booting"}
    - {type: pixel-burst, duration: 60}
    - {type: text, choices: [done]}
stall:
  response:
    - {type: heartbeat-monitor, duration: 60000}
    - {type: text, text: unreachable}
`

func TestPlayerRunsDirectivesInOrder(t *testing.T) {
	table, err := Parse([]byte(quickScript))
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	rec := render.NewRecorder(100, 60)
	var loops []*engine.Loop
	p := NewPlayer(table, &out, rec,
		WithRand(rand.New(rand.NewSource(1))),
		WithEffectOptions(effect.WithFrameInterval(5*time.Millisecond)),
		WithEffectStarted(func(l *engine.Loop) { loops = append(loops, l) }),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := p.Run(ctx, "boot"); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "booting\ndone\n" {
		t.Errorf("output = %q", got)
	}
	if len(loops) != 1 || loops[0].Reason() != engine.EndExpired {
		t.Fatalf("expected one expired session, got %d", len(loops))
	}
	if rec.Clears() != 1 {
		t.Errorf("Clears = %d, want 1", rec.Clears())
	}
}

func TestPlayerCancelStopsEffect(t *testing.T) {
	table, err := Parse([]byte(quickScript))
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	started := make(chan *engine.Loop, 1)
	p := NewPlayer(table, &out, render.NewRecorder(100, 60),
		WithEffectOptions(effect.WithFrameInterval(5*time.Millisecond)),
		WithEffectStarted(func(l *engine.Loop) { started <- l }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- p.Run(ctx, "stall") }()

	l := <-started
	cancel()

	select {
	case err := <-errc:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if l.Reason() != engine.EndCancelled {
		t.Errorf("Reason = %v, want cancelled", l.Reason())
	}
	if strings.Contains(out.String(), "unreachable") {
		t.Error("directive after cancel still ran")
	}
}

func TestPlayerUnknownCommand(t *testing.T) {
	table, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	p := NewPlayer(table, &bytes.Buffer{}, render.NewRecorder(10, 10))
	if err := p.Run(context.Background(), "make coffee"); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("err = %v, want ErrUnknownCommand", err)
	}
}

func TestStylers(t *testing.T) {
	if got := PlainStyler("error", "x"); got != "x" {
		t.Errorf("PlainStyler = %q", got)
	}
	if got := ColorStyler("unknown", "x"); got != "x" {
		t.Errorf("ColorStyler unknown style = %q", got)
	}
	if got := ColorStyler("error", "boom"); !strings.Contains(got, "boom") {
		t.Errorf("ColorStyler dropped text: %q", got)
	}
}
