package render

import (
	"encoding/json"
	"testing"
)

func TestHex(t *testing.T) {
	c, err := Hex("#00ff41")
	if err != nil {
		t.Fatalf("Hex: %v", err)
	}
	if c.RGB != (RGB{0, 255, 65}) || c.A != 1 {
		t.Errorf("Hex = %+v", c)
	}

	if _, err := Hex("green"); err == nil {
		t.Error("expected error for malformed color")
	}
}

func TestMustHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustHex should panic on malformed input")
		}
	}()
	MustHex("#zz")
}

func TestAlphaClamping(t *testing.T) {
	c := RGBA(1, 2, 3, 2)
	if c.A != 1 {
		t.Errorf("RGBA alpha = %v, want 1", c.A)
	}
	if c.WithAlpha(-1).A != 0 {
		t.Error("WithAlpha must clamp below zero")
	}
	if got := c.WithAlpha(0.5).Fade(0.5).A; got != 0.25 {
		t.Errorf("Fade = %v, want 0.25", got)
	}
}

func TestMixEndpoints(t *testing.T) {
	a := RGBA(255, 0, 0, 1)
	b := RGBA(0, 0, 255, 0)
	if got := Mix(a, b, 0); got.RGB != a.RGB || got.A != 1 {
		t.Errorf("Mix(0) = %+v", got)
	}
	if got := Mix(a, b, 1); got.RGB != b.RGB || got.A != 0 {
		t.Errorf("Mix(1) = %+v", got)
	}
	if got := Mix(a, b, 0.5); got.A != 0.5 {
		t.Errorf("Mix(0.5) alpha = %v", got.A)
	}
}

func TestColorJSON(t *testing.T) {
	data, err := json.Marshal(RGBA(0, 255, 65, 0.5))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"rgba(0,255,65,0.500)"` {
		t.Errorf("json = %s", data)
	}
}

func TestColorJSONDecode(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{`"rgba(0,255,65,0.500)"`, RGBA(0, 255, 65, 0.5)},
		{`"#ff0040"`, RGBA(255, 0, 64, 1)},
	}
	for _, tt := range tests {
		var c Color
		if err := json.Unmarshal([]byte(tt.in), &c); err != nil {
			t.Errorf("Unmarshal(%s): %v", tt.in, err)
			continue
		}
		if c != tt.want {
			t.Errorf("Unmarshal(%s) = %+v, want %+v", tt.in, c, tt.want)
		}
	}
	var c Color
	if err := json.Unmarshal([]byte(`"teal"`), &c); err == nil {
		t.Error("named colors should be rejected")
	}
}
