package render

import "testing"

func TestBlend(t *testing.T) {
	dst := RGB{0, 0, 0}
	src := RGB{200, 100, 50}

	tests := []struct {
		name  string
		alpha float64
		want  RGB
	}{
		{"Transparent", 0, dst},
		{"Opaque", 1, src},
		{"Half", 0.5, RGB{100, 50, 25}},
		{"Over one", 1.5, src},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blend(dst, src, tt.alpha); got != tt.want {
				t.Errorf("Blend alpha=%v = %v, want %v", tt.alpha, got, tt.want)
			}
		})
	}
}

func TestAddClamps(t *testing.T) {
	got := Add(RGB{200, 200, 200}, RGB{100, 10, 0}, 1)
	if got != (RGB{255, 210, 200}) {
		t.Errorf("Add = %v", got)
	}
}

func TestLerpEndpoints(t *testing.T) {
	a, b := RGB{10, 20, 30}, RGB{110, 120, 130}
	if Lerp(a, b, 0) != a || Lerp(a, b, 1) != b {
		t.Error("Lerp endpoints must match inputs")
	}
	if mid := Lerp(a, b, 0.5); mid != (RGB{60, 70, 80}) {
		t.Errorf("Lerp mid = %v", mid)
	}
}

func TestLuma(t *testing.T) {
	if Luma(RGBBlack) != 0 {
		t.Error("black luma must be 0")
	}
	if Luma(RGBWhite) != 255 {
		t.Errorf("white luma = %d", Luma(RGBWhite))
	}
}
