package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/cyberfx/effect"
	"github.com/lixenwraith/cyberfx/parameter"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cyberfx.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadEmptyPathIsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != parameter.FallbackWidth || cfg.Height != parameter.FallbackHeight {
		t.Errorf("size = %vx%v", cfg.Width, cfg.Height)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
	if got := cfg.FrameInterval(); got != time.Second/time.Duration(cfg.FrameRate) {
		t.Errorf("FrameInterval = %v", got)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
frame_rate: 30
seed: 7
sound: true
durations:
  scan-grid: 1500
  galaxy-converge: 2s
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FrameRate != 30 || cfg.Seed != 7 || !cfg.Sound {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Width != parameter.FallbackWidth {
		t.Errorf("unset width lost its default: %v", cfg.Width)
	}

	tests := []struct {
		kind effect.Kind
		want time.Duration
	}{
		{effect.ScanGrid, 1500 * time.Millisecond},
		{effect.GalaxyConverge, 2 * time.Second},
		{effect.PixelBurst, effect.PixelBurst.DefaultDuration()},
	}
	for _, tt := range tests {
		if got := cfg.DurationFor(tt.kind); got != tt.want {
			t.Errorf("DurationFor(%v) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"frame rate", "frame_rate: 0"},
		{"volume", "volume: 2"},
		{"unknown effect", "durations:\n  matrix-rain: 100"},
		{"zero duration", "durations:\n  file-rain: 0"},
		{"negative size", "width: -1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); !errors.Is(err, ErrInvalid) {
				t.Errorf("err = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadReportsParseErrors(t *testing.T) {
	if _, err := Load(writeConfig(t, "durations:\n  scan-grid: soon")); err == nil {
		t.Error("expected a parse error")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want not-exist", err)
	}
}
