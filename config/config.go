// Package config loads runtime settings from YAML, falling back to compiled defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/cyberfx/effect"
	"github.com/lixenwraith/cyberfx/parameter"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Duration accepts either a Go duration string ("2500ms", "3s") or a bare integer of milliseconds
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	s := strings.TrimSpace(node.Value)
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: duration %q: %w", node.Line, s, err)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Config holds everything the CLI and server read at startup
type Config struct {
	FrameRate  int                 `yaml:"frame_rate"`
	Width      float64             `yaml:"width"`
	Height     float64             `yaml:"height"`
	Seed       int64               `yaml:"seed"`
	Sound      bool                `yaml:"sound"`
	Volume     float64             `yaml:"volume"`
	Durations  map[string]Duration `yaml:"durations"`
	ScriptPath string              `yaml:"script"`
	Addr       string              `yaml:"addr"`
}

// Default returns the compiled defaults
func Default() Config {
	return Config{
		FrameRate: int(time.Second / parameter.FrameUpdateInterval),
		Width:     parameter.FallbackWidth,
		Height:    parameter.FallbackHeight,
		Volume:    1,
		Addr:      "127.0.0.1:8077",
	}
}

// Load reads path over the defaults, an empty path yields Default
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and effect names
func (c Config) Validate() error {
	if c.FrameRate < parameter.MinFrameRate || c.FrameRate > parameter.MaxFrameRate {
		return fmt.Errorf("%w: frame_rate %d outside [%d, %d]", ErrInvalid, c.FrameRate, parameter.MinFrameRate, parameter.MaxFrameRate)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: negative surface size %vx%v", ErrInvalid, c.Width, c.Height)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("%w: volume %v outside [0, 1]", ErrInvalid, c.Volume)
	}
	for name, d := range c.Durations {
		if _, err := effect.ParseKind(name); err != nil {
			return fmt.Errorf("%w: durations: %v", ErrInvalid, err)
		}
		if d <= 0 {
			return fmt.Errorf("%w: durations.%s must be positive", ErrInvalid, name)
		}
	}
	return nil
}

// FrameInterval is the ticker period for the configured frame rate
func (c Config) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return parameter.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.FrameRate)
}

// DurationFor returns the configured run time for an effect, else its default
func (c Config) DurationFor(k effect.Kind) time.Duration {
	if d, ok := c.Durations[k.String()]; ok {
		return time.Duration(d)
	}
	return k.DefaultDuration()
}
