package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lixenwraith/cyberfx/audio"
	"github.com/lixenwraith/cyberfx/config"
	"github.com/lixenwraith/cyberfx/effect"
	"github.com/lixenwraith/cyberfx/parameter"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globals carries persistent flags shared by every subcommand
type globals struct {
	configPath string
	logPath    string
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:           "cyberfx",
		Short:         "Cyberpunk canvas effects for the terminal and the browser",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&g.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&g.logPath, "log", "", "write diagnostics to this file")

	root.AddCommand(newListCmd())
	root.AddCommand(newPlayCmd(g))
	root.AddCommand(newRunCmd(g))
	root.AddCommand(newServeCmd(g))
	root.AddCommand(newCommandsCmd(g))
	return root
}

func (g *globals) config() (config.Config, error) {
	return config.Load(g.configPath)
}

// logger opens the diagnostic sink; fullscreen sessions must not write to the terminal
func (g *globals) logger(fullscreen bool) (*log.Logger, func(), error) {
	if g.logPath != "" {
		f, err := os.OpenFile(g.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log: %w", err)
		}
		return log.New(f, "[cyberfx] ", log.LstdFlags), func() { _ = f.Close() }, nil
	}
	if fullscreen {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	return log.New(os.Stderr, "[cyberfx] ", log.LstdFlags), func() {}, nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stdin.Fd()))
}

// cues opens the speaker when sound is on, any failure falls back to silence
func cues(cfg config.Config, logger *log.Logger) (audio.Cues, func()) {
	if !cfg.Sound {
		return audio.Silent{}, func() {}
	}
	synth := audio.NewSynth(audio.Config{
		Enabled:      true,
		MasterVolume: cfg.Volume,
		SampleRate:   parameter.AudioSampleRate,
	}, logger)
	if err := synth.Initialize(); err != nil {
		logger.Printf("audio disabled: %v", err)
		return audio.Silent{}, func() {}
	}
	return synth, synth.Cleanup
}

// effectOptions maps config onto per-session options
func effectOptions(cfg config.Config, logger *log.Logger, c audio.Cues) []effect.Option {
	opts := []effect.Option{
		effect.WithLogger(logger),
		effect.WithFrameInterval(cfg.FrameInterval()),
		effect.WithCues(c),
	}
	if cfg.Seed != 0 {
		opts = append(opts, effect.WithSeed(cfg.Seed))
	}
	return opts
}
