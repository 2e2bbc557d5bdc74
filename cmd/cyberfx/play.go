package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/cyberfx/effect"
	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/render"
	"github.com/lixenwraith/cyberfx/screen"
)

type playFlags struct {
	duration time.Duration
	seed     int64
	fps      int
	sound    bool
	headless bool
}

func newPlayCmd(g *globals) *cobra.Command {
	var f playFlags

	cmd := &cobra.Command{
		Use:   "play <effect>",
		Short: "Play one effect fullscreen, or summarise it when stdout is not a terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := effect.ParseKind(args[0])
			if err != nil {
				return err
			}
			cfg, err := g.config()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = f.seed
			}
			if cmd.Flags().Changed("fps") {
				cfg.FrameRate = f.fps
			}
			if cmd.Flags().Changed("sound") {
				cfg.Sound = f.sound
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			d := f.duration
			if d <= 0 {
				d = cfg.DurationFor(k)
			}

			fullscreen := !f.headless && isTerminal()
			logger, closeLog, err := g.logger(fullscreen)
			if err != nil {
				return err
			}
			defer closeLog()

			sink, stopAudio := cues(cfg, logger)
			defer stopAudio()
			opts := effectOptions(cfg, logger, sink)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if !fullscreen {
				return playHeadless(ctx, cmd.OutOrStdout(), k, d, cfg.Width, cfg.Height, opts)
			}

			p, err := screen.NewTerminal(screen.WithSurfaceSize(cfg.Width, cfg.Height))
			if err != nil {
				return fmt.Errorf("open terminal: %w", err)
			}
			defer p.Close()

			_, err = p.Play(ctx, k, d, opts...)
			return err
		},
	}
	cmd.Flags().DurationVar(&f.duration, "duration", 0, "run time, defaults to the effect's own")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "seed for reproducible runs")
	cmd.Flags().IntVar(&f.fps, "fps", 0, "frame rate")
	cmd.Flags().BoolVar(&f.sound, "sound", false, "play audio cues")
	cmd.Flags().BoolVar(&f.headless, "headless", false, "summarise instead of drawing even on a terminal")
	return cmd
}

// playHeadless runs k against a recorder and prints its per-phase summary
func playHeadless(ctx context.Context, w io.Writer, k effect.Kind, d time.Duration, width, height float64, opts []effect.Option) error {
	rec := render.NewRecorder(width, height)
	rep := newReport(k, rec)

	opts = append(opts[:len(opts):len(opts)], effect.WithFrameHook(rep.hook))
	l, err := effect.LaunchKind(rec, k, d, opts...)
	if err != nil {
		return err
	}
	reason := l.Wait(ctx)
	if reason == engine.EndFailed {
		return fmt.Errorf("%s: session failed", k)
	}
	return rep.write(w, reason)
}
