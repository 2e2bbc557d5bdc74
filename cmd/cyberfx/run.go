package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/cyberfx/config"
	"github.com/lixenwraith/cyberfx/effect"
	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/render"
	"github.com/lixenwraith/cyberfx/screen"
	"github.com/lixenwraith/cyberfx/script"
)

func loadTable(cfg config.Config) (*script.Table, error) {
	if cfg.ScriptPath == "" {
		return script.Default()
	}
	return script.LoadFile(cfg.ScriptPath)
}

func newRunCmd(g *globals) *cobra.Command {
	var headless, sound bool

	cmd := &cobra.Command{
		Use:   "run <command...>",
		Short: "Run a scripted terminal command with its effects",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.config()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("sound") {
				cfg.Sound = sound
			}
			table, err := loadTable(cfg)
			if err != nil {
				return err
			}
			name := strings.Join(args, " ")
			c, err := table.Lookup(name)
			if err != nil {
				return err
			}

			fullscreen := !headless && isTerminal()
			logger, closeLog, err := g.logger(fullscreen)
			if err != nil {
				return err
			}
			defer closeLog()

			sink, stopAudio := cues(cfg, logger)
			defer stopAudio()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts := []script.PlayerOption{
				script.WithDurations(cfg.DurationFor),
				script.WithPlayerLogger(logger),
				script.WithEffectOptions(effectOptions(cfg, logger, sink)...),
			}

			if fullscreen {
				p, err := screen.NewTerminal(screen.WithSurfaceSize(cfg.Width, cfg.Height))
				if err != nil {
					return fmt.Errorf("open terminal: %w", err)
				}
				defer p.Close()

				ctx, cancel := p.Context(ctx)
				defer cancel()
				opts = append(opts, script.WithEffectOptions(effect.WithFrameHook(p.Hook)))
				return script.NewPlayer(table, p, p.Surface(), opts...).Run(ctx, c.Name)
			}

			var loops []*engine.Loop
			opts = append(opts,
				script.WithStyler(script.ColorStyler),
				script.WithEffectStarted(func(l *engine.Loop) { loops = append(loops, l) }),
			)
			rec := render.NewRecorder(cfg.Width, cfg.Height)
			out := cmd.OutOrStdout()
			if err := script.NewPlayer(table, out, rec, opts...).Run(ctx, c.Name); err != nil {
				return err
			}
			for i, k := range c.Effects() {
				if i >= len(loops) {
					break
				}
				fmt.Fprintf(out, "%s %s: %d frames over %v, %s\n",
					titleStyle.Render("fx"), k, loops[i].Frames(), loops[i].Duration(), loops[i].Reason())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&headless, "headless", false, "print lines and summaries even on a terminal")
	cmd.Flags().BoolVar(&sound, "sound", false, "play audio cues")
	return cmd
}
