package main

import (
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lixenwraith/cyberfx/effect"
	"github.com/lixenwraith/cyberfx/engine"
	"github.com/lixenwraith/cyberfx/render"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00fff0")).Bold(true)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff41")).Bold(true)
)

// phaseStats accumulates draw work inside one phase window
type phaseStats struct {
	frames int
	ops    int
	peak   int
}

// report collects per-phase draw statistics for a headless session
type report struct {
	kind   effect.Kind
	rec    *render.Recorder
	phases engine.PhaseTable

	mu     sync.Mutex
	stats  []phaseStats
	frames int
}

func newReport(k effect.Kind, rec *render.Recorder) *report {
	pt := k.Phases()
	return &report{
		kind:   k,
		rec:    rec,
		phases: pt,
		stats:  make([]phaseStats, len(pt)),
	}
}

// hook drains the recorder after each frame, runs under the loop's frame lock
func (r *report) hook(t engine.Timing, _ render.Surface) {
	ops := r.rec.Take()

	r.mu.Lock()
	defer r.mu.Unlock()

	if t.Complete() {
		return
	}
	i := r.phases.Index(t.Progress)
	if i < 0 || i >= len(r.stats) {
		return
	}
	st := &r.stats[i]
	st.frames++
	st.ops += len(ops)
	st.peak = max(st.peak, len(ops))
	r.frames++
}

// write renders the summary table followed by the end reason
func (r *report) write(w io.Writer, reason engine.EndReason) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := make([][]string, 0, len(r.stats))
	for i, st := range r.stats {
		perFrame := "-"
		if st.frames > 0 {
			perFrame = strconv.FormatFloat(float64(st.ops)/float64(st.frames), 'f', 1, 64)
		}
		rows = append(rows, []string{
			r.phases[i].Name,
			strconv.Itoa(st.frames),
			perFrame,
			strconv.Itoa(st.peak),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("phase", "frames", "ops/frame", "peak").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Inherit(cellStyle)
			}
			return cellStyle
		})

	_, err := fmt.Fprintf(w, "%s\n%s\nframes: %d  end: %s\n",
		titleStyle.Render(r.kind.String()), t.String(), r.frames, reason)
	return err
}
