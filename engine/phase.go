package engine

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidPhases reports a phase table that does not tile [0, 1)
var ErrInvalidPhases = errors.New("invalid phase table")

// phaseEpsilon absorbs float error in fractions like i/7
const phaseEpsilon = 1e-9

// Phase is a named window [From, To) of normalized progress
type Phase struct {
	Name string
	From float64
	To   float64
}

// Local renormalizes p into [0, 1] over the phase window
func (ph Phase) Local(p float64) float64 {
	if ph.To <= ph.From {
		return 1
	}
	v := (p - ph.From) / (ph.To - ph.From)
	return math.Max(0, math.Min(1, v))
}

// PhaseTable is an ordered, contiguous partition of [0, 1)
type PhaseTable []Phase

// Uniform splits [0, 1) into equal phases, one per name
func Uniform(names ...string) PhaseTable {
	pt := make(PhaseTable, len(names))
	n := float64(len(names))
	for i, name := range names {
		pt[i] = Phase{Name: name, From: float64(i) / n, To: float64(i+1) / n}
	}
	if len(pt) > 0 {
		pt[len(pt)-1].To = 1
	}
	return pt
}

// Index returns the position of the phase containing p
// Progress below 0 selects the first phase, at or above 1 the last
func (pt PhaseTable) Index(p float64) int {
	if len(pt) == 0 {
		return -1
	}
	for i, ph := range pt {
		if p < ph.To {
			return i
		}
	}
	return len(pt) - 1
}

// Select returns the phase containing p and the local progress within it
func (pt PhaseTable) Select(p float64) (Phase, float64) {
	i := pt.Index(p)
	if i < 0 {
		return Phase{}, 0
	}
	ph := pt[i]
	return ph, ph.Local(p)
}

// Name returns the name of the phase containing p
func (pt PhaseTable) Name(p float64) string {
	ph, _ := pt.Select(p)
	return ph.Name
}

// Validate checks the table starts at 0, ends at 1, and has no gaps, overlaps or empty windows
func (pt PhaseTable) Validate() error {
	if len(pt) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPhases)
	}
	if math.Abs(pt[0].From) > phaseEpsilon {
		return fmt.Errorf("%w: first phase %q starts at %v", ErrInvalidPhases, pt[0].Name, pt[0].From)
	}
	last := pt[len(pt)-1]
	if math.Abs(last.To-1) > phaseEpsilon {
		return fmt.Errorf("%w: last phase %q ends at %v", ErrInvalidPhases, last.Name, last.To)
	}
	for i, ph := range pt {
		if ph.To <= ph.From {
			return fmt.Errorf("%w: phase %q is empty", ErrInvalidPhases, ph.Name)
		}
		if i > 0 && math.Abs(ph.From-pt[i-1].To) > phaseEpsilon {
			return fmt.Errorf("%w: gap between %q and %q", ErrInvalidPhases, pt[i-1].Name, ph.Name)
		}
	}
	return nil
}
