/*
Package report builds sweep statistics and plots over a blast.Analysis.
It repurposes the run-manager's action-list/plotting idiom — a ResultsArray
of XY points fed into a gonum/plot figure — from driving a particle swarm
into driving a sweep over an Analysis's enumeration space, and Sweep's Log
field borrows the same structured-progress-line habit: one line every
ReportEvery enumeration rows instead of one per swarm iteration.
*/
package report

import (
	"fmt"
	"math/big"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	blast "github.com/mathrgo/blast"
)

// Sweep drives an exhaustive pass over an Analysis's free-input space,
// logging progress every reportEvery rows and calling visit with the
// concrete output row for every enumeration index. It is the sweep-level
// analogue of the particle-swarm run loop: here there is no optimization
// target, only a full traversal, so Sweep has no notion of a best
// particle — just completion.
type Sweep struct {
	Log *logrus.Logger
	// ReportEvery sets how many rows pass between progress log lines. 0
	// disables progress logging.
	ReportEvery int
}

// NewSweep returns a Sweep with a default logrus logger.
func NewSweep() *Sweep {
	return &Sweep{Log: logrus.StandardLogger(), ReportEvery: 0}
}

// Run calls visit once per row of a's full input enumeration, in index
// order, stopping at the first error visit or Compute returns.
func (s *Sweep) Run(a *blast.Analysis, visit func(index *big.Int, row *blast.BitVector) error) error {
	size := a.InputsSize()
	idx := new(big.Int)
	one := big.NewInt(1)
	for idx.Cmp(size) < 0 {
		row, err := a.Compute(idx)
		if err != nil {
			return fmt.Errorf("report: sweep at index %s: %w", idx, err)
		}
		if err := visit(new(big.Int).Set(idx), row); err != nil {
			return err
		}
		if s.Log != nil && s.ReportEvery > 0 {
			if new(big.Int).Mod(idx, big.NewInt(int64(s.ReportEvery))).Sign() == 0 {
				s.Log.WithFields(logrus.Fields{
					"index": idx.String(),
					"size":  size.String(),
				}).Info("sweep progress")
			}
		}
		idx.Add(idx, one)
	}
	return nil
}

// InputsLenIndividualized is a small plot of how many free inputs affect
// each output bit of a, one bar per position, saved to path in the format
// its extension names (a .pdf path gives a PDF).
// It mirrors ResultsArray.NewPlot from this project's run-manager history,
// replacing per-iteration particle cost series with a single per-position
// bar chart.
func InputsLenIndividualized(a *blast.Analysis, title, path string) error {
	counts := a.InputsLenIndividualized()
	values := make(plotter.Values, len(counts))
	for i, c := range counts {
		values[i] = float64(c)
	}
	pl, err := plot.New()
	if err != nil {
		return fmt.Errorf("report: new plot: %w", err)
	}
	pl.Add(plotter.NewGrid())
	bars, err := plotter.NewBarChart(values, vg.Points(8))
	if err != nil {
		return fmt.Errorf("report: new bar chart: %w", err)
	}
	pl.Add(bars)
	pl.Title.Text = title
	pl.X.Label.Text = "output bit position"
	pl.Y.Label.Text = "free inputs"
	if err := pl.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("report: save plot: %w", err)
	}
	return nil
}
