package analysis

import (
	"github.com/embedpower/dvsim/power"
)

// A PointSummary is the mean of the derived metrics of all non-idle records
// at one operating point.
type PointSummary struct {
	Point   power.OperatingPoint
	Records int

	IPC                  float64
	TotalPower           float64
	EnergyPerInstruction float64
	Efficiency           float64
}

// A Summary is the final product of an analysis: per-point aggregates in
// table order plus the selected optimum. The engine produces it; it is
// immutable once returned.
type Summary struct {
	PerPoint  []PointSummary
	Optimum   power.OperatingPoint
	Criterion Criterion
}

// Summarize aggregates every operating point with data and selects the
// optimum under the criterion.
func (e *Engine) Summarize(c Criterion) (Summary, error) {
	optimum, err := e.SelectOptimum(c)
	if err != nil {
		return Summary{}, err
	}

	s := Summary{
		Optimum:   optimum,
		Criterion: c,
	}

	for _, p := range e.table.Points() {
		agg, err := e.Aggregate(p)
		if err != nil {
			// Points without data were already tolerated by the
			// optimum search.
			continue
		}
		s.PerPoint = append(s.PerPoint, agg)
	}

	return s, nil
}
