// Package analysis derives power, energy, and efficiency figures from raw
// simulation metrics and selects the optimal DVFS operating point.
package analysis

import (
	"github.com/embedpower/dvsim/power"
)

// A Workload is an opaque label identifying what the simulator ran. It
// carries no behavior here.
type Workload string

// A MetricsRecord is the raw output of one simulation run at one operating
// point.
type MetricsRecord struct {
	Point          power.OperatingPoint
	Workload       Workload
	Instructions   uint64
	ElapsedSeconds float64
}

// MakeMetricsRecord validates and builds a metrics record. A non-positive
// elapsed time is a construction error, never a runtime one, so IPC can
// divide by it freely.
func MakeMetricsRecord(
	point power.OperatingPoint,
	workload Workload,
	instructions uint64,
	elapsedSeconds float64,
) (MetricsRecord, error) {
	if elapsedSeconds <= 0 {
		return MetricsRecord{}, &power.NonPositiveInputError{
			Name:  "elapsed seconds",
			Value: elapsedSeconds,
		}
	}

	return MetricsRecord{
		Point:          point,
		Workload:       workload,
		Instructions:   instructions,
		ElapsedSeconds: elapsedSeconds,
	}, nil
}

// IPC returns the instructions-per-cycle throughput of the run.
func (r MetricsRecord) IPC() float64 {
	return float64(r.Instructions) /
		(r.ElapsedSeconds * float64(r.Point.Freq))
}
