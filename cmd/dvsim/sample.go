package main

import (
	"github.com/embedpower/dvsim/analysis"
	"github.com/embedpower/dvsim/system"
)

// Per-workload instruction counts and IPC scaling of the sample feed. The
// scaling factors are input data standing in for real simulator output; the
// analysis engine never applies workload-specific adjustments itself.
var sampleWorkloads = []struct {
	label        analysis.Workload
	instructions uint64
	ipcScale     float64
}{
	{"patient_monitor", 200000, 1.00},
	{"intensive_ecg_processing", 200000, 0.95},
	{"burst_transmission", 200000, 1.00},
	{"mixed_workload", 200000, 1.00},
	{"idle_scenario", 50000, 0.30},
	{"stress_test", 500000, 1.05},
}

// sampleFeed synthesizes the metrics an external simulator would emit for
// the reference SoC: one record per (operating point, workload), with IPC
// rising with frequency.
func sampleFeed() []analysis.MetricsRecord {
	var records []analysis.MetricsRecord

	for _, point := range system.ReferenceDVFSPoints() {
		baseIPC := 0.65 + float64(point.Freq)/800e6*0.20

		for _, w := range sampleWorkloads {
			ipc := baseIPC * w.ipcScale
			elapsed := float64(w.instructions) /
				(float64(point.Freq) * ipc)

			record, err := analysis.MakeMetricsRecord(
				point, w.label, w.instructions, elapsed)
			if err != nil {
				panic(err)
			}

			records = append(records, record)
		}
	}

	return records
}
