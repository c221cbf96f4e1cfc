package datarecording

import (
	"github.com/embedpower/dvsim/analysis"
)

// MetricsRow is the stored form of one raw metrics record.
type MetricsRow struct {
	VoltageVolts   float64
	FrequencyHertz float64
	Workload       string
	Instructions   uint64
	ElapsedSeconds float64
	IPC            float64
}

// SummaryRow is the stored form of one per-point aggregate.
type SummaryRow struct {
	VoltageVolts         float64
	FrequencyHertz       float64
	Records              int
	IPC                  float64
	TotalPowerWatts      float64
	EnergyPerInstruction float64
	Efficiency           float64
	Optimum              bool
	Criterion            string
}

const (
	metricsTable = "metrics_records"
	summaryTable = "point_summaries"
)

// A RunRecorder writes the inputs and outputs of one analysis run into a
// data recorder.
type RunRecorder struct {
	recorder DataRecorder
}

// NewRunRecorder creates the metrics and summary tables on the recorder.
func NewRunRecorder(recorder DataRecorder) *RunRecorder {
	recorder.CreateTable(metricsTable, MetricsRow{})
	recorder.CreateTable(summaryTable, SummaryRow{})

	return &RunRecorder{recorder: recorder}
}

// RecordMetrics stores raw metrics records.
func (r *RunRecorder) RecordMetrics(records ...analysis.MetricsRecord) {
	for _, rec := range records {
		r.recorder.InsertData(metricsTable, MetricsRow{
			VoltageVolts:   float64(rec.Point.Voltage),
			FrequencyHertz: float64(rec.Point.Freq),
			Workload:       string(rec.Workload),
			Instructions:   rec.Instructions,
			ElapsedSeconds: rec.ElapsedSeconds,
			IPC:            rec.IPC(),
		})
	}
}

// RecordSummary stores the per-point aggregates and the selected optimum.
func (r *RunRecorder) RecordSummary(s analysis.Summary) {
	for _, p := range s.PerPoint {
		r.recorder.InsertData(summaryTable, SummaryRow{
			VoltageVolts:         float64(p.Point.Voltage),
			FrequencyHertz:       float64(p.Point.Freq),
			Records:              p.Records,
			IPC:                  p.IPC,
			TotalPowerWatts:      p.TotalPower,
			EnergyPerInstruction: p.EnergyPerInstruction,
			Efficiency:           p.Efficiency,
			Optimum:              p.Point == s.Optimum,
			Criterion:            s.Criterion.String(),
		})
	}
}

// Flush forces buffered rows into the database.
func (r *RunRecorder) Flush() {
	r.recorder.Flush()
}
