package analysis

import (
	"errors"
	"sort"

	"github.com/embedpower/dvsim/power"
)

// A Criterion picks which aggregate figure the optimum search optimizes.
type Criterion int

// The supported optimum criteria.
const (
	MinEnergyPerInstruction Criterion = iota
	MaxEfficiency
)

func (c Criterion) String() string {
	switch c {
	case MinEnergyPerInstruction:
		return "min_energy_per_instruction"
	case MaxEfficiency:
		return "max_efficiency"
	default:
		return "unknown"
	}
}

// DerivedMetrics is what the power model and energy accounting make of one
// raw record. It is recomputed on demand and never cached, so a model swap
// can never leave stale figures behind.
type DerivedMetrics struct {
	IPC         float64
	Power       power.Breakdown
	TotalEnergy float64

	// EnergyPerInstruction is nil for idle runs that executed no
	// instructions.
	EnergyPerInstruction *float64

	Efficiency float64
}

type recordKey struct {
	point    power.OperatingPoint
	workload Workload
}

// An Engine ingests metrics records, derives power and energy figures, and
// aggregates them per operating point. Every result is a pure function of
// the ingested set plus explicit arguments; callers must serialize writers.
type Engine struct {
	model    power.Model
	table    power.Table
	idle     map[Workload]bool
	ipcBound float64

	records map[recordKey]MetricsRecord
}

// EngineBuilder builds analysis engines.
type EngineBuilder struct {
	model    power.Model
	table    power.Table
	idle     []Workload
	ipcBound float64
}

// MakeEngineBuilder creates a builder with the default idle labels.
func MakeEngineBuilder() EngineBuilder {
	return EngineBuilder{
		idle: []Workload{"idle", "idle_scenario"},
	}
}

// WithPowerModel sets the power model the engine derives with.
func (b EngineBuilder) WithPowerModel(m power.Model) EngineBuilder {
	b.model = m
	return b
}

// WithDVFSTable sets the table that defines the admissible operating points
// and the deterministic tie-break order.
func (b EngineBuilder) WithDVFSTable(t power.Table) EngineBuilder {
	b.table = t
	return b
}

// WithIdleWorkloads replaces the set of workload labels treated as idle.
func (b EngineBuilder) WithIdleWorkloads(ws ...Workload) EngineBuilder {
	b.idle = ws
	return b
}

// WithIPCBound makes ingestion reject records whose IPC exceeds the issue
// width of the modeled core. Zero disables the check.
func (b EngineBuilder) WithIPCBound(bound float64) EngineBuilder {
	b.ipcBound = bound
	return b
}

// Build creates the engine. An empty DVFS table is a wiring bug.
func (b EngineBuilder) Build() *Engine {
	if b.table.Len() == 0 {
		panic("analysis engine needs a non-empty DVFS table")
	}

	e := &Engine{
		model:    b.model,
		table:    b.table,
		idle:     make(map[Workload]bool),
		ipcBound: b.ipcBound,
		records:  make(map[recordKey]MetricsRecord),
	}
	for _, w := range b.idle {
		e.idle[w] = true
	}

	return e
}

// Ingest adds records to the engine in any order. The call is atomic: if any
// record is rejected, the ingested set is unchanged.
func (e *Engine) Ingest(records ...MetricsRecord) error {
	staged := make(map[recordKey]bool, len(records))

	for _, r := range records {
		if err := e.recordMustBeValid(r); err != nil {
			return err
		}

		key := recordKey{point: r.Point, workload: r.Workload}
		if staged[key] {
			return &DuplicateRecordError{Point: r.Point, Workload: r.Workload}
		}
		if _, found := e.records[key]; found {
			return &DuplicateRecordError{Point: r.Point, Workload: r.Workload}
		}

		staged[key] = true
	}

	for _, r := range records {
		e.records[recordKey{point: r.Point, workload: r.Workload}] = r
	}

	return nil
}

// NumRecords returns the size of the ingested set.
func (e *Engine) NumRecords() int {
	return len(e.records)
}

// IsIdle reports whether the engine classifies a workload as idle.
func (e *Engine) IsIdle(w Workload) bool {
	return e.idle[w]
}

// Derive applies the power model to one record.
func (e *Engine) Derive(r MetricsRecord) (DerivedMetrics, error) {
	ipc := r.IPC()

	breakdown, err := e.model.PowerAt(r.Point, ipc)
	if err != nil {
		return DerivedMetrics{}, err
	}

	d := DerivedMetrics{
		IPC:         ipc,
		Power:       breakdown,
		TotalEnergy: breakdown.Total * r.ElapsedSeconds,
	}

	if breakdown.Total > 0 {
		d.Efficiency = ipc / breakdown.Total
	}

	if r.Instructions == 0 {
		if !e.IsIdle(r.Workload) {
			return DerivedMetrics{}, &ZeroInstructionError{
				Point: r.Point, Workload: r.Workload}
		}
		return d, nil
	}

	epi := d.TotalEnergy / float64(r.Instructions)
	d.EnergyPerInstruction = &epi

	return d, nil
}

// Aggregate averages the derived metrics of all non-idle records at one
// operating point.
func (e *Engine) Aggregate(p power.OperatingPoint) (PointSummary, error) {
	s := PointSummary{Point: p}

	for _, i := range e.tableOrderKeys() {
		r := e.records[i]
		if r.Point != p || e.IsIdle(r.Workload) {
			continue
		}

		d, err := e.Derive(r)
		if err != nil {
			return PointSummary{}, err
		}

		s.Records++
		s.IPC += d.IPC
		s.TotalPower += d.Power.Total
		s.EnergyPerInstruction += *d.EnergyPerInstruction
		s.Efficiency += d.Efficiency
	}

	if s.Records == 0 {
		return PointSummary{}, &NoDataError{Point: p}
	}

	n := float64(s.Records)
	s.IPC /= n
	s.TotalPower /= n
	s.EnergyPerInstruction /= n
	s.Efficiency /= n

	return s, nil
}

// SelectOptimum scans the per-point aggregates and returns the operating
// point that optimizes the criterion. Ties go to the earliest table point,
// which is the lowest voltage and frequency.
func (e *Engine) SelectOptimum(c Criterion) (power.OperatingPoint, error) {
	found := false
	var best PointSummary

	for _, p := range e.table.Points() {
		s, err := e.Aggregate(p)
		if err != nil {
			var noData *NoDataError
			if errors.As(err, &noData) {
				continue
			}
			return power.OperatingPoint{}, err
		}

		if !found || betterThan(c, s, best) {
			found = true
			best = s
		}
	}

	if !found {
		return power.OperatingPoint{}, &EmptyTableError{}
	}

	return best.Point, nil
}

func betterThan(c Criterion, candidate, best PointSummary) bool {
	switch c {
	case MinEnergyPerInstruction:
		return candidate.EnergyPerInstruction < best.EnergyPerInstruction
	case MaxEfficiency:
		return candidate.Efficiency > best.Efficiency
	default:
		panic("unknown criterion")
	}
}

// tableOrderKeys returns the record keys sorted by table index then
// workload, so aggregation is deterministic regardless of map order.
func (e *Engine) tableOrderKeys() []recordKey {
	keys := make([]recordKey, 0, len(e.records))
	for k := range e.records {
		keys = append(keys, k)
	}

	index := func(k recordKey) int {
		i, _ := e.table.IndexOf(k.point)
		return i
	}

	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if index(a) != index(b) {
			return index(a) < index(b)
		}
		return a.workload < b.workload
	})

	return keys
}

func (e *Engine) recordMustBeValid(r MetricsRecord) error {
	if r.ElapsedSeconds <= 0 {
		return &power.NonPositiveInputError{
			Name: "elapsed seconds", Value: r.ElapsedSeconds}
	}

	if !e.table.Contains(r.Point) {
		return &power.PointNotInTableError{Point: r.Point}
	}

	if e.ipcBound > 0 && r.IPC() > e.ipcBound {
		return &IPCBoundError{
			Point:    r.Point,
			Workload: r.Workload,
			IPC:      r.IPC(),
			Bound:    e.ipcBound,
		}
	}

	return nil
}
