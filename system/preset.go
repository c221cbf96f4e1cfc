package system

import (
	"github.com/embedpower/dvsim/arch"
	"github.com/embedpower/dvsim/power"
)

// Default power model coefficients, calibrated against the reference
// low-power process. In these units the model reads
// P_dyn[mW] = V^2 * f[MHz] * IPC and P_static[mW] = 5 * V.
const (
	DefaultDynamicCoefficient = 1e-9
	DefaultLeakageCoefficient = 5e-3
)

// ReferenceDVFSPoints returns the operating point ladder of the reference
// patient-monitor SoC, from minimum power to maximum performance.
func ReferenceDVFSPoints() []power.OperatingPoint {
	return []power.OperatingPoint{
		{Voltage: 0.6 * power.V, Freq: 50 * power.MHz},
		{Voltage: 0.7 * power.V, Freq: 100 * power.MHz},
		{Voltage: 0.8 * power.V, Freq: 200 * power.MHz},
		{Voltage: 0.9 * power.V, Freq: 400 * power.MHz},
		{Voltage: 1.0 * power.V, Freq: 600 * power.MHz},
		{Voltage: 1.2 * power.V, Freq: 800 * power.MHz},
	}
}

// BuildReferenceSoC builds the reference patient-monitor system: a 2-wide
// in-order core with split 32KB L1s, a shared 128KB L2, a system crossbar,
// and a DDR3 memory controller, all in one DVFS domain.
func BuildReferenceSoC() (*Configuration, error) {
	topology, err := buildReferenceTopology()
	if err != nil {
		return nil, err
	}

	table, err := power.MakeTable(ReferenceDVFSPoints()...)
	if err != nil {
		return nil, err
	}

	return MakeBuilder().
		WithTopology(topology).
		WithPowerDomain(power.NewDomain("CPUClock", table)).
		WithPowerModel(power.MakeModel(
			DefaultDynamicCoefficient, DefaultLeakageCoefficient)).
		Build()
}

func buildReferenceTopology() (*arch.Topology, error) {
	t := arch.NewTopology("PatientMonitorSoC")

	cpu, err := arch.NewProcessorCore("CPU", arch.CoreParams{
		IssueWidth:          2,
		CommitWidth:         2,
		DecodeWidth:         2,
		ForwardDelay:        1,
		BTBEntries:          512,
		GlobalPredictorSize: 512,
	})
	if err != nil {
		return nil, err
	}

	l1i, err := arch.NewCache("L1ICache", arch.CacheParams{
		SizeBytes:         32 * 1024,
		Associativity:     4,
		TagLatency:        1,
		DataLatency:       1,
		ResponseLatency:   1,
		MSHRs:             4,
		WriteBuffers:      8,
		ReplacementPolicy: "LRU",
	})
	if err != nil {
		return nil, err
	}

	l1d, err := arch.NewCache("L1DCache", arch.CacheParams{
		SizeBytes:         32 * 1024,
		Associativity:     4,
		TagLatency:        2,
		DataLatency:       2,
		ResponseLatency:   1,
		MSHRs:             4,
		WriteBuffers:      8,
		ReplacementPolicy: "LRU",
	})
	if err != nil {
		return nil, err
	}

	l2, err := arch.NewCache("L2Cache", arch.CacheParams{
		SizeBytes:         128 * 1024,
		Associativity:     8,
		TagLatency:        10,
		DataLatency:       10,
		ResponseLatency:   1,
		MSHRs:             20,
		WriteBuffers:      16,
		ReplacementPolicy: "LRU",
	})
	if err != nil {
		return nil, err
	}

	membus, err := arch.NewInterconnect("MemBus", arch.InterconnectParams{
		WidthBytes: 8,
		Latency:    1,
	})
	if err != nil {
		return nil, err
	}

	memCtrl, err := arch.NewMemoryController("MemCtrl",
		arch.MemControllerParams{
			CapacityBytes: 512 * 1024 * 1024,
			Protocol:      "DDR3_1600_8x8",
		})
	if err != nil {
		return nil, err
	}

	for _, c := range []*arch.Component{cpu, l1i, l1d, l2, membus, memCtrl} {
		if err := t.AddComponent(c); err != nil {
			return nil, err
		}
	}

	wiring := [][2]*arch.Port{
		{cpu.Port("IMem"), l1i.Port("CPUSide")},
		{cpu.Port("DMem"), l1d.Port("CPUSide")},
		{l1i.Port("MemSide"), l2.Port("CPUSide")},
		{l1d.Port("MemSide"), l2.Port("CPUSide")},
		{l2.Port("MemSide"), membus.Port("CPUSide")},
		{membus.Port("MemSide"), memCtrl.Port("CPUSide")},
	}
	for _, pair := range wiring {
		if err := t.Connect(pair[0], pair[1]); err != nil {
			return nil, err
		}
	}

	return t, nil
}
