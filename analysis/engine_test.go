package analysis

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/embedpower/dvsim/power"
)

func scenarioTable() power.Table {
	table, err := power.MakeTable(
		power.OperatingPoint{Voltage: 0.6 * power.V, Freq: 50 * power.MHz},
		power.OperatingPoint{Voltage: 0.7 * power.V, Freq: 100 * power.MHz},
		power.OperatingPoint{Voltage: 1.2 * power.V, Freq: 800 * power.MHz},
	)
	if err != nil {
		panic(err)
	}
	return table
}

// recordWithIPC builds a record whose instruction count and elapsed time
// reproduce the wanted IPC at the point.
func recordWithIPC(
	p power.OperatingPoint,
	w Workload,
	instructions uint64,
	ipc float64,
) MetricsRecord {
	elapsed := float64(instructions) / (ipc * float64(p.Freq))

	r, err := MakeMetricsRecord(p, w, instructions, elapsed)
	if err != nil {
		panic(err)
	}
	return r
}

var _ = Describe("Engine", func() {
	var (
		table  power.Table
		engine *Engine
	)

	BeforeEach(func() {
		table = scenarioTable()
		engine = MakeEngineBuilder().
			WithPowerModel(power.MakeModel(1e-9, 5e-3)).
			WithDVFSTable(table).
			Build()
	})

	ingestScenario := func() {
		ipcs := []float64{0.20, 0.35, 0.85}
		for i, p := range table.Points() {
			Expect(engine.Ingest(
				recordWithIPC(p, "w", 50000, ipcs[i]))).To(Succeed())
		}
	}

	It("should compute record IPC from instructions, time, and frequency",
		func() {
			p := table.Point(2)
			r := recordWithIPC(p, "w", 50000, 0.85)

			Expect(r.IPC()).To(BeNumerically("~", 0.85, 1e-9))
		})

	It("should reject a non-positive elapsed time at construction", func() {
		_, err := MakeMetricsRecord(table.Point(0), "w", 50000, 0)

		Expect(err).To(HaveOccurred())
	})

	It("should reject duplicate records and keep the set unchanged", func() {
		r := recordWithIPC(table.Point(0), "w", 50000, 0.20)
		Expect(engine.Ingest(r)).To(Succeed())

		err := engine.Ingest(r)

		var dup *DuplicateRecordError
		Expect(errors.As(err, &dup)).To(BeTrue())
		Expect(dup.Workload).To(Equal(Workload("w")))
		Expect(engine.NumRecords()).To(Equal(1))
	})

	It("should reject duplicates within one batch atomically", func() {
		r1 := recordWithIPC(table.Point(0), "w", 50000, 0.20)
		r2 := recordWithIPC(table.Point(1), "w", 50000, 0.35)

		err := engine.Ingest(r1, r2, r1)

		Expect(err).To(HaveOccurred())
		Expect(engine.NumRecords()).To(Equal(0))
	})

	It("should reject records at points outside the table", func() {
		stray := power.OperatingPoint{
			Voltage: 0.9 * power.V, Freq: 400 * power.MHz}

		err := engine.Ingest(recordWithIPC(stray, "w", 50000, 0.5))

		var notInTable *power.PointNotInTableError
		Expect(errors.As(err, &notInTable)).To(BeTrue())
		Expect(engine.NumRecords()).To(Equal(0))
	})

	It("should reject records above the IPC bound", func() {
		bounded := MakeEngineBuilder().
			WithPowerModel(power.MakeModel(1e-9, 5e-3)).
			WithDVFSTable(table).
			WithIPCBound(2).
			Build()

		err := bounded.Ingest(
			recordWithIPC(table.Point(0), "w", 50000, 2.5))

		var outOfBound *IPCBoundError
		Expect(errors.As(err, &outOfBound)).To(BeTrue())
	})

	It("should derive power, energy, and efficiency", func() {
		r := recordWithIPC(table.Point(2), "w", 50000, 0.85)

		d, err := engine.Derive(r)

		Expect(err).ToNot(HaveOccurred())
		Expect(d.Power.Dynamic).To(BeNumerically("~", 0.97920, 1e-6))
		Expect(d.Power.Static).To(BeNumerically("~", 0.00600, 1e-9))
		Expect(d.TotalEnergy).To(BeNumerically("~", 7.2441e-5, 1e-9))
		Expect(d.EnergyPerInstruction).ToNot(BeNil())
		Expect(*d.EnergyPerInstruction).To(
			BeNumerically("~", 1.44882e-9, 1e-13))
		Expect(d.Efficiency).To(BeNumerically("~", 0.8628, 1e-4))
	})

	It("should derive a nil energy-per-instruction for idle runs", func() {
		r, err := MakeMetricsRecord(table.Point(0), "idle", 0, 1.0)
		Expect(err).ToNot(HaveOccurred())

		d, err := engine.Derive(r)

		Expect(err).ToNot(HaveOccurred())
		Expect(d.EnergyPerInstruction).To(BeNil())
		Expect(d.Power.Dynamic).To(BeZero())
	})

	It("should refuse zero instructions on a non-idle workload", func() {
		r, err := MakeMetricsRecord(table.Point(0), "stalled", 0, 1.0)
		Expect(err).ToNot(HaveOccurred())

		_, err = engine.Derive(r)

		var zeroInst *ZeroInstructionError
		Expect(errors.As(err, &zeroInst)).To(BeTrue())
		Expect(zeroInst.Workload).To(Equal(Workload("stalled")))
	})

	It("should average non-idle records per point", func() {
		p := table.Point(0)
		Expect(engine.Ingest(
			recordWithIPC(p, "a", 50000, 0.20),
			recordWithIPC(p, "b", 50000, 0.30),
			recordWithIPC(p, "idle", 1000, 0.05),
		)).To(Succeed())

		s, err := engine.Aggregate(p)

		Expect(err).ToNot(HaveOccurred())
		Expect(s.Records).To(Equal(2))
		Expect(s.IPC).To(BeNumerically("~", 0.25, 1e-9))
	})

	It("should fail aggregation when only idle records remain", func() {
		p := table.Point(0)
		Expect(engine.Ingest(
			recordWithIPC(p, "idle", 1000, 0.05))).To(Succeed())

		_, err := engine.Aggregate(p)

		var noData *NoDataError
		Expect(errors.As(err, &noData)).To(BeTrue())
		Expect(noData.Point).To(Equal(p))
	})

	It("should fail aggregation at a point with no records at all", func() {
		_, err := engine.Aggregate(table.Point(1))

		Expect(err).To(HaveOccurred())
	})

	Context("with the three-point scenario ingested", func() {
		BeforeEach(ingestScenario)

		It("should pick the point with the actually-highest efficiency, "+
			"not the highest frequency", func() {
			best, err := engine.SelectOptimum(MaxEfficiency)

			Expect(err).ToNot(HaveOccurred())

			var maxEff float64
			var expected power.OperatingPoint
			for _, p := range table.Points() {
				s, err := engine.Aggregate(p)
				Expect(err).ToNot(HaveOccurred())
				if s.Efficiency > maxEff {
					maxEff = s.Efficiency
					expected = p
				}
			}

			Expect(best).To(Equal(expected))
			Expect(best).To(Equal(table.Point(0)))
		})

		It("should pick the lowest energy per instruction", func() {
			best, err := engine.SelectOptimum(MinEnergyPerInstruction)

			Expect(err).ToNot(HaveOccurred())
			// At 0.7V/100MHz the ipc gain outweighs the power growth.
			Expect(best).To(Equal(table.Point(1)))
		})

		It("should select the same optimum when re-run", func() {
			first, err := engine.SelectOptimum(MaxEfficiency)
			Expect(err).ToNot(HaveOccurred())

			second, err := engine.SelectOptimum(MaxEfficiency)
			Expect(err).ToNot(HaveOccurred())

			Expect(second).To(Equal(first))
		})

		It("should summarize per-point aggregates in table order", func() {
			s, err := engine.Summarize(MaxEfficiency)

			Expect(err).ToNot(HaveOccurred())
			Expect(s.PerPoint).To(HaveLen(3))
			Expect(s.PerPoint[0].Point).To(Equal(table.Point(0)))
			Expect(s.PerPoint[2].Point).To(Equal(table.Point(2)))
			Expect(s.Optimum).To(Equal(table.Point(0)))
			Expect(s.Criterion).To(Equal(MaxEfficiency))
		})
	})

	It("should fail optimum selection with nothing aggregated", func() {
		_, err := engine.SelectOptimum(MaxEfficiency)

		var empty *EmptyTableError
		Expect(errors.As(err, &empty)).To(BeTrue())
	})

	It("should break efficiency ties toward the earliest table point",
		func() {
			// With no dynamic term, efficiency is ipc/(k*V); doubling
			// both voltage and ipc gives exactly equal efficiency.
			tieTable, err := power.MakeTable(
				power.OperatingPoint{
					Voltage: 1 * power.V, Freq: 100 * power.MHz},
				power.OperatingPoint{
					Voltage: 2 * power.V, Freq: 200 * power.MHz},
			)
			Expect(err).ToNot(HaveOccurred())

			tieEngine := MakeEngineBuilder().
				WithPowerModel(power.MakeModel(0, 0.5)).
				WithDVFSTable(tieTable).
				Build()

			Expect(tieEngine.Ingest(
				recordWithIPC(tieTable.Point(0), "w", 1000000, 0.1),
				recordWithIPC(tieTable.Point(1), "w", 4000000, 0.2),
			)).To(Succeed())

			best, err := tieEngine.SelectOptimum(MaxEfficiency)

			Expect(err).ToNot(HaveOccurred())
			Expect(best).To(Equal(tieTable.Point(0)))
		})
})
