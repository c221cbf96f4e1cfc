package power

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Model", func() {
	var m Model

	BeforeEach(func() {
		// P_dyn[mW] = V^2 * f[MHz] * IPC, P_static[mW] = 5 * V.
		m = MakeModel(1e-9, 5e-3)
	})

	It("should split power into dynamic and static parts", func() {
		b, err := m.Power(1.2*V, 800*MHz, 0.85)

		Expect(err).ToNot(HaveOccurred())
		Expect(b.Dynamic).To(BeNumerically("~", 0.97920, 1e-9))
		Expect(b.Static).To(BeNumerically("~", 0.00600, 1e-9))
		Expect(b.Total).To(BeNumerically("~", 0.98520, 1e-9))
	})

	It("should draw only leakage at idle", func() {
		b, err := m.Power(0.6*V, 50*MHz, 0)

		Expect(err).ToNot(HaveOccurred())
		Expect(b.Dynamic).To(BeZero())
		Expect(b.Total).To(BeNumerically("~", 0.003, 1e-12))
	})

	It("should reject a non-positive voltage", func() {
		_, err := m.Power(0, 50*MHz, 0.5)

		var nonPositive *NonPositiveInputError
		Expect(errors.As(err, &nonPositive)).To(BeTrue())
		Expect(nonPositive.Name).To(Equal("voltage"))
	})

	It("should reject a non-positive frequency", func() {
		_, err := m.Power(0.6*V, -50*MHz, 0.5)

		var nonPositive *NonPositiveInputError
		Expect(errors.As(err, &nonPositive)).To(BeTrue())
		Expect(nonPositive.Name).To(Equal("frequency"))
	})

	It("should be non-decreasing in voltage for a fixed ipc", func() {
		for _, ipc := range []float64{0, 0.2, 0.85, 2} {
			prev := -1.0
			for v := 0.1; v <= 2.0; v += 0.1 {
				b, err := m.Power(Voltage(v), 400*MHz, ipc)

				Expect(err).ToNot(HaveOccurred())
				Expect(b.Total).To(BeNumerically(">=", prev))
				prev = b.Total
			}
		}
	})

	It("should be non-decreasing in frequency for a fixed ipc", func() {
		for _, ipc := range []float64{0, 0.2, 0.85, 2} {
			prev := -1.0
			for f := 50 * MHz; f <= 1*GHz; f += 50 * MHz {
				b, err := m.Power(0.9*V, f, ipc)

				Expect(err).ToNot(HaveOccurred())
				Expect(b.Total).To(BeNumerically(">=", prev))
				prev = b.Total
			}
		}
	})

	It("should evaluate at an operating point", func() {
		point := OperatingPoint{Voltage: 0.8 * V, Freq: 200 * MHz}

		fromPoint, err := m.PowerAt(point, 0.7)
		Expect(err).ToNot(HaveOccurred())

		direct, err := m.Power(0.8*V, 200*MHz, 0.7)
		Expect(err).ToNot(HaveOccurred())

		Expect(fromPoint).To(Equal(direct))
	})
})
