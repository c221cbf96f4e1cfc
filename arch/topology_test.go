package arch

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func mustBuildCache(id string) *Component {
	c, err := NewCache(id, CacheParams{
		SizeBytes:       32 * 1024,
		Associativity:   4,
		TagLatency:      1,
		DataLatency:     1,
		ResponseLatency: 1,
	})
	if err != nil {
		panic(err)
	}
	return c
}

func mustBuildMemCtrl(id string) *Component {
	c, err := NewMemoryController(id, MemControllerParams{
		CapacityBytes: 512 * 1024 * 1024,
		Protocol:      "DDR3_1600_8x8",
	})
	if err != nil {
		panic(err)
	}
	return c
}

var _ = Describe("Topology", func() {
	var (
		t       *Topology
		l1, l2  *Component
		memCtrl *Component
	)

	BeforeEach(func() {
		t = NewTopology("SoC")
		l1 = mustBuildCache("L1")
		l2 = mustBuildCache("L2")
		memCtrl = mustBuildMemCtrl("MemCtrl")

		Expect(t.AddComponent(l1)).To(Succeed())
		Expect(t.AddComponent(l2)).To(Succeed())
		Expect(t.AddComponent(memCtrl)).To(Succeed())
	})

	It("should reject a duplicate component id", func() {
		err := t.AddComponent(mustBuildCache("L1"))

		var dup *DuplicateIDError
		Expect(errors.As(err, &dup)).To(BeTrue())
		Expect(dup.ID).To(Equal("L1"))
		Expect(t.Components()).To(HaveLen(3))
	})

	It("should connect a mem-side port to a cpu-side port", func() {
		err := t.Connect(l1.Port("MemSide"), l2.Port("CPUSide"))

		Expect(err).ToNot(HaveOccurred())
		Expect(t.Edges()).To(HaveLen(1))
		Expect(t.Edges()[0].From).To(BeIdenticalTo(l1.Port("MemSide")))
		Expect(t.Edges()[0].To).To(BeIdenticalTo(l2.Port("CPUSide")))
	})

	It("should store edges mem-side first regardless of call order", func() {
		err := t.Connect(l2.Port("CPUSide"), l1.Port("MemSide"))

		Expect(err).ToNot(HaveOccurred())
		Expect(t.Edges()[0].From).To(BeIdenticalTo(l1.Port("MemSide")))
	})

	It("should reject connecting two mem-side ports", func() {
		err := t.Connect(l1.Port("MemSide"), l2.Port("MemSide"))

		var mismatch *PortTypeMismatchError
		Expect(errors.As(err, &mismatch)).To(BeTrue())
		Expect(t.Edges()).To(BeEmpty())
	})

	It("should reject connecting two cpu-side ports", func() {
		err := t.Connect(l1.Port("CPUSide"), l2.Port("CPUSide"))

		Expect(err).To(HaveOccurred())
		Expect(t.Edges()).To(BeEmpty())
	})

	It("should reject overflowing a single port", func() {
		Expect(t.Connect(l1.Port("MemSide"), l2.Port("CPUSide"))).
			To(Succeed())

		err := t.Connect(l1.Port("MemSide"), memCtrl.Port("CPUSide"))

		var full *PortFullError
		Expect(errors.As(err, &full)).To(BeTrue())
		Expect(full.Port).To(BeIdenticalTo(l1.Port("MemSide")))
		Expect(t.Edges()).To(HaveLen(1))
	})

	It("should reject a duplicate edge", func() {
		Expect(t.Connect(l2.Port("MemSide"), memCtrl.Port("CPUSide"))).
			To(Succeed())

		err := t.Connect(l2.Port("MemSide"), memCtrl.Port("CPUSide"))

		var full *PortFullError
		Expect(errors.As(err, &full)).To(BeTrue())
		Expect(t.Edges()).To(HaveLen(1))
	})

	It("should reject repeating an edge between vector ports", func() {
		bus, err := NewInterconnect("MemBus", InterconnectParams{
			WidthBytes: 8,
			Latency:    1,
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(t.AddComponent(bus)).To(Succeed())
		Expect(t.Connect(bus.Port("MemSide"), l2.Port("CPUSide"))).
			To(Succeed())

		err = t.Connect(bus.Port("MemSide"), l2.Port("CPUSide"))

		var dupEdge *DuplicateEdgeError
		Expect(errors.As(err, &dupEdge)).To(BeTrue())
		Expect(t.Edges()).To(HaveLen(1))
	})

	It("should reject ports of components outside the topology", func() {
		stray := mustBuildCache("Stray")

		err := t.Connect(stray.Port("MemSide"), l2.Port("CPUSide"))

		var notIn *NotInTopologyError
		Expect(errors.As(err, &notIn)).To(BeTrue())
		Expect(notIn.ID).To(Equal("Stray"))
	})

	It("should reject an edge that closes a cycle and commit nothing",
		func() {
			Expect(t.Connect(l1.Port("MemSide"), l2.Port("CPUSide"))).
				To(Succeed())

			err := t.Connect(l2.Port("MemSide"), l1.Port("CPUSide"))

			var cycle *CycleError
			Expect(errors.As(err, &cycle)).To(BeTrue())
			Expect(t.Edges()).To(HaveLen(1))
			Expect(l2.Port("MemSide").NumConn()).To(Equal(0))
			Expect(l1.Port("CPUSide").NumConn()).To(Equal(0))
		})

	It("should validate a fully connected topology", func() {
		Expect(t.Connect(l1.Port("MemSide"), l2.Port("CPUSide"))).
			To(Succeed())
		Expect(t.Connect(l2.Port("MemSide"), memCtrl.Port("CPUSide"))).
			To(Succeed())

		Expect(t.Validate()).To(Succeed())
	})

	It("should name the first disconnected component in insertion order",
		func() {
			Expect(t.Connect(l2.Port("MemSide"), memCtrl.Port("CPUSide"))).
				To(Succeed())

			err := t.Validate()

			var disconnected *DisconnectedError
			Expect(errors.As(err, &disconnected)).To(BeTrue())
			Expect(disconnected.ID).To(Equal("L1"))
		})

	It("should fail validation without a memory controller", func() {
		empty := NewTopology("Empty")
		Expect(empty.AddComponent(mustBuildCache("Lonely"))).To(Succeed())

		err := empty.Validate()

		var noMemCtrl *NoMemoryControllerError
		Expect(errors.As(err, &noMemCtrl)).To(BeTrue())
	})
})
