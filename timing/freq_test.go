package timing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Freq", func() {
	It("should get period", func() {
		var f = 1 * GHz
		Expect(f.Period()).To(Equal(Units(1, Nanosecond)))
	})

	It("should panic on a zero frequency", func() {
		Expect(func() { Freq(0).Period() }).To(Panic())
	})

	It("should panic if the period is below the resolution", func() {
		Expect(func() { (3 * GHz).Period() }).To(Panic())
	})

	It("should get this tick", func() {
		var f = 1 * Hz
		Expect(f.ThisTick(Sec(1))).To(Equal(Sec(1)))
		Expect(f.ThisTick(Sec(1.2))).To(Equal(Sec(2)))
	})

	It("should get the next tick", func() {
		var f = 1 * GHz
		Expect(f.NextTick(Sec(102.000000001))).To(Equal(Sec(102.000000002)))
	})

	It("should get the next tick 2", func() {
		var f = 1 * GHz
		Expect(f.NextTick(Sec(0.000000031))).To(Equal(Sec(0.000000032)))
	})

	It("should get the next tick 3", func() {
		var f = 1 * GHz
		Expect(f.NextTick(Sec(16))).To(Equal(Sec(16.000000001)))
	})

	It("should get the next tick, if currTime is not on a tick", func() {
		var f = 1 * MHz
		Expect(f.NextTick(Sec(102.0000011))).To(Equal(Sec(102.000002)))
	})

	It("should get the next tick of a negative time", func() {
		var f = 1 * Hz
		Expect(f.NextTick(Sec(-1.5))).To(Equal(Sec(-1)))
	})

	It("should get the n cycles later", func() {
		var f = 1 * GHz
		Expect(f.NCyclesLater(12, Sec(102.000000001))).
			To(Equal(Sec(102.000000013)))
	})

	It("should get the n cycles later, if current time is not on a tick", func() {
		var f = 1 * MHz
		Expect(f.NCyclesLater(12, Sec(102.0000011))).
			To(Equal(Sec(102.000014)))
	})

	It("should get the no-earlier-than time, on tick", func() {
		var f = 1 * GHz
		Expect(f.NoEarlierThan(Sec(102))).To(Equal(Sec(102)))
	})

	It("should get the no-earlier-than time, off tick", func() {
		var f = 1 * MHz
		Expect(f.NoEarlierThan(Sec(102.0000011))).To(Equal(Sec(102.000002)))
	})

	It("should get the half tick", func() {
		var f = 1 * Hz
		Expect(f.HalfTick(Sec(0.3))).To(Equal(Sec(1.5)))
	})

	It("should count cycles", func() {
		var f = 1 * GHz
		Expect(f.Cycle(Sec(1e-6))).To(Equal(uint64(1000)))
		Expect(f.Cycle(NegTime)).To(Equal(uint64(0)))
	})

	It("should keep sentinels", func() {
		var f = 1 * KHz
		Expect(f.ThisTick(MaxTime)).To(Equal(MaxTime))
		Expect(f.NextTick(NegTime)).To(Equal(NegTime))
	})
})
