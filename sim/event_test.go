package sim

import (
	"math/rand"

	"github.com/griddyn/griddyn/timing"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type splitEvent struct {
	EventBase
}

type splitHandler struct {
	total  int
	last   timing.VTime
	engine Engine
	rng    *rand.Rand
}

func (h *splitHandler) Handle(evt Event) error {
	Expect(evt.Time().Before(h.last)).To(BeFalse())
	h.last = evt.Time()
	h.total++

	for i := 0; i < 2; i++ {
		delay := timing.Units(500+h.rng.Int63n(2000), timing.Millisecond)
		next := evt.Time().Add(delay)
		if next.Before(timing.Sec(10)) {
			h.engine.Schedule(splitEvent{MakeEventBase(next, h)})
		}
	}

	return nil
}

var _ = Describe("Event", func() {
	It("should carry its time and handler", func() {
		h := &splitHandler{}
		evt := NewEventBase(timing.Sec(2), h)
		evt.MakeSecondary()

		Expect(evt.Time()).To(Equal(timing.Sec(2)))
		Expect(evt.Handler()).To(BeIdenticalTo(h))
		Expect(evt.IsSecondary()).To(BeTrue())
		Expect(evt.ID).NotTo(BeEmpty())
	})

	It("should run a splitting event tree in time order", func() {
		engine := NewSerialEngine()
		h := &splitHandler{
			engine: engine,
			last:   timing.NegTime,
			rng:    rand.New(rand.NewSource(1)),
		}

		engine.Schedule(splitEvent{MakeEventBase(timing.TimeZero, h)})
		Expect(engine.Run()).To(Succeed())

		Expect(h.total).To(BeNumerically(">", 1))
		Expect(h.last.Before(timing.Sec(10))).To(BeTrue())
	})
})
