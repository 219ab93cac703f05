package sim

import (
	"math/rand"

	"github.com/griddyn/griddyn/timing"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("EventQueueImpl", func() {
	var (
		mockCtrl *gomock.Controller
		queue    *EventQueueImpl
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		queue = NewEventQueue()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should pop in order", func() {
		numEvents := 100
		for i := 0; i < numEvents; i++ {
			event := NewMockEvent(mockCtrl)
			event.EXPECT().
				Time().
				Return(timing.Units(rand.Int63n(1_000_000), timing.Microsecond)).
				AnyTimes()
			queue.Push(event)
		}

		now := timing.NegTime
		for i := 0; i < numEvents; i++ {
			event := queue.Pop()
			Expect(event.Time().Before(now)).To(BeFalse())
			now = event.Time()
		}
	})

	It("should keep the push order of same-time events", func() {
		events := make([]*MockEvent, 5)
		for i := range events {
			events[i] = NewMockEvent(mockCtrl)
			events[i].EXPECT().Time().Return(timing.Sec(2)).AnyTimes()
			queue.Push(events[i])
		}

		Expect(queue.Len()).To(Equal(5))
		Expect(queue.Peek()).To(BeIdenticalTo(events[0]))
		for i := range events {
			Expect(queue.Pop()).To(BeIdenticalTo(events[i]))
		}
		Expect(queue.Len()).To(Equal(0))
	})
})
