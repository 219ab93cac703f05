package sampling

import (
	"errors"

	"github.com/griddyn/griddyn/timing"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("Recorder", func() {
	var (
		mockCtrl *gomock.Controller
		sink     *MockSink
		r        *Recorder
		src      *fakeScalar
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		sink = NewMockSink(mockCtrl)
		r = NewRecorder("rec1")
		src = newFakeScalar("voltage", 1, &bus{name: "bus1"})
		r.Add(src, Unassigned)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should record one row per trigger", func() {
		for i := 0; i < 3; i++ {
			src.value = float64(i)
			r.Trigger(timing.Sec(float64(i)))
		}

		series := r.Series()
		Expect(series.Len()).To(Equal(3))
		Expect(series.Time(2)).To(Equal(timing.Sec(2)))
		Expect(series.Row(0)).To(Equal([]float64{0}))
		Expect(series.Row(2)).To(Equal([]float64{2}))
	})

	It("should keep rows without a sink", func() {
		r.Trigger(timing.TimeZero)

		Expect(r.Flush()).To(Succeed())
		Expect(r.Series().Len()).To(Equal(1))
	})

	It("should flush only new rows", func() {
		r.SetSink(sink)
		Expect(r.SetString("file", "out")).To(Succeed())

		r.Trigger(timing.Sec(0))
		r.Trigger(timing.Sec(1))
		sink.EXPECT().
			Write("out", []string{"voltage"}, gomock.Any()).
			DoAndReturn(func(_ string, _ []string, rows *TimeSeries) error {
				Expect(rows.Len()).To(Equal(2))
				return nil
			})
		Expect(r.Flush()).To(Succeed())

		r.Trigger(timing.Sec(2))
		sink.EXPECT().
			Write("out", []string{"voltage"}, gomock.Any()).
			DoAndReturn(func(_ string, _ []string, rows *TimeSeries) error {
				Expect(rows.Len()).To(Equal(1))
				Expect(rows.Time(0)).To(Equal(timing.Sec(2)))
				return nil
			})
		Expect(r.Flush()).To(Succeed())

		Expect(r.Flush()).To(Succeed())
	})

	It("should write under the collector name without a sink name", func() {
		r.SetSink(sink)
		r.Trigger(timing.TimeZero)
		sink.EXPECT().Write("rec1", gomock.Any(), gomock.Any())

		Expect(r.Flush()).To(Succeed())
	})

	It("should retry rows after a failed flush", func() {
		r.SetSink(sink)
		r.Trigger(timing.TimeZero)

		sink.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("disk full"))
		Expect(r.Flush()).NotTo(Succeed())

		sink.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ string, _ []string, rows *TimeSeries) error {
				Expect(rows.Len()).To(Equal(1))
				return nil
			})
		Expect(r.Flush()).To(Succeed())
	})

	It("should autosave", func() {
		r.SetSink(sink)
		Expect(r.SetString("autosave", "2")).To(Succeed())
		Expect(r.Autosave()).To(Equal(2))

		sink.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).Times(2)
		for i := 0; i < 5; i++ {
			r.Trigger(timing.Sec(float64(i)))
		}
	})

	It("should validate its own parameters", func() {
		Expect(r.Set("autosave", -1)).To(MatchError(ErrInvalidParameter))
		Expect(r.SetString("sink", "#none")).To(Succeed())
		Expect(r.SinkName()).To(BeEmpty())
		Expect(r.SetString("sink", "bus1.csv")).To(Succeed())
		Expect(r.SinkName()).To(Equal("bus1.csv"))
		Expect(r.Set("period", 2)).To(Succeed())
		Expect(r.Period()).To(Equal(timing.Sec(2)))
	})

	It("should clone its configuration but not its rows", func() {
		r.SetSink(sink)
		Expect(r.Set("autosave", 10)).To(Succeed())
		Expect(r.SetString("file", "out")).To(Succeed())
		r.Trigger(timing.TimeZero)

		c := r.Clone().(*Recorder)

		Expect(c.Name()).To(Equal("rec1"))
		Expect(c.Autosave()).To(Equal(10))
		Expect(c.SinkName()).To(Equal("out"))
		Expect(c.Series().Len()).To(Equal(0))
		Expect(*src.clones).To(Equal(1))
	})
})
