package sim

import (
	gomock "go.uber.org/mock/gomock"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Feasibility rule", func() {
	It("should allow only arrivals at an empty queue", func() {
		Expect(FeasibleEvents(0)).To(Equal([]EventKind{EventArrival}))

		infeasible := InfeasibleEvents(0)
		Expect(infeasible).To(HaveKey(EventInit))
		Expect(infeasible).To(HaveKey(EventDeparture))
	})

	It("should allow arrivals and departures at a busy queue", func() {
		for _, q := range []int{1, 2, 17} {
			Expect(FeasibleEvents(q)).
				To(Equal([]EventKind{EventArrival, EventDeparture}))

			infeasible := InfeasibleEvents(q)
			Expect(infeasible).To(HaveKey(EventInit))
			Expect(infeasible).NotTo(HaveKey(EventDeparture))
		}
	})
})

var _ = Describe("Resolver", func() {
	var (
		mockCtrl *gomock.Controller
		src      *MockUniformSource
		resolver *Resolver
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		src = NewMockUniformSource(mockCtrl)

		rates, err := NewRateTable(1.0, 2.0)
		Expect(err).NotTo(HaveOccurred())

		resolver = NewResolver(NewLifetimeGenerator(rates, src))
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should subtract the fired lifetime from surviving clocks", func() {
		pending := NewClockSet()
		pending.Push(Clock{Lifetime: 5.0, Kind: EventArrival})

		fired := Clock{Lifetime: 2.0, Kind: EventDeparture}
		src.EXPECT().Float64().Return(0.5)

		next := resolver.Reconcile(pending, fired, 1)

		Expect(next.Len()).To(Equal(2))

		departure := next.Pop()
		Expect(departure.Kind).To(Equal(EventDeparture))
		Expect(float64(departure.Lifetime)).
			To(BeNumerically("~", 0.3466, 1e-4))

		arrival := next.Pop()
		Expect(arrival.Kind).To(Equal(EventArrival))
		Expect(float64(arrival.Lifetime)).To(BeNumerically("~", 3.0, 1e-9))
	})

	It("should drop clocks that became infeasible", func() {
		pending := NewClockSet()
		pending.Push(Clock{Lifetime: 5.0, Kind: EventArrival})
		pending.Push(Clock{Lifetime: 7.0, Kind: EventDeparture})

		fired := Clock{Lifetime: 1.0, Kind: EventDeparture}

		next := resolver.Reconcile(pending, fired, 0)

		Expect(next.Len()).To(Equal(1))

		arrival := next.Pop()
		Expect(arrival.Kind).To(Equal(EventArrival))
		Expect(float64(arrival.Lifetime)).To(BeNumerically("~", 4.0, 1e-9))
	})

	It("should draw fresh clocks for newly feasible kinds", func() {
		pending := NewClockSet()

		fired := Clock{Lifetime: 0, Kind: EventInit}
		src.EXPECT().Float64().Return(0.5)

		next := resolver.Reconcile(pending, fired, 0)

		Expect(next.Len()).To(Equal(1))
		Expect(next.Has(EventArrival)).To(BeTrue())
	})

	It("should panic when a residual lifetime goes negative", func() {
		pending := NewClockSet()
		pending.Push(Clock{Lifetime: 1.0, Kind: EventArrival})

		fired := Clock{Lifetime: 2.0, Kind: EventDeparture}

		Expect(func() {
			resolver.Reconcile(pending, fired, 1)
		}).To(Panic())
	})
})

var _ = Describe("LifetimeGenerator", func() {
	It("should panic when drawing for a kind without a rate", func() {
		mockCtrl := gomock.NewController(GinkgoT())
		defer mockCtrl.Finish()

		rates, err := NewRateTable(1.0, 2.0)
		Expect(err).NotTo(HaveOccurred())

		gen := NewLifetimeGenerator(rates, NewMockUniformSource(mockCtrl))

		Expect(func() { gen.Draw(EventInit) }).To(Panic())
	})
})
