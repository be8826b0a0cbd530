package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ClockSet", func() {
	var set *ClockSet

	BeforeEach(func() {
		set = NewClockSet()
	})

	It("should pop clocks in lifetime order", func() {
		set.Push(Clock{Lifetime: 0.7, Kind: EventArrival})
		set.Push(Clock{Lifetime: 0.3, Kind: EventDeparture})
		set.Push(Clock{Lifetime: 0.0, Kind: EventInit})

		Expect(set.Pop().Kind).To(Equal(EventInit))
		Expect(set.Pop().Kind).To(Equal(EventDeparture))
		Expect(set.Pop().Kind).To(Equal(EventArrival))
		Expect(set.Len()).To(Equal(0))
	})

	It("should peek without removing", func() {
		set.Push(Clock{Lifetime: 0.7, Kind: EventArrival})
		set.Push(Clock{Lifetime: 0.3, Kind: EventDeparture})

		Expect(set.Peek().Kind).To(Equal(EventDeparture))
		Expect(set.Len()).To(Equal(2))
	})

	It("should track which kinds are present", func() {
		set.Push(Clock{Lifetime: 0.7, Kind: EventArrival})

		Expect(set.Has(EventArrival)).To(BeTrue())
		Expect(set.Has(EventDeparture)).To(BeFalse())

		set.Pop()

		Expect(set.Has(EventArrival)).To(BeFalse())
	})

	It("should panic on a second clock for the same kind", func() {
		set.Push(Clock{Lifetime: 0.7, Kind: EventArrival})

		Expect(func() {
			set.Push(Clock{Lifetime: 0.2, Kind: EventArrival})
		}).To(Panic())
	})
})
