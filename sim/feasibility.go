package sim

import "log"

// The feasibility rule combines universal base sets with a per-queue-length
// override table. Arrivals and departures are feasible at every queue
// length, the init event never recurs, and a departure cannot fire from an
// empty queue.
var (
	baseFeasible   = []EventKind{EventArrival, EventDeparture}
	baseInfeasible = []EventKind{EventInit}

	infeasibleOverrides = map[int][]EventKind{
		0: {EventDeparture},
	}
)

// FeasibleEvents returns the event kinds allowed to fire at the given queue
// length, in a fixed order.
func FeasibleEvents(queueLength int) []EventKind {
	infeasible := InfeasibleEvents(queueLength)

	kinds := make([]EventKind, 0, len(baseFeasible))
	for _, kind := range baseFeasible {
		if !infeasible[kind] {
			kinds = append(kinds, kind)
		}
	}

	return kinds
}

// InfeasibleEvents returns the event kinds not allowed to fire at the given
// queue length.
func InfeasibleEvents(queueLength int) map[EventKind]bool {
	infeasible := make(map[EventKind]bool, len(baseInfeasible)+1)
	for _, kind := range baseInfeasible {
		infeasible[kind] = true
	}

	for _, kind := range infeasibleOverrides[queueLength] {
		infeasible[kind] = true
	}

	return infeasible
}

// A Resolver reconciles the pending-clock set with the feasibility rule
// after each transition. Clocks that survive a transition keep their
// unexpired residual lifetimes; the memoryless property of the exponential
// distribution makes the time-shifted residual distributionally identical
// to a fresh draw.
type Resolver struct {
	gen *LifetimeGenerator
}

// NewResolver creates a Resolver drawing replacement clocks from gen.
func NewResolver(gen *LifetimeGenerator) *Resolver {
	return &Resolver{gen: gen}
}

// Reconcile rebuilds the pending-clock set after the given clock fired and
// the queue reached queueLength. Surviving clocks have the fired lifetime
// subtracted from their own, clocks for now-infeasible kinds are dropped,
// and a fresh clock is drawn for every feasible kind left uncovered. The
// returned set holds exactly one clock per feasible kind.
func (r *Resolver) Reconcile(
	pending *ClockSet,
	fired Clock,
	queueLength int,
) *ClockSet {
	infeasible := InfeasibleEvents(queueLength)
	next := NewClockSet()

	for pending.Len() > 0 {
		c := pending.Pop()

		c.Lifetime -= fired.Lifetime
		if c.Lifetime < 0 {
			log.Panicf(
				"clock %s has residual lifetime %.10f after subtracting the fired lifetime, min-lifetime ordering is broken",
				c.Kind, c.Lifetime,
			)
		}

		if infeasible[c.Kind] {
			continue
		}

		next.Push(c)
	}

	for _, kind := range FeasibleEvents(queueLength) {
		if next.Has(kind) {
			continue
		}

		next.Push(r.gen.Draw(kind))
	}

	return next
}
