package sim

import (
	"container/heap"
	"log"
)

// clockHeap orders clocks by residual lifetime.
type clockHeap []Clock

// Len returns the number of clocks in the heap.
func (h clockHeap) Len() int {
	return len(h)
}

// Less returns true if the i-th clock expires before the j-th clock.
func (h clockHeap) Less(i, j int) bool {
	return h[i].Lifetime < h[j].Lifetime
}

// Swap changes the position of two clocks in the heap.
func (h clockHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// Push adds a clock to the heap.
func (h *clockHeap) Push(x interface{}) {
	clock := x.(Clock)
	*h = append(*h, clock)
}

// Pop removes and returns the next clock to expire.
func (h *clockHeap) Pop() interface{} {
	old := *h
	n := len(old)
	clock := old[n-1]
	*h = old[0 : n-1]
	return clock
}

// A ClockSet is the collection of all clocks currently running, ordered by
// residual lifetime. It holds at most one clock per event kind; a second
// clock for the same kind indicates a broken invariant and is fatal.
type ClockSet struct {
	clocks clockHeap
	kinds  map[EventKind]bool
}

// NewClockSet creates an empty ClockSet.
func NewClockSet() *ClockSet {
	s := new(ClockSet)
	s.clocks = make(clockHeap, 0, 2)
	s.kinds = make(map[EventKind]bool)
	heap.Init(&s.clocks)

	return s
}

// Push adds a clock to the set.
func (s *ClockSet) Push(c Clock) {
	if s.kinds[c.Kind] {
		log.Panicf("clock set already holds a clock for %s", c.Kind)
	}

	s.kinds[c.Kind] = true
	heap.Push(&s.clocks, c)
}

// Pop removes and returns the clock with the smallest residual lifetime.
func (s *ClockSet) Pop() Clock {
	c := heap.Pop(&s.clocks).(Clock)
	delete(s.kinds, c.Kind)

	return c
}

// Peek returns the clock with the smallest residual lifetime without
// removing it.
func (s *ClockSet) Peek() Clock {
	return s.clocks[0]
}

// Len returns the number of clocks in the set.
func (s *ClockSet) Len() int {
	return s.clocks.Len()
}

// Has reports whether the set holds a clock for the given kind.
func (s *ClockSet) Has(kind EventKind) bool {
	return s.kinds[kind]
}
