package sim

import (
	"log"
	"math"
	"math/rand"
)

// A UniformSource provides uniform(0,1) variates. The simulator consumes
// exactly one variate per newly created clock, in a fixed order relative to
// the event loop, so two runs over the same source sequence produce
// identical sample paths.
type UniformSource interface {
	Float64() float64
}

// NewRandSource returns a UniformSource backed by math/rand with the given
// seed.
func NewRandSource(seed int64) UniformSource {
	return rand.New(rand.NewSource(seed))
}

// A LifetimeGenerator draws fresh exponential clock lifetimes via the
// inverse-CDF transform, lifetime = -ln(1-U)/rate.
type LifetimeGenerator struct {
	rates RateTable
	src   UniformSource
}

// NewLifetimeGenerator creates a LifetimeGenerator drawing from src with
// the rates in the table.
func NewLifetimeGenerator(rates RateTable, src UniformSource) *LifetimeGenerator {
	return &LifetimeGenerator{rates: rates, src: src}
}

// Draw creates a new clock for the given event kind. The kind must carry a
// positive rate; asking for a lifetime of a rate-less kind is a defect in
// the caller.
func (g *LifetimeGenerator) Draw(kind EventKind) Clock {
	rate := g.rates.Rate(kind)
	if rate <= 0 {
		log.Panicf("drawing a lifetime for %s, which has no positive rate", kind)
	}

	u := g.src.Float64()

	return Clock{
		Lifetime: VTimeInSec(-math.Log(1-u) / rate),
		Kind:     kind,
	}
}
