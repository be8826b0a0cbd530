package sim

import (
	"errors"
	"log"
)

type engineState int

const (
	engineRunning engineState = iota
	engineStopped
)

// A Result bundles everything a completed run produces: the full sample
// path and the scalar summary statistics.
type Result struct {
	Path    *SamplePath
	Summary Summary
}

// An Engine owns the simulated time and queue-length state and drives the
// run by repeatedly firing the pending clock with the smallest residual
// lifetime. An Engine runs a single trajectory and cannot be reused.
type Engine struct {
	HookableBase

	rates    RateTable
	resolver *Resolver
	stop     StopCondition

	state       engineState
	now         VTimeInSec
	queueLength int
	departures  int
	pending     *ClockSet
	path        *SamplePath
}

// CurrentTime returns the cumulative time of the most recently fired clock.
func (e *Engine) CurrentTime() VTimeInSec {
	return e.now
}

// QueueLength returns the current queue length.
func (e *Engine) QueueLength() int {
	return e.queueLength
}

// Run fires clocks until the stop condition is met, then summarizes the
// accumulated sample path. Each event is processed to completion before the
// next is selected.
func (e *Engine) Run() (*Result, error) {
	if e.state != engineRunning {
		return nil, errors.New("engine has already run")
	}

	for e.state == engineRunning {
		e.step()
	}

	summary, err := Summarize(e.path, e.rates)
	if err != nil {
		return nil, err
	}

	return &Result{Path: e.path, Summary: summary}, nil
}

func (e *Engine) step() {
	fired := e.pending.Pop()
	if fired.Lifetime < 0 {
		log.Panicf("fired clock %s has negative lifetime %.10f",
			fired.Kind, fired.Lifetime)
	}

	hookCtx := HookCtx{
		Domain: e,
		Pos:    HookPosBeforeClock,
		Item:   fired,
	}
	e.InvokeHook(hookCtx)

	e.queueLength += fired.Kind.queueDelta()
	if e.queueLength < 0 {
		log.Panicf("queue length went negative after %s", fired.Kind)
	}

	e.now += fired.Lifetime
	if fired.Kind == EventDeparture {
		e.departures++
	}

	sample := Sample{
		Time:        e.now,
		QueueLength: e.queueLength,
		Kind:        fired.Kind,
	}
	e.path.record(sample)

	e.pending = e.resolver.Reconcile(e.pending, fired, e.queueLength)
	e.mustHoldFeasibilityInvariant()

	hookCtx.Pos = HookPosAfterClock
	hookCtx.Detail = sample
	e.InvokeHook(hookCtx)

	if e.stop.Done(e.now, e.departures) {
		e.state = engineStopped
	}
}

// mustHoldFeasibilityInvariant checks that the pending set holds exactly
// one clock per feasible kind. A mismatch is a defect in the resolver and
// terminates the run.
func (e *Engine) mustHoldFeasibilityInvariant() {
	feasible := FeasibleEvents(e.queueLength)

	if e.pending.Len() != len(feasible) {
		log.Panicf(
			"pending set holds %d clocks, want %d at queue length %d",
			e.pending.Len(), len(feasible), e.queueLength,
		)
	}

	for _, kind := range feasible {
		if !e.pending.Has(kind) {
			log.Panicf("pending set is missing a clock for feasible %s", kind)
		}
	}
}

// A Builder can build engines.
type Builder struct {
	lambda float64
	mu     float64
	stop   StopCondition
	src    UniformSource
}

// MakeBuilder creates a Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		lambda: 1.0,
		mu:     2.0,
	}
}

// WithArrivalRate sets the arrival rate lambda.
func (b Builder) WithArrivalRate(lambda float64) Builder {
	b.lambda = lambda
	return b
}

// WithServiceRate sets the service rate mu.
func (b Builder) WithServiceRate(mu float64) Builder {
	b.mu = mu
	return b
}

// WithStopCondition sets the rule that terminates the run.
func (b Builder) WithStopCondition(stop StopCondition) Builder {
	b.stop = stop
	return b
}

// WithUniformSource sets the uniform(0,1) source that clock lifetimes are
// drawn from.
func (b Builder) WithUniformSource(src UniformSource) Builder {
	b.src = src
	return b
}

// Build validates the configuration and creates an Engine. The queue starts
// empty and the pending set holds only the synthetic init clock with
// lifetime zero, so the first fired event records the time-zero sample.
func (b Builder) Build() (*Engine, error) {
	rates, err := NewRateTable(b.lambda, b.mu)
	if err != nil {
		return nil, err
	}

	if b.stop == nil {
		return nil, errors.New("engine requires a stop condition")
	}

	if b.src == nil {
		return nil, errors.New("engine requires a uniform source")
	}

	e := &Engine{
		rates:    rates,
		resolver: NewResolver(NewLifetimeGenerator(rates, b.src)),
		stop:     b.stop,
		pending:  NewClockSet(),
		path:     &SamplePath{},
	}
	e.pending.Push(Clock{Lifetime: 0, Kind: EventInit})

	return e, nil
}
