package sim

import "fmt"

// A StopCondition decides when a run terminates. It is evaluated after
// every fired clock, once the transition it caused is fully applied.
type StopCondition interface {
	Done(now VTimeInSec, departures int) bool
}

// StopAfterTime stops the run at the first event whose cumulative time
// reaches or exceeds limit.
func StopAfterTime(limit VTimeInSec) (StopCondition, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("time bound must be positive, got %g", float64(limit))
	}

	return timeBound{limit: limit}, nil
}

// StopAfterDepartures stops the run at the first event that brings the
// cumulative departure count to limit.
func StopAfterDepartures(limit int) (StopCondition, error) {
	if limit < 1 {
		return nil, fmt.Errorf("departure bound must be at least 1, got %d", limit)
	}

	return departureBound{limit: limit}, nil
}

type timeBound struct {
	limit VTimeInSec
}

func (b timeBound) Done(now VTimeInSec, departures int) bool {
	return now >= b.limit
}

type departureBound struct {
	limit int
}

func (b departureBound) Done(now VTimeInSec, departures int) bool {
	return departures >= b.limit
}
