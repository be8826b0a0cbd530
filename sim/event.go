package sim

import "fmt"

// EventKind identifies the type of a state-changing event. The alphabet is
// fixed: arrivals, departures, and a synthetic init event that fires exactly
// once to seed the clock set at time zero.
type EventKind int

// The event alphabet.
const (
	EventInit EventKind = iota
	EventArrival
	EventDeparture
)

func (k EventKind) String() string {
	switch k {
	case EventInit:
		return "init"
	case EventArrival:
		return "arrival"
	case EventDeparture:
		return "departure"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// queueDelta returns the change the event applies to the queue length.
func (k EventKind) queueDelta() int {
	switch k {
	case EventArrival:
		return 1
	case EventDeparture:
		return -1
	default:
		return 0
	}
}

// A Clock is a scheduled future event together with its remaining
// (residual) exponential lifetime. Lifetimes are measured in the same unit
// as virtual time and are subtracted down as the simulation advances.
type Clock struct {
	Lifetime VTimeInSec
	Kind     EventKind
}

// A RateTable maps the event alphabet to the rate parameters of the
// exponential lifetime distributions.
type RateTable struct {
	lambda float64
	mu     float64
}

// NewRateTable validates and stores the arrival rate lambda and the service
// rate mu. Non-positive rates are configuration errors.
func NewRateTable(lambda, mu float64) (RateTable, error) {
	if lambda <= 0 {
		return RateTable{}, fmt.Errorf("arrival rate must be positive, got %g", lambda)
	}

	if mu <= 0 {
		return RateTable{}, fmt.Errorf("service rate must be positive, got %g", mu)
	}

	return RateTable{lambda: lambda, mu: mu}, nil
}

// Rate returns the rate parameter for the given event kind. Kinds without
// an exponential lifetime (such as init) have rate 0.
func (t RateTable) Rate(kind EventKind) float64 {
	switch kind {
	case EventArrival:
		return t.lambda
	case EventDeparture:
		return t.mu
	default:
		return 0
	}
}

// ArrivalRate returns lambda.
func (t RateTable) ArrivalRate() float64 {
	return t.lambda
}

// ServiceRate returns mu.
func (t RateTable) ServiceRate() float64 {
	return t.mu
}

// Utilization returns rho = lambda/mu, derived from the configured rates
// rather than from a simulation run.
func (t RateTable) Utilization() float64 {
	return t.lambda / t.mu
}
