package sim

import "errors"

// Statistics computation fails explicitly on degenerate runs instead of
// dividing into infinity or NaN.
var (
	ErrZeroElapsedTime = errors.New("sample path spans zero elapsed time")
	ErrNoArrivals      = errors.New("sample path contains no arrivals")
)

// A Sample is one recorded point of the trajectory: the cumulative time at
// which an event fired and the queue length it left behind.
type Sample struct {
	Time        VTimeInSec
	QueueLength int
	Kind        EventKind
}

// A SamplePath is the ordered, time-increasing trajectory of a run: one
// (time, queue length) pair per fired event, plus the subsequences of times
// at which arrivals and departures occurred. It accumulates monotonically
// and is never mutated after append.
type SamplePath struct {
	Times        []VTimeInSec
	QueueLengths []int
	Arrivals     []VTimeInSec
	Departures   []VTimeInSec
}

func (p *SamplePath) record(s Sample) {
	p.Times = append(p.Times, s.Time)
	p.QueueLengths = append(p.QueueLengths, s.QueueLength)

	switch s.Kind {
	case EventArrival:
		p.Arrivals = append(p.Arrivals, s.Time)
	case EventDeparture:
		p.Departures = append(p.Departures, s.Time)
	}
}

// Len returns the number of recorded samples.
func (p *SamplePath) Len() int {
	return len(p.Times)
}

// area returns the time-weighted area under the queue-length curve. The
// last recorded queue length contributes nothing, as no time interval
// follows it yet.
func (p *SamplePath) area() float64 {
	var u float64
	for i := 0; i+1 < len(p.Times); i++ {
		u += float64(p.QueueLengths[i]) * float64(p.Times[i+1]-p.Times[i])
	}

	return u
}

// A Summary holds the scalar statistics of a completed run.
type Summary struct {
	Lambda float64
	Mu     float64
	Rho    float64

	// AvgQueueLength is the time average of the queue length over the
	// realized sample path.
	AvgQueueLength float64

	// AvgSystemTime estimates the mean time a customer spends in the
	// system by dividing the time-weighted queue-length area by the number
	// of observed arrivals (Little's Law applied to the realized path, not
	// a per-customer sojourn average).
	AvgSystemTime float64

	Departures int
}

// Summarize computes the summary statistics for a completed sample path.
func Summarize(path *SamplePath, rates RateTable) (Summary, error) {
	n := path.Len()
	if n == 0 || path.Times[n-1] <= 0 {
		return Summary{}, ErrZeroElapsedTime
	}

	if len(path.Arrivals) == 0 {
		return Summary{}, ErrNoArrivals
	}

	u := path.area()

	return Summary{
		Lambda:         rates.ArrivalRate(),
		Mu:             rates.ServiceRate(),
		Rho:            rates.Utilization(),
		AvgQueueLength: u / float64(path.Times[n-1]),
		AvgSystemTime:  u / float64(len(path.Arrivals)),
		Departures:     len(path.Departures),
	}, nil
}
