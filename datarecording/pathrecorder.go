package datarecording

import (
	"github.com/jlippai/mm1sim/sim"
)

// SampleEntry is one row of the recorded sample path.
type SampleEntry struct {
	Kind        string
	Time        float64
	QueueLength int
}

// ArrivalEntry is one row of the arrival-time subsequence.
type ArrivalEntry struct {
	Time float64
}

// DepartureEntry is one row of the departure-time subsequence.
type DepartureEntry struct {
	Time float64
}

// SummaryEntry is the single row of run-level statistics.
type SummaryEntry struct {
	Lambda         float64
	Mu             float64
	Rho            float64
	AvgQueueLength float64
	AvgSystemTime  float64
	Departures     int
}

// A PathRecorder is a hook that streams a run's trajectory into a
// DataRecorder as it unfolds.
type PathRecorder struct {
	recorder DataRecorder
}

// NewPathRecorder creates a PathRecorder and its tables.
func NewPathRecorder(recorder DataRecorder) *PathRecorder {
	recorder.CreateTable("sample_path", SampleEntry{})
	recorder.CreateTable("arrivals", ArrivalEntry{})
	recorder.CreateTable("departures", DepartureEntry{})
	recorder.CreateTable("summary", SummaryEntry{})

	return &PathRecorder{recorder: recorder}
}

// Func records the sample produced by each fired clock.
func (r *PathRecorder) Func(ctx sim.HookCtx) {
	if ctx.Pos != sim.HookPosAfterClock {
		return
	}

	sample, ok := ctx.Detail.(sim.Sample)
	if !ok {
		return
	}

	r.recorder.InsertData("sample_path", SampleEntry{
		Kind:        sample.Kind.String(),
		Time:        float64(sample.Time),
		QueueLength: sample.QueueLength,
	})

	switch sample.Kind {
	case sim.EventArrival:
		r.recorder.InsertData("arrivals", ArrivalEntry{
			Time: float64(sample.Time),
		})
	case sim.EventDeparture:
		r.recorder.InsertData("departures", DepartureEntry{
			Time: float64(sample.Time),
		})
	}
}

// RecordSummary writes the run statistics and flushes the recorder.
func (r *PathRecorder) RecordSummary(summary sim.Summary) {
	r.recorder.InsertData("summary", SummaryEntry{
		Lambda:         summary.Lambda,
		Mu:             summary.Mu,
		Rho:            summary.Rho,
		AvgQueueLength: summary.AvgQueueLength,
		AvgSystemTime:  summary.AvgSystemTime,
		Departures:     summary.Departures,
	})

	r.recorder.Flush()
}
