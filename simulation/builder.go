package simulation

import (
	"errors"
	"log"
	"time"

	"github.com/rs/xid"

	"github.com/jlippai/mm1sim/datarecording"
	"github.com/jlippai/mm1sim/sim"
)

// Builder can be used to build a simulation.
type Builder struct {
	lambda float64
	mu     float64
	seed   int64

	stopTime       sim.VTimeInSec
	stopDepartures int

	recordingOn    bool
	outputFileName string
	eventLogging   bool
}

// MakeBuilder creates a new builder.
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

// WithSeed fixes the random seed, making the run reproducible. Without it
// every run draws a fresh seed from the wall clock.
func (b Builder) WithSeed(seed int64) Builder {
	b.seed = seed
	return b
}

// WithStopAfterTime stops the run at the first event at or past the given
// simulated time.
func (b Builder) WithStopAfterTime(limit sim.VTimeInSec) Builder {
	b.stopTime = limit
	return b
}

// WithStopAfterDepartures stops the run once the given number of departures
// completed.
func (b Builder) WithStopAfterDepartures(limit int) Builder {
	b.stopDepartures = limit
	return b
}

// WithRecording enables recording the sample path into a SQLite database.
func (b Builder) WithRecording() Builder {
	b.recordingOn = true
	return b
}

// WithOutputFileName sets the custom output file name for the data
// recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

// WithEventLogging enables printing every fired clock through the standard
// logger.
func (b Builder) WithEventLogging() Builder {
	b.eventLogging = true
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.recordingOn && b.outputFileName != "" {
		panic("output file name cannot be set when recording is disabled")
	}
}

func (b Builder) stopCondition() (sim.StopCondition, error) {
	switch {
	case b.stopTime > 0 && b.stopDepartures > 0:
		return nil, errors.New(
			"only one of the time and departure bounds can be set")
	case b.stopTime > 0:
		return sim.StopAfterTime(b.stopTime)
	case b.stopDepartures > 0:
		return sim.StopAfterDepartures(b.stopDepartures)
	default:
		return nil, errors.New(
			"either a time bound or a departure bound is required")
	}
}

// Build builds the simulation.
func (b Builder) Build() (*Simulation, error) {
	b.parametersMustBeValid()

	stop, err := b.stopCondition()
	if err != nil {
		return nil, err
	}

	seed := b.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Simulation{
		id: xid.New().String(),
	}

	s.engine, err = sim.MakeBuilder().
		WithArrivalRate(b.lambda).
		WithServiceRate(b.mu).
		WithStopCondition(stop).
		WithUniformSource(sim.NewRandSource(seed)).
		Build()
	if err != nil {
		return nil, err
	}

	if b.recordingOn {
		outputPath := b.outputFileName
		if outputPath == "" {
			outputPath = "mm1_" + s.id
		}

		s.dataRecorder = datarecording.New(outputPath)
		s.pathRecorder = datarecording.NewPathRecorder(s.dataRecorder)
		s.engine.AcceptHook(s.pathRecorder)
	}

	if b.eventLogging {
		s.engine.AcceptHook(sim.NewEventLogger(log.Default()))
	}

	return s, nil
}
