// Package simulation wires an engine with its external collaborators for a
// complete run: the optional SQLite recorder and the event logger.
package simulation

import (
	"github.com/jlippai/mm1sim/datarecording"
	"github.com/jlippai/mm1sim/sim"
)

// A Simulation bundles a single-run engine with the collaborators that
// consume its output.
type Simulation struct {
	id string

	engine       *sim.Engine
	dataRecorder datarecording.DataRecorder
	pathRecorder *datarecording.PathRecorder
}

// ID returns the run ID.
func (s *Simulation) ID() string {
	return s.id
}

// GetEngine returns the engine used in the simulation.
func (s *Simulation) GetEngine() *sim.Engine {
	return s.engine
}

// GetDataRecorder returns the data recorder used in the simulation, nil
// when recording is disabled.
func (s *Simulation) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// Run executes the simulation to completion and, when recording is enabled,
// writes the summary row.
func (s *Simulation) Run() (*sim.Result, error) {
	result, err := s.engine.Run()
	if err != nil {
		return nil, err
	}

	if s.pathRecorder != nil {
		s.pathRecorder.RecordSummary(result.Summary)
	}

	return result, nil
}

// Terminate terminates the simulation.
func (s *Simulation) Terminate() {
	if s.dataRecorder != nil {
		s.dataRecorder.Close()
	}
}
