package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jlippai/mm1sim/sim"
	"github.com/jlippai/mm1sim/simulation"
)

var (
	flagLambda     float64
	flagMu         float64
	flagMode       string
	flagDuration   float64
	flagDepartures int
	flagSeed       int64
	flagRecord     bool
	flagOutput     string
	flagVerbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "mm1sim",
	Short: "mm1sim generates sample paths of an M/M/1 queueing system " +
		"and reports time-average statistics.",
	Long: `mm1sim simulates a single-server queue with exponential arrival ` +
		`and service processes by firing the pending event clock with the ` +
		`smallest residual lifetime. The run stops after a fixed amount of ` +
		`simulated time or a fixed number of departures, and always reports ` +
		`the average queue length and the average system time. With ` +
		`--record, the full sample path is written to a SQLite database ` +
		`for downstream plotting.`,
	SilenceUsage: true,
	RunE:         runSimulation,
}

func init() {
	rootCmd.Flags().Float64Var(&flagLambda, "lambda", 1.0,
		"arrival rate")
	rootCmd.Flags().Float64Var(&flagMu, "mu", 2.0,
		"service rate")
	rootCmd.Flags().StringVar(&flagMode, "mode", "time",
		"stopping rule, either \"time\" or \"departures\"")
	rootCmd.Flags().Float64Var(&flagDuration, "duration", 100000,
		"simulated time to run for, used with --mode time")
	rootCmd.Flags().IntVar(&flagDepartures, "departures", 5000,
		"number of departures to run for, used with --mode departures")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0,
		"random seed, 0 draws one from the wall clock")
	rootCmd.Flags().BoolVar(&flagRecord, "record", false,
		"record the sample path into a SQLite database")
	rootCmd.Flags().StringVar(&flagOutput, "output", "",
		"output file name for --record, without the .sqlite3 suffix")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false,
		"log every fired event")
}

func runSimulation(cmd *cobra.Command, args []string) error {
	builder := simulation.MakeBuilder().
		WithArrivalRate(flagLambda).
		WithServiceRate(flagMu)

	switch flagMode {
	case "time":
		builder = builder.WithStopAfterTime(sim.VTimeInSec(flagDuration))
	case "departures":
		builder = builder.WithStopAfterDepartures(flagDepartures)
	default:
		return fmt.Errorf("unknown mode %q, want \"time\" or \"departures\"",
			flagMode)
	}

	if flagSeed != 0 {
		builder = builder.WithSeed(flagSeed)
	}

	if flagRecord {
		builder = builder.WithRecording()
		if flagOutput != "" {
			builder = builder.WithOutputFileName(flagOutput)
		}
	}

	if flagVerbose {
		builder = builder.WithEventLogging()
	}

	s, err := builder.Build()
	if err != nil {
		return err
	}
	defer s.Terminate()

	result, err := s.Run()
	if err != nil {
		return err
	}

	summary := result.Summary
	fmt.Printf("lambda = %.1f,    mu = %.1f,    rho = %.4f\n",
		summary.Lambda, summary.Mu, summary.Rho)
	fmt.Printf("Avg queue Avg sys time\n%.6f, %.6f\n",
		summary.AvgQueueLength, summary.AvgSystemTime)

	return nil
}
