package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slotforge/slotforge/internal/problem"
	"github.com/slotforge/slotforge/internal/timetable"
	"github.com/slotforge/slotforge/pkg/config"
	"github.com/slotforge/slotforge/pkg/observability"
)

var (
	runProblemID  string
	runIterations uint32
	runSeed       uint64
	runSaveResult bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the hill-climber against a saved problem",
	Long: `Load a previously saved problem, run the stochastic hill-climber
against it, and print the resulting penalty and schedule.

Example:
  slotforge run --problem weekly-standup --iterations 2000 --seed 42`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		iterations := runIterations
		if !cmd.Flags().Changed("iterations") {
			iterations = cfg.DefaultIterations
		}
		seed := runSeed
		if !cmd.Flags().Changed("seed") {
			seed = cfg.DefaultSeed
		}

		metrics := observability.NewInMemoryMetrics()

		repo, err := problem.OpenSQLiteRepository(cmd.Context(), cfg.SQLitePath, problem.BreakerConfig{
			MaxRequests:      cfg.BreakerMaxRequests,
			Interval:         cfg.BreakerInterval,
			Timeout:          cfg.BreakerTimeout,
			FailureThreshold: cfg.BreakerFailureThreshold,
		})
		if err != nil {
			return fmt.Errorf("open problem repository: %w", err)
		}
		repo.WithMetrics(metrics).WithLogger(logger)
		defer repo.Close()

		p, err := repo.LoadProblem(cmd.Context(), runProblemID)
		if err != nil {
			return fmt.Errorf("load problem %q: %w", runProblemID, err)
		}

		var store *timetable.ConstraintStore
		if seed == 0 {
			store = timetable.NewConstraintStore()
		} else {
			store = timetable.NewConstraintStoreWithSeed(seed)
		}
		for _, d := range p.Descriptors {
			store.Push(d)
		}

		timer := observability.StartTimer("climber.run").WithMetrics(metrics)
		climber := timetable.NewClimber(store).WithLogger(logger)
		result := climber.Run(int(iterations))
		timer.Stop()

		metrics.Counter(observability.MetricClimbIterations, int64(result.Iterations))
		metrics.Counter(observability.MetricClimbAcceptedMoves, int64(result.Accepted))
		metrics.Gauge(observability.MetricClimbBestPenalty, float64(result.Penalty))

		fmt.Printf("problem: %s\n", p.Name)
		fmt.Printf("penalty: %d\n", result.Penalty)
		fmt.Printf("accepted moves: %d / %d iterations\n", result.Accepted, result.Iterations)
		for _, d := range p.Descriptors {
			if slot, ok := result.Grid.SlotFor(d.ID); ok {
				fmt.Printf("  %-20s %s (duration %d)\n", d.Name, slot, d.Duration)
			} else {
				fmt.Printf("  %-20s unscheduled\n", d.Name)
			}
		}

		if runSaveResult {
			run := &problem.RunResult{
				ID:         uniqueRunID(),
				ProblemID:  p.ID,
				Seed:       seed,
				Iterations: result.Iterations,
				Accepted:   result.Accepted,
				Penalty:    result.Penalty,
			}
			if err := repo.SaveRun(cmd.Context(), run); err != nil {
				return fmt.Errorf("save run result: %w", err)
			}
		}

		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runProblemID, "problem", "", "id of the problem to run (required)")
	runCmd.Flags().Uint32Var(&runIterations, "iterations", 0, "hill-climber iteration budget (defaults to SLOTFORGE_ITERATIONS)")
	runCmd.Flags().Uint64Var(&runSeed, "seed", 0, "deterministic RNG seed; 0 derives a non-deterministic one (defaults to SLOTFORGE_SEED)")
	runCmd.Flags().BoolVar(&runSaveResult, "save", true, "persist the run result alongside the problem")
	_ = runCmd.MarkFlagRequired("problem")
}
