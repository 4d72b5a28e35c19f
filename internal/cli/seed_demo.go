package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slotforge/slotforge/internal/problem"
	"github.com/slotforge/slotforge/internal/timetable"
	"github.com/slotforge/slotforge/pkg/config"
)

var seedDemoProblemID string

var seedDemoCmd = &cobra.Command{
	Use:   "seed-demo",
	Short: "Save a small example problem to get started",
	Long: `Create and persist a demonstration problem: two high-priority
four-window activities constrained to the start of the week, ready for
'slotforge run'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		descriptors, err := demoDescriptors()
		if err != nil {
			return fmt.Errorf("build demo descriptors: %w", err)
		}

		repo, err := problem.OpenSQLiteRepository(cmd.Context(), cfg.SQLitePath, problem.BreakerConfig{
			MaxRequests:      cfg.BreakerMaxRequests,
			Interval:         cfg.BreakerInterval,
			Timeout:          cfg.BreakerTimeout,
			FailureThreshold: cfg.BreakerFailureThreshold,
		})
		if err != nil {
			return fmt.Errorf("open problem repository: %w", err)
		}
		repo.WithLogger(logger)
		defer repo.Close()

		p := &problem.Problem{ID: seedDemoProblemID, Name: "weekly-standup-pair", Descriptors: descriptors}
		if err := repo.SaveProblem(cmd.Context(), p); err != nil {
			return fmt.Errorf("save demo problem: %w", err)
		}

		fmt.Printf("saved problem %q with %d descriptors to %s\n", p.ID, len(descriptors), cfg.SQLitePath)
		return nil
	},
}

// demoDescriptors builds the two-descriptor scenario from the spec's S2
// worked example: two High-priority, duration-4 activities each
// restricted to the first two morning slots of Monday.
func demoDescriptors() ([]*timetable.Descriptor, error) {
	allowed := []timetable.Slot{timetable.NewSlot(0, 0), timetable.NewSlot(0, 4)}

	standup, err := timetable.NewDescriptorBuilder().
		WithID(1).
		WithName("daily-standup").
		WithPriority(timetable.High).
		WithDuration(4).
		WithAllowedSlots(allowed).
		Build()
	if err != nil {
		return nil, err
	}

	retro, err := timetable.NewDescriptorBuilder().
		WithID(2).
		WithName("weekly-retro").
		WithPriority(timetable.High).
		WithDuration(4).
		WithAllowedSlots(allowed).
		Build()
	if err != nil {
		return nil, err
	}

	return []*timetable.Descriptor{standup, retro}, nil
}

func init() {
	seedDemoCmd.Flags().StringVar(&seedDemoProblemID, "problem", "weekly-standup-pair", "id to save the demo problem under")
}
