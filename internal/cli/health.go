package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slotforge/slotforge/internal/problem"
	"github.com/slotforge/slotforge/pkg/config"
	"github.com/slotforge/slotforge/pkg/observability"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check problem-repository connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
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

		registry := observability.NewHealthRegistry()
		registry.Register("problem-repository", repo.HealthChecker())

		overall := registry.GetOverallHealth(cmd.Context())
		fmt.Printf("status: %s\n", overall.Status)
		for name, result := range overall.Checks {
			fmt.Printf("  %-20s %-10s %s\n", name, result.Status, result.Message)
		}

		if overall.Status != observability.HealthStatusHealthy {
			return fmt.Errorf("unhealthy: %s", overall.Status)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
