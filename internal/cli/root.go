// Package cli wires the cobra command tree for the slotforge binary.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/slotforge/slotforge/pkg/observability"
)

var (
	verbose bool
	logger  *slog.Logger
)

type commandContext struct {
	correlationID uuid.UUID
	startedAt     time.Time
}

type commandContextKey struct{}

// rootCmd is the base command when slotforge is invoked with no subcommand.
var rootCmd = &cobra.Command{
	Use:   "slotforge",
	Short: "slotforge - weekly timetable local-search scheduler",
	Long: `slotforge places weighted activities onto a 7-day, 48-slot
weekly grid with a stochastic hill-climbing search, driven by
immutable constraint descriptors and a pluggable penalty model.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if logger == nil {
			logger = slog.Default()
		}
		info := commandContext{correlationID: uuid.New(), startedAt: time.Now()}
		ctx := observability.WithCorrelationID(cmd.Context(), info.correlationID.String())
		ctx = observability.WithOperation(ctx, cmd.CommandPath())
		ctx = context.WithValue(ctx, commandContextKey{}, info)
		cmd.SetContext(ctx)
		logger.InfoContext(ctx, "command start", "command", cmd.CommandPath())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		info, ok := cmd.Context().Value(commandContextKey{}).(commandContext)
		if !ok {
			return
		}
		logger.InfoContext(cmd.Context(), "command end",
			"command", cmd.CommandPath(),
			"duration_ms", time.Since(info.startedAt).Milliseconds(),
		)
	},
}

// Execute runs the command tree, printing errors to stderr and setting
// a nonzero exit code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (no command reads this flag; log verbosity follows SLOTFORGE_LOG_LEVEL)")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(seedDemoCmd)
}

// SetLogger sets the CLI's structured logger.
func SetLogger(l *slog.Logger) {
	logger = l
}
