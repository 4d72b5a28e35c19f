package timetable

import "log/slog"

// Climber runs the stochastic hill-climbing search: seed a grid
// naively, then repeatedly draw a penalized descriptor, evolve it, and
// keep the change only if it did not make the total penalty worse.
// Climber holds no state of its own across Run calls; every Run starts
// from a fresh seed.
type Climber struct {
	store  *ConstraintStore
	logger *slog.Logger
}

// NewClimber returns a Climber drawing from store. Move tracing is
// silent until WithLogger attaches a logger.
func NewClimber(store *ConstraintStore) *Climber {
	return &Climber{store: store, logger: slog.New(slog.DiscardHandler)}
}

// WithLogger attaches logger for debug-level tracing of each accepted
// or reverted move. It returns c for chaining.
func (c *Climber) WithLogger(logger *slog.Logger) *Climber {
	c.logger = logger
	return c
}

// Result is the outcome of one Run: the best grid observed, the
// penalty it scored, and how many of the iteration budget's steps
// actually produced an accepted change.
type Result struct {
	Grid       *Grid
	Penalty    uint32
	Accepted   int
	Iterations int
}

// Run seeds a grid by inserting every descriptor in store in
// declaration order (first-fit, skipping any that cannot be placed at
// all), then performs up to iterations steps of the evolution loop.
// Each step draws one descriptor weighted by its current penalty,
// applies Evolve, rescoring the whole store; if the new total penalty
// is no worse than before the step, the change is kept, otherwise it
// is reverted. Run tracks the best-scoring grid seen across every
// step, including the seed, and returns that snapshot regardless of
// where the search ends up.
func (c *Climber) Run(iterations int) Result {
	grid := c.seed()

	descriptors := c.store.All()
	bestPenalty := PenaltySum(descriptors, grid)
	best := grid.Clone()
	accepted := 0

	for i := 0; i < iterations; i++ {
		byID := PenaltiesByID(descriptors, grid)
		candidate := c.store.GetForOptimization(byID)
		if candidate == nil {
			break
		}

		before := PenaltySum(descriptors, grid)
		change := Evolve(c.store, grid, candidate)
		if change == nil {
			continue
		}

		after := PenaltySum(descriptors, grid)
		if after <= before {
			accepted++
			c.logger.Debug("move accepted",
				"iteration", i, "descriptor_id", candidate.ID, "kind", change.Kind,
				"penalty_before", before, "penalty_after", after,
			)
			if after < bestPenalty {
				bestPenalty = after
				best = grid.Clone()
			}
			continue
		}

		c.logger.Debug("move reverted",
			"iteration", i, "descriptor_id", candidate.ID, "kind", change.Kind,
			"penalty_before", before, "penalty_after", after,
		)
		Revert(grid, candidate.Duration, change)
	}

	return Result{
		Grid:       best,
		Penalty:    bestPenalty,
		Accepted:   accepted,
		Iterations: iterations,
	}
}

// seed builds the naive starting grid: every descriptor in store, in
// declaration order, is inserted via GetSlotForConstraint; descriptors
// with no immediately available slot are left unscheduled for the
// search to place later.
func (c *Climber) seed() *Grid {
	grid := NewGrid()
	for _, d := range c.store.All() {
		slot, ok := grid.GetSlotForConstraint(d.Duration, d.AllowedSlots)
		if !ok {
			continue
		}
		grid.Schedule(d.ID, d.Duration, slot)
	}
	return grid
}
