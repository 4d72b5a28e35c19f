package problem

import "context"

// Repository persists problems and their run results. Implementations
// must be safe for use by a single goroutine at a time; SQLite's
// single-writer model makes concurrent callers the caller's problem,
// not this interface's.
type Repository interface {
	SaveProblem(ctx context.Context, p *Problem) error
	LoadProblem(ctx context.Context, id string) (*Problem, error)
	SaveRun(ctx context.Context, r *RunResult) error
	LatestRun(ctx context.Context, problemID string) (*RunResult, error)
}
