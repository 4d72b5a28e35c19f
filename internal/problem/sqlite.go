package problem

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/sony/gobreaker/v2"

	"github.com/slotforge/slotforge/pkg/observability"
)

const schema = `
CREATE TABLE IF NOT EXISTS problems (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	descriptors_json TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS run_results (
	id          TEXT PRIMARY KEY,
	problem_id  TEXT NOT NULL REFERENCES problems(id),
	seed        INTEGER NOT NULL,
	iterations  INTEGER NOT NULL,
	accepted    INTEGER NOT NULL,
	penalty     INTEGER NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_run_results_problem_id ON run_results(problem_id);
`

// BreakerConfig tunes the circuit breaker guarding every SQLite call.
type BreakerConfig struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

// SQLiteRepository implements Repository against a single-writer
// SQLite database, with every call routed through a circuit breaker so
// a wedged database degrades callers with ErrOpenState rather than
// hanging them one-by-one.
type SQLiteRepository struct {
	db      *sql.DB
	breaker *gobreaker.CircuitBreaker[any]
	metrics observability.Metrics
	logger  *slog.Logger
}

// WithMetrics attaches a metrics sink; every subsequent call records
// query counts, errors, and breaker trips against it.
func (r *SQLiteRepository) WithMetrics(m observability.Metrics) *SQLiteRepository {
	r.metrics = m
	return r
}

// WithLogger attaches logger; breaker state transitions are logged at
// warn level from then on.
func (r *SQLiteRepository) WithLogger(logger *slog.Logger) *SQLiteRepository {
	r.logger = logger
	return r
}

// OpenSQLiteRepository opens (creating if necessary) a SQLite database
// at path, applies the schema, and wraps it in a circuit breaker
// configured by cfg.
func OpenSQLiteRepository(ctx context.Context, path string, cfg BreakerConfig) (*SQLiteRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("problem: create database directory: %w", err)
		}
	}

	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("problem: open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("problem: ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("problem: apply schema: %w", err)
	}

	repo := &SQLiteRepository{
		db:      db,
		metrics: observability.NoopMetrics{},
		logger:  slog.New(slog.DiscardHandler),
	}

	settings := gobreaker.Settings{
		Name:        "problem-repository",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			repo.logger.Warn("circuit breaker state change", "breaker", name, "from", from, "to", to)
		},
	}
	repo.breaker = gobreaker.NewCircuitBreaker[any](settings)

	return repo, nil
}

// Close closes the underlying database connection.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// HealthChecker returns an observability.HealthChecker that pings the
// underlying database connection.
func (r *SQLiteRepository) HealthChecker() observability.HealthChecker {
	return observability.DatabaseHealthChecker(r.db.PingContext)
}

func (r *SQLiteRepository) guarded(ctx context.Context, op string, fn func() (any, error)) (any, error) {
	tag := observability.T("operation", op)
	r.metrics.Counter(observability.MetricRepositoryQueries, 1, tag)

	result, err := r.breaker.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) {
		r.metrics.Counter(observability.MetricRepositoryBreakerTrips, 1, tag)
		return nil, &RepositoryError{Op: op, Err: err}
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		r.metrics.Counter(observability.MetricRepositoryQueryErrors, 1, tag)
	}
	return result, err
}

// SaveProblem inserts or replaces p.
func (r *SQLiteRepository) SaveProblem(ctx context.Context, p *Problem) error {
	descriptorsJSON, err := json.Marshal(p.Descriptors)
	if err != nil {
		return fmt.Errorf("problem: marshal descriptors: %w", err)
	}

	_, err = r.guarded(ctx, "SaveProblem", func() (any, error) {
		_, execErr := r.db.ExecContext(ctx,
			`INSERT INTO problems (id, name, descriptors_json) VALUES (?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET name = excluded.name, descriptors_json = excluded.descriptors_json`,
			p.ID, p.Name, string(descriptorsJSON),
		)
		return nil, execErr
	})
	if err != nil {
		return &RepositoryError{Op: "SaveProblem", Err: err}
	}
	return nil
}

// LoadProblem returns the problem with the given id, or a
// *NotFoundError if it has never been saved.
func (r *SQLiteRepository) LoadProblem(ctx context.Context, id string) (*Problem, error) {
	row, err := r.guarded(ctx, "LoadProblem", func() (any, error) {
		var name, descriptorsJSON string
		scanErr := r.db.QueryRowContext(ctx,
			`SELECT name, descriptors_json FROM problems WHERE id = ?`, id,
		).Scan(&name, &descriptorsJSON)
		if scanErr != nil {
			return nil, scanErr
		}
		return [2]string{name, descriptorsJSON}, nil
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{Kind: "problem", ID: id}
	}
	if err != nil {
		return nil, &RepositoryError{Op: "LoadProblem", Err: err}
	}

	pair := row.([2]string)
	p := &Problem{ID: id, Name: pair[0]}
	if err := json.Unmarshal([]byte(pair[1]), &p.Descriptors); err != nil {
		return nil, fmt.Errorf("problem: unmarshal descriptors: %w", err)
	}
	return p, nil
}

// SaveRun inserts a new run result.
func (r *SQLiteRepository) SaveRun(ctx context.Context, result *RunResult) error {
	_, err := r.guarded(ctx, "SaveRun", func() (any, error) {
		_, execErr := r.db.ExecContext(ctx,
			`INSERT INTO run_results (id, problem_id, seed, iterations, accepted, penalty, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			result.ID, result.ProblemID, result.Seed, result.Iterations, result.Accepted, result.Penalty,
			time.Now().Format(time.RFC3339),
		)
		return nil, execErr
	})
	if err != nil {
		return &RepositoryError{Op: "SaveRun", Err: err}
	}
	return nil
}

// LatestRun returns the most recently saved run for problemID, or a
// *NotFoundError if none has been saved.
func (r *SQLiteRepository) LatestRun(ctx context.Context, problemID string) (*RunResult, error) {
	row, err := r.guarded(ctx, "LatestRun", func() (any, error) {
		result := &RunResult{ProblemID: problemID}
		scanErr := r.db.QueryRowContext(ctx,
			`SELECT id, seed, iterations, accepted, penalty FROM run_results
			 WHERE problem_id = ? ORDER BY rowid DESC LIMIT 1`, problemID,
		).Scan(&result.ID, &result.Seed, &result.Iterations, &result.Accepted, &result.Penalty)
		if scanErr != nil {
			return nil, scanErr
		}
		return result, nil
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{Kind: "run", ID: problemID}
	}
	if err != nil {
		return nil, &RepositoryError{Op: "LatestRun", Err: err}
	}
	return row.(*RunResult), nil
}
