package problem

import "fmt"

// NotFoundError signals a lookup for a problem or run that has never
// been saved.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("problem: %s %q not found", e.Kind, e.ID)
}

// RepositoryError wraps a lower-level storage failure (a SQL error, a
// tripped circuit breaker) with the operation that triggered it.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("problem: %s: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}
