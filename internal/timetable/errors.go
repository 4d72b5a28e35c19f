package timetable

import "fmt"

// ScheduleError signals an attempt to unschedule a descriptor that is
// not currently placed on the grid. This indicates a logic bug in the
// caller — the evolution operator must never trigger it under I1-I4 —
// so it is returned rather than swallowed, and never produced by any
// path spec.md describes as an internal invariant.
type ScheduleError struct {
	ConstraintID uint32
}

func (e *ScheduleError) Error() string {
	return fmt.Sprintf("timetable: constraint %d is not scheduled", e.ConstraintID)
}

// IsConstraintNotScheduled reports whether err is a ScheduleError for
// an unscheduled-constraint lookup.
func IsConstraintNotScheduled(err error) bool {
	_, ok := err.(*ScheduleError)
	return ok
}

// BuildError signals incomplete or inconsistent descriptor construction.
// It is fatal to that one Build call and always recoverable by the
// caller: fix the builder chain and try again.
type BuildError struct {
	Reason string
}

func (e *BuildError) Error() string {
	return "timetable: cannot build descriptor: " + e.Reason
}
