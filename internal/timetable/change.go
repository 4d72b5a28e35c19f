package timetable

// ChangeKind tags which variant of Change occurred.
type ChangeKind uint8

const (
	// ChangeMove: a scheduled descriptor was relocated.
	ChangeMove ChangeKind = iota
	// ChangeScheduled: a previously-unscheduled descriptor was placed.
	ChangeScheduled
	// ChangeSubstituted: a new descriptor took over a slot an evicted
	// descriptor vacated.
	ChangeSubstituted
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeMove:
		return "move"
	case ChangeScheduled:
		return "scheduled"
	case ChangeSubstituted:
		return "substituted"
	default:
		return "unknown"
	}
}

// Change is the reversible record of one evolution-operator step: it
// carries enough information to undo any single move and restore
// I1-I4 exactly, which the hill-climber's revert path relies on.
type Change struct {
	Kind ChangeKind

	// Populated for ChangeMove: the descriptor's position before and
	// after the relocation.
	From Slot
	To   Slot

	// ID is the descriptor the move/schedule/substitution placed: the
	// relocated descriptor for ChangeMove, the newly-scheduled one for
	// ChangeScheduled and ChangeSubstituted.
	ID uint32

	// Populated for ChangeSubstituted: the descriptor evicted to make
	// room, and where/how it had been placed.
	EvictedID       uint32
	EvictedStart    Slot
	EvictedDuration uint8
}

// Revert undoes change against grid, restoring the state it had before
// the evolution operator produced change. Revert assumes grid is in
// exactly the post-change state; calling it twice, or against a grid
// that has since been mutated further, is a caller error.
func Revert(grid *Grid, duration uint8, change *Change) {
	switch change.Kind {
	case ChangeMove:
		if _, err := grid.Unschedule(change.ID, duration); err != nil {
			panic("timetable: invariant violation reverting move: " + err.Error())
		}
		grid.Schedule(change.ID, duration, change.From)

	case ChangeScheduled:
		if _, err := grid.Unschedule(change.ID, duration); err != nil {
			panic("timetable: invariant violation reverting schedule: " + err.Error())
		}

	case ChangeSubstituted:
		if _, err := grid.Unschedule(change.ID, duration); err != nil {
			panic("timetable: invariant violation reverting substitution: " + err.Error())
		}
		grid.Schedule(change.EvictedID, change.EvictedDuration, change.EvictedStart)
	}
}
