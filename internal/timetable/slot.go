package timetable

import "fmt"

// DaysPerWeek is the number of days the grid spans.
const DaysPerWeek = 7

// WindowsPerDay is the number of half-hour cells in one day.
const WindowsPerDay = 48

// MaxDuration is the longest a single descriptor may occupy: a full day.
const MaxDuration = WindowsPerDay

// Slot names the start of a half-hour cell on the grid: a day in
// [0, DaysPerWeek) and a window in [0, WindowsPerDay). Slot is a value
// type, freely copied and compared.
type Slot struct {
	Day    uint8
	Window uint8
}

// NewSlot constructs a Slot without validating bounds; callers that
// need a guaranteed in-range slot should check InBounds.
func NewSlot(day, window uint8) Slot {
	return Slot{Day: day, Window: window}
}

// InBounds reports whether the slot names a cell that exists on the grid.
func (s Slot) InBounds() bool {
	return s.Day < DaysPerWeek && s.Window < WindowsPerDay
}

// String renders the slot as "day:window" for logging and test failures.
func (s Slot) String() string {
	return fmt.Sprintf("%d:%02d", s.Day, s.Window)
}

// containsSlot reports whether target appears in candidates.
func containsSlot(candidates []Slot, target Slot) bool {
	for _, s := range candidates {
		if s == target {
			return true
		}
	}
	return false
}
