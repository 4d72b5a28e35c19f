package timetable

// Evolve performs one step of the evolution operator against c: if c is
// currently scheduled, it attempts to relocate c to a better-fitting
// slot (a Move); otherwise it attempts to insert c, either directly or
// by evicting a swappable victim (a Scheduled or Substituted change).
// It returns nil if no move was possible.
func Evolve(store *ConstraintStore, grid *Grid, c *Descriptor) *Change {
	if grid.IsConstraintScheduled(c.ID) {
		return evolveScheduled(grid, c)
	}
	return evolveUnscheduled(store, grid, c)
}

// evolveScheduled relocates an already-placed descriptor. If c has an
// allowed-slot whitelist, the first allowed slot whose range is free or
// owned by c wins; otherwise the first free slot anywhere wins.
func evolveScheduled(grid *Grid, c *Descriptor) *Change {
	target, ok := findRelocationTarget(grid, c)
	if !ok {
		return nil
	}

	prev, err := grid.Unschedule(c.ID, c.Duration)
	if err != nil {
		panic("timetable: invariant violation: scheduled descriptor vanished mid-evolution: " + err.Error())
	}
	grid.Schedule(c.ID, c.Duration, target)

	return &Change{Kind: ChangeMove, ID: c.ID, From: prev, To: target}
}

func findRelocationTarget(grid *Grid, c *Descriptor) (Slot, bool) {
	if len(c.AllowedSlots) > 0 {
		for _, candidate := range c.AllowedSlots {
			if grid.IsDurationFreeOrOwnedBy(c.ID, candidate, c.Duration) {
				return candidate, true
			}
		}
		return Slot{}, false
	}
	return grid.FindFreeSlot(c.Duration)
}

// evolveUnscheduled attempts to insert c: directly if a legal slot is
// available, otherwise by evicting a swappable victim whose duration
// is at least c's.
func evolveUnscheduled(store *ConstraintStore, grid *Grid, c *Descriptor) *Change {
	if slot, ok := grid.GetSlotForConstraint(c.Duration, c.AllowedSlots); ok {
		grid.Schedule(c.ID, c.Duration, slot)
		return &Change{Kind: ChangeScheduled, ID: c.ID}
	}

	victim := store.FindSwappable(c.ID, c.Duration, grid)
	if victim == nil {
		return nil
	}

	freed, err := grid.Unschedule(victim.ID, victim.Duration)
	if err != nil {
		panic("timetable: invariant violation: swap victim vanished mid-evolution: " + err.Error())
	}
	grid.Schedule(c.ID, c.Duration, freed)

	return &Change{
		Kind:            ChangeSubstituted,
		ID:              c.ID,
		EvictedID:       victim.ID,
		EvictedStart:    freed,
		EvictedDuration: victim.Duration,
	}
}
