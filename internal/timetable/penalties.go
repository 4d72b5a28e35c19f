package timetable

// Penalty computes the descriptor's total score against grid: the sum
// of every kernel named in its Penalties set. A single root violation
// (unscheduled) suppresses the AllowedSlots and PreferredSlots kernels
// so the gradient points the search at scheduling first.
func Penalty(d *Descriptor, grid *Grid) uint32 {
	var total uint32
	for _, kind := range d.Penalties {
		switch kind {
		case Validity:
			total += validityPenalty(d, grid)
		case AllowedSlots:
			total += allowedSlotsPenalty(d, grid)
		case PreferredSlots:
			total += preferredSlotsPenalty(d, grid)
		case Gap:
			total += gapPenalty(d, grid)
		}
	}
	return total
}

// validityPenalty is 0 when scheduled, else 10 (High) or 5 (Low).
func validityPenalty(d *Descriptor, grid *Grid) uint32 {
	if grid.IsConstraintScheduled(d.ID) {
		return 0
	}
	if d.Priority == High {
		return 10
	}
	return 5
}

// allowedSlotsPenalty is 0 when unscheduled (Validity already carries
// the signal) or when the current start is on the allowed list; 30
// (High) or 20 (Low) otherwise. These values exceed Validity's
// unscheduled penalty by design: the optimizer must never prefer an
// illegal placement over leaving the activity unscheduled (P8).
func allowedSlotsPenalty(d *Descriptor, grid *Grid) uint32 {
	start, scheduled := grid.SlotFor(d.ID)
	if !scheduled {
		return 0
	}
	if containsSlot(d.AllowedSlots, start) {
		return 0
	}
	if d.Priority == High {
		return 30
	}
	return 20
}

// preferredSlotsPenalty is 0 when unscheduled or on the preferred
// list; 3 (High) or 2 (Low) otherwise.
func preferredSlotsPenalty(d *Descriptor, grid *Grid) uint32 {
	start, scheduled := grid.SlotFor(d.ID)
	if !scheduled {
		return 0
	}
	if containsSlot(d.PreferredSlots, start) {
		return 0
	}
	if d.Priority == High {
		return 3
	}
	return 2
}

// gapPenalty is the open design point in spec.md §9: the intended
// sibling-distance semantics were never finished upstream, and no
// numeric contract is specified. Kept at zero parity with the source
// rather than inventing one.
func gapPenalty(d *Descriptor, grid *Grid) uint32 {
	return 0
}

// PenaltySum totals Penalty across every descriptor in descriptors,
// each scored against grid.
func PenaltySum(descriptors []*Descriptor, grid *Grid) uint32 {
	var total uint32
	for _, d := range descriptors {
		total += Penalty(d, grid)
	}
	return total
}

// PenaltiesByID computes Penalty for every descriptor and returns the
// result keyed by descriptor id, as required by
// ConstraintStore.GetForOptimization.
func PenaltiesByID(descriptors []*Descriptor, grid *Grid) map[uint32]uint32 {
	byID := make(map[uint32]uint32, len(descriptors))
	for _, d := range descriptors {
		byID[d.ID] = Penalty(d, grid)
	}
	return byID
}
