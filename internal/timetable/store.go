package timetable

import "math/rand/v2"

// ConstraintStore is the ordered collection of descriptors the search
// draws from: iteration, lookup by id, weighted random selection for
// the hill-climber, and swap-candidate lookup for the substitution
// branch of the evolution operator.
//
// ConstraintStore owns the search's single pseudo-random source. The
// source is a seam: NewConstraintStoreWithSeed accepts an external
// seed so tests can pin a deterministic sequence (spec.md §9).
type ConstraintStore struct {
	descriptors []*Descriptor
	rng         *rand.Rand
}

// NewConstraintStore returns an empty store seeded from a
// non-deterministic source.
func NewConstraintStore() *ConstraintStore {
	return &ConstraintStore{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// NewConstraintStoreWithSeed returns an empty store whose RNG is
// deterministically seeded, for reproducible tests and reproducible runs.
func NewConstraintStoreWithSeed(seed uint64) *ConstraintStore {
	return &ConstraintStore{
		rng: rand.New(rand.NewPCG(seed, seed)),
	}
}

// Push appends descriptor to the store.
func (s *ConstraintStore) Push(d *Descriptor) {
	s.descriptors = append(s.descriptors, d)
}

// Get returns the descriptor with the given id, or nil if absent.
func (s *ConstraintStore) Get(id uint32) *Descriptor {
	for _, d := range s.descriptors {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// All returns the store's descriptors in declaration order. The
// returned slice must not be mutated by the caller.
func (s *ConstraintStore) All() []*Descriptor {
	return s.descriptors
}

// Len returns the number of descriptors in the store.
func (s *ConstraintStore) Len() int {
	return len(s.descriptors)
}

// GetForOptimization draws one descriptor with probability
// proportional to its current penalty, using the supplied per-id
// penalty map. Descriptors with zero penalty have zero probability of
// being drawn; if every penalty is zero, the optimum has been reached
// and GetForOptimization returns nil.
func (s *ConstraintStore) GetForOptimization(penaltiesByID map[uint32]uint32) *Descriptor {
	var total uint64
	for _, d := range s.descriptors {
		total += uint64(penaltiesByID[d.ID])
	}
	if total == 0 {
		return nil
	}

	draw := s.rng.Uint64N(total)
	var cursor uint64
	for _, d := range s.descriptors {
		weight := uint64(penaltiesByID[d.ID])
		if weight == 0 {
			continue
		}
		cursor += weight
		if draw < cursor {
			return d
		}
	}
	// Unreachable if the weights and total agree; defensive fallback.
	return nil
}

// FindSwappable uniformly chooses among every currently-scheduled
// descriptor whose id differs from requestingID and whose duration is
// at least requiredDuration. It returns nil if no candidate exists.
// Uniformity keeps the search from getting stuck repeatedly evicting
// one victim.
func (s *ConstraintStore) FindSwappable(requestingID uint32, requiredDuration uint8, grid *Grid) *Descriptor {
	var candidates []*Descriptor
	for _, d := range s.descriptors {
		if d.ID == requestingID || d.Duration < requiredDuration {
			continue
		}
		if grid.IsConstraintScheduled(d.ID) {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	return candidates[s.rng.IntN(len(candidates))]
}
