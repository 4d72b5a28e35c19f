package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstraintStore_PushGetLen(t *testing.T) {
	s := NewConstraintStoreWithSeed(1)
	d := mustBuild(t, NewDescriptorBuilder().WithID(1).WithName("a").WithPriority(High).WithDuration(1))
	s.Push(d)

	assert.Equal(t, 1, s.Len())
	assert.Same(t, d, s.Get(1))
	assert.Nil(t, s.Get(99))
	assert.Equal(t, []*Descriptor{d}, s.All())
}

func TestConstraintStore_GetForOptimization_NilWhenAllZero(t *testing.T) {
	s := NewConstraintStoreWithSeed(1)
	d := mustBuild(t, NewDescriptorBuilder().WithID(1).WithName("a").WithPriority(High).WithDuration(1))
	s.Push(d)

	result := s.GetForOptimization(map[uint32]uint32{1: 0})
	assert.Nil(t, result)
}

func TestConstraintStore_GetForOptimization_OnlyDrawsWeighted(t *testing.T) {
	s := NewConstraintStoreWithSeed(7)
	a := mustBuild(t, NewDescriptorBuilder().WithID(1).WithName("a").WithPriority(High).WithDuration(1))
	b := mustBuild(t, NewDescriptorBuilder().WithID(2).WithName("b").WithPriority(High).WithDuration(1))
	s.Push(a)
	s.Push(b)

	weights := map[uint32]uint32{1: 0, 2: 10}
	for i := 0; i < 50; i++ {
		picked := s.GetForOptimization(weights)
		require.NotNil(t, picked)
		assert.Equal(t, uint32(2), picked.ID)
	}
}

func TestConstraintStore_FindSwappable_ExcludesRequesterAndShortDurations(t *testing.T) {
	s := NewConstraintStoreWithSeed(3)
	grid := NewGrid()

	requester := mustBuild(t, NewDescriptorBuilder().WithID(1).WithName("req").WithPriority(High).WithDuration(4))
	tooShort := mustBuild(t, NewDescriptorBuilder().WithID(2).WithName("short").WithPriority(High).WithDuration(2))
	eligible := mustBuild(t, NewDescriptorBuilder().WithID(3).WithName("ok").WithPriority(High).WithDuration(4))

	s.Push(requester)
	s.Push(tooShort)
	s.Push(eligible)

	grid.Schedule(requester.ID, requester.Duration, NewSlot(0, 0))
	grid.Schedule(tooShort.ID, tooShort.Duration, NewSlot(1, 0))
	grid.Schedule(eligible.ID, eligible.Duration, NewSlot(2, 0))

	for i := 0; i < 20; i++ {
		victim := s.FindSwappable(requester.ID, requester.Duration, grid)
		require.NotNil(t, victim)
		assert.Equal(t, uint32(3), victim.ID)
	}
}

func TestConstraintStore_FindSwappable_NilWhenNoCandidate(t *testing.T) {
	s := NewConstraintStoreWithSeed(3)
	grid := NewGrid()
	requester := mustBuild(t, NewDescriptorBuilder().WithID(1).WithName("req").WithPriority(High).WithDuration(4))
	s.Push(requester)

	assert.Nil(t, s.FindSwappable(requester.ID, requester.Duration, grid))
}

func TestConstraintStore_FindSwappable_IgnoresUnscheduled(t *testing.T) {
	s := NewConstraintStoreWithSeed(3)
	grid := NewGrid()

	requester := mustBuild(t, NewDescriptorBuilder().WithID(1).WithName("req").WithPriority(High).WithDuration(2))
	unplaced := mustBuild(t, NewDescriptorBuilder().WithID(2).WithName("unplaced").WithPriority(High).WithDuration(2))
	s.Push(requester)
	s.Push(unplaced)

	assert.Nil(t, s.FindSwappable(requester.ID, requester.Duration, grid))
}
