package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevert_Move(t *testing.T) {
	grid := NewGrid()
	grid.Schedule(1, 2, NewSlot(0, 0))
	change := &Change{Kind: ChangeMove, ID: 1, From: NewSlot(0, 0), To: NewSlot(3, 0)}

	_, err := grid.Unschedule(1, 2)
	require.NoError(t, err)
	grid.Schedule(1, 2, NewSlot(3, 0))

	Revert(grid, 2, change)

	slot, ok := grid.SlotFor(1)
	require.True(t, ok)
	assert.Equal(t, NewSlot(0, 0), slot)
	assert.True(t, grid.IsSlotFree(3, 0))
}

func TestRevert_Scheduled(t *testing.T) {
	grid := NewGrid()
	grid.Schedule(1, 2, NewSlot(0, 0))
	change := &Change{Kind: ChangeScheduled, ID: 1}

	Revert(grid, 2, change)

	assert.False(t, grid.IsConstraintScheduled(1))
}

func TestRevert_Substituted(t *testing.T) {
	grid := NewGrid()
	grid.Schedule(2, 2, NewSlot(0, 0))

	_, err := grid.Unschedule(2, 2)
	require.NoError(t, err)
	grid.Schedule(1, 2, NewSlot(0, 0))

	change := &Change{
		Kind:            ChangeSubstituted,
		ID:              1,
		EvictedID:       2,
		EvictedStart:    NewSlot(0, 0),
		EvictedDuration: 2,
	}

	Revert(grid, 2, change)

	assert.False(t, grid.IsConstraintScheduled(1))
	slot, ok := grid.SlotFor(2)
	require.True(t, ok)
	assert.Equal(t, NewSlot(0, 0), slot)
}
