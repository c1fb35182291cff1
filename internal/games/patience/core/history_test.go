package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-patience/internal/games/patience/core"
)

func TestHistoryRecordDedup(t *testing.T) {
	initial := testBoard(cards(num('B', 2), num('A', 1)), cards())
	h := core.NewHistory(initial)

	assert.False(t, h.Record(initial.Clone()), "identical board must not grow history")
	assert.Equal(t, 1, h.Len())

	held := mustApply(t, initial, core.PickupColumn{Column: 0, Index: 1})
	assert.True(t, h.Record(held))
	assert.Equal(t, 2, h.Len())

	// A rejected move yields the same board and is dropped.
	assert.False(t, h.Record(core.Apply(held, core.PickupColumn{Column: 0, Index: 0})))
	assert.Equal(t, 2, h.Len())
}

func TestHistoryUndo(t *testing.T) {
	initial := testBoard(cards(num('B', 2), num('A', 1)), cards())
	h := core.NewHistory(initial)

	held := mustApply(t, initial, core.PickupColumn{Column: 0, Index: 1})
	require.True(t, h.Record(held))
	dropped := mustApply(t, held, core.DropColumn{Column: 1})
	require.True(t, h.Record(dropped))

	require.NoError(t, h.Undo())
	assert.True(t, h.Current().Same(held))

	require.NoError(t, h.Undo())
	assert.True(t, h.Current().Same(initial))

	err := h.Undo()
	assert.True(t, errors.Is(err, core.ErrHistoryUnderflow))
	assert.Equal(t, 1, h.Len())
}

func TestHistoryRedo(t *testing.T) {
	initial := testBoard(cards(num('B', 2), num('A', 1)), cards())
	h := core.NewHistory(initial)

	held := mustApply(t, initial, core.PickupColumn{Column: 0, Index: 1})
	h.Record(held)
	assert.False(t, h.CanRedo())
	assert.True(t, errors.Is(h.Redo(), core.ErrHistoryUnderflow))

	require.NoError(t, h.Undo())
	assert.True(t, h.CanRedo())
	require.NoError(t, h.Redo())
	assert.True(t, h.Current().Same(held))

	// Recording a new branch forgets the undone future.
	require.NoError(t, h.Undo())
	other := mustApply(t, initial, core.PickupColumn{Column: 0, Index: 0})
	require.True(t, h.Record(other))
	assert.False(t, h.CanRedo())
}

func TestHistoryResetToStart(t *testing.T) {
	initial := testBoard(cards(num('B', 2), num('A', 1)), cards())
	h := core.NewHistory(initial)

	assert.False(t, h.ResetToStart(), "already at the start")

	held := mustApply(t, initial, core.PickupColumn{Column: 0, Index: 1})
	h.Record(held)
	h.Record(mustApply(t, held, core.DropColumn{Column: 1}))

	require.True(t, h.ResetToStart())
	assert.Equal(t, 4, h.Len())
	assert.True(t, h.Current().Same(initial))

	// The reset is itself a step that can be undone.
	require.NoError(t, h.Undo())
	assert.False(t, h.Current().Same(initial))

	first, ok := h.At(0)
	require.True(t, ok)
	assert.True(t, first.Same(initial))
	_, ok = h.At(10)
	assert.False(t, ok)
}
