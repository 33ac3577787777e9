package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchExecuteSuccess(t *testing.T) {
	cmds := []*mockCommand{
		newMockCommand("one"),
		newMockCommand("two"),
		newMockCommand("three"),
	}
	batch := NewBatch([]Command{cmds[0], cmds[1], cmds[2]}, "Test Batch", nil)

	require.True(t, batch.Execute())
	for _, cmd := range cmds {
		assert.True(t, cmd.executed)
	}
	assert.Equal(t, "Test Batch", batch.Description())
	assert.True(t, batch.IsBatch())
	assert.Equal(t, 3, batch.Len())
}

func TestBatchExecuteRollback(t *testing.T) {
	a := newMockCommand("A")
	b := newMockCommand("B")
	b.failExecute = true
	c := newMockCommand("C")

	batch := NewBatch([]Command{a, b, c}, "", nil)

	assert.False(t, batch.Execute())

	// A succeeded and was rolled back; C was never reached.
	assert.True(t, a.undone)
	assert.Equal(t, 1, a.undoCalls)
	assert.Equal(t, 0, c.execCalls)
	assert.False(t, c.executed)
}

func TestBatchRollbackContinuesOnFailure(t *testing.T) {
	a := newMockCommand("A")
	a.failUndo = true
	b := newMockCommand("B")
	c := newMockCommand("C")
	c.failExecute = true

	batch := NewBatch([]Command{a, b, c}, "", nil)

	assert.False(t, batch.Execute())

	// Rollback runs in reverse order and does not abort when a's undo fails.
	assert.Equal(t, 1, b.undoCalls)
	assert.Equal(t, 1, a.undoCalls)
	assert.True(t, b.undone)
}

func TestBatchUndoAttemptsAllChildren(t *testing.T) {
	a := newMockCommand("A")
	b := newMockCommand("B")
	b.failUndo = true
	c := newMockCommand("C")

	batch := NewBatch([]Command{a, b, c}, "", nil)
	require.True(t, batch.Execute())

	assert.False(t, batch.Undo())

	// All three undos were attempted despite b failing.
	assert.Equal(t, 1, a.undoCalls)
	assert.Equal(t, 1, b.undoCalls)
	assert.Equal(t, 1, c.undoCalls)
	assert.True(t, a.undone)
	assert.True(t, c.undone)
}

func TestBatchUndoReverseOrder(t *testing.T) {
	var order []string
	mk := func(name string) Command {
		return &Func{
			UndoFn: func() bool {
				order = append(order, name)
				return true
			},
			Desc: name,
		}
	}

	batch := NewBatch([]Command{mk("first"), mk("second"), mk("third")}, "", nil)
	require.True(t, batch.Execute())
	require.True(t, batch.Undo())

	assert.Equal(t, []string{"third", "second", "first"}, order)
}

func TestBatchDefaultDescription(t *testing.T) {
	batch := NewBatch([]Command{newMockCommand("a"), newMockCommand("b")}, "", nil)
	assert.Equal(t, "bulk operation (2 actions)", batch.Description())
}

func TestBatchEmpty(t *testing.T) {
	batch := NewBatch(nil, "", nil)

	assert.True(t, batch.Execute())
	assert.True(t, batch.Undo())
	assert.Equal(t, "bulk operation (0 actions)", batch.Description())
}

func TestFuncCommandDefaults(t *testing.T) {
	cmd := &Func{}

	assert.True(t, cmd.Execute())
	assert.True(t, cmd.Undo())
	assert.Equal(t, DefaultDescription, cmd.Description())
	assert.False(t, cmd.IsBatch())
}
