package history

import (
	"fmt"
	"log/slog"

	"github.com/danreyes/reckon/internal/logging"
)

// Batch executes multiple commands as a single undoable unit.
//
// Execution is all-or-nothing at batch granularity, approximated via
// compensating actions: on the first child failure every child that already
// succeeded is undone in reverse order. This is not a true transaction; a
// rollback step can itself fail, which is logged and skipped.
type Batch struct {
	commands    []Command
	description string
	log         *slog.Logger
}

// NewBatch creates a batch from an ordered list of child commands. The child
// list is owned by the batch and must not be mutated afterwards. An empty
// description defaults to "bulk operation (N actions)".
func NewBatch(commands []Command, description string, log *slog.Logger) *Batch {
	if description == "" {
		description = fmt.Sprintf("bulk operation (%d actions)", len(commands))
	}
	return &Batch{
		commands:    commands,
		description: description,
		log:         logOrDefault(log),
	}
}

// Execute runs all children in order. On the first failure it rolls back
// every already-executed child in reverse order and returns false. Returns
// true only if every child succeeded.
func (b *Batch) Execute() bool {
	var executed []Command

	for i, cmd := range b.commands {
		b.log.Debug("executing batch step",
			logging.KeyCommand, cmd.Description(),
			"step", i+1,
			logging.KeyCount, len(b.commands))

		if !cmd.Execute() {
			b.log.Error("batch step failed, rolling back",
				logging.KeyCommand, cmd.Description(),
				"step", i+1)

			for j := len(executed) - 1; j >= 0; j-- {
				if !executed[j].Undo() {
					b.log.Warn("rollback step failed",
						logging.KeyCommand, executed[j].Description())
				}
			}
			return false
		}

		executed = append(executed, cmd)
	}

	b.log.Debug("batch executed", logging.KeyCount, len(b.commands))
	return true
}

// Undo reverses all children in reverse order. Every child is attempted
// regardless of individual failures; returns true only if all succeeded.
func (b *Batch) Undo() bool {
	failed := 0

	for i := len(b.commands) - 1; i >= 0; i-- {
		cmd := b.commands[i]
		b.log.Debug("undoing batch step", logging.KeyCommand, cmd.Description())

		if !cmd.Undo() {
			b.log.Error("batch undo step failed", logging.KeyCommand, cmd.Description())
			failed++
		}
	}

	if failed > 0 {
		b.log.Warn("batch undo incomplete",
			"failed", failed,
			logging.KeyCount, len(b.commands))
		return false
	}

	b.log.Debug("batch undone", logging.KeyCount, len(b.commands))
	return true
}

// Description returns the batch's label.
func (b *Batch) Description() string {
	return b.description
}

// IsBatch always returns true.
func (b *Batch) IsBatch() bool {
	return true
}

// Len returns the number of child commands.
func (b *Batch) Len() int {
	return len(b.commands)
}
