package history

import (
	"fmt"
	"log/slog"

	"github.com/danreyes/reckon/internal/logging"
)

// DefaultMaxStackSize bounds the undo stack when no limit is configured.
const DefaultMaxStackSize = 25

// Stack description fallbacks.
const (
	NoUndoDescription = "nothing to undo"
	NoRedoDescription = "nothing to redo"
)

// ConfirmFunc asks the user to confirm a destructive operation. It blocks
// until the prompt resolves and returns true to proceed.
type ConfirmFunc func(message string) bool

// Options configures a Manager. All collaborators are injected here; the
// manager has no global state.
type Options struct {
	// MaxStackSize bounds the undo stack. Zero or negative uses the default.
	MaxStackSize int
	// Logger receives structured diagnostics. Nil uses slog.Default().
	Logger *slog.Logger
	// Confirm is invoked before undoing a batch command. Nil skips
	// confirmation (headless operation).
	Confirm ConfirmFunc
	// Snapshots persists advisory history metadata after each mutation.
	// Nil disables persistence.
	Snapshots SnapshotWriter
}

// Manager owns the undo and redo stacks and orchestrates command execution.
//
// The tail of each stack is the most recent entry. A command resides in at
// most one stack at a time. The manager is single-owner: callers must
// serialize access.
type Manager struct {
	undoStack []Command
	redoStack []Command

	maxStack  int
	log       *slog.Logger
	confirm   ConfirmFunc
	snapshots SnapshotWriter
}

// NewManager creates a manager with the given options.
func NewManager(opts Options) *Manager {
	if opts.MaxStackSize <= 0 {
		opts.MaxStackSize = DefaultMaxStackSize
	}
	m := &Manager{
		maxStack:  opts.MaxStackSize,
		log:       logOrDefault(opts.Logger),
		confirm:   opts.Confirm,
		snapshots: opts.Snapshots,
	}
	m.log.Debug("undo/redo manager initialized", "max_stack_size", m.maxStack)
	return m
}

// Execute runs the command and, on success, pushes it onto the undo stack.
// Any successful execute clears the redo stack: history is linear. Once the
// undo stack exceeds its limit the oldest entry is evicted. Returns false if
// the command failed, in which case no stack state changes and any partial
// external side effects are the command's responsibility.
func (m *Manager) Execute(cmd Command) bool {
	m.log.Info("executing command", logging.KeyCommand, cmd.Description())

	if !cmd.Execute() {
		m.log.Error("command failed", logging.KeyCommand, cmd.Description())
		return false
	}

	m.undoStack = append(m.undoStack, cmd)
	m.redoStack = nil

	if len(m.undoStack) > m.maxStack {
		evicted := m.undoStack[0]
		m.undoStack = m.undoStack[1:]
		m.log.Debug("undo stack full, evicted oldest entry",
			logging.KeyCommand, evicted.Description())
	}

	m.persist()

	m.log.Debug("command executed",
		logging.KeyUndoDepth, len(m.undoStack),
		"max_stack_size", m.maxStack)
	return true
}

// Undo reverses the most recently executed command. Batch commands require
// confirmation first; declining leaves all state untouched. If the undo
// fails the command is restored to the undo stack so the stacks keep
// matching what actually happened externally.
func (m *Manager) Undo() bool {
	if !m.CanUndo() {
		m.log.Warn("nothing to undo")
		return false
	}

	cmd := m.undoStack[len(m.undoStack)-1]
	m.undoStack = m.undoStack[:len(m.undoStack)-1]

	m.log.Info("undoing command", logging.KeyCommand, cmd.Description())

	if cmd.IsBatch() && m.confirm != nil {
		msg := fmt.Sprintf("Undo bulk operation?\n\n%s\n\nThis will revert multiple changes.", cmd.Description())
		if !m.confirm(msg) {
			m.undoStack = append(m.undoStack, cmd)
			m.log.Info("undo cancelled by user", logging.KeyCommand, cmd.Description())
			return false
		}
	}

	if !cmd.Undo() {
		m.undoStack = append(m.undoStack, cmd)
		m.log.Error("undo failed, command restored to stack",
			logging.KeyCommand, cmd.Description())
		return false
	}

	m.redoStack = append(m.redoStack, cmd)
	m.persist()

	m.log.Debug("undo complete",
		logging.KeyUndoDepth, len(m.undoStack),
		logging.KeyRedoDepth, len(m.redoStack))
	return true
}

// Redo re-executes the most recently undone command. If re-execution fails
// the command is restored to the redo stack.
func (m *Manager) Redo() bool {
	if !m.CanRedo() {
		m.log.Warn("nothing to redo")
		return false
	}

	cmd := m.redoStack[len(m.redoStack)-1]
	m.redoStack = m.redoStack[:len(m.redoStack)-1]

	m.log.Info("redoing command", logging.KeyCommand, cmd.Description())

	if !cmd.Execute() {
		m.redoStack = append(m.redoStack, cmd)
		m.log.Error("redo failed, command restored to stack",
			logging.KeyCommand, cmd.Description())
		return false
	}

	m.undoStack = append(m.undoStack, cmd)
	m.persist()

	m.log.Debug("redo complete",
		logging.KeyUndoDepth, len(m.undoStack),
		logging.KeyRedoDepth, len(m.redoStack))
	return true
}

// CanUndo reports whether an undo is available.
func (m *Manager) CanUndo() bool {
	return len(m.undoStack) > 0
}

// CanRedo reports whether a redo is available.
func (m *Manager) CanRedo() bool {
	return len(m.redoStack) > 0
}

// UndoDescription returns the label of the next undo action.
func (m *Manager) UndoDescription() string {
	if !m.CanUndo() {
		return NoUndoDescription
	}
	return m.undoStack[len(m.undoStack)-1].Description()
}

// RedoDescription returns the label of the next redo action.
func (m *Manager) RedoDescription() string {
	if !m.CanRedo() {
		return NoRedoDescription
	}
	return m.redoStack[len(m.redoStack)-1].Description()
}

// UndoDepth returns the number of entries on the undo stack.
func (m *Manager) UndoDepth() int { return len(m.undoStack) }

// RedoDepth returns the number of entries on the redo stack.
func (m *Manager) RedoDepth() int { return len(m.redoStack) }

// History returns the descriptions of both stacks, oldest first.
func (m *Manager) History() (undo, redo []string) {
	return descriptions(m.undoStack), descriptions(m.redoStack)
}

// Clear discards both stacks.
func (m *Manager) Clear() {
	m.undoStack = nil
	m.redoStack = nil
	m.persist()
	m.log.Info("undo/redo history cleared")
}

// persist writes the advisory metadata snapshot. Failures are logged and
// swallowed; persistence must never fail a user-visible operation.
func (m *Manager) persist() {
	if m.snapshots == nil {
		return
	}
	if err := m.snapshots.Write(m.snapshot()); err != nil {
		m.log.Warn("could not persist history metadata", logging.KeyError, err)
	}
}

// snapshot builds the advisory metadata record for the current stacks.
func (m *Manager) snapshot() Snapshot {
	return Snapshot{
		UndoCount:        len(m.undoStack),
		RedoCount:        len(m.redoStack),
		UndoDescriptions: lastDescriptions(m.undoStack, SnapshotDescriptionLimit),
		RedoDescriptions: lastDescriptions(m.redoStack, SnapshotDescriptionLimit),
	}
}

func descriptions(cmds []Command) []string {
	out := make([]string, len(cmds))
	for i, cmd := range cmds {
		out[i] = cmd.Description()
	}
	return out
}

func lastDescriptions(cmds []Command, n int) []string {
	if len(cmds) > n {
		cmds = cmds[len(cmds)-n:]
	}
	return descriptions(cmds)
}
