package history

import "log/slog"

// DefaultDescription is used for commands constructed without a label.
const DefaultDescription = "unnamed operation"

// Command represents a reversible operation against the record store.
//
// Execute and Undo must be inverse operations: after Execute followed by
// Undo, externally observable state matches the pre-execute state. The
// contract is trusted, not verified. Implementations must not panic and
// must not let errors escape; failures are logged internally and reported
// as false.
type Command interface {
	// Execute performs the forward operation. Returns true on success.
	Execute() bool

	// Undo reverses the most recent Execute. Returns true on success.
	Undo() bool

	// Description returns a fixed human-readable label for this command.
	Description() string

	// IsBatch reports whether this command is a composite of child commands.
	IsBatch() bool
}

// Func adapts a pair of closures into a Command, for one-off reversible
// operations that do not warrant a named type.
type Func struct {
	ExecuteFn func() bool
	UndoFn    func() bool
	Desc      string
}

// Execute calls ExecuteFn. A nil ExecuteFn is a successful no-op.
func (f *Func) Execute() bool {
	if f.ExecuteFn == nil {
		return true
	}
	return f.ExecuteFn()
}

// Undo calls UndoFn. A nil UndoFn is a successful no-op.
func (f *Func) Undo() bool {
	if f.UndoFn == nil {
		return true
	}
	return f.UndoFn()
}

// Description returns the configured label or the generic placeholder.
func (f *Func) Description() string { return describe(f.Desc) }

// IsBatch always returns false.
func (f *Func) IsBatch() bool { return false }

// describe returns desc, falling back to the generic placeholder.
func describe(desc string) string {
	if desc == "" {
		return DefaultDescription
	}
	return desc
}

// logOrDefault guards against nil loggers so commands can always log.
func logOrDefault(log *slog.Logger) *slog.Logger {
	if log == nil {
		return slog.Default()
	}
	return log
}
