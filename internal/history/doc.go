// Package history provides undo/redo for reversible ledger operations.
//
// The package uses the Command pattern: every mutation against the record
// store is wrapped in a Command that knows how to execute itself and how to
// undo itself. Key concepts:
//
// # Commands
//
// Commands implement the Command interface with Execute and Undo methods
// that report success as a boolean. A command never lets an error escape:
// store failures are logged and converted to false at the command boundary.
// Built-in commands include:
//   - CreateTransaction: add a ledger entry (undo deletes it)
//   - DeleteTransaction: remove an entry (undo restores the snapshot)
//   - UpdateTransaction: replace an entry (undo restores the previous value)
//   - Batch: group multiple commands into one atomic unit
//
// # Batches
//
// A Batch executes its children in order. If a child fails, the children
// that already succeeded are rolled back in reverse order (best effort) and
// the batch reports failure. Undoing a batch asks the user for confirmation
// through the manager's confirm callback.
//
// # The manager
//
//	mgr := history.NewManager(history.Options{
//		MaxStackSize: 25,
//		Logger:       logging.Logger(),
//		Confirm:      promptYesNo,
//		Snapshots:    history.NewFileSnapshotWriter(path, logging.Logger()),
//	})
//
//	mgr.Execute(cmd)
//	mgr.Undo()
//	mgr.Redo()
//
// The manager owns two bounded stacks. A successful execute clears the redo
// stack (history is linear), and the oldest undo entry is evicted once the
// stack exceeds its limit. After every stack mutation a small JSON snapshot
// of counts and recent descriptions is persisted for display purposes; the
// snapshot is advisory and is never read back to restore state.
//
// The manager is not safe for concurrent use. It is owned by the single
// interactive session that issues execute/undo/redo calls.
package history
