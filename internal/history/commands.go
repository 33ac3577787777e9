package history

import (
	"fmt"
	"log/slog"

	"github.com/danreyes/reckon/internal/logging"
	"github.com/danreyes/reckon/internal/model"
)

// RecordStore is the narrow port concrete commands mutate the ledger through.
// *storage.TransactionRepo satisfies it.
type RecordStore interface {
	// Create stores a new transaction, generating its key.
	Create(tx *model.Transaction) error
	// Put stores a transaction under its existing key.
	Put(tx *model.Transaction) error
	// Delete removes a transaction by key.
	Delete(key string) error
}

// CreateTransaction is a command that adds a ledger entry to the store.
type CreateTransaction struct {
	store       RecordStore
	tx          *model.Transaction
	description string
	log         *slog.Logger
}

// NewCreateTransaction creates a command that will store tx on execute.
// The transaction is copied; later mutations of the argument do not affect
// the command.
func NewCreateTransaction(store RecordStore, tx *model.Transaction, log *slog.Logger) *CreateTransaction {
	cp := *tx
	return &CreateTransaction{
		store:       store,
		tx:          &cp,
		description: fmt.Sprintf("Create transaction: %s", cp.Summary()),
		log:         logOrDefault(log),
	}
}

// Execute stores the transaction. A first execute generates the record key;
// re-execution (redo) restores the record under the same key.
func (c *CreateTransaction) Execute() bool {
	var err error
	if c.tx.Key == "" {
		err = c.store.Create(c.tx)
	} else {
		err = c.store.Put(c.tx)
	}
	if err != nil {
		c.log.Error("create transaction failed",
			logging.KeyProject, c.tx.ProjectSID,
			logging.KeyError, err)
		return false
	}

	c.log.Debug("transaction created",
		logging.KeyTransaction, c.tx.Key,
		logging.KeyProject, c.tx.ProjectSID)
	return true
}

// Undo deletes the created transaction.
func (c *CreateTransaction) Undo() bool {
	if err := c.store.Delete(c.tx.Key); err != nil {
		c.log.Error("undo create failed",
			logging.KeyTransaction, c.tx.Key,
			logging.KeyError, err)
		return false
	}

	c.log.Debug("transaction removed", logging.KeyTransaction, c.tx.Key)
	return true
}

// Description returns the command's label.
func (c *CreateTransaction) Description() string { return c.description }

// IsBatch always returns false.
func (c *CreateTransaction) IsBatch() bool { return false }

// Key returns the record key, empty until the first successful execute.
func (c *CreateTransaction) Key() string { return c.tx.Key }

// DeleteTransaction is a command that removes a ledger entry, keeping a
// snapshot so the entry can be restored on undo.
type DeleteTransaction struct {
	store       RecordStore
	snapshot    *model.Transaction
	description string
	log         *slog.Logger
}

// NewDeleteTransaction creates a command that deletes tx on execute. The full
// record is captured at construction time for restore.
func NewDeleteTransaction(store RecordStore, tx *model.Transaction, log *slog.Logger) *DeleteTransaction {
	cp := *tx
	return &DeleteTransaction{
		store:       store,
		snapshot:    &cp,
		description: fmt.Sprintf("Delete transaction: %s", cp.Summary()),
		log:         logOrDefault(log),
	}
}

// Execute deletes the transaction from the store.
func (c *DeleteTransaction) Execute() bool {
	if err := c.store.Delete(c.snapshot.Key); err != nil {
		c.log.Error("delete transaction failed",
			logging.KeyTransaction, c.snapshot.Key,
			logging.KeyError, err)
		return false
	}

	c.log.Debug("transaction deleted", logging.KeyTransaction, c.snapshot.Key)
	return true
}

// Undo restores the transaction from the snapshot under its original key.
func (c *DeleteTransaction) Undo() bool {
	if err := c.store.Put(c.snapshot); err != nil {
		c.log.Error("undo delete failed",
			logging.KeyTransaction, c.snapshot.Key,
			logging.KeyError, err)
		return false
	}

	c.log.Debug("transaction restored", logging.KeyTransaction, c.snapshot.Key)
	return true
}

// Description returns the command's label.
func (c *DeleteTransaction) Description() string { return c.description }

// IsBatch always returns false.
func (c *DeleteTransaction) IsBatch() bool { return false }

// UpdateTransaction is a command that replaces a ledger entry with a new
// value, keeping the previous value for undo.
type UpdateTransaction struct {
	store       RecordStore
	before      *model.Transaction
	after       *model.Transaction
	description string
	log         *slog.Logger
}

// NewUpdateTransaction creates a command that replaces before with after.
// Both records must share the same key.
func NewUpdateTransaction(store RecordStore, before, after *model.Transaction, log *slog.Logger) *UpdateTransaction {
	b, a := *before, *after
	a.Key = b.Key
	return &UpdateTransaction{
		store:       store,
		before:      &b,
		after:       &a,
		description: fmt.Sprintf("Update transaction: %s", a.Summary()),
		log:         logOrDefault(log),
	}
}

// Execute writes the new value.
func (c *UpdateTransaction) Execute() bool {
	if err := c.store.Put(c.after); err != nil {
		c.log.Error("update transaction failed",
			logging.KeyTransaction, c.after.Key,
			logging.KeyError, err)
		return false
	}

	c.log.Debug("transaction updated", logging.KeyTransaction, c.after.Key)
	return true
}

// Undo writes back the previous value.
func (c *UpdateTransaction) Undo() bool {
	if err := c.store.Put(c.before); err != nil {
		c.log.Error("undo update failed",
			logging.KeyTransaction, c.before.Key,
			logging.KeyError, err)
		return false
	}

	c.log.Debug("transaction reverted", logging.KeyTransaction, c.before.Key)
	return true
}

// Description returns the command's label.
func (c *UpdateTransaction) Description() string { return c.description }

// IsBatch always returns false.
func (c *UpdateTransaction) IsBatch() bool { return false }
