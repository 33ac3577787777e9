package storage

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/danreyes/reckon/internal/model"
)

// TransactionRepo provides operations for Transaction entities.
type TransactionRepo struct {
	db *DB
}

// NewTransactionRepo creates a new transaction repository.
func NewTransactionRepo(db *DB) *TransactionRepo {
	return &TransactionRepo{db: db}
}

// Create creates a new transaction with a generated key.
func (r *TransactionRepo) Create(tx *model.Transaction) error {
	// UUID v7 keys sort by creation time within a project prefix
	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	tx.Key = model.GenerateTransactionKey(tx.ProjectSID, id.String())
	return r.db.Set(tx)
}

// Put stores a transaction under its existing key. Used when restoring a
// previously deleted record so the original key is preserved.
func (r *TransactionRepo) Put(tx *model.Transaction) error {
	return r.db.Set(tx)
}

// Get retrieves a transaction by key.
func (r *TransactionRepo) Get(key string) (*model.Transaction, error) {
	tx := &model.Transaction{}
	if err := r.db.Get(key, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// Update updates an existing transaction.
func (r *TransactionRepo) Update(tx *model.Transaction) error {
	return r.db.Set(tx)
}

// Delete removes a transaction by key.
func (r *TransactionRepo) Delete(key string) error {
	return r.db.Delete(key)
}

// List retrieves all transactions.
func (r *TransactionRepo) List() ([]*model.Transaction, error) {
	return GetAllByPrefix(r.db, model.PrefixTransaction+":", func() *model.Transaction {
		return &model.Transaction{}
	})
}

// ListByProject retrieves all transactions for a specific project.
func (r *TransactionRepo) ListByProject(projectSID string) ([]*model.Transaction, error) {
	prefix := model.PrefixTransaction + ":" + projectSID + ":"
	return GetAllByPrefix(r.db, prefix, func() *model.Transaction {
		return &model.Transaction{}
	})
}

// Filter defines filtering criteria for transactions.
type Filter struct {
	ProjectSID string
	Kind       model.Kind
	From       time.Time
	Until      time.Time
	Limit      int
}

// ListFiltered retrieves transactions matching the filter, newest first.
func (r *TransactionRepo) ListFiltered(filter Filter) ([]*model.Transaction, error) {
	prefix := model.PrefixTransaction + ":"
	if filter.ProjectSID != "" {
		prefix += filter.ProjectSID + ":"
	}

	filterFunc := func(tx *model.Transaction) bool {
		if filter.Kind != "" && tx.Kind != filter.Kind {
			return false
		}
		if !filter.From.IsZero() && tx.Date.Before(filter.From) {
			return false
		}
		if !filter.Until.IsZero() && tx.Date.After(filter.Until) {
			return false
		}
		return true
	}

	// Limit is applied after sorting, not during iteration
	results, err := GetFilteredByPrefix(r.db, prefix, func() *model.Transaction {
		return &model.Transaction{}
	}, filterFunc, 0)
	if err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Date.After(results[j].Date)
	})

	if filter.Limit > 0 && len(results) > filter.Limit {
		results = results[:filter.Limit]
	}

	return results, nil
}

// Totals aggregates income, expenses, and net balance over the given transactions.
type Totals struct {
	Income   int64
	Expenses int64
	Net      int64
	Count    int
}

// Aggregate computes totals for a set of transactions.
func Aggregate(txs []*model.Transaction) Totals {
	var t Totals
	for _, tx := range txs {
		switch tx.Kind {
		case model.KindIncome:
			t.Income += tx.Amount
			t.Net += tx.Amount
		case model.KindExpense:
			t.Expenses += tx.Amount
			t.Net -= tx.Amount
		}
		t.Count++
	}
	return t
}
