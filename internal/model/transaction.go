package model

import (
	"fmt"
	"time"
)

// Kind classifies a transaction as money in or money out.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Transaction represents a single ledger entry within a project.
// Amount is stored in cents to avoid floating-point drift.
type Transaction struct {
	Key        string    `json:"key"`
	ProjectSID string    `json:"project_sid" validate:"required,max=32,sid"`
	Date       time.Time `json:"date" validate:"required"`
	Amount     int64     `json:"amount_cents" validate:"required"`
	Kind       Kind      `json:"kind" validate:"required,oneof=income expense"`
	Note       string    `json:"note,omitempty" validate:"max=4096"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

// SetKey sets the database key for this transaction.
func (t *Transaction) SetKey(key string) {
	t.Key = key
}

// GetKey returns the database key for this transaction.
func (t *Transaction) GetKey() string {
	return t.Key
}

// GenerateTransactionKey generates a database key for a transaction.
// Keys embed the project SID so a project's entries share a prefix.
func GenerateTransactionKey(projectSID, id string) string {
	return fmt.Sprintf("%s:%s:%s", PrefixTransaction, projectSID, id)
}

// AmountString formats the amount in cents as a currency string.
func (t *Transaction) AmountString() string {
	sign := ""
	cents := t.Amount
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// Summary returns a short human-readable label for this transaction,
// used in undo/redo history descriptions.
func (t *Transaction) Summary() string {
	note := t.Note
	if len(note) > 30 {
		note = note[:30]
	}
	if note == "" {
		note = "no note"
	}
	return fmt.Sprintf("%s %s %s - %s", t.Date.Format("2006-01-02"), t.Kind, t.AmountString(), note)
}

// NewTransaction creates a new transaction with the given parameters.
func NewTransaction(projectSID string, date time.Time, amount int64, kind Kind, note string) *Transaction {
	return &Transaction{
		ProjectSID: projectSID,
		Date:       date,
		Amount:     amount,
		Kind:       kind,
		Note:       note,
		CreatedAt:  time.Now(),
	}
}
