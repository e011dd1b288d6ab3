package models

import "time"

// TransactionType carries the direction of a transaction; amounts are always positive.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

func (t TransactionType) IsValid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Transaction is a single income or expense line of a business unit.
type Transaction struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category,omitempty"`
	Business    Business        `json:"business"`
}

func (t Transaction) Identity() string { return t.ID }

// SignedAmount returns the amount with the sign implied by the type.
func (t Transaction) SignedAmount() float64 {
	if t.Type == TransactionExpense {
		return -t.Amount
	}
	return t.Amount
}

// TransactionInput holds the caller-supplied fields of a new transaction.
type TransactionInput struct {
	Date        time.Time
	Description string
	Amount      float64
	Type        TransactionType
	Category    string
	Business    Business
}

// TransactionPatch lists the fields an update may overwrite; nil fields are kept.
type TransactionPatch struct {
	Date        *time.Time
	Description *string
	Amount      *float64
	Type        *TransactionType
	Category    *string
	Business    *Business
}

// Apply merges the non-nil fields of p into t.
func (p TransactionPatch) Apply(t *Transaction) {
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Business != nil {
		t.Business = *p.Business
	}
}
