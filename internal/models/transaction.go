package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

// ParseTransactionType normalizes casing and reports whether the value is a
// member of the enum.
func ParseTransactionType(s string) (TransactionType, bool) {
	switch TransactionType(strings.ToUpper(s)) {
	case TransactionIncome:
		return TransactionIncome, true
	case TransactionExpense:
		return TransactionExpense, true
	}
	return "", false
}

// Transaction is a single ledger entry. Amount is always >= 0; the sign is
// carried by Type. Rows are immutable once written.
type Transaction struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"userId"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Type       TransactionType `json:"type"`
	Category   string          `json:"category"`
	Notes      string          `json:"notes,omitempty"`
	OccurredAt time.Time       `json:"occurredAt"`
	CreatedAt  time.Time       `json:"createdAt"`
}
