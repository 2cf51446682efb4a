package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetTarget is the planned spend for one (user, category, month) triple.
// Month uses the "2006-01" key format. Targets are upserted monthly.
type BudgetTarget struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"userId"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Month     string          `json:"month"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
