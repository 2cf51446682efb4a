package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finprime/finprime-backend/internal/models"
)

// TransactionFilters is the raw, loosely-typed filter bag as it arrives on
// the query string. Normalization happens in the service layer; malformed
// values degrade to "no filter", never to an error.
type TransactionFilters struct {
	Page       string
	RecentOnly bool
	Month      string // 0-based: "0" = January
	Year       string
	Type       string // "INCOME", "EXPENSE", or a "no filter" sentinel
	Category   string
	Search     string
}

// TransactionQuery is the normalized form consumed by the store. Nil pointer
// means "no predicate". The store binds every value as a query parameter.
type TransactionQuery struct {
	Type     *models.TransactionType
	Category *string
	Search   *string
	From     *time.Time // inclusive
	To       *time.Time // exclusive
	Limit    int
	Offset   int
}

// TransactionPage is the store's answer for a filtered listing: one page of
// rows plus the aggregates computed over the same predicate set.
type TransactionPage struct {
	Rows         []models.Transaction
	TotalCount   int64
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
}

type CreateTransactionRequest struct {
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Type       string          `json:"type"`
	Category   string          `json:"category"`
	Notes      string          `json:"notes,omitempty"`
	OccurredAt string          `json:"occurredAt,omitempty"` // RFC 3339 or YYYY-MM-DD; defaults to now
}

type CreateTransactionParams struct {
	Name       string
	Amount     decimal.Decimal
	Type       models.TransactionType
	Category   string
	Notes      string
	OccurredAt time.Time
}

type TransactionSummary struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	Net          decimal.Decimal `json:"net"`
}

// RecentMeta is the reduced meta for the dashboard's recent-only mode.
type RecentMeta struct {
	Mode string `json:"mode"` // always "recent"
}

type ListMeta struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalCount  int64 `json:"totalCount"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// ListTransactionsResponse carries either the recent-only shape
// (Meta = RecentMeta, no summary) or the full shape (Meta = ListMeta).
type ListTransactionsResponse struct {
	Data    []models.Transaction `json:"data"`
	Summary *TransactionSummary  `json:"summary,omitempty"`
	Meta    any                  `json:"meta"`
}
