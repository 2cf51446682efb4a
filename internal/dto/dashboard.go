package dto

import (
	"github.com/shopspring/decimal"
)

// DashboardStat pairs a current value with its percentage change: the balance
// compares against the start of today, income and expenses against the
// previous calendar month.
type DashboardStat struct {
	Value      decimal.Decimal `json:"value"`
	Percentage float64         `json:"percentage"`
}

type SavingsRate struct {
	Value float64 `json:"value"`
}

type DashboardStatsResponse struct {
	Balance     DashboardStat `json:"balance"`
	Income      DashboardStat `json:"income"`
	Expenses    DashboardStat `json:"expenses"`
	SavingsRate SavingsRate   `json:"savingsRate"`
}
