package dto

import (
	"github.com/shopspring/decimal"
)

type BudgetOverview struct {
	TotalBudget     decimal.Decimal `json:"totalBudget"`
	TotalSpent      decimal.Decimal `json:"totalSpent"`
	RemainingBudget decimal.Decimal `json:"remainingBudget"`
}

// BudgetCategoryRow merges one planned target with the actual spend observed
// for that category in the same month. Percentage is capped at 100.
type BudgetCategoryRow struct {
	Category     string          `json:"category"`
	Budgeted     decimal.Decimal `json:"budgeted"`
	Spent        decimal.Decimal `json:"spent"`
	Remaining    decimal.Decimal `json:"remaining"`
	IsOverBudget bool            `json:"isOverBudget"`
	Percentage   float64         `json:"percentage"`
}

// BudgetMonthPoint is one month of the trailing six-month trend, oldest first.
type BudgetMonthPoint struct {
	Label   string          `json:"label"` // "Jan", "Feb", ...
	Budget  decimal.Decimal `json:"budget"`
	Expense decimal.Decimal `json:"expense"`
}

type BudgetOverviewResponse struct {
	Overview   BudgetOverview      `json:"overview"`
	Categories []BudgetCategoryRow `json:"categories"`
	ChartData  []BudgetMonthPoint  `json:"chartData"`
}

type UpdateBudgetResponse struct {
	Message string `json:"message"`
	Month   string `json:"month"`
}
