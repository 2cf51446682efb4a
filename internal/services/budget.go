package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finprime/finprime-backend/internal/dto"
	"github.com/finprime/finprime-backend/internal/errs"
	"github.com/finprime/finprime-backend/internal/models"
	"github.com/finprime/finprime-backend/pkg/logger"
)

const trendMonths = 6

// budgetStore is the storage interface for budget targets and spend totals.
type budgetStore interface {
	Targets(ctx context.Context, userID int64, month string) ([]models.BudgetTarget, error)
	TargetsTotal(ctx context.Context, userID int64, month string) (decimal.Decimal, error)
	SpentByCategory(ctx context.Context, userID int64, from, to time.Time) (map[string]decimal.Decimal, error)
	SpentTotal(ctx context.Context, userID int64, from, to time.Time) (decimal.Decimal, error)
	UpsertTargets(ctx context.Context, userID int64, month string, targets map[string]decimal.Decimal) error
}

type budgetService struct {
	store    budgetStore
	clockNow func() time.Time
}

func NewBudgetService(store budgetStore) *budgetService {
	return &budgetService{store: store, clockNow: time.Now}
}

// Overview assembles the budget page: totals, per-category rows for the
// current month, and the trailing six-month budget-vs-expense chart.
func (s *budgetService) Overview(ctx context.Context, userID int64) (dto.BudgetOverviewResponse, error) {
	current := monthRangeAt(s.clockNow())

	targets, err := s.store.Targets(ctx, userID, current.MonthKey)
	if err != nil {
		return dto.BudgetOverviewResponse{}, errs.NewDatabaseError("budget targets", "failed to load budgets", err)
	}
	spent, err := s.store.SpentByCategory(ctx, userID, current.Start, current.End)
	if err != nil {
		return dto.BudgetOverviewResponse{}, errs.NewDatabaseError("budget spend", "failed to load budgets", err)
	}

	categories := make([]dto.BudgetCategoryRow, 0, len(targets))
	totalBudget := decimal.Zero
	for _, target := range targets {
		categorySpent := spent[target.Category]
		remaining := target.Amount.Sub(categorySpent)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		categories = append(categories, dto.BudgetCategoryRow{
			Category:     target.Category,
			Budgeted:     target.Amount,
			Spent:        categorySpent,
			Remaining:    remaining,
			IsOverBudget: categorySpent.GreaterThan(target.Amount),
			Percentage:   spentPercentage(target.Amount, categorySpent),
		})
		totalBudget = totalBudget.Add(target.Amount)
	}

	// The grand total counts every expense this month, including spend in
	// categories that have no target, so it is a separate query rather than
	// the sum of the rows above. Remaining may go negative.
	totalSpent, err := s.store.SpentTotal(ctx, userID, current.Start, current.End)
	if err != nil {
		return dto.BudgetOverviewResponse{}, errs.NewDatabaseError("budget spend total", "failed to load budgets", err)
	}
	remainingBudget := totalBudget.Sub(totalSpent)

	chart, err := s.trendChart(ctx, userID)
	if err != nil {
		return dto.BudgetOverviewResponse{}, err
	}

	return dto.BudgetOverviewResponse{
		Overview: dto.BudgetOverview{
			TotalBudget:     totalBudget,
			TotalSpent:      totalSpent,
			RemainingBudget: remainingBudget,
		},
		Categories: categories,
		ChartData:  chart,
	}, nil
}

func (s *budgetService) trendChart(ctx context.Context, userID int64) ([]dto.BudgetMonthPoint, error) {
	months := trailingMonths(s.clockNow(), trendMonths)
	points := make([]dto.BudgetMonthPoint, 0, len(months))
	for _, m := range months {
		budget, err := s.store.TargetsTotal(ctx, userID, m.MonthKey)
		if err != nil {
			return nil, errs.NewDatabaseError("budget trend", "failed to load budgets", err)
		}
		expense, err := s.store.SpentTotal(ctx, userID, m.Start, m.End)
		if err != nil {
			return nil, errs.NewDatabaseError("budget trend", "failed to load budgets", err)
		}
		points = append(points, dto.BudgetMonthPoint{
			Label:   m.Label,
			Budget:  budget,
			Expense: expense,
		})
	}
	return points, nil
}

// spentPercentage caps at 100. A zero budget reads as fully used the moment
// anything is spent against it.
func spentPercentage(budgeted, spent decimal.Decimal) float64 {
	if budgeted.IsZero() {
		if spent.IsZero() {
			return 0
		}
		return 100
	}
	pct, _ := spent.Div(budgeted).Mul(decimal.NewFromInt(100)).Round(1).Float64()
	if pct > 100 {
		return 100
	}
	return pct
}

// Update upserts the posted category amounts for the current month. Entries
// that are not non-negative numbers are skipped rather than failing the batch.
func (s *budgetService) Update(ctx context.Context, userID int64, body map[string]json.RawMessage) (dto.UpdateBudgetResponse, error) {
	log := logger.FromContext(ctx)
	current := monthRangeAt(s.clockNow())

	targets := make(map[string]decimal.Decimal, len(body))
	for category, raw := range body {
		var amount decimal.Decimal
		if err := json.Unmarshal(raw, &amount); err != nil {
			// Also accept quoted numerics, matching lenient clients.
			var str string
			if err := json.Unmarshal(raw, &str); err != nil {
				log.Warn("skipping non-numeric budget entry", "category", category)
				continue
			}
			var convErr error
			if amount, convErr = decimal.NewFromString(str); convErr != nil {
				log.Warn("skipping non-numeric budget entry", "category", category)
				continue
			}
		}
		if amount.IsNegative() {
			log.Warn("skipping negative budget entry", "category", category)
			continue
		}
		targets[category] = amount
	}

	if len(targets) == 0 {
		return dto.UpdateBudgetResponse{}, errs.NewValidationError("no valid budget entries provided")
	}

	if err := s.store.UpsertTargets(ctx, userID, current.MonthKey, targets); err != nil {
		return dto.UpdateBudgetResponse{}, errs.NewDatabaseError("upsert budgets", "failed to save budgets", err)
	}

	log.Info("budgets updated", "month", current.MonthKey, "categories", len(targets))
	return dto.UpdateBudgetResponse{
		Message: "Budget updated successfully",
		Month:   current.MonthKey,
	}, nil
}
