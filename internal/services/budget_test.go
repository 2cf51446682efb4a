package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finprime/finprime-backend/internal/errs"
	"github.com/finprime/finprime-backend/internal/models"
	"github.com/finprime/finprime-backend/pkg/helpers"
)

type stubBudgetStore struct {
	targets       map[string][]models.BudgetTarget // by month key
	spent         map[string]decimal.Decimal
	spentTotals   map[string]decimal.Decimal // by month key of the range start
	upsertedMonth string
	upserted      map[string]decimal.Decimal
	upsertErr     error
}

func (s *stubBudgetStore) Targets(_ context.Context, _ int64, month string) ([]models.BudgetTarget, error) {
	return s.targets[month], nil
}

func (s *stubBudgetStore) TargetsTotal(_ context.Context, _ int64, month string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, t := range s.targets[month] {
		total = total.Add(t.Amount)
	}
	return total, nil
}

func (s *stubBudgetStore) SpentByCategory(_ context.Context, _ int64, _, _ time.Time) (map[string]decimal.Decimal, error) {
	return s.spent, nil
}

func (s *stubBudgetStore) SpentTotal(_ context.Context, _ int64, from, _ time.Time) (decimal.Decimal, error) {
	return s.spentTotals[from.Format("2006-01")], nil
}

func (s *stubBudgetStore) UpsertTargets(_ context.Context, _ int64, month string, targets map[string]decimal.Decimal) error {
	s.upsertedMonth = month
	s.upserted = targets
	return s.upsertErr
}

func TestBudgetOverview(t *testing.T) {
	now := time.Date(2025, time.May, 15, 0, 0, 0, 0, time.UTC)
	store := &stubBudgetStore{
		targets: map[string][]models.BudgetTarget{
			"2025-05": {
				{Category: "Food & Dining", Amount: decimal.RequireFromString("400")},
				{Category: "Housing", Amount: decimal.RequireFromString("1200")},
			},
		},
		spent: map[string]decimal.Decimal{
			"Food & Dining": decimal.RequireFromString("450"),
			"Housing":       decimal.RequireFromString("1200"),
			"Transport":     decimal.RequireFromString("200"), // no target for this one
		},
		spentTotals: map[string]decimal.Decimal{
			"2025-05": decimal.RequireFromString("1850"),
		},
	}
	svc := NewBudgetService(store)
	svc.clockNow = fixedClock(now)

	resp, err := svc.Overview(helpers.TestCtx(), 1)
	if err != nil {
		t.Fatalf("Overview returned error: %v", err)
	}

	if !resp.Overview.TotalBudget.Equal(decimal.RequireFromString("1600")) {
		t.Errorf("totalBudget = %s, want 1600", resp.Overview.TotalBudget)
	}
	// The grand total includes the unbudgeted Transport spend, so it exceeds
	// the sum of the category rows.
	if !resp.Overview.TotalSpent.Equal(decimal.RequireFromString("1850")) {
		t.Errorf("totalSpent = %s, want 1850", resp.Overview.TotalSpent)
	}
	// Unlike the per-category rows, the overview remaining goes negative.
	if !resp.Overview.RemainingBudget.Equal(decimal.RequireFromString("-250")) {
		t.Errorf("remainingBudget = %s, want -250", resp.Overview.RemainingBudget)
	}

	// Rows cover budgeted categories only.
	if len(resp.Categories) != 2 {
		t.Fatalf("len(categories) = %d, want 2", len(resp.Categories))
	}
	food := resp.Categories[0]
	if !food.IsOverBudget {
		t.Error("food should be over budget")
	}
	if !food.Remaining.IsZero() {
		t.Errorf("food remaining = %s, want 0", food.Remaining)
	}
	if food.Percentage != 100 {
		t.Errorf("food percentage = %v, want capped 100", food.Percentage)
	}
	housing := resp.Categories[1]
	if housing.IsOverBudget {
		t.Error("housing spent exactly its budget, not over")
	}
	if housing.Percentage != 100 {
		t.Errorf("housing percentage = %v, want 100", housing.Percentage)
	}

	if len(resp.ChartData) != 6 {
		t.Fatalf("len(chartData) = %d, want 6", len(resp.ChartData))
	}
	// Oldest first, current month last.
	if resp.ChartData[0].Label != "Dec" || resp.ChartData[5].Label != "May" {
		t.Errorf("chart labels = %s..%s, want Dec..May", resp.ChartData[0].Label, resp.ChartData[5].Label)
	}
	if !resp.ChartData[5].Expense.Equal(decimal.RequireFromString("1850")) {
		t.Errorf("current month expense = %s, want 1850", resp.ChartData[5].Expense)
	}
}

func TestSpentPercentageZeroBudget(t *testing.T) {
	if got := spentPercentage(decimal.Zero, decimal.Zero); got != 0 {
		t.Errorf("zero budget, zero spend = %v, want 0", got)
	}
	if got := spentPercentage(decimal.Zero, decimal.NewFromInt(10)); got != 100 {
		t.Errorf("zero budget with spend = %v, want 100", got)
	}
	if got := spentPercentage(decimal.NewFromInt(200), decimal.NewFromInt(50)); got != 25 {
		t.Errorf("50/200 = %v, want 25", got)
	}
}

func TestBudgetUpdateSkipsInvalidEntries(t *testing.T) {
	now := time.Date(2025, time.May, 15, 0, 0, 0, 0, time.UTC)
	store := &stubBudgetStore{}
	svc := NewBudgetService(store)
	svc.clockNow = fixedClock(now)

	body := map[string]json.RawMessage{
		"Food & Dining": json.RawMessage(`400`),
		"Housing":       json.RawMessage(`"1200.50"`),
		"Transport":     json.RawMessage(`"not a number"`),
		"Shopping":      json.RawMessage(`-50`),
	}

	resp, err := svc.Update(helpers.TestCtx(), 1, body)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if store.upsertedMonth != "2025-05" {
		t.Errorf("month = %q, want 2025-05", store.upsertedMonth)
	}
	if len(store.upserted) != 2 {
		t.Fatalf("upserted %d entries, want 2: %v", len(store.upserted), store.upserted)
	}
	if !store.upserted["Housing"].Equal(decimal.RequireFromString("1200.50")) {
		t.Errorf("housing = %s, want 1200.50", store.upserted["Housing"])
	}
	if resp.Month != "2025-05" {
		t.Errorf("response month = %q", resp.Month)
	}
}

func TestBudgetUpdateAllInvalid(t *testing.T) {
	svc := NewBudgetService(&stubBudgetStore{})

	_, err := svc.Update(helpers.TestCtx(), 1, map[string]json.RawMessage{
		"Transport": json.RawMessage(`"n/a"`),
	})

	var ve *errs.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}
