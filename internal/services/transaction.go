package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finprime/finprime-backend/internal/dto"
	"github.com/finprime/finprime-backend/internal/errs"
	"github.com/finprime/finprime-backend/internal/models"
	"github.com/finprime/finprime-backend/pkg/logger"
)

const (
	listPageSize = 15
	recentLimit  = 5
)

// transactionStore is the storage interface for transactions.
type transactionStore interface {
	List(ctx context.Context, userID int64, q dto.TransactionQuery) (dto.TransactionPage, error)
	Recent(ctx context.Context, userID int64, limit int) ([]models.Transaction, error)
	Create(ctx context.Context, userID int64, p dto.CreateTransactionParams) (models.Transaction, error)
	RangeSums(ctx context.Context, userID int64, from, to *time.Time) (income, expense decimal.Decimal, err error)
}

type transactionService struct {
	store    transactionStore
	clockNow func() time.Time
}

func NewTransactionService(store transactionStore) *transactionService {
	return &transactionService{store: store, clockNow: time.Now}
}

// noFilter reports whether a raw filter value means "do not filter". The
// frontend sends placeholder labels for untouched dropdowns.
func noFilter(v string) bool {
	switch strings.TrimSpace(v) {
	case "", "all", "All", "All Types", "All Categories":
		return true
	}
	return false
}

// normalizeQuery turns the raw filter bag into store predicates. Malformed
// values fall back to "no filter" so a stale client never sees an error.
func normalizeQuery(f dto.TransactionFilters) dto.TransactionQuery {
	q := dto.TransactionQuery{}

	if !noFilter(f.Type) {
		if t, ok := models.ParseTransactionType(f.Type); ok {
			q.Type = &t
		}
	}
	if !noFilter(f.Category) {
		c := strings.TrimSpace(f.Category)
		q.Category = &c
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		q.Search = &s
	}

	// Month and year must both parse to produce a range.
	if f.Month != "" && f.Year != "" {
		month, errM := strconv.Atoi(f.Month)
		year, errY := strconv.Atoi(f.Year)
		if errM == nil && errY == nil {
			if r, ok := monthRangeOf(month, year); ok {
				q.From = &r.Start
				q.To = &r.End
			}
		}
	}

	return q
}

func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// List serves both listing modes: the dashboard's recent feed and the
// filtered, paginated table with its summary.
func (s *transactionService) List(ctx context.Context, userID int64, f dto.TransactionFilters) (dto.ListTransactionsResponse, error) {
	if f.RecentOnly {
		rows, err := s.store.Recent(ctx, userID, recentLimit)
		if err != nil {
			return dto.ListTransactionsResponse{}, errs.NewDatabaseError("list recent transactions", "failed to load transactions", err)
		}
		return dto.ListTransactionsResponse{
			Data: rows,
			Meta: dto.RecentMeta{Mode: "recent"},
		}, nil
	}

	page := parsePage(f.Page)
	q := normalizeQuery(f)
	q.Limit = listPageSize
	q.Offset = (page - 1) * listPageSize

	result, err := s.store.List(ctx, userID, q)
	if err != nil {
		return dto.ListTransactionsResponse{}, errs.NewDatabaseError("list transactions", "failed to load transactions", err)
	}
	if result.Rows == nil {
		// An empty page serializes as [], not null.
		result.Rows = []models.Transaction{}
	}

	totalPages := int((result.TotalCount + listPageSize - 1) / listPageSize)
	return dto.ListTransactionsResponse{
		Data: result.Rows,
		Summary: &dto.TransactionSummary{
			TotalIncome:  result.TotalIncome,
			TotalExpense: result.TotalExpense,
			Net:          result.TotalIncome.Sub(result.TotalExpense),
		},
		Meta: dto.ListMeta{
			Page:        page,
			Limit:       listPageSize,
			TotalCount:  result.TotalCount,
			TotalPages:  totalPages,
			HasNextPage: page < totalPages,
			HasPrevPage: page > 1,
		},
	}, nil
}

func (s *transactionService) Create(ctx context.Context, userID int64, req dto.CreateTransactionRequest) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Transaction{}, errs.NewValidationError("name is required")
	}
	if req.Amount.IsNegative() {
		return models.Transaction{}, errs.NewValidationError("amount must not be negative")
	}
	txType, ok := models.ParseTransactionType(req.Type)
	if !ok {
		return models.Transaction{}, errs.NewValidationError(`type must be "INCOME" or "EXPENSE"`)
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return models.Transaction{}, errs.NewValidationError("category is required")
	}

	occurredAt, err := parseOccurredAt(req.OccurredAt, s.clockNow)
	if err != nil {
		return models.Transaction{}, err
	}

	tx, err := s.store.Create(ctx, userID, dto.CreateTransactionParams{
		Name:       name,
		Amount:     req.Amount,
		Type:       txType,
		Category:   category,
		Notes:      strings.TrimSpace(req.Notes),
		OccurredAt: occurredAt,
	})
	if err != nil {
		return models.Transaction{}, errs.NewDatabaseError("create transaction", "failed to create transaction", err)
	}

	log.Info("transaction created", "transaction_id", tx.ID, "type", tx.Type)
	return tx, nil
}

func parseOccurredAt(raw string, clockNow func() time.Time) (time.Time, error) {
	if raw == "" {
		return clockNow().UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Time{}, errs.NewValidationError("occurredAt must be RFC 3339 or YYYY-MM-DD")
}

// Stats computes the dashboard header numbers: all-time balance with a daily
// change, plus the current month's income and expenses, each with a change
// against the previous month.
func (s *transactionService) Stats(ctx context.Context, userID int64) (dto.DashboardStatsResponse, error) {
	now := s.clockNow().UTC()
	current := monthRangeAt(now)
	previous := monthRangeAt(current.Start.AddDate(0, -1, 0))
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	allIncome, allExpense, err := s.store.RangeSums(ctx, userID, nil, nil)
	if err != nil {
		return dto.DashboardStatsResponse{}, errs.NewDatabaseError("dashboard stats", "failed to load stats", err)
	}
	// Balance compares against the start of today, not last month, so the
	// header answers "did I get richer today".
	ydayIncome, ydayExpense, err := s.store.RangeSums(ctx, userID, nil, &startOfToday)
	if err != nil {
		return dto.DashboardStatsResponse{}, errs.NewDatabaseError("dashboard stats", "failed to load stats", err)
	}
	curIncome, curExpense, err := s.store.RangeSums(ctx, userID, &current.Start, &current.End)
	if err != nil {
		return dto.DashboardStatsResponse{}, errs.NewDatabaseError("dashboard stats", "failed to load stats", err)
	}
	prevIncome, prevExpense, err := s.store.RangeSums(ctx, userID, &previous.Start, &previous.End)
	if err != nil {
		return dto.DashboardStatsResponse{}, errs.NewDatabaseError("dashboard stats", "failed to load stats", err)
	}

	balance := allIncome.Sub(allExpense)
	ydayBalance := ydayIncome.Sub(ydayExpense)
	curNet := curIncome.Sub(curExpense)

	savingsRate := 0.0
	if curIncome.IsPositive() {
		rate, _ := curNet.Div(curIncome).Mul(decimal.NewFromInt(100)).Round(1).Float64()
		savingsRate = rate
	}

	return dto.DashboardStatsResponse{
		Balance:     dto.DashboardStat{Value: balance, Percentage: percentChange(ydayBalance, balance)},
		Income:      dto.DashboardStat{Value: curIncome, Percentage: percentChange(prevIncome, curIncome)},
		Expenses:    dto.DashboardStat{Value: curExpense, Percentage: percentChange(prevExpense, curExpense)},
		SavingsRate: dto.SavingsRate{Value: savingsRate},
	}, nil
}

// percentChange follows the dashboard convention: with no previous value the
// change is 100 when anything happened this month, otherwise 0.
func percentChange(previous, current decimal.Decimal) float64 {
	if previous.IsZero() {
		if current.IsZero() {
			return 0
		}
		return 100
	}
	pct, _ := current.Sub(previous).Div(previous.Abs()).Mul(decimal.NewFromInt(100)).Round(1).Float64()
	return pct
}
