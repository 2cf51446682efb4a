package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/finprime/finprime-backend/internal/models"
)

type budgetStore struct {
	pool *pgxpool.Pool
}

func NewBudgetStore(pool *pgxpool.Pool) *budgetStore {
	return &budgetStore{pool: pool}
}

// Targets returns the user's budget rows for one month key ("2006-01"),
// ordered by category for stable output.
func (s *budgetStore) Targets(ctx context.Context, userID int64, month string) ([]models.BudgetTarget, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, user_id, category, amount::text, month, created_at, updated_at
		FROM budgets WHERE user_id = $1 AND month = $2 ORDER BY category`, userID, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.BudgetTarget{}
	for rows.Next() {
		var b models.BudgetTarget
		var amount string
		if err := rows.Scan(&b.ID, &b.UserID, &b.Category, &amount, &b.Month, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		if b.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *budgetStore) TargetsTotal(ctx context.Context, userID int64, month string) (decimal.Decimal, error) {
	var total string
	err := s.pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0)::text FROM budgets
		WHERE user_id = $1 AND month = $2`, userID, month).Scan(&total)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromString(total)
}

// SpentByCategory sums expenses per category over [from, to).
func (s *budgetStore) SpentByCategory(ctx context.Context, userID int64, from, to time.Time) (map[string]decimal.Decimal, error) {
	rows, err := s.pool.Query(ctx, `SELECT category, COALESCE(SUM(amount), 0)::text FROM transactions
		WHERE user_id = $1 AND type = 'EXPENSE' AND occurred_at >= $2 AND occurred_at < $3
		GROUP BY category`, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	spent := map[string]decimal.Decimal{}
	for rows.Next() {
		var category, sum string
		if err := rows.Scan(&category, &sum); err != nil {
			return nil, err
		}
		if spent[category], err = decimal.NewFromString(sum); err != nil {
			return nil, err
		}
	}
	return spent, rows.Err()
}

func (s *budgetStore) SpentTotal(ctx context.Context, userID int64, from, to time.Time) (decimal.Decimal, error) {
	var total string
	err := s.pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0)::text FROM transactions
		WHERE user_id = $1 AND type = 'EXPENSE' AND occurred_at >= $2 AND occurred_at < $3`,
		userID, from, to).Scan(&total)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromString(total)
}

// UpsertTargets writes every entry in one transaction so a partial batch
// never becomes visible.
func (s *budgetStore) UpsertTargets(ctx context.Context, userID int64, month string, targets map[string]decimal.Decimal) error {
	if len(targets) == 0 {
		return nil
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for category, amount := range targets {
		_, err := tx.Exec(ctx, `INSERT INTO budgets (user_id, category, amount, month)
			VALUES ($1, $2, $3::numeric, $4)
			ON CONFLICT (user_id, category, month)
			DO UPDATE SET amount = EXCLUDED.amount, updated_at = now()`,
			userID, category, amount.String(), month)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
