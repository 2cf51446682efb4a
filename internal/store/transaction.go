package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/finprime/finprime-backend/internal/dto"
	"github.com/finprime/finprime-backend/internal/models"
)

// Amounts are stored as numeric(12,2) and selected with a ::text cast so the
// scan goes through decimal.NewFromString without any float round trip.
const transactionColumns = `id, user_id, name, amount::text, type, category, COALESCE(notes, ''), occurred_at, created_at`

type transactionStore struct {
	pool *pgxpool.Pool
}

func NewTransactionStore(pool *pgxpool.Pool) *transactionStore {
	return &transactionStore{pool: pool}
}

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var t models.Transaction
	var amount string
	err := row.Scan(&t.ID, &t.UserID, &t.Name, &amount, &t.Type, &t.Category, &t.Notes, &t.OccurredAt, &t.CreatedAt)
	if err != nil {
		return models.Transaction{}, err
	}
	t.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return models.Transaction{}, err
	}
	return t, nil
}

func collectTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	defer rows.Close()
	out := []models.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// List runs the count, income/expense summary and page queries against one
// read-only snapshot so the meta never disagrees with the rows.
func (s *transactionStore) List(ctx context.Context, userID int64, q dto.TransactionQuery) (dto.TransactionPage, error) {
	where := buildTransactionWhere(userID, q)

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return dto.TransactionPage{}, err
	}
	defer tx.Rollback(ctx)

	var page dto.TransactionPage

	countSQL := `SELECT COUNT(*) FROM transactions` + where.clause()
	if err := tx.QueryRow(ctx, countSQL, where.args...).Scan(&page.TotalCount); err != nil {
		return dto.TransactionPage{}, err
	}

	summarySQL := `SELECT
		COALESCE(SUM(CASE WHEN type = 'INCOME' THEN amount ELSE 0 END), 0)::text,
		COALESCE(SUM(CASE WHEN type = 'EXPENSE' THEN amount ELSE 0 END), 0)::text
		FROM transactions` + where.clause()
	var income, expense string
	if err := tx.QueryRow(ctx, summarySQL, where.args...).Scan(&income, &expense); err != nil {
		return dto.TransactionPage{}, err
	}
	if page.TotalIncome, err = decimal.NewFromString(income); err != nil {
		return dto.TransactionPage{}, err
	}
	if page.TotalExpense, err = decimal.NewFromString(expense); err != nil {
		return dto.TransactionPage{}, err
	}

	limitPos := where.arg(q.Limit)
	offsetPos := where.arg(q.Offset)
	pageSQL := `SELECT ` + transactionColumns + ` FROM transactions` + where.clause() +
		` ORDER BY occurred_at DESC, id DESC LIMIT ` + limitPos + ` OFFSET ` + offsetPos

	rows, err := tx.Query(ctx, pageSQL, where.args...)
	if err != nil {
		return dto.TransactionPage{}, err
	}
	if page.Rows, err = collectTransactions(rows); err != nil {
		return dto.TransactionPage{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return dto.TransactionPage{}, err
	}
	return page, nil
}

// Recent returns the newest transactions without count or summary work.
func (s *transactionStore) Recent(ctx context.Context, userID int64, limit int) ([]models.Transaction, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+transactionColumns+` FROM transactions
		WHERE user_id = $1 ORDER BY occurred_at DESC, id DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	return collectTransactions(rows)
}

func (s *transactionStore) Create(ctx context.Context, userID int64, p dto.CreateTransactionParams) (models.Transaction, error) {
	row := s.pool.QueryRow(ctx, `INSERT INTO transactions (user_id, name, amount, type, category, notes, occurred_at)
		VALUES ($1, $2, $3::numeric, $4, $5, NULLIF($6, ''), $7)
		RETURNING `+transactionColumns,
		userID, p.Name, p.Amount.String(), string(p.Type), p.Category, p.Notes, p.OccurredAt)
	return scanTransaction(row)
}

// RangeSums returns income and expense totals over [from, to). Nil bounds
// leave that side of the range open.
func (s *transactionStore) RangeSums(ctx context.Context, userID int64, from, to *time.Time) (income, expense decimal.Decimal, err error) {
	where := buildTransactionWhere(userID, dto.TransactionQuery{From: from, To: to})
	sql := `SELECT
		COALESCE(SUM(CASE WHEN type = 'INCOME' THEN amount ELSE 0 END), 0)::text,
		COALESCE(SUM(CASE WHEN type = 'EXPENSE' THEN amount ELSE 0 END), 0)::text
		FROM transactions` + where.clause()

	var inc, exp string
	if err = s.pool.QueryRow(ctx, sql, where.args...).Scan(&inc, &exp); err != nil {
		return
	}
	if income, err = decimal.NewFromString(inc); err != nil {
		return
	}
	expense, err = decimal.NewFromString(exp)
	return
}

func (s *transactionStore) CountAll(ctx context.Context, userID int64) (int64, error) {
	var n int64
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}

// TopExpenses returns the largest expenses over [from, to).
func (s *transactionStore) TopExpenses(ctx context.Context, userID int64, from, to time.Time, limit int) ([]models.Transaction, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+transactionColumns+` FROM transactions
		WHERE user_id = $1 AND type = 'EXPENSE' AND occurred_at >= $2 AND occurred_at < $3
		ORDER BY amount DESC, id DESC LIMIT $4`, userID, from, to, limit)
	if err != nil {
		return nil, err
	}
	return collectTransactions(rows)
}

// ListSince returns transactions at or after from, newest first.
func (s *transactionStore) ListSince(ctx context.Context, userID int64, from time.Time, limit int) ([]models.Transaction, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+transactionColumns+` FROM transactions
		WHERE user_id = $1 AND occurred_at >= $2
		ORDER BY occurred_at DESC, id DESC LIMIT $3`, userID, from, limit)
	if err != nil {
		return nil, err
	}
	return collectTransactions(rows)
}
