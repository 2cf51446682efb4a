package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finprime/finprime-backend/internal/dto"
	"github.com/finprime/finprime-backend/internal/errs"
	"github.com/finprime/finprime-backend/internal/models"
)

type settingsStore struct {
	pool *pgxpool.Pool
}

func NewSettingsStore(pool *pgxpool.Pool) *settingsStore {
	return &settingsStore{pool: pool}
}

// Get joins profile and preferences. A user without a settings row gets the
// defaults baked into the COALESCEs.
func (s *settingsStore) Get(ctx context.Context, userID int64) (models.Settings, error) {
	var out models.Settings
	err := s.pool.QueryRow(ctx, `SELECT
		u.first_name, u.last_name, u.email, COALESCE(u.avatar, ''),
		COALESCE(st.theme_preference, 'System'),
		COALESCE(st.currency, 'NGN'),
		COALESCE(st.ai_insights, TRUE),
		COALESCE(st.budget_alerts, FALSE)
		FROM users u
		LEFT JOIN settings st ON st.user_id = u.id
		WHERE u.id = $1`, userID).Scan(
		&out.FirstName, &out.LastName, &out.Email, &out.Avatar,
		&out.ThemePreference, &out.Currency, &out.AIInsights, &out.BudgetAlerts,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Settings{}, errs.NewNotFoundError("user not found")
	}
	return out, err
}

// Update applies the present fields to their owning tables inside one
// transaction. Caller guarantees at least one field is set.
func (s *settingsStore) Update(ctx context.Context, userID int64, req dto.UpdateSettingsRequest) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if req.HasProfileFields() {
		sets := []string{}
		args := []any{}
		appendSet := func(col string, v any) {
			args = append(args, v)
			sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
		}
		if req.FirstName != nil {
			appendSet("first_name", *req.FirstName)
		}
		if req.LastName != nil {
			appendSet("last_name", *req.LastName)
		}
		if req.Avatar != nil {
			appendSet("avatar", *req.Avatar)
		}
		args = append(args, userID)
		sql := fmt.Sprintf("UPDATE users SET %s, updated_at = now() WHERE id = $%d",
			strings.Join(sets, ", "), len(args))
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}
	}

	if req.HasPreferenceFields() {
		// Upsert so the first preference write creates the row.
		_, err := tx.Exec(ctx, `INSERT INTO settings (user_id, theme_preference, currency, ai_insights, budget_alerts)
			VALUES ($1,
				COALESCE($2, 'System'),
				COALESCE($3, 'NGN'),
				COALESCE($4, TRUE),
				COALESCE($5, FALSE))
			ON CONFLICT (user_id) DO UPDATE SET
				theme_preference = COALESCE($2, settings.theme_preference),
				currency = COALESCE($3, settings.currency),
				ai_insights = COALESCE($4, settings.ai_insights),
				budget_alerts = COALESCE($5, settings.budget_alerts),
				updated_at = now()`,
			userID, req.ThemePreference, req.Currency, req.AIInsights, req.BudgetAlerts)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
