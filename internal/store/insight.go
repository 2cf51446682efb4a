package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finprime/finprime-backend/internal/models"
)

type insightStore struct {
	pool *pgxpool.Pool
}

func NewInsightStore(pool *pgxpool.Pool) *insightStore {
	return &insightStore{pool: pool}
}

// Fresh returns the newest unexpired insight of the given type. The second
// return is false on a cache miss.
func (s *insightStore) Fresh(ctx context.Context, userID int64, insightType models.InsightType) (models.Insight, bool, error) {
	var out models.Insight
	err := s.pool.QueryRow(ctx, `SELECT id, user_id, type, content, expires_at, created_at
		FROM ai_insights
		WHERE user_id = $1 AND type = $2 AND expires_at > now()
		ORDER BY created_at DESC LIMIT 1`, userID, string(insightType)).Scan(
		&out.ID, &out.UserID, &out.Type, &out.Content, &out.ExpiresAt, &out.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Insight{}, false, nil
	}
	if err != nil {
		return models.Insight{}, false, err
	}
	return out, true, nil
}

func (s *insightStore) Save(ctx context.Context, userID int64, insightType models.InsightType, content string, expiresAt time.Time) (models.Insight, error) {
	var out models.Insight
	err := s.pool.QueryRow(ctx, `INSERT INTO ai_insights (user_id, type, content, expires_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, type, content, expires_at, created_at`,
		userID, string(insightType), content, expiresAt).Scan(
		&out.ID, &out.UserID, &out.Type, &out.Content, &out.ExpiresAt, &out.CreatedAt,
	)
	return out, err
}
