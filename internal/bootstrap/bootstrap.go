package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	vertexclient "github.com/finprime/finprime-backend/internal/client/vertex"
	"github.com/finprime/finprime-backend/internal/config"
	"github.com/finprime/finprime-backend/pkg/logger"
)

type Bootstrap struct {
	Log           *slog.Logger
	Pool          *pgxpool.Pool
	VertexAdapter *vertexclient.Adapter
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewJSONHandler)
	bs.Pool, err = InitPostgres(applicationCtx, cfg.DatabaseURL)
	if err != nil {
		return bs, err
	}
	bs.VertexAdapter, err = vertexclient.NewAdapter(applicationCtx, bs.Log, cfg.ProjectID, cfg.Region, cfg.VertexModel)
	if err != nil {
		return bs, err
	}

	return bs, nil
}

func (bs *Bootstrap) Close() {
	if bs.VertexAdapter != nil {
		_ = bs.VertexAdapter.Close()
	}
	if bs.Pool != nil {
		bs.Pool.Close()
	}
}
