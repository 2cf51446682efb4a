package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/finprime/finprime-backend/internal/bootstrap"
	"github.com/finprime/finprime-backend/internal/config"
	"github.com/finprime/finprime-backend/internal/handlers"
	"github.com/finprime/finprime-backend/internal/middleware"
	"github.com/finprime/finprime-backend/internal/response"
	"github.com/finprime/finprime-backend/internal/router"
	"github.com/finprime/finprime-backend/internal/services"
	"github.com/finprime/finprime-backend/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	err = store.RunMigrations(cfg.DatabaseURL)
	exitOnError("migrations failed", err, bs.Log)

	// stores
	tstore := store.NewTransactionStore(bs.Pool)
	bstore := store.NewBudgetStore(bs.Pool)
	sstore := store.NewSettingsStore(bs.Pool)
	istore := store.NewInsightStore(bs.Pool)

	// services
	tserv := services.NewTransactionService(tstore)
	bserv := services.NewBudgetService(bstore)
	sserv := services.NewSettingsService(sstore)
	aiserv := services.NewAIService(bs.VertexAdapter, istore, tstore, bstore, services.AIServiceConfig{
		Model:        cfg.VertexModel,
		Timeout:      cfg.AITimeout,
		DashboardTTL: cfg.DashboardInsightTTL,
		BudgetTTL:    cfg.BudgetInsightTTL,
	})

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Auth = middleware.NewMiddleware([]byte(cfg.JWTSecret), rh)
	deps.TransactionSvc = tserv
	deps.BudgetSvc = bserv
	deps.AISvc = aiserv
	deps.SettingsSvc = sserv

	// router
	r := router.NewRouter(deps)
	bs.Log.Info("listening", "port", cfg.Port)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
