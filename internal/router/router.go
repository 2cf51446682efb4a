package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/finprime/finprime-backend/internal/handlers"
	"github.com/finprime/finprime-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	txh := handlers.NewTransactionHandlers(deps)
	bh := handlers.NewBudgetHandlers(deps)
	aih := handlers.NewAIHandlers(deps)
	sh := handlers.NewSettingsHandlers(deps)

	// Everything below requires a bearer token.
	r.Group(func(r chi.Router) {
		r.Use(deps.Auth.Auth)
		r.Mount("/transactions", txh.TransactionRoutes())
		r.Mount("/budgets", bh.BudgetRoutes())
		r.Mount("/ai", aih.AIRoutes())
		r.Mount("/settings", sh.SettingsRoutes())
	})

	return r
}
