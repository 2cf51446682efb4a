package handlers

import (
	"log/slog"

	"github.com/finprime/finprime-backend/internal/middleware"
	"github.com/finprime/finprime-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Auth            *middleware.Middleware
	TransactionSvc  TransactionService
	BudgetSvc       BudgetService
	AISvc           AIService
	SettingsSvc     SettingsService
}
