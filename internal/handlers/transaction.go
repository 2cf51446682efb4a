package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finprime/finprime-backend/internal/dto"
	"github.com/finprime/finprime-backend/internal/errs"
	"github.com/finprime/finprime-backend/internal/middleware"
	"github.com/finprime/finprime-backend/internal/models"
	"github.com/finprime/finprime-backend/internal/response"
)

type TransactionService interface {
	List(ctx context.Context, userID int64, f dto.TransactionFilters) (dto.ListTransactionsResponse, error)
	Create(ctx context.Context, userID int64, req dto.CreateTransactionRequest) (models.Transaction, error)
	Stats(ctx context.Context, userID int64) (dto.DashboardStatsResponse, error)
}

type transactionHandlers struct {
	ResponseHandler response.ResponseHandler
	TransactionSvc  TransactionService
}

func NewTransactionHandlers(deps *Deps) *transactionHandlers {
	return &transactionHandlers{
		ResponseHandler: deps.ResponseHandler,
		TransactionSvc:  deps.TransactionSvc,
	}
}

func (h *transactionHandlers) TransactionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/stats", h.Stats)
	return r
}

func (h *transactionHandlers) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := dto.TransactionFilters{
		Page:       q.Get("page"),
		RecentOnly: q.Get("recentOnly") == "true",
		Month:      q.Get("month"),
		Year:       q.Get("year"),
		Type:       q.Get("type"),
		Category:   q.Get("category"),
		Search:     q.Get("search"),
	}

	userID := middleware.UserID(r.Context())
	resp, err := h.TransactionSvc.List(r.Context(), userID, filters)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}

func (h *transactionHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var body dto.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	userID := middleware.UserID(r.Context())
	tx, err := h.TransactionSvc.Create(r.Context(), userID, body)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, tx)
}

func (h *transactionHandlers) Stats(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	stats, err := h.TransactionSvc.Stats(r.Context(), userID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, stats)
}
