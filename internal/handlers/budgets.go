package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finprime/finprime-backend/internal/dto"
	"github.com/finprime/finprime-backend/internal/errs"
	"github.com/finprime/finprime-backend/internal/middleware"
	"github.com/finprime/finprime-backend/internal/response"
)

type BudgetService interface {
	Overview(ctx context.Context, userID int64) (dto.BudgetOverviewResponse, error)
	Update(ctx context.Context, userID int64, body map[string]json.RawMessage) (dto.UpdateBudgetResponse, error)
}

type budgetHandlers struct {
	ResponseHandler response.ResponseHandler
	BudgetSvc       BudgetService
}

func NewBudgetHandlers(deps *Deps) *budgetHandlers {
	return &budgetHandlers{
		ResponseHandler: deps.ResponseHandler,
		BudgetSvc:       deps.BudgetSvc,
	}
}

func (h *budgetHandlers) BudgetRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Overview)
	r.Put("/", h.Update)
	return r
}

func (h *budgetHandlers) Overview(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	resp, err := h.BudgetSvc.Overview(r.Context(), userID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}

// Update accepts a flat {category: amount} object so the budget form can
// submit every field at once.
func (h *budgetHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	if len(body) == 0 {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("request body must not be empty"))
		return
	}

	userID := middleware.UserID(r.Context())
	resp, err := h.BudgetSvc.Update(r.Context(), userID, body)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}
