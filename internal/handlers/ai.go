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

type AIService interface {
	Insight(ctx context.Context, userID int64, insightType string) (dto.InsightResponse, error)
}

type aiHandlers struct {
	ResponseHandler response.ResponseHandler
	AISvc           AIService
}

func NewAIHandlers(deps *Deps) *aiHandlers {
	return &aiHandlers{
		ResponseHandler: deps.ResponseHandler,
		AISvc:           deps.AISvc,
	}
}

func (h *aiHandlers) AIRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/insight", h.Insight)
	return r
}

func (h *aiHandlers) Insight(w http.ResponseWriter, r *http.Request) {
	var body dto.InsightRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	if body.Type == "" {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("type is required"))
		return
	}

	userID := middleware.UserID(r.Context())
	resp, err := h.AISvc.Insight(r.Context(), userID, body.Type)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, resp)
}
