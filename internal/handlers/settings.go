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

type SettingsService interface {
	Get(ctx context.Context, userID int64) (models.Settings, error)
	Update(ctx context.Context, userID int64, req dto.UpdateSettingsRequest) (models.Settings, error)
}

type settingsHandlers struct {
	ResponseHandler response.ResponseHandler
	SettingsSvc     SettingsService
}

func NewSettingsHandlers(deps *Deps) *settingsHandlers {
	return &settingsHandlers{
		ResponseHandler: deps.ResponseHandler,
		SettingsSvc:     deps.SettingsSvc,
	}
}

func (h *settingsHandlers) SettingsRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Get)
	r.Put("/", h.Update)
	return r
}

func (h *settingsHandlers) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	settings, err := h.SettingsSvc.Get(r.Context(), userID)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, settings)
}

func (h *settingsHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var body dto.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	userID := middleware.UserID(r.Context())
	settings, err := h.SettingsSvc.Update(r.Context(), userID, body)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, settings)
}
