package services

import (
	"context"
	"errors"
	"strings"

	"github.com/finprime/finprime-backend/internal/dto"
	"github.com/finprime/finprime-backend/internal/errs"
	"github.com/finprime/finprime-backend/internal/models"
	"github.com/finprime/finprime-backend/pkg/logger"
)

// settingsStore is the storage interface for profile and preferences.
type settingsStore interface {
	Get(ctx context.Context, userID int64) (models.Settings, error)
	Update(ctx context.Context, userID int64, req dto.UpdateSettingsRequest) error
}

type settingsService struct {
	store settingsStore
}

func NewSettingsService(store settingsStore) *settingsService {
	return &settingsService{store: store}
}

func (s *settingsService) Get(ctx context.Context, userID int64) (models.Settings, error) {
	settings, err := s.store.Get(ctx, userID)
	if err != nil {
		return models.Settings{}, wrapSettingsErr(err)
	}
	return settings, nil
}

// wrapSettingsErr keeps a store-level not-found intact so it maps to 404.
func wrapSettingsErr(err error) error {
	var nf *errs.NotFoundError
	if errors.As(err, &nf) {
		return err
	}
	return errs.NewDatabaseError("settings", "failed to load settings", err)
}

var validThemes = map[string]bool{"Light": true, "Dark": true, "System": true}

// Update validates the present fields, applies them, and returns the merged
// result so the client can render without a second round trip.
func (s *settingsService) Update(ctx context.Context, userID int64, req dto.UpdateSettingsRequest) (models.Settings, error) {
	log := logger.FromContext(ctx)

	if !req.HasProfileFields() && !req.HasPreferenceFields() {
		return models.Settings{}, errs.NewValidationError("no recognized settings fields provided")
	}

	if req.FirstName != nil && strings.TrimSpace(*req.FirstName) == "" {
		return models.Settings{}, errs.NewValidationError("firstName must not be empty")
	}
	if req.LastName != nil && strings.TrimSpace(*req.LastName) == "" {
		return models.Settings{}, errs.NewValidationError("lastName must not be empty")
	}
	if req.ThemePreference != nil && !validThemes[*req.ThemePreference] {
		return models.Settings{}, errs.NewValidationError(`themePreference must be "Light", "Dark", or "System"`)
	}
	if req.Currency != nil && len(strings.TrimSpace(*req.Currency)) != 3 {
		return models.Settings{}, errs.NewValidationError("currency must be a 3-letter code")
	}

	if err := s.store.Update(ctx, userID, req); err != nil {
		return models.Settings{}, errs.NewDatabaseError("update settings", "failed to save settings", err)
	}

	settings, err := s.store.Get(ctx, userID)
	if err != nil {
		return models.Settings{}, wrapSettingsErr(err)
	}

	log.Info("settings updated")
	return settings, nil
}
