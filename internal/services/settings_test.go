package services

import (
	"context"
	"errors"
	"testing"

	"github.com/finprime/finprime-backend/internal/dto"
	"github.com/finprime/finprime-backend/internal/errs"
	"github.com/finprime/finprime-backend/internal/models"
	"github.com/finprime/finprime-backend/pkg/helpers"
)

type stubSettingsStore struct {
	settings    models.Settings
	updated     *dto.UpdateSettingsRequest
	updateCalls int
	updateErr   error
}

func (s *stubSettingsStore) Get(_ context.Context, _ int64) (models.Settings, error) {
	return s.settings, nil
}

func (s *stubSettingsStore) Update(_ context.Context, _ int64, req dto.UpdateSettingsRequest) error {
	s.updated = &req
	s.updateCalls++
	return s.updateErr
}

func TestSettingsUpdate(t *testing.T) {
	store := &stubSettingsStore{
		settings: models.Settings{FirstName: "Jane", ThemePreference: "Dark", Currency: "EUR"},
	}
	svc := NewSettingsService(store)

	result, err := svc.Update(helpers.TestCtx(), 1, dto.UpdateSettingsRequest{
		FirstName:       helpers.Ptr("Jane"),
		ThemePreference: helpers.Ptr("Dark"),
		Currency:        helpers.Ptr("EUR"),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if store.updateCalls != 1 {
		t.Fatalf("Update called %d times, want 1", store.updateCalls)
	}
	if result.ThemePreference != "Dark" || result.Currency != "EUR" {
		t.Errorf("result = %+v, want merged settings", result)
	}
}

func TestSettingsUpdateValidation(t *testing.T) {
	store := &stubSettingsStore{}
	svc := NewSettingsService(store)
	ctx := helpers.TestCtx()

	cases := []struct {
		name string
		req  dto.UpdateSettingsRequest
	}{
		{"no fields", dto.UpdateSettingsRequest{}},
		{"empty first name", dto.UpdateSettingsRequest{FirstName: helpers.Ptr("  ")}},
		{"empty last name", dto.UpdateSettingsRequest{LastName: helpers.Ptr("")}},
		{"bad theme", dto.UpdateSettingsRequest{ThemePreference: helpers.Ptr("solarized")}},
		{"lowercase theme", dto.UpdateSettingsRequest{ThemePreference: helpers.Ptr("dark")}},
		{"bad currency", dto.UpdateSettingsRequest{Currency: helpers.Ptr("DOLLARS")}},
	}

	for _, tc := range cases {
		_, err := svc.Update(ctx, 1, tc.req)
		var ve *errs.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("%s: err = %v, want ValidationError", tc.name, err)
		}
	}

	if store.updateCalls != 0 {
		t.Errorf("store.Update called %d times on invalid input, want 0", store.updateCalls)
	}
}

func TestSettingsUpdatePreferencesOnly(t *testing.T) {
	store := &stubSettingsStore{}
	svc := NewSettingsService(store)

	_, err := svc.Update(helpers.TestCtx(), 1, dto.UpdateSettingsRequest{
		AIInsights: helpers.Ptr(false),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if store.updated == nil || store.updated.AIInsights == nil || *store.updated.AIInsights {
		t.Errorf("store received %+v, want aiInsights=false", store.updated)
	}
	if store.updated.FirstName != nil {
		t.Error("profile fields should stay nil")
	}
}
