package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/finprime/finprime-backend/internal/dto"
	"github.com/finprime/finprime-backend/internal/models"
	"github.com/finprime/finprime-backend/pkg/helpers"
)

type stubSettingsService struct {
	settings  models.Settings
	updateReq *dto.UpdateSettingsRequest
}

func (s *stubSettingsService) Get(_ context.Context, _ int64) (models.Settings, error) {
	return s.settings, nil
}

func (s *stubSettingsService) Update(_ context.Context, _ int64, req dto.UpdateSettingsRequest) (models.Settings, error) {
	s.updateReq = &req
	return s.settings, nil
}

func TestSettingsGetHandler(t *testing.T) {
	svc := &stubSettingsService{settings: models.Settings{Email: "jane@example.com", Currency: "USD"}}
	resp := &stubResponseHandler{}
	h := NewSettingsHandlers(&Deps{ResponseHandler: resp, SettingsSvc: svc})

	h.Get(httptest.NewRecorder(), authedRequest(http.MethodGet, "/settings", ""))

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("WriteSuccess not called with status 200")
	}
	settings, ok := resp.writeSuccessData.(models.Settings)
	if !ok || settings.Email != "jane@example.com" {
		t.Errorf("data = %+v, want settings payload", resp.writeSuccessData)
	}
}

func TestSettingsUpdateHandler(t *testing.T) {
	svc := &stubSettingsService{}
	resp := &stubResponseHandler{}
	h := NewSettingsHandlers(&Deps{ResponseHandler: resp, SettingsSvc: svc})

	body := `{"themePreference":"Dark","aiInsights":false}`
	h.Update(httptest.NewRecorder(), authedRequest(http.MethodPut, "/settings", body))

	if svc.updateReq == nil {
		t.Fatal("service not called")
	}
	if helpers.Value(svc.updateReq.ThemePreference) != "Dark" {
		t.Errorf("themePreference = %v, want Dark", svc.updateReq.ThemePreference)
	}
	if svc.updateReq.AIInsights == nil || *svc.updateReq.AIInsights {
		t.Errorf("aiInsights = %v, want false", svc.updateReq.AIInsights)
	}
	if svc.updateReq.FirstName != nil {
		t.Error("absent fields should stay nil")
	}
	if !resp.writeSuccessCalled {
		t.Fatal("expected WriteSuccess")
	}
}
