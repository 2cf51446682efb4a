package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finprime/finprime-backend/internal/dto"
	"github.com/finprime/finprime-backend/internal/errs"
)

type stubBudgetService struct {
	overviewResp dto.BudgetOverviewResponse
	overviewErr  error

	updateBody map[string]json.RawMessage
	updateResp dto.UpdateBudgetResponse
}

func (s *stubBudgetService) Overview(_ context.Context, _ int64) (dto.BudgetOverviewResponse, error) {
	return s.overviewResp, s.overviewErr
}

func (s *stubBudgetService) Update(_ context.Context, _ int64, body map[string]json.RawMessage) (dto.UpdateBudgetResponse, error) {
	s.updateBody = body
	return s.updateResp, nil
}

func TestBudgetOverviewHandler(t *testing.T) {
	svc := &stubBudgetService{overviewResp: dto.BudgetOverviewResponse{
		Overview: dto.BudgetOverview{TotalBudget: decimal.RequireFromString("1600")},
	}}
	resp := &stubResponseHandler{}
	h := NewBudgetHandlers(&Deps{ResponseHandler: resp, BudgetSvc: svc})

	h.Overview(httptest.NewRecorder(), authedRequest(http.MethodGet, "/budgets", ""))

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("WriteSuccess not called with status 200")
	}
}

func TestBudgetUpdateHandler(t *testing.T) {
	svc := &stubBudgetService{updateResp: dto.UpdateBudgetResponse{Month: "2025-05"}}
	resp := &stubResponseHandler{}
	h := NewBudgetHandlers(&Deps{ResponseHandler: resp, BudgetSvc: svc})

	body := `{"Food & Dining": 400, "Housing": "1200"}`
	h.Update(httptest.NewRecorder(), authedRequest(http.MethodPut, "/budgets", body))

	if len(svc.updateBody) != 2 {
		t.Fatalf("service received %d entries, want 2", len(svc.updateBody))
	}
	if !resp.writeSuccessCalled {
		t.Fatal("expected WriteSuccess")
	}
}

func TestBudgetUpdateHandlerEmptyBody(t *testing.T) {
	svc := &stubBudgetService{}
	resp := &stubResponseHandler{}
	h := NewBudgetHandlers(&Deps{ResponseHandler: resp, BudgetSvc: svc})

	h.Update(httptest.NewRecorder(), authedRequest(http.MethodPut, "/budgets", `{}`))

	if svc.updateBody != nil {
		t.Error("service should not be called for an empty object")
	}
	var ve *errs.ValidationError
	if !errors.As(resp.handleError, &ve) {
		t.Fatalf("HandleError = %v, want ValidationError", resp.handleError)
	}
}
