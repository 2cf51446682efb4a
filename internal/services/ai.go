package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finprime/finprime-backend/internal/dto"
	"github.com/finprime/finprime-backend/internal/errs"
	"github.com/finprime/finprime-backend/internal/models"
	"github.com/finprime/finprime-backend/pkg/helpers"
	"github.com/finprime/finprime-backend/pkg/logger"
)

const (
	dashboardLookbackDays = 30
	dashboardHistoryLimit = 50
	budgetHistoryLimit    = 60
)

type vertexClient interface {
	GenerateContent(ctx context.Context, req dto.VertexGenerateRequest) (dto.VertexGenerateResponse, error)
}

type insightStore interface {
	Fresh(ctx context.Context, userID int64, insightType models.InsightType) (models.Insight, bool, error)
	Save(ctx context.Context, userID int64, insightType models.InsightType, content string, expiresAt time.Time) (models.Insight, error)
}

// insightLedger is the slice of transaction storage the insight flow needs.
type insightLedger interface {
	CountAll(ctx context.Context, userID int64) (int64, error)
	ListSince(ctx context.Context, userID int64, from time.Time, limit int) ([]models.Transaction, error)
	TopExpenses(ctx context.Context, userID int64, from, to time.Time, limit int) ([]models.Transaction, error)
}

type aiService struct {
	vertex       vertexClient
	store        insightStore
	transactions insightLedger
	budgets      budgetStore
	model        string
	timeout      time.Duration
	dashboardTTL time.Duration
	budgetTTL    time.Duration
	clockNow     func() time.Time
}

type AIServiceConfig struct {
	Model        string
	Timeout      time.Duration
	DashboardTTL time.Duration
	BudgetTTL    time.Duration
}

func NewAIService(vertex vertexClient, store insightStore, transactions insightLedger, budgets budgetStore, cfg AIServiceConfig) *aiService {
	return &aiService{
		vertex:       vertex,
		store:        store,
		transactions: transactions,
		budgets:      budgets,
		model:        cfg.Model,
		timeout:      cfg.Timeout,
		dashboardTTL: cfg.DashboardTTL,
		budgetTTL:    cfg.BudgetTTL,
		clockNow:     time.Now,
	}
}

// Insight serves the cached insight when fresh, the static welcome text for
// an empty ledger, and otherwise generates, caches and returns a new one.
func (s *aiService) Insight(ctx context.Context, userID int64, rawType string) (dto.InsightResponse, error) {
	log := logger.FromContext(ctx)

	insightType, ok := models.ParseInsightType(rawType)
	if !ok {
		return dto.InsightResponse{}, errs.NewValidationError(`type must be "DASHBOARD" or "BUDGET"`)
	}

	cached, found, err := s.store.Fresh(ctx, userID, insightType)
	if err != nil {
		return dto.InsightResponse{}, errs.NewDatabaseError("insight cache lookup", "failed to load insight", err)
	}
	if found {
		log.Info("serving cached insight", "type", insightType)
		return dto.InsightResponse{Insight: cached.Content, Source: "cache"}, nil
	}

	count, err := s.transactions.CountAll(ctx, userID)
	if err != nil {
		return dto.InsightResponse{}, errs.NewDatabaseError("insight data check", "failed to load insight", err)
	}
	if count == 0 {
		log.Info("empty ledger, serving welcome insight")
		return dto.InsightResponse{Insight: welcomeInsight, Source: "default"}, nil
	}

	contextJSON, err := s.buildContext(ctx, userID, insightType)
	if err != nil {
		return dto.InsightResponse{}, err
	}

	content, err := s.generate(ctx, insightType, contextJSON)
	if err != nil {
		return dto.InsightResponse{}, err
	}

	ttl := s.dashboardTTL
	if insightType == models.InsightBudget {
		ttl = s.budgetTTL
	}
	if _, err := s.store.Save(ctx, userID, insightType, content, s.clockNow().Add(ttl)); err != nil {
		return dto.InsightResponse{}, errs.NewDatabaseError("insight save", "failed to save insight", err)
	}

	log.Info("insight generated", "type", insightType)
	return dto.InsightResponse{Insight: content, Source: "api"}, nil
}

func (s *aiService) generate(ctx context.Context, insightType models.InsightType, contextJSON string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	resp, err := s.vertex.GenerateContent(ctx, dto.VertexGenerateRequest{
		Model:       s.model,
		System:      insightSystemPrompt(insightType),
		UserMessage: insightUserPrompt(insightType, contextJSON),
		Temperature: helpers.Ptr(float32(0.5)),
	})
	if err != nil {
		transient := ctx.Err() != nil
		return "", errs.NewExternalServiceError("vertex", "failed to generate insight", transient, err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", errs.NewExternalServiceError("vertex", "model returned an empty insight", false, nil)
	}
	return text, nil
}

// dashboardContext is the rolling 30-day snapshot handed to the model.
type dashboardContext struct {
	Summary struct {
		TotalIncome  decimal.Decimal `json:"totalIncome"`
		TotalExpense decimal.Decimal `json:"totalExpense"`
	} `json:"summary"`
	History []historyEntry `json:"history"`
}

type historyEntry struct {
	Date string          `json:"date"`
	Name string          `json:"name"`
	Amt  decimal.Decimal `json:"amt"`
	Cat  string          `json:"cat"`
	Type string          `json:"type,omitempty"`
}

type budgetContext struct {
	Month             string                     `json:"month"`
	MonthlyBudgetPlan []budgetPlanEntry          `json:"monthlyBudgetPlan"`
	SpendingSummary   map[string]decimal.Decimal `json:"spendingSummary"`
	SpendingDetails   []historyEntry             `json:"actualSpendingDetails"`
}

type budgetPlanEntry struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

func (s *aiService) buildContext(ctx context.Context, userID int64, insightType models.InsightType) (string, error) {
	if insightType == models.InsightBudget {
		return s.buildBudgetContext(ctx, userID)
	}
	return s.buildDashboardContext(ctx, userID)
}

func (s *aiService) buildDashboardContext(ctx context.Context, userID int64) (string, error) {
	from := s.clockNow().AddDate(0, 0, -dashboardLookbackDays)
	txs, err := s.transactions.ListSince(ctx, userID, from, dashboardHistoryLimit)
	if err != nil {
		return "", errs.NewDatabaseError("insight context", "failed to load insight", err)
	}

	var out dashboardContext
	out.History = make([]historyEntry, 0, len(txs))
	for _, t := range txs {
		switch t.Type {
		case models.TransactionIncome:
			out.Summary.TotalIncome = out.Summary.TotalIncome.Add(t.Amount)
		case models.TransactionExpense:
			out.Summary.TotalExpense = out.Summary.TotalExpense.Add(t.Amount)
		}
		out.History = append(out.History, historyEntry{
			Date: t.OccurredAt.Format("2006-01-02"),
			Name: t.Name,
			Amt:  t.Amount,
			Cat:  t.Category,
			Type: string(t.Type),
		})
	}

	raw, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (s *aiService) buildBudgetContext(ctx context.Context, userID int64) (string, error) {
	current := monthRangeAt(s.clockNow())

	targets, err := s.budgets.Targets(ctx, userID, current.MonthKey)
	if err != nil {
		return "", errs.NewDatabaseError("insight context", "failed to load insight", err)
	}
	spent, err := s.budgets.SpentByCategory(ctx, userID, current.Start, current.End)
	if err != nil {
		return "", errs.NewDatabaseError("insight context", "failed to load insight", err)
	}
	// Largest expenses first, so the limit never goes to income rows or
	// small noise.
	txs, err := s.transactions.TopExpenses(ctx, userID, current.Start, current.End, budgetHistoryLimit)
	if err != nil {
		return "", errs.NewDatabaseError("insight context", "failed to load insight", err)
	}

	out := budgetContext{
		Month:           current.MonthKey,
		SpendingSummary: spent,
	}
	out.MonthlyBudgetPlan = make([]budgetPlanEntry, 0, len(targets))
	for _, target := range targets {
		out.MonthlyBudgetPlan = append(out.MonthlyBudgetPlan, budgetPlanEntry{
			Category: target.Category,
			Amount:   target.Amount,
		})
	}
	out.SpendingDetails = make([]historyEntry, 0, len(txs))
	for _, t := range txs {
		out.SpendingDetails = append(out.SpendingDetails, historyEntry{
			Date: t.OccurredAt.Format("2006-01-02"),
			Name: t.Name,
			Amt:  t.Amount,
			Cat:  t.Category,
		})
	}

	raw, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
