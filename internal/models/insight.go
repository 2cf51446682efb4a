package models

import (
	"time"
)

type InsightType string

const (
	InsightDashboard InsightType = "DASHBOARD"
	InsightBudget    InsightType = "BUDGET"
)

func ParseInsightType(s string) (InsightType, bool) {
	switch InsightType(s) {
	case InsightDashboard:
		return InsightDashboard, true
	case InsightBudget:
		return InsightBudget, true
	}
	return "", false
}

// Insight is a cached AI-generated summary; rows past ExpiresAt are ignored
// and regenerated on demand.
type Insight struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"userId"`
	Type      InsightType `json:"type"`
	Content   string      `json:"content"`
	ExpiresAt time.Time   `json:"expiresAt"`
	CreatedAt time.Time   `json:"createdAt"`
}
