package dto

type InsightRequest struct {
	Type string `json:"type"` // "DASHBOARD" or "BUDGET"
}

// InsightResponse reports where the content came from: "cache" (fresh row),
// "default" (empty ledger, static welcome) or "api" (newly generated).
type InsightResponse struct {
	Insight string `json:"insight"`
	Source  string `json:"source"`
}
