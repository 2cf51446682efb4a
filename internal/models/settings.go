package models

// Settings is the combined profile + preference view served to the frontend.
// Preference fields fall back to their defaults when the settings row is
// missing (theme "System", currency "NGN", alerts off).
type Settings struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Avatar          string `json:"avatar,omitempty"`
	ThemePreference string `json:"themePreference"`
	Currency        string `json:"currency"`
	AIInsights      bool   `json:"aiInsights"`
	BudgetAlerts    bool   `json:"budgetAlerts"`
}
