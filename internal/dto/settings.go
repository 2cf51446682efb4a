package dto

// UpdateSettingsRequest carries a partial update. Nil fields are left
// untouched; profile fields and preference fields route to different tables.
type UpdateSettingsRequest struct {
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	Avatar          *string `json:"avatar"`
	ThemePreference *string `json:"themePreference"`
	Currency        *string `json:"currency"`
	AIInsights      *bool   `json:"aiInsights"`
	BudgetAlerts    *bool   `json:"budgetAlerts"`
}

// HasProfileFields reports whether any users-table field is present.
func (r UpdateSettingsRequest) HasProfileFields() bool {
	return r.FirstName != nil || r.LastName != nil || r.Avatar != nil
}

// HasPreferenceFields reports whether any settings-table field is present.
func (r UpdateSettingsRequest) HasPreferenceFields() bool {
	return r.ThemePreference != nil || r.Currency != nil || r.AIInsights != nil || r.BudgetAlerts != nil
}
