package model

import "time"

// Placeholder options meaning "no constraint". The filter panel sends these
// verbatim, so the filter engine must treat them the same as an empty value.
const (
	AllCategories    = "All Categories"
	AllEmployees     = "All Employees"
	AllLoyaltyStages = "All Loyalty Stages"
)

// FilterState is an immutable snapshot of user-selected constraints. An
// empty or placeholder value means "match everything", never "match nothing".
type FilterState struct {
	ServiceCategory string     `json:"serviceCategory"`
	Employee        string     `json:"employee"`
	LoyaltyStage    string     `json:"loyaltyStage"`
	From            *time.Time `json:"from,omitempty"`
	To              *time.Time `json:"to,omitempty"`
	SearchQuery     string     `json:"searchQuery"`
}

// FilterOptions lists the distinct values a dataset offers for each
// dropdown, prefixed with the matching "All ..." sentinel.
type FilterOptions struct {
	ServiceCategories []string `json:"serviceCategories"`
	Employees         []string `json:"employees"`
	LoyaltyStages     []string `json:"loyaltyStages"`
}
