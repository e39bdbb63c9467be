package dto

// PlanResponse describes one subscription tier.
type PlanResponse struct {
	Tier           string   `json:"tier"`
	DisplayName    string   `json:"display_name"`
	MonthlyPrice   int      `json:"monthly_price"`
	MaxProducts    int      `json:"max_products"`
	MaxGenerations int      `json:"max_generations"`
	Modes          []string `json:"modes"`
	PriceID        string   `json:"price_id,omitempty"`
}

// PlansResponse is the full tier table plus the client-side payment key.
type PlansResponse struct {
	Plans          []PlanResponse `json:"plans"`
	PublishableKey string         `json:"publishable_key,omitempty"`
	TrialDays      int            `json:"trial_days"`
}
