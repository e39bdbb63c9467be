package dto

// DashboardStatsResponse aggregates the tenant's home screen counters:
// rolling 7-day page analytics, calendar-month quota usage and catalog
// headroom.
type DashboardStatsResponse struct {
	Visits7d             int    `json:"visits_7d"`
	Clicks7d             int    `json:"clicks_7d"`
	GenerationsUsed      int    `json:"generations_used"`
	MaxGenerations       int    `json:"max_generations"`
	ProductCount         int    `json:"product_count"`
	MaxProducts          int    `json:"max_products"`
	Tier                 string `json:"tier"`
	TierDisplayName      string `json:"tier_display_name"`
	SubscriptionStatus   string `json:"subscription_status"`
	SubscriptionDeadline string `json:"subscription_deadline,omitempty"`
}
