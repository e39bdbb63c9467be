package dto

// CompleteOnboardingRequest carries the business facts collected by the
// onboarding wizard.
type CompleteOnboardingRequest struct {
	Name         string `json:"name" binding:"required"`
	City         string `json:"city" binding:"required"`
	Neighborhood string `json:"neighborhood"`
	Category     string `json:"category" binding:"required"`
	Tone         string `json:"tone" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Instagram    string `json:"instagram"`
	Address      string `json:"address"`
	DeliveryInfo string `json:"delivery_info"`
	ThemeColor   string `json:"theme_color"`
	LogoURL      string `json:"logo_url"`
	BannerURL    string `json:"banner_url"`
}

// SeededProduct is one starter catalog item created during provisioning.
type SeededProduct struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// OnboardingResponse reports the provisioned tenant.
type OnboardingResponse struct {
	ProfileID string          `json:"profile_id"`
	Slug      string          `json:"slug"`
	MenuURL   string          `json:"menu_url"`
	Tier      string          `json:"tier"`
	Products  []SeededProduct `json:"products"`
}
