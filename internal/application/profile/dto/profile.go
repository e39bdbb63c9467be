package dto

import (
	"time"

	"chefviral/internal/domain/profile"
)

// UpdateProfileRequest replaces the mutable business facts. The public
// slug never changes after onboarding.
type UpdateProfileRequest struct {
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

// ProfileResponse is the API shape of the business profile.
type ProfileResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	City         string    `json:"city"`
	Neighborhood string    `json:"neighborhood,omitempty"`
	Category     string    `json:"category"`
	Tone         string    `json:"tone"`
	Phone        string    `json:"phone"`
	Instagram    string    `json:"instagram,omitempty"`
	Address      string    `json:"address,omitempty"`
	DeliveryInfo string    `json:"delivery_info,omitempty"`
	ThemeColor   string    `json:"theme_color"`
	LogoURL      string    `json:"logo_url,omitempty"`
	BannerURL    string    `json:"banner_url,omitempty"`
	Tier         string    `json:"tier"`
	Status       string    `json:"subscription_status"`
	PeriodEnd    time.Time `json:"subscription_period_end"`
	CreatedAt    time.Time `json:"created_at"`
}

// UploadBrandingResponse reports the stored asset location.
type UploadBrandingResponse struct {
	Slot string `json:"slot"`
	URL  string `json:"url"`
}

// ToProfileResponse maps a domain profile to its API shape.
func ToProfileResponse(p *profile.BusinessProfile) ProfileResponse {
	sub := p.Subscription()
	return ProfileResponse{
		ID:           p.SID(),
		Name:         p.Name(),
		Slug:         p.Slug(),
		City:         p.City(),
		Neighborhood: p.Neighborhood(),
		Category:     string(p.Category()),
		Tone:         string(p.Tone()),
		Phone:        p.Phone(),
		Instagram:    p.Instagram(),
		Address:      p.Address(),
		DeliveryInfo: p.DeliveryInfo(),
		ThemeColor:   p.ThemeColor(),
		LogoURL:      p.LogoURL(),
		BannerURL:    p.BannerURL(),
		Tier:         string(sub.Tier),
		Status:       string(sub.Status),
		PeriodEnd:    sub.PeriodEnd,
		CreatedAt:    p.CreatedAt(),
	}
}
