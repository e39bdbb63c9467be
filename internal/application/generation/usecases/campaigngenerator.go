package usecases

import (
	"context"

	"chefviral/internal/domain/content"
	vo "chefviral/internal/domain/profile/valueobjects"
)

// CampaignProduct is one catalog line fed to the generator as pricing
// truth.
type CampaignProduct struct {
	Name        string
	Category    string
	Price       float64
	Description string
}

// CampaignCommand describes one generation run for a tenant.
type CampaignCommand struct {
	BusinessName  string
	City          string
	Category      vo.BusinessCategory
	Tone          vo.ToneOfVoice
	Phone         string
	Products      []CampaignProduct
	Mode          content.Mode
	CustomContext string
}

// CampaignItem is one generated item: copy plus an optional base64 PNG
// illustration.
type CampaignItem struct {
	Kind        content.Kind
	Hook        string
	Caption     string
	CTA         string
	Hashtags    []string
	Script      string
	Suggestion  string
	ImageBase64 string
}

// CampaignGenerator produces campaign items for a command. Items whose
// kind wants an illustration may come back without one; that is not an
// error.
type CampaignGenerator interface {
	GenerateCampaign(ctx context.Context, cmd CampaignCommand) ([]CampaignItem, error)
}
