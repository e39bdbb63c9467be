package dto

import (
	"time"

	"chefviral/internal/domain/content"
)

// GenerateContentRequest starts one generation run.
type GenerateContentRequest struct {
	Mode          string `json:"mode" binding:"required"`
	CustomContext string `json:"custom_context"`
}

// ContentItemResponse is the API shape of one generated item.
type ContentItemResponse struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	Hook           string    `json:"hook,omitempty"`
	Caption        string    `json:"caption"`
	CTA            string    `json:"cta"`
	Hashtags       []string  `json:"hashtags"`
	Script         string    `json:"script,omitempty"`
	Suggestion     string    `json:"suggestion,omitempty"`
	GeneratedImage string    `json:"generated_image,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// GenerateContentResponse reports the run and the tenant's remaining
// monthly quota.
type GenerateContentResponse struct {
	Items                []ContentItemResponse `json:"items"`
	GenerationsUsed      int                   `json:"generations_used"`
	GenerationsRemaining int                   `json:"generations_remaining"`
}

// HistoryResponse is the newest-first generation history.
type HistoryResponse struct {
	Items []ContentItemResponse `json:"items"`
	Count int                   `json:"count"`
}

// ToContentItemResponse maps a domain item to its API shape.
func ToContentItemResponse(g *content.GeneratedContent) ContentItemResponse {
	return ContentItemResponse{
		ID:             g.SID(),
		Type:           string(g.Kind()),
		Hook:           g.Hook(),
		Caption:        g.Caption(),
		CTA:            g.CTA(),
		Hashtags:       g.Hashtags(),
		Script:         g.Script(),
		Suggestion:     g.VisualPrompt(),
		GeneratedImage: g.Image(),
		CreatedAt:      g.CreatedAt(),
	}
}
