package mappers

import (
	"encoding/json"
	"fmt"

	"chefviral/internal/domain/content"
	"chefviral/internal/infrastructure/persistence/models"
)

// contentBody is the JSON document stored in the content column.
type contentBody struct {
	Hook         string   `json:"hook,omitempty"`
	Caption      string   `json:"caption"`
	CTA          string   `json:"cta,omitempty"`
	Hashtags     []string `json:"hashtags"`
	Script       string   `json:"script,omitempty"`
	VisualPrompt string   `json:"suggestion,omitempty"`
	Image        string   `json:"generated_image,omitempty"`
}

// GeneratedContentMapper converts between history items and their
// persistence model.
type GeneratedContentMapper interface {
	ToEntity(model *models.GeneratedContentModel) (*content.GeneratedContent, error)
	ToEntities(models []*models.GeneratedContentModel) ([]*content.GeneratedContent, error)
	ToModel(entity *content.GeneratedContent) (*models.GeneratedContentModel, error)
}

type generatedContentMapper struct{}

// NewGeneratedContentMapper creates a content mapper.
func NewGeneratedContentMapper() GeneratedContentMapper {
	return &generatedContentMapper{}
}

func (m *generatedContentMapper) ToEntity(model *models.GeneratedContentModel) (*content.GeneratedContent, error) {
	if model == nil {
		return nil, nil
	}

	var body contentBody
	if err := json.Unmarshal(model.Content, &body); err != nil {
		return nil, fmt.Errorf("failed to unmarshal content body: %w", err)
	}

	return content.ReconstructGeneratedContent(
		model.ID,
		model.SID,
		model.UserID,
		model.RunSID,
		content.Kind(model.Kind),
		body.Hook,
		body.Caption,
		body.CTA,
		body.Hashtags,
		body.Script,
		body.VisualPrompt,
		body.Image,
		model.CreatedAt,
	)
}

func (m *generatedContentMapper) ToEntities(contentModels []*models.GeneratedContentModel) ([]*content.GeneratedContent, error) {
	entities := make([]*content.GeneratedContent, 0, len(contentModels))
	for _, cm := range contentModels {
		entity, err := m.ToEntity(cm)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *generatedContentMapper) ToModel(entity *content.GeneratedContent) (*models.GeneratedContentModel, error) {
	if entity == nil {
		return nil, nil
	}

	body := contentBody{
		Hook:         entity.Hook(),
		Caption:      entity.Caption(),
		CTA:          entity.CTA(),
		Hashtags:     entity.Hashtags(),
		Script:       entity.Script(),
		VisualPrompt: entity.VisualPrompt(),
		Image:        entity.Image(),
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal content body: %w", err)
	}

	return &models.GeneratedContentModel{
		ID:        entity.DBID(),
		SID:       entity.SID(),
		UserID:    entity.UserID(),
		RunSID:    entity.RunSID(),
		Kind:      string(entity.Kind()),
		Content:   raw,
		CreatedAt: entity.CreatedAt(),
	}, nil
}
