package mappers

import (
	"chefviral/internal/domain/catalog"
	"chefviral/internal/infrastructure/persistence/models"
)

// ProductMapper converts between the product entity and its persistence
// model.
type ProductMapper interface {
	ToEntity(model *models.ProductModel) (*catalog.Product, error)
	ToEntities(models []*models.ProductModel) ([]*catalog.Product, error)
	ToModel(entity *catalog.Product) *models.ProductModel
}

type productMapper struct{}

// NewProductMapper creates a product mapper.
func NewProductMapper() ProductMapper {
	return &productMapper{}
}

func (m *productMapper) ToEntity(model *models.ProductModel) (*catalog.Product, error) {
	if model == nil {
		return nil, nil
	}
	return catalog.ReconstructProduct(
		model.ID,
		model.SID,
		model.UserID,
		model.Name,
		model.Description,
		model.Price,
		model.Category,
		model.ImageURL,
		model.IsPopular,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *productMapper) ToEntities(productModels []*models.ProductModel) ([]*catalog.Product, error) {
	entities := make([]*catalog.Product, 0, len(productModels))
	for _, pm := range productModels {
		entity, err := m.ToEntity(pm)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *productMapper) ToModel(entity *catalog.Product) *models.ProductModel {
	if entity == nil {
		return nil
	}
	return &models.ProductModel{
		ID:          entity.DBID(),
		SID:         entity.SID(),
		UserID:      entity.UserID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		Price:       entity.Price(),
		Category:    entity.Category(),
		ImageURL:    entity.ImageURL(),
		IsPopular:   entity.IsPopular(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}
