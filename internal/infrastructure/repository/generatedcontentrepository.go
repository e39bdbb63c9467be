package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"chefviral/internal/domain/content"
	"chefviral/internal/infrastructure/persistence/mappers"
	"chefviral/internal/infrastructure/persistence/models"
	"chefviral/internal/shared/constants"
	"chefviral/internal/shared/logger"
)

// GeneratedContentRepositoryImpl persists the append-only generation
// history.
type GeneratedContentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.GeneratedContentMapper
	logger logger.Interface
}

// NewGeneratedContentRepository creates a content history repository.
func NewGeneratedContentRepository(db *gorm.DB, log logger.Interface) content.Repository {
	return &GeneratedContentRepositoryImpl{
		db:     db,
		mapper: mappers.NewGeneratedContentMapper(),
		logger: log,
	}
}

func (r *GeneratedContentRepositoryImpl) Save(ctx context.Context, item *content.GeneratedContent) error {
	model, err := r.mapper.ToModel(item)
	if err != nil {
		return fmt.Errorf("failed to convert content to model: %w", err)
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to save generated content", "error", err, "kind", item.Kind())
		return fmt.Errorf("failed to save generated content: %w", err)
	}
	item.SetDBID(model.ID)
	return nil
}

func (r *GeneratedContentRepositoryImpl) CountItemsSince(ctx context.Context, userID uint, since time.Time) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.GeneratedContentModel{}).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count generated items", "error", err, "user_id", userID)
		return 0, fmt.Errorf("failed to count generated items: %w", err)
	}
	return int(count), nil
}

func (r *GeneratedContentRepositoryImpl) ListByUser(ctx context.Context, userID uint, limit int) ([]*content.GeneratedContent, error) {
	if limit <= 0 {
		limit = constants.DefaultHistorySize
	}
	var contentModels []*models.GeneratedContentModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&contentModels).Error; err != nil {
		r.logger.Errorw("failed to list generated content", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list generated content: %w", err)
	}
	return r.mapper.ToEntities(contentModels)
}
