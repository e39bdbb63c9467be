package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"chefviral/internal/domain/catalog"
	"chefviral/internal/infrastructure/persistence/mappers"
	"chefviral/internal/infrastructure/persistence/models"
	"chefviral/internal/shared/constants"
	apperrors "chefviral/internal/shared/errors"
	"chefviral/internal/shared/logger"
)

// ProductRepositoryImpl persists catalog items.
type ProductRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ProductMapper
	logger logger.Interface
}

// NewProductRepository creates a product repository.
func NewProductRepository(db *gorm.DB, log logger.Interface) catalog.Repository {
	return &ProductRepositoryImpl{
		db:     db,
		mapper: mappers.NewProductMapper(),
		logger: log,
	}
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, p *catalog.Product) error {
	model := r.mapper.ToModel(p)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create product", "error", err, "name", p.Name())
		return fmt.Errorf("failed to create product: %w", err)
	}
	p.SetDBID(model.ID)
	return nil
}

func (r *ProductRepositoryImpl) CreateBatch(ctx context.Context, products []*catalog.Product) error {
	if len(products) == 0 {
		return nil
	}
	productModels := make([]*models.ProductModel, 0, len(products))
	for _, p := range products {
		productModels = append(productModels, r.mapper.ToModel(p))
	}
	if err := r.db.WithContext(ctx).Create(&productModels).Error; err != nil {
		r.logger.Errorw("failed to batch-create products", "error", err, "count", len(products))
		return fmt.Errorf("failed to batch-create products: %w", err)
	}
	for i, p := range products {
		p.SetDBID(productModels[i].ID)
	}
	return nil
}

func (r *ProductRepositoryImpl) GetBySID(ctx context.Context, sid string) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get product", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ProductRepositoryImpl) ListByUser(ctx context.Context, userID uint) ([]*catalog.Product, error) {
	var productModels []*models.ProductModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		r.logger.Errorw("failed to list products", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return r.mapper.ToEntities(productModels)
}

func (r *ProductRepositoryImpl) CountByUser(ctx context.Context, userID uint) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ProductModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count products", "error", err, "user_id", userID)
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return int(count), nil
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, p *catalog.Product) error {
	model := r.mapper.ToModel(p)
	result := r.db.WithContext(ctx).Model(&models.ProductModel{}).
		Where("id = ? AND user_id = ?", p.DBID(), p.UserID()).
		Omit("id", "sid", "user_id", "created_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update product", "error", result.Error, "product_id", p.DBID())
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("product not found")
	}
	return nil
}

func (r *ProductRepositoryImpl) Delete(ctx context.Context, sid string, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("sid = ? AND user_id = ?", sid, userID).
		Delete(&models.ProductModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete product", "error", result.Error, "sid", sid)
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("product not found")
	}
	return nil
}

func (r *ProductRepositoryImpl) Search(ctx context.Context, filter catalog.SearchFilter) ([]*catalog.Product, error) {
	query := r.db.WithContext(ctx).Model(&models.ProductModel{})

	if filter.TenantIDs != nil {
		query = query.Where("user_id IN ?", filter.TenantIDs)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.MinPriceSet {
		query = query.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPriceSet {
		query = query.Where("price <= ?", filter.MaxPrice)
	}
	if term := strings.TrimSpace(filter.SearchTerm); term != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(term)+"%")
	}

	limit := filter.Limit
	if limit <= 0 || limit > constants.DiscoveryPageSize {
		limit = constants.DiscoveryPageSize
	}

	var productModels []*models.ProductModel
	if err := query.Order("is_popular DESC, created_at DESC").Limit(limit).Find(&productModels).Error; err != nil {
		r.logger.Errorw("failed to search products", "error", err)
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return r.mapper.ToEntities(productModels)
}
