package usecases

import (
	"context"
	"fmt"

	"chefviral/internal/application/catalog/dto"
	"chefviral/internal/domain/catalog"
	"chefviral/internal/domain/plan"
	"chefviral/internal/domain/profile"
	"chefviral/internal/shared/logger"
)

// ListProductsUseCase returns the tenant's catalog with plan headroom.
type ListProductsUseCase struct {
	productRepo catalog.Repository
	profileRepo profile.Repository
	logger      logger.Interface
}

// NewListProductsUseCase creates the use case.
func NewListProductsUseCase(
	productRepo catalog.Repository,
	profileRepo profile.Repository,
	logger logger.Interface,
) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Execute lists the tenant's products, newest first.
func (uc *ListProductsUseCase) Execute(ctx context.Context, userID uint) (*dto.ProductListResponse, error) {
	products, err := uc.productRepo.ListByUser(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list products", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	maxProducts := plan.ConfigFor(plan.TierFree).Limits.MaxProducts
	if businessProfile, err := uc.profileRepo.GetByUserID(ctx, userID); err == nil && businessProfile != nil {
		maxProducts = businessProfile.Subscription().Limits().MaxProducts
	}

	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, dto.ToProductResponse(p))
	}

	return &dto.ProductListResponse{
		Products:    items,
		Count:       len(items),
		MaxProducts: maxProducts,
	}, nil
}
