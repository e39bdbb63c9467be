package usecases

import (
	"context"
	"fmt"

	"chefviral/internal/application/catalog/dto"
	"chefviral/internal/domain/catalog"
	"chefviral/internal/domain/profile"
	"chefviral/internal/shared/errors"
	"chefviral/internal/shared/logger"
)

// AddProductUseCase creates a catalog item, enforcing the tier product
// cap before the insert.
type AddProductUseCase struct {
	productRepo catalog.Repository
	profileRepo profile.Repository
	logger      logger.Interface
}

// NewAddProductUseCase creates the use case.
func NewAddProductUseCase(
	productRepo catalog.Repository,
	profileRepo profile.Repository,
	logger logger.Interface,
) *AddProductUseCase {
	return &AddProductUseCase{
		productRepo: productRepo,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Execute adds a product for the tenant.
func (uc *AddProductUseCase) Execute(ctx context.Context, userID uint, request dto.AddProductRequest) (*dto.ProductResponse, error) {
	businessProfile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if businessProfile == nil {
		return nil, errors.NewNotFoundError("complete o cadastro antes de adicionar produtos")
	}

	limits := businessProfile.Subscription().Limits()
	count, err := uc.productRepo.CountByUser(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to count products", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	if count >= limits.MaxProducts {
		uc.logger.Infow("product cap reached",
			"user_id", userID,
			"count", count,
			"max", limits.MaxProducts,
			"tier", businessProfile.Subscription().Tier,
		)
		return nil, errors.NewPlanLimitError(
			fmt.Sprintf("limite de %d produtos atingido no seu plano", limits.MaxProducts),
			string(businessProfile.Subscription().Tier),
		)
	}

	product, err := catalog.NewProduct(userID, request.Name, request.Description, request.Price, request.Category)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if request.ImageURL != "" {
		product.SetImage(request.ImageURL)
	}
	product.MarkPopular(request.IsPopular)

	if err := uc.productRepo.Create(ctx, product); err != nil {
		uc.logger.Errorw("failed to save product", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	uc.logger.Infow("product added", "product_sid", product.SID(), "user_id", userID)
	response := dto.ToProductResponse(product)
	return &response, nil
}
