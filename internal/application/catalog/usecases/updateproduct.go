package usecases

import (
	"context"
	"fmt"

	"chefviral/internal/application/catalog/dto"
	"chefviral/internal/domain/catalog"
	"chefviral/internal/shared/errors"
	"chefviral/internal/shared/logger"
)

// UpdateProductUseCase replaces the mutable fields of an owned product.
type UpdateProductUseCase struct {
	productRepo catalog.Repository
	logger      logger.Interface
}

// NewUpdateProductUseCase creates the use case.
func NewUpdateProductUseCase(productRepo catalog.Repository, logger logger.Interface) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Execute updates the product identified by sid, scoped to the owner.
func (uc *UpdateProductUseCase) Execute(ctx context.Context, userID uint, sid string, request dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to load product", "product_sid", sid, "error", err)
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	if product == nil || product.UserID() != userID {
		return nil, errors.NewNotFoundError("produto não encontrado")
	}

	if err := product.Update(request.Name, request.Description, request.Price, request.Category); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	product.SetImage(request.ImageURL)
	product.MarkPopular(request.IsPopular)

	if err := uc.productRepo.Update(ctx, product); err != nil {
		uc.logger.Errorw("failed to update product", "product_sid", sid, "error", err)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	uc.logger.Infow("product updated", "product_sid", sid, "user_id", userID)
	response := dto.ToProductResponse(product)
	return &response, nil
}
