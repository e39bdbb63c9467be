package usecases

import (
	"context"
	"fmt"

	"chefviral/internal/domain/catalog"
	"chefviral/internal/shared/logger"
)

// DeleteProductUseCase removes an owned product.
type DeleteProductUseCase struct {
	productRepo catalog.Repository
	logger      logger.Interface
}

// NewDeleteProductUseCase creates the use case.
func NewDeleteProductUseCase(productRepo catalog.Repository, logger logger.Interface) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Execute deletes the product identified by sid, scoped to the owner.
// Deleting frees a slot against the tier product cap.
func (uc *DeleteProductUseCase) Execute(ctx context.Context, userID uint, sid string) error {
	if err := uc.productRepo.Delete(ctx, sid, userID); err != nil {
		uc.logger.Errorw("failed to delete product", "product_sid", sid, "user_id", userID, "error", err)
		return fmt.Errorf("failed to delete product: %w", err)
	}
	uc.logger.Infow("product deleted", "product_sid", sid, "user_id", userID)
	return nil
}
