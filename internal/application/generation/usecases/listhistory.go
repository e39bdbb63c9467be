package usecases

import (
	"context"
	"fmt"

	"chefviral/internal/application/generation/dto"
	"chefviral/internal/domain/content"
	"chefviral/internal/shared/constants"
	"chefviral/internal/shared/logger"
)

// ListHistoryUseCase returns the tenant's generation history, newest
// first.
type ListHistoryUseCase struct {
	contentRepo content.Repository
	logger      logger.Interface
}

// NewListHistoryUseCase creates the use case.
func NewListHistoryUseCase(contentRepo content.Repository, logger logger.Interface) *ListHistoryUseCase {
	return &ListHistoryUseCase{
		contentRepo: contentRepo,
		logger:      logger,
	}
}

// Execute lists up to limit items; non-positive limits fall back to the
// default page size.
func (uc *ListHistoryUseCase) Execute(ctx context.Context, userID uint, limit int) (*dto.HistoryResponse, error) {
	if limit <= 0 {
		limit = constants.DefaultHistorySize
	}

	items, err := uc.contentRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		uc.logger.Errorw("failed to list history", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	responses := make([]dto.ContentItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, dto.ToContentItemResponse(item))
	}

	return &dto.HistoryResponse{
		Items: responses,
		Count: len(responses),
	}, nil
}
