package usecases

import (
	"context"
	"fmt"

	"chefviral/internal/application/profile/dto"
	"chefviral/internal/domain/profile"
	"chefviral/internal/shared/errors"
	"chefviral/internal/shared/logger"
)

// GetProfileUseCase returns the tenant's business profile.
type GetProfileUseCase struct {
	profileRepo profile.Repository
	logger      logger.Interface
}

// NewGetProfileUseCase creates the use case.
func NewGetProfileUseCase(profileRepo profile.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Execute loads the profile for the authenticated user.
func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uint) (*dto.ProfileResponse, error) {
	businessProfile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if businessProfile == nil {
		return nil, errors.NewNotFoundError("perfil não encontrado, complete o cadastro")
	}

	response := dto.ToProfileResponse(businessProfile)
	return &response, nil
}
