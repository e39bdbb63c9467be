package usecases

import (
	"context"
	"fmt"

	"chefviral/internal/application/profile/dto"
	"chefviral/internal/domain/profile"
	vo "chefviral/internal/domain/profile/valueobjects"
	"chefviral/internal/shared/errors"
	"chefviral/internal/shared/logger"
)

// UpdateProfileUseCase replaces the mutable business facts. The slug is
// immutable so printed QR codes keep working.
type UpdateProfileUseCase struct {
	profileRepo profile.Repository
	logger      logger.Interface
}

// NewUpdateProfileUseCase creates the use case.
func NewUpdateProfileUseCase(profileRepo profile.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Execute applies the update for the authenticated user.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, userID uint, request dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	businessProfile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if businessProfile == nil {
		return nil, errors.NewNotFoundError("perfil não encontrado, complete o cadastro")
	}

	err = businessProfile.UpdateDetails(
		request.Name,
		request.City,
		request.Neighborhood,
		vo.BusinessCategory(request.Category),
		vo.ToneOfVoice(request.Tone),
		request.Phone,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	businessProfile.SetSocial(request.Instagram, request.Address, request.DeliveryInfo)

	if request.ThemeColor != "" {
		if err := businessProfile.SetThemeColor(request.ThemeColor); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if request.LogoURL != "" {
		businessProfile.SetLogoURL(request.LogoURL)
	}
	if request.BannerURL != "" {
		businessProfile.SetBannerURL(request.BannerURL)
	}

	if err := uc.profileRepo.Update(ctx, businessProfile); err != nil {
		uc.logger.Errorw("failed to update profile", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	uc.logger.Infow("profile updated", "profile_sid", businessProfile.SID())
	response := dto.ToProfileResponse(businessProfile)
	return &response, nil
}
