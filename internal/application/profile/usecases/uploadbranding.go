package usecases

import (
	"context"
	"fmt"

	"chefviral/internal/application/profile/dto"
	"chefviral/internal/domain/profile"
	"chefviral/internal/shared/errors"
	"chefviral/internal/shared/logger"
)

// BrandingStore persists uploaded branding images and returns their
// public URLs.
type BrandingStore interface {
	SaveBrandingAsset(userSID, slot string, data []byte) (string, error)
}

// UploadBrandingUseCase stores a logo or banner image and records its
// URL on the profile.
type UploadBrandingUseCase struct {
	profileRepo profile.Repository
	store       BrandingStore
	logger      logger.Interface
}

// NewUploadBrandingUseCase creates the use case.
func NewUploadBrandingUseCase(
	profileRepo profile.Repository,
	store BrandingStore,
	logger logger.Interface,
) *UploadBrandingUseCase {
	return &UploadBrandingUseCase{
		profileRepo: profileRepo,
		store:       store,
		logger:      logger,
	}
}

// Execute validates and stores the upload, then points the profile slot
// at the new asset.
func (uc *UploadBrandingUseCase) Execute(ctx context.Context, userID uint, slot string, data []byte) (*dto.UploadBrandingResponse, error) {
	if slot != "logo" && slot != "banner" {
		return nil, errors.NewValidationError(fmt.Sprintf("slot de imagem desconhecido: %s", slot))
	}

	businessProfile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if businessProfile == nil {
		return nil, errors.NewNotFoundError("perfil não encontrado, complete o cadastro")
	}

	assetURL, err := uc.store.SaveBrandingAsset(businessProfile.SID(), slot, data)
	if err != nil {
		return nil, err
	}

	if slot == "logo" {
		businessProfile.SetLogoURL(assetURL)
	} else {
		businessProfile.SetBannerURL(assetURL)
	}

	if err := uc.profileRepo.Update(ctx, businessProfile); err != nil {
		uc.logger.Errorw("failed to record branding asset", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to record branding asset: %w", err)
	}

	uc.logger.Infow("branding asset uploaded", "profile_sid", businessProfile.SID(), "slot", slot)
	return &dto.UploadBrandingResponse{Slot: slot, URL: assetURL}, nil
}
