package mappers

import (
	"fmt"

	"chefviral/internal/domain/plan"
	"chefviral/internal/domain/profile"
	vo "chefviral/internal/domain/profile/valueobjects"
	"chefviral/internal/infrastructure/persistence/models"
)

// BusinessProfileMapper converts between the profile aggregate and its
// persistence model.
type BusinessProfileMapper interface {
	ToEntity(model *models.BusinessProfileModel) (*profile.BusinessProfile, error)
	ToModel(entity *profile.BusinessProfile) *models.BusinessProfileModel
}

type businessProfileMapper struct{}

// NewBusinessProfileMapper creates a profile mapper.
func NewBusinessProfileMapper() BusinessProfileMapper {
	return &businessProfileMapper{}
}

func (m *businessProfileMapper) ToEntity(model *models.BusinessProfileModel) (*profile.BusinessProfile, error) {
	if model == nil {
		return nil, nil
	}

	sub, err := vo.NewSubscription(plan.Tier(model.PlanTier), vo.SubscriptionStatus(model.SubscriptionStatus), model.PeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to map subscription: %w", err)
	}

	return profile.ReconstructBusinessProfile(
		model.ID,
		model.SID,
		model.UserID,
		model.Name,
		model.Slug,
		model.City,
		model.Neighborhood,
		vo.BusinessCategory(model.Category),
		vo.ToneOfVoice(model.Tone),
		model.Phone,
		model.Instagram,
		model.Address,
		model.DeliveryInfo,
		model.ThemeColor,
		model.LogoURL,
		model.BannerURL,
		sub,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *businessProfileMapper) ToModel(entity *profile.BusinessProfile) *models.BusinessProfileModel {
	if entity == nil {
		return nil
	}

	sub := entity.Subscription()
	return &models.BusinessProfileModel{
		ID:                 entity.DBID(),
		SID:                entity.SID(),
		UserID:             entity.UserID(),
		Name:               entity.Name(),
		Slug:               entity.Slug(),
		City:               entity.City(),
		Neighborhood:       entity.Neighborhood(),
		Category:           string(entity.Category()),
		Tone:               string(entity.Tone()),
		Phone:              entity.Phone(),
		Instagram:          entity.Instagram(),
		Address:            entity.Address(),
		DeliveryInfo:       entity.DeliveryInfo(),
		ThemeColor:         entity.ThemeColor(),
		LogoURL:            entity.LogoURL(),
		BannerURL:          entity.BannerURL(),
		PlanTier:           string(sub.Tier),
		SubscriptionStatus: string(sub.Status),
		PeriodEnd:          sub.PeriodEnd,
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
	}
}
