package usecases

import (
	"context"
	"fmt"

	"chefviral/internal/application/onboarding/dto"
	"chefviral/internal/domain/catalog"
	"chefviral/internal/domain/profile"
	vo "chefviral/internal/domain/profile/valueobjects"
	"chefviral/internal/shared/errors"
	"chefviral/internal/shared/logger"
	"chefviral/internal/shared/slugify"
)

// slugAttempts bounds retries when a derived slug collides with an
// existing one. Each retry draws a fresh random suffix.
const slugAttempts = 5

// TenantProvisioner creates the profile and its starter catalog in one
// transaction.
type TenantProvisioner interface {
	ProvisionTenant(ctx context.Context, p *profile.BusinessProfile, products []*catalog.Product) error
}

// starterProduct is one row of the seed catalog every new tenant gets.
type starterProduct struct {
	name        string
	description string
	price       float64
	category    string
	popular     bool
}

var starterCatalog = []starterProduct{
	{
		name:        "X-Tudo Monstrão",
		description: "Pão brioche selado na manteiga, 2 blends de 180g, muito cheddar, bacon crocante e maionese verde secreta.",
		price:       32.90,
		category:    "Burgers",
		popular:     true,
	},
	{
		name:        "Batata Frita Suprema",
		description: "Porção generosa para compartilhar. Acompanha cheddar cremoso e farofa de bacon.",
		price:       25.00,
		category:    "Porções",
	},
	{
		name:        "Coca-Cola 2L",
		description: "Gelada para acompanhar a galera.",
		price:       12.00,
		category:    "Bebidas",
	},
}

// CompleteOnboardingUseCase provisions a tenant: profile with a unique
// public slug, trial subscription and the starter catalog.
type CompleteOnboardingUseCase struct {
	profileRepo profile.Repository
	provisioner TenantProvisioner
	baseURL     string
	trialDays   int
	logger      logger.Interface
}

// NewCompleteOnboardingUseCase creates the use case. baseURL is the
// public origin menu links are built from.
func NewCompleteOnboardingUseCase(
	profileRepo profile.Repository,
	provisioner TenantProvisioner,
	baseURL string,
	trialDays int,
	logger logger.Interface,
) *CompleteOnboardingUseCase {
	return &CompleteOnboardingUseCase{
		profileRepo: profileRepo,
		provisioner: provisioner,
		baseURL:     baseURL,
		trialDays:   trialDays,
		logger:      logger,
	}
}

// Execute provisions the tenant. A user can only onboard once; slug
// collisions are retried with fresh suffixes.
func (uc *CompleteOnboardingUseCase) Execute(ctx context.Context, userID uint, request dto.CompleteOnboardingRequest) (*dto.OnboardingResponse, error) {
	existing, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to check existing profile", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("cadastro já concluído para esta conta")
	}

	category := vo.BusinessCategory(request.Category)
	tone := vo.ToneOfVoice(request.Tone)
	subscription := vo.NewTrialSubscription(uc.trialDays)

	for attempt := 0; attempt < slugAttempts; attempt++ {
		slug := slugify.Derive(request.Name)

		candidate, err := profile.NewBusinessProfile(
			userID,
			request.Name, slug, request.City, request.Neighborhood,
			category, tone, request.Phone,
			subscription,
		)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}

		candidate.SetSocial(request.Instagram, request.Address, request.DeliveryInfo)
		if request.ThemeColor != "" {
			if err := candidate.SetThemeColor(request.ThemeColor); err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
		}
		if request.LogoURL != "" {
			candidate.SetLogoURL(request.LogoURL)
		}
		if request.BannerURL != "" {
			candidate.SetBannerURL(request.BannerURL)
		}

		seed := make([]*catalog.Product, 0, len(starterCatalog))
		for _, sp := range starterCatalog {
			product, err := catalog.NewProduct(userID, sp.name, sp.description, sp.price, sp.category)
			if err != nil {
				return nil, fmt.Errorf("failed to build starter product: %w", err)
			}
			product.MarkPopular(sp.popular)
			seed = append(seed, product)
		}

		err = uc.provisioner.ProvisionTenant(ctx, candidate, seed)
		if err == nil {
			return uc.toResponse(candidate, seed), nil
		}
		if !errors.IsType(err, errors.ErrorTypeConflict) {
			uc.logger.Errorw("tenant provisioning failed", "user_id", userID, "error", err)
			return nil, fmt.Errorf("failed to provision tenant: %w", err)
		}
		uc.logger.Warnw("slug collision, retrying with fresh suffix", "slug", slug, "attempt", attempt+1)
	}

	return nil, errors.NewConflictError("não foi possível gerar um link único, tente novamente")
}

func (uc *CompleteOnboardingUseCase) toResponse(p *profile.BusinessProfile, seed []*catalog.Product) *dto.OnboardingResponse {
	products := make([]dto.SeededProduct, 0, len(seed))
	for _, product := range seed {
		products = append(products, dto.SeededProduct{
			ID:       product.SID(),
			Name:     product.Name(),
			Price:    product.Price(),
			Category: product.Category(),
		})
	}

	uc.logger.Infow("tenant provisioned",
		"profile_sid", p.SID(),
		"slug", p.Slug(),
		"seeded_products", len(products),
	)

	return &dto.OnboardingResponse{
		ProfileID: p.SID(),
		Slug:      p.Slug(),
		MenuURL:   uc.baseURL + "/m/" + p.Slug(),
		Tier:      string(p.Subscription().Tier),
		Products:  products,
	}
}
