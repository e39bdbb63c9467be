package usecases

import (
	"context"
	"fmt"
	"net/url"

	"github.com/microcosm-cc/bluemonday"

	"chefviral/internal/application/menu/dto"
	"chefviral/internal/domain/catalog"
	"chefviral/internal/domain/profile"
	"chefviral/internal/shared/constants"
	"chefviral/internal/shared/errors"
	"chefviral/internal/shared/logger"
)

// GetPublicMenuUseCase resolves a public slug into the full menu page
// payload. No authentication; unknown slugs are a dedicated not-found
// state.
type GetPublicMenuUseCase struct {
	profileRepo profile.Repository
	productRepo catalog.Repository
	sanitizer   *bluemonday.Policy
	baseURL     string
	logger      logger.Interface
}

// NewGetPublicMenuUseCase creates the use case. Product descriptions are
// stripped of any markup before public rendering.
func NewGetPublicMenuUseCase(
	profileRepo profile.Repository,
	productRepo catalog.Repository,
	baseURL string,
	logger logger.Interface,
) *GetPublicMenuUseCase {
	return &GetPublicMenuUseCase{
		profileRepo: profileRepo,
		productRepo: productRepo,
		sanitizer:   bluemonday.StrictPolicy(),
		baseURL:     baseURL,
		logger:      logger,
	}
}

// Execute builds the menu for the slug. Sections follow the order each
// category first appears in the catalog.
func (uc *GetPublicMenuUseCase) Execute(ctx context.Context, slug string) (*dto.PublicMenuResponse, error) {
	businessProfile, err := uc.profileRepo.GetBySlug(ctx, slug)
	if err != nil {
		uc.logger.Errorw("failed to resolve slug", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to resolve slug: %w", err)
	}
	if businessProfile == nil {
		return nil, errors.NewNotFoundError("cardápio não encontrado")
	}

	products, err := uc.productRepo.ListByUser(ctx, businessProfile.UserID())
	if err != nil {
		uc.logger.Errorw("failed to load menu products", "slug", slug, "error", err)
		return nil, fmt.Errorf("failed to load menu products: %w", err)
	}

	sections := uc.groupByCategory(products)
	menuURL := uc.baseURL + "/m/" + businessProfile.Slug()

	return &dto.PublicMenuResponse{
		Business: dto.MenuBusiness{
			Name:         businessProfile.Name(),
			Slug:         businessProfile.Slug(),
			City:         businessProfile.City(),
			Neighborhood: businessProfile.Neighborhood(),
			Category:     string(businessProfile.Category()),
			ThemeColor:   businessProfile.ThemeColor(),
			LogoURL:      businessProfile.LogoURL(),
			BannerURL:    businessProfile.BannerURL(),
			Instagram:    businessProfile.Instagram(),
			Address:      businessProfile.Address(),
			DeliveryInfo: businessProfile.DeliveryInfo(),
		},
		Sections:     sections,
		WhatsAppLink: constants.WhatsAppLinkPrefix + businessProfile.WhatsAppDigits(),
		QRCodeURL:    constants.QRCodeEndpoint + url.QueryEscape(menuURL),
		MenuURL:      menuURL,
	}, nil
}

func (uc *GetPublicMenuUseCase) groupByCategory(products []*catalog.Product) []dto.MenuSection {
	sections := make([]dto.MenuSection, 0)
	index := make(map[string]int)

	for _, p := range products {
		item := dto.MenuProduct{
			ID:          p.SID(),
			Name:        p.Name(),
			Description: uc.sanitizer.Sanitize(p.Description()),
			Price:       p.Price(),
			ImageURL:    p.ImageURL(),
			IsPopular:   p.IsPopular(),
		}

		pos, ok := index[p.Category()]
		if !ok {
			pos = len(sections)
			index[p.Category()] = pos
			sections = append(sections, dto.MenuSection{Category: p.Category()})
		}
		sections[pos].Products = append(sections[pos].Products, item)
	}

	return sections
}
