package usecases

import (
	"context"
	"fmt"

	"chefviral/internal/application/discovery/dto"
	"chefviral/internal/domain/catalog"
	"chefviral/internal/domain/profile"
	"chefviral/internal/shared/constants"
	"chefviral/internal/shared/logger"
)

// SearchProductsUseCase runs the cross-tenant discovery search: optional
// location, category, price range and name filters over all public
// catalogs, joined with the owning profiles.
type SearchProductsUseCase struct {
	productRepo catalog.Repository
	profileRepo profile.Repository
	logger      logger.Interface
}

// NewSearchProductsUseCase creates the use case.
func NewSearchProductsUseCase(
	productRepo catalog.Repository,
	profileRepo profile.Repository,
	logger logger.Interface,
) *SearchProductsUseCase {
	return &SearchProductsUseCase{
		productRepo: productRepo,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Execute runs the search. An empty filter set returns the capped global
// listing. Products whose owning profile cannot be resolved are dropped.
func (uc *SearchProductsUseCase) Execute(ctx context.Context, request dto.SearchRequest) (*dto.SearchResponse, error) {
	filter := catalog.SearchFilter{
		Category:    request.Category,
		MinPrice:    request.MinPrice,
		MinPriceSet: request.MinPriceSet,
		MaxPrice:    request.MaxPrice,
		MaxPriceSet: request.MaxPriceSet,
		SearchTerm:  request.Query,
		Limit:       constants.DiscoveryPageSize,
	}

	if request.Location != "" {
		tenantIDs, err := uc.profileRepo.ResolveTenantsByLocation(ctx, request.Location)
		if err != nil {
			uc.logger.Errorw("failed to resolve location filter", "location", request.Location, "error", err)
			return nil, fmt.Errorf("failed to resolve location: %w", err)
		}
		if len(tenantIDs) == 0 {
			return &dto.SearchResponse{Results: []dto.SearchResult{}}, nil
		}
		filter.TenantIDs = tenantIDs
	}

	products, err := uc.productRepo.Search(ctx, filter)
	if err != nil {
		uc.logger.Errorw("discovery search failed", "error", err)
		return nil, fmt.Errorf("discovery search failed: %w", err)
	}

	ownerIDs := make([]uint, 0, len(products))
	seen := make(map[uint]bool, len(products))
	for _, p := range products {
		if !seen[p.UserID()] {
			seen[p.UserID()] = true
			ownerIDs = append(ownerIDs, p.UserID())
		}
	}

	summaries, err := uc.profileRepo.SummariesByUserIDs(ctx, ownerIDs)
	if err != nil {
		uc.logger.Errorw("failed to fetch profile summaries", "error", err)
		return nil, fmt.Errorf("failed to fetch profiles: %w", err)
	}

	results := make([]dto.SearchResult, 0, len(products))
	for _, p := range products {
		summary, ok := summaries[p.UserID()]
		if !ok {
			continue
		}
		results = append(results, dto.SearchResult{
			ID:          p.SID(),
			Name:        p.Name(),
			Description: p.Description(),
			Price:       p.Price(),
			Category:    p.Category(),
			ImageURL:    p.ImageURL(),
			IsPopular:   p.IsPopular(),
			Business: dto.BusinessSnapshot{
				Name:         summary.Name,
				Slug:         summary.Slug,
				City:         summary.City,
				Neighborhood: summary.Neighborhood,
				Phone:        summary.Phone,
				LogoURL:      summary.LogoURL,
			},
		})
	}

	return &dto.SearchResponse{
		Results: results,
		Count:   len(results),
	}, nil
}
