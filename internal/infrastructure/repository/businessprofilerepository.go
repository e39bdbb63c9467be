package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"chefviral/internal/domain/catalog"
	"chefviral/internal/domain/profile"
	"chefviral/internal/infrastructure/persistence/mappers"
	"chefviral/internal/infrastructure/persistence/models"
	apperrors "chefviral/internal/shared/errors"
	"chefviral/internal/shared/logger"
)

// BusinessProfileRepositoryImpl persists business profiles. It also
// implements the onboarding TenantProvisioner so the profile and the seeded
// starter catalog land in one transaction.
type BusinessProfileRepositoryImpl struct {
	db              *gorm.DB
	mapper          mappers.BusinessProfileMapper
	productMapper   mappers.ProductMapper
	logger          logger.Interface
	hasNeighborhood bool
}

// NewBusinessProfileRepository creates a profile repository. The optional
// neighborhood column is probed once here, not retried per call.
func NewBusinessProfileRepository(db *gorm.DB, log logger.Interface) *BusinessProfileRepositoryImpl {
	hasNeighborhood := db.Migrator().HasColumn(&models.BusinessProfileModel{}, "Neighborhood")
	if !hasNeighborhood {
		log.Warnw("business_profiles has no neighborhood column, location search degrades to city-only")
	}
	return &BusinessProfileRepositoryImpl{
		db:              db,
		mapper:          mappers.NewBusinessProfileMapper(),
		productMapper:   mappers.NewProductMapper(),
		logger:          log,
		hasNeighborhood: hasNeighborhood,
	}
}

var _ profile.Repository = (*BusinessProfileRepositoryImpl)(nil)

func (r *BusinessProfileRepositoryImpl) Create(ctx context.Context, p *profile.BusinessProfile) error {
	model := r.mapper.ToModel(p)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflictError("profile or slug already exists", p.Slug())
		}
		r.logger.Errorw("failed to create business profile", "error", err, "slug", p.Slug())
		return fmt.Errorf("failed to create business profile: %w", err)
	}
	if err := p.SetDBID(model.ID); err != nil {
		return err
	}
	r.logger.Infow("business profile created", "profile_id", model.ID, "slug", p.Slug())
	return nil
}

// ProvisionTenant inserts the profile and the starter catalog atomically.
// Either the tenant ends up with a profile and its seeded products, or with
// nothing.
func (r *BusinessProfileRepositoryImpl) ProvisionTenant(ctx context.Context, p *profile.BusinessProfile, products []*catalog.Product) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := r.mapper.ToModel(p)
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		if err := p.SetDBID(model.ID); err != nil {
			return err
		}

		for _, prod := range products {
			pm := r.productMapper.ToModel(prod)
			if err := tx.Create(pm).Error; err != nil {
				return err
			}
			prod.SetDBID(pm.ID)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflictError("profile or slug already exists", p.Slug())
		}
		r.logger.Errorw("failed to provision tenant", "error", err, "slug", p.Slug())
		return fmt.Errorf("failed to provision tenant: %w", err)
	}
	r.logger.Infow("tenant provisioned", "profile_id", p.DBID(), "slug", p.Slug(), "seeded_products", len(products))
	return nil
}

func (r *BusinessProfileRepositoryImpl) GetByUserID(ctx context.Context, userID uint) (*profile.BusinessProfile, error) {
	var model models.BusinessProfileModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get profile by user ID", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *BusinessProfileRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*profile.BusinessProfile, error) {
	var model models.BusinessProfileModel
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get profile by slug", "error", err, "slug", slug)
		return nil, fmt.Errorf("failed to get profile by slug: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *BusinessProfileRepositoryImpl) Update(ctx context.Context, p *profile.BusinessProfile) error {
	model := r.mapper.ToModel(p)
	if err := r.db.WithContext(ctx).Model(&models.BusinessProfileModel{}).
		Where("id = ?", p.DBID()).
		Omit("id", "sid", "user_id", "slug", "created_at").
		Updates(model).Error; err != nil {
		r.logger.Errorw("failed to update profile", "error", err, "profile_id", p.DBID())
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

func (r *BusinessProfileRepositoryImpl) ResolveTenantsByLocation(ctx context.Context, location string) ([]uint, error) {
	term := "%" + strings.ToLower(strings.TrimSpace(location)) + "%"

	query := r.db.WithContext(ctx).Model(&models.BusinessProfileModel{})
	if r.hasNeighborhood {
		query = query.Where("LOWER(city) LIKE ? OR LOWER(neighborhood) LIKE ?", term, term)
	} else {
		query = query.Where("LOWER(city) LIKE ?", term)
	}

	var userIDs []uint
	if err := query.Pluck("user_id", &userIDs).Error; err != nil {
		r.logger.Errorw("failed to resolve tenants by location", "error", err, "location", location)
		return nil, fmt.Errorf("failed to resolve tenants by location: %w", err)
	}
	return userIDs, nil
}

func (r *BusinessProfileRepositoryImpl) SummariesByUserIDs(ctx context.Context, userIDs []uint) (map[uint]profile.Summary, error) {
	if len(userIDs) == 0 {
		return map[uint]profile.Summary{}, nil
	}

	var profileModels []*models.BusinessProfileModel
	if err := r.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&profileModels).Error; err != nil {
		r.logger.Errorw("failed to batch-fetch profile summaries", "error", err)
		return nil, fmt.Errorf("failed to fetch profile summaries: %w", err)
	}

	summaries := make(map[uint]profile.Summary, len(profileModels))
	for _, m := range profileModels {
		summaries[m.UserID] = profile.Summary{
			UserID:       m.UserID,
			Name:         m.Name,
			Slug:         m.Slug,
			City:         m.City,
			Neighborhood: m.Neighborhood,
			Phone:        m.Phone,
			LogoURL:      m.LogoURL,
		}
	}
	return summaries, nil
}
