package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chefviral/internal/application/catalog/dto"
	"chefviral/internal/domain/catalog"
	"chefviral/internal/domain/plan"
	"chefviral/internal/domain/profile"
	vo "chefviral/internal/domain/profile/valueobjects"
	"chefviral/internal/shared/errors"
	"chefviral/internal/shared/logger"
)

type fakeProfileRepo struct {
	profile.Repository
	profiles map[uint]*profile.BusinessProfile
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID uint) (*profile.BusinessProfile, error) {
	return f.profiles[userID], nil
}

type fakeProductRepo struct {
	catalog.Repository
	count      int
	created    []*catalog.Product
	bySID      map[string]*catalog.Product
	updated    []*catalog.Product
	deletedSID string
	deleteErr  error
}

func (f *fakeProductRepo) Create(ctx context.Context, p *catalog.Product) error {
	f.created = append(f.created, p)
	return nil
}

func (f *fakeProductRepo) CountByUser(ctx context.Context, userID uint) (int, error) {
	return f.count, nil
}

func (f *fakeProductRepo) GetBySID(ctx context.Context, sid string) (*catalog.Product, error) {
	return f.bySID[sid], nil
}

func (f *fakeProductRepo) Update(ctx context.Context, p *catalog.Product) error {
	f.updated = append(f.updated, p)
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, sid string, userID uint) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedSID = sid
	return nil
}

func (f *fakeProductRepo) ListByUser(ctx context.Context, userID uint) ([]*catalog.Product, error) {
	return f.created, nil
}

func tierProfile(t *testing.T, tier plan.Tier) *profile.BusinessProfile {
	t.Helper()
	p, err := profile.NewBusinessProfile(
		7, "Sorveteria Gelato Real", "gelato-real-p3q9", "Fortaleza", "",
		vo.CategorySorveteria, vo.TonePremium, "85977776666",
		vo.NewTrialSubscription(7),
	)
	require.NoError(t, err)
	if tier != plan.TierFree {
		sub, err := vo.NewSubscription(tier, vo.StatusActive, time.Now().UTC().AddDate(0, 1, 0))
		require.NoError(t, err)
		p.ChangeSubscription(sub)
	}
	return p
}

func TestAddProduct_CreatesWithinLimit(t *testing.T) {
	profiles := &fakeProfileRepo{profiles: map[uint]*profile.BusinessProfile{7: tierProfile(t, plan.TierFree)}}
	products := &fakeProductRepo{count: 4}
	uc := NewAddProductUseCase(products, profiles, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), 7, dto.AddProductRequest{
		Name:      "Açaí 500ml",
		Price:     19.90,
		Category:  "Açaí",
		ImageURL:  "https://cdn.example.com/acai.png",
		IsPopular: true,
	})
	require.NoError(t, err)

	require.Len(t, products.created, 1)
	assert.Equal(t, "Açaí 500ml", result.Name)
	assert.True(t, result.IsPopular)
	assert.Equal(t, "https://cdn.example.com/acai.png", result.ImageURL)
	assert.Contains(t, result.ID, "prd_")
}

func TestAddProduct_TierLimitBlocksInsert(t *testing.T) {
	profiles := &fakeProfileRepo{profiles: map[uint]*profile.BusinessProfile{7: tierProfile(t, plan.TierFree)}}
	products := &fakeProductRepo{count: 5}
	uc := NewAddProductUseCase(products, profiles, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), 7, dto.AddProductRequest{Name: "Açaí 700ml", Price: 24.90})
	require.Error(t, err)
	assert.True(t, errors.IsPlanLimit(err))
	assert.Empty(t, products.created)
}

func TestAddProduct_ProTierIsNotCapped(t *testing.T) {
	profiles := &fakeProfileRepo{profiles: map[uint]*profile.BusinessProfile{7: tierProfile(t, plan.TierPro)}}
	products := &fakeProductRepo{count: 1500}
	uc := NewAddProductUseCase(products, profiles, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), 7, dto.AddProductRequest{Name: "Milkshake", Price: 15})
	require.NoError(t, err)
	assert.Len(t, products.created, 1)
}

func TestAddProduct_RequiresOnboarding(t *testing.T) {
	profiles := &fakeProfileRepo{profiles: map[uint]*profile.BusinessProfile{}}
	uc := NewAddProductUseCase(&fakeProductRepo{}, profiles, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), 7, dto.AddProductRequest{Name: "Milkshake", Price: 15})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestUpdateProduct_OwnershipEnforced(t *testing.T) {
	mine, err := catalog.NewProduct(7, "Açaí 500ml", "", 19.90, "Açaí")
	require.NoError(t, err)
	foreign, err := catalog.NewProduct(99, "Pastel", "", 10, "Salgados")
	require.NoError(t, err)

	products := &fakeProductRepo{bySID: map[string]*catalog.Product{
		mine.SID():    mine,
		foreign.SID(): foreign,
	}}
	uc := NewUpdateProductUseCase(products, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), 7, mine.SID(), dto.UpdateProductRequest{
		Name:  "Açaí 500ml Turbinado",
		Price: 22.90,
	})
	require.NoError(t, err)
	assert.Equal(t, "Açaí 500ml Turbinado", result.Name)
	assert.Len(t, products.updated, 1)

	_, err = uc.Execute(context.Background(), 7, foreign.SID(), dto.UpdateProductRequest{Name: "Hack", Price: 1})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err), "foreign products must look nonexistent")
}

func TestDeleteProduct_Delegates(t *testing.T) {
	products := &fakeProductRepo{}
	uc := NewDeleteProductUseCase(products, logger.NewNopLogger())

	require.NoError(t, uc.Execute(context.Background(), 7, "prd_abc"))
	assert.Equal(t, "prd_abc", products.deletedSID)

	products.deleteErr = errors.NewNotFoundError("produto não encontrado")
	err := uc.Execute(context.Background(), 7, "prd_zzz")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
