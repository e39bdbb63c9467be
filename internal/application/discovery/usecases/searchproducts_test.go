package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chefviral/internal/application/discovery/dto"
	"chefviral/internal/domain/catalog"
	"chefviral/internal/domain/profile"
	"chefviral/internal/shared/logger"
)

type fakeProfileRepo struct {
	profile.Repository
	tenantsByLocation map[string][]uint
	summaries         map[uint]profile.Summary
}

func (f *fakeProfileRepo) ResolveTenantsByLocation(ctx context.Context, location string) ([]uint, error) {
	return f.tenantsByLocation[location], nil
}

func (f *fakeProfileRepo) SummariesByUserIDs(ctx context.Context, userIDs []uint) (map[uint]profile.Summary, error) {
	out := make(map[uint]profile.Summary)
	for _, id := range userIDs {
		if s, ok := f.summaries[id]; ok {
			out[id] = s
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	catalog.Repository
	products  []*catalog.Product
	gotFilter catalog.SearchFilter
}

func (f *fakeProductRepo) Search(ctx context.Context, filter catalog.SearchFilter) ([]*catalog.Product, error) {
	f.gotFilter = filter
	return f.products, nil
}

func ownedProduct(t *testing.T, userID uint, name string, price float64) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(userID, name, "", price, "Burgers")
	require.NoError(t, err)
	return p
}

func TestSearchProducts_EmbedsBusinessSnapshot(t *testing.T) {
	profiles := &fakeProfileRepo{
		summaries: map[uint]profile.Summary{
			7: {UserID: 7, Name: "Hamburgueria do Zé", Slug: "hamburgueria-do-ze-a1b2", City: "São Paulo", Phone: "11999998888"},
		},
	}
	products := &fakeProductRepo{products: []*catalog.Product{
		ownedProduct(t, 7, "X-Salada", 22),
		ownedProduct(t, 7, "X-Bacon", 26),
	}}

	uc := NewSearchProductsUseCase(products, profiles, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), dto.SearchRequest{Query: "x-"})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Count)
	assert.Equal(t, "hamburgueria-do-ze-a1b2", result.Results[0].Business.Slug)
	assert.Equal(t, "x-", products.gotFilter.SearchTerm)
	assert.Equal(t, 50, products.gotFilter.Limit)
}

func TestSearchProducts_LocationWithNoTenantsShortCircuits(t *testing.T) {
	profiles := &fakeProfileRepo{tenantsByLocation: map[string][]uint{}}
	products := &fakeProductRepo{products: []*catalog.Product{ownedProduct(t, 7, "X-Salada", 22)}}

	uc := NewSearchProductsUseCase(products, profiles, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), dto.SearchRequest{Location: "Acre"})
	require.NoError(t, err)

	assert.Empty(t, result.Results)
	assert.Zero(t, products.gotFilter.Limit, "product search must not run when no tenant matches")
}

func TestSearchProducts_LocationNarrowsToResolvedTenants(t *testing.T) {
	profiles := &fakeProfileRepo{
		tenantsByLocation: map[string][]uint{"mooca": {7, 9}},
		summaries: map[uint]profile.Summary{
			7: {UserID: 7, Name: "Hamburgueria do Zé", Slug: "ze"},
			9: {UserID: 9, Name: "Pizzaria da Vila", Slug: "vila"},
		},
	}
	products := &fakeProductRepo{products: []*catalog.Product{
		ownedProduct(t, 7, "X-Salada", 22),
		ownedProduct(t, 9, "Marguerita", 45),
	}}

	uc := NewSearchProductsUseCase(products, profiles, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), dto.SearchRequest{Location: "mooca"})
	require.NoError(t, err)

	assert.Equal(t, []uint{7, 9}, products.gotFilter.TenantIDs)
	assert.Equal(t, 2, result.Count)
}

func TestSearchProducts_DropsProductsWithoutProfile(t *testing.T) {
	profiles := &fakeProfileRepo{
		summaries: map[uint]profile.Summary{7: {UserID: 7, Name: "Hamburgueria do Zé", Slug: "ze"}},
	}
	products := &fakeProductRepo{products: []*catalog.Product{
		ownedProduct(t, 7, "X-Salada", 22),
		ownedProduct(t, 42, "Órfão", 10),
	}}

	uc := NewSearchProductsUseCase(products, profiles, logger.NewNopLogger())

	result, err := uc.Execute(context.Background(), dto.SearchRequest{})
	require.NoError(t, err)

	require.Equal(t, 1, result.Count)
	assert.Equal(t, "X-Salada", result.Results[0].Name)
}

func TestSearchProducts_PriceBoundsPassThrough(t *testing.T) {
	profiles := &fakeProfileRepo{summaries: map[uint]profile.Summary{}}
	products := &fakeProductRepo{}

	uc := NewSearchProductsUseCase(products, profiles, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), dto.SearchRequest{
		MinPrice: 10, MinPriceSet: true,
		MaxPrice: 30, MaxPriceSet: true,
	})
	require.NoError(t, err)

	assert.True(t, products.gotFilter.MinPriceSet)
	assert.Equal(t, 10.0, products.gotFilter.MinPrice)
	assert.True(t, products.gotFilter.MaxPriceSet)
	assert.Equal(t, 30.0, products.gotFilter.MaxPrice)
}
