package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"chefviral/internal/domain/catalog"
	"chefviral/internal/domain/content"
	"chefviral/internal/infrastructure/persistence/models"
	apperrors "chefviral/internal/shared/errors"
	"chefviral/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.ProductModel{}, &models.GeneratedContentModel{})
	require.NoError(t, err)

	return db
}

func createTestProduct(t *testing.T, userID uint, name string, price float64) *catalog.Product {
	p, err := catalog.NewProduct(userID, name, "", price, "Pizzas")
	require.NoError(t, err)
	return p
}

func TestProductRepository_CreateAndGetBySID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db, logger.NewNopLogger())
	ctx := context.Background()

	p := createTestProduct(t, 1, "Calabresa Grande", 49.90)
	require.NoError(t, repo.Create(ctx, p))
	assert.NotZero(t, p.DBID())

	found, err := repo.GetBySID(ctx, p.SID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Calabresa Grande", found.Name())
	assert.Equal(t, 49.90, found.Price())

	missing, err := repo.GetBySID(ctx, "prd_nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductRepository_ListAndCountScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db, logger.NewNopLogger())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, createTestProduct(t, 1, "Marguerita", 45)))
	require.NoError(t, repo.Create(ctx, createTestProduct(t, 1, "Quatro Queijos", 52)))
	require.NoError(t, repo.Create(ctx, createTestProduct(t, 2, "Pastel de Carne", 10)))

	mine, err := repo.ListByUser(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	count, err := repo.CountByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = repo.CountByUser(ctx, 99)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestProductRepository_UpdateRequiresOwnership(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db, logger.NewNopLogger())
	ctx := context.Background()

	p := createTestProduct(t, 1, "Marguerita", 45)
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, p.Update("Marguerita Especial", "Com manjericão fresco", 48, "Pizzas"))
	require.NoError(t, repo.Update(ctx, p))

	found, err := repo.GetBySID(ctx, p.SID())
	require.NoError(t, err)
	assert.Equal(t, "Marguerita Especial", found.Name())

	foreign, err := catalog.ReconstructProduct(
		p.DBID(), p.SID(), 99, "Hack", "", 1, "Pizzas", "", false,
		p.CreatedAt(), p.UpdatedAt(),
	)
	require.NoError(t, err)
	err = repo.Update(ctx, foreign)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestProductRepository_DeleteScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db, logger.NewNopLogger())
	ctx := context.Background()

	p := createTestProduct(t, 1, "Marguerita", 45)
	require.NoError(t, repo.Create(ctx, p))

	err := repo.Delete(ctx, p.SID(), 99)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	require.NoError(t, repo.Delete(ctx, p.SID(), 1))

	found, err := repo.GetBySID(ctx, p.SID())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestGeneratedContentRepository_CountItemsSince(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGeneratedContentRepository(db, logger.NewNopLogger())
	ctx := context.Background()

	saveItem := func(userID uint, runSID string) {
		item, err := content.NewGeneratedContent(userID, runSID, content.KindFeed, "Olha essa", "Legenda", "Peça já", nil)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, item))
	}

	run := content.NewRunSID()
	saveItem(1, run)
	saveItem(1, run)
	saveItem(1, run)
	saveItem(1, content.NewRunSID())
	saveItem(2, content.NewRunSID())

	since := time.Now().UTC().Add(-time.Hour)

	count, err := repo.CountItemsSince(ctx, 1, since)
	require.NoError(t, err)
	assert.Equal(t, 4, count, "every item counts, even within one run")

	count, err = repo.CountItemsSince(ctx, 2, since)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.CountItemsSince(ctx, 1, time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	assert.Zero(t, count)
}
