package integration

import (
	"context"
	"testing"
	"time"

	"menu-eva/internal/model"
	"menu-eva/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// TestMenuRepositories_Integration walks a whole menu through the repository
// layer the way the dashboard does: build it up, reorder and hide pieces,
// then tear it down.
func TestMenuRepositories_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	categories := repository.NewCategoryRepository(testDB.Pool, logger)
	products := repository.NewProductRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("build and reorder a menu", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		hotID, err := categories.Create(ctx, model.NewCategory{
			Name: "مشروبات ساخنة", NameEn: strPtr("Hot Drinks"), DisplayOrder: 2,
		})
		require.NoError(t, err)

		coldID, err := categories.Create(ctx, model.NewCategory{
			Name: "مشروبات باردة", NameEn: strPtr("Cold Drinks"), DisplayOrder: 1,
		})
		require.NoError(t, err)

		all, err := categories.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, coldID, all[0].ID)
		assert.Equal(t, hotID, all[1].ID)

		// Swap the ordering and confirm the listing follows.
		order := 3
		require.NoError(t, categories.Update(ctx, coldID, model.CategoryPatch{DisplayOrder: &order}))

		all, err = categories.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, hotID, all[0].ID)
	})

	t.Run("soft delete hides the category but keeps the rows", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		categoryID := SeedMenu(t, testDB.Pool)

		listed, err := products.GetByCategory(ctx, categoryID)
		require.NoError(t, err)
		require.Len(t, listed, 2)

		require.NoError(t, categories.SoftDelete(ctx, categoryID))

		visible, err := categories.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, visible)

		// The rows survive; only the public listing changes.
		var count int
		err = testDB.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("hard delete cascades to products", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		categoryID := SeedMenu(t, testDB.Pool)

		require.NoError(t, categories.Delete(ctx, categoryID))

		var count int
		err := testDB.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&count)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("expired new badges are swept", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		categoryID := SeedMenu(t, testDB.Pool)

		yesterday := time.Now().AddDate(0, 0, -1)
		tomorrow := time.Now().AddDate(0, 0, 1)

		staleID, err := products.Create(ctx, model.NewProduct{
			Name: "موهيتو", Price: 14, CategoryID: categoryID,
			IsNew: true, NewUntilDate: &yesterday,
		})
		require.NoError(t, err)

		freshID, err := products.Create(ctx, model.NewProduct{
			Name: "آيس لاتيه", Price: 16, CategoryID: categoryID,
			IsNew: true, NewUntilDate: &tomorrow,
		})
		require.NoError(t, err)

		expired, err := products.ListExpiredNew(ctx)
		require.NoError(t, err)
		require.Len(t, expired, 1)
		assert.Equal(t, staleID, expired[0].ID)

		affected, err := products.ClearExpiredNew(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		stale, err := products.GetByID(ctx, staleID)
		require.NoError(t, err)
		require.NotNil(t, stale)
		assert.False(t, stale.IsNew)

		fresh, err := products.GetByID(ctx, freshID)
		require.NoError(t, err)
		require.NotNil(t, fresh)
		assert.True(t, fresh.IsNew)
	})
}

// TestPromotionRepository_Integration covers the promotion banner lifecycle.
func TestPromotionRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	promotions := repository.NewPromotionRepository(testDB.Pool, logger)

	ctx := context.Background()

	t.Run("create, patch and hide a banner", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

		id, err := promotions.Create(ctx, model.NewPromotion{
			Title:     "عرض سبتمبر",
			TitleEn:   strPtr("September Offer"),
			StartDate: &start,
			EndDate:   &end,
		})
		require.NoError(t, err)

		banner, err := promotions.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, banner)
		assert.Equal(t, "عرض سبتمبر", banner.Title)
		require.NotNil(t, banner.EndDate)
		assert.True(t, end.Equal(*banner.EndDate))

		title := "عرض أكتوبر"
		require.NoError(t, promotions.Update(ctx, id, model.PromotionPatch{Title: &title}))

		banner, err = promotions.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, banner)
		assert.Equal(t, "عرض أكتوبر", banner.Title)
		assert.Equal(t, strPtr("September Offer"), banner.TitleEn)

		require.NoError(t, promotions.SoftDelete(ctx, id))

		visible, err := promotions.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, visible)
	})

	t.Run("GetByID returns nil for unknown banner", func(t *testing.T) {
		banner, err := promotions.GetByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, banner)
	})
}
