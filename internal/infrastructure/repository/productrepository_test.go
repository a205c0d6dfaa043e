package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rannaghore/internal/shared/errors"
)

func TestProductRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	id := seedProduct(t, db, "Shorshe Ilish", "Rannaghore", "Fish", 950, true)

	t.Run("returns stored product", func(t *testing.T) {
		p, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Shorshe Ilish", p.Name())
		assert.Equal(t, int64(950), p.Price())
		assert.True(t, p.IsActive())
	})

	t.Run("unknown ID returns not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestProductRepository_ListActive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seedProduct(t, db, "Beef Bhuna", "Rannaghore", "Meat", 450, true)
	seedProduct(t, db, "Aloo Bhorta", "Rannaghore", "Vegetarian", 120, true)
	seedProduct(t, db, "Retired Dish", "Rannaghore", "Meat", 300, false)

	list, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Ordered by name.
	assert.Equal(t, "Aloo Bhorta", list[0].Name())
	assert.Equal(t, "Beef Bhuna", list[1].Name())
}

func TestProductRepository_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seedProduct(t, db, "Chicken Roast", "Rannaghore", "Meat", 400, true)
	seedProduct(t, db, "Morog Polao", "Rannaghore", "Rice", 350, true)
	seedProduct(t, db, "Hidden Chicken", "Rannaghore", "Meat", 380, false)

	t.Run("matches name case-insensitively", func(t *testing.T) {
		list, err := repo.Search(ctx, "chicken")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Chicken Roast", list[0].Name())
	})

	t.Run("matches category", func(t *testing.T) {
		list, err := repo.Search(ctx, "rice")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Morog Polao", list[0].Name())
	})

	t.Run("empty query falls back to full active list", func(t *testing.T) {
		list, err := repo.Search(ctx, "")
		require.NoError(t, err)
		assert.Len(t, list, 2)
	})

	t.Run("no match returns empty slice", func(t *testing.T) {
		list, err := repo.Search(ctx, "pizza")
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestProductRepository_DistinctCategories(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seedProduct(t, db, "Beef Bhuna", "Rannaghore", "Meat", 450, true)
	seedProduct(t, db, "Mutton Rezala", "Rannaghore", "Meat", 600, true)
	seedProduct(t, db, "Khichuri", "Rannaghore", "Rice", 250, true)

	categories, err := repo.DistinctCategories(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Meat", "Rice"}, categories)
}
