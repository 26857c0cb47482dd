package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Amritpal5039/Tazzabazzar-adminpanel/internal/catalog"
)

func testStore(t *testing.T) *catalog.Store {
	t.Helper()
	products, categories := catalog.Fixtures(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC))
	return catalog.NewStore(products, categories)
}

func TestCreateThenGet(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	before, err := s.Products(ctx)
	require.NoError(t, err)

	created, err := s.CreateProduct(ctx, catalog.CreateProduct{
		Name:     "Coriander",
		Category: "Herbs",
		Price:    decimal.NewFromInt(15),
		Stock:    40,
		Unit:     "bunch",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := s.Product(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)

	after, err := s.Products(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)

	seen := 0
	for _, p := range after {
		if p.ID == created.ID {
			seen++
		}
	}
	require.Equal(t, 1, seen, "created product must appear exactly once")
}

func TestCreateRejectsInvalidFields(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	_, err := s.CreateProduct(ctx, catalog.CreateProduct{Name: "  ", Unit: "kg"})
	require.ErrorIs(t, err, catalog.ErrInvalid)

	_, err = s.CreateProduct(ctx, catalog.CreateProduct{
		Name: "Bad", Unit: "kg", Price: decimal.NewFromInt(-1),
	})
	require.ErrorIs(t, err, catalog.ErrInvalid)

	_, err = s.CreateProduct(ctx, catalog.CreateProduct{
		Name: "Bad", Unit: "kg", Stock: -1,
	})
	require.ErrorIs(t, err, catalog.ErrInvalid)
}

func TestUpdateIsPartialAndAdvancesUpdatedAt(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	s := testStore(t).WithClock(func() time.Time { return clock })

	orig, err := s.Product(ctx, "1")
	require.NoError(t, err)

	stock := 5
	clock = clock.Add(time.Hour)
	updated, err := s.UpdateProduct(ctx, "1", catalog.ProductPatch{Stock: &stock})
	require.NoError(t, err)

	require.Equal(t, 5, updated.Stock)
	require.Equal(t, orig.Name, updated.Name)
	require.Equal(t, orig.Category, updated.Category)
	require.True(t, orig.Price.Equal(updated.Price))
	require.Equal(t, orig.CreatedAt, updated.CreatedAt)
	require.True(t, !updated.UpdatedAt.Before(orig.UpdatedAt), "UpdatedAt must never move backwards")
	require.Equal(t, clock, updated.UpdatedAt)
}

func TestUpdateFailureLeavesRecordUnchanged(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	orig, err := s.Product(ctx, "2")
	require.NoError(t, err)

	bad := -3
	_, err = s.UpdateProduct(ctx, "2", catalog.ProductPatch{Stock: &bad})
	require.ErrorIs(t, err, catalog.ErrInvalid)

	got, err := s.Product(ctx, "2")
	require.NoError(t, err)
	require.Equal(t, orig, got)

	_, err = s.UpdateProduct(ctx, "nope", catalog.ProductPatch{Stock: &orig.Stock})
	require.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	ok, err := s.DeleteProduct(ctx, "3")
	require.NoError(t, err)
	require.True(t, ok)

	_, err = s.Product(ctx, "3")
	require.ErrorIs(t, err, catalog.ErrNotFound)

	before, err := s.Products(ctx)
	require.NoError(t, err)

	ok, err = s.DeleteProduct(ctx, "3")
	require.NoError(t, err)
	require.False(t, ok)

	after, err := s.Products(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before), "deleting an absent id must not change the collection")
}

func TestSnapshotsAreIndependentCopies(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	first, err := s.Products(ctx)
	require.NoError(t, err)
	second, err := s.Products(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second)

	// Mutating a snapshot must not leak into the store.
	first[0].Name = "Hacked"
	got, err := s.Product(ctx, first[0].ID)
	require.NoError(t, err)
	require.NotEqual(t, "Hacked", got.Name)
}

func TestSearchMatchesNameAndCategory(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	byName, err := s.Search(ctx, "toma")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	require.Equal(t, "Tomatoes", byName[0].Name)

	byCategory, err := s.Search(ctx, "leafy")
	require.NoError(t, err)
	require.Len(t, byCategory, 2)

	none, err := s.Search(ctx, "zzz")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestCategoriesSnapshot(t *testing.T) {
	ctx := context.Background()
	s := testStore(t)

	cats, err := s.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 4)
	require.Equal(t, "Vegetables", cats[0].Name)
}
