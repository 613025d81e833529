package repo

import (
	"ShopFront/internal/model"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seeded(t *testing.T) ItemRepository {
	t.Helper()
	r := NewItemRepository(newTestDB(t))
	n, err := SeedItems(context.Background(), r)
	require.NoError(t, err)
	require.Equal(t, 6, n)
	return r
}

func names(items []model.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func strp(s string) *string { return &s }

func decp(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestSeedItems_OnlyWhenEmpty(t *testing.T) {
	r := seeded(t)
	ctx := context.Background()

	// повторный сид ничего не добавляет
	n, err := SeedItems(ctx, r)
	assert.NoError(t, err)
	assert.Equal(t, 0, n)

	cnt, err := r.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(6), cnt)
}

func TestItemRepository_List_NoFilters(t *testing.T) {
	r := seeded(t)
	items, err := r.List(context.Background(), ItemFilter{})
	assert.NoError(t, err)
	assert.Equal(t, []string{"Laptop", "Smartphone", "Coffee Mug", "Book", "Headphones", "T-Shirt"}, names(items))

	// цена читается из БД без потерь
	assert.True(t, decimal.RequireFromString("999.99").Equal(items[0].Price), items[0].Price.String())
}

func TestItemRepository_List_Filters(t *testing.T) {
	r := seeded(t)
	ctx := context.Background()

	t.Run("category and min price", func(t *testing.T) {
		items, err := r.List(ctx, ItemFilter{Category: strp("Electronics"), MinPrice: decp("100")})
		assert.NoError(t, err)
		assert.Equal(t, []string{"Laptop", "Smartphone", "Headphones"}, names(items))
	})

	t.Run("price bounds are inclusive", func(t *testing.T) {
		items, err := r.List(ctx, ItemFilter{MinPrice: decp("19.99"), MaxPrice: decp("149.99")})
		assert.NoError(t, err)
		assert.Equal(t, []string{"Coffee Mug", "Headphones", "T-Shirt"}, names(items))
	})

	t.Run("search in name or description", func(t *testing.T) {
		items, err := r.List(ctx, ItemFilter{Search: strp("phone")})
		assert.NoError(t, err)
		assert.Equal(t, []string{"Smartphone", "Headphones"}, names(items))

		items, err = r.List(ctx, ItemFilter{Search: strp("novel")})
		assert.NoError(t, err)
		assert.Equal(t, []string{"Book"}, names(items))
	})

	t.Run("search is case sensitive", func(t *testing.T) {
		items, err := r.List(ctx, ItemFilter{Search: strp("laptop")})
		assert.NoError(t, err)
		// "laptop" есть только в описании Laptop ("High-performance laptop")
		assert.Equal(t, []string{"Laptop"}, names(items))

		items, err = r.List(ctx, ItemFilter{Search: strp("LAPTOP")})
		assert.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("nothing matches -> empty, not nil", func(t *testing.T) {
		items, err := r.List(ctx, ItemFilter{Category: strp("Toys")})
		assert.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}

func TestItemRepository_Categories_Distinct(t *testing.T) {
	r := seeded(t)
	cats, err := r.Categories(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []string{"Books", "Clothing", "Electronics", "Home"}, cats)
}

func TestItemRepository_GetByID(t *testing.T) {
	r := seeded(t)
	ctx := context.Background()

	it, err := r.GetByID(ctx, 3)
	assert.NoError(t, err)
	assert.Equal(t, "Coffee Mug", it.Name)

	it, err = r.GetByID(ctx, 999)
	assert.Nil(t, it)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}
