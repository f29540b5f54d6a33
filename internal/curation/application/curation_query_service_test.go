package application

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lelekart/storefront/internal/curation/domain"
	"github.com/lelekart/storefront/pkg/cache"
)

type fakeReader struct {
	products []domain.Product
	calls    int
}

func (r *fakeReader) ListWindow(_ context.Context, limit int) ([]domain.Product, error) {
	r.calls++
	if len(r.products) > limit {
		return r.products[:limit], nil
	}
	return r.products, nil
}

type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, dest interface{}) error {
	data, ok := c.entries[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value interface{}, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = data
	return nil
}

func (c *fakeCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.entries, key)
	}
	return nil
}

func mrp(v float64) *float64 { return &v }

func storefrontProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Casual Shirt", Category: "Fashion", Price: 80, MRP: mrp(100)},
		{ID: 2, Name: "Silk Saree", Category: "Fashion", Price: 150, MRP: mrp(300)},
		{ID: 3, Name: "Crop Top", Category: "Fashion", Price: 120, MRP: mrp(240)},
		{ID: 4, Name: "Slim Jeans", Category: "Fashion", Price: 400, MRP: mrp(800)},
		{ID: 5, Name: "Smart TV", Category: "Electronics", Price: 500, MRP: mrp(1000)},
		{ID: 6, Name: "Mixer", Category: "Appliances", Price: 90},
	}
}

func TestGetHomeViewDerivesAndCaches(t *testing.T) {
	reader := &fakeReader{products: storefrontProducts()}
	c := newFakeCache()
	svc := NewCurationQueryService(reader, c)
	ctx := context.Background()

	view, err := svc.GetHomeView(ctx)
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.NotEmpty(t, view.Categories)
	assert.Equal(t, 1, reader.calls)
	assert.Contains(t, c.entries, "curation:home")

	// 第二次命中快照，不再读库
	again, err := svc.GetHomeView(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, reader.calls)
	assert.Equal(t, view.Categories, again.Categories)
}

func TestInvalidateForcesRebuild(t *testing.T) {
	reader := &fakeReader{products: storefrontProducts()}
	c := newFakeCache()
	svc := NewCurationQueryService(reader, c)
	ctx := context.Background()

	_, err := svc.GetHomeView(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, reader.calls)

	svc.Invalidate(ctx)
	assert.NotContains(t, c.entries, "curation:home")

	_, err = svc.GetHomeView(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, reader.calls)
}

func TestGetHomeViewEmptyCatalog(t *testing.T) {
	svc := NewCurationQueryService(&fakeReader{}, newFakeCache())

	view, err := svc.GetHomeView(context.Background())
	require.NoError(t, err)
	assert.Empty(t, view.Featured)
	assert.Empty(t, view.PriceTiers)
	assert.Empty(t, view.BestSellers)
	assert.Empty(t, view.Categories)
}

func TestGetPriceTiersFiltersEmptyBuckets(t *testing.T) {
	reader := &fakeReader{products: []domain.Product{
		{ID: 1, Name: "Mug", Category: "Home", Price: 99},
	}}
	svc := NewCurationQueryService(reader, newFakeCache())

	buckets, err := svc.GetPriceTiers(context.Background())
	require.NoError(t, err)
	require.Len(t, buckets, 1)
	assert.Equal(t, "Under ₹199", buckets[0].Label)
}

func TestGetCategoryBlock(t *testing.T) {
	reader := &fakeReader{products: storefrontProducts()}
	svc := NewCurationQueryService(reader, newFakeCache())
	ctx := context.Background()

	block, err := svc.GetCategoryBlock(ctx, "Fashion")
	require.NoError(t, err)
	require.NotNil(t, block)
	assert.Equal(t, "Fashion", block.Category)
	assert.Len(t, block.Products, 4)

	// 路径来的分类名通常是小写，匹配不区分大小写
	block, err = svc.GetCategoryBlock(ctx, "fashion")
	require.NoError(t, err)
	require.NotNil(t, block)
	assert.Equal(t, "Fashion", block.Category)

	// 无商品的分类返回 nil
	block, err = svc.GetCategoryBlock(ctx, "Grocery")
	require.NoError(t, err)
	assert.Nil(t, block)
}
