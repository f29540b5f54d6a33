package application

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lelekart/storefront/internal/catalog/domain"
	"github.com/lelekart/storefront/pkg/cache"
)

type fakeProductRepository struct {
	products map[uint]*domain.Product
	getCalls int
}

func newFakeProductRepository(products ...*domain.Product) *fakeProductRepository {
	repo := &fakeProductRepository{products: map[uint]*domain.Product{}}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (r *fakeProductRepository) Save(_ context.Context, product *domain.Product) error {
	if product.ID == 0 {
		product.ID = uint(len(r.products) + 1)
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepository) GetByID(_ context.Context, id uint) (*domain.Product, error) {
	r.getCalls++
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (r *fakeProductRepository) GetByIDs(_ context.Context, ids []uint) ([]*domain.Product, error) {
	// 模拟数据库按主键顺序返回，与请求顺序无关
	var out []*domain.Product
	for id := uint(1); id <= uint(len(r.products)); id++ {
		for _, want := range ids {
			if want == id {
				out = append(out, r.products[id])
				break
			}
		}
	}
	return out, nil
}

func (r *fakeProductRepository) List(_ context.Context, _ string, _, _ int) ([]*domain.Product, int64, error) {
	return nil, 0, nil
}

func (r *fakeProductRepository) Delete(_ context.Context, id uint) error {
	delete(r.products, id)
	return nil
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

func testProduct(id uint, name string) *domain.Product {
	return &domain.Product{
		Model:    gorm.Model{ID: id},
		Name:     name,
		Category: "Electronics",
		Price:    100,
	}
}

func TestGetProductUsesCache(t *testing.T) {
	repo := newFakeProductRepository(testProduct(1, "TV"))
	c := newFakeCache()
	svc := NewCatalogQueryService(repo, c)
	ctx := context.Background()

	p, err := svc.GetProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "TV", p.Name)
	assert.Equal(t, 1, repo.getCalls)

	// 第二次命中缓存
	_, err = svc.GetProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.getCalls)
}

func TestGetProductNotFound(t *testing.T) {
	svc := NewCatalogQueryService(newFakeProductRepository(), newFakeCache())

	_, err := svc.GetProduct(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestInvalidateProductForcesReload(t *testing.T) {
	repo := newFakeProductRepository(testProduct(1, "TV"))
	c := newFakeCache()
	svc := NewCatalogQueryService(repo, c)
	ctx := context.Background()

	_, err := svc.GetProduct(ctx, 1)
	require.NoError(t, err)

	svc.InvalidateProduct(ctx, 1)

	_, err = svc.GetProduct(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.getCalls)
}

func TestGetProductsByIDsPreservesRequestOrder(t *testing.T) {
	repo := newFakeProductRepository(
		testProduct(1, "TV"),
		testProduct(2, "Phone"),
		testProduct(3, "Laptop"),
	)
	svc := NewCatalogQueryService(repo, newFakeCache())

	products, err := svc.GetProductsByIDs(context.Background(), []uint{3, 1, 2})
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, uint(3), products[0].ID)
	assert.Equal(t, uint(1), products[1].ID)
	assert.Equal(t, uint(2), products[2].ID)
}

func TestGetProductsByIDsSkipsMissing(t *testing.T) {
	repo := newFakeProductRepository(testProduct(1, "TV"))
	svc := NewCatalogQueryService(repo, newFakeCache())

	products, err := svc.GetProductsByIDs(context.Background(), []uint{9, 1})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, uint(1), products[0].ID)
}
