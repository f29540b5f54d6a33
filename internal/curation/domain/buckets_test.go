package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id uint, name, category string, price, mrp float64) Product {
	p := Product{ID: id, Name: name, Category: category, Price: price}
	if mrp > 0 {
		p.MRP = &mrp
	}
	return p
}

func ids(products []Product) []uint {
	out := make([]uint, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func discountedIDs(products []DiscountedProduct) []uint {
	out := make([]uint, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestDiscountPercent(t *testing.T) {
	assert.Equal(t, 20, product(1, "a", "", 80, 100).DiscountPercent())
	assert.Equal(t, 21, product(2, "a", "", 79.5, 100).DiscountPercent())
	assert.Equal(t, 0, product(3, "a", "", 100, 0).DiscountPercent())
	// mrp 不大于 price 视为无折扣
	assert.Equal(t, 0, product(4, "a", "", 100, 100).DiscountPercent())
	assert.Equal(t, 0, product(5, "a", "", 120, 100).DiscountPercent())
}

func TestPriceTierBuckets(t *testing.T) {
	products := []Product{
		product(1, "a", "", 100, 0),
		product(2, "b", "", 199, 0), // 上界含
		product(3, "c", "", 200, 0), // 落入第二档
		product(4, "d", "", 150, 0),
		product(5, "e", "", 50, 0),
		product(6, "f", "", 10, 0),
		product(7, "g", "", 20, 0), // 第一档已满 4 个
		product(8, "h", "", 399, 0),
		product(9, "i", "", 599, 0),
		product(10, "j", "", 600, 0), // 超出所有档
		product(11, "k", "", 0, 0),   // 价格 0 不参与
	}

	buckets := PriceTierBuckets(products)
	require.Len(t, buckets, 3)

	assert.Equal(t, "Under ₹199", buckets[0].Label)
	assert.Equal(t, []uint{1, 2, 4, 5}, ids(buckets[0].Products))

	assert.Equal(t, "Under ₹399", buckets[1].Label)
	assert.Equal(t, []uint{3, 8}, ids(buckets[1].Products))

	assert.Equal(t, "Under ₹599", buckets[2].Label)
	assert.Equal(t, []uint{9}, ids(buckets[2].Products))
}

func TestPriceTierBucketsEmptyInput(t *testing.T) {
	buckets := PriceTierBuckets(nil)
	require.Len(t, buckets, 3)
	for _, b := range buckets {
		assert.Empty(t, b.Products)
	}
}

func TestDiscountTierBuckets(t *testing.T) {
	products := []Product{
		product(1, "a", "", 80, 100),  // 20%
		product(2, "b", "", 61, 100),  // 39%
		product(3, "c", "", 60, 100),  // 40%
		product(4, "d", "", 50, 100),  // 50%
		product(5, "e", "", 41, 100),  // 59%
		product(6, "f", "", 30, 100),  // 70%，超出最高档
		product(7, "g", "", 90, 100),  // 10%，低于最低档
		product(8, "h", "", 100, 0),   // 无 mrp
		product(9, "i", "", 120, 100), // mrp 低于价格
	}

	buckets := DiscountTierBuckets(products)
	require.Len(t, buckets, 3)

	assert.Equal(t, "20% Off", buckets[0].Label)
	assert.Equal(t, []uint{1, 2}, discountedIDs(buckets[0].Products))
	assert.Equal(t, 20, buckets[0].Products[0].Discount)

	assert.Equal(t, "40% Off", buckets[1].Label)
	assert.Equal(t, []uint{3}, discountedIDs(buckets[1].Products))

	assert.Equal(t, "50% Off", buckets[2].Label)
	assert.Equal(t, []uint{4, 5}, discountedIDs(buckets[2].Products))
}

func TestDiscountTierBucketsCap(t *testing.T) {
	var products []Product
	for i := uint(1); i <= 8; i++ {
		products = append(products, product(i, "a", "", 75, 100)) // 全部 25%
	}

	buckets := DiscountTierBuckets(products)
	assert.Equal(t, []uint{1, 2, 3, 4, 5}, discountedIDs(buckets[0].Products))
}

func TestBestSellersFull(t *testing.T) {
	products := []Product{
		product(1, "a", "", 45, 100), // 55%
		product(2, "b", "", 46, 100), // 54%
		product(3, "c", "", 55, 100), // 45%
		product(4, "d", "", 61, 100), // 39%
	}

	result := BestSellers(products)
	require.Len(t, result, 4)
	// 折扣最高的两个同属 50 档时货架才凑得满；展开按 20/40/50 档位顺序
	assert.Equal(t, []uint{4, 3, 1, 2}, discountedIDs(result))
}

func TestBestSellersOmittedWhenShort(t *testing.T) {
	// 折扣最高的两个分属不同档位：每档各 1 个，共 3 个，货架省略
	products := []Product{
		product(1, "a", "", 45, 100), // 55%
		product(2, "b", "", 55, 100), // 45%
		product(3, "c", "", 61, 100), // 39%
	}
	assert.Nil(t, BestSellers(products))

	assert.Nil(t, BestSellers(nil))
}

func TestBestSellersIdempotent(t *testing.T) {
	products := []Product{
		product(1, "a", "", 45, 100),
		product(2, "b", "", 46, 100),
		product(3, "c", "", 55, 100),
		product(4, "d", "", 61, 100),
	}

	first := BestSellers(products)
	second := BestSellers(products)
	assert.Equal(t, first, second)
}

func TestTrendingRuleOrder(t *testing.T) {
	products := []Product{
		product(1, "Slim Jeans", "Fashion", 90, 100),   // 10%
		product(2, "Crop Top", "Fashion", 100, 0),      // 0%
		product(3, "Silk Saree", "Fashion", 95, 100),   // 5%
		product(4, "Casual Shirt", "Fashion", 80, 100), // 20%
		product(5, "Kurta", "Fashion", 100, 0),
	}

	result := Trending(products)
	require.Len(t, result, 4)
	// 规则顺序 shirt/saree/top/jeans，与折扣排序无关
	assert.Equal(t, []uint{4, 3, 2, 1}, discountedIDs(result))
}

func TestTrendingShirtCoversTshirt(t *testing.T) {
	products := []Product{
		product(1, "Graphic T-Shirt", "Fashion", 100, 0),
		product(2, "Plain Tshirt", "Fashion", 100, 0),
		product(3, "Kurta", "Fashion", 100, 0),
		product(4, "Dress", "Fashion", 100, 0),
	}

	result := Trending(products)
	require.Len(t, result, 4)
	// shirt 规则取第一个匹配，其余槽位从池头按序补齐，无重复
	assert.Equal(t, []uint{1, 2, 3, 4}, discountedIDs(result))
}

func TestTrendingBackfillPrefersLowDiscount(t *testing.T) {
	products := []Product{
		product(1, "Kurta", "Fashion", 50, 100),   // 50%
		product(2, "Dress", "Fashion", 100, 0),    // 0%
		product(3, "Dupatta", "Fashion", 90, 100), // 10%
		product(4, "Lehenga", "Fashion", 80, 100), // 20%
	}

	result := Trending(products)
	require.Len(t, result, 4)
	// 无规则命中时全部由补齐产生，按折扣升序
	assert.Equal(t, []uint{2, 3, 4, 1}, discountedIDs(result))
}

func TestTrendingOmittedWhenShort(t *testing.T) {
	products := []Product{
		product(1, "Casual Shirt", "Fashion", 100, 0),
		product(2, "Silk Saree", "Fashion", 100, 0),
		product(3, "Microwave", "Appliances", 100, 0),
	}
	assert.Nil(t, Trending(products))
}

func TestTrendingCategoryCaseInsensitive(t *testing.T) {
	products := []Product{
		product(1, "Casual Shirt", "fashion", 100, 0),
		product(2, "Silk Saree", "FASHION", 100, 0),
		product(3, "Crop Top", "Fashion", 100, 0),
		product(4, "Slim Jeans", "Fashion", 100, 0),
	}
	assert.Len(t, Trending(products), 4)
}

func TestFeaturedDeals(t *testing.T) {
	products := []Product{
		product(1, "a", "", 80, 100),
		product(2, "b", "", 400, 500),
		product(3, "c", "", 240, 300),
		product(4, "d", "", 160, 200),
		product(5, "e", "", 320, 400),
		product(6, "f", "", 1000, 0), // 无折扣，不参与
	}

	result := FeaturedDeals(products)
	require.Len(t, result, 4)
	// MRP 降序
	assert.Equal(t, []uint{2, 5, 3, 4}, discountedIDs(result))
}

func TestFeaturedDealsOmittedWhenShort(t *testing.T) {
	products := []Product{
		product(1, "a", "", 80, 100),
		product(2, "b", "", 400, 500),
		product(3, "c", "", 240, 300),
	}
	assert.Nil(t, FeaturedDeals(products))
}

func TestFeaturedDealsStableOnEqualMRP(t *testing.T) {
	products := []Product{
		product(1, "a", "", 80, 100),
		product(2, "b", "", 70, 100),
		product(3, "c", "", 60, 100),
		product(4, "d", "", 50, 100),
		product(5, "e", "", 40, 100),
	}

	result := FeaturedDeals(products)
	// MRP 全部相同时保持输入顺序
	assert.Equal(t, []uint{1, 2, 3, 4}, discountedIDs(result))
}

func TestTopByCategory(t *testing.T) {
	products := []Product{
		product(1, "Phone", "Mobiles", 100, 0),
		product(2, "Shirt", "Fashion", 100, 0),
		product(3, "TV", "Electronics", 100, 0),
		product(4, "Saree", "fashion", 100, 0), // 大小写不敏感
		product(5, "Laptop", "Electronics", 100, 0),
	}

	blocks := TopByCategory(products, 4)
	require.Len(t, blocks, 3)

	// 固定分类顺序，空分类整块省略
	assert.Equal(t, "Electronics", blocks[0].Category)
	assert.Equal(t, "Top Electronics", blocks[0].Title)
	assert.Equal(t, []uint{3, 5}, ids(blocks[0].Products))

	assert.Equal(t, "Fashion", blocks[1].Category)
	assert.Equal(t, []uint{2, 4}, ids(blocks[1].Products))

	assert.Equal(t, "Mobiles", blocks[2].Category)
}

func TestTopByCategoryLimit(t *testing.T) {
	var products []Product
	for i := uint(1); i <= 8; i++ {
		products = append(products, product(i, "Gadget", "Electronics", 100, 0))
	}

	blocks := TopByCategory(products, 6)
	require.Len(t, blocks, 1)
	assert.Equal(t, []uint{1, 2, 3, 4, 5, 6}, ids(blocks[0].Products))
}

func TestTopByCategoryEmptyInput(t *testing.T) {
	assert.Empty(t, TopByCategory(nil, 4))
}

func TestFeaturedProducts(t *testing.T) {
	products := []Product{
		product(1, "a", "", 80, 100),
		product(2, "b", "", 100, 0), // 无折扣
		product(3, "c", "", 70, 100),
		product(4, "d", "", 60, 100),
		product(5, "e", "", 50, 100),
		product(6, "f", "", 40, 100),
		product(7, "g", "", 30, 100), // 已满 5 个
	}

	result := FeaturedProducts(products)
	assert.Equal(t, []uint{1, 3, 4, 5, 6}, ids(result))
}
