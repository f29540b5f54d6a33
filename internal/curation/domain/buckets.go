package domain

import (
	"sort"
	"strings"
)

// 各货架的固定容量。价格档取 4、折扣档取 5 的差异沿袭线上行为。
const (
	PriceTierSize       = 4
	DiscountTierSize    = 5
	SelectionSize       = 4
	FeaturedSize        = 5
	HomeCategoryTopN    = 4
	SectionCategoryTopN = 6
)

// Categories 首页分类货架的固定顺序
var Categories = []string{
	"Electronics",
	"Fashion",
	"Home",
	"Appliances",
	"Mobiles",
	"Beauty",
	"Toys",
	"Grocery",
}

// Bucket 按价格区间选出的货架
type Bucket struct {
	Label    string    `json:"label"`
	Products []Product `json:"products"`
}

// DiscountedProduct 商品及其折扣百分比（用于折扣角标展示）
type DiscountedProduct struct {
	Product
	Discount int `json:"discount"`
}

// DiscountBucket 按折扣区间选出的货架
type DiscountBucket struct {
	Label    string              `json:"label"`
	Products []DiscountedProduct `json:"products"`
}

// CategoryBlock 单个分类的 top-N 货架
type CategoryBlock struct {
	Category string    `json:"category"`
	Title    string    `json:"title"`
	Products []Product `json:"products"`
}

type priceTier struct {
	label    string
	min, max float64 // 半开区间 (min, max]
}

var priceTiers = []priceTier{
	{"Under ₹199", 0, 199},
	{"Under ₹399", 199, 399},
	{"Under ₹599", 399, 599},
}

type discountTier struct {
	label     string
	low, high int // 半开区间 [low, high)
}

var discountTiers = []discountTier{
	{"20% Off", 20, 40},
	{"40% Off", 40, 50},
	{"50% Off", 50, 60},
}

// PriceTierBuckets 计算三个价格档货架：(0,199]、(199,399]、(399,599]，
// 各档按输入顺序取前 4 个。空档也会返回，由展示层决定是否渲染。
func PriceTierBuckets(products []Product) []Bucket {
	buckets := make([]Bucket, 0, len(priceTiers))
	for _, tier := range priceTiers {
		var selected []Product
		for _, p := range products {
			if len(selected) == PriceTierSize {
				break
			}
			if p.Price > tier.min && p.Price <= tier.max {
				selected = append(selected, p)
			}
		}
		buckets = append(buckets, Bucket{Label: tier.label, Products: selected})
	}
	return buckets
}

// DiscountTierBuckets 计算三个折扣档货架：[20,40)、[40,50)、[50,60)，
// 各档按输入顺序取前 5 个。折扣未定义的商品不参与。
func DiscountTierBuckets(products []Product) []DiscountBucket {
	buckets := make([]DiscountBucket, 0, len(discountTiers))
	for _, tier := range discountTiers {
		var selected []DiscountedProduct
		for _, p := range products {
			if len(selected) == DiscountTierSize {
				break
			}
			if !p.HasDiscount() {
				continue
			}
			d := p.DiscountPercent()
			if d >= tier.low && d < tier.high {
				selected = append(selected, DiscountedProduct{Product: p, Discount: d})
			}
		}
		buckets = append(buckets, DiscountBucket{Label: tier.label, Products: selected})
	}
	return buckets
}

type bestSellerCandidate struct {
	product DiscountedProduct
	tier    int
}

// BestSellers 从三个折扣档候选集中选出恰好 4 个商品。
// 候选按折扣降序排列；先在总数不超过 2 的前提下把候选放入其所属档位
// （每档最多 2 个），再为仍为空的档位各补 1 个该档候选；最后按 20/40/50
// 档位顺序展开。凑不足 4 个时整个货架省略（返回 nil）。
func BestSellers(products []Product) []DiscountedProduct {
	var candidates []bestSellerCandidate
	for i, bucket := range DiscountTierBuckets(products) {
		tier := discountTiers[i].low
		for _, p := range bucket.Products {
			candidates = append(candidates, bestSellerCandidate{product: p, tier: tier})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].product.Discount > candidates[j].product.Discount
	})

	groups := map[int][]DiscountedProduct{}
	placed := 0
	for _, c := range candidates {
		if len(groups[c.tier]) < 2 && placed < 2 {
			groups[c.tier] = append(groups[c.tier], c.product)
			placed++
		}
	}

	for _, tier := range []int{20, 40, 50} {
		if len(groups[tier]) > 0 {
			continue
		}
		for _, c := range candidates {
			if c.tier == tier {
				groups[tier] = append(groups[tier], c.product)
				break
			}
		}
	}

	var result []DiscountedProduct
	for _, tier := range []int{20, 40, 50} {
		result = append(result, groups[tier]...)
	}
	if len(result) > SelectionSize {
		result = result[:SelectionSize]
	}
	if len(result) != SelectionSize {
		return nil
	}
	return result
}

// trendingRules 按顺序匹配商品名的四条规则。
// "shirt" 同时覆盖 t-shirt/tshirt 的写法。
var trendingRules = []string{"shirt", "saree", "top", "jeans"}

// Trending 从 Fashion 分类中选出恰好 4 个商品。
// 候选池按折扣升序（偏向全价新品），四条名称规则依次各取第一个未用
// 的匹配项，剩余槽位从池头按序补齐。凑不足 4 个时货架省略。
func Trending(products []Product) []DiscountedProduct {
	var pool []DiscountedProduct
	for _, p := range products {
		if strings.EqualFold(p.Category, "Fashion") {
			pool = append(pool, DiscountedProduct{Product: p, Discount: p.DiscountPercent()})
		}
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Discount < pool[j].Discount
	})

	used := make(map[uint]bool)
	var result []DiscountedProduct
	for _, rule := range trendingRules {
		for _, p := range pool {
			if used[p.ID] {
				continue
			}
			if strings.Contains(strings.ToLower(p.Name), rule) {
				result = append(result, p)
				used[p.ID] = true
				break
			}
		}
	}

	for _, p := range pool {
		if len(result) == SelectionSize {
			break
		}
		if !used[p.ID] {
			result = append(result, p)
			used[p.ID] = true
		}
	}

	if len(result) < SelectionSize {
		return nil
	}
	return result[:SelectionSize]
}

// FeaturedDeals 选出 MRP 最高的 4 个有效折扣商品，按 MRP 降序。
// 凑不足 4 个时货架省略。
func FeaturedDeals(products []Product) []DiscountedProduct {
	var pool []DiscountedProduct
	for _, p := range products {
		if p.HasDiscount() {
			pool = append(pool, DiscountedProduct{Product: p, Discount: p.DiscountPercent()})
		}
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return *pool[i].MRP > *pool[j].MRP
	})

	if len(pool) < SelectionSize {
		return nil
	}
	return pool[:SelectionSize]
}

// TopByCategory 按固定分类顺序计算各分类货架，保持输入顺序各取前 n 个。
// 无商品的分类整块省略。
func TopByCategory(products []Product, n int) []CategoryBlock {
	var blocks []CategoryBlock
	for _, category := range Categories {
		var selected []Product
		for _, p := range products {
			if len(selected) == n {
				break
			}
			if strings.EqualFold(p.Category, category) {
				selected = append(selected, p)
			}
		}
		if len(selected) == 0 {
			continue
		}
		blocks = append(blocks, CategoryBlock{
			Category: category,
			Title:    "Top " + category,
			Products: selected,
		})
	}
	return blocks
}

// FeaturedProducts 首页优先展示的前 5 个有效折扣商品，按输入顺序。
func FeaturedProducts(products []Product) []Product {
	var result []Product
	for _, p := range products {
		if len(result) == FeaturedSize {
			break
		}
		if p.HasDiscount() {
			result = append(result, p)
		}
	}
	return result
}
