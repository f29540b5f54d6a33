package application

import "github.com/lelekart/storefront/internal/curation/domain"

// HomeView 首页全部策展货架的快照。
// 空货架在组装时即被省略，与"缺货架不报错"的降级语义一致。
type HomeView struct {
	Featured      []domain.Product           `json:"featured,omitempty"`
	PriceTiers    []domain.Bucket            `json:"price_tiers,omitempty"`
	DiscountTiers []domain.DiscountBucket    `json:"discount_tiers,omitempty"`
	BestSellers   []domain.DiscountedProduct `json:"best_sellers,omitempty"`
	Trending      []domain.DiscountedProduct `json:"trending,omitempty"`
	FeaturedDeals []domain.DiscountedProduct `json:"featured_deals,omitempty"`
	Categories    []domain.CategoryBlock     `json:"categories,omitempty"`
}
