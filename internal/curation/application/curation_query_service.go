package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lelekart/storefront/internal/curation/domain"
	"github.com/lelekart/storefront/pkg/cache"
	"github.com/lelekart/storefront/pkg/logger"
)

const (
	homeCacheKey = "curation:home"
	homeCacheTTL = 5 * time.Minute

	// 派生窗口：与首页无限滚动可见范围同量级
	productWindow = 360
)

// Cache 首页快照缓存接口
type Cache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// CurationQueryService 策展查询服务。
// 所有货架派生都是纯函数，对同一输入重复计算结果一致，
// 缓存仅是省一次读库，不承担正确性。
type CurationQueryService struct {
	reader domain.ProductReader
	cache  Cache
}

// NewCurationQueryService 创建策展查询服务实例
func NewCurationQueryService(reader domain.ProductReader, c Cache) *CurationQueryService {
	return &CurationQueryService{
		reader: reader,
		cache:  c,
	}
}

// GetHomeView 获取首页全部货架，优先读快照缓存
func (s *CurationQueryService) GetHomeView(ctx context.Context) (*HomeView, error) {
	if s.cache != nil {
		var cached HomeView
		err := s.cache.GetJSON(ctx, homeCacheKey, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			logger.Warn(ctx, "home view cache read failed", "error", err)
		}
	}

	view, err := s.deriveHomeView(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, homeCacheKey, view, homeCacheTTL); err != nil {
			logger.Warn(ctx, "home view cache write failed", "error", err)
		}
	}

	return view, nil
}

// GetPriceTiers 获取非空的价格档货架
func (s *CurationQueryService) GetPriceTiers(ctx context.Context) ([]domain.Bucket, error) {
	products, err := s.reader.ListWindow(ctx, productWindow)
	if err != nil {
		return nil, err
	}
	return nonEmptyBuckets(domain.PriceTierBuckets(products)), nil
}

// GetDiscountTiers 获取非空的折扣档货架
func (s *CurationQueryService) GetDiscountTiers(ctx context.Context) ([]domain.DiscountBucket, error) {
	products, err := s.reader.ListWindow(ctx, productWindow)
	if err != nil {
		return nil, err
	}
	return nonEmptyDiscountBuckets(domain.DiscountTierBuckets(products)), nil
}

// GetBestSellers 获取 Best Seller 货架，凑不足 4 个返回空
func (s *CurationQueryService) GetBestSellers(ctx context.Context) ([]domain.DiscountedProduct, error) {
	products, err := s.reader.ListWindow(ctx, productWindow)
	if err != nil {
		return nil, err
	}
	return domain.BestSellers(products), nil
}

// GetTrending 获取 Trending 货架，凑不足 4 个返回空
func (s *CurationQueryService) GetTrending(ctx context.Context) ([]domain.DiscountedProduct, error) {
	products, err := s.reader.ListWindow(ctx, productWindow)
	if err != nil {
		return nil, err
	}
	return domain.Trending(products), nil
}

// GetFeaturedDeals 获取 Featured Deal 货架，凑不足 4 个返回空
func (s *CurationQueryService) GetFeaturedDeals(ctx context.Context) ([]domain.DiscountedProduct, error) {
	products, err := s.reader.ListWindow(ctx, productWindow)
	if err != nil {
		return nil, err
	}
	return domain.FeaturedDeals(products), nil
}

// GetCategoryBlock 获取单个分类货架（专区版，取前 6 个）。分类名大小写不敏感。
func (s *CurationQueryService) GetCategoryBlock(ctx context.Context, category string) (*domain.CategoryBlock, error) {
	products, err := s.reader.ListWindow(ctx, productWindow)
	if err != nil {
		return nil, err
	}
	for _, block := range domain.TopByCategory(products, domain.SectionCategoryTopN) {
		if strings.EqualFold(block.Category, category) {
			return &block, nil
		}
	}
	return nil, nil
}

// Invalidate 丢弃首页快照缓存，下次读取时重新派生
func (s *CurationQueryService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, homeCacheKey); err != nil {
		logger.Warn(ctx, "home view cache invalidation failed", "error", err)
	}
}

func (s *CurationQueryService) deriveHomeView(ctx context.Context) (*HomeView, error) {
	products, err := s.reader.ListWindow(ctx, productWindow)
	if err != nil {
		return nil, err
	}

	return &HomeView{
		Featured:      domain.FeaturedProducts(products),
		PriceTiers:    nonEmptyBuckets(domain.PriceTierBuckets(products)),
		DiscountTiers: nonEmptyDiscountBuckets(domain.DiscountTierBuckets(products)),
		BestSellers:   domain.BestSellers(products),
		Trending:      domain.Trending(products),
		FeaturedDeals: domain.FeaturedDeals(products),
		Categories:    domain.TopByCategory(products, domain.HomeCategoryTopN),
	}, nil
}

func nonEmptyBuckets(buckets []domain.Bucket) []domain.Bucket {
	var out []domain.Bucket
	for _, b := range buckets {
		if len(b.Products) > 0 {
			out = append(out, b)
		}
	}
	return out
}

func nonEmptyDiscountBuckets(buckets []domain.DiscountBucket) []domain.DiscountBucket {
	var out []domain.DiscountBucket
	for _, b := range buckets {
		if len(b.Products) > 0 {
			out = append(out, b)
		}
	}
	return out
}
