package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lelekart/storefront/internal/catalog/domain"
	"github.com/lelekart/storefront/pkg/cache"
	"github.com/lelekart/storefront/pkg/logger"
)

const productCacheTTL = 5 * time.Minute

// Cache 商品详情缓存接口
type Cache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// CatalogQueryService 商品目录查询服务
type CatalogQueryService struct {
	repo  domain.ProductRepository
	cache Cache
}

// NewCatalogQueryService 创建商品目录查询服务实例
func NewCatalogQueryService(
	repo domain.ProductRepository,
	c Cache,
) *CatalogQueryService {
	return &CatalogQueryService{
		repo:  repo,
		cache: c,
	}
}

// GetProduct 根据ID获取商品信息，优先读缓存
func (s *CatalogQueryService) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	key := productCacheKey(id)

	if s.cache != nil {
		var cached domain.Product
		err := s.cache.GetJSON(ctx, key, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			logger.Warn(ctx, "product cache read failed", "product_id", id, "error", err)
		}
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, product, productCacheTTL); err != nil {
			logger.Warn(ctx, "product cache write failed", "product_id", id, "error", err)
		}
	}

	return product, nil
}

// GetProductsByIDs 按传入的 id 顺序返回商品，缺失的 id 被跳过。
// 用于"最近浏览"等按历史顺序展示的场景。
func (s *CatalogQueryService) GetProductsByIDs(ctx context.Context, ids []uint) ([]*domain.Product, error) {
	products, err := s.repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]*domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	ordered := make([]*domain.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}

// ListProducts 分页列出商品，category 为空时列出全部
func (s *CatalogQueryService) ListProducts(ctx context.Context, category string, page, size int) ([]*domain.Product, int64, error) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = 36
	}
	offset := (page - 1) * size
	return s.repo.List(ctx, category, offset, size)
}

// InvalidateProduct 删除商品详情缓存
func (s *CatalogQueryService) InvalidateProduct(ctx context.Context, id uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, productCacheKey(id)); err != nil {
		logger.Warn(ctx, "product cache invalidation failed", "product_id", id, "error", err)
	}
}

func productCacheKey(id uint) string {
	return fmt.Sprintf("catalog:product:%d", id)
}
