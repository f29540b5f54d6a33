package application

import (
	"context"
	"errors"

	"github.com/lelekart/storefront/internal/cart/domain"
)

// CartQueryService 购物车查询服务
type CartQueryService struct {
	repo domain.CartRepository
}

// NewCartQueryService 创建购物车查询服务实例
func NewCartQueryService(repo domain.CartRepository) *CartQueryService {
	return &CartQueryService{repo: repo}
}

// GetCart 按 owner key 获取购物车。不存在时返回空购物车而非报错。
func (s *CartQueryService) GetCart(ctx context.Context, ownerKey string) (*domain.Cart, error) {
	cart, err := s.repo.GetByOwnerKey(ctx, ownerKey)
	if errors.Is(err, domain.ErrCartNotFound) {
		return &domain.Cart{OwnerKey: ownerKey}, nil
	}
	return cart, err
}

// GetCartItemCount 获取购物车商品总件数
func (s *CartQueryService) GetCartItemCount(ctx context.Context, ownerKey string) (int, error) {
	cart, err := s.GetCart(ctx, ownerKey)
	if err != nil {
		return 0, err
	}
	return cart.ItemCount(), nil
}
