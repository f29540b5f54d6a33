package application

import (
	"context"

	"github.com/lelekart/storefront/internal/catalog/domain"
)

// CatalogApplicationService 商品目录服务门面，整合命令服务和查询服务
type CatalogApplicationService struct {
	commandService *CatalogCommandService
	queryService   *CatalogQueryService
}

// NewCatalogApplicationService 创建商品目录服务门面实例
func NewCatalogApplicationService(
	repo domain.ProductRepository,
	publisher domain.EventPublisher,
	c Cache,
) *CatalogApplicationService {
	return &CatalogApplicationService{
		commandService: NewCatalogCommandService(repo, publisher),
		queryService:   NewCatalogQueryService(repo, c),
	}
}

// CreateProduct 处理创建商品
func (s *CatalogApplicationService) CreateProduct(ctx context.Context, cmd CreateProductCommand) (uint, error) {
	return s.commandService.CreateProduct(ctx, cmd)
}

// UpdateProduct 处理更新商品，并失效对应缓存
func (s *CatalogApplicationService) UpdateProduct(ctx context.Context, cmd UpdateProductCommand) error {
	if err := s.commandService.UpdateProduct(ctx, cmd); err != nil {
		return err
	}
	s.queryService.InvalidateProduct(ctx, cmd.ID)
	return nil
}

// DeleteProduct 处理删除商品，并失效对应缓存
func (s *CatalogApplicationService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.commandService.DeleteProduct(ctx, id); err != nil {
		return err
	}
	s.queryService.InvalidateProduct(ctx, id)
	return nil
}

// GetProduct 根据ID获取商品信息
func (s *CatalogApplicationService) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	return s.queryService.GetProduct(ctx, id)
}

// GetProductsByIDs 按传入顺序批量获取商品
func (s *CatalogApplicationService) GetProductsByIDs(ctx context.Context, ids []uint) ([]*domain.Product, error) {
	return s.queryService.GetProductsByIDs(ctx, ids)
}

// ListProducts 分页列出商品
func (s *CatalogApplicationService) ListProducts(ctx context.Context, category string, page, size int) ([]*domain.Product, int64, error) {
	return s.queryService.ListProducts(ctx, category, page, size)
}
