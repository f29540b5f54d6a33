package application

import (
	"context"
	"time"

	"github.com/lelekart/storefront/internal/catalog/domain"
)

// CreateProductCommand 创建商品命令
type CreateProductCommand struct {
	Name            string
	Description     string
	Category        string
	Subcategory     string
	Price           float64
	MRP             *float64
	DeliveryCharges float64
	IsDealOfTheDay  bool
	ImageURL        string
	Images          string
	Stock           int
}

// UpdateProductCommand 更新商品命令
type UpdateProductCommand struct {
	ID              uint
	Name            string
	Description     string
	Category        string
	Subcategory     string
	Price           float64
	MRP             *float64
	DeliveryCharges float64
	IsDealOfTheDay  bool
	ImageURL        string
	Images          string
	Stock           int
}

// CatalogCommandService 商品目录命令服务
type CatalogCommandService struct {
	repo      domain.ProductRepository
	publisher domain.EventPublisher
}

// NewCatalogCommandService 创建商品目录命令服务实例
func NewCatalogCommandService(
	repo domain.ProductRepository,
	publisher domain.EventPublisher,
) *CatalogCommandService {
	return &CatalogCommandService{
		repo:      repo,
		publisher: publisher,
	}
}

// CreateProduct 处理创建商品
func (s *CatalogCommandService) CreateProduct(ctx context.Context, cmd CreateProductCommand) (uint, error) {
	product := &domain.Product{
		Name:            cmd.Name,
		Description:     cmd.Description,
		Category:        cmd.Category,
		Subcategory:     cmd.Subcategory,
		Price:           cmd.Price,
		MRP:             cmd.MRP,
		DeliveryCharges: cmd.DeliveryCharges,
		IsDealOfTheDay:  cmd.IsDealOfTheDay,
		ImageURL:        cmd.ImageURL,
		Images:          cmd.Images,
		Stock:           cmd.Stock,
	}
	if err := product.Validate(); err != nil {
		return 0, err
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return 0, err
	}

	// 发布商品创建事件
	event := domain.ProductCreatedEvent{
		ProductID: product.ID,
		Name:      product.Name,
		Category:  product.Category,
		Price:     product.Price,
		Stock:     product.Stock,
		Timestamp: time.Now(),
	}
	s.publisher.Publish(ctx, "product.created", product.Name, event)

	return product.ID, nil
}

// UpdateProduct 处理更新商品
func (s *CatalogCommandService) UpdateProduct(ctx context.Context, cmd UpdateProductCommand) error {
	product, err := s.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return err
	}

	oldStock := product.Stock

	product.Name = cmd.Name
	product.Description = cmd.Description
	product.Category = cmd.Category
	product.Subcategory = cmd.Subcategory
	product.Price = cmd.Price
	product.MRP = cmd.MRP
	product.DeliveryCharges = cmd.DeliveryCharges
	product.IsDealOfTheDay = cmd.IsDealOfTheDay
	product.ImageURL = cmd.ImageURL
	product.Images = cmd.Images
	product.Stock = cmd.Stock
	if err := product.Validate(); err != nil {
		return err
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return err
	}

	// 发布商品更新事件
	event := domain.ProductUpdatedEvent{
		ProductID: product.ID,
		Name:      product.Name,
		Category:  product.Category,
		Price:     product.Price,
		Stock:     product.Stock,
		Timestamp: time.Now(),
	}
	s.publisher.Publish(ctx, "product.updated", product.Name, event)

	// 如果库存发生变化，发布库存变更事件
	if oldStock != product.Stock {
		stockEvent := domain.ProductStockChangedEvent{
			ProductID: product.ID,
			OldStock:  oldStock,
			NewStock:  product.Stock,
			Timestamp: time.Now(),
		}
		s.publisher.Publish(ctx, "product.stock.changed", product.Name, stockEvent)
	}

	return nil
}

// DeleteProduct 处理删除商品
func (s *CatalogCommandService) DeleteProduct(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	event := domain.ProductDeletedEvent{
		ProductID: id,
		Timestamp: time.Now(),
	}
	s.publisher.Publish(ctx, "product.deleted", "", event)

	return nil
}
