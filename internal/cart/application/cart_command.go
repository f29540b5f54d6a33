package application

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lelekart/storefront/internal/cart/domain"
	"github.com/lelekart/storefront/pkg/logger"
)

// AddItemCommand 添加商品到购物车命令。
// 价格字段是调用方在加入时刻提供的商品快照。
type AddItemCommand struct {
	OwnerKey        string
	ProductID       uint
	VariantID       *uint
	Quantity        int
	Name            string
	Category        string
	Price           decimal.Decimal
	MRP             *decimal.Decimal
	DeliveryCharges decimal.Decimal
	IsDealOfTheDay  bool
	ImageURL        string
	VariantSKU      string
	VariantPrice    *decimal.Decimal
	VariantMRP      *decimal.Decimal
	VariantColor    string
	VariantSize     string
}

// UpdateQuantityCommand 设置购物车行项数量命令
type UpdateQuantityCommand struct {
	OwnerKey string
	ItemID   uint
	Quantity int
}

// RemoveItemCommand 从购物车移除行项命令
type RemoveItemCommand struct {
	OwnerKey string
	ItemID   uint
}

// ClearCartCommand 清空购物车命令
type ClearCartCommand struct {
	OwnerKey string
}

// CartCommandService 购物车命令服务
type CartCommandService struct {
	repo      domain.CartRepository
	publisher domain.EventPublisher
}

// NewCartCommandService 创建购物车命令服务实例
func NewCartCommandService(
	repo domain.CartRepository,
	publisher domain.EventPublisher,
) *CartCommandService {
	return &CartCommandService{
		repo:      repo,
		publisher: publisher,
	}
}

// AddItem 处理添加商品到购物车
func (s *CartCommandService) AddItem(ctx context.Context, cmd AddItemCommand) error {
	cart, err := s.repo.GetByOwnerKey(ctx, cmd.OwnerKey)
	if err != nil && !errors.Is(err, domain.ErrCartNotFound) {
		return err
	}

	if cart == nil || cart.ID == 0 {
		cart = &domain.Cart{OwnerKey: cmd.OwnerKey}
		if err := s.repo.Save(ctx, cart); err != nil {
			return err
		}

		event := domain.CartCreatedEvent{
			CartID:    cart.ID,
			OwnerKey:  cart.OwnerKey,
			Timestamp: time.Now(),
		}
		s.publish(ctx, "cart.created", cmd.OwnerKey, event)
	}

	item := domain.CartItem{
		ProductID:       cmd.ProductID,
		VariantID:       cmd.VariantID,
		Quantity:        cmd.Quantity,
		Name:            cmd.Name,
		Category:        cmd.Category,
		Price:           cmd.Price,
		MRP:             cmd.MRP,
		DeliveryCharges: cmd.DeliveryCharges,
		IsDealOfTheDay:  cmd.IsDealOfTheDay,
		ImageURL:        cmd.ImageURL,
		VariantSKU:      cmd.VariantSKU,
		VariantPrice:    cmd.VariantPrice,
		VariantMRP:      cmd.VariantMRP,
		VariantColor:    cmd.VariantColor,
		VariantSize:     cmd.VariantSize,
	}
	cart.AddItem(item)
	if err := s.repo.Save(ctx, cart); err != nil {
		return err
	}

	event := domain.CartItemAddedEvent{
		CartID:    cart.ID,
		OwnerKey:  cart.OwnerKey,
		ProductID: cmd.ProductID,
		VariantID: cmd.VariantID,
		Quantity:  cmd.Quantity,
		UnitPrice: item.UnitPrice().String(),
		Timestamp: time.Now(),
	}
	s.publish(ctx, "cart.item.added", cmd.OwnerKey, event)

	return nil
}

// UpdateQuantity 处理设置行项数量。行项不存在时静默忽略。
func (s *CartCommandService) UpdateQuantity(ctx context.Context, cmd UpdateQuantityCommand) error {
	cart, err := s.repo.GetByOwnerKey(ctx, cmd.OwnerKey)
	if errors.Is(err, domain.ErrCartNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if !cart.UpdateQuantity(cmd.ItemID, cmd.Quantity) {
		return nil
	}
	if err := s.repo.Save(ctx, cart); err != nil {
		return err
	}

	quantity := cmd.Quantity
	if quantity < 1 {
		quantity = 1
	}
	event := domain.CartItemQuantityUpdatedEvent{
		CartID:    cart.ID,
		OwnerKey:  cart.OwnerKey,
		ItemID:    cmd.ItemID,
		Quantity:  quantity,
		Timestamp: time.Now(),
	}
	s.publish(ctx, "cart.item.quantity.updated", cmd.OwnerKey, event)

	return nil
}

// RemoveItem 处理从购物车移除行项。行项不存在时静默忽略。
func (s *CartCommandService) RemoveItem(ctx context.Context, cmd RemoveItemCommand) error {
	cart, err := s.repo.GetByOwnerKey(ctx, cmd.OwnerKey)
	if errors.Is(err, domain.ErrCartNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if !cart.RemoveItem(cmd.ItemID) {
		return nil
	}
	if err := s.repo.DeleteItem(ctx, cmd.ItemID); err != nil {
		return err
	}

	event := domain.CartItemRemovedEvent{
		CartID:    cart.ID,
		OwnerKey:  cart.OwnerKey,
		ItemID:    cmd.ItemID,
		Timestamp: time.Now(),
	}
	s.publish(ctx, "cart.item.removed", cmd.OwnerKey, event)

	return nil
}

// ClearCart 处理清空购物车
func (s *CartCommandService) ClearCart(ctx context.Context, cmd ClearCartCommand) error {
	cart, err := s.repo.GetByOwnerKey(ctx, cmd.OwnerKey)
	if errors.Is(err, domain.ErrCartNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, cmd.OwnerKey); err != nil {
		return err
	}

	event := domain.CartClearedEvent{
		CartID:    cart.ID,
		OwnerKey:  cart.OwnerKey,
		Timestamp: time.Now(),
	}
	s.publish(ctx, "cart.cleared", cmd.OwnerKey, event)

	return nil
}

func (s *CartCommandService) publish(ctx context.Context, topic, key string, event any) {
	if err := s.publisher.Publish(ctx, topic, key, event); err != nil {
		logger.Warn(ctx, "Failed to publish cart event", "topic", topic, "error", err)
	}
}
