package domain

import "time"

// CartCreatedEvent 购物车创建事件
type CartCreatedEvent struct {
	CartID    uint      `json:"cart_id"`
	OwnerKey  string    `json:"owner_key"`
	Timestamp time.Time `json:"timestamp"`
}

// CartItemAddedEvent 购物车添加商品事件
type CartItemAddedEvent struct {
	CartID    uint      `json:"cart_id"`
	OwnerKey  string    `json:"owner_key"`
	ProductID uint      `json:"product_id"`
	VariantID *uint     `json:"variant_id,omitempty"`
	Quantity  int       `json:"quantity"`
	UnitPrice string    `json:"unit_price"`
	Timestamp time.Time `json:"timestamp"`
}

// CartItemQuantityUpdatedEvent 购物车行项改量事件
type CartItemQuantityUpdatedEvent struct {
	CartID    uint      `json:"cart_id"`
	OwnerKey  string    `json:"owner_key"`
	ItemID    uint      `json:"item_id"`
	Quantity  int       `json:"quantity"`
	Timestamp time.Time `json:"timestamp"`
}

// CartItemRemovedEvent 购物车移除商品事件
type CartItemRemovedEvent struct {
	CartID    uint      `json:"cart_id"`
	OwnerKey  string    `json:"owner_key"`
	ItemID    uint      `json:"item_id"`
	Timestamp time.Time `json:"timestamp"`
}

// CartClearedEvent 购物车清空事件
type CartClearedEvent struct {
	CartID    uint      `json:"cart_id"`
	OwnerKey  string    `json:"owner_key"`
	Timestamp time.Time `json:"timestamp"`
}
