package domain

import "context"

type CartRepository interface {
	GetByOwnerKey(ctx context.Context, ownerKey string) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
	DeleteItem(ctx context.Context, itemID uint) error
	Delete(ctx context.Context, ownerKey string) error
}

// EventPublisher 领域事件发布接口
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key string, event any) error
}
