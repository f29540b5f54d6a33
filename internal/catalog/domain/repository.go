package domain

import "context"

type ProductRepository interface {
	Save(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id uint) (*Product, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Product, error)
	List(ctx context.Context, category string, offset, limit int) ([]*Product, int64, error)
	Delete(ctx context.Context, id uint) error
}

type EventPublisher interface {
	Publish(ctx context.Context, topic string, key string, event any) error
}
