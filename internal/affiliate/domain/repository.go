package domain

import "context"

type AffiliateCodeRepository interface {
	List(ctx context.Context) ([]*AffiliateCode, error)
	GetByID(ctx context.Context, id uint) (*AffiliateCode, error)
	GetByCode(ctx context.Context, code string) (*AffiliateCode, error)
	Save(ctx context.Context, code *AffiliateCode) error
	Delete(ctx context.Context, id uint) error
	IncrementUsage(ctx context.Context, id uint) error
}
