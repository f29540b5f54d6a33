package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lelekart/storefront/internal/affiliate/domain"
)

type affiliateCodeRepository struct{ db *gorm.DB }

func NewAffiliateCodeRepository(db *gorm.DB) domain.AffiliateCodeRepository {
	return &affiliateCodeRepository{db: db}
}

func (r *affiliateCodeRepository) List(ctx context.Context) ([]*domain.AffiliateCode, error) {
	var codes []*domain.AffiliateCode
	err := r.db.WithContext(ctx).Order("id").Find(&codes).Error
	return codes, err
}

func (r *affiliateCodeRepository) GetByID(ctx context.Context, id uint) (*domain.AffiliateCode, error) {
	var code domain.AffiliateCode
	err := r.db.WithContext(ctx).First(&code, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCodeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &code, nil
}

func (r *affiliateCodeRepository) GetByCode(ctx context.Context, codeValue string) (*domain.AffiliateCode, error) {
	var code domain.AffiliateCode
	err := r.db.WithContext(ctx).Where("LOWER(code) = LOWER(?)", codeValue).First(&code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCodeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &code, nil
}

func (r *affiliateCodeRepository) Save(ctx context.Context, code *domain.AffiliateCode) error {
	return r.db.WithContext(ctx).Save(code).Error
}

func (r *affiliateCodeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.AffiliateCode{}, id).Error
}

func (r *affiliateCodeRepository) IncrementUsage(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&domain.AffiliateCode{}).
		Where("id = ?", id).
		UpdateColumn("usage_count", gorm.Expr("usage_count + 1")).Error
}
