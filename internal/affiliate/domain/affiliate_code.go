package domain

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrCodeNotFound    = errors.New("affiliate code not found")
	ErrCodeRequired    = errors.New("code is required")
	ErrInvalidDiscount = errors.New("discount percentage must be between 0 and 100")
)

// AffiliateCode 推广码。折扣百分比在下单时抵扣，使用次数用于结算分成。
type AffiliateCode struct {
	gorm.Model
	Name               string  `gorm:"column:name;type:varchar(255)"`
	Code               string  `gorm:"column:code;type:varchar(64);uniqueIndex;not null"`
	DiscountPercentage float64 `gorm:"column:discount_percentage;not null"`
	UsageCount         int     `gorm:"column:usage_count;not null;default:0"`
}

func (AffiliateCode) TableName() string { return "affiliate_codes" }

func (a *AffiliateCode) Validate() error {
	if strings.TrimSpace(a.Code) == "" {
		return ErrCodeRequired
	}
	if a.DiscountPercentage <= 0 || a.DiscountPercentage > 100 {
		return ErrInvalidDiscount
	}
	return nil
}
