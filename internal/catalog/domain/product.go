package domain

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidPrice    = errors.New("product price must be non-negative")
	ErrInvalidMRP      = errors.New("product mrp must be non-negative")
)

// Product 商品目录中的规范商品形态。
// 上游数据（驼峰/下划线字段混杂的旧数据）在进入本层前已被归一化。
type Product struct {
	gorm.Model
	Name            string   `gorm:"column:name;type:varchar(255);not null"`
	Description     string   `gorm:"column:description;type:text"`
	Category        string   `gorm:"column:category;type:varchar(100);index"`
	Subcategory     string   `gorm:"column:subcategory;type:varchar(100)"`
	Price           float64  `gorm:"column:price;type:decimal(10,2);not null"`
	MRP             *float64 `gorm:"column:mrp;type:decimal(10,2)"`
	DeliveryCharges float64  `gorm:"column:delivery_charges;type:decimal(10,2);not null;default:0"`
	IsDealOfTheDay  bool     `gorm:"column:is_deal_of_the_day;not null;default:false"`
	ImageURL        string   `gorm:"column:image_url;type:varchar(512)"`
	Images          string   `gorm:"column:images;type:text"`
	Stock           int      `gorm:"column:stock;not null;default:0"`
}

func (Product) TableName() string { return "products" }

// Validate 校验商品不变量
func (p *Product) Validate() error {
	if p.Price < 0 {
		return ErrInvalidPrice
	}
	// mrp 小于等于 price 时按无折扣处理，不视为非法
	if p.MRP != nil && *p.MRP < 0 {
		return ErrInvalidMRP
	}
	return nil
}

// HasDiscount 判断商品是否有有效折扣（mrp 存在且大于 price）
func (p *Product) HasDiscount() bool {
	return p.MRP != nil && *p.MRP > p.Price
}
