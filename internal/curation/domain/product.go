package domain

import (
	"context"
	"math"
)

// Product 策展只读视图，来自商品目录的读模型。
// 顺序语义：切片顺序即商品的到达顺序，所有"取前 K 个"的选择都依赖它。
type Product struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory,omitempty"`
	Price       float64  `json:"price"`
	MRP         *float64 `json:"mrp,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
}

// HasDiscount 判断是否有有效折扣（mrp 存在且大于 price）
func (p Product) HasDiscount() bool {
	return p.MRP != nil && *p.MRP > p.Price
}

// DiscountPercent 计算折扣百分比 round((mrp-price)/mrp*100)。
// mrp 缺失或不大于 price 时折扣未定义，返回 0。
func (p Product) DiscountPercent() int {
	if !p.HasDiscount() {
		return 0
	}
	return int(math.Round((*p.MRP - p.Price) / *p.MRP * 100))
}

// ProductReader 策展读模型仓储
type ProductReader interface {
	// ListWindow 按到达顺序返回最多 limit 条商品
	ListWindow(ctx context.Context, limit int) ([]Product, error)
}
