package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/lelekart/storefront/internal/curation/domain"
)

// productRow 商品目录 products 表的只读映射
type productRow struct {
	ID          uint
	Name        string
	Category    string
	Subcategory string
	Price       float64
	MRP         *float64 `gorm:"column:mrp"`
	ImageURL    string   `gorm:"column:image_url"`
}

func (productRow) TableName() string { return "products" }

type productReader struct{ db *gorm.DB }

func NewProductReader(db *gorm.DB) domain.ProductReader {
	return &productReader{db: db}
}

// ListWindow 按 id 升序（即到达顺序）返回最多 limit 条商品
func (r *productReader) ListWindow(ctx context.Context, limit int) ([]domain.Product, error) {
	var rows []productRow
	err := r.db.WithContext(ctx).Order("id").Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, domain.Product{
			ID:          row.ID,
			Name:        row.Name,
			Category:    row.Category,
			Subcategory: row.Subcategory,
			Price:       row.Price,
			MRP:         row.MRP,
			ImageURL:    row.ImageURL,
		})
	}
	return products, nil
}
