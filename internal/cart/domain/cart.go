package domain

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrCartNotFound = errors.New("cart not found")

// Cart 购物车聚合根。owner_key 为登录用户 id 或游客会话 id。
type Cart struct {
	gorm.Model
	OwnerKey string     `gorm:"column:owner_key;type:varchar(64);uniqueIndex;not null"`
	Items    []CartItem `gorm:"foreignKey:CartID"`
}

func (Cart) TableName() string { return "carts" }

// CartItem 购物车行项。价格字段是加入时刻的商品快照，之后商品改价不影响已有行项。
type CartItem struct {
	gorm.Model
	CartID    uint  `gorm:"column:cart_id;index;not null"`
	ProductID uint  `gorm:"column:product_id;not null"`
	VariantID *uint `gorm:"column:variant_id"`
	Quantity  int   `gorm:"column:quantity;not null"`

	// 商品快照
	Name            string           `gorm:"column:name;type:varchar(255);not null"`
	Category        string           `gorm:"column:category;type:varchar(64)"`
	Price           decimal.Decimal  `gorm:"column:price;type:decimal(12,2)"`
	MRP             *decimal.Decimal `gorm:"column:mrp;type:decimal(12,2)"`
	DeliveryCharges decimal.Decimal  `gorm:"column:delivery_charges;type:decimal(12,2)"`
	IsDealOfTheDay  bool             `gorm:"column:is_deal_of_the_day"`
	ImageURL        string           `gorm:"column:image_url;type:varchar(512)"`

	// 规格快照（可选）
	VariantSKU   string           `gorm:"column:variant_sku;type:varchar(64)"`
	VariantPrice *decimal.Decimal `gorm:"column:variant_price;type:decimal(12,2)"`
	VariantMRP   *decimal.Decimal `gorm:"column:variant_mrp;type:decimal(12,2)"`
	VariantColor string           `gorm:"column:variant_color;type:varchar(32)"`
	VariantSize  string           `gorm:"column:variant_size;type:varchar(32)"`
}

func (CartItem) TableName() string { return "cart_items" }

// UnitPrice 行项单价。特价日价格优先于规格价，规格价优先于基础价。
func (i *CartItem) UnitPrice() decimal.Decimal {
	if i.IsDealOfTheDay {
		return i.Price
	}
	if i.VariantID != nil && i.VariantPrice != nil {
		return *i.VariantPrice
	}
	return i.Price
}

func sameVariant(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// AddItem 添加行项。同一 (product_id, variant_id) 的行项合并数量，数量下限为 1。
func (c *Cart) AddItem(item CartItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID && sameVariant(c.Items[i].VariantID, item.VariantID) {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// UpdateQuantity 设置行项数量，下限为 1。返回是否命中了行项。
func (c *Cart) UpdateQuantity(itemID uint, quantity int) bool {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items[i].Quantity = quantity
			return true
		}
	}
	return false
}

// RemoveItem 删除行项。行项不存在时静默忽略。返回是否删除了行项。
func (c *Cart) RemoveItem(itemID uint) bool {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear 清空全部行项
func (c *Cart) Clear() {
	c.Items = nil
}

// Subtotal 行项单价×数量之和
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for i := range c.Items {
		total = total.Add(c.Items[i].UnitPrice().Mul(decimal.NewFromInt(int64(c.Items[i].Quantity))))
	}
	return total
}

// DeliveryTotal 运费×数量之和
func (c *Cart) DeliveryTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range c.Items {
		total = total.Add(c.Items[i].DeliveryCharges.Mul(decimal.NewFromInt(int64(c.Items[i].Quantity))))
	}
	return total
}

// GrandTotal 商品小计加运费
func (c *Cart) GrandTotal() decimal.Decimal {
	return c.Subtotal().Add(c.DeliveryTotal())
}

// ItemCount 行项数量之和
func (c *Cart) ItemCount() int {
	var n int
	for i := range c.Items {
		n += c.Items[i].Quantity
	}
	return n
}
