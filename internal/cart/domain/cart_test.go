package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func uintPtr(v uint) *uint { return &v }

func item(id uint, productID uint, variantID *uint, qty int, price string) CartItem {
	return CartItem{
		Model:     gorm.Model{ID: id},
		ProductID: productID,
		VariantID: variantID,
		Quantity:  qty,
		Name:      "item",
		Price:     dec(price),
	}
}

func TestAddItemMergesSameLine(t *testing.T) {
	cart := &Cart{OwnerKey: "session:abc"}
	cart.AddItem(item(0, 1, nil, 2, "100"))
	cart.AddItem(item(0, 1, nil, 3, "100"))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestAddItemDistinguishesVariants(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(item(0, 1, nil, 1, "100"))
	cart.AddItem(item(0, 1, uintPtr(7), 1, "100"))
	cart.AddItem(item(0, 1, uintPtr(8), 1, "100"))
	cart.AddItem(item(0, 1, uintPtr(7), 2, "100"))

	require.Len(t, cart.Items, 3)
	assert.Equal(t, 3, cart.Items[1].Quantity)
}

func TestAddItemClampsQuantity(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(item(0, 1, nil, 0, "100"))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	cart.AddItem(item(0, 2, nil, -5, "100"))
	assert.Equal(t, 1, cart.Items[1].Quantity)
}

func TestUpdateQuantity(t *testing.T) {
	cart := &Cart{Items: []CartItem{item(10, 1, nil, 2, "100")}}

	assert.True(t, cart.UpdateQuantity(10, 7))
	assert.Equal(t, 7, cart.Items[0].Quantity)

	// 下限为 1
	assert.True(t, cart.UpdateQuantity(10, 0))
	assert.Equal(t, 1, cart.Items[0].Quantity)

	// 不存在的行项静默忽略
	assert.False(t, cart.UpdateQuantity(99, 3))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	cart := &Cart{Items: []CartItem{
		item(10, 1, nil, 1, "100"),
		item(11, 2, nil, 1, "200"),
	}}

	assert.True(t, cart.RemoveItem(10))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, uint(11), cart.Items[0].ID)

	assert.False(t, cart.RemoveItem(99))
	assert.Len(t, cart.Items, 1)
}

func TestClear(t *testing.T) {
	cart := &Cart{Items: []CartItem{item(10, 1, nil, 1, "100")}}
	cart.Clear()
	assert.Empty(t, cart.Items)
}

func TestUnitPricePrecedence(t *testing.T) {
	base := item(1, 1, uintPtr(7), 1, "100")
	base.VariantPrice = decPtr("120")

	// 规格价优先于基础价
	assert.True(t, base.UnitPrice().Equal(dec("120")))

	// 特价日价格优先于规格价
	deal := base
	deal.IsDealOfTheDay = true
	deal.Price = dec("80")
	assert.True(t, deal.UnitPrice().Equal(dec("80")))

	// 无规格时用基础价
	plain := item(2, 2, nil, 1, "100")
	assert.True(t, plain.UnitPrice().Equal(dec("100")))
}

func TestTotals(t *testing.T) {
	a := item(1, 1, nil, 2, "100")
	a.DeliveryCharges = dec("10")
	b := item(2, 2, nil, 1, "50")

	cart := &Cart{Items: []CartItem{a, b}}

	assert.True(t, cart.Subtotal().Equal(dec("250")))
	assert.True(t, cart.DeliveryTotal().Equal(dec("20")))
	assert.True(t, cart.GrandTotal().Equal(dec("270")))
	assert.Equal(t, 3, cart.ItemCount())
}

func TestTotalsEmptyCart(t *testing.T) {
	cart := &Cart{}
	assert.True(t, cart.GrandTotal().Equal(decimal.Zero))
	assert.Equal(t, 0, cart.ItemCount())
}
