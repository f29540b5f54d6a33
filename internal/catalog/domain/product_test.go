package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mrp(v float64) *float64 { return &v }

func TestProductValidate(t *testing.T) {
	valid := Product{Name: "TV", Category: "Electronics", Price: 100, MRP: mrp(200)}
	assert.NoError(t, valid.Validate())

	negativePrice := Product{Name: "TV", Category: "Electronics", Price: -1}
	assert.ErrorIs(t, negativePrice.Validate(), ErrInvalidPrice)

	negativeMRP := Product{Name: "TV", Category: "Electronics", Price: 100, MRP: mrp(-5)}
	assert.ErrorIs(t, negativeMRP.Validate(), ErrInvalidMRP)

	// mrp 不高于价格是合法的，只是没有折扣
	noDiscount := Product{Name: "TV", Category: "Electronics", Price: 100, MRP: mrp(100)}
	assert.NoError(t, noDiscount.Validate())
	assert.False(t, noDiscount.HasDiscount())
}

func TestHasDiscount(t *testing.T) {
	discounted := Product{Price: 80, MRP: mrp(100)}
	assert.True(t, discounted.HasDiscount())

	noMRP := Product{Price: 80}
	assert.False(t, noMRP.HasDiscount())

	inverted := Product{Price: 120, MRP: mrp(100)}
	assert.False(t, inverted.HasDiscount())
}
