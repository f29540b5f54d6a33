package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/lelekart/storefront/internal/cart/domain"
	pkgdb "github.com/lelekart/storefront/pkg/db"
)

type cartRepository struct{ db *pkgdb.DB }

func NewCartRepository(db *pkgdb.DB) domain.CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) GetByOwnerKey(ctx context.Context, ownerKey string) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.db.WithContext(ctx).Preload("Items").Where("owner_key = ?", ownerKey).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(cart).Error
}

func (r *cartRepository) DeleteItem(ctx context.Context, itemID uint) error {
	return r.db.WithContext(ctx).Delete(&domain.CartItem{}, itemID).Error
}

// Delete 物理删除购物车及其行项。owner_key 带唯一索引，软删除会让
// 该 key 的下一次建车撞索引，所以这里必须 Unscoped。
func (r *cartRepository) Delete(ctx context.Context, ownerKey string) error {
	var cart domain.Cart
	err := r.db.WithContext(ctx).Where("owner_key = ?", ownerKey).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return r.db.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Unscoped().Delete(&domain.CartItem{}, "cart_id = ?", cart.ID).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&cart).Error
	})
}
