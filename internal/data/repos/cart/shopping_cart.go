package cart

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/mystore-backend/internal/data/repos/crud"
	domainagg "github.com/yungbote/mystore-backend/internal/domain/aggregates"
	"github.com/yungbote/mystore-backend/internal/domain/store"
	"github.com/yungbote/mystore-backend/internal/pkg/logger"
)

type ShoppingCartRepo interface {
	crud.Repository[store.ShoppingCart]
	GetByCustomerID(ctx context.Context, tx *gorm.DB, customerID uint) (*store.ShoppingCart, error)
}

type shoppingCartRepo struct {
	*crud.Table[store.ShoppingCart]
}

func NewShoppingCartRepo(db *gorm.DB, baseLog *logger.Logger, opts ...crud.Option) ShoppingCartRepo {
	repoLog := baseLog.With("repo", "ShoppingCartRepo")
	return &shoppingCartRepo{Table: crud.New(db, repoLog, crud.Spec[store.ShoppingCart]{
		Entity: "ShoppingCart",
		Op:     "shopping_carts",
		PK:     []string{"shopping_cart_id"},
		Key:    func(c *store.ShoppingCart) []uint { return []uint{c.ShoppingCartID} },
		Preload: func(db *gorm.DB) *gorm.DB {
			return db.
				Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("product_id") }).
				Preload("Items.Product")
		},
		Touch:    func(c *store.ShoppingCart, now time.Time) { c.LastEdited = &now },
		Children: syncCartItems,
	}, opts...)}
}

func syncCartItems(ctx context.Context, tx *gorm.DB, c *store.ShoppingCart) (bool, error) {
	for _, it := range c.Items {
		it.ShoppingCartID = c.ShoppingCartID
	}
	return crud.SyncChildren(ctx, tx, "shopping_cart_id", c.ShoppingCartID, c.Items, (*store.ShoppingCartItem).IdentityKey)
}

func (r *shoppingCartRepo) GetByCustomerID(ctx context.Context, tx *gorm.DB, customerID uint) (*store.ShoppingCart, error) {
	found, err := r.GetByPredicate(ctx, tx, func(db *gorm.DB) *gorm.DB {
		return db.Where("customer_id = ?", customerID)
	})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, domainagg.NotFound("shopping_carts.get_by_customer_id", "ShoppingCart")
	}
	return found[0], nil
}
