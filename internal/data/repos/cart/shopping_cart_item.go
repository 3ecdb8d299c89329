package cart

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/mystore-backend/internal/data/repos/crud"
	"github.com/yungbote/mystore-backend/internal/domain/store"
	"github.com/yungbote/mystore-backend/internal/pkg/logger"
)

type ShoppingCartItemRepo interface {
	crud.Repository[store.ShoppingCartItem]
	GetByKey(ctx context.Context, tx *gorm.DB, shoppingCartID, productID uint) (*store.ShoppingCartItem, error)
}

type shoppingCartItemRepo struct {
	*crud.Lines[store.ShoppingCartItem]
}

func NewShoppingCartItemRepo(db *gorm.DB, baseLog *logger.Logger, opts ...crud.Option) ShoppingCartItemRepo {
	repoLog := baseLog.With("repo", "ShoppingCartItemRepo")
	table := crud.New(db, repoLog, crud.Spec[store.ShoppingCartItem]{
		Entity: "ShoppingCartItem",
		Op:     "shopping_cart_items",
		PK:     []string{"shopping_cart_id", "product_id"},
		Key:    func(it *store.ShoppingCartItem) []uint { return []uint{it.ShoppingCartID, it.ProductID} },
		Preload: func(db *gorm.DB) *gorm.DB {
			return db.Preload("Product")
		},
	}, opts...)
	return &shoppingCartItemRepo{Lines: crud.NewLines(table, func(existing, incoming *store.ShoppingCartItem) {
		existing.Quantity += incoming.Quantity
	})}
}
