package order

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/mystore-backend/internal/data/repos/crud"
	"github.com/yungbote/mystore-backend/internal/domain/store"
	"github.com/yungbote/mystore-backend/internal/pkg/logger"
)

type OrderItemRepo interface {
	crud.Repository[store.OrderItem]
	GetByKey(ctx context.Context, tx *gorm.DB, orderID, productID uint) (*store.OrderItem, error)
}

type orderItemRepo struct {
	*crud.Lines[store.OrderItem]
}

func NewOrderItemRepo(db *gorm.DB, baseLog *logger.Logger, opts ...crud.Option) OrderItemRepo {
	repoLog := baseLog.With("repo", "OrderItemRepo")
	table := crud.New(db, repoLog, crud.Spec[store.OrderItem]{
		Entity: "OrderItem",
		Op:     "order_items",
		PK:     []string{"order_id", "product_id"},
		Key:    func(it *store.OrderItem) []uint { return []uint{it.OrderID, it.ProductID} },
		Preload: func(db *gorm.DB) *gorm.DB {
			return db.Preload("Product")
		},
	}, opts...)
	return &orderItemRepo{Lines: crud.NewLines(table, func(existing, incoming *store.OrderItem) {
		existing.Quantity += incoming.Quantity
	})}
}
