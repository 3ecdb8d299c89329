package order

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/mystore-backend/internal/data/repos/crud"
	"github.com/yungbote/mystore-backend/internal/domain/store"
	"github.com/yungbote/mystore-backend/internal/pkg/logger"
)

type OrderRepo interface {
	crud.Repository[store.Order]
	GetByCustomerID(ctx context.Context, tx *gorm.DB, customerID uint) ([]*store.Order, error)
}

type orderRepo struct {
	*crud.Table[store.Order]
}

func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger, opts ...crud.Option) OrderRepo {
	repoLog := baseLog.With("repo", "OrderRepo")
	return &orderRepo{Table: crud.New(db, repoLog, crud.Spec[store.Order]{
		Entity: "Order",
		Op:     "orders",
		PK:     []string{"order_id"},
		Key:    func(o *store.Order) []uint { return []uint{o.OrderID} },
		Preload: func(db *gorm.DB) *gorm.DB {
			return db.
				Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("product_id") }).
				Preload("Items.Product")
		},
		Touch:    func(o *store.Order, now time.Time) { o.LastEdited = &now },
		Children: syncOrderItems,
	}, opts...)}
}

func syncOrderItems(ctx context.Context, tx *gorm.DB, o *store.Order) (bool, error) {
	for _, it := range o.Items {
		it.OrderID = o.OrderID
	}
	return crud.SyncChildren(ctx, tx, "order_id", o.OrderID, o.Items, (*store.OrderItem).IdentityKey)
}

func (r *orderRepo) GetByCustomerID(ctx context.Context, tx *gorm.DB, customerID uint) ([]*store.Order, error) {
	return r.GetByPredicate(ctx, tx, func(db *gorm.DB) *gorm.DB {
		return db.Where("customer_id = ?", customerID)
	})
}
