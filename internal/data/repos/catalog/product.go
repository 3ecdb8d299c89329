package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/mystore-backend/internal/data/repos/crud"
	"github.com/yungbote/mystore-backend/internal/domain/store"
	"github.com/yungbote/mystore-backend/internal/pkg/logger"
)

type ProductRepo interface {
	crud.Repository[store.Product]
	GetByCatalogID(ctx context.Context, tx *gorm.DB, catalogID uint) ([]*store.Product, error)
}

type productRepo struct {
	*crud.Table[store.Product]
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger, opts ...crud.Option) ProductRepo {
	repoLog := baseLog.With("repo", "ProductRepo")
	return &productRepo{Table: crud.New(db, repoLog, crud.Spec[store.Product]{
		Entity: "Product",
		Op:     "products",
		PK:     []string{"product_id"},
		Key:    func(p *store.Product) []uint { return []uint{p.ProductID} },
	}, opts...)}
}

func (r *productRepo) GetByCatalogID(ctx context.Context, tx *gorm.DB, catalogID uint) ([]*store.Product, error) {
	return r.GetByPredicate(ctx, tx, func(db *gorm.DB) *gorm.DB {
		return db.Where("catalog_id = ?", catalogID)
	})
}
