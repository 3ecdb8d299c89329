package catalog

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/mystore-backend/internal/data/repos/crud"
	"github.com/yungbote/mystore-backend/internal/domain/store"
	"github.com/yungbote/mystore-backend/internal/pkg/logger"
)

type CatalogRepo interface {
	crud.Repository[store.Catalog]
	GetByTitle(ctx context.Context, tx *gorm.DB, title string) (*store.Catalog, error)
}

type catalogRepo struct {
	*crud.Table[store.Catalog]
}

func NewCatalogRepo(db *gorm.DB, baseLog *logger.Logger, opts ...crud.Option) CatalogRepo {
	repoLog := baseLog.With("repo", "CatalogRepo")
	return &catalogRepo{Table: crud.New(db, repoLog, crud.Spec[store.Catalog]{
		Entity: "Catalog",
		Op:     "catalogs",
		PK:     []string{"catalog_id"},
		Key:    func(c *store.Catalog) []uint { return []uint{c.CatalogID} },
		Preload: func(db *gorm.DB) *gorm.DB {
			return db.Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("product_id") })
		},
		Touch:    func(c *store.Catalog, now time.Time) { c.LastEdited = &now },
		Children: syncProducts,
	}, opts...)}
}

func syncProducts(ctx context.Context, tx *gorm.DB, c *store.Catalog) (bool, error) {
	for _, p := range c.Products {
		p.CatalogID = c.CatalogID
	}
	return crud.SyncChildren(ctx, tx, "catalog_id", c.CatalogID, c.Products, (*store.Product).IdentityKey)
}

// GetByTitle returns the first catalog with the given title, or nil.
func (r *catalogRepo) GetByTitle(ctx context.Context, tx *gorm.DB, title string) (*store.Catalog, error) {
	found, err := r.GetByPredicate(ctx, tx, func(db *gorm.DB) *gorm.DB {
		return db.Where("title = ?", title).Limit(1)
	})
	if err != nil || len(found) == 0 {
		return nil, err
	}
	return found[0], nil
}
