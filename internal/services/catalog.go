package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domainagg "github.com/yungbote/mystore-backend/internal/domain/aggregates"
	"github.com/yungbote/mystore-backend/internal/domain/store"
)

func (s *storefront) Catalog(ctx context.Context, catalogID uint) (*store.Catalog, error) {
	return s.repos.Catalogs.GetByID(ctx, nil, catalogID)
}

// AddProduct attaches product to the catalog and persists it through the
// catalog's product reconciliation.
func (s *storefront) AddProduct(ctx context.Context, catalogID uint, product *store.Product) (*store.Product, error) {
	if product == nil {
		return nil, domainagg.NewError(domainagg.CodeValidation, "storefront.add_product", "product is required", nil)
	}
	err := s.inTx(ctx, func(tx *gorm.DB) error {
		catalog, err := s.repos.Catalogs.GetByID(ctx, tx, catalogID)
		if err != nil {
			return err
		}
		if product.DatePublished.IsZero() {
			product.DatePublished = s.now()
		}
		if !catalog.AddProduct(product) {
			return domainagg.AlreadyExists("storefront.add_product", fmt.Sprintf("Product %d", product.ProductID))
		}
		_, err = s.repos.Catalogs.Update(ctx, tx, catalog)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("product added", "catalog_id", catalogID, "product_id", product.ProductID)
	return product, nil
}

// ProductPatch carries the editable product fields; nil fields are left as is.
type ProductPatch struct {
	Title              *string
	Description        *string
	DatePublished      *time.Time
	ListPrice          *decimal.Decimal
	DiscountPercentage *decimal.Decimal
}

func (p ProductPatch) apply(product *store.Product) {
	if p.Title != nil {
		product.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		product.Description = strings.TrimSpace(*p.Description)
	}
	if p.DatePublished != nil {
		product.DatePublished = p.DatePublished.UTC()
	}
	if p.ListPrice != nil {
		product.ListPrice = *p.ListPrice
	}
	if p.DiscountPercentage != nil {
		product.DiscountPercentage = *p.DiscountPercentage
	}
}

// UpdateProduct edits a product in place and saves it through the catalog's
// product reconciliation.
func (s *storefront) UpdateProduct(ctx context.Context, catalogID, productID uint, patch ProductPatch) (*store.Product, error) {
	op := "storefront.update_product"
	var product *store.Product
	err := s.inTx(ctx, func(tx *gorm.DB) error {
		catalog, err := s.repos.Catalogs.GetByID(ctx, tx, catalogID)
		if err != nil {
			return err
		}
		product = catalog.Product(productID)
		if product == nil {
			return domainagg.NotFound(op, fmt.Sprintf("Product %d", productID))
		}
		patch.apply(product)
		_, err = s.repos.Catalogs.Update(ctx, tx, catalog)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("product updated", "catalog_id", catalogID, "product_id", productID)
	return product, nil
}

func (s *storefront) DeleteProduct(ctx context.Context, catalogID, productID uint) error {
	op := "storefront.delete_product"
	err := s.inTx(ctx, func(tx *gorm.DB) error {
		catalog, err := s.repos.Catalogs.GetByID(ctx, tx, catalogID)
		if err != nil {
			return err
		}
		if !catalog.RemoveProduct(productID) {
			return domainagg.NotFound(op, fmt.Sprintf("Product %d", productID))
		}
		_, err = s.repos.Catalogs.Update(ctx, tx, catalog)
		return err
	})
	if err != nil {
		return err
	}
	s.log.Info("product deleted", "catalog_id", catalogID, "product_id", productID)
	return nil
}
