package services

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/yungbote/mystore-backend/internal/domain/store"
)

//go:embed seed/products.yaml
var seedProductsYAML []byte

type seedFile struct {
	Products []seedProduct `yaml:"products"`
}

type seedProduct struct {
	Title              string `yaml:"title"`
	Description        string `yaml:"description"`
	ListPrice          string `yaml:"list_price"`
	DiscountPercentage string `yaml:"discount_percentage"`
}

// SeedProducts parses the embedded starter assortment.
func SeedProducts() ([]*store.Product, error) {
	var f seedFile
	if err := yaml.Unmarshal(seedProductsYAML, &f); err != nil {
		return nil, fmt.Errorf("parse seed products: %w", err)
	}
	out := make([]*store.Product, 0, len(f.Products))
	for i, sp := range f.Products {
		price, err := decimal.NewFromString(strings.TrimSpace(sp.ListPrice))
		if err != nil {
			return nil, fmt.Errorf("seed product %d list_price: %w", i, err)
		}
		discount := decimal.Zero
		if raw := strings.TrimSpace(sp.DiscountPercentage); raw != "" {
			if discount, err = decimal.NewFromString(raw); err != nil {
				return nil, fmt.Errorf("seed product %d discount_percentage: %w", i, err)
			}
		}
		out = append(out, &store.Product{
			Title:              strings.TrimSpace(sp.Title),
			Description:        strings.TrimSpace(sp.Description),
			ListPrice:          price,
			DiscountPercentage: discount,
		})
	}
	return out, nil
}

// SeedCatalog fills an empty catalog with the starter assortment. It returns
// how many products were added; a catalog that already has products is left alone.
func (s *storefront) SeedCatalog(ctx context.Context, catalogID uint) (int, error) {
	products, err := SeedProducts()
	if err != nil {
		return 0, err
	}
	added := 0
	err = s.inTx(ctx, func(tx *gorm.DB) error {
		catalog, err := s.repos.Catalogs.GetByID(ctx, tx, catalogID)
		if err != nil {
			return err
		}
		if len(catalog.Products) > 0 {
			return nil
		}
		for i, p := range products {
			p.DatePublished = s.randomDate(3)
			img, err := RenderProductImage(p.Title, i)
			if err != nil {
				return err
			}
			p.Image = img
			catalog.AddProduct(p)
		}
		if _, err := s.repos.Catalogs.Update(ctx, tx, catalog); err != nil {
			return err
		}
		added = len(products)
		return nil
	})
	if err != nil {
		return 0, err
	}
	if added > 0 {
		s.log.Info("catalog seeded", "catalog_id", catalogID, "products", added)
	}
	return added, nil
}

// randomDate picks a moment within the last years.
func (s *storefront) randomDate(years int) time.Time {
	now := s.now()
	start := now.AddDate(-years, 0, 0)
	span := now.Sub(start)
	return start.Add(time.Duration(s.rng.Int63n(int64(span)))).Truncate(time.Second)
}
