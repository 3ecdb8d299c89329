package store

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ProductID          uint            `gorm:"column:product_id;primaryKey;autoIncrement" json:"product_id"`
	CatalogID          uint            `gorm:"column:catalog_id;not null;index" json:"catalog_id"`
	Title              string          `gorm:"column:title;size:50;not null" json:"title" validate:"required,max=50"`
	Description        string          `gorm:"column:description;size:500;not null" json:"description" validate:"required,max=500"`
	Image              []byte          `gorm:"column:image" json:"-"`
	DatePublished      time.Time       `gorm:"column:date_published;not null" json:"date_published"`
	ListPrice          decimal.Decimal `gorm:"column:list_price;type:decimal(18,2);not null" json:"list_price" validate:"gte=0"`
	DiscountPercentage decimal.Decimal `gorm:"column:discount_percentage;type:decimal(5,2);not null" json:"discount_percentage" validate:"gte=0,lte=100"`
}

func (Product) TableName() string { return "products" }

// NewProduct builds a product owned by catalog.
func NewProduct(catalog *Catalog, title, description string, listPrice decimal.Decimal) *Product {
	p := &Product{
		Title:         title,
		Description:   description,
		ListPrice:     listPrice,
		DatePublished: time.Now().UTC(),
	}
	if catalog != nil {
		p.CatalogID = catalog.CatalogID
	}
	return p
}

func (p *Product) IdentityKey() uint { return p.ProductID }
func (p *Product) ParentKey() uint   { return p.CatalogID }

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.DatePublished.IsZero() {
		p.DatePublished = time.Now().UTC()
	}
	return nil
}
