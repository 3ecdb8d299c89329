package store

import (
	"time"

	"gorm.io/gorm"
)

type Catalog struct {
	CatalogID   uint       `gorm:"column:catalog_id;primaryKey;autoIncrement" json:"catalog_id"`
	Title       string     `gorm:"column:title;size:50;not null" json:"title" validate:"required,max=50"`
	Description string     `gorm:"column:description;size:500" json:"description,omitempty" validate:"max=500"`
	DateCreated time.Time  `gorm:"column:date_created;not null" json:"date_created"`
	LastEdited  *time.Time `gorm:"column:last_edited" json:"last_edited,omitempty"`

	Products []*Product `gorm:"foreignKey:CatalogID;references:CatalogID;constraint:OnDelete:CASCADE" json:"products,omitempty" validate:"-"`
}

func (Catalog) TableName() string { return "catalogs" }

func NewCatalog(title string) *Catalog {
	return &Catalog{Title: title, DateCreated: time.Now().UTC()}
}

func (c *Catalog) IdentityKey() uint { return c.CatalogID }

func (c *Catalog) BeforeCreate(tx *gorm.DB) error {
	if c.DateCreated.IsZero() {
		c.DateCreated = time.Now().UTC()
	}
	return nil
}

// AddProduct attaches p to the catalog's in-memory collection. It is a no-op
// when a product with the same identity is already attached.
func (c *Catalog) AddProduct(p *Product) bool {
	if p == nil {
		return false
	}
	if p.ProductID != 0 {
		for _, existing := range c.Products {
			if existing.ProductID == p.ProductID {
				return false
			}
		}
	}
	p.CatalogID = c.CatalogID
	c.Products = append(c.Products, p)
	return true
}

// Product returns the attached product with the given id, or nil.
func (c *Catalog) Product(productID uint) *Product {
	for _, p := range c.Products {
		if p.ProductID == productID {
			return p
		}
	}
	return nil
}

// RemoveProduct detaches the product with the given id from the in-memory collection.
func (c *Catalog) RemoveProduct(productID uint) bool {
	for i, p := range c.Products {
		if p.ProductID == productID {
			c.Products = append(c.Products[:i], c.Products[i+1:]...)
			return true
		}
	}
	return false
}
