package store

import "time"

type ShoppingCart struct {
	ShoppingCartID uint       `gorm:"column:shopping_cart_id;primaryKey;autoIncrement" json:"shopping_cart_id"`
	CustomerID     uint       `gorm:"column:customer_id;not null;uniqueIndex" json:"customer_id" validate:"required"`
	LastEdited     *time.Time `gorm:"column:last_edited" json:"last_edited,omitempty"`

	Items []*ShoppingCartItem `gorm:"foreignKey:ShoppingCartID;references:ShoppingCartID;constraint:OnDelete:CASCADE" json:"items,omitempty" validate:"-"`
}

func (ShoppingCart) TableName() string { return "shopping_carts" }

func NewShoppingCart(customer *Customer) *ShoppingCart {
	c := &ShoppingCart{}
	if customer != nil {
		c.CustomerID = customer.CustomerID
	}
	return c
}

func (c *ShoppingCart) IdentityKey() uint { return c.ShoppingCartID }

// Line returns the in-memory line for productID, or nil.
func (c *ShoppingCart) Line(productID uint) *ShoppingCartItem {
	for _, it := range c.Items {
		if it.ProductID == productID {
			return it
		}
	}
	return nil
}

// ItemsQuantity sums line quantities; the badge count.
func (c *ShoppingCart) ItemsQuantity() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

type ShoppingCartItem struct {
	ShoppingCartID uint `gorm:"column:shopping_cart_id;primaryKey;autoIncrement:false" json:"shopping_cart_id" validate:"required"`
	ProductID      uint `gorm:"column:product_id;primaryKey;autoIncrement:false" json:"product_id" validate:"required"`
	Quantity       int  `gorm:"column:quantity;not null" json:"quantity" validate:"min=1"`

	Product *Product `gorm:"constraint:OnDelete:CASCADE" json:"product,omitempty" validate:"-"`
}

func (ShoppingCartItem) TableName() string { return "shopping_cart_items" }

func NewShoppingCartItem(cart *ShoppingCart, product *Product, quantity int) *ShoppingCartItem {
	it := &ShoppingCartItem{Quantity: quantity, Product: product}
	if cart != nil {
		it.ShoppingCartID = cart.ShoppingCartID
	}
	if product != nil {
		it.ProductID = product.ProductID
	}
	return it
}

func (it *ShoppingCartItem) IdentityKey() LineKey {
	return LineKey{ParentID: it.ShoppingCartID, ProductID: it.ProductID}
}
func (it *ShoppingCartItem) ParentKey() uint { return it.ShoppingCartID }
