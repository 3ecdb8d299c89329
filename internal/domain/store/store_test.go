package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityKeysIgnoreFieldValues(t *testing.T) {
	a := &Product{ProductID: 3, CatalogID: 1, Title: "TV"}
	b := &Product{ProductID: 3, CatalogID: 1, Title: "Renamed"}
	assert.Equal(t, a.IdentityKey(), b.IdentityKey())
	assert.Equal(t, uint(1), a.ParentKey())

	line := &ShoppingCartItem{ShoppingCartID: 9, ProductID: 4, Quantity: 1}
	other := &ShoppingCartItem{ShoppingCartID: 9, ProductID: 4, Quantity: 7}
	assert.Equal(t, line.IdentityKey(), other.IdentityKey())
	assert.Equal(t, LineKey{ParentID: 9, ProductID: 4}, line.IdentityKey())
	assert.Equal(t, uint(9), line.ParentKey())
}

func TestValidateAggregatesFieldFailures(t *testing.T) {
	p := &Product{
		ListPrice:          decimal.NewFromInt(-1),
		DiscountPercentage: decimal.NewFromInt(101),
	}
	err := Validate(p)
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Product", ve.Entity)
	assert.Len(t, ve.Problems, 4)
	msg := err.Error()
	assert.Contains(t, msg, "Product.Title is required")
	assert.Contains(t, msg, "Product.Description is required")
	assert.Contains(t, msg, "Product.ListPrice must not be less than 0")
	assert.Contains(t, msg, "Product.DiscountPercentage must not be greater than 100")
	assert.Equal(t, 3, strings.Count(msg, "\n"))
}

func TestValidateAcceptsWellFormedEntities(t *testing.T) {
	p := &Product{
		Title:              "Sony 43\"",
		Description:        "LED TV",
		ListPrice:          decimal.RequireFromString("648.00"),
		DiscountPercentage: decimal.NewFromInt(15),
	}
	assert.NoError(t, Validate(p))

	c := &Customer{NonRoamableID: "dev-1", FirstName: "Jane", LastName: "Doe"}
	assert.NoError(t, Validate(c))

	c.Email = "not-an-email"
	err := Validate(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Customer.Email must be a valid email address")
}

func TestValidateAllMergesProblems(t *testing.T) {
	items := []*ShoppingCartItem{
		{ShoppingCartID: 1, ProductID: 1, Quantity: 1},
		{ShoppingCartID: 1, ProductID: 2, Quantity: 0},
		{ShoppingCartID: 1, ProductID: 0, Quantity: 2},
	}
	err := ValidateAll(items)
	require.Error(t, err)
	assert.Equal(t,
		"ShoppingCartItem.Quantity must be at least 1\nShoppingCartItem.ProductID is required",
		err.Error())

	assert.NoError(t, ValidateAll(items[:1]))
	assert.NoError(t, ValidateAll([]*ShoppingCartItem{}))
}

func TestOrderCloseIsTerminal(t *testing.T) {
	o := NewOrder(&Customer{CustomerID: 2})
	assert.Equal(t, OrderStateOpen, o.State)
	assert.Equal(t, uint(2), o.CustomerID)

	require.NoError(t, o.Close())
	assert.Equal(t, OrderStateClosed, o.State)
	assert.Error(t, o.Close())
}

func TestNewOrderItemCopiesPricing(t *testing.T) {
	p := &Product{
		ProductID:          5,
		ListPrice:          decimal.RequireFromString("10"),
		DiscountPercentage: decimal.RequireFromString("12.5"),
	}
	it := NewOrderItem(&Order{OrderID: 8}, p, 2)
	assert.Equal(t, LineKey{ParentID: 8, ProductID: 5}, it.IdentityKey())
	assert.True(t, it.ListPrice.Equal(p.ListPrice))
	assert.True(t, it.DiscountPercentage.Equal(p.DiscountPercentage))

	p.ListPrice = decimal.NewFromInt(99)
	assert.True(t, it.ListPrice.Equal(decimal.NewFromInt(10)))
}

func TestCatalogProductCollection(t *testing.T) {
	c := &Catalog{CatalogID: 4, Title: "Main"}
	p := &Product{ProductID: 1}
	assert.True(t, c.AddProduct(p))
	assert.Equal(t, uint(4), p.CatalogID)
	assert.False(t, c.AddProduct(&Product{ProductID: 1}))
	assert.True(t, c.AddProduct(&Product{}))
	assert.Len(t, c.Products, 2)

	assert.True(t, c.RemoveProduct(1))
	assert.False(t, c.RemoveProduct(1))
	assert.Len(t, c.Products, 1)
}

func TestShoppingCartItemsQuantity(t *testing.T) {
	cart := &ShoppingCart{ShoppingCartID: 1}
	assert.Equal(t, 0, cart.ItemsQuantity())
	cart.Items = []*ShoppingCartItem{
		NewShoppingCartItem(cart, &Product{ProductID: 1}, 2),
		NewShoppingCartItem(cart, &Product{ProductID: 2}, 3),
	}
	assert.Equal(t, 5, cart.ItemsQuantity())
	require.NotNil(t, cart.Line(2))
	assert.Nil(t, cart.Line(3))
}
