package services

import (
	"github.com/shopspring/decimal"

	"github.com/yungbote/mystore-backend/internal/domain/store"
)

const (
	MinQuantity = 1
	MaxQuantity = 1000
)

var hundred = decimal.NewFromInt(100)

// FullPrice is quantity times the list price.
func FullPrice(quantity int, listPrice decimal.Decimal) decimal.Decimal {
	return listPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

// DiscountedPrice applies a percentage discount to the full price, rounded to cents.
func DiscountedPrice(quantity int, listPrice, discountPercentage decimal.Decimal) decimal.Decimal {
	full := listPrice.Mul(decimal.NewFromInt(int64(quantity)))
	factor := decimal.NewFromInt(1).Sub(discountPercentage.Div(hundred))
	return full.Mul(factor).Round(2)
}

type Line struct {
	ProductID          uint
	Title              string
	Quantity           int
	ListPrice          decimal.Decimal
	DiscountPercentage decimal.Decimal
	FullPrice          decimal.Decimal
	DiscountedPrice    decimal.Decimal
}

type Summary struct {
	CartID          uint
	Lines           []Line
	ItemsQuantity   int
	FullPrice       decimal.Decimal
	DiscountedPrice decimal.Decimal
	IsEmpty         bool
}

// Summarize prices a cart whose items carry their products.
func Summarize(cart *store.ShoppingCart) *Summary {
	sum := &Summary{FullPrice: decimal.Zero, DiscountedPrice: decimal.Zero}
	if cart == nil {
		sum.IsEmpty = true
		return sum
	}
	sum.CartID = cart.ShoppingCartID
	for _, it := range cart.Items {
		line := Line{ProductID: it.ProductID, Quantity: it.Quantity}
		if it.Product != nil {
			line.Title = it.Product.Title
			line.ListPrice = it.Product.ListPrice
			line.DiscountPercentage = it.Product.DiscountPercentage
			line.FullPrice = FullPrice(it.Quantity, it.Product.ListPrice)
			line.DiscountedPrice = DiscountedPrice(it.Quantity, it.Product.ListPrice, it.Product.DiscountPercentage)
		}
		sum.Lines = append(sum.Lines, line)
		sum.ItemsQuantity += it.Quantity
		sum.FullPrice = sum.FullPrice.Add(line.FullPrice)
		sum.DiscountedPrice = sum.DiscountedPrice.Add(line.DiscountedPrice)
	}
	sum.IsEmpty = len(sum.Lines) == 0
	return sum
}

// OrderTotals prices an order from the prices captured on its items.
func OrderTotals(o *store.Order) (full, discounted decimal.Decimal) {
	full, discounted = decimal.Zero, decimal.Zero
	if o == nil {
		return full, discounted
	}
	for _, it := range o.Items {
		full = full.Add(FullPrice(it.Quantity, it.ListPrice))
		discounted = discounted.Add(DiscountedPrice(it.Quantity, it.ListPrice, it.DiscountPercentage))
	}
	return full, discounted
}
