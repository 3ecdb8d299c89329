package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/yungbote/mystore-backend/internal/domain/store"
)

func SeedCatalog(tb testing.TB, ctx context.Context, tx *gorm.DB, title string) *store.Catalog {
	tb.Helper()
	c := store.NewCatalog(title)
	if err := tx.WithContext(ctx).Omit("Products").Create(c).Error; err != nil {
		tb.Fatalf("seed catalog: %v", err)
	}
	return c
}

func SeedProduct(tb testing.TB, ctx context.Context, tx *gorm.DB, catalog *store.Catalog, title, price string) *store.Product {
	tb.Helper()
	p := store.NewProduct(catalog, title, title+" description", decimal.RequireFromString(price))
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return p
}

func SeedCustomer(tb testing.TB, ctx context.Context, tx *gorm.DB, nonRoamableID string) *store.Customer {
	tb.Helper()
	c := &store.Customer{
		NonRoamableID: nonRoamableID,
		FirstName:     "John",
		LastName:      "Doe",
	}
	if err := tx.WithContext(ctx).Omit("Orders", "ShoppingCart").Create(c).Error; err != nil {
		tb.Fatalf("seed customer: %v", err)
	}
	return c
}

func SeedShoppingCart(tb testing.TB, ctx context.Context, tx *gorm.DB, customer *store.Customer) *store.ShoppingCart {
	tb.Helper()
	c := store.NewShoppingCart(customer)
	if err := tx.WithContext(ctx).Omit("Items").Create(c).Error; err != nil {
		tb.Fatalf("seed shopping cart: %v", err)
	}
	return c
}

func SeedCartItem(tb testing.TB, ctx context.Context, tx *gorm.DB, cart *store.ShoppingCart, product *store.Product, quantity int) *store.ShoppingCartItem {
	tb.Helper()
	it := store.NewShoppingCartItem(cart, product, quantity)
	if err := tx.WithContext(ctx).Omit("Product").Create(it).Error; err != nil {
		tb.Fatalf("seed cart item: %v", err)
	}
	return it
}

func SeedOrder(tb testing.TB, ctx context.Context, tx *gorm.DB, customer *store.Customer, lines ...*store.Product) *store.Order {
	tb.Helper()
	o := store.NewOrder(customer)
	if err := tx.WithContext(ctx).Omit("Items").Create(o).Error; err != nil {
		tb.Fatalf("seed order: %v", err)
	}
	for _, p := range lines {
		it := store.NewOrderItem(o, p, 1)
		if err := tx.WithContext(ctx).Omit("Product").Create(it).Error; err != nil {
			tb.Fatalf("seed order item: %v", err)
		}
		o.Items = append(o.Items, it)
	}
	return o
}

// Count returns the number of rows in model's table.
func Count(tb testing.TB, tx *gorm.DB, model interface{}) int64 {
	tb.Helper()
	var n int64
	if err := tx.Model(model).Count(&n).Error; err != nil {
		tb.Fatalf("count %s: %v", fmt.Sprintf("%T", model), err)
	}
	return n
}
