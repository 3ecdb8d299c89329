package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/mystore-backend/internal/domain/store"
)

// AutoMigrateAll creates or updates the store schema. Parents migrate before
// children so foreign keys resolve.
func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&store.Catalog{},
		&store.Product{},
		&store.Customer{},
		&store.Order{},
		&store.OrderItem{},
		&store.ShoppingCart{},
		&store.ShoppingCartItem{},
	); err != nil {
		return fmt.Errorf("auto migrate store schema: %w", err)
	}
	return nil
}
