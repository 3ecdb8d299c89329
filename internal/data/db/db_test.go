package db

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/mystore-backend/internal/domain/store"
	"github.com/yungbote/mystore-backend/internal/pkg/logger"
)

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "file::memory:?cache=shared&_foreign_keys=on", SQLiteDSN(""))
	assert.Equal(t, "file::memory:?cache=shared&_foreign_keys=on", SQLiteDSN(":memory:"))
	assert.Equal(t, "file:mystore.db?_foreign_keys=on&_busy_timeout=5000", SQLiteDSN("mystore.db"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=on", SQLiteDSN("file:x?mode=memory"))
	assert.Equal(t, "file:y?_foreign_keys=on", SQLiteDSN("file:y?_foreign_keys=on"))
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(logger.Nop(), Options{Driver: "oracle"})
	require.Error(t, err)
}

func TestAutoMigrateAllCreatesStoreTables(t *testing.T) {
	path := fmt.Sprintf("file:migrate_%d?mode=memory&cache=shared", time.Now().UnixNano())
	svc, err := Open(logger.Nop(), Options{Driver: DriverSQLite, Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })

	require.NoError(t, AutoMigrateAll(svc.DB()))
	for _, table := range []string{
		"catalogs", "products", "customers", "orders",
		"order_items", "shopping_carts", "shopping_cart_items",
	} {
		assert.True(t, svc.DB().Migrator().HasTable(table), table)
	}

	var fk int
	require.NoError(t, svc.DB().Raw("PRAGMA foreign_keys").Scan(&fk).Error)
	assert.Equal(t, 1, fk)
}

func TestAutoMigrateAllLineItemsReferenceProducts(t *testing.T) {
	path := fmt.Sprintf("file:migrate_fk_%d?mode=memory&cache=shared", time.Now().UnixNano())
	svc, err := Open(logger.Nop(), Options{Driver: DriverSQLite, Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })
	gdb := svc.DB()
	require.NoError(t, AutoMigrateAll(gdb))

	ddl := func(table string) string {
		var sql string
		require.NoError(t, gdb.Raw("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&sql).Error)
		return sql
	}
	products := ddl("products")
	assert.NotContains(t, products, "order_items")
	assert.NotContains(t, products, "shopping_cart_items")
	for _, table := range []string{"order_items", "shopping_cart_items"} {
		assert.Regexp(t, "REFERENCES [`\"]?products[`\"]?", ddl(table), table)
	}

	catalog := store.NewCatalog("Main")
	require.NoError(t, gdb.Create(catalog).Error)
	product := store.NewProduct(catalog, "TV", "LED TV", decimal.RequireFromString("648.99"))
	require.NoError(t, gdb.Create(product).Error)
	assert.NotZero(t, product.ProductID)
}
