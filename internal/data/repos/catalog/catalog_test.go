package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/mystore-backend/internal/data/repos/testutil"
	domainagg "github.com/yungbote/mystore-backend/internal/domain/aggregates"
	"github.com/yungbote/mystore-backend/internal/domain/store"
)

func TestCatalogRepoReconcilesProducts(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewCatalogRepo(db, testutil.Logger(t))

	catalog := store.NewCatalog("Main")
	catalog.AddProduct(store.NewProduct(catalog, "Samsung 65\"", "4K UHD", decimal.RequireFromString("1499.99")))
	catalog.AddProduct(store.NewProduct(catalog, "Sony 43\"", "LED", decimal.RequireFromString("648")))

	added, err := repo.Add(ctx, tx, catalog)
	require.NoError(t, err)
	require.NotZero(t, added.CatalogID)
	for _, p := range added.Products {
		assert.NotZero(t, p.ProductID)
		assert.Equal(t, added.CatalogID, p.CatalogID)
	}

	got, err := repo.GetByID(ctx, tx, added.CatalogID)
	require.NoError(t, err)
	require.Len(t, got.Products, 2)

	samsung, sony := got.Products[0], got.Products[1]
	samsung.ListPrice = decimal.RequireFromString("1399.99")
	got.RemoveProduct(sony.ProductID)
	got.AddProduct(store.NewProduct(got, "LG OLED 55\"", "OLED", decimal.RequireFromString("2297")))

	changed, err := repo.Update(ctx, tx, got)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.NotNil(t, got.LastEdited)

	reloaded, err := repo.GetByID(ctx, tx, added.CatalogID)
	require.NoError(t, err)
	require.Len(t, reloaded.Products, 2)
	assert.Equal(t, samsung.ProductID, reloaded.Products[0].ProductID)
	assert.True(t, reloaded.Products[0].ListPrice.Equal(decimal.RequireFromString("1399.99")))
	assert.Equal(t, "LG OLED 55\"", reloaded.Products[1].Title)
	assert.Equal(t, int64(2), testutil.Count(t, tx, &store.Product{}))
}

func TestCatalogRepoUpdateWithoutLoadedProductsKeepsThem(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewCatalogRepo(db, testutil.Logger(t))
	c := testutil.SeedCatalog(t, ctx, tx, "Main")
	testutil.SeedProduct(t, ctx, tx, c, "TV", "10")

	all, err := repo.GetAll(ctx, tx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Nil(t, all[0].Products)

	all[0].Description = "renamed"
	_, err = repo.Update(ctx, tx, all[0])
	require.NoError(t, err)
	assert.Equal(t, int64(1), testutil.Count(t, tx, &store.Product{}))

	loaded, err := repo.GetByID(ctx, tx, c.CatalogID)
	require.NoError(t, err)
	loaded.Products = []*store.Product{}
	_, err = repo.Update(ctx, tx, loaded)
	require.NoError(t, err)
	assert.Zero(t, testutil.Count(t, tx, &store.Product{}))
}

func TestCatalogRepoIdentityErrors(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewCatalogRepo(db, testutil.Logger(t))
	c := testutil.SeedCatalog(t, ctx, tx, "Main")

	_, err := repo.Add(ctx, tx, c)
	assert.True(t, domainagg.IsCode(err, domainagg.CodeAlreadyExists), "got %v", err)

	ghost := &store.Catalog{CatalogID: 999, Title: "Ghost"}
	_, err = repo.Update(ctx, tx, ghost)
	assert.True(t, domainagg.IsCode(err, domainagg.CodeNotFound), "got %v", err)
	assert.Contains(t, domainagg.Describe(err), "Catalog 999 does not exist")

	_, err = repo.Delete(ctx, tx, ghost)
	assert.True(t, domainagg.IsCode(err, domainagg.CodeNotFound), "got %v", err)

	_, err = repo.GetByID(ctx, tx, 999)
	assert.True(t, domainagg.IsCode(err, domainagg.CodeNotFound), "got %v", err)
}

func TestCatalogRepoValidationRollsBack(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewCatalogRepo(db, testutil.Logger(t))

	_, err := repo.Add(ctx, tx, &store.Catalog{})
	require.True(t, domainagg.IsCode(err, domainagg.CodeValidation), "got %v", err)

	c := store.NewCatalog("Main")
	c.AddProduct(&store.Product{Title: "", ListPrice: decimal.NewFromInt(-5)})
	_, err = repo.Add(ctx, tx, c)
	require.True(t, domainagg.IsCode(err, domainagg.CodeValidation), "got %v", err)
	msg := domainagg.Describe(err)
	assert.Contains(t, msg, "Product.Title is required")
	assert.Contains(t, msg, "Product.ListPrice must not be less than 0")

	assert.Zero(t, testutil.Count(t, tx, &store.Catalog{}))
}

func TestCatalogRepoDeleteCascadesToProducts(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()

	repo := NewCatalogRepo(db, testutil.Logger(t))
	products := NewProductRepo(db, testutil.Logger(t))

	c := store.NewCatalog("Main")
	c.AddProduct(store.NewProduct(c, "TV", "LED", decimal.NewFromInt(10)))
	_, err := repo.Add(ctx, nil, c)
	require.NoError(t, err)

	list, err := products.GetByCatalogID(ctx, nil, c.CatalogID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	deleted, err := repo.Delete(ctx, nil, c)
	require.NoError(t, err)
	assert.True(t, deleted)

	list, err = products.GetAll(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCatalogRepoClearAndTitleLookup(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	repo := NewCatalogRepo(db, testutil.Logger(t))

	for _, title := range []string{"Main", "Outlet"} {
		_, err := repo.Add(ctx, nil, store.NewCatalog(title))
		require.NoError(t, err)
	}

	found, err := repo.GetByTitle(ctx, nil, "Outlet")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Outlet", found.Title)

	missing, err := repo.GetByTitle(ctx, nil, "Nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	removed, err := repo.Clear(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
}
