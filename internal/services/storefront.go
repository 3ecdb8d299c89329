package services

import (
	"context"
	"math/rand"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/mystore-backend/internal/data/repos"
	"github.com/yungbote/mystore-backend/internal/domain/store"
	"github.com/yungbote/mystore-backend/internal/pkg/logger"
)

// Identity is the local user a customer record is bound to.
type Identity struct {
	NonRoamableID string
	FirstName     string
	LastName      string
	Email         string
}

// Session is what a storefront run works against.
type Session struct {
	Customer *store.Customer
	Cart     *store.ShoppingCart
	Catalog  *store.Catalog
}

type StoreRepos struct {
	Catalogs          repos.CatalogRepo
	Products          repos.ProductRepo
	Customers         repos.CustomerRepo
	Orders            repos.OrderRepo
	OrderItems        repos.OrderItemRepo
	ShoppingCarts     repos.ShoppingCartRepo
	ShoppingCartItems repos.ShoppingCartItemRepo
}

type Storefront interface {
	EnsureMainCatalog(ctx context.Context) (*store.Catalog, error)
	EnsureCustomer(ctx context.Context, identity Identity) (*store.Customer, error)
	EnsureShoppingCart(ctx context.Context, customer *store.Customer) (*store.ShoppingCart, error)
	Bootstrap(ctx context.Context, identity Identity) (*Session, error)
	UpdateCustomer(ctx context.Context, customerID uint, patch CustomerPatch) (*store.Customer, error)

	Catalog(ctx context.Context, catalogID uint) (*store.Catalog, error)
	AddProduct(ctx context.Context, catalogID uint, product *store.Product) (*store.Product, error)
	UpdateProduct(ctx context.Context, catalogID, productID uint, patch ProductPatch) (*store.Product, error)
	DeleteProduct(ctx context.Context, catalogID, productID uint) error
	SeedCatalog(ctx context.Context, catalogID uint) (int, error)

	Cart(ctx context.Context, cartID uint) (*store.ShoppingCart, error)
	AddToCart(ctx context.Context, cartID, productID uint, quantity int) (*store.ShoppingCart, error)
	SetQuantity(ctx context.Context, cartID, productID uint, quantity int) (*store.ShoppingCart, error)
	Increment(ctx context.Context, cartID, productID uint) (*store.ShoppingCart, error)
	Decrement(ctx context.Context, cartID, productID uint) (*store.ShoppingCart, error)
	RemoveFromCart(ctx context.Context, cartID, productID uint) (*store.ShoppingCart, error)
	ClearCart(ctx context.Context, cartID uint) (*store.ShoppingCart, error)
	CartSummary(ctx context.Context, cartID uint) (*Summary, error)

	Checkout(ctx context.Context, cartID uint) (*store.Order, error)
	Orders(ctx context.Context, customerID uint) ([]*store.Order, error)
	Order(ctx context.Context, orderID uint) (*store.Order, error)
}

type storefront struct {
	db    *gorm.DB
	log   *logger.Logger
	repos StoreRepos
	rng   *rand.Rand
	now   func() time.Time
}

func NewStorefront(db *gorm.DB, log *logger.Logger, r StoreRepos) Storefront {
	serviceLog := log.With("service", "Storefront")
	return &storefront{
		db:    db,
		log:   serviceLog,
		repos: r,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *storefront) inTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return s.db.WithContext(ctx).Transaction(fn)
}
