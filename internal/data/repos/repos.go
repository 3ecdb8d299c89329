package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/mystore-backend/internal/data/repos/cart"
	"github.com/yungbote/mystore-backend/internal/data/repos/catalog"
	"github.com/yungbote/mystore-backend/internal/data/repos/crud"
	"github.com/yungbote/mystore-backend/internal/data/repos/customer"
	"github.com/yungbote/mystore-backend/internal/data/repos/order"
	"github.com/yungbote/mystore-backend/internal/pkg/logger"
)

type Predicate = crud.Predicate
type Repository[T any] = crud.Repository[T]
type Option = crud.Option

var (
	WithHooks  = crud.WithHooks
	WithRunner = crud.WithRunner
)

type CatalogRepo = catalog.CatalogRepo
type ProductRepo = catalog.ProductRepo

type CustomerRepo = customer.CustomerRepo

type OrderRepo = order.OrderRepo
type OrderItemRepo = order.OrderItemRepo

type ShoppingCartRepo = cart.ShoppingCartRepo
type ShoppingCartItemRepo = cart.ShoppingCartItemRepo

func NewCatalogRepo(db *gorm.DB, baseLog *logger.Logger, opts ...Option) CatalogRepo {
	return catalog.NewCatalogRepo(db, baseLog, opts...)
}
func NewProductRepo(db *gorm.DB, baseLog *logger.Logger, opts ...Option) ProductRepo {
	return catalog.NewProductRepo(db, baseLog, opts...)
}

func NewCustomerRepo(db *gorm.DB, baseLog *logger.Logger, opts ...Option) CustomerRepo {
	return customer.NewCustomerRepo(db, baseLog, opts...)
}

func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger, opts ...Option) OrderRepo {
	return order.NewOrderRepo(db, baseLog, opts...)
}
func NewOrderItemRepo(db *gorm.DB, baseLog *logger.Logger, opts ...Option) OrderItemRepo {
	return order.NewOrderItemRepo(db, baseLog, opts...)
}

func NewShoppingCartRepo(db *gorm.DB, baseLog *logger.Logger, opts ...Option) ShoppingCartRepo {
	return cart.NewShoppingCartRepo(db, baseLog, opts...)
}
func NewShoppingCartItemRepo(db *gorm.DB, baseLog *logger.Logger, opts ...Option) ShoppingCartItemRepo {
	return cart.NewShoppingCartItemRepo(db, baseLog, opts...)
}
