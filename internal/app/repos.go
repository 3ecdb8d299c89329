package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/mystore-backend/internal/data/aggregates"
	"github.com/yungbote/mystore-backend/internal/data/repos"
	"github.com/yungbote/mystore-backend/internal/pkg/logger"
	"github.com/yungbote/mystore-backend/internal/services"
)

func wireRepos(db *gorm.DB, log *logger.Logger) services.StoreRepos {
	log.Debug("Wiring repos...")
	hooks := repos.WithHooks(aggregates.NewLogHooks(log))
	return services.StoreRepos{
		Catalogs:          repos.NewCatalogRepo(db, log, hooks),
		Products:          repos.NewProductRepo(db, log, hooks),
		Customers:         repos.NewCustomerRepo(db, log, hooks),
		Orders:            repos.NewOrderRepo(db, log, hooks),
		OrderItems:        repos.NewOrderItemRepo(db, log, hooks),
		ShoppingCarts:     repos.NewShoppingCartRepo(db, log, hooks),
		ShoppingCartItems: repos.NewShoppingCartItemRepo(db, log, hooks),
	}
}
