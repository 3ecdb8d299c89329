package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/mystore-backend/internal/pkg/logger"
	"github.com/yungbote/mystore-backend/internal/services"
)

type Services struct {
	Storefront services.Storefront
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet services.StoreRepos) Services {
	log.Debug("Wiring services...")
	return Services{
		Storefront: services.NewStorefront(db, log, reposet),
	}
}
