package customer

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/mystore-backend/internal/data/repos/crud"
	domainagg "github.com/yungbote/mystore-backend/internal/domain/aggregates"
	"github.com/yungbote/mystore-backend/internal/domain/store"
	"github.com/yungbote/mystore-backend/internal/pkg/logger"
)

type CustomerRepo interface {
	crud.Repository[store.Customer]
	GetByNonRoamableID(ctx context.Context, tx *gorm.DB, nonRoamableID string) (*store.Customer, error)
}

type customerRepo struct {
	*crud.Table[store.Customer]
}

func NewCustomerRepo(db *gorm.DB, baseLog *logger.Logger, opts ...crud.Option) CustomerRepo {
	repoLog := baseLog.With("repo", "CustomerRepo")
	return &customerRepo{Table: crud.New(db, repoLog, crud.Spec[store.Customer]{
		Entity: "Customer",
		Op:     "customers",
		PK:     []string{"customer_id"},
		Key:    func(c *store.Customer) []uint { return []uint{c.CustomerID} },
	}, opts...)}
}

func (r *customerRepo) GetByNonRoamableID(ctx context.Context, tx *gorm.DB, nonRoamableID string) (*store.Customer, error) {
	op := "customers.get_by_non_roamable_id"
	nonRoamableID = strings.TrimSpace(nonRoamableID)
	if nonRoamableID == "" {
		return nil, domainagg.NewError(domainagg.CodeValidation, op, "non-roamable id is required", nil)
	}
	found, err := r.GetByPredicate(ctx, tx, func(db *gorm.DB) *gorm.DB {
		return db.Where("non_roamable_id = ?", nonRoamableID)
	})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, domainagg.NotFound(op, "Customer")
	}
	return found[0], nil
}
