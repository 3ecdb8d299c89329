package aggregates

import (
	"context"

	domainagg "github.com/yungbote/mystore-backend/internal/domain/aggregates"
	"github.com/yungbote/mystore-backend/internal/pkg/dbctx"
	"gorm.io/gorm"
)

// TxRunner provides the transaction boundary for aggregate writes. A non-nil
// outer transaction is joined through a savepoint instead of opening a new one.
type TxRunner interface {
	InTx(ctx context.Context, outer *gorm.DB, fn func(dbc dbctx.Context) error) error
}

type gormTxRunner struct {
	db *gorm.DB
}

// NewGormTxRunner returns a transaction runner backed by GORM transactions.
func NewGormTxRunner(db *gorm.DB) TxRunner {
	return &gormTxRunner{db: db}
}

func (r *gormTxRunner) InTx(ctx context.Context, outer *gorm.DB, fn func(dbc dbctx.Context) error) error {
	if fn == nil {
		return nil
	}
	base := outer
	if base == nil {
		if r == nil || r.db == nil {
			return domainagg.NewError(domainagg.CodeInternal, "aggregate.tx", "transaction runner has nil db", nil)
		}
		base = r.db
	}
	return base.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: ctx, Tx: tx})
	})
}
