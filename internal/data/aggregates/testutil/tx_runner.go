package testutil

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"github.com/yungbote/mystore-backend/internal/data/aggregates"
	"github.com/yungbote/mystore-backend/internal/pkg/dbctx"
)

// InjectedTxRunner stands in for the transaction boundary in repository
// tests. The body runs against the outer handle, or the repository's own db
// when outer is nil, and begin or commit failures can be injected.
type InjectedTxRunner struct {
	mu sync.Mutex

	FailBegin  error
	FailCommit error

	Joined        int
	CommitCalls   int
	RollbackCalls int
}

var _ aggregates.TxRunner = (*InjectedTxRunner)(nil)

func (r *InjectedTxRunner) InTx(ctx context.Context, outer *gorm.DB, fn func(dbc dbctx.Context) error) error {
	r.mu.Lock()
	if outer != nil {
		r.Joined++
	}
	failBegin, failCommit := r.FailBegin, r.FailCommit
	r.mu.Unlock()

	if failBegin != nil {
		return failBegin
	}
	var err error
	if fn != nil {
		err = fn(dbctx.Context{Ctx: ctx, Tx: outer})
	}
	if err == nil {
		err = failCommit
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.RollbackCalls++
		return err
	}
	r.CommitCalls++
	return nil
}
