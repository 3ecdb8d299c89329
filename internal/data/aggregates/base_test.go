package aggregates

import (
	"context"
	"errors"
	"testing"
	"time"

	domainagg "github.com/yungbote/mystore-backend/internal/domain/aggregates"
	"github.com/yungbote/mystore-backend/internal/domain/store"
	"github.com/yungbote/mystore-backend/internal/pkg/dbctx"
	"gorm.io/gorm"
)

func TestExecuteWriteObservesSuccessStatus(t *testing.T) {
	hooks := &spyHooks{}
	runner := &spyTxRunner{}

	err := ExecuteWrite(context.Background(), BaseDeps{
		Runner: runner,
		Hooks:  hooks,
	}, nil, "catalogs.add", func(_ dbctx.Context) error { return nil })
	if err != nil {
		t.Fatalf("ExecuteWrite success: %v", err)
	}
	if len(hooks.Operations) != 1 {
		t.Fatalf("operations count: want=1 got=%d", len(hooks.Operations))
	}
	if hooks.Operations[0].Status != "success" || hooks.Operations[0].Name != "catalogs.add" {
		t.Fatalf("operation: got=%+v", hooks.Operations[0])
	}
}

func TestExecuteWritePassesOuterTransaction(t *testing.T) {
	runner := &spyTxRunner{}
	outer := &gorm.DB{}

	_ = ExecuteWrite(context.Background(), BaseDeps{Runner: runner}, outer, "orders.update", func(_ dbctx.Context) error { return nil })
	if runner.Outer != outer {
		t.Fatalf("outer transaction was not handed to the runner")
	}
}

func TestExecuteWriteObservesValidationStatus(t *testing.T) {
	hooks := &spyHooks{}

	err := ExecuteWrite(context.Background(), BaseDeps{
		Runner: &spyTxRunner{},
		Hooks:  hooks,
	}, nil, "products.add", func(_ dbctx.Context) error {
		return &store.ValidationError{Entity: "Product", Problems: []string{"Product.Title is required"}}
	})
	if !domainagg.IsCode(err, domainagg.CodeValidation) {
		t.Fatalf("expected validation code, got=%v", err)
	}
	if hooks.Operations[0].Status != string(domainagg.CodeValidation) {
		t.Fatalf("operation status: want=%s got=%s", domainagg.CodeValidation, hooks.Operations[0].Status)
	}
}

func TestExecuteWriteTracksConflictAndRetryCounters(t *testing.T) {
	t.Run("conflict", func(t *testing.T) {
		hooks := &spyHooks{}
		err := ExecuteWrite(context.Background(), BaseDeps{
			Runner: &spyTxRunner{},
			Hooks:  hooks,
		}, nil, "customers.add", func(_ dbctx.Context) error {
			return gorm.ErrDuplicatedKey
		})
		if !domainagg.IsCode(err, domainagg.CodeConflict) {
			t.Fatalf("expected conflict code, got=%v", err)
		}
		if len(hooks.Conflicts) != 1 || hooks.Conflicts[0] != "customers.add" {
			t.Fatalf("conflict hooks: %+v", hooks.Conflicts)
		}
		if len(hooks.Retries) != 0 {
			t.Fatalf("retry hooks should be empty, got=%+v", hooks.Retries)
		}
	})

	t.Run("retryable", func(t *testing.T) {
		hooks := &spyHooks{}
		err := ExecuteWrite(context.Background(), BaseDeps{
			Runner: &spyTxRunner{},
			Hooks:  hooks,
		}, nil, "orders.update", func(_ dbctx.Context) error {
			return context.DeadlineExceeded
		})
		if !domainagg.IsCode(err, domainagg.CodeRetryable) {
			t.Fatalf("expected retryable code, got=%v", err)
		}
		if len(hooks.Retries) != 1 || hooks.Retries[0] != "orders.update" {
			t.Fatalf("retry hooks: %+v", hooks.Retries)
		}
		if len(hooks.Conflicts) != 0 {
			t.Fatalf("conflict hooks should be empty, got=%+v", hooks.Conflicts)
		}
	})
}

func TestExecuteWriteKeepsAggregateErrors(t *testing.T) {
	want := domainagg.NotFound("orders.update", "Order 3")
	err := ExecuteWrite(context.Background(), BaseDeps{Runner: &spyTxRunner{}}, nil, "orders.update", func(_ dbctx.Context) error {
		return want
	})
	if !errors.Is(err, want) {
		t.Fatalf("expected the aggregate error to pass through, got=%v", err)
	}
}

func TestAggregateErrorStatus(t *testing.T) {
	if got := aggregateErrorStatus(nil); got != "success" {
		t.Fatalf("nil status: want=success got=%s", got)
	}
	if got := aggregateErrorStatus(gorm.ErrRecordNotFound); got != string(domainagg.CodeNotFound) {
		t.Fatalf("not found status: got=%s", got)
	}
	if got := aggregateErrorStatus(context.DeadlineExceeded); got != string(domainagg.CodeRetryable) {
		t.Fatalf("deadline status: got=%s", got)
	}
}

type spyTxRunner struct {
	Outer *gorm.DB
}

func (r *spyTxRunner) InTx(ctx context.Context, outer *gorm.DB, fn func(dbc dbctx.Context) error) error {
	r.Outer = outer
	if fn == nil {
		return nil
	}
	return fn(dbctx.Context{Ctx: ctx, Tx: outer})
}

type spyHooks struct {
	Operations []spyOperation
	Conflicts  []string
	Retries    []string
}

type spyOperation struct {
	Name   string
	Status string
}

func (h *spyHooks) ObserveOperation(name, status string, _ time.Duration) {
	h.Operations = append(h.Operations, spyOperation{Name: name, Status: status})
}

func (h *spyHooks) IncConflict(name string) {
	h.Conflicts = append(h.Conflicts, name)
}

func (h *spyHooks) IncRetry(name string) {
	h.Retries = append(h.Retries, name)
}
