// Package crud implements the repository contract shared by every store
// aggregate: reads with preloaded children, identity-checked writes, and
// child collection reconciliation inside the parent's transaction.
package crud

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/mystore-backend/internal/data/aggregates"
	domainagg "github.com/yungbote/mystore-backend/internal/domain/aggregates"
	"github.com/yungbote/mystore-backend/internal/domain/store"
	"github.com/yungbote/mystore-backend/internal/pkg/dbctx"
	"github.com/yungbote/mystore-backend/internal/pkg/logger"
)

// Predicate narrows a query; it is evaluated by the database.
type Predicate = func(*gorm.DB) *gorm.DB

type Repository[T any] interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*T, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*T, error)
	GetByPredicate(ctx context.Context, tx *gorm.DB, preds ...Predicate) ([]*T, error)
	Add(ctx context.Context, tx *gorm.DB, entity *T) (*T, error)
	Update(ctx context.Context, tx *gorm.DB, entity *T) (bool, error)
	Delete(ctx context.Context, tx *gorm.DB, entity *T) (bool, error)
	Clear(ctx context.Context, tx *gorm.DB) (int64, error)
	domainagg.Aggregate
}

// Spec describes one entity table.
type Spec[T any] struct {
	Entity string
	Op     string
	// PK lists the primary key columns; Key returns the entity's values in the same order.
	PK  []string
	Key func(e *T) []uint
	// Preload is applied to GetByID and GetByPredicate.
	Preload Predicate
	// Touch stamps the last-edited time on update.
	Touch func(e *T, now time.Time)
	// Children reconciles the entity's child collection after the parent row is written.
	Children func(ctx context.Context, tx *gorm.DB, e *T) (bool, error)
}

type Option func(*aggregates.BaseDeps)

func WithHooks(h aggregates.Hooks) Option {
	return func(d *aggregates.BaseDeps) { d.Hooks = h }
}

func WithRunner(r aggregates.TxRunner) Option {
	return func(d *aggregates.BaseDeps) { d.Runner = r }
}

type Table[T any] struct {
	db   *gorm.DB
	log  *logger.Logger
	deps aggregates.BaseDeps
	spec Spec[T]
}

func New[T any](db *gorm.DB, log *logger.Logger, spec Spec[T], opts ...Option) *Table[T] {
	if log == nil {
		log = logger.Nop()
	}
	deps := aggregates.BaseDeps{DB: db, Log: log}
	for _, opt := range opts {
		if opt != nil {
			opt(&deps)
		}
	}
	return &Table[T]{db: db, log: log, deps: deps, spec: spec}
}

func (t *Table[T]) Spec() Spec[T] { return t.spec }

func (t *Table[T]) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	transaction := tx
	if transaction == nil {
		transaction = t.db
	}
	return transaction.WithContext(ctx)
}

func (t *Table[T]) order() string {
	return strings.Join(t.spec.PK, ", ")
}

func (t *Table[T]) GetAll(ctx context.Context, tx *gorm.DB) ([]*T, error) {
	var results []*T
	if err := t.conn(ctx, tx).Order(t.order()).Find(&results).Error; err != nil {
		return nil, aggregates.MapError(t.spec.Op+".get_all", err)
	}
	return results, nil
}

func (t *Table[T]) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*T, error) {
	op := t.spec.Op + ".get_by_id"
	if len(t.spec.PK) != 1 {
		return nil, domainagg.NewError(domainagg.CodeValidation, op, t.spec.Entity+" has a composite identity, use GetByKey", nil)
	}
	var result T
	err := t.conn(ctx, tx).
		Scopes(t.preload).
		Where(t.spec.PK[0]+" = ?", id).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainagg.NotFound(op, fmt.Sprintf("%s %d", t.spec.Entity, id))
	}
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	return &result, nil
}

func (t *Table[T]) GetByPredicate(ctx context.Context, tx *gorm.DB, preds ...Predicate) ([]*T, error) {
	var results []*T
	err := t.conn(ctx, tx).
		Scopes(t.preload).
		Scopes(preds...).
		Order(t.order()).
		Find(&results).Error
	if err != nil {
		return nil, aggregates.MapError(t.spec.Op+".get_by_predicate", err)
	}
	return results, nil
}

func (t *Table[T]) Add(ctx context.Context, tx *gorm.DB, entity *T) (*T, error) {
	op := t.spec.Op + ".add"
	if entity == nil {
		return nil, domainagg.NewError(domainagg.CodeValidation, op, t.spec.Entity+" is required", nil)
	}
	err := aggregates.ExecuteWrite(ctx, t.deps, tx, op, func(dbc dbctx.Context) error {
		if err := store.Validate(entity); err != nil {
			return err
		}
		db := dbc.DB(t.db)
		found, err := t.Exists(db, entity)
		if err != nil {
			return err
		}
		if found {
			return domainagg.AlreadyExists(op, t.Describe(entity))
		}
		if err := db.Omit(clause.Associations).Create(entity).Error; err != nil {
			return fmt.Errorf("insert %s: %w", strings.ToLower(t.spec.Entity), err)
		}
		if t.spec.Children != nil {
			if _, err := t.spec.Children(dbc.Ctx, db, entity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	t.log.Debug("entity added", "entity", t.spec.Entity, "key", t.spec.Key(entity))
	return entity, nil
}

func (t *Table[T]) Update(ctx context.Context, tx *gorm.DB, entity *T) (bool, error) {
	op := t.spec.Op + ".update"
	if entity == nil {
		return false, domainagg.NewError(domainagg.CodeValidation, op, t.spec.Entity+" is required", nil)
	}
	var changed bool
	err := aggregates.ExecuteWrite(ctx, t.deps, tx, op, func(dbc dbctx.Context) error {
		if err := store.Validate(entity); err != nil {
			return err
		}
		db := dbc.DB(t.db)
		found, err := t.Exists(db, entity)
		if err != nil {
			return err
		}
		if !found {
			return domainagg.NotFound(op, t.Describe(entity))
		}
		if t.spec.Touch != nil {
			t.spec.Touch(entity, time.Now().UTC())
		}
		res := db.Omit(clause.Associations).Save(entity)
		if res.Error != nil {
			return fmt.Errorf("update %s: %w", strings.ToLower(t.spec.Entity), res.Error)
		}
		changed = res.RowsAffected > 0
		if t.spec.Children != nil {
			childChanged, err := t.spec.Children(dbc.Ctx, db, entity)
			if err != nil {
				return err
			}
			changed = changed || childChanged
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return changed, nil
}

func (t *Table[T]) Delete(ctx context.Context, tx *gorm.DB, entity *T) (bool, error) {
	op := t.spec.Op + ".delete"
	if entity == nil {
		return false, domainagg.NewError(domainagg.CodeValidation, op, t.spec.Entity+" is required", nil)
	}
	var deleted bool
	err := aggregates.ExecuteWrite(ctx, t.deps, tx, op, func(dbc dbctx.Context) error {
		db := dbc.DB(t.db)
		found, err := t.Exists(db, entity)
		if err != nil {
			return err
		}
		if !found {
			return domainagg.NotFound(op, t.Describe(entity))
		}
		res := t.identity(db, t.spec.Key(entity)).Delete(new(T))
		if res.Error != nil {
			return fmt.Errorf("delete %s: %w", strings.ToLower(t.spec.Entity), res.Error)
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func (t *Table[T]) Clear(ctx context.Context, tx *gorm.DB) (int64, error) {
	var removed int64
	err := aggregates.ExecuteWrite(ctx, t.deps, tx, t.spec.Op+".clear", func(dbc dbctx.Context) error {
		res := dbc.DB(t.db).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(new(T))
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// Exists reports whether a row with the entity's identity is persisted.
// Entities without a complete identity are never persisted.
func (t *Table[T]) Exists(db *gorm.DB, entity *T) (bool, error) {
	key := t.spec.Key(entity)
	for _, v := range key {
		if v == 0 {
			return false, nil
		}
	}
	var n int64
	if err := t.identity(db.Model(new(T)), key).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// Find loads the row with the given identity, or nil when absent.
func (t *Table[T]) Find(db *gorm.DB, key ...uint) (*T, error) {
	var result T
	err := t.identity(db.Scopes(t.preload), key).Take(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (t *Table[T]) Describe(entity *T) string {
	key := t.spec.Key(entity)
	if len(key) == 1 {
		return fmt.Sprintf("%s %d", t.spec.Entity, key[0])
	}
	parts := make([]string, len(key))
	for i, v := range key {
		parts[i] = fmt.Sprint(v)
	}
	return fmt.Sprintf("%s (%s)", t.spec.Entity, strings.Join(parts, ", "))
}

// Contract describes how writes to this table behave.
func (t *Table[T]) Contract() domainagg.Contract {
	children := domainagg.ChildPolicyNone
	if t.spec.Children != nil {
		children = domainagg.ChildPolicyReconcile
	}
	return domainagg.Contract{
		Name:             t.spec.Entity,
		Table:            tableName[T](),
		WriteTxOwnership: domainagg.WriteTxJoinsCaller,
		Children:         children,
	}
}

func tableName[T any]() string {
	if n, ok := any(new(T)).(interface{ TableName() string }); ok {
		return n.TableName()
	}
	return ""
}

// Deps exposes the write boundary so specialised repositories share it.
func (t *Table[T]) Deps() aggregates.BaseDeps { return t.deps }
func (t *Table[T]) DB() *gorm.DB { return t.db }

func (t *Table[T]) identity(db *gorm.DB, key []uint) *gorm.DB {
	for i, col := range t.spec.PK {
		if i >= len(key) {
			break
		}
		db = db.Where(col+" = ?", key[i])
	}
	return db
}

func (t *Table[T]) preload(db *gorm.DB) *gorm.DB {
	if t.spec.Preload == nil {
		return db
	}
	return t.spec.Preload(db)
}
