// Package reconcile turns a persisted child collection and the desired one
// into an insert/update/delete plan, and applies that plan inside a caller's
// transaction. Items are matched by identity key only; deletions are bounded
// to the parent scope so siblings of other parents are never touched.
package reconcile

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Item is a child collection member.
type Item interface {
	ParentKey() uint
}

type Plan[T Item] struct {
	Scope   uint
	Scoped  bool
	Inserts []T
	Updates []T
	Deletes []T
}

func (p Plan[T]) Empty() bool {
	return len(p.Inserts) == 0 && len(p.Updates) == 0 && len(p.Deletes) == 0
}

func (p Plan[T]) Counts() (inserts, updates, deletes int) {
	return len(p.Inserts), len(p.Updates), len(p.Deletes)
}

type options struct {
	scope    uint
	hasScope bool
}

type Option func(*options)

// WithScope pins the parent scope instead of deriving it from the collections.
func WithScope(parentID uint) Option {
	return func(o *options) {
		o.scope = parentID
		o.hasScope = true
	}
}

// Diff compares persisted against desired by key. The parent scope is the
// first desired item's parent, else the first persisted item's parent, unless
// WithScope is given.
func Diff[T Item, K comparable](persisted, desired []T, key func(T) K, opts ...Option) Plan[T] {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	plan := Plan[T]{Scope: o.scope, Scoped: o.hasScope}
	if !plan.Scoped {
		switch {
		case len(desired) > 0:
			plan.Scope, plan.Scoped = desired[0].ParentKey(), true
		case len(persisted) > 0:
			plan.Scope, plan.Scoped = persisted[0].ParentKey(), true
		default:
			return plan
		}
	}

	existing := make(map[K]struct{}, len(persisted))
	for _, s := range persisted {
		existing[key(s)] = struct{}{}
	}

	wanted := make(map[K]struct{}, len(desired))
	for _, d := range desired {
		k := key(d)
		wanted[k] = struct{}{}
		if _, ok := existing[k]; ok {
			plan.Updates = append(plan.Updates, d)
		} else {
			plan.Inserts = append(plan.Inserts, d)
		}
	}

	for _, s := range persisted {
		if s.ParentKey() != plan.Scope {
			continue
		}
		if _, keep := wanted[key(s)]; keep {
			continue
		}
		plan.Deletes = append(plan.Deletes, s)
	}
	return plan
}

type Result struct {
	Inserted int64
	Updated  int64
	Deleted  int64
}

func (r Result) Changed() bool {
	return r.Inserted+r.Updated+r.Deleted > 0
}

// Apply executes the plan on tx. Associations are never written implicitly.
func Apply[T Item](ctx context.Context, tx *gorm.DB, plan Plan[T]) (Result, error) {
	var res Result
	if plan.Empty() {
		return res, nil
	}
	if tx == nil {
		return res, fmt.Errorf("reconcile: transaction is required")
	}
	for _, it := range plan.Inserts {
		r := tx.WithContext(ctx).Omit(clause.Associations).Create(it)
		if r.Error != nil {
			return res, fmt.Errorf("insert %T: %w", it, r.Error)
		}
		res.Inserted += r.RowsAffected
	}
	for _, it := range plan.Updates {
		r := tx.WithContext(ctx).Omit(clause.Associations).Save(it)
		if r.Error != nil {
			return res, fmt.Errorf("update %T: %w", it, r.Error)
		}
		res.Updated += r.RowsAffected
	}
	for _, it := range plan.Deletes {
		r := tx.WithContext(ctx).Delete(it)
		if r.Error != nil {
			return res, fmt.Errorf("delete %T: %w", it, r.Error)
		}
		res.Deleted += r.RowsAffected
	}
	return res, nil
}
