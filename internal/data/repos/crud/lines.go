package crud

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/mystore-backend/internal/data/aggregates"
	domainagg "github.com/yungbote/mystore-backend/internal/domain/aggregates"
	"github.com/yungbote/mystore-backend/internal/domain/store"
	"github.com/yungbote/mystore-backend/internal/pkg/dbctx"
)

// Lines is a repository for (parent, product) line items. Adding a line
// that already exists merges it into the persisted row.
type Lines[T any] struct {
	*Table[T]
	merge func(existing, incoming *T)
}

func NewLines[T any](table *Table[T], merge func(existing, incoming *T)) *Lines[T] {
	return &Lines[T]{Table: table, merge: merge}
}

func (l *Lines[T]) Contract() domainagg.Contract {
	c := l.Table.Contract()
	c.Children = domainagg.ChildPolicyUpsertQuantity
	c.Notes = "adding an existing line adds its quantity"
	return c
}

func (l *Lines[T]) GetByKey(ctx context.Context, tx *gorm.DB, parentID, productID uint) (*T, error) {
	op := l.spec.Op + ".get_by_key"
	found, err := l.Find(l.conn(ctx, tx), parentID, productID)
	if err != nil {
		return nil, aggregates.MapError(op, err)
	}
	if found == nil {
		return nil, domainagg.NotFound(op, fmt.Sprintf("%s (%d, %d)", l.spec.Entity, parentID, productID))
	}
	return found, nil
}

func (l *Lines[T]) Add(ctx context.Context, tx *gorm.DB, entity *T) (*T, error) {
	op := l.spec.Op + ".add"
	if entity == nil {
		return nil, domainagg.NewError(domainagg.CodeValidation, op, l.spec.Entity+" is required", nil)
	}
	var result *T
	err := aggregates.ExecuteWrite(ctx, l.deps, tx, op, func(dbc dbctx.Context) error {
		if err := store.Validate(entity); err != nil {
			return err
		}
		db := dbc.DB(l.db)
		existing, err := l.Find(db, l.spec.Key(entity)...)
		if err != nil {
			return err
		}
		if existing == nil {
			if err := db.Omit(clause.Associations).Create(entity).Error; err != nil {
				return fmt.Errorf("insert %s: %w", strings.ToLower(l.spec.Entity), err)
			}
			result = entity
			return nil
		}
		l.merge(existing, entity)
		if err := store.Validate(existing); err != nil {
			return err
		}
		if err := db.Omit(clause.Associations).Save(existing).Error; err != nil {
			return fmt.Errorf("merge %s: %w", strings.ToLower(l.spec.Entity), err)
		}
		result = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
