package crud

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/mystore-backend/internal/data/reconcile"
	"github.com/yungbote/mystore-backend/internal/domain/store"
)

// SyncChildren reconciles desired against the rows persisted under parentID.
// A nil desired collection was never loaded and is skipped.
func SyncChildren[C reconcile.Item, K comparable](
	ctx context.Context,
	tx *gorm.DB,
	parentColumn string,
	parentID uint,
	desired []C,
	key func(C) K,
) (bool, error) {
	if desired == nil {
		return false, nil
	}
	if err := store.ValidateAll(desired); err != nil {
		return false, err
	}
	var persisted []C
	if err := tx.WithContext(ctx).Where(parentColumn+" = ?", parentID).Find(&persisted).Error; err != nil {
		return false, err
	}
	plan := reconcile.Diff(persisted, desired, key, reconcile.WithScope(parentID))
	res, err := reconcile.Apply(ctx, tx, plan)
	if err != nil {
		return false, err
	}
	return res.Changed(), nil
}
