package tile

import (
	"context"
	"fmt"
	"time"

	"github.com/yungbote/mystore-backend/internal/domain/store"
	"github.com/yungbote/mystore-backend/internal/pkg/logger"
)

const DefaultInterval = 7 * time.Second

// CartReader loads a cart with its items.
type CartReader interface {
	Cart(ctx context.Context, cartID uint) (*store.ShoppingCart, error)
}

// Updater periodically re-renders the tile from the current cart. It only
// reads, so a refresh may lag behind concurrent cart writes.
type Updater struct {
	log      *logger.Logger
	carts    CartReader
	cartID   uint
	renderer *Renderer
	pub      Publisher
	interval time.Duration
	now      func() time.Time
}

func NewUpdater(baseLog *logger.Logger, carts CartReader, cartID uint, renderer *Renderer, pub Publisher, interval time.Duration) *Updater {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Updater{
		log:      baseLog.With("component", "TileUpdater", "cart_id", cartID),
		carts:    carts,
		cartID:   cartID,
		renderer: renderer,
		pub:      pub,
		interval: interval,
		now:      time.Now,
	}
}

func (u *Updater) RunOnce(ctx context.Context) (Snapshot, error) {
	cart, err := u.carts.Cart(ctx, u.cartID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load cart: %w", err)
	}
	snap := TakeSnapshot(cart, u.now())

	var imgs *Images
	if u.renderer != nil {
		if imgs, err = u.renderer.Render(snap); err != nil {
			return snap, err
		}
	}
	if u.pub != nil {
		if err := u.pub.Publish(ctx, snap, imgs); err != nil {
			return snap, fmt.Errorf("publish tile: %w", err)
		}
	}
	return snap, nil
}

// Run refreshes immediately and then on every tick until ctx is done.
// Failed refreshes are logged and retried on the next tick.
func (u *Updater) Run(ctx context.Context) error {
	u.log.Info("Starting tile updater", "interval", u.interval.String())
	u.refresh(ctx)

	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			u.log.Info("Tile updater stopped")
			return nil
		case <-ticker.C:
			u.refresh(ctx)
		}
	}
}

func (u *Updater) refresh(ctx context.Context) {
	snap, err := u.RunOnce(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		u.log.Warn("Tile refresh failed", "error", err)
		return
	}
	u.log.Debug("Tile refreshed", "count", snap.ItemsQuantity)
}
