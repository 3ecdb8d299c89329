package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/mystore-backend/cmd/mystore/output"
	"github.com/yungbote/mystore-backend/internal/app"
	"github.com/yungbote/mystore-backend/internal/services"
)

var watchFor time.Duration

var tileCmd = &cobra.Command{
	Use:   "tile",
	Short: "Render the live tile and cart badge",
	Long: `Render the live tile (square and wide PNG) and the cart badge count.

Output goes to TILE_OUTPUT_DIR and, when REDIS_ADDR is set, to Redis.`,
}

var tileOnceCmd = &cobra.Command{
	Use:   "once",
	Short: "Refresh the tile once",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, a *app.App, s *services.Session) error {
			u, closeFn, err := a.TileUpdater(s.Cart.ShoppingCartID)
			if err != nil {
				return err
			}
			defer closeFn()
			snap, err := u.RunOnce(ctx)
			if err != nil {
				return err
			}
			output.Success("Badge %d, %q", snap.ItemsQuantity, snap.Message)
			output.Muted("Written to %s", a.Cfg.Tile.OutputDir)
			return nil
		})
	},
}

var tileWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep refreshing the tile until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		cmd.SetContext(ctx)

		return withSession(cmd, func(ctx context.Context, a *app.App, s *services.Session) error {
			u, closeFn, err := a.TileUpdater(s.Cart.ShoppingCartID)
			if err != nil {
				return err
			}
			defer closeFn()

			output.Info("Refreshing every %s, press Ctrl+C to stop", a.Cfg.Tile.Interval)
			g, gctx := errgroup.WithContext(ctx)
			gctx, cancel := context.WithCancel(gctx)
			defer cancel()
			g.Go(func() error { return u.Run(gctx) })
			if watchFor > 0 {
				g.Go(func() error {
					select {
					case <-time.After(watchFor):
						cancel()
					case <-gctx.Done():
					}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			output.Muted("Tile watcher stopped")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(tileCmd)
	tileCmd.AddCommand(tileOnceCmd, tileWatchCmd)

	tileWatchCmd.Flags().DurationVar(&watchFor, "for", 0, "Stop after this long (0 runs until interrupted)")
}
