package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/yungbote/mystore-backend/cmd/mystore/output"
	"github.com/yungbote/mystore-backend/internal/app"
	"github.com/yungbote/mystore-backend/internal/services"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill an empty main catalog with sample products",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, a *app.App, s *services.Session) error {
			added, err := a.Services.Storefront.SeedCatalog(ctx, s.Catalog.CatalogID)
			if err != nil {
				return err
			}
			if added == 0 {
				output.Info("Catalog %q already has products", s.Catalog.Title)
				return nil
			}
			output.Success("Added %d products to %q", added, s.Catalog.Title)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
