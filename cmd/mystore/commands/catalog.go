package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/yungbote/mystore-backend/cmd/mystore/output"
	"github.com/yungbote/mystore-backend/internal/app"
	"github.com/yungbote/mystore-backend/internal/domain/store"
	"github.com/yungbote/mystore-backend/internal/services"
)

var (
	// add-product flags
	productTitle       string
	productDescription string
	productPrice       string
	productDiscount    string

	// edit-product flags
	editTitle       string
	editDescription string
	editPrice       string
	editDiscount    string
	editPublished   string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse and edit the main catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products in the main catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, a *app.App, s *services.Session) error {
			catalog, err := a.Services.Storefront.Catalog(ctx, s.Catalog.CatalogID)
			if err != nil {
				return err
			}
			output.Section(catalog.Title)
			if len(catalog.Products) == 0 {
				output.Muted("No products. Run \"mystore seed\" to add some.")
				return nil
			}
			w := output.Table()
			output.Row(w, "ID", "TITLE", "PRICE", "DISCOUNT", "PUBLISHED")
			for _, p := range catalog.Products {
				output.Row(w,
					fmt.Sprint(p.ProductID),
					p.Title,
					output.Price(p.ListPrice, services.DiscountedPrice(1, p.ListPrice, p.DiscountPercentage)),
					p.DiscountPercentage.StringFixed(0)+"%",
					p.DatePublished.Format("2006-01-02"),
				)
			}
			return w.Flush()
		})
	},
}

var catalogAddProductCmd = &cobra.Command{
	Use:   "add-product",
	Short: "Add a product to the main catalog",
	Long: `Add a product to the main catalog.

Examples:
  mystore catalog add-product --title TV --description "LED TV" --price 999.99
  mystore catalog add-product --title Pan --description "Copper pan" --price 16.99 --discount 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		price, err := decimal.NewFromString(productPrice)
		if err != nil {
			return fmt.Errorf("invalid --price %q", productPrice)
		}
		discount, err := decimal.NewFromString(productDiscount)
		if err != nil {
			return fmt.Errorf("invalid --discount %q", productDiscount)
		}
		return withSession(cmd, func(ctx context.Context, a *app.App, s *services.Session) error {
			p := store.NewProduct(s.Catalog, productTitle, productDescription, price)
			p.DiscountPercentage = discount
			added, err := a.Services.Storefront.AddProduct(ctx, s.Catalog.CatalogID, p)
			if err != nil {
				return err
			}
			output.Success("Added product %d %q", added.ProductID, added.Title)
			return nil
		})
	},
}

var catalogEditProductCmd = &cobra.Command{
	Use:   "edit-product <product-id>",
	Short: "Edit a product in the main catalog",
	Long: `Edit a product in the main catalog. Only the flags given are changed.

Examples:
  mystore catalog edit-product 3 --price 899.99 --discount 15
  mystore catalog edit-product 3 --title "OLED TV" --published 2024-03-01`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "product id")
		if err != nil {
			return err
		}
		patch, err := productPatchFromFlags(cmd)
		if err != nil {
			return err
		}
		return withSession(cmd, func(ctx context.Context, a *app.App, s *services.Session) error {
			p, err := a.Services.Storefront.UpdateProduct(ctx, s.Catalog.CatalogID, id, patch)
			if err != nil {
				return err
			}
			output.Success("Updated product %d %q", p.ProductID, p.Title)
			return nil
		})
	},
}

func productPatchFromFlags(cmd *cobra.Command) (services.ProductPatch, error) {
	var patch services.ProductPatch
	flags := cmd.Flags()
	if flags.Changed("title") {
		patch.Title = &editTitle
	}
	if flags.Changed("description") {
		patch.Description = &editDescription
	}
	if flags.Changed("price") {
		price, err := decimal.NewFromString(editPrice)
		if err != nil {
			return patch, fmt.Errorf("invalid --price %q", editPrice)
		}
		patch.ListPrice = &price
	}
	if flags.Changed("discount") {
		discount, err := decimal.NewFromString(editDiscount)
		if err != nil {
			return patch, fmt.Errorf("invalid --discount %q", editDiscount)
		}
		patch.DiscountPercentage = &discount
	}
	if flags.Changed("published") {
		published, err := time.Parse("2006-01-02", editPublished)
		if err != nil {
			return patch, fmt.Errorf("invalid --published %q, want YYYY-MM-DD", editPublished)
		}
		patch.DatePublished = &published
	}
	return patch, nil
}

var catalogDeleteProductCmd = &cobra.Command{
	Use:   "delete-product <product-id>",
	Short: "Remove a product from the main catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "product id")
		if err != nil {
			return err
		}
		return withSession(cmd, func(ctx context.Context, a *app.App, s *services.Session) error {
			if err := a.Services.Storefront.DeleteProduct(ctx, s.Catalog.CatalogID, id); err != nil {
				return err
			}
			output.Success("Deleted product %d", id)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd, catalogAddProductCmd, catalogEditProductCmd, catalogDeleteProductCmd)

	catalogAddProductCmd.Flags().StringVar(&productTitle, "title", "", "Product title")
	catalogAddProductCmd.Flags().StringVar(&productDescription, "description", "", "Product description")
	catalogAddProductCmd.Flags().StringVar(&productPrice, "price", "0", "List price")
	catalogAddProductCmd.Flags().StringVar(&productDiscount, "discount", "0", "Discount percentage (0-100)")
	_ = catalogAddProductCmd.MarkFlagRequired("title")
	_ = catalogAddProductCmd.MarkFlagRequired("price")

	catalogEditProductCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	catalogEditProductCmd.Flags().StringVar(&editDescription, "description", "", "New description")
	catalogEditProductCmd.Flags().StringVar(&editPrice, "price", "", "New list price")
	catalogEditProductCmd.Flags().StringVar(&editDiscount, "discount", "", "New discount percentage (0-100)")
	catalogEditProductCmd.Flags().StringVar(&editPublished, "published", "", "Publication date (YYYY-MM-DD)")
}
