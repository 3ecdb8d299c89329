package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yungbote/mystore-backend/cmd/mystore/output"
	"github.com/yungbote/mystore-backend/internal/app"
	"github.com/yungbote/mystore-backend/internal/domain/store"
	"github.com/yungbote/mystore-backend/internal/services"
)

var addQuantity int

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show and change your shopping cart",
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cart with prices",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, a *app.App, s *services.Session) error {
			sum, err := a.Services.Storefront.CartSummary(ctx, s.Cart.ShoppingCartID)
			if err != nil {
				return err
			}
			printSummary(sum)
			return nil
		})
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		productID, err := parseID(args[0], "product id")
		if err != nil {
			return err
		}
		return cartMutation(cmd, func(ctx context.Context, sf services.Storefront, cartID uint) (*store.ShoppingCart, error) {
			return sf.AddToCart(ctx, cartID, productID, addQuantity)
		})
	},
}

var cartSetCmd = &cobra.Command{
	Use:   "set <product-id> <quantity>",
	Short: "Set the quantity of a cart line",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		productID, err := parseID(args[0], "product id")
		if err != nil {
			return err
		}
		qty, err := parseQuantity(args[1])
		if err != nil {
			return err
		}
		return cartMutation(cmd, func(ctx context.Context, sf services.Storefront, cartID uint) (*store.ShoppingCart, error) {
			return sf.SetQuantity(ctx, cartID, productID, qty)
		})
	},
}

var cartIncCmd = &cobra.Command{
	Use:   "inc <product-id>",
	Short: "Increase a cart line by one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		productID, err := parseID(args[0], "product id")
		if err != nil {
			return err
		}
		return cartMutation(cmd, func(ctx context.Context, sf services.Storefront, cartID uint) (*store.ShoppingCart, error) {
			return sf.Increment(ctx, cartID, productID)
		})
	},
}

var cartDecCmd = &cobra.Command{
	Use:   "dec <product-id>",
	Short: "Decrease a cart line by one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		productID, err := parseID(args[0], "product id")
		if err != nil {
			return err
		}
		return cartMutation(cmd, func(ctx context.Context, sf services.Storefront, cartID uint) (*store.ShoppingCart, error) {
			return sf.Decrement(ctx, cartID, productID)
		})
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <product-id>",
	Short: "Remove a line from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		productID, err := parseID(args[0], "product id")
		if err != nil {
			return err
		}
		return cartMutation(cmd, func(ctx context.Context, sf services.Storefront, cartID uint) (*store.ShoppingCart, error) {
			return sf.RemoveFromCart(ctx, cartID, productID)
		})
	},
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cartMutation(cmd, func(ctx context.Context, sf services.Storefront, cartID uint) (*store.ShoppingCart, error) {
			return sf.ClearCart(ctx, cartID)
		})
	},
}

var cartCheckoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Turn the cart into a closed order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, a *app.App, s *services.Session) error {
			order, err := a.Services.Storefront.Checkout(ctx, s.Cart.ShoppingCartID)
			if err != nil {
				return err
			}
			_, discounted := services.OrderTotals(order)
			output.Success("Order %d placed, %d lines, total %s", order.OrderID, len(order.Items), output.Money(discounted))
			return nil
		})
	},
}

func cartMutation(cmd *cobra.Command, fn func(ctx context.Context, sf services.Storefront, cartID uint) (*store.ShoppingCart, error)) error {
	return withSession(cmd, func(ctx context.Context, a *app.App, s *services.Session) error {
		cart, err := fn(ctx, a.Services.Storefront, s.Cart.ShoppingCartID)
		if err != nil {
			return err
		}
		printSummary(services.Summarize(cart))
		return nil
	})
}

func printSummary(sum *services.Summary) {
	output.Section("Shopping cart")
	if sum.IsEmpty {
		output.Muted("Your cart is empty.")
		return
	}
	w := output.Table()
	output.Row(w, "ID", "TITLE", "QTY", "PRICE")
	for _, l := range sum.Lines {
		output.Row(w, fmt.Sprint(l.ProductID), l.Title, fmt.Sprint(l.Quantity), output.Price(l.FullPrice, l.DiscountedPrice))
	}
	output.Row(w, "", "Total", fmt.Sprint(sum.ItemsQuantity), output.Price(sum.FullPrice, sum.DiscountedPrice))
	_ = w.Flush()
}

func init() {
	rootCmd.AddCommand(cartCmd)
	cartCmd.AddCommand(cartShowCmd, cartAddCmd, cartSetCmd, cartIncCmd, cartDecCmd, cartRemoveCmd, cartClearCmd, cartCheckoutCmd)

	cartAddCmd.Flags().IntVarP(&addQuantity, "qty", "q", 1, "Quantity to add")
}
