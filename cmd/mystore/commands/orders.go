package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yungbote/mystore-backend/cmd/mystore/output"
	"github.com/yungbote/mystore-backend/internal/app"
	"github.com/yungbote/mystore-backend/internal/services"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Browse your order history",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, a *app.App, s *services.Session) error {
			orders, err := a.Services.Storefront.Orders(ctx, s.Customer.CustomerID)
			if err != nil {
				return err
			}
			output.Section("Orders")
			if len(orders) == 0 {
				output.Muted("No orders yet.")
				return nil
			}
			w := output.Table()
			output.Row(w, "", "ID", "CREATED", "LINES", "TOTAL")
			for _, o := range orders {
				full, discounted := services.OrderTotals(o)
				output.Row(w,
					output.StatusIcon(string(o.State)),
					fmt.Sprint(o.OrderID),
					o.DateCreated.Local().Format("2006-01-02 15:04"),
					fmt.Sprint(len(o.Items)),
					output.Price(full, discounted),
				)
			}
			return w.Flush()
		})
	},
}

var ordersShowCmd = &cobra.Command{
	Use:   "show <order-id>",
	Short: "Show one order with its lines",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "order id")
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			o, err := a.Services.Storefront.Order(ctx, id)
			if err != nil {
				return err
			}
			output.Section(fmt.Sprintf("Order %d (%s)", o.OrderID, o.State))
			w := output.Table()
			output.Row(w, "ID", "TITLE", "QTY", "PRICE")
			for _, it := range o.Items {
				title := ""
				if it.Product != nil {
					title = it.Product.Title
				}
				output.Row(w,
					fmt.Sprint(it.ProductID),
					title,
					fmt.Sprint(it.Quantity),
					output.Price(services.FullPrice(it.Quantity, it.ListPrice),
						services.DiscountedPrice(it.Quantity, it.ListPrice, it.DiscountPercentage)),
				)
			}
			full, discounted := services.OrderTotals(o)
			output.Row(w, "", "Total", "", output.Price(full, discounted))
			return w.Flush()
		})
	},
}

func init() {
	rootCmd.AddCommand(ordersCmd)
	ordersCmd.AddCommand(ordersListCmd, ordersShowCmd)
}
