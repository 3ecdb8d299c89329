package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yungbote/mystore-backend/cmd/mystore/output"
	"github.com/yungbote/mystore-backend/internal/app"
	"github.com/yungbote/mystore-backend/internal/services"
)

var (
	// edit flags
	customerFirstName string
	customerLastName  string
	customerEmail     string
	customerBirthDate string
)

var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Inspect and edit the local customer",
}

var customerShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the customer bound to this OS user",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(ctx context.Context, a *app.App, s *services.Session) error {
			c := s.Customer
			output.Section(c.String())
			w := output.Table()
			output.Row(w, "Customer ID", fmt.Sprint(c.CustomerID))
			output.Row(w, "Device ID", c.NonRoamableID)
			output.Row(w, "Enlisted", c.DateEnlisted.Local().Format("2006-01-02"))
			if c.BirthDate != nil {
				output.Row(w, "Born", time.Time(*c.BirthDate).Format(services.BirthDateLayout))
			}
			if c.Email != "" {
				output.Row(w, "Email", c.Email)
			}
			output.Row(w, "Cart items", fmt.Sprint(s.Cart.ItemsQuantity()))
			return w.Flush()
		})
	},
}

var customerEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the local customer's profile",
	Long: `Edit the local customer's profile. Only the flags given are changed.

Examples:
  mystore customer edit --first-name Jane --last-name Smith
  mystore customer edit --email jane@example.com --birth-date 1990-04-12`,
	RunE: func(cmd *cobra.Command, args []string) error {
		patch, err := customerPatchFromFlags(cmd)
		if err != nil {
			return err
		}
		return withSession(cmd, func(ctx context.Context, a *app.App, s *services.Session) error {
			c, err := a.Services.Storefront.UpdateCustomer(ctx, s.Customer.CustomerID, patch)
			if err != nil {
				return err
			}
			output.Success("Updated %s", c.String())
			return nil
		})
	},
}

func customerPatchFromFlags(cmd *cobra.Command) (services.CustomerPatch, error) {
	var patch services.CustomerPatch
	flags := cmd.Flags()
	if flags.Changed("first-name") {
		patch.FirstName = &customerFirstName
	}
	if flags.Changed("last-name") {
		patch.LastName = &customerLastName
	}
	if flags.Changed("email") {
		patch.Email = &customerEmail
	}
	if flags.Changed("birth-date") {
		d, err := services.ParseBirthDate(customerBirthDate)
		if err != nil {
			return patch, fmt.Errorf("invalid --birth-date: %w", err)
		}
		patch.BirthDate = &d
	}
	return patch, nil
}

func init() {
	rootCmd.AddCommand(customerCmd)
	customerCmd.AddCommand(customerShowCmd, customerEditCmd)

	customerEditCmd.Flags().StringVar(&customerFirstName, "first-name", "", "First name")
	customerEditCmd.Flags().StringVar(&customerLastName, "last-name", "", "Last name")
	customerEditCmd.Flags().StringVar(&customerEmail, "email", "", "Email address (empty clears it)")
	customerEditCmd.Flags().StringVar(&customerBirthDate, "birth-date", "", "Birth date (YYYY-MM-DD)")
}
