package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yungbote/mystore-backend/cmd/mystore/output"
	"github.com/yungbote/mystore-backend/internal/app"
	domainagg "github.com/yungbote/mystore-backend/internal/domain/aggregates"
	"github.com/yungbote/mystore-backend/internal/services"
)

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "mystore",
	Short: "MyStore - a local storefront backed by an embedded database",
	Long: `MyStore keeps a product catalog, your shopping cart and your order history
in a local database.

The first run creates the main catalog and a customer record for the current
OS user. Use "mystore seed" to fill the catalog with sample products.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		output.Error(domainagg.Describe(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database file (overrides STORE_DB_PATH)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
}

// withApp opens the store for the duration of fn.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := app.New(ctx, app.Options{ConfigPath: configPath, DBPath: dbPath, Verbose: verbose})
	if err != nil {
		return err
	}
	defer a.Close(context.Background())
	return fn(ctx, a)
}

// withSession opens the store and bootstraps the local customer.
func withSession(cmd *cobra.Command, fn func(ctx context.Context, a *app.App, s *services.Session) error) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		session, err := a.Session(ctx)
		if err != nil {
			return err
		}
		return fn(ctx, a, session)
	})
}

func parseID(raw, what string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s %q", what, raw)
	}
	return uint(id), nil
}

func parseQuantity(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q", raw)
	}
	return n, nil
}
