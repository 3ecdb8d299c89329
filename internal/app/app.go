package app

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/mystore-backend/internal/data/db"
	"github.com/yungbote/mystore-backend/internal/observability"
	"github.com/yungbote/mystore-backend/internal/pkg/logger"
	"github.com/yungbote/mystore-backend/internal/services"
	"github.com/yungbote/mystore-backend/internal/tile"
)

type Options struct {
	ConfigPath string
	// DBPath overrides the configured SQLite path when set.
	DBPath  string
	Verbose bool
}

type App struct {
	Log      *logger.Logger
	Cfg      Config
	Store    *db.Service
	DB       *gorm.DB
	Repos    services.StoreRepos
	Services Services

	otelShutdown func(context.Context) error
}

func New(ctx context.Context, opts Options) (*App, error) {
	bootLog, err := logger.New(logger.ModeBoot)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	cfg, err := LoadConfig(bootLog, opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.DBPath != "" {
		cfg.DB.Path = opts.DBPath
	}
	if opts.Verbose {
		cfg.LogLevel = "debug"
	}

	log, err := logger.NewWithLevel(cfg.LogMode, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	shutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: cfg.Otel.ServiceName,
		Exporter:    cfg.Otel.Exporter,
		Endpoint:    cfg.Otel.Endpoint,
		SampleRatio: cfg.Otel.SampleRatio,
	})

	store, err := db.Open(log, db.Options{
		Driver:        cfg.DB.Driver,
		Path:          cfg.DB.Path,
		DSN:           cfg.DB.DSN,
		SlowThreshold: cfg.DB.SlowThreshold,
	})
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := db.AutoMigrateAll(store.DB()); err != nil {
		_ = store.Close()
		log.Sync()
		return nil, fmt.Errorf("store automigrate: %w", err)
	}
	theDB := store.DB()

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, reposet)

	return &App{
		Log:          log,
		Cfg:          cfg,
		Store:        store,
		DB:           theDB,
		Repos:        reposet,
		Services:     serviceset,
		otelShutdown: shutdown,
	}, nil
}

// Session bootstraps the main catalog and the local user's customer and cart.
func (a *App) Session(ctx context.Context) (*services.Session, error) {
	identity, err := LocalIdentity()
	if err != nil {
		return nil, err
	}
	return a.Services.Storefront.Bootstrap(ctx, identity)
}

// TileUpdater wires the renderer and the configured publishers for cartID.
// The returned func releases publisher connections.
func (a *App) TileUpdater(cartID uint) (*tile.Updater, func(), error) {
	renderer, err := tile.NewRenderer(a.Cfg.Tile.Font, a.Cfg.Tile.FontSize)
	if err != nil {
		return nil, nil, err
	}
	files, err := tile.NewFilePublisher(a.Cfg.Tile.OutputDir)
	if err != nil {
		return nil, nil, err
	}
	pubs := tile.MultiPublisher{files}
	closeFn := func() {}
	if a.Cfg.Redis.Addr != "" {
		rp, err := tile.NewRedisPublisher(a.Log, tile.RedisOptions{
			Addr:     a.Cfg.Redis.Addr,
			BadgeKey: a.Cfg.Redis.BadgeKey,
			Channel:  a.Cfg.Redis.Channel,
		})
		if err != nil {
			return nil, nil, err
		}
		pubs = append(pubs, rp)
		closeFn = func() { _ = rp.Close() }
	}
	u := tile.NewUpdater(a.Log, a.Services.Storefront, cartID, renderer, pubs, a.Cfg.Tile.Interval)
	return u, closeFn, nil
}

func (a *App) Close(ctx context.Context) {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		if err := a.otelShutdown(ctx); err != nil && a.Log != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
	}
	if a.Store != nil {
		if err := a.Store.Close(); err != nil && a.Log != nil {
			a.Log.Warn("store close failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
