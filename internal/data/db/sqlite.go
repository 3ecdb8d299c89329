package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yungbote/mystore-backend/internal/pkg/logger"
)

// SQLiteDSN turns a database path into a DSN with foreign keys enforced.
// ":memory:" selects a shared in-memory database.
func SQLiteDSN(path string) string {
	path = strings.TrimSpace(path)
	switch {
	case path == "" || path == ":memory:":
		return "file::memory:?cache=shared&_foreign_keys=on"
	case strings.HasPrefix(path, "file:"):
		if strings.Contains(path, "_foreign_keys") {
			return path
		}
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		return path + sep + "_foreign_keys=on"
	default:
		return "file:" + path + "?_foreign_keys=on&_busy_timeout=5000"
	}
}

func NewSQLiteService(logg *logger.Logger, opts Options) (*Service, error) {
	serviceLog := logg.With("service", "SQLiteService")

	dsn := SQLiteDSN(opts.Path)
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig(logg, opts))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sqlite handle: %w", err)
	}
	// One connection: writes serialize and in-memory databases stay alive.
	sqlDB.SetMaxOpenConns(1)

	serviceLog.Debug("sqlite store opened", "path", opts.Path)
	return &Service{db: db, log: serviceLog, driver: DriverSQLite}, nil
}
