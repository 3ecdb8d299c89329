package db

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/mystore-backend/internal/pkg/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Options struct {
	Driver        string
	Path          string
	DSN           string
	SlowThreshold time.Duration
}

// Service owns the store's database handle.
type Service struct {
	db     *gorm.DB
	log    *logger.Logger
	driver string
}

// Open connects to the configured store database. SQLite is the default.
func Open(logg *logger.Logger, opts Options) (*Service, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Driver)) {
	case "", DriverSQLite, "sqlite3":
		return NewSQLiteService(logg, opts)
	case DriverPostgres, "pg":
		return NewPostgresService(logg, opts)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", opts.Driver)
	}
}

func (s *Service) DB() *gorm.DB { return s.db }
func (s *Service) Driver() string { return s.driver }

func (s *Service) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func gormConfig(logg *logger.Logger, opts Options) *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         NewGormLogger(logg, opts.SlowThreshold),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}
}
