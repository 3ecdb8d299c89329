package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yungbote/mystore-backend/internal/pkg/envutil"
	"github.com/yungbote/mystore-backend/internal/pkg/logger"
)

func NewPostgresService(logg *logger.Logger, opts Options) (*Service, error) {
	serviceLog := logg.With("service", "PostgresService")

	dsn := strings.TrimSpace(opts.DSN)
	if dsn == "" {
		postgresHost := envutil.GetEnv("POSTGRES_HOST", "localhost", logg)
		postgresPort := envutil.GetEnv("POSTGRES_PORT", "5432", logg)
		postgresUser := envutil.GetEnv("POSTGRES_USER", "postgres", logg)
		postgresPassword := envutil.GetEnv("POSTGRES_PASSWORD", "", logg)
		postgresName := envutil.GetEnv("POSTGRES_NAME", "mystore", logg)

		dsn = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=disable",
			postgresUser,
			postgresPassword,
			postgresHost,
			postgresPort,
			postgresName,
		)
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig(logg, opts))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	return &Service{db: db, log: serviceLog, driver: DriverPostgres}, nil
}
