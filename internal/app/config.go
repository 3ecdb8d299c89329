package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/mystore-backend/internal/pkg/envutil"
	"github.com/yungbote/mystore-backend/internal/pkg/logger"
	"github.com/yungbote/mystore-backend/internal/tile"
)

type Config struct {
	LogMode  string      `yaml:"log_mode"`
	LogLevel string      `yaml:"log_level"`
	DB       DBConfig    `yaml:"db"`
	Tile     TileConfig  `yaml:"tile"`
	Redis    RedisConfig `yaml:"redis"`
	Otel     OtelConfig  `yaml:"otel"`
}

type DBConfig struct {
	Driver        string        `yaml:"driver"`
	Path          string        `yaml:"path"`
	DSN           string        `yaml:"dsn"`
	SlowThreshold time.Duration `yaml:"slow_threshold"`
}

type TileConfig struct {
	Interval  time.Duration `yaml:"interval"`
	OutputDir string        `yaml:"output_dir"`
	Font      string        `yaml:"font"`
	FontSize  float64       `yaml:"font_size"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	BadgeKey string `yaml:"badge_key"`
	Channel  string `yaml:"channel"`
}

type OtelConfig struct {
	Exporter    string  `yaml:"exporter"`
	ServiceName string  `yaml:"service_name"`
	Endpoint    string  `yaml:"endpoint"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

func DefaultConfig() Config {
	return Config{
		LogMode:  "development",
		LogLevel: "warn",
		DB: DBConfig{
			Driver:        "sqlite",
			Path:          "mystore.db",
			SlowThreshold: 200 * time.Millisecond,
		},
		Tile: TileConfig{
			Interval:  tile.DefaultInterval,
			OutputDir: "tile",
			FontSize:  14,
		},
		Redis: RedisConfig{
			BadgeKey: "mystore:badge",
			Channel:  "mystore:tile",
		},
		Otel: OtelConfig{
			Exporter:    "none",
			ServiceName: "mystore",
			SampleRatio: 1,
		},
	}
}

// LoadConfig layers an optional YAML file and then the environment over the
// defaults. A missing path is not an error; an unreadable or invalid file is.
func LoadConfig(log *logger.Logger, path string) (Config, error) {
	cfg := DefaultConfig()
	if path = strings.TrimSpace(path); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.LogMode = envutil.GetEnv("LOG_MODE", cfg.LogMode, log)
	cfg.LogLevel = envutil.GetEnv("LOG_LEVEL", cfg.LogLevel, log)

	cfg.DB.Driver = envutil.GetEnv("STORE_DB_DRIVER", cfg.DB.Driver, log)
	cfg.DB.Path = envutil.GetEnv("STORE_DB_PATH", cfg.DB.Path, log)
	cfg.DB.DSN = envutil.GetEnv("STORE_DB_DSN", cfg.DB.DSN, log)
	cfg.DB.SlowThreshold = envutil.GetEnvAsDuration("STORE_DB_SLOW_THRESHOLD", cfg.DB.SlowThreshold, log)

	cfg.Tile.Interval = envutil.GetEnvAsDuration("TILE_INTERVAL", cfg.Tile.Interval, log)
	cfg.Tile.OutputDir = envutil.GetEnv("TILE_OUTPUT_DIR", cfg.Tile.OutputDir, log)
	cfg.Tile.Font = envutil.GetEnv("TILE_FONT", cfg.Tile.Font, log)

	cfg.Redis.Addr = envutil.GetEnv("REDIS_ADDR", cfg.Redis.Addr, log)
	cfg.Redis.BadgeKey = envutil.GetEnv("REDIS_BADGE_KEY", cfg.Redis.BadgeKey, log)
	cfg.Redis.Channel = envutil.GetEnv("REDIS_CHANNEL", cfg.Redis.Channel, log)

	cfg.Otel.Exporter = envutil.GetEnv("OTEL_TRACES_EXPORTER", cfg.Otel.Exporter, log)
	cfg.Otel.ServiceName = envutil.GetEnv("OTEL_SERVICE_NAME", cfg.Otel.ServiceName, log)
	cfg.Otel.Endpoint = envutil.GetEnv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Otel.Endpoint, log)

	if cfg.Tile.Interval <= 0 {
		cfg.Tile.Interval = tile.DefaultInterval
	}
	return cfg, nil
}
