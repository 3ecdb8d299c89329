package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/mystore-backend/internal/pkg/logger"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(logger.Nop(), "")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, 7*time.Second, cfg.Tile.Interval)
	assert.Equal(t, "none", cfg.Otel.Exporter)
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mystore.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
db:
  path: /var/lib/mystore/store.db
tile:
  interval: 30m
  output_dir: /tmp/tiles
redis:
  addr: localhost:6379
`), 0o600))

	t.Setenv("TILE_OUTPUT_DIR", "/srv/tiles")
	t.Setenv("OTEL_TRACES_EXPORTER", "stdout")

	cfg, err := LoadConfig(logger.Nop(), path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/mystore/store.db", cfg.DB.Path)
	assert.Equal(t, 30*time.Minute, cfg.Tile.Interval)
	assert.Equal(t, "/srv/tiles", cfg.Tile.OutputDir)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "mystore:badge", cfg.Redis.BadgeKey)
	assert.Equal(t, "stdout", cfg.Otel.Exporter)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(logger.Nop(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigIntervalSeconds(t *testing.T) {
	t.Setenv("TILE_INTERVAL", "15")
	cfg, err := LoadConfig(logger.Nop(), "")
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.Tile.Interval)
}

func TestIdentityIDIsStable(t *testing.T) {
	a := identityID("host-a", "1000")
	assert.Equal(t, a, identityID("host-a", "1000"))
	assert.NotEqual(t, a, identityID("host-b", "1000"))
	assert.Len(t, a, 36)
}

func TestSplitName(t *testing.T) {
	first, last := splitName("Jane van Doe,Room 4,,")
	assert.Equal(t, "Jane", first)
	assert.Equal(t, "van Doe", last)

	first, last = splitName("")
	assert.Empty(t, first)
	assert.Empty(t, last)
}
