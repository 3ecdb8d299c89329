package tile

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/mystore-backend/internal/pkg/logger"
)

type RedisOptions struct {
	Addr     string
	BadgeKey string
	Channel  string
}

// RedisPublisher stores the badge count under a key and announces every
// update on a pub/sub channel.
type RedisPublisher struct {
	log     *logger.Logger
	rdb     *goredis.Client
	key     string
	channel string
}

func NewRedisPublisher(log *logger.Logger, opts RedisOptions) (*RedisPublisher, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(opts.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return newRedisPublisher(log, rdb, opts), nil
}

func newRedisPublisher(log *logger.Logger, rdb *goredis.Client, opts RedisOptions) *RedisPublisher {
	key := strings.TrimSpace(opts.BadgeKey)
	if key == "" {
		key = "mystore:badge"
	}
	ch := strings.TrimSpace(opts.Channel)
	if ch == "" {
		ch = "mystore:tile"
	}
	return &RedisPublisher{
		log:     log.With("component", "RedisTilePublisher"),
		rdb:     rdb,
		key:     key,
		channel: ch,
	}
}

func (p *RedisPublisher) Publish(ctx context.Context, snap Snapshot, _ *Images) error {
	if p == nil || p.rdb == nil {
		return fmt.Errorf("redis tile publisher not initialized")
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	if err := p.rdb.Set(ctx, p.key, snap.ItemsQuantity, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", p.key, err)
	}
	if err := p.rdb.Publish(ctx, p.channel, raw).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", p.channel, err)
	}
	p.log.Debug("Badge published", "key", p.key, "count", snap.ItemsQuantity)
	return nil
}

func (p *RedisPublisher) Close() error {
	if p == nil || p.rdb == nil {
		return nil
	}
	return p.rdb.Close()
}
