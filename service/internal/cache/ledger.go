// internal/cache/ledger.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jason-s-yu/shbot/service/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// LedgerChannel carries every ledger record as it is produced.
	LedgerChannel = "shbot:ledgers"
	keyPrefix     = "shbot:ledger:"
	defaultTTL    = 6 * time.Hour
)

// redisClient is the subset of *redis.Client the publisher uses.
type redisClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// LedgerPublisher mirrors the latest ledger of each bot into Redis and
// publishes every record on LedgerChannel for live dashboards.
type LedgerPublisher struct {
	client redisClient
	ttl    time.Duration
	closer func() error
}

// NewLedgerPublisher connects to the Redis server at url
// (redis://[:password@]host:port/db).
func NewLedgerPublisher(url string) (*LedgerPublisher, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	return &LedgerPublisher{client: rdb, ttl: defaultTTL, closer: rdb.Close}, nil
}

func newLedgerPublisher(client redisClient) *LedgerPublisher {
	return &LedgerPublisher{client: client, ttl: defaultTTL}
}

// LedgerKey is the key holding the latest ledger of a bot.
func LedgerKey(bot string) string {
	return keyPrefix + bot
}

// Record stores rec as the bot's latest ledger and publishes it.
func (p *LedgerPublisher) Record(ctx context.Context, rec models.LedgerRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if err := p.client.Set(ctx, LedgerKey(rec.Bot), payload, p.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store ledger of %s: %w", rec.Bot, err)
	}
	if err := p.client.Publish(ctx, LedgerChannel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish ledger of %s: %w", rec.Bot, err)
	}
	return nil
}

// Close releases the Redis connection pool.
func (p *LedgerPublisher) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer()
}
