package moderation

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const totalsKeyPrefix = "ponto:incidents:total:"

// TotalsCache is a best-effort write-through cache of lifetime incident
// totals. The database stays authoritative; every redis failure degrades to
// a database read. A nil cache is valid and does nothing.
type TotalsCache struct {
	client *redis.Client
	ctx    context.Context
}

func NewTotalsCache(client *redis.Client) *TotalsCache {
	return &TotalsCache{
		client: client,
		ctx:    context.Background(),
	}
}

func (c *TotalsCache) Set(actorID string, total int) {
	if c == nil || c.client == nil {
		return
	}
	key := totalsKeyPrefix + actorID
	if err := c.client.Set(c.ctx, key, total, 24*time.Hour).Err(); err != nil {
		log.Printf("WARN: totals cache set failed for %s: %v", actorID, err)
	}
}

func (c *TotalsCache) Get(actorID string) (int, bool) {
	if c == nil || c.client == nil {
		return 0, false
	}
	val, err := c.client.Get(c.ctx, totalsKeyPrefix+actorID).Result()
	if err != nil {
		return 0, false
	}
	total, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return total, true
}
