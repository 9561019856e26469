package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReportCache keeps serialized manager reports for a short TTL so repeated
// dashboard refreshes do not hit the aggregation queries every time.
// All methods are best-effort: a cache miss or redis failure just means the
// caller recomputes from the database.
type ReportCache interface {
	Get(key string, dest interface{}) bool
	Set(key string, value interface{})
	Invalidate()
}

const (
	reportCacheTTL    = 30 * time.Second
	reportCachePrefix = "report:"
)

type redisReportCache struct {
	client *redis.Client
}

func NewRedisReportCache(client *redis.Client) ReportCache {
	return &redisReportCache{client: client}
}

func (c *redisReportCache) Get(key string, dest interface{}) bool {
	data, err := c.client.Get(context.Background(), reportCachePrefix+key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

func (c *redisReportCache) Set(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.client.Set(context.Background(), reportCachePrefix+key, data, reportCacheTTL)
}

func (c *redisReportCache) Invalidate() {
	ctx := context.Background()
	keys, err := c.client.Keys(ctx, reportCachePrefix+"*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	c.client.Del(ctx, keys...)
}

// NopReportCache is used when redis is not configured.
type NopReportCache struct{}

func (NopReportCache) Get(string, interface{}) bool { return false }
func (NopReportCache) Set(string, interface{})      {}
func (NopReportCache) Invalidate()                  {}
