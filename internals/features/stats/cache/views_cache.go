package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ewm:views:"

// ViewsCache keeps recent per-uri view counts in redis.
type ViewsCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewViewsCache(client *redis.Client, ttl time.Duration) *ViewsCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &ViewsCache{Client: client, TTL: ttl}
}

func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
}

// Get returns the cached counts; uris without an entry are left out.
func (c *ViewsCache) Get(ctx context.Context, uris []string) (map[string]int64, error) {
	out := make(map[string]int64, len(uris))
	if len(uris) == 0 {
		return out, nil
	}
	keys := make([]string, len(uris))
	for i, u := range uris {
		keys[i] = keyPrefix + u
	}
	vals, err := c.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			continue
		}
		out[uris[i]] = n
	}
	return out, nil
}

func (c *ViewsCache) Put(ctx context.Context, counts map[string]int64) error {
	if len(counts) == 0 {
		return nil
	}
	_, err := c.Client.Pipelined(ctx, func(p redis.Pipeliner) error {
		for uri, n := range counts {
			p.SetEx(ctx, keyPrefix+uri, n, c.TTL)
		}
		return nil
	})
	return err
}
