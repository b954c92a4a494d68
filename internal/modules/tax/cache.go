// README: Redis-backed cache of calculation results.
package tax

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

const resultKeyPrefix = "tax:result:"

type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCache(redis *redis.Client, ttl time.Duration) *Cache {
	return &Cache{redis: redis, ttl: ttl}
}

// CacheKey derives a stable key from the vehicle type and the passage set.
// Input order does not matter: the times are sorted before hashing, so
// permutations of the same request share one cache entry.
func CacheKey(vehicleType string, passageTimes []time.Time) string {
	sorted := make([]time.Time, len(passageTimes))
	copy(sorted, passageTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	h := sha256.New()
	h.Write([]byte(vehicleType))
	for _, t := range sorted {
		h.Write([]byte{0})
		h.Write([]byte(t.Format("2006-01-02T15:04:05")))
	}
	return resultKeyPrefix + hex.EncodeToString(h.Sum(nil))
}

func (c *Cache) Get(ctx context.Context, key string) (*Result, bool, error) {
	val, err := c.redis.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var res Result
	if err := json.Unmarshal([]byte(val), &res); err != nil {
		return nil, false, err
	}
	return &res, true, nil
}

func (c *Cache) Set(ctx context.Context, key string, res *Result) error {
	payload, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, key, payload, c.ttl).Err()
}
