package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"college-compass-be/pkg/recommender"

	"github.com/redis/go-redis/v9"
)

const refinementTTL = 5 * time.Minute

// RefinementCache keeps recent normalized refinement results in Redis keyed
// by a hash of the upstream payload. It is strictly best-effort: a nil or
// unreachable Redis degrades to cache misses, never to request failures.
type RefinementCache struct {
	rdb *redis.Client
}

func NewRefinementCache(rdb *redis.Client) *RefinementCache {
	return &RefinementCache{rdb: rdb}
}

// Key hashes the request payload so identical refinements share an entry.
func (c *RefinementCache) Key(req *recommender.RefinementRequest) string {
	payload, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(payload)
	return "refinement:" + hex.EncodeToString(sum[:])
}

func (c *RefinementCache) Get(ctx context.Context, key string) (*recommender.Result, bool) {
	if c.rdb == nil || key == "" {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var result recommender.Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, false
	}
	return &result, true
}

func (c *RefinementCache) Set(ctx context.Context, key string, result *recommender.Result) {
	if c.rdb == nil || key == "" {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key, raw, refinementTTL)
}
