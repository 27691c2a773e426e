// Package cache is a Redis-backed result cache for keyword-in-context
// queries. The index itself never changes after startup, so cached results
// stay valid for the life of the process; the TTL only bounds Redis memory.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/daisyflemming/textsearch/internal/searcher/executor"
	"github.com/daisyflemming/textsearch/pkg/config"
	pkgredis "github.com/daisyflemming/textsearch/pkg/redis"
)

const keyPrefix = "kwic:"

// ResultCache caches executor results keyed by normalized query word and
// context width, collapsing concurrent identical lookups with singleflight.
type ResultCache struct {
	client *pkgredis.Client
	cfg    config.RedisConfig
	group  singleflight.Group
	logger *slog.Logger
	hits   atomic.Int64
	misses atomic.Int64
}

// New creates a ResultCache over an established Redis client.
func New(client *pkgredis.Client, cfg config.RedisConfig) *ResultCache {
	return &ResultCache{
		client: client,
		cfg:    cfg,
		logger: slog.Default().With("component", "result-cache"),
	}
}

// Get returns the cached result for (word, contextWords), if present.
func (c *ResultCache) Get(ctx context.Context, word string, contextWords int) (*executor.Result, bool) {
	key := c.buildKey(word, contextWords)
	data, err := c.client.Get(ctx, key)
	if err != nil {
		if !pkgredis.IsNilError(err) {
			c.logger.Error("cache get failed", "key", key, "error", err)
		}
		c.misses.Add(1)
		return nil, false
	}
	var result executor.Result
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		c.logger.Error("cache unmarshal failed", "key", key, "error", err)
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return &result, true
}

// Set stores a result under (word, contextWords).
func (c *ResultCache) Set(ctx context.Context, word string, contextWords int, result *executor.Result) {
	key := c.buildKey(word, contextWords)
	data, err := json.Marshal(result)
	if err != nil {
		c.logger.Error("cache marshal failed", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.cfg.CacheTTL); err != nil {
		c.logger.Error("cache set failed", "key", key, "error", err)
	}
}

// GetOrCompute returns the cached result or computes and stores it.
// Concurrent callers for the same key share one computation. The second
// return value reports whether the result came from cache.
func (c *ResultCache) GetOrCompute(
	ctx context.Context,
	word string,
	contextWords int,
	computeFn func() *executor.Result,
) (*executor.Result, bool) {
	if result, ok := c.Get(ctx, word, contextWords); ok {
		return result, true
	}
	key := c.buildKey(word, contextWords)
	val, _, _ := c.group.Do(key, func() (any, error) {
		if result, ok := c.Get(ctx, word, contextWords); ok {
			return result, nil
		}
		result := computeFn()
		c.Set(ctx, word, contextWords, result)
		return result, nil
	})
	return val.(*executor.Result), false
}

// Invalidate removes every cached result.
func (c *ResultCache) Invalidate(ctx context.Context) error {
	deleted, err := c.client.FlushByPattern(ctx, keyPrefix+"*")
	if err != nil {
		return fmt.Errorf("invalidating cache: %w", err)
	}
	c.logger.Info("cache invalidated", "keys_deleted", deleted)
	return nil
}

// Stats returns the in-process hit and miss counters.
func (c *ResultCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// buildKey hashes the normalized query so arbitrary words stay within Redis
// key length limits. Matching is case-insensitive, so the word is lowercased
// before hashing.
func (c *ResultCache) buildKey(word string, contextWords int) string {
	raw := fmt.Sprintf("%s:context=%d", strings.ToLower(word), contextWords)
	sum := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("%s%x", keyPrefix, sum[:16])
}
