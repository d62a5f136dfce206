package models

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/blendpilot/blendpilot/src/cache"
)

// CachedGenerator wraps a Generator and memoizes completions. Keys cover
// mode and both prompts, so a fresh scene snapshot always misses.
type CachedGenerator struct {
	Inner Generator
	Cache *cache.LRUCache
}

func NewCachedGenerator(inner Generator, size int, ttl time.Duration) *CachedGenerator {
	return &CachedGenerator{Inner: inner, Cache: cache.NewLRUCache(size, ttl)}
}

func (c *CachedGenerator) Generate(ctx context.Context, mode Mode, systemPrompt, userPrompt string) (string, error) {
	key := cache.HashKey(strings.Join([]string{mode.String(), systemPrompt, userPrompt}, "\x00"))
	if val, ok := c.Cache.Get(key); ok {
		return val, nil
	}

	res, err := c.Inner.Generate(ctx, mode, systemPrompt, userPrompt)
	if err != nil {
		return "", err
	}
	c.Cache.Set(key, res)
	return res, nil
}

// TryCreateCached wraps gen in a response cache when BLENDPILOT_CACHE_SIZE
// is set to a positive integer; otherwise gen is returned unchanged, and
// every request goes to the backend.
func TryCreateCached(gen Generator) Generator {
	sizeStr := os.Getenv("BLENDPILOT_CACHE_SIZE")
	if sizeStr == "" {
		return gen
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil || size <= 0 {
		return gen
	}

	ttl := 300 * time.Second
	if ttlStr := os.Getenv("BLENDPILOT_CACHE_TTL"); ttlStr != "" {
		if sec, err := strconv.Atoi(ttlStr); err == nil && sec > 0 {
			ttl = time.Duration(sec) * time.Second
		}
	}
	return NewCachedGenerator(gen, size, ttl)
}

var _ Generator = (*CachedGenerator)(nil)
