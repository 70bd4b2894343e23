// SPDX-License-Identifier: MIT

package session

import (
	"fmt"
	"time"

	"github.com/katalvlaran/topocoords/circular"
	"github.com/katalvlaran/topocoords/pointcloud"
	"github.com/patrickmn/go-cache"
)

const (
	// DefaultCacheTTL is how long an idle engine stays cached.
	DefaultCacheTTL = 30 * time.Minute
	cacheCleanup    = 5 * time.Minute
)

// EngineCache keeps built engines keyed by (cloud fingerprint, landmark
// count, prime) so resuming over the same cloud skips landmark selection
// and persistence. It is safe for concurrent use.
type EngineCache struct {
	cache *cache.Cache
}

// NewEngineCache creates a cache whose entries expire after ttl of
// inactivity (ttl <= 0 ⇒ DefaultCacheTTL).
func NewEngineCache(ttl time.Duration) *EngineCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &EngineCache{cache: cache.New(ttl, cacheCleanup)}
}

func cacheKey(cloud *pointcloud.Cloud, cfg Config) string {
	return fmt.Sprintf("%016x/%d/%d", cloud.Fingerprint(), cfg.Landmarks, cfg.Prime)
}

// Get returns the cached engine for (cloud, cfg), if any.
func (c *EngineCache) Get(cloud *pointcloud.Cloud, cfg Config) (*circular.Coords, bool) {
	if x, found := c.cache.Get(cacheKey(cloud, cfg)); found {
		return x.(*circular.Coords), true
	}

	return nil, false
}

// Put stores an engine, refreshing its expiry.
func (c *EngineCache) Put(cloud *pointcloud.Cloud, cfg Config, eng *circular.Coords) {
	c.cache.Set(cacheKey(cloud, cfg), eng, cache.DefaultExpiration)
}

// Len returns the number of cached engines, expired ones included until cleanup.
func (c *EngineCache) Len() int { return c.cache.ItemCount() }

// Flush drops every engine.
func (c *EngineCache) Flush() { c.cache.Flush() }
