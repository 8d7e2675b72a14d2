// SPDX-FileCopyrightText: The wxpeek Authors
//
// SPDX-License-Identifier: MIT

package geocode

import (
	"context"
	"strings"
	"sync"
	"time"
)

type cacheKey struct {
	Provider string
	Query    string
}

type cacheEntry struct {
	Place  Place
	Expiry time.Time
}

// CachedGeocoder decorates a Geocoder with an in-memory TTL cache. Only
// geocode lookups are cached; weather data itself is never cached.
type CachedGeocoder struct {
	coder   Geocoder
	ttlHit  time.Duration
	ttlMiss time.Duration

	mu    sync.RWMutex
	cache map[cacheKey]cacheEntry
}

func NewCachedGeocoder(coder Geocoder, ttlHit, ttlMiss time.Duration) *CachedGeocoder {
	return &CachedGeocoder{
		coder:   coder,
		ttlHit:  ttlHit,
		ttlMiss: ttlMiss,
		cache:   make(map[cacheKey]cacheEntry),
	}
}

func (c *CachedGeocoder) Name() string {
	return "geocoder cache using " + c.coder.Name()
}

func (c *CachedGeocoder) Search(ctx context.Context, query string) (Place, error) {
	key := newKey(c.coder.Name(), query)

	c.mu.RLock()
	entry, ok := c.cache[key]
	if ok && time.Now().Before(entry.Expiry) {
		place := entry.Place
		c.mu.RUnlock()
		place.CacheHit = true
		return place, nil
	}
	c.mu.RUnlock()

	place, err := c.coder.Search(ctx, query)
	if err != nil {
		return place, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ttl := c.ttlHit
	if !place.Found {
		ttl = c.ttlMiss
	}
	c.cache[key] = cacheEntry{
		Place:  place,
		Expiry: time.Now().Add(ttl),
	}

	return place, nil
}

func newKey(provider, query string) cacheKey {
	return cacheKey{
		Provider: provider,
		Query:    strings.ToLower(strings.TrimSpace(query)),
	}
}
