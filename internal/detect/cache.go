// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package detect

import (
	"crypto/sha256"
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of detection results kept by NewCached when
// size is zero.
const DefaultCacheSize = 4096

type cacheKey struct {
	lang string
	sum  [sha256.Size]byte
}

// CacheStats tracks cache effectiveness.
type CacheStats struct {
	Hits   int64
	Misses int64
}

// Cached wraps a Detector with an LRU cache keyed by language tag and content
// hash. It is safe for concurrent use.
type Cached struct {
	inner  Detector
	cache  *lru.Cache[cacheKey, []string]
	hits   atomic.Int64
	misses atomic.Int64
}

// NewCached returns a caching Detector holding at most size results.
func NewCached(inner Detector, size int) (*Cached, error) {
	if size == 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[cacheKey, []string](size)
	if err != nil {
		return nil, fmt.Errorf("creating detection cache: %w", err)
	}
	return &Cached{inner: inner, cache: cache}, nil
}

// Detect returns the cached result for (content, lang), computing it with the
// wrapped detector on a miss. The returned slice is owned by the caller.
func (c *Cached) Detect(content, lang string) []string {
	key := cacheKey{lang: lang, sum: sha256.Sum256([]byte(content))}

	names, ok := c.cache.Get(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
		names = c.inner.Detect(content, lang)
		c.cache.Add(key, names)
	}

	if names == nil {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Stats returns the hit and miss counts so far.
func (c *Cached) Stats() CacheStats {
	return CacheStats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}
