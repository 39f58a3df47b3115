// Package result caches completed diagnoses. A diagnosis is a pure function
// of its code/log inputs plus the static catalog, so identical submissions can
// short-circuit without touching the generative capability.
package result

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"fixify/internal/engine"
)

type entry struct {
	res       engine.Result
	expiresAt time.Time
}

// Cache is a threadsafe LRU with per-entry TTL. A nil *Cache is valid and
// disables caching.
type Cache struct {
	lru *lru.Cache[string, entry]
	ttl time.Duration
}

func New(maxEntries int, ttl time.Duration) (*Cache, error) {
	if maxEntries <= 0 {
		maxEntries = 256
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	l, err := lru.New[string, entry](maxEntries)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: l, ttl: ttl}, nil
}

// Key derives the cache key for a code/log pair. A separator between the two
// fields keeps ("ab","c") and ("a","bc") distinct.
func Key(code, log string) string {
	h := sha256.New()
	h.Write([]byte(code))
	h.Write([]byte{0})
	h.Write([]byte(log))
	return hex.EncodeToString(h.Sum(nil))
}

func (c *Cache) Get(key string) (engine.Result, bool) {
	if c == nil {
		return engine.Result{}, false
	}
	e, ok := c.lru.Get(key)
	if !ok {
		return engine.Result{}, false
	}
	if time.Now().After(e.expiresAt) {
		c.lru.Remove(key)
		return engine.Result{}, false
	}
	return e.res, true
}

func (c *Cache) Set(key string, res engine.Result) {
	if c == nil {
		return
	}
	c.lru.Add(key, entry{res: res, expiresAt: time.Now().Add(c.ttl)})
}

func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}
