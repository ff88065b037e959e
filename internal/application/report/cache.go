package report

import (
	"container/list"
	"sync"
	"time"
)

// ResultCache is a bounded LRU cache for computed reports, keyed by
// (month, filter), with a per-entry TTL. Expired entries are never served;
// the caller falls through to a full recomputation.
type ResultCache struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	items   map[string]*list.Element
	lru     *list.List
}

type cacheEntry struct {
	key       string
	result    *Result
	expiresAt time.Time
}

// NewResultCache builds the cache. maxSize <= 0 yields a cache that never
// stores anything, which effectively disables caching.
func NewResultCache(maxSize int, ttl time.Duration) *ResultCache {
	return &ResultCache{
		maxSize: maxSize,
		ttl:     ttl,
		items:   make(map[string]*list.Element),
		lru:     list.New(),
	}
}

func cacheKey(month string, f Filter) string {
	return month + "|" + string(f)
}

// Get returns the cached report for (month, filter), or false on a miss or an
// expired entry.
func (c *ResultCache) Get(month string, f Filter) (*Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[cacheKey(month, f)]
	if !ok {
		return nil, false
	}
	entry := elem.Value.(*cacheEntry)
	if time.Now().After(entry.expiresAt) {
		c.removeElement(elem)
		return nil, false
	}
	c.lru.MoveToFront(elem)
	return entry.result, true
}

// Set stores a computed report, evicting the least recently used entry when
// the cache is full.
func (c *ResultCache) Set(month string, f Filter, res *Result) {
	if c.maxSize <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(month, f)
	if elem, ok := c.items[key]; ok {
		entry := elem.Value.(*cacheEntry)
		entry.result = res
		entry.expiresAt = time.Now().Add(c.ttl)
		c.lru.MoveToFront(elem)
		return
	}
	if c.lru.Len() >= c.maxSize {
		if back := c.lru.Back(); back != nil {
			c.removeElement(back)
		}
	}
	elem := c.lru.PushFront(&cacheEntry{
		key:       key,
		result:    res,
		expiresAt: time.Now().Add(c.ttl),
	})
	c.items[key] = elem
}

// Len returns the number of live entries (expired ones included until read or evicted).
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

func (c *ResultCache) removeElement(elem *list.Element) {
	entry := elem.Value.(*cacheEntry)
	delete(c.items, entry.key)
	c.lru.Remove(elem)
}
