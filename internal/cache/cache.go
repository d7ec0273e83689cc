package cache

import "sync"

// Cache is a thread-safe LRU cache with a fixed capacity.
// When an insert exceeds the capacity, or the cost budget of a weighted
// cache, least recently used entries are evicted.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*lruNode[K, V]
	order    lruList[K, V]
	capacity int

	cost    func(V) int64
	maxCost int64
	curCost int64

	hits      uint64
	misses    uint64
	evictions uint64
}

// New creates a cache holding at most capacity entries.
// A capacity of 0 or less means unlimited.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:  make(map[K]*lruNode[K, V]),
		capacity: capacity,
	}
}

// NewWeighted creates a cache bounded both by entry count and by the total
// cost of its values as reported by cost. A maxCost of 0 or less disables
// the cost bound. A single value costing more than maxCost is never stored.
func NewWeighted[K comparable, V any](capacity int, maxCost int64, cost func(V) int64) *Cache[K, V] {
	c := New[K, V](capacity)
	c.cost = cost
	c.maxCost = maxCost
	return c
}

// Get returns the value for key and marks it as recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.order.moveToFront(node)
	return node.value, true
}

// Set stores value under key, replacing any previous value.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node, ok := c.entries[key]; ok {
		c.remove(node)
	}
	c.insert(key, value)
}

// GetOrCreate returns the cached value for key, calling create on a miss.
// create runs without the cache lock held, so concurrent misses on
// different keys build in parallel. Concurrent misses on the same key may
// each call create; the first value stored wins and is returned to all of
// them.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	value := create()

	c.mu.Lock()
	defer c.mu.Unlock()
	if node, ok := c.entries[key]; ok {
		c.order.moveToFront(node)
		return node.value
	}
	c.insert(key, value)
	return value
}

// Delete removes key. It reports whether the key was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, ok := c.entries[key]
	if !ok {
		return false
	}
	c.remove(node)
	return true
}

// Clear removes all entries and resets statistics.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*lruNode[K, V])
	c.order = lruList[K, V]{}
	c.curCost = 0
	c.hits, c.misses, c.evictions = 0, 0, 0
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Len:       len(c.entries),
		Capacity:  c.capacity,
		Cost:      c.curCost,
		MaxCost:   c.maxCost,
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}

// insert adds a new entry and evicts until both bounds hold.
// Caller must hold c.mu.
func (c *Cache[K, V]) insert(key K, value V) {
	w := c.weigh(value)
	if c.maxCost > 0 && w > c.maxCost {
		return
	}
	c.entries[key] = c.order.pushFront(key, value)
	c.curCost += w
	for c.overBudget() {
		oldest := c.order.removeOldest()
		delete(c.entries, oldest.key)
		c.curCost -= c.weigh(oldest.value)
		c.evictions++
	}
}

// remove drops node from the list, the map and the cost total.
// Caller must hold c.mu.
func (c *Cache[K, V]) remove(node *lruNode[K, V]) {
	c.order.unlink(node)
	c.order.len--
	delete(c.entries, node.key)
	c.curCost -= c.weigh(node.value)
}

func (c *Cache[K, V]) overBudget() bool {
	if c.capacity > 0 && len(c.entries) > c.capacity {
		return true
	}
	return c.maxCost > 0 && c.curCost > c.maxCost
}

func (c *Cache[K, V]) weigh(v V) int64 {
	if c.cost == nil {
		return 0
	}
	return c.cost(v)
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the maximum number of entries (0 = unlimited).
	Capacity int
	// Cost is the summed cost of the stored values (0 when unweighted).
	Cost int64
	// MaxCost is the cost budget (0 = unlimited).
	MaxCost int64
	// Hits is the number of lookups that found an entry.
	Hits uint64
	// Misses is the number of lookups that did not.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), or 0 before any lookup.
	HitRate float64
	// Evictions is the number of entries dropped for capacity.
	Evictions uint64
}
