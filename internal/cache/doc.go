// Package cache provides a small generic LRU cache.
//
//	c := cache.New[tableKey, []float64](64)
//	table := c.GetOrCreate(key, func() []float64 { return build(key) })
//
// The cache is safe for concurrent use and must not be copied after
// creation (it holds a mutex).
package cache
