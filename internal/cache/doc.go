// Package cache provides a small thread-safe LRU cache with a soft limit.
//
//	masks := cache.New[string, *image.Alpha](256)
//	m := masks.GetOrCreate("label", render)
//
// When an insertion pushes the cache past its soft limit, the least recently
// used quarter of the entries is evicted. Cache is safe for concurrent use and
// must not be copied after creation.
package cache
