// Package cache provides a small generic LRU cache.
//
// It is used by the render package to reuse checkerboard backdrops between
// frames of the same size and zoom.
//
//	c := cache.New[string, int](16)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
