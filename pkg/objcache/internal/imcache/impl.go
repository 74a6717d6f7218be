/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package imcache

import "github.com/erni27/imcache"

// Unbounded cache over imcache. Values never expire.
type Cache[K comparable, V any] struct {
	cache *imcache.Cache[K, V]
}

func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{
		cache: imcache.New[K, V](),
	}
}

func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	return c.cache.Get(key)
}

func (c *Cache[K, V]) Put(key K, value V) {
	c.cache.Set(key, value, imcache.WithNoExpiration())
}

func (c *Cache[K, V]) GetOrPut(key K, value V) (actual V, loaded bool) {
	return c.cache.GetOrSet(key, value, imcache.WithNoExpiration())
}

func (c *Cache[K, V]) Len() int {
	return c.cache.Len()
}
