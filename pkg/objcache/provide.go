/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package objcache

import "github.com/voedger/mdtypes/pkg/objcache/internal/imcache"

// Creates and return new unbounded object cache with K key type and V value type.
func New[K comparable, V any]() ICache[K, V] {
	return imcache.New[K, V]()
}
