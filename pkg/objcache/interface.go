/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package objcache

// Objects cache.
//
// Values are never evicted, cache grows for the whole process lifetime.
//
// @ConcurrentAccess
type ICache[K comparable, V any] interface {
	// Gets value by key. Returns true and value if key exists, false and zero value overwise
	Get(K) (value V, ok bool)

	// Puts value with key. Existing value is replaced
	Put(K, V)

	// Returns existing value for key and true if key exists.
	// Overwise puts specified value and returns it with false.
	//
	// If several goroutines put the same key concurrently, then all of them
	// receive the same (first stored) value.
	GetOrPut(K, V) (actual V, loaded bool)

	// Returns number of cached values
	Len() int
}
