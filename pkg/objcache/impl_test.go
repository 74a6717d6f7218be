/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 */

package objcache_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/mdtypes/pkg/objcache"
)

func TestCache_PutGet(t *testing.T) {
	require := require.New(t)

	cache := objcache.New[int, string]()

	_, ok := cache.Get(1)
	require.False(ok)

	cache.Put(1, "one")
	v, ok := cache.Get(1)
	require.True(ok)
	require.Equal("one", v)

	cache.Put(1, "uno")
	v, _ = cache.Get(1)
	require.Equal("uno", v)

	require.Equal(1, cache.Len())
}

func TestCache_GetOrPutConcurrent(t *testing.T) {
	require := require.New(t)

	const goroutines = 32

	cache := objcache.New[string, *int]()

	results := make([]*int, goroutines)
	wg := sync.WaitGroup{}
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			v := g
			results[g], _ = cache.GetOrPut("key", &v)
		}(g)
	}
	wg.Wait()

	for g := 1; g < goroutines; g++ {
		require.Same(results[0], results[g], "all goroutines should receive the same value")
	}
	require.Equal(1, cache.Len())
}
