package mel

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterbankCacheReturnsSameMatrix(t *testing.T) {
	cache := NewFilterbankCache()
	cfg := FilterbankConfig{NumFilters: 26, FFTSize: 512, SampleRate: 16000}

	first, err := cache.Get(cfg)
	require.NoError(t, err)

	second, err := cache.Get(cfg)
	require.NoError(t, err)

	// the cached matrix is shared, not rebuilt
	assert.Equal(t, 1, cache.Len())
	require.Len(t, second, len(first))
	for i := range first {
		assert.Same(t, &first[i][0], &second[i][0], "row %d", i)
	}
}

func TestFilterbankCacheSharesResolvedConfigs(t *testing.T) {
	cache := NewFilterbankCache()

	_, err := cache.Get(FilterbankConfig{NumFilters: 26, FFTSize: 512, SampleRate: 16000})
	require.NoError(t, err)

	// explicit Nyquist resolves to the same key as the derived default
	_, err = cache.Get(FilterbankConfig{NumFilters: 26, FFTSize: 512, SampleRate: 16000, MaxFreq: 8000})
	require.NoError(t, err)

	assert.Equal(t, 1, cache.Len())
}

func TestFilterbankCacheDoesNotCacheErrors(t *testing.T) {
	cache := NewFilterbankCache()

	_, err := cache.Get(FilterbankConfig{NumFilters: 26, FFTSize: 512, SampleRate: 16000, MaxFreq: 16000})
	assert.ErrorIs(t, err, ErrNyquistViolation)
	assert.Equal(t, 0, cache.Len())
}

func TestFilterbankCacheConcurrentAccess(t *testing.T) {
	cache := NewFilterbankCache()
	configs := []FilterbankConfig{
		{NumFilters: 26, FFTSize: 512, SampleRate: 16000},
		{NumFilters: 20, FFTSize: 512, SampleRate: 16000},
		{NumFilters: 26, FFTSize: 1024, SampleRate: 44100},
	}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(cfg FilterbankConfig) {
			defer wg.Done()
			bank, err := cache.Get(cfg)
			assert.NoError(t, err)
			assert.Len(t, bank, cfg.NumFilters)
		}(configs[i%len(configs)])
	}
	wg.Wait()

	assert.Equal(t, len(configs), cache.Len())
}
