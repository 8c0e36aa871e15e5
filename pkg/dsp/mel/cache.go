package mel

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// FilterbankCache memoizes filterbank matrices per configuration. It is
// safe for concurrent use; under contention at most one goroutine builds
// the matrix for a given configuration while the rest wait for it. The
// cached matrix is shared, so callers must treat it as immutable.
//
// Caching is an efficiency aid, not a correctness requirement; the cache
// is an injectable collaborator rather than package state.
type FilterbankCache struct {
	mu    sync.RWMutex
	banks map[FilterbankConfig][][]float64
	group singleflight.Group
}

// NewFilterbankCache creates an empty filterbank cache.
func NewFilterbankCache() *FilterbankCache {
	return &FilterbankCache{
		banks: make(map[FilterbankConfig][][]float64),
	}
}

// Get returns the filterbank for the configuration, building and storing
// it on first use.
func (c *FilterbankCache) Get(cfg FilterbankConfig) ([][]float64, error) {
	// resolve first so derived and explicit Nyquist configs share an entry
	resolved, err := cfg.resolve()
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	bank, ok := c.banks[resolved]
	c.mu.RUnlock()
	if ok {
		return bank, nil
	}

	key := fmt.Sprintf("%d/%d/%d/%g/%g", resolved.NumFilters, resolved.FFTSize,
		resolved.SampleRate, resolved.MinFreq, resolved.MaxFreq)
	v, err, _ := c.group.Do(key, func() (any, error) {
		built, err := Filterbank(resolved)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.banks[resolved] = built
		c.mu.Unlock()
		return built, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([][]float64), nil
}

// Len reports how many distinct configurations are cached.
func (c *FilterbankCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.banks)
}
