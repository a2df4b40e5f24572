package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbeaudry/quotient/internal/domain/quote"
)

func resultWithPrice(price int64) *quote.PricingResult {
	return &quote.PricingResult{FinalPrice: decimal.NewFromInt(price)}
}

func TestFingerprintDeterministic(t *testing.T) {
	t.Parallel()

	type snapshot struct {
		Base  float64  `json:"base"`
		Items []string `json:"items"`
	}

	first, err := Fingerprint(snapshot{Base: 100, Items: []string{"a", "b"}})
	require.NoError(t, err)
	second, err := Fingerprint(snapshot{Base: 100, Items: []string{"a", "b"}})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	changed, err := Fingerprint(snapshot{Base: 101, Items: []string{"a", "b"}})
	require.NoError(t, err)
	assert.NotEqual(t, first, changed)
}

func TestMemoryGetPut(t *testing.T) {
	t.Parallel()

	m := NewMemory(8)

	_, ok := m.Get("missing")
	assert.False(t, ok)

	stored := resultWithPrice(1400)
	m.Put("fp", stored)

	cached, ok := m.Get("fp")
	require.True(t, ok)
	assert.Same(t, stored, cached, "cache returns the identical result value")

	stats := m.Stats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
}

func TestMemoryInvalidateAndClear(t *testing.T) {
	t.Parallel()

	m := NewMemory(8)
	m.Put("a", resultWithPrice(1))
	m.Put("b", resultWithPrice(2))

	m.Invalidate("a")
	_, ok := m.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())

	m.Clear()
	assert.Zero(t, m.Len())
}

func TestMemoryEvictsOldestAtCapacity(t *testing.T) {
	t.Parallel()

	m := NewMemory(2)
	m.Put("a", resultWithPrice(1))
	m.Put("b", resultWithPrice(2))
	m.Put("c", resultWithPrice(3))

	_, ok := m.Get("a")
	assert.False(t, ok, "oldest entry evicted first")
	_, ok = m.Get("b")
	assert.True(t, ok)
	_, ok = m.Get("c")
	assert.True(t, ok)
	assert.Equal(t, uint64(1), m.Stats().Evictions)
}

func TestMemoryZeroCapacityNeverEvicts(t *testing.T) {
	t.Parallel()

	m := NewMemory(0)
	for i := 0; i < 100; i++ {
		m.Put(fmt.Sprintf("fp-%d", i), resultWithPrice(int64(i)))
	}
	assert.Equal(t, 100, m.Len())
	assert.Zero(t, m.Stats().Evictions)
}

func TestMemoryPutOverwriteKeepsSingleEntry(t *testing.T) {
	t.Parallel()

	m := NewMemory(4)
	m.Put("fp", resultWithPrice(1))
	m.Put("fp", resultWithPrice(2))
	assert.Equal(t, 1, m.Len())

	cached, ok := m.Get("fp")
	require.True(t, ok)
	assert.True(t, cached.FinalPrice.Equal(decimal.NewFromInt(2)))
}

func TestMemoryConcurrentAccess(t *testing.T) {
	t.Parallel()

	m := NewMemory(64)
	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("fp-%d-%d", worker, i%10)
				m.Put(key, resultWithPrice(int64(i)))
				if cached, ok := m.Get(key); ok && cached == nil {
					t.Error("cached entry must never be nil")
				}
			}
		}(worker)
	}
	wg.Wait()
}
