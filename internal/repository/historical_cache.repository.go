package repository

import (
	"sort"
	"sync"
	"time"

	"mintmate/internal/domain"
)

const (
	DefaultHistoricalCacheTTL      = 5 * time.Minute
	DefaultHistoricalCacheCapacity = 100
)

type HistoricalCacheRepository interface {
	Get(key string) (*domain.HistoricalSeries, bool)
	Put(key string, series *domain.HistoricalSeries)
	Len() int
}

type historicalCacheEntry struct {
	series   *domain.HistoricalSeries
	cachedAt time.Time
	// seq orders entries written within the same clock tick
	seq uint64
}

type historicalCacheRepositoryHandler struct {
	mu       sync.Mutex
	entries  map[string]historicalCacheEntry
	ttl      time.Duration
	capacity int
	now      func() time.Time
	seq      uint64
}

// NewHistoricalCacheRepository returns an in-memory cache. Reads never
// refresh an entry; once an insert pushes the size over capacity the oldest
// writes are dropped until exactly capacity entries remain.
func NewHistoricalCacheRepository(ttl time.Duration, capacity int, now func() time.Time) HistoricalCacheRepository {
	if ttl <= 0 {
		ttl = DefaultHistoricalCacheTTL
	}
	if capacity <= 0 {
		capacity = DefaultHistoricalCacheCapacity
	}
	if now == nil {
		now = time.Now
	}
	return &historicalCacheRepositoryHandler{
		entries:  map[string]historicalCacheEntry{},
		ttl:      ttl,
		capacity: capacity,
		now:      now,
	}
}

func (h *historicalCacheRepositoryHandler) Get(key string) (*domain.HistoricalSeries, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entry, ok := h.entries[key]
	if !ok {
		return nil, false
	}
	if h.now().Sub(entry.cachedAt) >= h.ttl {
		return nil, false
	}
	return entry.series, true
}

func (h *historicalCacheRepositoryHandler) Put(key string, series *domain.HistoricalSeries) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.seq++
	h.entries[key] = historicalCacheEntry{
		series:   series,
		cachedAt: h.now(),
		seq:      h.seq,
	}

	if len(h.entries) > h.capacity {
		h.prune()
	}
}

func (h *historicalCacheRepositoryHandler) prune() {
	type keyedEntry struct {
		key   string
		entry historicalCacheEntry
	}
	all := make([]keyedEntry, 0, len(h.entries))
	for k, e := range h.entries {
		all = append(all, keyedEntry{key: k, entry: e})
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].entry.cachedAt.Equal(all[j].entry.cachedAt) {
			return all[i].entry.cachedAt.Before(all[j].entry.cachedAt)
		}
		return all[i].entry.seq < all[j].entry.seq
	})

	excess := len(all) - h.capacity
	for _, e := range all[:excess] {
		delete(h.entries, e.key)
	}
}

func (h *historicalCacheRepositoryHandler) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
