package internal

import (
	"sync"
	"sync/atomic"
)

// Store is a concurrency-safe, size-bounded memo used for member lookup
// results. Entries are write-once per key: concurrent population of the same
// key may redo work but converges on a single stored value. Entries are never
// invalidated except by Clear or bulk eviction under size pressure.
type Store struct {
	shards    []*storeShard
	shardMask uint64
	maxSize   int64

	// Global statistics (atomic counters)
	size      int64
	hits      int64
	misses    int64
	evictions int64

	evicting sync.Mutex
}

// storeShard holds one slice of the key space for better concurrency
type storeShard struct {
	data sync.Map
}

const defaultShardCount = 8 // power of 2

// NewStore creates a store that bulk-evicts once it holds maxSize entries.
func NewStore(maxSize int) *Store {
	shards := make([]*storeShard, defaultShardCount)
	for i := range shards {
		shards[i] = &storeShard{}
	}
	return &Store{
		shards:    shards,
		shardMask: defaultShardCount - 1,
		maxSize:   int64(maxSize),
	}
}

func (s *Store) shard(hash uint64) *storeShard {
	return s.shards[hash&s.shardMask]
}

// Load retrieves the stored value for key, if present.
func (s *Store) Load(hash uint64, key any) (any, bool) {
	value, ok := s.shard(hash).data.Load(key)
	if ok {
		atomic.AddInt64(&s.hits, 1)
	} else {
		atomic.AddInt64(&s.misses, 1)
	}
	return value, ok
}

// LoadOrStore stores value under key unless the key is already populated, in
// which case the existing value is returned. When the store is full, roughly
// half the existing entries are evicted before the insert. Eviction is a
// performance safeguard only; losing entries is always safe because every
// entry can be recomputed.
func (s *Store) LoadOrStore(hash uint64, key, value any) (any, bool) {
	if atomic.LoadInt64(&s.size) >= s.maxSize {
		s.evictHalf()
	}

	actual, loaded := s.shard(hash).data.LoadOrStore(key, value)
	if !loaded {
		atomic.AddInt64(&s.size, 1)
	}
	return actual, loaded
}

// evictHalf drops roughly every other entry across all shards. Coarse bulk
// eviction, not LRU: the store is a memo of cheap-to-recompute results, so
// which half survives does not matter.
func (s *Store) evictHalf() {
	s.evicting.Lock()
	defer s.evicting.Unlock()

	// Another caller may have evicted while we waited for the lock.
	if atomic.LoadInt64(&s.size) < s.maxSize {
		return
	}

	drop := false
	for _, shard := range s.shards {
		shard.data.Range(func(key, value any) bool {
			drop = !drop
			if drop && shard.data.CompareAndDelete(key, value) {
				atomic.AddInt64(&s.size, -1)
				atomic.AddInt64(&s.evictions, 1)
			}
			return true
		})
	}
}

// Clear removes every entry.
func (s *Store) Clear() {
	for _, shard := range s.shards {
		shard.data.Range(func(key, value any) bool {
			if shard.data.CompareAndDelete(key, value) {
				atomic.AddInt64(&s.size, -1)
			}
			return true
		})
	}
}

// Len returns the current entry count.
func (s *Store) Len() int64 {
	return atomic.LoadInt64(&s.size)
}

// Stats returns a snapshot of the store's counters.
func (s *Store) Stats() Stats {
	return Stats{
		Entries:   atomic.LoadInt64(&s.size),
		Hits:      atomic.LoadInt64(&s.hits),
		Misses:    atomic.LoadInt64(&s.misses),
		Evictions: atomic.LoadInt64(&s.evictions),
	}
}

// Stats describes a store's usage counters.
type Stats struct {
	Entries   int64
	Hits      int64
	Misses    int64
	Evictions int64
}

// Hash implements FNV-1a for shard selection.
func Hash(key string) uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)

	hash := uint64(offset64)
	for i := 0; i < len(key); i++ {
		hash ^= uint64(key[i])
		hash *= prime64
	}
	return hash
}
