package internal

import (
	"fmt"
	"sync"
	"testing"
)

func TestStoreLoadOrStore(t *testing.T) {
	s := NewStore(100)

	hash := Hash("key")
	value, loaded := s.LoadOrStore(hash, "key", "first")
	if loaded || value != "first" {
		t.Fatalf("initial insert = (%v, %v), want (first, false)", value, loaded)
	}

	// Write-once: a second store for the same key keeps the first value.
	value, loaded = s.LoadOrStore(hash, "key", "second")
	if !loaded || value != "first" {
		t.Errorf("second insert = (%v, %v), want (first, true)", value, loaded)
	}

	value, ok := s.Load(hash, "key")
	if !ok || value != "first" {
		t.Errorf("Load = (%v, %v), want (first, true)", value, ok)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestStoreMiss(t *testing.T) {
	s := NewStore(100)

	if _, ok := s.Load(Hash("absent"), "absent"); ok {
		t.Errorf("Load of missing key should report false")
	}
	stats := s.Stats()
	if stats.Misses != 1 || stats.Hits != 0 {
		t.Errorf("stats after miss = %+v", stats)
	}
}

func TestStoreEvictionBoundsSize(t *testing.T) {
	const limit = 64
	s := NewStore(limit)

	for i := 0; i < limit*3; i++ {
		key := fmt.Sprintf("key-%d", i)
		s.LoadOrStore(Hash(key), key, i)
	}

	// Bulk eviction keeps the store near its bound: it never grows past
	// limit plus the single insert that triggered eviction.
	if s.Len() > limit {
		t.Errorf("Len = %d, want <= %d after evictions", s.Len(), limit)
	}
	if s.Stats().Evictions == 0 {
		t.Errorf("filling past the bound should evict")
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore(100)
	for i := 0; i < 10; i++ {
		key := fmt.Sprintf("key-%d", i)
		s.LoadOrStore(Hash(key), key, i)
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", s.Len())
	}
	if _, ok := s.Load(Hash("key-3"), "key-3"); ok {
		t.Errorf("Clear should remove every entry")
	}
}

// TestStoreConcurrency exercises mixed population, eviction and clears from
// many goroutines. Run with -race.
func TestStoreConcurrency(t *testing.T) {
	s := NewStore(128)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				key := fmt.Sprintf("key-%d", (g*31+i)%200)
				hash := Hash(key)
				if value, ok := s.Load(hash, key); ok && value == nil {
					t.Errorf("torn value for %s", key)
					return
				}
				s.LoadOrStore(hash, key, key)
				if i%100 == 0 {
					s.Clear()
				}
			}
		}(g)
	}
	wg.Wait()

	if s.Len() < 0 {
		t.Errorf("size counter went negative: %d", s.Len())
	}
}

func TestHashIsStable(t *testing.T) {
	if Hash("abc") != Hash("abc") {
		t.Errorf("Hash must be deterministic")
	}
	if Hash("abc") == Hash("abd") {
		t.Errorf("Hash should distinguish close keys")
	}
}
