package cache

import (
	"sync"
	"testing"
)

func TestCacheGetSet(t *testing.T) {
	c := New[int, string](4)

	if _, ok := c.Get(1); ok {
		t.Fatal("Get on empty cache returned ok")
	}

	c.Set(1, "one")
	got, ok := c.Get(1)
	if !ok || got != "one" {
		t.Errorf("Get(1) = %q, %v, want \"one\", true", got, ok)
	}

	c.Set(1, "uno")
	if got, _ := c.Get(1); got != "uno" {
		t.Errorf("Get(1) after update = %q, want \"uno\"", got)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](2)
	c.Set(1, 10)
	c.Set(2, 20)

	// Touch 1 so 2 becomes the oldest.
	c.Get(1)
	c.Set(3, 30)

	if _, ok := c.Get(2); ok {
		t.Error("entry 2 should have been evicted")
	}
	if _, ok := c.Get(1); !ok {
		t.Error("entry 1 should still be cached")
	}
	if _, ok := c.Get(3); !ok {
		t.Error("entry 3 should be cached")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](0)
	calls := 0
	create := func() int {
		calls++
		return 42
	}

	for range 3 {
		if v := c.GetOrCreate("k", create); v != 42 {
			t.Fatalf("GetOrCreate = %d, want 42", v)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}

	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Errorf("Stats = %+v, want 2 hits and 1 miss", s)
	}
}

func TestCacheClear(t *testing.T) {
	c := New[int, int](8)
	c.Set(1, 1)
	c.Get(1)
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	if s := c.Stats(); s.Hits != 0 || s.Misses != 0 {
		t.Errorf("Stats after Clear = %+v, want zero counters", s)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[int, int](16)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				c.GetOrCreate((g+i)%32, func() int { return i })
			}
		}()
	}
	wg.Wait()

	if c.Len() > 16 {
		t.Errorf("Len() = %d, exceeds capacity 16", c.Len())
	}
}
