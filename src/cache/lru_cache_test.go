package cache

import (
	"fmt"
	"testing"
	"time"
)

func TestLRUCacheBasic(t *testing.T) {
	c := NewLRUCache(3, time.Hour)

	c.Set("a", "1")
	c.Set("b", "2")

	if v, ok := c.Get("a"); !ok || v != "1" {
		t.Fatalf("Get(a) = %q, %v", v, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Fatalf("missing key reported present")
	}
}

func TestLRUCacheEviction(t *testing.T) {
	c := NewLRUCache(2, time.Hour)

	c.Set("a", "1")
	c.Set("b", "2")
	c.Get("a") // refresh a; b becomes the eviction candidate
	c.Set("c", "3")

	if _, ok := c.Get("b"); ok {
		t.Fatalf("least recently used entry survived eviction")
	}
	if _, ok := c.Get("a"); !ok {
		t.Fatalf("recently used entry evicted")
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
}

func TestLRUCacheExpiry(t *testing.T) {
	c := NewLRUCache(4, time.Nanosecond)
	c.Set("a", "1")
	time.Sleep(2 * time.Millisecond)
	if _, ok := c.Get("a"); ok {
		t.Fatalf("expired entry still readable")
	}
}

func TestLRUCacheUpdateExisting(t *testing.T) {
	c := NewLRUCache(2, time.Hour)
	c.Set("a", "1")
	c.Set("a", "2")
	if v, _ := c.Get("a"); v != "2" {
		t.Fatalf("Get(a) = %q, want updated value", v)
	}
	if c.Len() != 1 {
		t.Fatalf("Len = %d, want 1", c.Len())
	}
}

func TestHashKeyStable(t *testing.T) {
	if HashKey("x") != HashKey("x") {
		t.Fatalf("HashKey not deterministic")
	}
	if HashKey("x") == HashKey("y") {
		t.Fatalf("distinct inputs collided")
	}
}

func BenchmarkLRUCacheSet(b *testing.B) {
	c := NewLRUCache(1000, 5*time.Minute)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Set(HashKey(fmt.Sprint(i%2000)), "value")
	}
}
