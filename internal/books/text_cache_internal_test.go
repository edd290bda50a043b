package books

import (
	"strings"
	"testing"
	"time"
)

func TestBookTextCacheGetSet(t *testing.T) {
	cache := newBookTextCache(1 << 10)
	if cache == nil {
		t.Fatalf("expected cache instance")
	}

	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	cache.set(1342, "text", now.Add(time.Hour), now)

	text, ok := cache.get(1342, now)
	if !ok || text != "text" {
		t.Fatalf("unexpected cached text: %q, %t", text, ok)
	}

	if books, bytes := cache.size(); books != 1 || bytes != len("text") {
		t.Fatalf("unexpected size: %d books, %d bytes", books, bytes)
	}
}

func TestBookTextCacheExpiresBooks(t *testing.T) {
	cache := newBookTextCache(1 << 10)
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	cache.set(1, "text", now.Add(time.Minute), now)

	if _, ok := cache.get(1, now.Add(2*time.Minute)); ok {
		t.Fatalf("expected cached text to expire")
	}

	if books, bytes := cache.size(); books != 0 || bytes != 0 {
		t.Fatalf("expected expired text to be dropped, got %d books, %d bytes", books, bytes)
	}
}

func TestBookTextCacheEvictsByBytes(t *testing.T) {
	cache := newBookTextCache(100)
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	expiresAt := now.Add(time.Hour)

	cache.set(1, strings.Repeat("a", 40), expiresAt, now)
	cache.set(2, strings.Repeat("b", 40), expiresAt, now)

	if _, ok := cache.get(1, now); !ok {
		t.Fatalf("expected book 1 before the budget is exceeded")
	}

	cache.set(3, strings.Repeat("c", 40), expiresAt, now)

	if _, ok := cache.get(2, now); ok {
		t.Fatalf("expected least recently used book 2 to be dropped")
	}

	for _, id := range []int{1, 3} {
		if _, ok := cache.get(id, now); !ok {
			t.Fatalf("expected book %d to stay cached", id)
		}
	}

	if _, bytes := cache.size(); bytes != 80 {
		t.Fatalf("expected 80 cached bytes, got %d", bytes)
	}
}

func TestBookTextCacheSkipsOversizedText(t *testing.T) {
	cache := newBookTextCache(10)
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	cache.set(1, "short", now.Add(time.Hour), now)
	cache.set(2, strings.Repeat("x", 11), now.Add(time.Hour), now)

	if _, ok := cache.get(2, now); ok {
		t.Fatalf("expected text over the budget not to be cached")
	}

	if _, ok := cache.get(1, now); !ok {
		t.Fatalf("expected an oversized text not to evict others")
	}
}

func TestBookTextCacheReplaceUpdatesSize(t *testing.T) {
	cache := newBookTextCache(100)
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	cache.set(1, strings.Repeat("a", 60), now.Add(time.Hour), now)
	cache.set(1, strings.Repeat("b", 10), now.Add(time.Hour), now)

	if books, bytes := cache.size(); books != 1 || bytes != 10 {
		t.Fatalf("unexpected size after replace: %d books, %d bytes", books, bytes)
	}
}

func TestBookTextCacheDisabled(t *testing.T) {
	cache := newBookTextCache(0)
	cache.set(1, "text", time.Now().Add(time.Hour), time.Now())

	if _, ok := cache.get(1, time.Now()); ok {
		t.Fatalf("expected disabled cache to miss")
	}
}
