package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestMemoryGetSet(t *testing.T) {
	c := NewMemory()

	if _, ok := c.Get("missing"); ok {
		t.Fatalf("expected miss for unknown key")
	}

	c.Set("k", "v", time.Minute)
	got, ok := c.Get("k")
	if !ok {
		t.Fatalf("expected hit after set")
	}
	if got != "v" {
		t.Fatalf("got %q, want %q", got, "v")
	}
}

func TestMemoryExpiry(t *testing.T) {
	c := NewMemory()
	c.Set("k", "v", 10*time.Millisecond)

	if _, ok := c.Get("k"); !ok {
		t.Fatalf("expected hit before expiry")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected miss after expiry")
	}
	if c.Len() != 0 {
		t.Fatalf("expected lazy delete on expired read, have %d entries", c.Len())
	}
}

func TestMemoryZeroTTLNotStored(t *testing.T) {
	c := NewMemory()
	c.Set("k", "v", 0)
	if _, ok := c.Get("k"); ok {
		t.Fatalf("ttl<=0 must not cache")
	}
}

func TestMemoryLastWriteWins(t *testing.T) {
	c := NewMemory()
	c.Set("k", "first", time.Minute)
	c.Set("k", "second", time.Minute)
	got, _ := c.Get("k")
	if got != "second" {
		t.Fatalf("got %q, want %q", got, "second")
	}
}

func TestMemoryPrune(t *testing.T) {
	c := NewMemory()
	c.Set("old", "v", time.Millisecond)
	c.Set("live", "v", time.Minute)
	time.Sleep(5 * time.Millisecond)

	if dropped := c.Prune(); dropped != 1 {
		t.Fatalf("dropped %d entries, want 1", dropped)
	}
	if c.Len() != 1 {
		t.Fatalf("want 1 live entry, have %d", c.Len())
	}
	if _, ok := c.Get("live"); !ok {
		t.Fatalf("live entry must survive prune")
	}
}

func TestMemoryConcurrentAccess(t *testing.T) {
	c := NewMemory()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", n%4)
			for j := 0; j < 100; j++ {
				c.Set(key, "v", time.Minute)
				c.Get(key)
				c.Prune()
			}
		}(i)
	}
	wg.Wait()
}

func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		platform string
		parts    []string
		want     string
	}{
		{name: "no parts", platform: "mdn", want: "mdn"},
		{name: "single", platform: "npm", parts: []string{"lodash"}, want: "npm:lodash"},
		{name: "multiple", platform: "github", parts: []string{"http client", "go", "5"}, want: "github:http client|go|5"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Key(tc.platform, tc.parts...); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
