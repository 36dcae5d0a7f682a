package ratelimit

import (
	"testing"
	"time"
)

func TestAllowExhaustsCapacity(t *testing.T) {
	l := New()
	for i := 0; i < 2; i++ {
		if !l.Allow("client", 2, 0) {
			t.Fatalf("request %d denied within capacity", i+1)
		}
	}
	if l.Allow("client", 2, 0) {
		t.Fatalf("request allowed past capacity with no refill")
	}
}

func TestAllowKeysAreIndependent(t *testing.T) {
	l := New()
	if !l.Allow("a", 1, 0) {
		t.Fatalf("first key denied")
	}
	if l.Allow("a", 1, 0) {
		t.Fatalf("first key allowed past capacity")
	}
	if !l.Allow("b", 1, 0) {
		t.Fatalf("second key should have its own bucket")
	}
}

func TestAllowRefills(t *testing.T) {
	l := New()
	if !l.Allow("client", 1, 100) {
		t.Fatalf("initial request denied")
	}
	if l.Allow("client", 1, 100) {
		t.Fatalf("bucket should be empty immediately after draining")
	}
	time.Sleep(50 * time.Millisecond)
	if !l.Allow("client", 1, 100) {
		t.Fatalf("bucket did not refill at 100 tokens/s")
	}
}

func TestTokensCappedAtCapacity(t *testing.T) {
	l := New()
	l.Allow("client", 2, 100)
	time.Sleep(50 * time.Millisecond)
	// The idle period refills well past capacity; the cap means only two
	// requests fit through the burst.
	allowed := 0
	for i := 0; i < 5; i++ {
		if l.Allow("client", 2, 100) {
			allowed++
		}
	}
	if allowed != 2 {
		t.Fatalf("got %d requests through, want 2", allowed)
	}
}
