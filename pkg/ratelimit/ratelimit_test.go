package ratelimit

import (
	"testing"
	"time"
)

func TestAllowUpToLimit(t *testing.T) {
	l := NewSlidingWindow(3, time.Hour)

	for i := 0; i < 3; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if l.Allow("1.2.3.4") {
		t.Error("request over the limit should be denied")
	}
}

func TestKeysAreIndependent(t *testing.T) {
	l := NewSlidingWindow(1, time.Hour)

	if !l.Allow("a") {
		t.Fatal("first request for a should be allowed")
	}
	if l.Allow("a") {
		t.Error("second request for a should be denied")
	}
	if !l.Allow("b") {
		t.Error("b should not be affected by a's usage")
	}
}

func TestWindowExpiry(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := NewSlidingWindow(2, 15*time.Minute)
	l.now = func() time.Time { return current }

	l.Allow("k")
	l.Allow("k")
	if l.Allow("k") {
		t.Fatal("third request inside the window should be denied")
	}

	// Step just past the window; both earlier timestamps fall out.
	current = current.Add(15*time.Minute + time.Second)
	if !l.Allow("k") {
		t.Error("request after the window expired should be allowed")
	}
}

func TestDeniedRequestsDoNotExtendWindow(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	l := NewSlidingWindow(1, 10*time.Minute)
	l.now = func() time.Time { return current }

	l.Allow("k")

	current = current.Add(9 * time.Minute)
	if l.Allow("k") {
		t.Fatal("request inside the window should be denied")
	}

	// Only the original allowed request counts against the window.
	current = current.Add(2 * time.Minute)
	if !l.Allow("k") {
		t.Error("denied attempts must not reset the window")
	}
}
