package worker

import (
	"context"
	"testing"
	"time"
)

func TestLimiter_AllowWithinBurst(t *testing.T) {
	l := NewLimiter(1, 3)

	allowed := 0
	for i := 0; i < 5; i++ {
		if l.Allow() {
			allowed++
		}
	}

	if allowed != 3 {
		t.Errorf("expected burst of 3 immediate requests, got %d", allowed)
	}
}

func TestLimiter_DefaultBurst(t *testing.T) {
	l := NewLimiter(10, 0)

	allowed := 0
	for i := 0; i < 10; i++ {
		if l.Allow() {
			allowed++
		}
	}

	if allowed != 5 {
		t.Errorf("expected default burst of 5, got %d", allowed)
	}
}

func TestLimiter_WaitRespectsContext(t *testing.T) {
	l := NewLimiter(0.1, 1)

	// Drain the bucket.
	if !l.Allow() {
		t.Fatal("expected first request to be allowed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx); err == nil {
		t.Error("expected Wait to fail once the context deadline passed")
	}
}

func TestLimiter_WaitSucceeds(t *testing.T) {
	l := NewLimiter(100, 1)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for i := 0; i < 3; i++ {
		if err := l.Wait(ctx); err != nil {
			t.Fatalf("unexpected error on request %d: %v", i, err)
		}
	}
}
