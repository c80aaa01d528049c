package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreLimitsPerClient(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	policy := Policy{Name: "strict", Limit: 3, Window: time.Hour}
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		d, err := store.Take(ctx, policy, "1.2.3.4")
		if err != nil {
			t.Fatal(err)
		}
		if !d.Allowed {
			t.Fatalf("request %d denied, want allowed", i+1)
		}
		if d.Remaining != 2-i {
			t.Errorf("request %d remaining = %d, want %d", i+1, d.Remaining, 2-i)
		}
	}

	d, _ := store.Take(ctx, policy, "1.2.3.4")
	if d.Allowed {
		t.Error("fourth request allowed, want denied")
	}
	if d.Remaining != 0 {
		t.Errorf("remaining = %d, want 0", d.Remaining)
	}
	if got := d.ResetAfter(now); got <= 0 || got > 3600 {
		t.Errorf("ResetAfter() = %d, want within the window", got)
	}

	other, _ := store.Take(ctx, policy, "5.6.7.8")
	if !other.Allowed {
		t.Error("other client denied, want allowed")
	}
}

func TestMemoryStoreRefills(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	policy := Policy{Name: "strict", Limit: 2, Window: time.Minute}
	ctx := context.Background()

	store.Take(ctx, policy, "k")
	store.Take(ctx, policy, "k")
	if d, _ := store.Take(ctx, policy, "k"); d.Allowed {
		t.Fatal("third request allowed, want denied")
	}

	now = now.Add(31 * time.Second)
	if d, _ := store.Take(ctx, policy, "k"); !d.Allowed {
		t.Error("request after refill denied, want allowed")
	}
}

func TestMemoryStorePoliciesAreIndependent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	strict := Policy{Name: "strict", Limit: 1, Window: time.Hour}
	global := Policy{Name: "global", Limit: 1, Window: time.Hour}

	store.Take(ctx, strict, "k")
	if d, _ := store.Take(ctx, global, "k"); !d.Allowed {
		t.Error("global policy shares counters with strict, want independent")
	}
}

func TestMemoryStoreSweepsIdleClients(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	policy := Policy{Name: "p", Limit: 5, Window: time.Minute}
	store.Take(context.Background(), policy, "a")
	store.Take(context.Background(), policy, "b")

	now = now.Add(2 * time.Minute)
	store.Take(context.Background(), policy, "c")

	if got := store.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestDecisionResetAfter(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		resetAt time.Time
		want    int
	}{
		{now.Add(1500 * time.Millisecond), 2},
		{now.Add(time.Minute), 60},
		{now, 0},
		{now.Add(-time.Second), 0},
	}

	for _, tt := range tests {
		if got := (Decision{ResetAt: tt.resetAt}).ResetAfter(now); got != tt.want {
			t.Errorf("ResetAfter(%v) = %d, want %d", tt.resetAt.Sub(now), got, tt.want)
		}
	}
}

func TestMemoryStoreSweepKeepsLongerWindows(t *testing.T) {
	store := NewMemoryStore()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < SubmissionPolicy.Limit; i++ {
		store.Take(ctx, GlobalPolicy, "k")
		store.Take(ctx, SubmissionPolicy, "k")
	}

	// the global window elapses and triggers a sweep, the submission one has not
	now = now.Add(20 * time.Minute)
	store.Take(ctx, GlobalPolicy, "k")

	allowed := 0
	for i := 0; i < SubmissionPolicy.Limit; i++ {
		if d, _ := store.Take(ctx, SubmissionPolicy, "k"); d.Allowed {
			allowed++
		}
	}
	// 20 minutes of a 10 per hour refill is 3.33 tokens
	if allowed != 3 {
		t.Errorf("submissions allowed after 20 minutes = %d, want 3", allowed)
	}
}
