package ratelimit

import (
	"context"
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	window   time.Duration
	lastSeen time.Time
}

// MemoryStore keeps a token bucket per policy and client. The bucket holds
// Limit tokens and refills over Window, so a burst of Limit requests is
// followed by a steady Limit/Window rate.
type MemoryStore struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	lastSweep time.Time
	now       func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		clients: make(map[string]*clientLimiter),
		now:     time.Now,
	}
}

func (s *MemoryStore) Take(_ context.Context, policy Policy, key string) (Decision, error) {
	now := s.now()
	every := policy.Window / time.Duration(max(policy.Limit, 1))

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep(now, policy.Window)

	id := policy.Name + ":" + key
	client, ok := s.clients[id]
	if !ok {
		client = &clientLimiter{
			limiter: rate.NewLimiter(rate.Every(every), policy.Limit),
			window:  policy.Window,
		}
		s.clients[id] = client
	}
	client.lastSeen = now

	allowed := client.limiter.AllowN(now, 1)
	tokens := client.limiter.TokensAt(now)

	missing := float64(policy.Limit) - tokens
	resetAt := now.Add(time.Duration(math.Ceil(missing * float64(every))))

	return Decision{
		Allowed:   allowed,
		Limit:     policy.Limit,
		Remaining: max(int(math.Floor(tokens)), 0),
		ResetAt:   resetAt,
	}, nil
}

// sweep drops clients idle for longer than their own policy window. Such a
// bucket has refilled completely, so recreating it later changes nothing.
func (s *MemoryStore) sweep(now time.Time, interval time.Duration) {
	if now.Sub(s.lastSweep) < interval {
		return
	}
	for id, client := range s.clients {
		if now.Sub(client.lastSeen) > client.window {
			delete(s.clients, id)
		}
	}
	s.lastSweep = now
}

// Len reports the number of tracked clients
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}
