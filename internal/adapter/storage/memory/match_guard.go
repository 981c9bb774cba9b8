package memory

import (
	"context"
	"sync"
	"time"
)

// MatchGuard implements ports.MatchGuard with an in-process map, for
// single-replica deployments that run without Redis. Claims expire lazily:
// a stale entry is reclaimed on the next TryAcquire for the same payment.
type MatchGuard struct {
	mu     sync.Mutex
	claims map[string]time.Time // payment id -> claim deadline
}

func NewMatchGuard() *MatchGuard {
	return &MatchGuard{claims: make(map[string]time.Time)}
}

// TryAcquire claims the payment if unclaimed or if the previous claim's TTL
// has lapsed.
func (g *MatchGuard) TryAcquire(_ context.Context, paymentID string, ttl time.Duration) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now()
	if deadline, held := g.claims[paymentID]; held && now.Before(deadline) {
		return false, nil
	}
	g.claims[paymentID] = now.Add(ttl)
	return true, nil
}

// Release frees the claim.
func (g *MatchGuard) Release(_ context.Context, paymentID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.claims, paymentID)
	return nil
}
