package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// MatchGuard implements ports.MatchGuard using Redis SET NX. The claim is
// shared across engine replicas pointed at the same Redis, so only one
// replica runs a matching attempt for a given payment at a time.
type MatchGuard struct {
	client *goredis.Client
	prefix string
}

// NewMatchGuard creates a Redis-backed match guard.
func NewMatchGuard(client *goredis.Client) *MatchGuard {
	return &MatchGuard{
		client: client,
		prefix: "match:",
	}
}

// TryAcquire atomically claims the payment if unclaimed. Returns true on a
// fresh claim, false when another attempt already holds it. The TTL bounds
// the claim if the holder dies without releasing.
func (g *MatchGuard) TryAcquire(ctx context.Context, paymentID string, ttl time.Duration) (bool, error) {
	key := g.prefix + paymentID
	result, err := g.client.SetArgs(ctx, key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists, another attempt holds the claim
			return false, nil
		}
		return false, fmt.Errorf("redis match claim: %w", err)
	}
	return result == "OK", nil
}

// Release frees the claim after the attempt completes.
func (g *MatchGuard) Release(ctx context.Context, paymentID string) error {
	if err := g.client.Del(ctx, g.prefix+paymentID).Err(); err != nil {
		return fmt.Errorf("redis match release: %w", err)
	}
	return nil
}
