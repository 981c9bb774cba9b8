package ports

import (
	"context"
	"time"

	"solver-matching-engine/internal/core/domain"
)

// LedgerReader exposes the read surface of the escrow ledger (payment
// factory + solver registry contracts). All calls are pure reads and are
// never retried by the matching engine.
type LedgerReader interface {
	// GetPayment fetches a payment record by its 32-byte hex identifier.
	// Returns apperror.ErrNotFound for the zero record.
	GetPayment(ctx context.Context, paymentID string) (*domain.Payment, error)
	// GetActiveSolvers returns the addresses of currently active solvers,
	// in registry enumeration order.
	GetActiveSolvers(ctx context.Context) ([]string, error)
	// GetSolver fetches a solver record by address.
	GetSolver(ctx context.Context, address string) (*domain.Solver, error)
	// IsActiveSolver reports whether the solver is currently active.
	IsActiveSolver(ctx context.Context, address string) (bool, error)
	// CheckMonthlyLimit reports whether adding fiatAmount to the solver's
	// current month volume stays within its monthly cap.
	CheckMonthlyLimit(ctx context.Context, address string, fiatAmount int64) (bool, error)
}

// LedgerWriter exposes the single mutating call the matching engine makes.
type LedgerWriter interface {
	// AssignSolver submits the Pending -> Matched transition and waits for
	// inclusion. The call is NOT idempotent: callers must avoid double
	// submission for the same payment. The contract's own status guard is
	// the final arbiter against concurrent assignment across processes.
	AssignSolver(ctx context.Context, paymentID, solver string) (*domain.TxReceipt, error)
}

// LedgerClient is the full read/write contract surface.
type LedgerClient interface {
	LedgerReader
	LedgerWriter
}

// Subscription is a handle on an active payment-creation subscription.
type Subscription interface {
	// Unsubscribe cancels the subscription and closes Err.
	Unsubscribe()
	// Err yields at most one terminal subscription failure.
	Err() <-chan error
}

// PaymentStream delivers payment-creation notifications. Delivery is
// at-least-once; consumers must tolerate duplicates and reordering.
type PaymentStream interface {
	SubscribePaymentCreated(ctx context.Context, sink chan<- domain.PaymentCreatedEvent) (Subscription, error)
}

// MatchGuard is the per-payment dedup gate held around a matching attempt,
// absorbing rapid duplicate notifications for the same payment.
type MatchGuard interface {
	// TryAcquire claims the payment for matching. Returns false if another
	// attempt already holds it. The ttl bounds the claim if the holder dies
	// without releasing.
	TryAcquire(ctx context.Context, paymentID string, ttl time.Duration) (bool, error)
	// Release frees the claim after the attempt completes.
	Release(ctx context.Context, paymentID string) error
}
