package ports

import (
	"context"
	"time"

	"solver-matching-engine/internal/core/domain"
)

// --- Service Ports (Business Logic) ---

// Scorer computes the composite desirability score for a (solver, payment)
// pair. Pure and deterministic: the same inputs always yield the same score.
type Scorer interface {
	Score(solver *domain.Solver, payment *domain.Payment) domain.SolverScore
}

// Eligibility gates which payments are matchable and which solvers may be
// considered for them.
type Eligibility interface {
	// PaymentMatchable returns nil iff the payment can still be matched:
	// status Pending, no solver assigned, and expiry at least a grace
	// period away. A non-nil error carries the typed reason.
	PaymentMatchable(payment *domain.Payment, now time.Time) error
	// SolverEligible reports whether the solver may take on fiatAmount:
	// active and within its monthly volume cap.
	SolverEligible(ctx context.Context, solver *domain.Solver, fiatAmount int64) (bool, error)
}

// Matcher runs one matching attempt for a payment: validate, enumerate
// active solvers, filter + score concurrently, pick the winner and commit
// the assignment on the ledger with bounded retries.
type Matcher interface {
	MatchPayment(ctx context.Context, paymentID string) (*domain.MatchResult, error)
	// Candidates evaluates eligibility and scores for the current active
	// solver set without touching the write path (dry run).
	Candidates(ctx context.Context, paymentID string) ([]domain.SolverScore, error)
}
