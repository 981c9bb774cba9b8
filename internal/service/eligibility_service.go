package service

import (
	"context"
	"fmt"
	"time"

	"solver-matching-engine/internal/core/domain"
	"solver-matching-engine/internal/core/ports"
	"solver-matching-engine/pkg/apperror"
)

// EligibilityService implements ports.Eligibility. Payment-level checks are
// evaluated exactly once per matching attempt against a fresh ledger read;
// solver-level checks consult the registry's monthly-limit view.
type EligibilityService struct {
	ledger      ports.LedgerReader
	gracePeriod time.Duration
}

// NewEligibilityService creates an EligibilityService. gracePeriod is the
// expiry headroom below which a payment is skipped to avoid racing on-chain
// expiry (120s in production).
func NewEligibilityService(ledger ports.LedgerReader, gracePeriod time.Duration) *EligibilityService {
	return &EligibilityService{
		ledger:      ledger,
		gracePeriod: gracePeriod,
	}
}

// PaymentMatchable returns nil iff the payment can still be assigned a
// solver. Returns a MATCH_001 error with the specific reason otherwise.
func (s *EligibilityService) PaymentMatchable(payment *domain.Payment, now time.Time) error {
	if payment.Status != domain.PaymentStatusPending {
		return apperror.ErrNotMatchable(fmt.Sprintf("status is %s", payment.Status))
	}
	if payment.IsAssigned() {
		return apperror.ErrNotMatchable(fmt.Sprintf("solver %s already assigned", payment.AssignedSolver))
	}
	if payment.ExpiresWithin(now, s.gracePeriod) {
		return apperror.ErrNotMatchable(fmt.Sprintf("expires within %s", s.gracePeriod))
	}
	return nil
}

// SolverEligible reports whether the solver may be considered for a payment
// of fiatAmount: it must be active and adding the amount must stay within
// its monthly volume cap.
func (s *EligibilityService) SolverEligible(ctx context.Context, solver *domain.Solver, fiatAmount int64) (bool, error) {
	if !solver.IsActive {
		return false, nil
	}
	within, err := s.ledger.CheckMonthlyLimit(ctx, solver.Address, fiatAmount)
	if err != nil {
		return false, apperror.ErrLedgerRead("checkMonthlyLimit", err)
	}
	return within, nil
}
