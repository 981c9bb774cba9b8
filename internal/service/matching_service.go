package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"solver-matching-engine/internal/core/domain"
	"solver-matching-engine/internal/core/ports"
	"solver-matching-engine/internal/metrics"
	"solver-matching-engine/pkg/apperror"

	"github.com/rs/zerolog"
)

// MatchingService implements ports.Matcher: one matching attempt per call,
// no state carried across attempts. All payment and solver records are read
// fresh from the ledger.
type MatchingService struct {
	ledger      ports.LedgerClient
	eligibility ports.Eligibility
	scorer      ports.Scorer

	retryAttempts  int
	retryBackoff   time.Duration
	attemptTimeout time.Duration

	log zerolog.Logger
}

// NewMatchingService creates a MatchingService. retryAttempts is the total
// number of assignSolver submissions (3 in production), retryBackoff the
// fixed delay between them, attemptTimeout the per-submission deadline
// covering both broadcast and inclusion wait.
func NewMatchingService(
	ledger ports.LedgerClient,
	eligibility ports.Eligibility,
	scorer ports.Scorer,
	retryAttempts int,
	retryBackoff time.Duration,
	attemptTimeout time.Duration,
	log zerolog.Logger,
) *MatchingService {
	return &MatchingService{
		ledger:         ledger,
		eligibility:    eligibility,
		scorer:         scorer,
		retryAttempts:  retryAttempts,
		retryBackoff:   retryBackoff,
		attemptTimeout: attemptTimeout,
		log:            log,
	}
}

// MatchPayment runs one matching attempt for paymentID.
//
// Expected no-match conditions (payment not matchable, no eligible solvers)
// return a MatchResult with Matched == false and a nil error; the write path
// is never touched for them. Ledger read failures and write failures after
// the retry budget return a non-nil error.
func (s *MatchingService) MatchPayment(ctx context.Context, paymentID string) (*domain.MatchResult, error) {
	start := time.Now()
	result, err := s.matchPayment(ctx, paymentID)
	metrics.MatchDuration.Observe(time.Since(start).Seconds())

	switch {
	case err != nil:
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == "LED_002" {
			metrics.MatchAttemptsTotal.WithLabelValues(metrics.OutcomeWriteError).Inc()
		} else {
			metrics.MatchAttemptsTotal.WithLabelValues(metrics.OutcomeReadError).Inc()
		}
	case result.Matched:
		metrics.MatchAttemptsTotal.WithLabelValues(metrics.OutcomeMatched).Inc()
	default:
		metrics.MatchAttemptsTotal.WithLabelValues(metrics.OutcomeNoMatch).Inc()
	}
	return result, err
}

func (s *MatchingService) matchPayment(ctx context.Context, paymentID string) (*domain.MatchResult, error) {
	payment, err := s.getPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if err := s.eligibility.PaymentMatchable(payment, time.Now()); err != nil {
		s.log.Warn().
			Str("payment_id", paymentID).
			Str("status", payment.Status.String()).
			Str("reason", err.Error()).
			Msg("payment not matchable, skipping")
		return domain.NoMatch(paymentID, err.Error()), nil
	}

	addresses, err := s.ledger.GetActiveSolvers(ctx)
	if err != nil {
		return nil, apperror.ErrLedgerRead("getActiveSolvers", err)
	}
	if len(addresses) == 0 {
		s.log.Warn().Str("payment_id", paymentID).Msg("no active solvers")
		return domain.NoMatch(paymentID, "no active solvers"), nil
	}

	scores, err := s.evaluateAll(ctx, addresses, payment)
	if err != nil {
		return nil, err
	}

	winner, ok := selectWinner(scores)
	if !ok {
		s.log.Warn().
			Str("payment_id", paymentID).
			Int("candidates", len(addresses)).
			Msg("no solvers eligible within monthly limits")
		return domain.NoMatch(paymentID, apperror.ErrNoEligibleSolvers().Message), nil
	}

	s.log.Info().
		Str("payment_id", paymentID).
		Str("solver", winner.Solver).
		Str("score", winner.Score.String()).
		Msg("best solver selected")

	receipt, err := s.assignWithRetry(ctx, paymentID, winner.Solver)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("payment_id", paymentID).
		Str("solver", winner.Solver).
		Str("tx_hash", receipt.TxHash).
		Uint64("block", receipt.BlockNumber).
		Msg("solver assigned")

	return &domain.MatchResult{
		PaymentID: paymentID,
		Matched:   true,
		Solver:    winner.Solver,
		Score:     winner.Score,
		Receipt:   receipt,
	}, nil
}

// Candidates evaluates the current active solver set against the payment
// without touching the write path. Used by the operational API for dry runs.
func (s *MatchingService) Candidates(ctx context.Context, paymentID string) ([]domain.SolverScore, error) {
	payment, err := s.getPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if err := s.eligibility.PaymentMatchable(payment, time.Now()); err != nil {
		return nil, err
	}

	addresses, err := s.ledger.GetActiveSolvers(ctx)
	if err != nil {
		return nil, apperror.ErrLedgerRead("getActiveSolvers", err)
	}
	return s.evaluateAll(ctx, addresses, payment)
}

func (s *MatchingService) getPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	payment, err := s.ledger.GetPayment(ctx, paymentID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, err
		}
		return nil, apperror.ErrLedgerRead("getPayment", err)
	}
	return payment, nil
}

// evaluateAll fetches, filters and scores every candidate concurrently. The
// results slice is indexed by enumeration position, so ranking order is the
// registry's first-seen order regardless of goroutine completion order. Any
// read failure fails the whole attempt.
func (s *MatchingService) evaluateAll(ctx context.Context, addresses []string, payment *domain.Payment) ([]domain.SolverScore, error) {
	scores := make([]domain.SolverScore, len(addresses))
	errs := make([]error, len(addresses))

	var wg sync.WaitGroup
	for i, addr := range addresses {
		wg.Add(1)
		go func(i int, addr string) {
			defer wg.Done()
			scores[i], errs[i] = s.evaluateOne(ctx, addr, payment)
		}(i, addr)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	metrics.CandidatesScored.Add(float64(len(addresses)))
	return scores, nil
}

func (s *MatchingService) evaluateOne(ctx context.Context, address string, payment *domain.Payment) (domain.SolverScore, error) {
	solver, err := s.ledger.GetSolver(ctx, address)
	if err != nil {
		return domain.SolverScore{}, apperror.ErrLedgerRead("getSolver", err)
	}

	eligible, err := s.eligibility.SolverEligible(ctx, solver, payment.AmountFiat)
	if err != nil {
		return domain.SolverScore{}, err
	}
	if !eligible {
		s.log.Debug().
			Str("payment_id", payment.ID).
			Str("solver", address).
			Msg("solver excluded by eligibility")
		return domain.SolverScore{
			Solver:       address,
			Score:        domain.ExcludedScore,
			Eligible:     false,
			ExcludReason: "inactive or over monthly limit",
		}, nil
	}

	return s.scorer.Score(solver, payment), nil
}

// selectWinner picks the eligible candidate with the strictly maximum score.
// Ties keep the earlier candidate in enumeration order.
func selectWinner(scores []domain.SolverScore) (domain.SolverScore, bool) {
	var best domain.SolverScore
	found := false
	for _, sc := range scores {
		if !sc.Eligible || sc.Score.IsNegative() {
			continue
		}
		if !found || sc.Score.GreaterThan(best.Score) {
			best = sc
			found = true
		}
	}
	return best, found
}

// assignWithRetry submits the assignment with a fixed backoff between
// attempts and a per-attempt deadline. Only the final failure after the
// budget is exhausted is surfaced; the payment stays Pending and unassigned
// in that case, so a later trigger can safely re-attempt.
func (s *MatchingService) assignWithRetry(ctx context.Context, paymentID, solver string) (*domain.TxReceipt, error) {
	var lastErr error
	for attempt := 1; attempt <= s.retryAttempts; attempt++ {
		if attempt > 1 {
			metrics.AssignRetriesTotal.Inc()
			select {
			case <-ctx.Done():
				return nil, apperror.ErrLedgerWrite("assignSolver", ctx.Err())
			case <-time.After(s.retryBackoff):
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, s.attemptTimeout)
		receipt, err := s.ledger.AssignSolver(attemptCtx, paymentID, solver)
		cancel()
		if err == nil {
			return receipt, nil
		}

		lastErr = err
		s.log.Warn().
			Err(err).
			Str("payment_id", paymentID).
			Str("solver", solver).
			Int("attempt", attempt).
			Int("max_attempts", s.retryAttempts).
			Msg("assignSolver failed")
	}
	return nil, apperror.ErrLedgerWrite("assignSolver", lastErr)
}
