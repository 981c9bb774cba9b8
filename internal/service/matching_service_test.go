package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"solver-matching-engine/internal/core/domain"
	"solver-matching-engine/internal/core/ports/mocks"
	"solver-matching-engine/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testRetryAttempts  = 3
	testRetryBackoff   = 10 * time.Millisecond
	testAttemptTimeout = time.Second
)

type matcherTestDeps struct {
	svc    *MatchingService
	ledger *mocks.MockLedgerClient
	ctrl   *gomock.Controller
}

func setupMatcher(t *testing.T) *matcherTestDeps {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockLedgerClient(ctrl)
	svc := NewMatchingService(
		ledger,
		NewEligibilityService(ledger, gracePeriod),
		NewScoringService(),
		testRetryAttempts,
		testRetryBackoff,
		testAttemptTimeout,
		zerolog.Nop(),
	)
	return &matcherTestDeps{svc: svc, ledger: ledger, ctrl: ctrl}
}

func matchablePayment() *domain.Payment {
	return &domain.Payment{
		ID:         "0xp1",
		Payer:      "0xuser",
		Region:     "Delhi",
		AmountFiat: 1000,
		Status:     domain.PaymentStatusPending,
		CreatedAt:  time.Now(),
		ExpiresAt:  time.Now().Add(time.Hour),
	}
}

func delhiSolver(addr string) *domain.Solver {
	return &domain.Solver{
		Address:            addr,
		Region:             "Delhi",
		IsActive:           true,
		SuccessfulPayments: 18,
		FailedPayments:     2,
		FeeBasisPoints:     75,
		TotalVolume:        dec("500000"),
	}
}

// ==================== MatchPayment: no-match paths ====================

func TestMatchPayment_AlreadyMatched_NoWrite(t *testing.T) {
	d := setupMatcher(t)
	defer d.ctrl.Finish()

	p := matchablePayment()
	p.Status = domain.PaymentStatusMatched
	p.AssignedSolver = "0xsomeone"

	d.ledger.EXPECT().GetPayment(gomock.Any(), "0xp1").Return(p, nil)
	// No GetActiveSolvers, no AssignSolver: not matchable short-circuits.

	result, err := d.svc.MatchPayment(context.Background(), "0xp1")
	require.NoError(t, err)
	assert.False(t, result.Matched)
	assert.Contains(t, result.Reason, "MATCHED")
}

func TestMatchPayment_AssignedButPending_NoWrite(t *testing.T) {
	d := setupMatcher(t)
	defer d.ctrl.Finish()

	p := matchablePayment()
	p.AssignedSolver = "0xsomeone"

	d.ledger.EXPECT().GetPayment(gomock.Any(), "0xp1").Return(p, nil)

	result, err := d.svc.MatchPayment(context.Background(), "0xp1")
	require.NoError(t, err)
	assert.False(t, result.Matched)
}

func TestMatchPayment_ExpiringWithinGrace_NoWrite(t *testing.T) {
	d := setupMatcher(t)
	defer d.ctrl.Finish()

	p := matchablePayment()
	p.ExpiresAt = time.Now().Add(gracePeriod - time.Second)

	d.ledger.EXPECT().GetPayment(gomock.Any(), "0xp1").Return(p, nil)

	result, err := d.svc.MatchPayment(context.Background(), "0xp1")
	require.NoError(t, err)
	assert.False(t, result.Matched)
}

func TestMatchPayment_NoActiveSolvers_NoWrite(t *testing.T) {
	d := setupMatcher(t)
	defer d.ctrl.Finish()

	d.ledger.EXPECT().GetPayment(gomock.Any(), "0xp1").Return(matchablePayment(), nil)
	d.ledger.EXPECT().GetActiveSolvers(gomock.Any()).Return(nil, nil)

	result, err := d.svc.MatchPayment(context.Background(), "0xp1")
	require.NoError(t, err)
	assert.False(t, result.Matched)
	assert.Equal(t, "no active solvers", result.Reason)
}

func TestMatchPayment_LoneSolverOverMonthlyLimit_NoWrite(t *testing.T) {
	d := setupMatcher(t)
	defer d.ctrl.Finish()

	s1 := delhiSolver("0xs1")

	d.ledger.EXPECT().GetPayment(gomock.Any(), "0xp1").Return(matchablePayment(), nil)
	d.ledger.EXPECT().GetActiveSolvers(gomock.Any()).Return([]string{"0xs1"}, nil)
	d.ledger.EXPECT().GetSolver(gomock.Any(), "0xs1").Return(s1, nil)
	d.ledger.EXPECT().CheckMonthlyLimit(gomock.Any(), "0xs1", int64(1000)).Return(false, nil)

	result, err := d.svc.MatchPayment(context.Background(), "0xp1")
	require.NoError(t, err)
	assert.False(t, result.Matched)
}

// A solver failing the monthly-limit check is never selected, even when its
// raw score would be the numeric maximum among all candidates.
func TestMatchPayment_OverLimitSolver_NeverSelected(t *testing.T) {
	d := setupMatcher(t)
	defer d.ctrl.Finish()

	best := delhiSolver("0xbest") // would score highest
	best.SuccessfulPayments = 100
	best.FailedPayments = 0
	best.FeeBasisPoints = 0
	best.TotalVolume = dec("5000000")

	modest := delhiSolver("0xmodest")

	d.ledger.EXPECT().GetPayment(gomock.Any(), "0xp1").Return(matchablePayment(), nil)
	d.ledger.EXPECT().GetActiveSolvers(gomock.Any()).Return([]string{"0xbest", "0xmodest"}, nil)
	d.ledger.EXPECT().GetSolver(gomock.Any(), "0xbest").Return(best, nil)
	d.ledger.EXPECT().GetSolver(gomock.Any(), "0xmodest").Return(modest, nil)
	d.ledger.EXPECT().CheckMonthlyLimit(gomock.Any(), "0xbest", int64(1000)).Return(false, nil)
	d.ledger.EXPECT().CheckMonthlyLimit(gomock.Any(), "0xmodest", int64(1000)).Return(true, nil)
	d.ledger.EXPECT().AssignSolver(gomock.Any(), "0xp1", "0xmodest").
		Return(&domain.TxReceipt{TxHash: "0xtx", BlockNumber: 7}, nil)

	result, err := d.svc.MatchPayment(context.Background(), "0xp1")
	require.NoError(t, err)
	assert.True(t, result.Matched)
	assert.Equal(t, "0xmodest", result.Solver)
}

// ==================== MatchPayment: selection ====================

// Region match dominates: the local solver with a slightly worse record wins
// over the remote solver with better success rate, fee, and volume.
func TestMatchPayment_SelectsRegionalSolver(t *testing.T) {
	d := setupMatcher(t)
	defer d.ctrl.Finish()

	s1 := delhiSolver("0xs1") // Delhi, 90%, 75bps, 500k -> 87
	s2 := &domain.Solver{     // Mumbai, 95%, 50bps, 2M -> 77
		Address:            "0xs2",
		Region:             "Mumbai",
		IsActive:           true,
		SuccessfulPayments: 19,
		FailedPayments:     1,
		FeeBasisPoints:     50,
		TotalVolume:        dec("2000000"),
	}

	d.ledger.EXPECT().GetPayment(gomock.Any(), "0xp1").Return(matchablePayment(), nil)
	d.ledger.EXPECT().GetActiveSolvers(gomock.Any()).Return([]string{"0xs1", "0xs2"}, nil)
	d.ledger.EXPECT().GetSolver(gomock.Any(), "0xs1").Return(s1, nil)
	d.ledger.EXPECT().GetSolver(gomock.Any(), "0xs2").Return(s2, nil)
	d.ledger.EXPECT().CheckMonthlyLimit(gomock.Any(), "0xs1", int64(1000)).Return(true, nil)
	d.ledger.EXPECT().CheckMonthlyLimit(gomock.Any(), "0xs2", int64(1000)).Return(true, nil)
	d.ledger.EXPECT().AssignSolver(gomock.Any(), "0xp1", "0xs1").
		Return(&domain.TxReceipt{TxHash: "0xtx", BlockNumber: 42}, nil)

	result, err := d.svc.MatchPayment(context.Background(), "0xp1")
	require.NoError(t, err)
	assert.True(t, result.Matched)
	assert.Equal(t, "0xs1", result.Solver)
	assert.True(t, result.Score.Equal(dec("87")), "winning score %s", result.Score)
	require.NotNil(t, result.Receipt)
	assert.Equal(t, uint64(42), result.Receipt.BlockNumber)
}

// Identical scores: the solver enumerated first by the registry wins.
func TestMatchPayment_TieBreak_FirstSeenOrder(t *testing.T) {
	d := setupMatcher(t)
	defer d.ctrl.Finish()

	first := delhiSolver("0xfirst")
	second := delhiSolver("0xsecond")

	d.ledger.EXPECT().GetPayment(gomock.Any(), "0xp1").Return(matchablePayment(), nil)
	d.ledger.EXPECT().GetActiveSolvers(gomock.Any()).Return([]string{"0xfirst", "0xsecond"}, nil)
	d.ledger.EXPECT().GetSolver(gomock.Any(), "0xfirst").Return(first, nil)
	d.ledger.EXPECT().GetSolver(gomock.Any(), "0xsecond").Return(second, nil)
	d.ledger.EXPECT().CheckMonthlyLimit(gomock.Any(), gomock.Any(), int64(1000)).Return(true, nil).Times(2)
	d.ledger.EXPECT().AssignSolver(gomock.Any(), "0xp1", "0xfirst").
		Return(&domain.TxReceipt{TxHash: "0xtx", BlockNumber: 1}, nil)

	result, err := d.svc.MatchPayment(context.Background(), "0xp1")
	require.NoError(t, err)
	assert.Equal(t, "0xfirst", result.Solver)
}

// ==================== MatchPayment: retries ====================

// Two write failures then success: three submissions total, backoff between
// them, and the caller still gets the winning solver.
func TestMatchPayment_RetriesThenSucceeds(t *testing.T) {
	d := setupMatcher(t)
	defer d.ctrl.Finish()

	s1 := delhiSolver("0xs1")

	d.ledger.EXPECT().GetPayment(gomock.Any(), "0xp1").Return(matchablePayment(), nil)
	d.ledger.EXPECT().GetActiveSolvers(gomock.Any()).Return([]string{"0xs1"}, nil)
	d.ledger.EXPECT().GetSolver(gomock.Any(), "0xs1").Return(s1, nil)
	d.ledger.EXPECT().CheckMonthlyLimit(gomock.Any(), "0xs1", int64(1000)).Return(true, nil)

	gomock.InOrder(
		d.ledger.EXPECT().AssignSolver(gomock.Any(), "0xp1", "0xs1").Return(nil, fmt.Errorf("nonce too low")),
		d.ledger.EXPECT().AssignSolver(gomock.Any(), "0xp1", "0xs1").Return(nil, fmt.Errorf("nonce too low")),
		d.ledger.EXPECT().AssignSolver(gomock.Any(), "0xp1", "0xs1").Return(&domain.TxReceipt{TxHash: "0xtx", BlockNumber: 9}, nil),
	)

	start := time.Now()
	result, err := d.svc.MatchPayment(context.Background(), "0xp1")
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.True(t, result.Matched)
	assert.Equal(t, "0xs1", result.Solver)
	assert.GreaterOrEqual(t, elapsed, 2*testRetryBackoff, "two backoff waits expected before the third attempt")
}

func TestMatchPayment_RetriesExhausted_SurfacesLastError(t *testing.T) {
	d := setupMatcher(t)
	defer d.ctrl.Finish()

	s1 := delhiSolver("0xs1")

	d.ledger.EXPECT().GetPayment(gomock.Any(), "0xp1").Return(matchablePayment(), nil)
	d.ledger.EXPECT().GetActiveSolvers(gomock.Any()).Return([]string{"0xs1"}, nil)
	d.ledger.EXPECT().GetSolver(gomock.Any(), "0xs1").Return(s1, nil)
	d.ledger.EXPECT().CheckMonthlyLimit(gomock.Any(), "0xs1", int64(1000)).Return(true, nil)
	d.ledger.EXPECT().AssignSolver(gomock.Any(), "0xp1", "0xs1").
		Return(nil, fmt.Errorf("gas estimation failed")).
		Times(testRetryAttempts)

	result, err := d.svc.MatchPayment(context.Background(), "0xp1")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "LED_002")
	assert.Contains(t, err.Error(), "gas estimation failed")
}

// ==================== MatchPayment: read failures ====================

func TestMatchPayment_GetPaymentFails(t *testing.T) {
	d := setupMatcher(t)
	defer d.ctrl.Finish()

	d.ledger.EXPECT().GetPayment(gomock.Any(), "0xp1").Return(nil, fmt.Errorf("rpc unavailable"))

	result, err := d.svc.MatchPayment(context.Background(), "0xp1")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "LED_001")
}

func TestMatchPayment_GetSolverFails_FailsAttempt(t *testing.T) {
	d := setupMatcher(t)
	defer d.ctrl.Finish()

	s1 := delhiSolver("0xs1")

	d.ledger.EXPECT().GetPayment(gomock.Any(), "0xp1").Return(matchablePayment(), nil)
	d.ledger.EXPECT().GetActiveSolvers(gomock.Any()).Return([]string{"0xs1", "0xs2"}, nil)
	d.ledger.EXPECT().GetSolver(gomock.Any(), "0xs1").Return(s1, nil)
	d.ledger.EXPECT().GetSolver(gomock.Any(), "0xs2").Return(nil, fmt.Errorf("rpc unavailable"))
	d.ledger.EXPECT().CheckMonthlyLimit(gomock.Any(), "0xs1", int64(1000)).Return(true, nil).MaxTimes(1)

	result, err := d.svc.MatchPayment(context.Background(), "0xp1")
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestMatchPayment_NotFound(t *testing.T) {
	d := setupMatcher(t)
	defer d.ctrl.Finish()

	d.ledger.EXPECT().GetPayment(gomock.Any(), "0xmissing").Return(nil, apperror.ErrNotFound("payment"))

	result, err := d.svc.MatchPayment(context.Background(), "0xmissing")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperror.IsNotFound(err))
}

// ==================== Candidates (dry run) ====================

func TestCandidates_ReturnsBreakdown_NoWrite(t *testing.T) {
	d := setupMatcher(t)
	defer d.ctrl.Finish()

	s1 := delhiSolver("0xs1")
	over := delhiSolver("0xover")

	d.ledger.EXPECT().GetPayment(gomock.Any(), "0xp1").Return(matchablePayment(), nil)
	d.ledger.EXPECT().GetActiveSolvers(gomock.Any()).Return([]string{"0xs1", "0xover"}, nil)
	d.ledger.EXPECT().GetSolver(gomock.Any(), "0xs1").Return(s1, nil)
	d.ledger.EXPECT().GetSolver(gomock.Any(), "0xover").Return(over, nil)
	d.ledger.EXPECT().CheckMonthlyLimit(gomock.Any(), "0xs1", int64(1000)).Return(true, nil)
	d.ledger.EXPECT().CheckMonthlyLimit(gomock.Any(), "0xover", int64(1000)).Return(false, nil)

	scores, err := d.svc.Candidates(context.Background(), "0xp1")
	require.NoError(t, err)
	require.Len(t, scores, 2)

	assert.Equal(t, "0xs1", scores[0].Solver)
	assert.True(t, scores[0].Eligible)
	assert.True(t, scores[0].Score.Equal(dec("87")))
	assert.True(t, scores[0].RegionMatch)

	assert.Equal(t, "0xover", scores[1].Solver)
	assert.False(t, scores[1].Eligible)
	assert.True(t, scores[1].Score.Equal(dec("-1")))
}

func TestCandidates_NotMatchable(t *testing.T) {
	d := setupMatcher(t)
	defer d.ctrl.Finish()

	p := matchablePayment()
	p.Status = domain.PaymentStatusCompleted

	d.ledger.EXPECT().GetPayment(gomock.Any(), "0xp1").Return(p, nil)

	scores, err := d.svc.Candidates(context.Background(), "0xp1")
	require.Error(t, err)
	assert.Nil(t, scores)
	assert.True(t, apperror.IsNoMatch(err))
}
