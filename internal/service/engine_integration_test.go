package service_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"solver-matching-engine/internal/adapter/storage/memory"
	"solver-matching-engine/internal/core/domain"
	"solver-matching-engine/internal/core/ports"
	"solver-matching-engine/internal/service"
	"solver-matching-engine/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inmemLedger is a LedgerClient and PaymentStream over plain maps, standing
// in for the contracts in end-to-end scenarios.
type inmemLedger struct {
	mu       sync.Mutex
	payments map[string]*domain.Payment
	solvers  map[string]*domain.Solver
	active   []string

	assignCalls int
	failAssigns int // fail this many assign calls before succeeding
	blockNumber uint64

	sinks []chan<- domain.PaymentCreatedEvent
}

func newInmemLedger() *inmemLedger {
	return &inmemLedger{
		payments:    make(map[string]*domain.Payment),
		solvers:     make(map[string]*domain.Solver),
		blockNumber: 100,
	}
}

func (l *inmemLedger) addPayment(p *domain.Payment) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.payments[p.ID] = p
}

func (l *inmemLedger) addSolver(s *domain.Solver) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.solvers[s.Address] = s
	if s.IsActive {
		l.active = append(l.active, s.Address)
	}
}

func (l *inmemLedger) GetPayment(_ context.Context, id string) (*domain.Payment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	p, ok := l.payments[id]
	if !ok {
		return nil, apperror.ErrNotFound("payment")
	}
	cp := *p
	return &cp, nil
}

func (l *inmemLedger) GetActiveSolvers(context.Context) ([]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.active...), nil
}

func (l *inmemLedger) GetSolver(_ context.Context, addr string) (*domain.Solver, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.solvers[addr]
	if !ok {
		return nil, apperror.ErrNotFound("solver")
	}
	cp := *s
	return &cp, nil
}

func (l *inmemLedger) IsActiveSolver(_ context.Context, addr string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.solvers[addr]
	return ok && s.IsActive, nil
}

func (l *inmemLedger) CheckMonthlyLimit(_ context.Context, addr string, fiatAmount int64) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.solvers[addr]
	if !ok {
		return false, apperror.ErrNotFound("solver")
	}
	return s.CurrentMonthVolume+fiatAmount <= s.MonthlyVolumeLimit, nil
}

func (l *inmemLedger) AssignSolver(_ context.Context, paymentID, solver string) (*domain.TxReceipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.assignCalls++
	if l.failAssigns > 0 {
		l.failAssigns--
		return nil, fmt.Errorf("nonce too low")
	}

	p, ok := l.payments[paymentID]
	if !ok {
		return nil, fmt.Errorf("unknown payment")
	}
	if p.Status != domain.PaymentStatusPending || p.IsAssigned() {
		return nil, fmt.Errorf("assignSolver reverted: payment not assignable")
	}
	p.AssignedSolver = solver
	p.Status = domain.PaymentStatusMatched
	l.blockNumber++
	return &domain.TxReceipt{
		TxHash:      fmt.Sprintf("0xtx%d", l.blockNumber),
		BlockNumber: l.blockNumber,
	}, nil
}

func (l *inmemLedger) assignCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.assignCalls
}

func (l *inmemLedger) assignedTo(paymentID string) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.payments[paymentID].AssignedSolver
}

type inmemSub struct{ errCh chan error }

func (s *inmemSub) Unsubscribe()      {}
func (s *inmemSub) Err() <-chan error { return s.errCh }

func (l *inmemLedger) SubscribePaymentCreated(_ context.Context, sink chan<- domain.PaymentCreatedEvent) (ports.Subscription, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sinks = append(l.sinks, sink)
	return &inmemSub{errCh: make(chan error, 1)}, nil
}

func (l *inmemLedger) emit(ev domain.PaymentCreatedEvent) {
	l.mu.Lock()
	sinks := append([]chan<- domain.PaymentCreatedEvent(nil), l.sinks...)
	l.mu.Unlock()
	for _, sink := range sinks {
		sink <- ev
	}
}

func newEngine(t *testing.T, ledger *inmemLedger) (*service.MatchingService, *service.WatcherService) {
	t.Helper()
	matcher := service.NewMatchingService(
		ledger,
		service.NewEligibilityService(ledger, 120*time.Second),
		service.NewScoringService(),
		3,
		5*time.Millisecond,
		time.Second,
		zerolog.Nop(),
	)
	watcher := service.NewWatcherService(
		ledger,
		matcher,
		memory.NewMatchGuard(),
		4,
		time.Minute,
		10*time.Millisecond,
		zerolog.Nop(),
	)
	return matcher, watcher
}

func mustDec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func pendingPaymentRecord(id, region string, fiat int64) *domain.Payment {
	return &domain.Payment{
		ID:         id,
		Payer:      "0xuser",
		AmountFiat: fiat,
		Region:     region,
		Status:     domain.PaymentStatusPending,
		CreatedAt:  time.Now(),
		ExpiresAt:  time.Now().Add(time.Hour),
	}
}

// Full path: event in, regional solver with the worse raw stats wins over
// the remote solver with better ones, ledger records the assignment.
func TestEngine_EndToEnd_RegionalSolverWins(t *testing.T) {
	ledger := newInmemLedger()
	ledger.addPayment(pendingPaymentRecord("0xp1", "Delhi", 1000))
	ledger.addSolver(&domain.Solver{
		Address: "0xs1", Region: "Delhi", IsActive: true,
		SuccessfulPayments: 18, FailedPayments: 2,
		FeeBasisPoints: 75, TotalVolume: mustDec("500000"),
		MonthlyVolumeLimit: 1_000_000,
	})
	ledger.addSolver(&domain.Solver{
		Address: "0xs2", Region: "Mumbai", IsActive: true,
		SuccessfulPayments: 19, FailedPayments: 1,
		FeeBasisPoints: 50, TotalVolume: mustDec("2000000"),
		MonthlyVolumeLimit: 1_000_000,
	})

	_, watcher := newEngine(t, ledger)
	require.NoError(t, watcher.Start(context.Background()))
	defer watcher.Stop(context.Background())

	ledger.emit(domain.PaymentCreatedEvent{PaymentID: "0xp1", Region: "Delhi", BlockNumber: 100})

	require.Eventually(t, func() bool {
		return ledger.assignedTo("0xp1") == "0xs1"
	}, 2*time.Second, 5*time.Millisecond, "regional solver should win the match")
	assert.Equal(t, 1, ledger.assignCount())
}

// Duplicate notifications for the same payment produce exactly one
// assignment: the guard absorbs the race, and even a slipped-through second
// attempt finds the payment already Matched.
func TestEngine_DuplicateEvents_SingleAssignment(t *testing.T) {
	ledger := newInmemLedger()
	ledger.addPayment(pendingPaymentRecord("0xp1", "Delhi", 1000))
	ledger.addSolver(&domain.Solver{
		Address: "0xs1", Region: "Delhi", IsActive: true,
		FeeBasisPoints: 75, TotalVolume: mustDec("500000"),
		MonthlyVolumeLimit: 1_000_000,
	})

	_, watcher := newEngine(t, ledger)
	require.NoError(t, watcher.Start(context.Background()))
	defer watcher.Stop(context.Background())

	for i := 0; i < 5; i++ {
		ledger.emit(domain.PaymentCreatedEvent{PaymentID: "0xp1", Region: "Delhi", BlockNumber: 100})
	}

	require.Eventually(t, func() bool {
		return ledger.assignedTo("0xp1") == "0xs1"
	}, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, watcher.Stop(context.Background()))
	assert.Equal(t, 1, ledger.assignCount(), "duplicates must not produce extra assignments")
}

func TestEngine_WriteRetries_EventuallyAssigns(t *testing.T) {
	ledger := newInmemLedger()
	ledger.failAssigns = 2
	ledger.addPayment(pendingPaymentRecord("0xp1", "Delhi", 1000))
	ledger.addSolver(&domain.Solver{
		Address: "0xs1", Region: "Delhi", IsActive: true,
		FeeBasisPoints: 75, TotalVolume: mustDec("500000"),
		MonthlyVolumeLimit: 1_000_000,
	})

	matcher, _ := newEngine(t, ledger)

	result, err := matcher.MatchPayment(context.Background(), "0xp1")
	require.NoError(t, err)
	assert.True(t, result.Matched)
	assert.Equal(t, "0xs1", result.Solver)
	assert.Equal(t, 3, ledger.assignCount(), "two failures then one success")
	assert.Equal(t, "0xs1", ledger.assignedTo("0xp1"))
}

func TestEngine_ExpiringPayment_NeverAssigned(t *testing.T) {
	ledger := newInmemLedger()
	p := pendingPaymentRecord("0xp1", "Delhi", 1000)
	p.ExpiresAt = time.Now().Add(60 * time.Second) // inside the 120s grace
	ledger.addPayment(p)
	ledger.addSolver(&domain.Solver{
		Address: "0xs1", Region: "Delhi", IsActive: true,
		FeeBasisPoints: 75, TotalVolume: mustDec("500000"),
		MonthlyVolumeLimit: 1_000_000,
	})

	matcher, _ := newEngine(t, ledger)

	result, err := matcher.MatchPayment(context.Background(), "0xp1")
	require.NoError(t, err)
	assert.False(t, result.Matched)
	assert.Equal(t, 0, ledger.assignCount())
	assert.Empty(t, ledger.assignedTo("0xp1"))
}

func TestEngine_AllSolversOverLimit_NoAssignment(t *testing.T) {
	ledger := newInmemLedger()
	ledger.addPayment(pendingPaymentRecord("0xp1", "Delhi", 50_000))
	ledger.addSolver(&domain.Solver{
		Address: "0xs1", Region: "Delhi", IsActive: true,
		FeeBasisPoints: 75, TotalVolume: mustDec("500000"),
		MonthlyVolumeLimit: 100_000, CurrentMonthVolume: 80_000,
	})

	matcher, _ := newEngine(t, ledger)

	result, err := matcher.MatchPayment(context.Background(), "0xp1")
	require.NoError(t, err)
	assert.False(t, result.Matched)
	assert.Equal(t, 0, ledger.assignCount())
}
