package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"solver-matching-engine/internal/core/domain"
	"solver-matching-engine/internal/core/ports"
	"solver-matching-engine/internal/metrics"

	"github.com/rs/zerolog"
)

// WatcherService subscribes to payment-creation notifications and triggers
// one matching attempt per payment. Attempts run on a bounded worker pool;
// a per-payment guard absorbs duplicate notifications, since the stream is
// at-least-once. The watcher owns no matching logic of its own.
type WatcherService struct {
	stream  ports.PaymentStream
	matcher ports.Matcher
	guard   ports.MatchGuard

	maxConcurrent int
	guardTTL      time.Duration
	resubBackoff  time.Duration

	log zerolog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	workers sync.WaitGroup
}

func NewWatcherService(
	stream ports.PaymentStream,
	matcher ports.Matcher,
	guard ports.MatchGuard,
	maxConcurrent int,
	guardTTL time.Duration,
	resubBackoff time.Duration,
	log zerolog.Logger,
) *WatcherService {
	return &WatcherService{
		stream:        stream,
		matcher:       matcher,
		guard:         guard,
		maxConcurrent: maxConcurrent,
		guardTTL:      guardTTL,
		resubBackoff:  resubBackoff,
		log:           log,
	}
}

// Start begins consuming payment-creation events. It returns after the
// first subscription is established; later stream failures are handled by
// re-subscribing with a fixed backoff. Calling Start on a running watcher
// is an error.
func (w *WatcherService) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		return fmt.Errorf("watcher already started")
	}

	runCtx, cancel := context.WithCancel(ctx)

	sink := make(chan domain.PaymentCreatedEvent, w.maxConcurrent)
	sub, err := w.stream.SubscribePaymentCreated(runCtx, sink)
	if err != nil {
		cancel()
		return fmt.Errorf("subscribing to payment events: %w", err)
	}

	done := make(chan struct{})
	w.cancel = cancel
	w.done = done
	go w.run(runCtx, sub, sink, done)

	w.log.Info().Int("max_concurrent", w.maxConcurrent).Msg("payment watcher started")
	return nil
}

// Stop cancels the subscription and waits for in-flight matching attempts
// to drain, or for ctx to expire, whichever comes first.
func (w *WatcherService) Stop(ctx context.Context) error {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel, w.done = nil, nil
	w.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		w.log.Info().Msg("payment watcher stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for watcher drain: %w", ctx.Err())
	}
}

// run is the subscription loop. It consumes events until the subscription
// dies, then re-subscribes after resubBackoff. Exits only on context
// cancellation.
func (w *WatcherService) run(ctx context.Context, sub ports.Subscription, sink chan domain.PaymentCreatedEvent, done chan struct{}) {
	defer close(done)
	defer w.workers.Wait()

	sem := make(chan struct{}, w.maxConcurrent)

	for {
		alive := true
		for alive {
			select {
			case <-ctx.Done():
				sub.Unsubscribe()
				return
			case err := <-sub.Err():
				w.log.Error().Err(err).Msg("payment subscription failed, re-subscribing")
				sub.Unsubscribe()
				alive = false
			case ev := <-sink:
				metrics.PaymentEventsTotal.Inc()
				select {
				case sem <- struct{}{}:
				case <-ctx.Done():
					sub.Unsubscribe()
					return
				}
				w.workers.Add(1)
				go func(ev domain.PaymentCreatedEvent) {
					defer w.workers.Done()
					defer func() { <-sem }()
					w.handleEvent(ctx, ev)
				}(ev)
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(w.resubBackoff):
		}

		var err error
		sub, err = w.stream.SubscribePaymentCreated(ctx, sink)
		if err != nil {
			w.log.Error().Err(err).Msg("re-subscribe failed, retrying")
			sub = deadSubscription{}
		} else {
			w.log.Info().Msg("payment subscription re-established")
		}
	}
}

// handleEvent runs one guarded matching attempt for the notified payment.
// Every failure is terminal for this notification: the payment stays
// Pending on the ledger and a later trigger can pick it up again.
func (w *WatcherService) handleEvent(ctx context.Context, ev domain.PaymentCreatedEvent) {
	defer func() {
		if r := recover(); r != nil {
			metrics.MatchAttemptsTotal.WithLabelValues(metrics.OutcomeInternal).Inc()
			w.log.Error().
				Str("payment_id", ev.PaymentID).
				Interface("panic", r).
				Msg("matching attempt panicked")
		}
	}()

	acquired, err := w.guard.TryAcquire(ctx, ev.PaymentID, w.guardTTL)
	if err != nil {
		w.log.Error().Err(err).Str("payment_id", ev.PaymentID).Msg("match guard unavailable")
		return
	}
	if !acquired {
		metrics.MatchAttemptsTotal.WithLabelValues(metrics.OutcomeDuplicate).Inc()
		w.log.Debug().Str("payment_id", ev.PaymentID).Msg("matching already in progress, skipping duplicate")
		return
	}
	defer func() {
		if err := w.guard.Release(context.WithoutCancel(ctx), ev.PaymentID); err != nil {
			w.log.Warn().Err(err).Str("payment_id", ev.PaymentID).Msg("match guard release failed")
		}
	}()

	metrics.InFlightMatches.Inc()
	defer metrics.InFlightMatches.Dec()

	w.log.Info().
		Str("payment_id", ev.PaymentID).
		Str("payer", ev.Payer).
		Str("region", ev.Region).
		Uint64("block", ev.BlockNumber).
		Msg("payment created, starting match")

	result, err := w.matcher.MatchPayment(ctx, ev.PaymentID)
	if err != nil {
		w.log.Error().Err(err).Str("payment_id", ev.PaymentID).Msg("matching attempt failed")
		return
	}
	if !result.Matched {
		w.log.Info().
			Str("payment_id", ev.PaymentID).
			Str("reason", result.Reason).
			Msg("no solver matched")
		return
	}
	w.log.Info().
		Str("payment_id", ev.PaymentID).
		Str("solver", result.Solver).
		Str("score", result.Score.String()).
		Msg("payment matched")
}

// deadSubscription stands in after a failed re-subscribe so the loop falls
// straight back into the backoff branch.
type deadSubscription struct{}

func (deadSubscription) Unsubscribe() {}

func (deadSubscription) Err() <-chan error {
	ch := make(chan error, 1)
	ch <- fmt.Errorf("not subscribed")
	return ch
}
