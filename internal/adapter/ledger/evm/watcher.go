package evm

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"solver-matching-engine/internal/core/domain"
	"solver-matching-engine/internal/core/ports"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// pollInterval paces the log-polling fallback when the RPC endpoint does
// not support push subscriptions.
const pollInterval = 3 * time.Second

// Stream implements ports.PaymentStream on top of the payment factory's
// PaymentCreated logs. It prefers eth_subscribe and falls back to periodic
// eth_getLogs polling on HTTP-only endpoints.
type Stream struct {
	client *Client
	log    zerolog.Logger
}

func NewStream(client *Client, log zerolog.Logger) *Stream {
	return &Stream{client: client, log: log}
}

// SubscribePaymentCreated implements ports.PaymentStream.
func (s *Stream) SubscribePaymentCreated(ctx context.Context, sink chan<- domain.PaymentCreatedEvent) (ports.Subscription, error) {
	query := ethereum.FilterQuery{
		Addresses: []common.Address{s.client.factory},
		Topics:    [][]common.Hash{{paymentFactoryABI.Events["PaymentCreated"].ID}},
	}

	logs := make(chan types.Log, 16)
	ethSub, err := s.client.eth.SubscribeFilterLogs(ctx, query, logs)
	if err == nil {
		s.log.Info().Msg("payment log subscription established")
		return s.runPush(ctx, ethSub, logs, sink), nil
	}

	// Most public RPC gateways reject eth_subscribe over HTTP.
	s.log.Warn().Err(err).Msg("log subscription unavailable, polling for payment logs")
	return s.runPolling(ctx, query, sink)
}

type streamSub struct {
	cancel context.CancelFunc
	errCh  chan error
}

func (s *streamSub) Unsubscribe()      { s.cancel() }
func (s *streamSub) Err() <-chan error { return s.errCh }

func (s *Stream) runPush(ctx context.Context, ethSub ethereum.Subscription, logs chan types.Log, sink chan<- domain.PaymentCreatedEvent) ports.Subscription {
	subCtx, cancel := context.WithCancel(ctx)
	sub := &streamSub{cancel: cancel, errCh: make(chan error, 1)}

	go func() {
		defer ethSub.Unsubscribe()
		for {
			select {
			case <-subCtx.Done():
				return
			case err := <-ethSub.Err():
				sub.errCh <- fmt.Errorf("payment log subscription: %w", err)
				return
			case lg := <-logs:
				s.deliver(subCtx, lg, sink)
			}
		}
	}()
	return sub
}

func (s *Stream) runPolling(ctx context.Context, query ethereum.FilterQuery, sink chan<- domain.PaymentCreatedEvent) (ports.Subscription, error) {
	head, err := s.client.eth.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching head block: %w", err)
	}

	subCtx, cancel := context.WithCancel(ctx)
	sub := &streamSub{cancel: cancel, errCh: make(chan error, 1)}

	go func() {
		// Start strictly after the current head: historical payments are
		// not this process's responsibility.
		next := head + 1
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-subCtx.Done():
				return
			case <-ticker.C:
			}

			latest, err := s.client.eth.BlockNumber(subCtx)
			if err != nil {
				sub.errCh <- fmt.Errorf("polling head block: %w", err)
				return
			}
			if latest < next {
				continue
			}

			query.FromBlock = new(big.Int).SetUint64(next)
			query.ToBlock = new(big.Int).SetUint64(latest)
			entries, err := s.client.eth.FilterLogs(subCtx, query)
			if err != nil {
				sub.errCh <- fmt.Errorf("polling payment logs: %w", err)
				return
			}
			for _, lg := range entries {
				s.deliver(subCtx, lg, sink)
			}
			next = latest + 1
		}
	}()
	return sub, nil
}

func (s *Stream) deliver(ctx context.Context, lg types.Log, sink chan<- domain.PaymentCreatedEvent) {
	ev, err := decodePaymentCreated(lg)
	if err != nil {
		s.log.Error().Err(err).
			Str("tx_hash", lg.TxHash.Hex()).
			Msg("undecodable PaymentCreated log, dropping")
		return
	}
	select {
	case sink <- ev:
	case <-ctx.Done():
	}
}

// rawPaymentCreated carries the event's non-indexed fields.
type rawPaymentCreated struct {
	AmountSettlement *big.Int
	AmountFiat       *big.Int
	Region           string
	ExpiresAt        *big.Int
}

func decodePaymentCreated(lg types.Log) (domain.PaymentCreatedEvent, error) {
	if len(lg.Topics) != 3 {
		return domain.PaymentCreatedEvent{}, fmt.Errorf("expected 3 topics, got %d", len(lg.Topics))
	}

	var raw rawPaymentCreated
	if err := paymentFactoryABI.UnpackIntoInterface(&raw, "PaymentCreated", lg.Data); err != nil {
		return domain.PaymentCreatedEvent{}, fmt.Errorf("unpacking PaymentCreated data: %w", err)
	}

	return domain.PaymentCreatedEvent{
		PaymentID:        strings.ToLower(lg.Topics[1].Hex()),
		Payer:            strings.ToLower(common.BytesToAddress(lg.Topics[2].Bytes()).Hex()),
		AmountSettlement: decimal.NewFromBigInt(raw.AmountSettlement, -settlementDecimals),
		AmountFiat:       raw.AmountFiat.Int64(),
		Region:           raw.Region,
		ExpiresAt:        unixTime(raw.ExpiresAt),
		BlockNumber:      lg.BlockNumber,
	}, nil
}
