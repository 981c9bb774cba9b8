package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExcludedScore tags a candidate that failed eligibility. Excluded
// candidates never participate in ranking.
var ExcludedScore = decimal.NewFromInt(-1)

// SolverScore is the scored evaluation of one (solver, payment) pair,
// with the per-component breakdown used by the candidates endpoint.
type SolverScore struct {
	Solver       string          `json:"solver"`
	Score        decimal.Decimal `json:"score"`
	SuccessRate  decimal.Decimal `json:"success_rate"` // 0..100, pre-weight
	RegionMatch  bool            `json:"region_match"`
	FeeScore     decimal.Decimal `json:"fee_score"`        // 0..100, pre-weight
	VolumeScore  decimal.Decimal `json:"volume_score"`     // 0..100, pre-weight
	Eligible     bool            `json:"eligible"`
	ExcludReason string          `json:"excluded_reason,omitempty"`
}

// TxReceipt is the confirmation of a mined ledger write.
type TxReceipt struct {
	TxHash      string `json:"tx_hash"`
	BlockNumber uint64 `json:"block_number"`
}

// MatchResult is the outcome of one matching attempt. A no-match outcome is
// expected and non-fatal; Reason carries the cause.
type MatchResult struct {
	PaymentID string          `json:"payment_id"`
	Matched   bool            `json:"matched"`
	Solver    string          `json:"solver,omitempty"`
	Score     decimal.Decimal `json:"score"`
	Reason    string          `json:"reason,omitempty"`
	Receipt   *TxReceipt      `json:"receipt,omitempty"`
}

// NoMatch builds a no-match result for a payment.
func NoMatch(paymentID, reason string) *MatchResult {
	return &MatchResult{
		PaymentID: paymentID,
		Matched:   false,
		Score:     decimal.Zero,
		Reason:    reason,
	}
}

// PaymentCreatedEvent is the payment-creation notification emitted by the
// escrow contract. Delivery is at-least-once with no ordering or dedup
// guarantee; PaymentID is the only field consumers may rely on.
type PaymentCreatedEvent struct {
	PaymentID        string
	Payer            string
	AmountSettlement decimal.Decimal
	AmountFiat       int64
	Region           string
	ExpiresAt        time.Time
	BlockNumber      uint64
}
