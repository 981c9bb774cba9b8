package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the on-ledger lifecycle state of a payment. The state
// machine is strictly forward: Pending -> Matched -> Processing -> Completed,
// with Cancelled and Expired as alternate terminal exits from Pending.
// The matching engine only ever performs the Pending -> Matched transition.
type PaymentStatus uint8

const (
	PaymentStatusPending PaymentStatus = iota
	PaymentStatusMatched
	PaymentStatusProcessing
	PaymentStatusCompleted
	PaymentStatusCancelled
	PaymentStatusExpired
)

func (s PaymentStatus) String() string {
	switch s {
	case PaymentStatusPending:
		return "PENDING"
	case PaymentStatusMatched:
		return "MATCHED"
	case PaymentStatusProcessing:
		return "PROCESSING"
	case PaymentStatusCompleted:
		return "COMPLETED"
	case PaymentStatusCancelled:
		return "CANCELLED"
	case PaymentStatusExpired:
		return "EXPIRED"
	default:
		return "UNKNOWN"
	}
}

// Payment is a user's request to have a fiat transfer performed by a solver,
// backed by settlement-asset value locked in the escrow contract. Immutable
// once created; state transitions happen only on the ledger.
type Payment struct {
	ID                string          `json:"id"`     // 32-byte hex identifier
	Payer             string          `json:"payer"`  // requester address
	AmountSettlement  decimal.Decimal `json:"amount_settlement"` // settlement asset, 18 decimals
	AmountFiat        int64           `json:"amount_fiat"`       // target fiat currency, no decimals
	MerchantReference string          `json:"merchant_reference"`
	Region            string          `json:"region"`
	CreatedAt         time.Time       `json:"created_at"`
	ExpiresAt         time.Time       `json:"expires_at"`
	AssignedSolver    string          `json:"assigned_solver,omitempty"` // empty = unassigned
	Status            PaymentStatus   `json:"status"`
	FiatTxnReference  string          `json:"fiat_txn_reference,omitempty"` // empty until proof submitted
}

// IsAssigned returns true if a solver has been fixed for this payment.
func (p *Payment) IsAssigned() bool {
	return p.AssignedSolver != ""
}

// IsTerminal returns true if the payment is in a final state.
func (p *Payment) IsTerminal() bool {
	return p.Status == PaymentStatusCompleted ||
		p.Status == PaymentStatusCancelled ||
		p.Status == PaymentStatusExpired
}

// ExpiresWithin reports whether the payment expires before now+headroom.
// A payment expiring exactly at the boundary counts as expiring.
func (p *Payment) ExpiresWithin(now time.Time, headroom time.Duration) bool {
	return !now.Add(headroom).Before(p.ExpiresAt)
}
