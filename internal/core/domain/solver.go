package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SolverTier is the privilege level earned by stake size. It affects the
// solver's fee and monthly volume cap on the registry contract; the matching
// engine reads it for display only.
type SolverTier uint8

const (
	TierFree SolverTier = iota
	Tier1
	Tier2
	Tier3
	Tier4
)

// Solver is a registered, staked participant who fulfills payments by
// performing the off-chain fiat transfer. Read-only from the matching
// engine's perspective; all mutation happens on the registry contract.
type Solver struct {
	Address            string          `json:"address"`
	StakedAmount       decimal.Decimal `json:"staked_amount"` // settlement asset, 18 decimals
	Tier               SolverTier      `json:"tier"`
	TotalVolume        decimal.Decimal `json:"total_volume"` // cumulative, settlement-asset units
	SuccessfulPayments uint64          `json:"successful_payments"`
	FailedPayments     uint64          `json:"failed_payments"`
	IsActive           bool            `json:"is_active"`
	RegisteredAt       time.Time       `json:"registered_at"`
	Region             string          `json:"region"`
	FeeBasisPoints     int64           `json:"fee_basis_points"`
	MonthlyVolumeLimit int64           `json:"monthly_volume_limit"` // fiat units
	CurrentMonthVolume int64           `json:"current_month_volume"`
	MonthStart         time.Time       `json:"month_start"`
}

// TotalPayments returns the solver's lifetime payment count.
func (s *Solver) TotalPayments() uint64 {
	return s.SuccessfulPayments + s.FailedPayments
}
