package dto

import (
	"time"

	"solver-matching-engine/internal/core/domain"
)

// PaymentURI binds the payment id path parameter.
type PaymentURI struct {
	ID string `uri:"id" binding:"required,payment_id"`
}

// SolverURI binds the solver address path parameter.
type SolverURI struct {
	Address string `uri:"address" binding:"required,hex_address"`
}

// PaymentResponse is the read-model view of an escrowed payment.
type PaymentResponse struct {
	ID                string `json:"id"`
	Payer             string `json:"payer"`
	AmountSettlement  string `json:"amount_settlement"`
	AmountFiat        int64  `json:"amount_fiat"`
	MerchantReference string `json:"merchant_reference"`
	Region            string `json:"region"`
	CreatedAt         string `json:"created_at"`
	ExpiresAt         string `json:"expires_at"`
	AssignedSolver    string `json:"assigned_solver,omitempty"`
	Status            string `json:"status"`
}

// SolverResponse is the read-model view of a registered solver.
type SolverResponse struct {
	Address            string `json:"address"`
	StakedAmount       string `json:"staked_amount"`
	Tier               uint8  `json:"tier"`
	TotalVolume        string `json:"total_volume"`
	SuccessfulPayments uint64 `json:"successful_payments"`
	FailedPayments     uint64 `json:"failed_payments"`
	IsActive           bool   `json:"is_active"`
	Region             string `json:"region"`
	FeeBasisPoints     int64  `json:"fee_basis_points"`
	MonthlyVolumeLimit int64  `json:"monthly_volume_limit"`
	CurrentMonthVolume int64  `json:"current_month_volume"`
}

// CandidateResponse is one scored row of a matching dry run.
type CandidateResponse struct {
	Solver         string `json:"solver"`
	Score          string `json:"score"`
	SuccessRate    string `json:"success_rate"`
	RegionMatch    bool   `json:"region_match"`
	FeeScore       string `json:"fee_score"`
	VolumeScore    string `json:"volume_score"`
	Eligible       bool   `json:"eligible"`
	ExcludedReason string `json:"excluded_reason,omitempty"`
}

// FromPayment converts a domain payment to its response DTO.
func FromPayment(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		Payer:             p.Payer,
		AmountSettlement:  p.AmountSettlement.String(),
		AmountFiat:        p.AmountFiat,
		MerchantReference: p.MerchantReference,
		Region:            p.Region,
		CreatedAt:         p.CreatedAt.Format(time.RFC3339),
		ExpiresAt:         p.ExpiresAt.Format(time.RFC3339),
		AssignedSolver:    p.AssignedSolver,
		Status:            p.Status.String(),
	}
}

// FromSolver converts a domain solver to its response DTO.
func FromSolver(s *domain.Solver) SolverResponse {
	return SolverResponse{
		Address:            s.Address,
		StakedAmount:       s.StakedAmount.String(),
		Tier:               uint8(s.Tier),
		TotalVolume:        s.TotalVolume.String(),
		SuccessfulPayments: s.SuccessfulPayments,
		FailedPayments:     s.FailedPayments,
		IsActive:           s.IsActive,
		Region:             s.Region,
		FeeBasisPoints:     s.FeeBasisPoints,
		MonthlyVolumeLimit: s.MonthlyVolumeLimit,
		CurrentMonthVolume: s.CurrentMonthVolume,
	}
}

// FromScores converts a matching dry run to response DTOs.
func FromScores(scores []domain.SolverScore) []CandidateResponse {
	out := make([]CandidateResponse, len(scores))
	for i, sc := range scores {
		out[i] = CandidateResponse{
			Solver:         sc.Solver,
			Score:          sc.Score.String(),
			SuccessRate:    sc.SuccessRate.String(),
			RegionMatch:    sc.RegionMatch,
			FeeScore:       sc.FeeScore.String(),
			VolumeScore:    sc.VolumeScore.String(),
			Eligible:       sc.Eligible,
			ExcludedReason: sc.ExcludReason,
		}
	}
	return out
}
