package service

import (
	"strings"

	"solver-matching-engine/internal/core/domain"

	"github.com/shopspring/decimal"
)

// Scoring weights. They cover 100% of a maximal score
// (0.40 + 0.25 + 0.20 + 0.15 = 1.00); the region component is folded into
// its constants (25 on match, 5 otherwise).
var (
	weightSuccessRate = decimal.RequireFromString("0.4")
	weightFee         = decimal.RequireFromString("0.2")
	weightVolume      = decimal.RequireFromString("0.15")

	regionMatchPoints    = decimal.NewFromInt(25)
	regionMismatchPoints = decimal.NewFromInt(5)

	// neutralSuccessRate is used for solvers with no payment history, so new
	// registrations are not penalized while proven solvers still rank higher.
	neutralSuccessRate = decimal.NewFromInt(70)

	hundred = decimal.NewFromInt(100)

	// feePenaltyFactor turns the fee percentage into a score penalty; fees at
	// or above 10% floor the fee component at zero.
	feePenaltyFactor = decimal.NewFromInt(10)

	// referenceVolume is the saturation point of the volume component:
	// 1,000,000 settlement-asset units maps to the full 100.
	referenceVolume = decimal.NewFromInt(1_000_000)
)

// ScoringService computes the weighted composite desirability score for a
// (solver, payment) pair. Pure and deterministic; scores from different
// matching runs are not comparable (no cross-pool normalization).
type ScoringService struct{}

// NewScoringService creates a ScoringService.
func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// Score evaluates one solver against one payment. Higher is better; the
// theoretical maximum is 100.
func (s *ScoringService) Score(solver *domain.Solver, payment *domain.Payment) domain.SolverScore {
	// Success rate (40%)
	successRate := neutralSuccessRate
	if total := solver.TotalPayments(); total > 0 {
		successRate = decimal.NewFromUint64(solver.SuccessfulPayments).
			Div(decimal.NewFromUint64(total)).
			Mul(hundred)
	}

	// Region match (25%): binary, not distance-weighted.
	regionMatch := regionsEqual(solver.Region, payment.Region)
	regionPoints := regionMismatchPoints
	if regionMatch {
		regionPoints = regionMatchPoints
	}

	// Fee competitiveness (20%): fee is stored in basis points.
	feePercent := decimal.NewFromInt(solver.FeeBasisPoints).Div(hundred)
	feeScore := hundred.Sub(feePercent.Mul(feePenaltyFactor))
	if feeScore.IsNegative() {
		feeScore = decimal.Zero
	}

	// Volume history (15%): saturating percentile proxy, capped to bound
	// the influence of whale solvers.
	volumeScore := solver.TotalVolume.Div(referenceVolume).Mul(hundred)
	if volumeScore.GreaterThan(hundred) {
		volumeScore = hundred
	}

	total := successRate.Mul(weightSuccessRate).
		Add(regionPoints).
		Add(feeScore.Mul(weightFee)).
		Add(volumeScore.Mul(weightVolume))

	return domain.SolverScore{
		Solver:      solver.Address,
		Score:       total,
		SuccessRate: successRate,
		RegionMatch: regionMatch,
		FeeScore:    feeScore,
		VolumeScore: volumeScore,
		Eligible:    true,
	}
}

func regionsEqual(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
