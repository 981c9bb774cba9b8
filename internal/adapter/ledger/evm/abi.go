package evm

import (
	"math/big"
	"strings"
	"time"

	"solver-matching-engine/internal/core/domain"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Contract ABI fragments for the two on-chain surfaces the engine touches:
// the payment factory escrow and the solver registry. Only the methods and
// the one event the engine uses are declared.
const paymentFactoryJSON = `[
  {
    "type": "event",
    "name": "PaymentCreated",
    "inputs": [
      {"name": "paymentId", "type": "bytes32", "indexed": true},
      {"name": "payer", "type": "address", "indexed": true},
      {"name": "amountSettlement", "type": "uint256", "indexed": false},
      {"name": "amountFiat", "type": "uint256", "indexed": false},
      {"name": "region", "type": "string", "indexed": false},
      {"name": "expiresAt", "type": "uint256", "indexed": false}
    ]
  },
  {
    "type": "function",
    "name": "assignSolver",
    "inputs": [
      {"name": "_paymentId", "type": "bytes32"},
      {"name": "_solver", "type": "address"}
    ],
    "outputs": [],
    "stateMutability": "nonpayable"
  },
  {
    "type": "function",
    "name": "getPayment",
    "inputs": [{"name": "_paymentId", "type": "bytes32"}],
    "outputs": [
      {
        "type": "tuple",
        "components": [
          {"name": "payer", "type": "address"},
          {"name": "amountSettlement", "type": "uint256"},
          {"name": "amountFiat", "type": "uint256"},
          {"name": "merchantRef", "type": "string"},
          {"name": "region", "type": "string"},
          {"name": "createdAt", "type": "uint256"},
          {"name": "expiresAt", "type": "uint256"},
          {"name": "assignedSolver", "type": "address"},
          {"name": "status", "type": "uint8"},
          {"name": "fiatTxnRef", "type": "string"}
        ]
      }
    ],
    "stateMutability": "view"
  }
]`

const solverRegistryJSON = `[
  {
    "type": "function",
    "name": "getActiveSolvers",
    "inputs": [],
    "outputs": [{"type": "address[]"}],
    "stateMutability": "view"
  },
  {
    "type": "function",
    "name": "getSolver",
    "inputs": [{"name": "_solver", "type": "address"}],
    "outputs": [
      {
        "type": "tuple",
        "components": [
          {"name": "solverAddress", "type": "address"},
          {"name": "stakedAmount", "type": "uint256"},
          {"name": "tier", "type": "uint8"},
          {"name": "totalVolume", "type": "uint256"},
          {"name": "successfulPayments", "type": "uint256"},
          {"name": "failedPayments", "type": "uint256"},
          {"name": "isActive", "type": "bool"},
          {"name": "registeredAt", "type": "uint256"},
          {"name": "region", "type": "string"},
          {"name": "feeBasisPoints", "type": "uint256"},
          {"name": "monthlyVolumeLimit", "type": "uint256"},
          {"name": "currentMonthVolume", "type": "uint256"},
          {"name": "monthStart", "type": "uint256"}
        ]
      }
    ],
    "stateMutability": "view"
  },
  {
    "type": "function",
    "name": "isActiveSolver",
    "inputs": [{"name": "_solver", "type": "address"}],
    "outputs": [{"type": "bool"}],
    "stateMutability": "view"
  },
  {
    "type": "function",
    "name": "checkMonthlyLimit",
    "inputs": [
      {"name": "_solver", "type": "address"},
      {"name": "_amountFiat", "type": "uint256"}
    ],
    "outputs": [{"type": "bool"}],
    "stateMutability": "view"
  }
]`

// settlementDecimals is the settlement token's fixed-point scale.
const settlementDecimals = 18

func unixTime(v *big.Int) time.Time {
	return time.Unix(v.Int64(), 0).UTC()
}

func mustParseABI(src string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(src))
	if err != nil {
		panic(err)
	}
	return parsed
}

var (
	paymentFactoryABI = mustParseABI(paymentFactoryJSON)
	solverRegistryABI = mustParseABI(solverRegistryJSON)
)

// rawPayment mirrors the getPayment tuple. Field order and types must match
// the ABI components so reflection-based unpacking lines up.
type rawPayment struct {
	Payer            common.Address
	AmountSettlement *big.Int
	AmountFiat       *big.Int
	MerchantRef      string
	Region           string
	CreatedAt        *big.Int
	ExpiresAt        *big.Int
	AssignedSolver   common.Address
	Status           uint8
	FiatTxnRef       string
}

// rawSolver mirrors the getSolver tuple.
type rawSolver struct {
	SolverAddress      common.Address
	StakedAmount       *big.Int
	Tier               uint8
	TotalVolume        *big.Int
	SuccessfulPayments *big.Int
	FailedPayments     *big.Int
	IsActive           bool
	RegisteredAt       *big.Int
	Region             string
	FeeBasisPoints     *big.Int
	MonthlyVolumeLimit *big.Int
	CurrentMonthVolume *big.Int
	MonthStart         *big.Int
}

func (r *rawPayment) toDomain(id string) *domain.Payment {
	assigned := ""
	if r.AssignedSolver != (common.Address{}) {
		assigned = strings.ToLower(r.AssignedSolver.Hex())
	}
	return &domain.Payment{
		ID:                id,
		Payer:             strings.ToLower(r.Payer.Hex()),
		AmountSettlement:  decimal.NewFromBigInt(r.AmountSettlement, -settlementDecimals),
		AmountFiat:        r.AmountFiat.Int64(),
		MerchantReference: r.MerchantRef,
		Region:            r.Region,
		CreatedAt:         unixTime(r.CreatedAt),
		ExpiresAt:         unixTime(r.ExpiresAt),
		AssignedSolver:    assigned,
		Status:            domain.PaymentStatus(r.Status),
		FiatTxnReference:  r.FiatTxnRef,
	}
}

func (r *rawSolver) toDomain() *domain.Solver {
	return &domain.Solver{
		Address:            strings.ToLower(r.SolverAddress.Hex()),
		StakedAmount:       decimal.NewFromBigInt(r.StakedAmount, -settlementDecimals),
		Tier:               domain.SolverTier(r.Tier),
		TotalVolume:        decimal.NewFromBigInt(r.TotalVolume, 0),
		SuccessfulPayments: r.SuccessfulPayments.Uint64(),
		FailedPayments:     r.FailedPayments.Uint64(),
		IsActive:           r.IsActive,
		RegisteredAt:       unixTime(r.RegisteredAt),
		Region:             r.Region,
		FeeBasisPoints:     r.FeeBasisPoints.Int64(),
		MonthlyVolumeLimit: r.MonthlyVolumeLimit.Int64(),
		CurrentMonthVolume: r.CurrentMonthVolume.Int64(),
		MonthStart:         unixTime(r.MonthStart),
	}
}
