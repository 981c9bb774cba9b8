package evm

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"solver-matching-engine/config"
	"solver-matching-engine/internal/core/domain"
	"solver-matching-engine/pkg/apperror"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog"
)

// Client implements ports.LedgerClient against the payment factory and
// solver registry contracts over JSON-RPC. Reads are plain eth_call; the
// single write path signs locally and waits for inclusion.
type Client struct {
	eth      *ethclient.Client
	factory  common.Address
	registry common.Address

	key     *ecdsa.PrivateKey
	sender  common.Address
	chainID *big.Int
	signer  types.Signer

	// Serializes nonce allocation across concurrent assignments from the
	// single signing account.
	nonceMu sync.Mutex

	log zerolog.Logger
}

// NewClient dials the RPC endpoint and verifies the chain ID before
// returning. The private key may be empty for read-only deployments; the
// write path then refuses to submit.
func NewClient(ctx context.Context, cfg config.LedgerConfig, log zerolog.Logger) (*Client, error) {
	eth, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dialing ledger rpc: %w", err)
	}

	chainID, err := eth.ChainID(ctx)
	if err != nil {
		eth.Close()
		return nil, fmt.Errorf("fetching chain id: %w", err)
	}
	if chainID.Int64() != cfg.ChainID {
		eth.Close()
		return nil, fmt.Errorf("ledger chain id mismatch: want %d, node reports %s", cfg.ChainID, chainID)
	}

	c := &Client{
		eth:      eth,
		factory:  common.HexToAddress(cfg.PaymentFactory),
		registry: common.HexToAddress(cfg.SolverRegistry),
		chainID:  chainID,
		signer:   types.LatestSignerForChainID(chainID),
		log:      log,
	}

	if cfg.PrivateKey != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
		if err != nil {
			eth.Close()
			return nil, fmt.Errorf("parsing signing key: %w", err)
		}
		c.key = key
		c.sender = crypto.PubkeyToAddress(key.PublicKey)
		log.Info().
			Str("sender", c.sender.Hex()).
			Int64("chain_id", cfg.ChainID).
			Msg("ledger client ready")
	} else {
		log.Warn().Msg("no signing key configured, ledger client is read-only")
	}

	return c, nil
}

// Close releases the underlying RPC connection.
func (c *Client) Close() {
	c.eth.Close()
}

// Name implements ports.HealthChecker.
func (c *Client) Name() string { return "ledger" }

// Ping implements ports.HealthChecker by asking the node for its head block.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.eth.BlockNumber(ctx); err != nil {
		return fmt.Errorf("ledger rpc unreachable: %w", err)
	}
	return nil
}

func (c *Client) call(ctx context.Context, to common.Address, contractABI abi.ABI, method string, args ...interface{}) ([]interface{}, error) {
	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("packing %s: %w", method, err)
	}
	res, err := c.eth.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", method, err)
	}
	out, err := contractABI.Unpack(method, res)
	if err != nil {
		return nil, fmt.Errorf("unpacking %s result: %w", method, err)
	}
	return out, nil
}

// GetPayment implements ports.LedgerReader. The factory returns a zero
// record for unknown ids; that surfaces as LED_003.
func (c *Client) GetPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	out, err := c.call(ctx, c.factory, paymentFactoryABI, "getPayment", common.HexToHash(paymentID))
	if err != nil {
		return nil, err
	}
	raw := abi.ConvertType(out[0], new(rawPayment)).(*rawPayment)
	if raw.Payer == (common.Address{}) {
		return nil, apperror.ErrNotFound("payment")
	}
	return raw.toDomain(strings.ToLower(paymentID)), nil
}

// GetActiveSolvers implements ports.LedgerReader. Addresses come back in
// registry enumeration order, which downstream tie-breaking relies on.
func (c *Client) GetActiveSolvers(ctx context.Context) ([]string, error) {
	out, err := c.call(ctx, c.registry, solverRegistryABI, "getActiveSolvers")
	if err != nil {
		return nil, err
	}
	raw := *abi.ConvertType(out[0], new([]common.Address)).(*[]common.Address)
	addresses := make([]string, len(raw))
	for i, a := range raw {
		addresses[i] = strings.ToLower(a.Hex())
	}
	return addresses, nil
}

// GetSolver implements ports.LedgerReader.
func (c *Client) GetSolver(ctx context.Context, address string) (*domain.Solver, error) {
	out, err := c.call(ctx, c.registry, solverRegistryABI, "getSolver", common.HexToAddress(address))
	if err != nil {
		return nil, err
	}
	raw := abi.ConvertType(out[0], new(rawSolver)).(*rawSolver)
	if raw.SolverAddress == (common.Address{}) {
		return nil, apperror.ErrNotFound("solver")
	}
	return raw.toDomain(), nil
}

// IsActiveSolver implements ports.LedgerReader.
func (c *Client) IsActiveSolver(ctx context.Context, address string) (bool, error) {
	out, err := c.call(ctx, c.registry, solverRegistryABI, "isActiveSolver", common.HexToAddress(address))
	if err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// CheckMonthlyLimit implements ports.LedgerReader.
func (c *Client) CheckMonthlyLimit(ctx context.Context, address string, fiatAmount int64) (bool, error) {
	out, err := c.call(ctx, c.registry, solverRegistryABI, "checkMonthlyLimit",
		common.HexToAddress(address), big.NewInt(fiatAmount))
	if err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

// AssignSolver implements ports.LedgerWriter: signs and submits the
// assignment transaction, then waits for inclusion within ctx. A reverted
// receipt is an error; the contract's status guard reverts when another
// process assigned first.
func (c *Client) AssignSolver(ctx context.Context, paymentID, solver string) (*domain.TxReceipt, error) {
	if c.key == nil {
		return nil, fmt.Errorf("ledger client is read-only, no signing key configured")
	}

	data, err := paymentFactoryABI.Pack("assignSolver", common.HexToHash(paymentID), common.HexToAddress(solver))
	if err != nil {
		return nil, fmt.Errorf("packing assignSolver: %w", err)
	}

	signedTx, err := c.buildAndSign(ctx, data)
	if err != nil {
		return nil, err
	}

	if err := c.eth.SendTransaction(ctx, signedTx); err != nil {
		return nil, fmt.Errorf("broadcasting assignSolver: %w", err)
	}

	c.log.Debug().
		Str("payment_id", paymentID).
		Str("solver", solver).
		Str("tx_hash", signedTx.Hash().Hex()).
		Msg("assignSolver broadcast")

	receipt, err := bind.WaitMined(ctx, c.eth, signedTx)
	if err != nil {
		return nil, fmt.Errorf("waiting for assignSolver inclusion: %w", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("assignSolver reverted in block %d", receipt.BlockNumber.Uint64())
	}

	return &domain.TxReceipt{
		TxHash:      receipt.TxHash.Hex(),
		BlockNumber: receipt.BlockNumber.Uint64(),
	}, nil
}

// buildAndSign allocates a nonce, estimates gas and signs a transaction to
// the payment factory. Nonce allocation is serialized so concurrent
// assignments from the worker pool do not collide.
func (c *Client) buildAndSign(ctx context.Context, data []byte) (*types.Transaction, error) {
	c.nonceMu.Lock()
	defer c.nonceMu.Unlock()

	nonce, err := c.eth.PendingNonceAt(ctx, c.sender)
	if err != nil {
		return nil, fmt.Errorf("fetching nonce: %w", err)
	}

	gasPrice, err := c.eth.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching gas price: %w", err)
	}

	gasLimit, err := c.eth.EstimateGas(ctx, ethereum.CallMsg{
		From: c.sender,
		To:   &c.factory,
		Data: data,
	})
	if err != nil {
		return nil, fmt.Errorf("estimating gas: %w", err)
	}

	tx := types.NewTransaction(nonce, c.factory, big.NewInt(0), gasLimit, gasPrice, data)
	signedTx, err := types.SignTx(tx, c.signer, c.key)
	if err != nil {
		return nil, fmt.Errorf("signing transaction: %w", err)
	}
	return signedTx, nil
}
