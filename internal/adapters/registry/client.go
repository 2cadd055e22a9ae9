package registry

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/blockns-org/bns-cli/internal/config"
	"github.com/blockns-org/bns-cli/internal/domain"
	"github.com/blockns-org/bns-cli/internal/domain/bindings"
	"github.com/blockns-org/bns-cli/internal/usecase"
)

// ClientAdapter talks to the naming registry contract. Reads go straight
// to the node; writes are routed through the wallet provider, which signs
// and broadcasts on the user's behalf.
type ClientAdapter struct {
	node     *ethclient.Client
	sender   usecase.TransactionSender
	binding  *bindings.Registry
	address  common.Address
	interval time.Duration
	log      *slog.Logger
}

// NewClientAdapter dials the node endpoint from the runtime config.
func NewClientAdapter(cfg *config.RuntimeConfig, sender usecase.TransactionSender, log *slog.Logger) (*ClientAdapter, error) {
	if cfg.NodeRPC == "" {
		return nil, fmt.Errorf("no node RPC endpoint configured")
	}
	node, err := ethclient.Dial(cfg.NodeRPC)
	if err != nil {
		return nil, fmt.Errorf("dialing node %s: %w", cfg.NodeRPC, err)
	}
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &ClientAdapter{
		node:     node,
		sender:   sender,
		binding:  bindings.NewRegistry(),
		address:  cfg.ContractAddress,
		interval: interval,
		log:      log,
	}, nil
}

// Close releases the node connection.
func (c *ClientAdapter) Close() error {
	c.node.Close()
	return nil
}

func (c *ClientAdapter) call(ctx context.Context, data []byte) ([]byte, error) {
	msg := ethereum.CallMsg{To: &c.address, Data: data}
	return c.node.CallContract(ctx, msg, nil)
}

// AllNames returns every registered name in registration order.
func (c *ClientAdapter) AllNames(ctx context.Context) ([]string, error) {
	out, err := c.call(ctx, c.binding.PackGetAllNames())
	if err != nil {
		return nil, &domain.RemoteError{Op: "getAllNames", Err: err}
	}
	names, err := c.binding.UnpackGetAllNames(out)
	if err != nil {
		return nil, &domain.RemoteError{Op: "getAllNames", Err: err}
	}
	return names, nil
}

// Record returns the record value stored for a name, "" if unset.
func (c *ClientAdapter) Record(ctx context.Context, name string) (string, error) {
	out, err := c.call(ctx, c.binding.PackRecords(name))
	if err != nil {
		return "", &domain.RemoteError{Op: "records", Err: err}
	}
	record, err := c.binding.UnpackRecords(out)
	if err != nil {
		return "", &domain.RemoteError{Op: "records", Err: err}
	}
	return record, nil
}

// DomainOwner returns the address that registered a name, or the zero
// address for unregistered names.
func (c *ClientAdapter) DomainOwner(ctx context.Context, name string) (common.Address, error) {
	out, err := c.call(ctx, c.binding.PackDomains(name))
	if err != nil {
		return common.Address{}, &domain.RemoteError{Op: "domains", Err: err}
	}
	owner, err := c.binding.UnpackDomains(out)
	if err != nil {
		return common.Address{}, &domain.RemoteError{Op: "domains", Err: err}
	}
	return owner, nil
}

// ContractOwner returns the registry's deployer-owner.
func (c *ClientAdapter) ContractOwner(ctx context.Context) (common.Address, error) {
	out, err := c.call(ctx, c.binding.PackOwner())
	if err != nil {
		return common.Address{}, &domain.RemoteError{Op: "owner", Err: err}
	}
	owner, err := c.binding.UnpackOwner(out)
	if err != nil {
		return common.Address{}, &domain.RemoteError{Op: "owner", Err: err}
	}
	return owner, nil
}

// ContractBalance returns the registry's accumulated fee balance in wei.
func (c *ClientAdapter) ContractBalance(ctx context.Context) (*big.Int, error) {
	balance, err := c.node.BalanceAt(ctx, c.address, nil)
	if err != nil {
		return nil, &domain.RemoteError{Op: "eth_getBalance", Err: err}
	}
	return balance, nil
}

func (c *ClientAdapter) submit(ctx context.Context, from common.Address, value *big.Int, data []byte) (usecase.TxHandle, error) {
	hash, err := c.sender.SendTransaction(ctx, domain.TxRequest{
		From:  from,
		To:    c.address,
		Value: value,
		Data:  data,
	})
	if err != nil {
		return nil, err
	}
	c.log.Debug("transaction submitted", "hash", hash.Hex())
	return &txHandle{hash: hash, node: c.node, interval: c.interval}, nil
}

// Register submits a paid registration for a name. Too-short names are
// rejected here rather than left to revert on chain.
func (c *ClientAdapter) Register(ctx context.Context, from common.Address, name string, value *big.Int) (usecase.TxHandle, error) {
	if err := domain.ValidateName(name); err != nil {
		return nil, err
	}
	data, err := c.binding.TryPackRegister(name)
	if err != nil {
		return nil, err
	}
	return c.submit(ctx, from, value, data)
}

// SetRecord submits a record update for a name the caller owns.
func (c *ClientAdapter) SetRecord(ctx context.Context, from common.Address, name, record string) (usecase.TxHandle, error) {
	data, err := c.binding.TryPackSetRecord(name, record)
	if err != nil {
		return nil, err
	}
	return c.submit(ctx, from, nil, data)
}

// Withdraw submits a fee withdrawal. Ownership is checked by the caller
// before submission; the contract enforces it regardless.
func (c *ClientAdapter) Withdraw(ctx context.Context, from common.Address) (usecase.TxHandle, error) {
	return c.submit(ctx, from, nil, c.binding.PackWithdraw())
}

// GasPrice returns the node's suggested gas price.
func (c *ClientAdapter) GasPrice(ctx context.Context) (*big.Int, error) {
	price, err := c.node.SuggestGasPrice(ctx)
	if err != nil {
		return nil, &domain.RemoteError{Op: "eth_gasPrice", Err: err}
	}
	return price, nil
}

// BalanceAt returns an account's balance in wei.
func (c *ClientAdapter) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	balance, err := c.node.BalanceAt(ctx, account, nil)
	if err != nil {
		return nil, &domain.RemoteError{Op: "eth_getBalance", Err: err}
	}
	return balance, nil
}

var _ usecase.Registry = (*ClientAdapter)(nil)
var _ usecase.ChainReader = (*ClientAdapter)(nil)
