package wallet

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/blockns-org/bns-cli/internal/config"
	"github.com/blockns-org/bns-cli/internal/domain"
	"github.com/blockns-org/bns-cli/internal/usecase"
)

// chainMissingCode is the provider error code meaning the requested chain
// has not been added to the wallet (EIP-3085 remediation applies).
const chainMissingCode = 4902

// ProviderAdapter implements the WalletProvider port against an external
// EIP-1193 wallet bridge speaking JSON-RPC. Change notifications are
// emulated by polling eth_accounts and eth_chainId and dispatching
// handlers serially when a value changes.
type ProviderAdapter struct {
	client       *rpc.Client
	log          *slog.Logger
	pollInterval time.Duration

	mu               sync.Mutex
	accountsHandlers []func([]common.Address)
	chainHandlers    []func(string)
	lastAccounts     []common.Address
	accountsSeen     bool
	lastChainID      string
	chainSeen        bool
	stop             chan struct{}
	stopped          sync.Once
}

// NewProviderAdapter dials the wallet bridge endpoint. A missing or
// unreachable endpoint maps to ErrNoProvider so callers can direct the
// user to install or start a wallet.
func NewProviderAdapter(cfg *config.RuntimeConfig, log *slog.Logger) (*ProviderAdapter, error) {
	if cfg.WalletRPC == "" {
		return nil, domain.ErrNoProvider
	}
	client, err := rpc.Dial(cfg.WalletRPC)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNoProvider, err)
	}

	p := &ProviderAdapter{
		client:       client,
		log:          log.With("component", "provider"),
		pollInterval: cfg.PollInterval,
		stop:         make(chan struct{}),
	}
	go p.watch()
	return p, nil
}

// RequestAccounts prompts the wallet user for account authorization.
func (p *ProviderAdapter) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	var accounts []common.Address
	if err := p.client.CallContext(ctx, &accounts, "eth_requestAccounts"); err != nil {
		return nil, &domain.RemoteError{Op: "eth_requestAccounts", Err: err}
	}
	p.observeAccounts(accounts)
	return accounts, nil
}

// Accounts returns already-authorized accounts without prompting.
func (p *ProviderAdapter) Accounts(ctx context.Context) ([]common.Address, error) {
	var accounts []common.Address
	if err := p.client.CallContext(ctx, &accounts, "eth_accounts"); err != nil {
		return nil, &domain.RemoteError{Op: "eth_accounts", Err: err}
	}
	p.observeAccounts(accounts)
	return accounts, nil
}

// ChainID returns the active chain as a 0x-prefixed hex string.
func (p *ProviderAdapter) ChainID(ctx context.Context) (string, error) {
	var chainID string
	if err := p.client.CallContext(ctx, &chainID, "eth_chainId"); err != nil {
		return "", &domain.RemoteError{Op: "eth_chainId", Err: err}
	}
	chainID = strings.ToLower(chainID)
	p.observeChain(chainID)
	return chainID, nil
}

// switchChainParams is the wallet_switchEthereumChain request payload.
type switchChainParams struct {
	ChainID string `json:"chainId"`
}

// SwitchChain asks the wallet to activate the given chain.
func (p *ProviderAdapter) SwitchChain(ctx context.Context, chainID string) error {
	err := p.client.CallContext(ctx, nil, "wallet_switchEthereumChain", switchChainParams{ChainID: chainID})
	if err == nil {
		return nil
	}
	if rpcErr, ok := err.(rpc.Error); ok && rpcErr.ErrorCode() == chainMissingCode {
		return fmt.Errorf("chain %s: %w", chainID, domain.ErrChainUnsupported)
	}
	return &domain.RemoteError{Op: "wallet_switchEthereumChain", Err: err}
}

// AddChain registers a chain's RPC parameters with the wallet.
func (p *ProviderAdapter) AddChain(ctx context.Context, descriptor domain.ChainDescriptor) error {
	if err := p.client.CallContext(ctx, nil, "wallet_addEthereumChain", descriptor); err != nil {
		return &domain.RemoteError{Op: "wallet_addEthereumChain", Err: err}
	}
	return nil
}

// sendTxArgs is the eth_sendTransaction parameter object. Gas fields are
// omitted so the wallet estimates and prices the transaction itself.
type sendTxArgs struct {
	From  common.Address  `json:"from"`
	To    *common.Address `json:"to,omitempty"`
	Value *hexutil.Big    `json:"value,omitempty"`
	Data  hexutil.Bytes   `json:"data,omitempty"`
}

// SendTransaction hands a transaction to the wallet for signing and
// broadcast and returns the resulting hash.
func (p *ProviderAdapter) SendTransaction(ctx context.Context, tx domain.TxRequest) (common.Hash, error) {
	args := sendTxArgs{
		From: tx.From,
		To:   &tx.To,
		Data: tx.Data,
	}
	if tx.Value != nil && tx.Value.Sign() > 0 {
		args.Value = (*hexutil.Big)(tx.Value)
	}
	var hash common.Hash
	if err := p.client.CallContext(ctx, &hash, "eth_sendTransaction", args); err != nil {
		return common.Hash{}, &domain.RemoteError{Op: "eth_sendTransaction", Err: err}
	}
	return hash, nil
}

// OnAccountsChanged registers a handler for account-list changes.
func (p *ProviderAdapter) OnAccountsChanged(handler func(accounts []common.Address)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.accountsHandlers = append(p.accountsHandlers, handler)
}

// OnChainChanged registers a handler for active-chain changes.
func (p *ProviderAdapter) OnChainChanged(handler func(chainID string)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.chainHandlers = append(p.chainHandlers, handler)
}

// Close stops the event loop and releases the connection.
func (p *ProviderAdapter) Close() error {
	p.stopped.Do(func() {
		close(p.stop)
		p.client.Close()
	})
	return nil
}

// watch polls the wallet for account and chain changes. Handlers run on
// this goroutine, one at a time, in arrival order.
func (p *ProviderAdapter) watch() {
	interval := p.pollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
		}

		ctx, cancel := context.WithTimeout(context.Background(), interval)
		var accounts []common.Address
		accErr := p.client.CallContext(ctx, &accounts, "eth_accounts")
		var chainID string
		chainErr := p.client.CallContext(ctx, &chainID, "eth_chainId")
		cancel()

		if accErr != nil || chainErr != nil {
			p.log.Debug("provider poll failed", "accountsErr", accErr, "chainErr", chainErr)
			continue
		}

		p.observeAccounts(accounts)
		p.observeChain(strings.ToLower(chainID))
	}
}

// observeAccounts dispatches accountsChanged when the list differs from
// the last observed one. The first observation establishes the baseline
// and is never a change.
func (p *ProviderAdapter) observeAccounts(accounts []common.Address) {
	p.mu.Lock()
	changed := p.accountsSeen && !sameAccounts(p.lastAccounts, accounts)
	p.accountsSeen = true
	p.lastAccounts = append([]common.Address{}, accounts...)
	handlers := append([]func([]common.Address){}, p.accountsHandlers...)
	p.mu.Unlock()

	if !changed {
		return
	}
	for _, handler := range handlers {
		handler(accounts)
	}
}

// observeChain dispatches chainChanged when the chain differs from the
// last observed one.
func (p *ProviderAdapter) observeChain(chainID string) {
	p.mu.Lock()
	changed := p.chainSeen && p.lastChainID != chainID
	p.chainSeen = true
	p.lastChainID = chainID
	handlers := append([]func(string){}, p.chainHandlers...)
	p.mu.Unlock()

	if !changed {
		return
	}
	for _, handler := range handlers {
		handler(chainID)
	}
}

func sameAccounts(a, b []common.Address) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Ensure the adapter implements the interface
var _ usecase.WalletProvider = (*ProviderAdapter)(nil)
var _ usecase.TransactionSender = (*ProviderAdapter)(nil)
