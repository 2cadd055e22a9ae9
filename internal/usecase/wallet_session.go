package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/blockns-org/bns-cli/internal/config"
	"github.com/blockns-org/bns-cli/internal/domain"
)

// WalletSession tracks the connected account and active chain. It is the
// single process-wide owner of WalletState: the provider event handlers
// registered in Init are the only writers, and they run one at a time in
// arrival order.
type WalletSession struct {
	cfg      *config.RuntimeConfig
	provider WalletProvider
	log      *slog.Logger

	mu    sync.RWMutex
	state domain.WalletState

	// reload is invoked after every account or chain change. The policy is
	// a conservative full reload of dependent state, not incremental
	// reconciliation.
	reload func(ctx context.Context)
}

// NewWalletSession creates a wallet session over the given provider.
func NewWalletSession(cfg *config.RuntimeConfig, provider WalletProvider, log *slog.Logger) *WalletSession {
	return &WalletSession{
		cfg:      cfg,
		provider: provider,
		log:      log.With("component", "wallet"),
		reload:   func(context.Context) {},
	}
}

// OnReload registers the hook run after account or chain changes.
func (s *WalletSession) OnReload(fn func(ctx context.Context)) {
	if fn != nil {
		s.reload = fn
	}
}

// Init subscribes the session to provider change events. Call once at
// session start, before Connect or CheckConnection.
func (s *WalletSession) Init(ctx context.Context) {
	s.provider.OnAccountsChanged(func(accounts []common.Address) {
		s.handleAccountsChanged(ctx, accounts)
	})
	s.provider.OnChainChanged(func(chainID string) {
		s.handleChainChanged(ctx, chainID)
	})
}

// Connect requests account authorization from the provider. On success
// the first returned address becomes the active account.
func (s *WalletSession) Connect(ctx context.Context) (domain.WalletState, error) {
	accounts, err := s.provider.RequestAccounts(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoProvider) {
			return domain.WalletState{}, err
		}
		return domain.WalletState{}, fmt.Errorf("account authorization failed: %w", err)
	}
	if len(accounts) == 0 {
		return domain.WalletState{}, domain.ErrNotConnected
	}

	chainID, err := s.provider.ChainID(ctx)
	if err != nil {
		return domain.WalletState{}, fmt.Errorf("failed to get chain ID: %w", err)
	}

	s.mu.Lock()
	s.state.Account = accounts[0]
	s.state.ChainID = chainID
	state := s.state
	s.mu.Unlock()

	s.log.Info("wallet connected", "account", state.Account.Hex(), "chain", state.ChainID)
	return state, nil
}

// CheckConnection silently queries already-authorized accounts and the
// active chain. Same state transitions as Connect but never prompts.
func (s *WalletSession) CheckConnection(ctx context.Context) (domain.WalletState, error) {
	accounts, err := s.provider.Accounts(ctx)
	if err != nil {
		return domain.WalletState{}, err
	}

	chainID, err := s.provider.ChainID(ctx)
	if err != nil {
		return domain.WalletState{}, fmt.Errorf("failed to get chain ID: %w", err)
	}

	s.mu.Lock()
	if len(accounts) > 0 {
		s.state.Account = accounts[0]
	} else {
		s.state.Account = common.Address{}
	}
	s.state.ChainID = chainID
	state := s.state
	s.mu.Unlock()

	return state, nil
}

// State returns a snapshot of the current wallet state.
func (s *WalletSession) State() domain.WalletState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// ActiveAccount returns the connected account, or ErrNotConnected.
func (s *WalletSession) ActiveAccount() (common.Address, error) {
	state := s.State()
	if !state.Connected() {
		return common.Address{}, domain.ErrNotConnected
	}
	return state.Account, nil
}

// OnTargetChain reports whether the active chain is the registry's chain.
func (s *WalletSession) OnTargetChain() bool {
	return s.State().ChainID == s.cfg.TargetChainID
}

// SwitchNetwork asks the provider to activate the target chain. When the
// provider does not know the chain it registers the chain's parameters
// from the network table and retries the switch exactly once. Any other
// error is surfaced, not retried.
func (s *WalletSession) SwitchNetwork(ctx context.Context, chainID string) error {
	err := s.provider.SwitchChain(ctx, chainID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrChainUnsupported) {
		return err
	}

	network := s.cfg.Networks.ByChainID(chainID)
	if network == nil {
		return fmt.Errorf("chain %s is not in the network table: %w", chainID, domain.ErrChainUnsupported)
	}

	s.log.Info("registering chain with wallet provider", "chain", chainID, "name", network.Name)
	if err := s.provider.AddChain(ctx, network.Descriptor()); err != nil {
		return fmt.Errorf("failed to add chain %s to wallet: %w", chainID, err)
	}
	return s.provider.SwitchChain(ctx, chainID)
}

// Close tears the session down and stops provider event delivery.
func (s *WalletSession) Close() error {
	return s.provider.Close()
}

func (s *WalletSession) handleAccountsChanged(ctx context.Context, accounts []common.Address) {
	s.mu.Lock()
	if len(accounts) > 0 {
		s.state.Account = accounts[0]
	} else {
		s.state.Account = common.Address{}
	}
	state := s.state
	s.mu.Unlock()

	if state.Connected() {
		s.log.Info("active account changed", "account", state.Account.Hex())
	} else {
		s.log.Info("wallet disconnected")
	}
	s.reload(ctx)
}

func (s *WalletSession) handleChainChanged(ctx context.Context, chainID string) {
	s.mu.Lock()
	s.state.ChainID = chainID
	s.mu.Unlock()

	s.log.Info("active chain changed", "chain", chainID)
	s.reload(ctx)
}
