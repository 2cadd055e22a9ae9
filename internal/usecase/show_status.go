package usecase

import (
	"context"
	"log/slog"
	"math/big"

	"github.com/blockns-org/bns-cli/internal/config"
	"github.com/blockns-org/bns-cli/internal/domain"
)

// ShowStatus reports the session header: active account, network and the
// registry contract's balance. It checks the connection silently and
// never prompts.
type ShowStatus struct {
	cfg      *config.RuntimeConfig
	session  *WalletSession
	registry Registry
	log      *slog.Logger
}

// NewShowStatus creates a new ShowStatus use case
func NewShowStatus(cfg *config.RuntimeConfig, session *WalletSession, registry Registry, log *slog.Logger) *ShowStatus {
	return &ShowStatus{
		cfg:      cfg,
		session:  session,
		registry: registry,
		log:      log,
	}
}

// ShowStatusResult contains the resolved session status.
type ShowStatusResult struct {
	Wallet      domain.WalletState
	NetworkName string
	// OnTargetChain is false when the wallet is on a different chain than
	// the registry; writes will be refused until the user switches
	OnTargetChain bool
	// ContractBalance is nil when the registry could not be reached
	ContractBalance *big.Int
	ContractAddress string
	// IsContractOwner reports whether the active account may withdraw
	IsContractOwner bool
}

// Run executes the status check.
func (uc *ShowStatus) Run(ctx context.Context) (*ShowStatusResult, error) {
	state, err := uc.session.CheckConnection(ctx)
	if err != nil {
		return nil, err
	}

	result := &ShowStatusResult{
		Wallet:          state,
		NetworkName:     uc.cfg.Networks.DisplayName(state.ChainID),
		OnTargetChain:   state.ChainID == uc.cfg.TargetChainID,
		ContractAddress: uc.cfg.ContractAddress.Hex(),
	}

	balance, err := uc.registry.ContractBalance(ctx)
	if err != nil {
		// status stays useful without the registry; report what we have
		uc.log.Warn("failed to fetch contract balance", "err", err)
	} else {
		result.ContractBalance = balance
	}

	if state.Connected() {
		owner, err := uc.registry.ContractOwner(ctx)
		if err != nil {
			uc.log.Warn("failed to fetch contract owner", "err", err)
		} else {
			result.IsContractOwner = owner == state.Account
		}
	}

	return result, nil
}
