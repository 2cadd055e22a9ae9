package usecase

import (
	"context"
	"log/slog"
	"math/big"
	"time"

	"github.com/blockns-org/bns-cli/internal/config"
	"github.com/blockns-org/bns-cli/internal/domain"
)

// WithdrawFunds drains the registry contract's balance to its owner. The
// owner check runs client-side as a fast pre-flight; the contract
// re-validates on-chain as the final guard.
type WithdrawFunds struct {
	cfg      *config.RuntimeConfig
	session  *WalletSession
	registry Registry
	sink     ProgressSink
	log      *slog.Logger
}

// NewWithdrawFunds creates a new WithdrawFunds use case
func NewWithdrawFunds(
	cfg *config.RuntimeConfig,
	session *WalletSession,
	registry Registry,
	sink ProgressSink,
	log *slog.Logger,
) *WithdrawFunds {
	return &WithdrawFunds{
		cfg:      cfg,
		session:  session,
		registry: registry,
		sink:     sink,
		log:      log.With("component", "withdraw"),
	}
}

// WithdrawFundsResult describes a confirmed withdrawal.
type WithdrawFundsResult struct {
	Tx    domain.PendingAction
	TxURL string
	// RemainingBalance is the contract balance re-fetched after the
	// withdrawal confirmed
	RemainingBalance *big.Int
}

// Run executes the withdrawal.
func (uc *WithdrawFunds) Run(ctx context.Context) (*WithdrawFundsResult, error) {
	account, err := uc.session.ActiveAccount()
	if err != nil {
		return nil, err
	}

	owner, err := uc.registry.ContractOwner(ctx)
	if err != nil {
		return nil, err
	}
	if owner != account {
		return nil, &domain.NotOwnerError{Caller: account, Owner: owner}
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "Withdrawing", Message: "Submitting withdrawal"})
	handle, err := uc.registry.Withdraw(ctx, account)
	if err != nil {
		return nil, err
	}
	action := domain.PendingAction{
		Kind:        domain.TxWithdraw,
		SubmittedAt: time.Now(),
		Hash:        handle.Hash(),
		Status:      domain.TxPending,
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "AwaitReceipt", Message: "Waiting for confirmation", Spinner: true})
	receipt, err := handle.Wait(ctx)
	if err != nil {
		return nil, err
	}
	if !receipt.Succeeded() {
		return nil, &domain.TransactionRejectedError{Kind: domain.TxWithdraw, Hash: action.Hash}
	}
	action.Status = domain.TxConfirmed
	uc.log.Info("funds withdrawn", "tx", action.Hash.Hex())

	result := &WithdrawFundsResult{Tx: action}
	if network := uc.cfg.TargetNetwork(); network != nil {
		result.TxURL = network.TxURL(action.Hash)
	}

	balance, err := uc.registry.ContractBalance(ctx)
	if err != nil {
		// the withdrawal is confirmed; a stale balance is display-only
		uc.log.Warn("failed to re-fetch contract balance", "err", err)
		return result, nil
	}
	result.RemainingBalance = balance

	return result, nil
}
