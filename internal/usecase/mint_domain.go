package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/blockns-org/bns-cli/internal/config"
	"github.com/blockns-org/bns-cli/internal/domain"
)

// MintState is a stage in the mint orchestration.
type MintState string

const (
	MintIdle                 MintState = "Idle"
	MintValidating           MintState = "Validating"
	MintPriceCheck           MintState = "PriceCheck"
	MintBalanceCheck         MintState = "BalanceCheck"
	MintRegistering          MintState = "Registering"
	MintAwaitRegisterReceipt MintState = "AwaitRegisterReceipt"
	MintSettingRecord        MintState = "SettingRecord"
	MintAwaitRecordReceipt   MintState = "AwaitRecordReceipt"
	MintRefreshingCache      MintState = "RefreshingCache"
	MintAborted              MintState = "Aborted"
)

// MintDomain orchestrates a domain registration end to end: validation,
// price and balance guards, the register transaction, the record
// transaction, then a cache refresh. Every step strictly follows observed
// confirmation of the previous transactional step, partial failure leaves
// state consistent with the last confirmed on-chain fact, and nothing is
// ever retried automatically.
type MintDomain struct {
	cfg      *config.RuntimeConfig
	session  *WalletSession
	registry Registry
	reader   ChainReader
	refresh  *RefreshMints
	sink     ProgressSink
	log      *slog.Logger
}

// NewMintDomain creates a new MintDomain use case
func NewMintDomain(
	cfg *config.RuntimeConfig,
	session *WalletSession,
	registry Registry,
	reader ChainReader,
	refresh *RefreshMints,
	sink ProgressSink,
	log *slog.Logger,
) *MintDomain {
	return &MintDomain{
		cfg:      cfg,
		session:  session,
		registry: registry,
		reader:   reader,
		refresh:  refresh,
		sink:     sink,
		log:      log.With("component", "mint"),
	}
}

// MintDomainParams contains parameters for minting a domain
type MintDomainParams struct {
	Name   string
	Record string // may be empty
}

// MintDomainResult describes a completed mint.
type MintDomainResult struct {
	Name      string
	Record    string
	Price     *big.Int
	Register  domain.PendingAction
	SetRecord domain.PendingAction
	// Explorer links for the two transactions, "" when no explorer is
	// configured for the target network
	RegisterTxURL string
	RecordTxURL   string
	// CacheStale is set when the post-mint cache refresh failed; the mint
	// itself is confirmed regardless
	CacheStale bool
}

// Run executes the mint state machine.
func (uc *MintDomain) Run(ctx context.Context, params MintDomainParams) (*MintDomainResult, error) {
	account, err := uc.session.ActiveAccount()
	if err != nil {
		return nil, err
	}

	// Validating
	uc.transition(ctx, MintValidating, fmt.Sprintf("Validating %q", params.Name))
	if err := domain.ValidateName(params.Name); err != nil {
		uc.abort(ctx, err)
		return nil, err
	}

	// PriceCheck: pure tier lookup, must match the contract's pricing
	uc.transition(ctx, MintPriceCheck, "Computing registration price")
	price := domain.PriceFor(params.Name)
	uc.log.Debug("price computed", "name", params.Name, "wei", price)

	// BalanceCheck: advisory guard against a doomed submission
	uc.transition(ctx, MintBalanceCheck, "Checking wallet balance")
	gasPrice, err := uc.reader.GasPrice(ctx)
	if err != nil {
		uc.abort(ctx, err)
		return nil, err
	}
	balance, err := uc.reader.BalanceAt(ctx, account)
	if err != nil {
		uc.abort(ctx, err)
		return nil, err
	}
	if err := domain.CheckFunds(balance, price, gasPrice); err != nil {
		uc.abort(ctx, err)
		return nil, err
	}

	// Registering
	uc.transition(ctx, MintRegistering, fmt.Sprintf("Registering %s%s", params.Name, uc.cfg.TLD))
	handle, err := uc.registry.Register(ctx, account, params.Name, price)
	if err != nil {
		uc.abort(ctx, err)
		return nil, err
	}
	registerAction := domain.PendingAction{
		Kind:        domain.TxRegister,
		SubmittedAt: time.Now(),
		Hash:        handle.Hash(),
		Status:      domain.TxPending,
	}

	// AwaitRegisterReceipt: suspend until the receipt is observed. A
	// failed receipt is terminal; the record step is skipped and the
	// domain is not considered minted.
	uc.transition(ctx, MintAwaitRegisterReceipt, "Waiting for registration confirmation")
	receipt, err := handle.Wait(ctx)
	if err != nil {
		uc.abort(ctx, err)
		return nil, err
	}
	if !receipt.Succeeded() {
		registerAction.Status = domain.TxFailed
		err := &domain.TransactionRejectedError{Kind: domain.TxRegister, Hash: registerAction.Hash}
		uc.abort(ctx, err)
		return nil, err
	}
	registerAction.Status = domain.TxConfirmed
	uc.log.Info("domain registered", "name", params.Name, "tx", registerAction.Hash.Hex())

	// SettingRecord: record may be the empty string
	uc.transition(ctx, MintSettingRecord, "Setting domain record")
	recordHandle, err := uc.registry.SetRecord(ctx, account, params.Name, params.Record)
	if err != nil {
		uc.abort(ctx, err)
		return nil, err
	}
	recordAction := domain.PendingAction{
		Kind:        domain.TxSetRecord,
		SubmittedAt: time.Now(),
		Hash:        recordHandle.Hash(),
		Status:      domain.TxPending,
	}

	uc.transition(ctx, MintAwaitRecordReceipt, "Waiting for record confirmation")
	recordReceipt, err := recordHandle.Wait(ctx)
	if err != nil {
		uc.abort(ctx, err)
		return nil, err
	}
	if !recordReceipt.Succeeded() {
		recordAction.Status = domain.TxFailed
		err := &domain.TransactionRejectedError{Kind: domain.TxSetRecord, Hash: recordAction.Hash}
		uc.abort(ctx, err)
		return nil, err
	}
	recordAction.Status = domain.TxConfirmed
	uc.log.Info("record set", "name", params.Name, "tx", recordAction.Hash.Hex())

	result := &MintDomainResult{
		Name:      params.Name,
		Record:    params.Record,
		Price:     price,
		Register:  registerAction,
		SetRecord: recordAction,
	}
	if network := uc.cfg.TargetNetwork(); network != nil {
		result.RegisterTxURL = network.TxURL(registerAction.Hash)
		result.RecordTxURL = network.TxURL(recordAction.Hash)
	}

	// RefreshingCache: a refresh failure only affects display freshness,
	// never the outcome of the mint
	uc.transition(ctx, MintRefreshingCache, "Refreshing minted domains")
	if _, err := uc.refresh.Run(ctx); err != nil {
		uc.log.Warn("cache refresh after mint failed", "err", err)
		result.CacheStale = true
	}

	uc.transition(ctx, MintIdle, "Mint complete")
	return result, nil
}

func (uc *MintDomain) transition(ctx context.Context, state MintState, message string) {
	uc.log.Debug("state transition", "state", state)
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   string(state),
		Message: message,
		Spinner: state == MintAwaitRegisterReceipt || state == MintAwaitRecordReceipt,
	})
}

func (uc *MintDomain) abort(ctx context.Context, err error) {
	uc.log.Debug("state transition", "state", MintAborted, "err", err)
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: string(MintAborted), Message: err.Error()})
}
