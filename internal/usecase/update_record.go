package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/blockns-org/bns-cli/internal/config"
	"github.com/blockns-org/bns-cli/internal/domain"
)

// ErrEmptyRecord rejects a record update with nothing to set.
var ErrEmptyRecord = errors.New("record must not be empty")

// UpdateRecordState is a stage in the record update sequence.
type UpdateRecordState string

const (
	UpdateValidating      UpdateRecordState = "Validating"
	UpdateSettingRecord   UpdateRecordState = "SettingRecord"
	UpdateAwaitReceipt    UpdateRecordState = "AwaitReceipt"
	UpdateRefreshingCache UpdateRecordState = "RefreshingCache"
	UpdateAborted         UpdateRecordState = "Aborted"
)

// UpdateRecord is the two-step edit sequence: validate, submit setRecord,
// await its receipt, then refresh the cache. No retry on any failure.
type UpdateRecord struct {
	cfg      *config.RuntimeConfig
	session  *WalletSession
	registry Registry
	refresh  *RefreshMints
	sink     ProgressSink
	log      *slog.Logger
}

// NewUpdateRecord creates a new UpdateRecord use case
func NewUpdateRecord(
	cfg *config.RuntimeConfig,
	session *WalletSession,
	registry Registry,
	refresh *RefreshMints,
	sink ProgressSink,
	log *slog.Logger,
) *UpdateRecord {
	return &UpdateRecord{
		cfg:      cfg,
		session:  session,
		registry: registry,
		refresh:  refresh,
		sink:     sink,
		log:      log.With("component", "edit"),
	}
}

// UpdateRecordParams contains parameters for updating a domain record
type UpdateRecordParams struct {
	Name   string
	Record string
}

// UpdateRecordResult describes a confirmed record update.
type UpdateRecordResult struct {
	Name       string
	Record     string
	Tx         domain.PendingAction
	TxURL      string
	CacheStale bool
}

// Run executes the record update.
func (uc *UpdateRecord) Run(ctx context.Context, params UpdateRecordParams) (*UpdateRecordResult, error) {
	account, err := uc.session.ActiveAccount()
	if err != nil {
		return nil, err
	}

	uc.step(ctx, UpdateValidating, fmt.Sprintf("Validating update for %q", params.Name))
	if err := domain.ValidateName(params.Name); err != nil {
		uc.abort(ctx, err)
		return nil, err
	}
	if params.Record == "" {
		uc.abort(ctx, ErrEmptyRecord)
		return nil, ErrEmptyRecord
	}

	uc.step(ctx, UpdateSettingRecord, fmt.Sprintf("Updating record for %s%s", params.Name, uc.cfg.TLD))
	handle, err := uc.registry.SetRecord(ctx, account, params.Name, params.Record)
	if err != nil {
		uc.abort(ctx, err)
		return nil, err
	}
	action := domain.PendingAction{
		Kind:        domain.TxSetRecord,
		SubmittedAt: time.Now(),
		Hash:        handle.Hash(),
		Status:      domain.TxPending,
	}

	uc.step(ctx, UpdateAwaitReceipt, "Waiting for confirmation")
	receipt, err := handle.Wait(ctx)
	if err != nil {
		uc.abort(ctx, err)
		return nil, err
	}
	if !receipt.Succeeded() {
		err := &domain.TransactionRejectedError{Kind: domain.TxSetRecord, Hash: action.Hash}
		uc.abort(ctx, err)
		return nil, err
	}
	action.Status = domain.TxConfirmed
	uc.log.Info("record updated", "name", params.Name, "tx", action.Hash.Hex())

	result := &UpdateRecordResult{
		Name:   params.Name,
		Record: params.Record,
		Tx:     action,
	}
	if network := uc.cfg.TargetNetwork(); network != nil {
		result.TxURL = network.TxURL(action.Hash)
	}

	uc.step(ctx, UpdateRefreshingCache, "Refreshing minted domains")
	if _, err := uc.refresh.Run(ctx); err != nil {
		uc.log.Warn("cache refresh after update failed", "err", err)
		result.CacheStale = true
	}

	return result, nil
}

func (uc *UpdateRecord) step(ctx context.Context, state UpdateRecordState, message string) {
	uc.log.Debug("state transition", "state", state)
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   string(state),
		Message: message,
		Spinner: state == UpdateAwaitReceipt,
	})
}

func (uc *UpdateRecord) abort(ctx context.Context, err error) {
	uc.log.Debug("state transition", "state", UpdateAborted, "err", err)
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: string(UpdateAborted), Message: err.Error()})
}
