package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"

	"github.com/blockns-org/bns-cli/internal/domain"
)

// ErrNoOwnedDomains is returned when the active account owns nothing to edit.
var ErrNoOwnedDomains = errors.New("the connected account owns no domains")

// ErrEditCancelled is returned when the user backs out of edit mode.
var ErrEditCancelled = errors.New("edit cancelled")

// EditRecord drives interactive edit mode: pick one of the account's own
// domains, prompt for a new record, then run the record update. Entering
// edit mode is purely local; the first network call is the setRecord
// submission inside UpdateRecord. Only one edit session may be active.
type EditRecord struct {
	session  *WalletSession
	mints    MintRepository
	refresh  *RefreshMints
	update   *UpdateRecord
	selector MintSelector
	prompter RecordPrompter
	log      *slog.Logger

	mu   sync.Mutex
	edit domain.EditSession
}

// NewEditRecord creates a new EditRecord use case
func NewEditRecord(
	session *WalletSession,
	mints MintRepository,
	refresh *RefreshMints,
	update *UpdateRecord,
	selector MintSelector,
	prompter RecordPrompter,
	log *slog.Logger,
) *EditRecord {
	return &EditRecord{
		session:  session,
		mints:    mints,
		refresh:  refresh,
		update:   update,
		selector: selector,
		prompter: prompter,
		log:      log.With("component", "edit"),
	}
}

// EditRecordParams contains parameters for the interactive edit flow
type EditRecordParams struct {
	// Name preselects the domain to edit; when empty the user picks one
	// of the domains the active account owns
	Name string
}

// Run executes the interactive edit flow.
func (uc *EditRecord) Run(ctx context.Context, params EditRecordParams) (*UpdateRecordResult, error) {
	account, err := uc.session.ActiveAccount()
	if err != nil {
		return nil, err
	}

	target, current, err := uc.resolveTarget(ctx, account, params.Name)
	if err != nil {
		return nil, err
	}

	if err := uc.begin(target); err != nil {
		return nil, err
	}
	defer uc.end()

	record, err := uc.prompter.PromptRecord(ctx, target, current)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEditCancelled, err)
	}

	return uc.update.Run(ctx, UpdateRecordParams{Name: target, Record: record})
}

// begin activates the exclusive edit session.
func (uc *EditRecord) begin(name string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.edit.Active {
		return domain.ErrEditSessionActive
	}
	uc.edit = domain.EditSession{Active: true, TargetName: name}
	uc.log.Debug("edit session started", "name", name)
	return nil
}

// end clears the edit session on cancel or after a successful update.
func (uc *EditRecord) end() {
	uc.mu.Lock()
	uc.edit = domain.EditSession{}
	uc.mu.Unlock()
}

// Session returns a snapshot of the edit session state.
func (uc *EditRecord) Session() domain.EditSession {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.edit
}

func (uc *EditRecord) resolveTarget(ctx context.Context, account common.Address, name string) (target, current string, err error) {
	if _, err := uc.refresh.Run(ctx); err != nil {
		return "", "", err
	}

	owned := lo.Filter(uc.mints.List(), func(m domain.Mint, _ int) bool {
		return m.Owner == account
	})

	if name != "" {
		mint, found := lo.Find(owned, func(m domain.Mint) bool { return m.Name == name })
		if !found {
			return "", "", fmt.Errorf("domain %q is not owned by the connected account", name)
		}
		return mint.Name, mint.Record, nil
	}

	if len(owned) == 0 {
		return "", "", ErrNoOwnedDomains
	}

	mint, err := uc.selector.SelectMint(ctx, owned, "Select a domain to edit")
	if err != nil {
		return "", "", ErrEditCancelled
	}
	return mint.Name, mint.Record, nil
}
