package domain

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Sentinel errors for wallet and registry operations
var (
	// ErrNoProvider is returned when no wallet provider is reachable
	ErrNoProvider = errors.New("no wallet provider available (install a wallet extension or point --wallet-rpc at one)")

	// ErrChainUnsupported is returned when the target chain is unknown to the provider
	ErrChainUnsupported = errors.New("chain not registered with wallet provider")

	// ErrNotConnected is returned when an operation requires an authorized account
	ErrNotConnected = errors.New("wallet not connected")

	// ErrEditSessionActive is returned when a second edit session is requested
	ErrEditSessionActive = errors.New("another record edit is already in progress")
)

// NameTooShortError is returned before any network call when a candidate
// domain name is below the registry minimum.
type NameTooShortError struct {
	Name string
}

func (e *NameTooShortError) Error() string {
	return fmt.Sprintf("domain %q is too short: must be at least %d characters", e.Name, MinNameLength)
}

// InsufficientFundsError is the pre-flight balance guard failure. The
// remote contract remains the final authority; this only prevents a
// doomed submission.
type InsufficientFundsError struct {
	Balance  *big.Int
	Required *big.Int
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: balance %s wei, need %s wei (price + gas)", e.Balance, e.Required)
}

// NotOwnerError is returned when an owner-only action is attempted by
// another account.
type NotOwnerError struct {
	Caller common.Address
	Owner  common.Address
}

func (e *NotOwnerError) Error() string {
	return fmt.Sprintf("account %s is not the registry owner (%s)", e.Caller.Hex(), e.Owner.Hex())
}

// TransactionRejectedError is returned when a submitted transaction's
// receipt reports failure. The client never retries; the action must be
// re-initiated by the user.
type TransactionRejectedError struct {
	Kind TxKind
	Hash common.Hash
}

func (e *TransactionRejectedError) Error() string {
	return fmt.Sprintf("%s transaction %s reverted on-chain", e.Kind, e.Hash.Hex())
}

// RemoteError wraps provider or node faults that have no more specific
// classification.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote call %s failed: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
