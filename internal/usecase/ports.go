package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/blockns-org/bns-cli/internal/domain"
)

// WalletProvider is the injected-wallet surface the session consumes:
// account authorization, chain queries, chain switching and change
// notifications. Implementations talk EIP-1193 to an external wallet.
type WalletProvider interface {
	// RequestAccounts prompts the user to authorize accounts
	RequestAccounts(ctx context.Context) ([]common.Address, error)
	// Accounts returns already-authorized accounts without prompting
	Accounts(ctx context.Context) ([]common.Address, error)
	// ChainID returns the active chain as a 0x-prefixed hex string
	ChainID(ctx context.Context) (string, error)
	// SwitchChain asks the provider to activate the given chain. Returns
	// domain.ErrChainUnsupported when the provider does not know it.
	SwitchChain(ctx context.Context, chainID string) error
	// AddChain registers a chain's RPC parameters with the provider
	AddChain(ctx context.Context, descriptor domain.ChainDescriptor) error
	// OnAccountsChanged registers the handler for account-list changes
	OnAccountsChanged(handler func(accounts []common.Address))
	// OnChainChanged registers the handler for active-chain changes
	OnChainChanged(handler func(chainID string))
	// Close stops event delivery and releases the provider connection
	Close() error
}

// TxHandle is a pending-transaction handle returned by every write. Wait
// blocks until the receipt is observed; there is no fire-and-forget path.
type TxHandle interface {
	Hash() common.Hash
	Wait(ctx context.Context) (*domain.Receipt, error)
}

// Registry is the typed facade over the remote name registry contract.
// Read operations are side-effect-free and safe to issue concurrently.
type Registry interface {
	AllNames(ctx context.Context) ([]string, error)
	Record(ctx context.Context, name string) (string, error)
	DomainOwner(ctx context.Context, name string) (common.Address, error)
	ContractOwner(ctx context.Context) (common.Address, error)
	ContractBalance(ctx context.Context) (*big.Int, error)

	Register(ctx context.Context, from common.Address, name string, value *big.Int) (TxHandle, error)
	SetRecord(ctx context.Context, from common.Address, name, record string) (TxHandle, error)
	Withdraw(ctx context.Context, from common.Address) (TxHandle, error)
}

// TransactionSender submits a transaction for signing and broadcast by
// the wallet provider (the client never holds a private key).
type TransactionSender interface {
	SendTransaction(ctx context.Context, tx domain.TxRequest) (common.Hash, error)
}

// ChainReader exposes the node reads the orchestrators need outside the
// registry contract itself.
type ChainReader interface {
	GasPrice(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address) (*big.Int, error)
}

// MintRepository is the in-memory cache of registered domains. Replace
// swaps the whole list atomically; there is no incremental diffing.
type MintRepository interface {
	Replace(mints []domain.Mint)
	List() []domain.Mint
	Recent(n int) []domain.Mint
}

// MintSelector handles interactive selection of a cached domain.
type MintSelector interface {
	SelectMint(ctx context.Context, mints []domain.Mint, prompt string) (*domain.Mint, error)
}

// RecordPrompter asks the user for a new record value in interactive mode.
type RecordPrompter interface {
	PromptRecord(ctx context.Context, name, current string) (string, error)
}

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
