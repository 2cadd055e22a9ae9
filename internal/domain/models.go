package domain

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// WalletState is the process-wide view of the connected wallet. It is
// written only by the wallet session's provider-event handlers.
type WalletState struct {
	// Account is the active account, or the zero address while disconnected
	Account common.Address
	// ChainID is the active chain as a 0x-prefixed hex string, or "" if unknown
	ChainID string
}

// Connected reports whether the provider has an authorized account.
func (s WalletState) Connected() bool {
	return s.Account != (common.Address{})
}

// Mint is a denormalized snapshot of a registered domain plus its
// enumeration position. ID is re-derived on every cache refresh and is
// not stable across refreshes.
type Mint struct {
	ID     int
	Name   string
	Record string
	Owner  common.Address
}

// TxKind identifies the write operation behind a pending transaction.
type TxKind string

const (
	TxRegister  TxKind = "register"
	TxSetRecord TxKind = "setRecord"
	TxWithdraw  TxKind = "withdraw"
)

// TxStatus is the lifecycle state of a pending transaction.
type TxStatus string

const (
	TxPending   TxStatus = "pending"
	TxConfirmed TxStatus = "confirmed"
	TxFailed    TxStatus = "failed"
)

// TxRequest describes a transaction handed to the wallet provider for
// signing and broadcast.
type TxRequest struct {
	From  common.Address
	To    common.Address
	Value *big.Int
	Data  []byte
}

// PendingAction is a transient in-flight transaction. It is created when a
// write is submitted, transitions on receipt and is then discarded.
type PendingAction struct {
	Kind        TxKind
	SubmittedAt time.Time
	Hash        common.Hash
	Status      TxStatus
}

// Receipt is the confirmed outcome of a submitted transaction.
type Receipt struct {
	TxHash      common.Hash
	Status      uint64
	BlockNumber uint64
	GasUsed     uint64
}

// Succeeded reports whether the transaction executed successfully.
func (r *Receipt) Succeeded() bool {
	return r.Status == 1
}

// EditSession is the exclusive local edit mode for a single domain.
// At most one session is active; it is cleared on cancel or after a
// successful record update.
type EditSession struct {
	Active     bool
	TargetName string
}

// NativeCurrency describes a chain's native token for add-chain requests.
type NativeCurrency struct {
	Name     string `yaml:"name" json:"name"`
	Symbol   string `yaml:"symbol" json:"symbol"`
	Decimals int    `yaml:"decimals" json:"decimals"`
}

// ChainDescriptor carries the parameters needed to register a chain with
// the wallet provider (EIP-3085 wallet_addEthereumChain).
type ChainDescriptor struct {
	ChainID           string         `yaml:"chainId" json:"chainId"`
	ChainName         string         `yaml:"chainName" json:"chainName"`
	RPCURLs           []string       `yaml:"rpcUrls" json:"rpcUrls"`
	NativeCurrency    NativeCurrency `yaml:"nativeCurrency" json:"nativeCurrency"`
	BlockExplorerURLs []string       `yaml:"blockExplorerUrls" json:"blockExplorerUrls"`
}
