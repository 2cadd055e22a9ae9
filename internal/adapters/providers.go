package adapters

import (
	"os"

	"github.com/google/wire"

	"github.com/blockns-org/bns-cli/internal/adapters/cache"
	"github.com/blockns-org/bns-cli/internal/adapters/interactive"
	"github.com/blockns-org/bns-cli/internal/adapters/progress"
	"github.com/blockns-org/bns-cli/internal/adapters/registry"
	"github.com/blockns-org/bns-cli/internal/adapters/wallet"
	"github.com/blockns-org/bns-cli/internal/config"
	"github.com/blockns-org/bns-cli/internal/usecase"
)

// ProvideTxProgress provides the terminal progress reporter.
func ProvideTxProgress(cfg *config.RuntimeConfig) *progress.TxProgress {
	return progress.NewTxProgress(os.Stdout, !cfg.NonInteractive)
}

// WalletSet provides the wallet-bridge implementations
var WalletSet = wire.NewSet(
	wallet.NewProviderAdapter,
	wire.Bind(new(usecase.WalletProvider), new(*wallet.ProviderAdapter)),
	wire.Bind(new(usecase.TransactionSender), new(*wallet.ProviderAdapter)),
)

// RegistrySet provides the contract-backed implementations
var RegistrySet = wire.NewSet(
	registry.NewClientAdapter,
	wire.Bind(new(usecase.Registry), new(*registry.ClientAdapter)),
	wire.Bind(new(usecase.ChainReader), new(*registry.ClientAdapter)),
)

// CacheSet provides the in-memory mint cache
var CacheSet = wire.NewSet(
	cache.NewMintCache,
	wire.Bind(new(usecase.MintRepository), new(*cache.MintCache)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.MintSelector), new(*interactive.SelectorAdapter)),

	interactive.NewPrompterAdapter,
	wire.Bind(new(usecase.RecordPrompter), new(*interactive.PrompterAdapter)),
)

// ProgressSet provides the terminal progress reporter
var ProgressSet = wire.NewSet(
	ProvideTxProgress,
	wire.Bind(new(usecase.ProgressSink), new(*progress.TxProgress)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	WalletSet,
	RegistrySet,
	CacheSet,
	InteractiveSet,
	ProgressSet,
)
