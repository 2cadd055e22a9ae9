//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/blockns-org/bns-cli/internal/adapters"
	"github.com/blockns-org/bns-cli/internal/cli/render"
	"github.com/blockns-org/bns-cli/internal/config"
	"github.com/blockns-org/bns-cli/internal/logging"
	"github.com/blockns-org/bns-cli/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration and logging
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewWalletSession,
		usecase.NewRefreshMints,
		usecase.NewShowStatus,
		usecase.NewMintDomain,
		usecase.NewUpdateRecord,
		usecase.NewEditRecord,
		usecase.NewListMints,
		usecase.NewWithdrawFunds,

		// Renderers
		provideStdout,
		render.NewStatusRenderer,
		render.NewMintsRenderer,
		render.NewMintRenderer,
		render.NewUpdateRenderer,
		render.NewWithdrawRenderer,
		render.NewNetworksRenderer,

		// App
		NewApp,
	)
	return nil, nil
}
