package app

import (
	"context"
	"io"
	"os"

	"github.com/blockns-org/bns-cli/internal/cli/render"
	"github.com/blockns-org/bns-cli/internal/config"
	"github.com/blockns-org/bns-cli/internal/usecase"
)

// provideStdout provides the writer renderers print to.
func provideStdout() io.Writer {
	return os.Stdout
}

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Shared wallet session
	Session *usecase.WalletSession

	// Use cases
	ShowStatus    *usecase.ShowStatus
	MintDomain    *usecase.MintDomain
	UpdateRecord  *usecase.UpdateRecord
	EditRecord    *usecase.EditRecord
	ListMints     *usecase.ListMints
	RefreshMints  *usecase.RefreshMints
	WithdrawFunds *usecase.WithdrawFunds

	// Renderers
	StatusRenderer   *render.StatusRenderer
	MintsRenderer    *render.MintsRenderer
	MintRenderer     *render.MintRenderer
	UpdateRenderer   *render.UpdateRenderer
	WithdrawRenderer *render.WithdrawRenderer
	NetworksRenderer *render.NetworksRenderer
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	session *usecase.WalletSession,
	showStatus *usecase.ShowStatus,
	mintDomain *usecase.MintDomain,
	updateRecord *usecase.UpdateRecord,
	editRecord *usecase.EditRecord,
	listMints *usecase.ListMints,
	refreshMints *usecase.RefreshMints,
	withdrawFunds *usecase.WithdrawFunds,
	statusRenderer *render.StatusRenderer,
	mintsRenderer *render.MintsRenderer,
	mintRenderer *render.MintRenderer,
	updateRenderer *render.UpdateRenderer,
	withdrawRenderer *render.WithdrawRenderer,
	networksRenderer *render.NetworksRenderer,
) (*App, error) {
	// Wallet events (account or chain changes) invalidate everything the
	// session derived from them, so a provider event triggers a full
	// cache refresh.
	session.OnReload(func(ctx context.Context) {
		_, _ = refreshMints.Run(ctx)
	})

	return &App{
		Config:           cfg,
		Session:          session,
		ShowStatus:       showStatus,
		MintDomain:       mintDomain,
		UpdateRecord:     updateRecord,
		EditRecord:       editRecord,
		ListMints:        listMints,
		RefreshMints:     refreshMints,
		WithdrawFunds:    withdrawFunds,
		StatusRenderer:   statusRenderer,
		MintsRenderer:    mintsRenderer,
		MintRenderer:     mintRenderer,
		UpdateRenderer:   updateRenderer,
		WithdrawRenderer: withdrawRenderer,
		NetworksRenderer: networksRenderer,
	}, nil
}
