package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/blockns-org/bns-cli/internal/config"
	"github.com/blockns-org/bns-cli/internal/usecase"
)

// StatusRenderer renders the session status header.
type StatusRenderer struct {
	out io.Writer
	cfg *config.RuntimeConfig
}

// NewStatusRenderer creates a new status renderer
func NewStatusRenderer(out io.Writer, cfg *config.RuntimeConfig) *StatusRenderer {
	return &StatusRenderer{out: out, cfg: cfg}
}

// Render renders the session status.
func (r *StatusRenderer) Render(result *usecase.ShowStatusResult) error {
	if result.Wallet.Connected() {
		color.New(color.FgGreen).Fprintf(r.out, "Connected: %s\n", result.Wallet.Account.Hex())
	} else {
		color.New(color.FgYellow).Fprintln(r.out, "Not connected (run 'bns connect')")
	}

	fmt.Fprintf(r.out, "Network:   %s\n", result.NetworkName)
	if result.Wallet.Connected() && !result.OnTargetChain {
		target := r.cfg.Networks.DisplayName(r.cfg.TargetChainID)
		color.New(color.FgYellow).Fprintf(r.out, "Warning:   wallet is not on %s; run 'bns network switch'\n", target)
	}

	symbol := currencySymbol(r.cfg)
	fmt.Fprintf(r.out, "Registry:  %s\n", result.ContractAddress)
	fmt.Fprintf(r.out, "Balance:   %s\n", FormatWei(result.ContractBalance, symbol))
	if result.IsContractOwner {
		color.New(color.FgCyan).Fprintln(r.out, "You own this registry and may withdraw its balance")
	}
	return nil
}

var _ Renderer[*usecase.ShowStatusResult] = (*StatusRenderer)(nil)
