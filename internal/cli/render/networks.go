package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/blockns-org/bns-cli/internal/config"
)

// NetworksRenderer renders the configured network table.
type NetworksRenderer struct {
	out io.Writer
	cfg *config.RuntimeConfig
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, cfg *config.RuntimeConfig) *NetworksRenderer {
	return &NetworksRenderer{out: out, cfg: cfg}
}

// RenderNetworksList renders every known network, marking the registry's
// target chain.
func (r *NetworksRenderer) RenderNetworksList(activeChainID string) error {
	networks := r.cfg.Networks.Sorted()
	if len(networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, "Available networks:")
	for _, network := range networks {
		marker := " "
		if network.ChainID == activeChainID {
			marker = color.New(color.FgGreen).Sprint("*")
		}
		line := fmt.Sprintf("%s %s (chain %s)", marker, network.Name, network.ChainID)
		if network.ChainID == r.cfg.TargetChainID {
			line += color.New(color.FgCyan).Sprint(" [registry]")
		}
		fmt.Fprintln(r.out, line)
	}
	return nil
}
