package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List known networks",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			// Show which chain the wallet is on when we can tell
			var active string
			if state, err := app.Session.CheckConnection(cmd.Context()); err == nil {
				active = state.ChainID
			}

			return app.NetworksRenderer.RenderNetworksList(active)
		},
	}
}

// NewNetworkCmd creates the network command group
func NewNetworkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Manage the wallet's active network",
	}

	cmd.AddCommand(newNetworkSwitchCmd())

	return cmd
}

// newNetworkSwitchCmd asks the wallet to switch chains
func newNetworkSwitchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "switch [network]",
		Short: "Switch the wallet to a network",
		Long: `Asks the wallet to activate a network, by name or 0x-prefixed chain
ID. Without an argument the registry's target chain is used. Chains the
wallet does not know yet are registered from the network table first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			chainID := app.Config.TargetChainID
			if len(args) > 0 {
				network := app.Config.Networks.ByName(args[0])
				if network == nil {
					network = app.Config.Networks.ByChainID(args[0])
				}
				if network == nil {
					return fmt.Errorf("unknown network: %s", args[0])
				}
				chainID = network.ChainID
			}

			if err := app.Session.SwitchNetwork(cmd.Context(), chainID); err != nil {
				return err
			}

			color.New(color.FgGreen).Printf("Switched to %s\n", app.Config.Networks.DisplayName(chainID))
			return nil
		},
	}
}
