package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewConnectCmd creates the connect command
func NewConnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Connect a wallet account",
		Long: `Requests account access from the wallet bridge. The wallet may prompt
for approval; the first approved account becomes the active one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			state, err := app.Session.Connect(cmd.Context())
			if err != nil {
				return err
			}

			color.New(color.FgGreen).Printf("Connected: %s\n", state.Account.Hex())
			fmt.Printf("Network:   %s\n", app.Config.Networks.DisplayName(state.ChainID))

			if !app.Session.OnTargetChain() {
				target := app.Config.Networks.DisplayName(app.Config.TargetChainID)
				color.New(color.FgYellow).Printf("Warning:   wallet is not on %s; run 'bns network switch'\n", target)
			}
			return nil
		},
	}
}
