package cli

import (
	"github.com/spf13/cobra"
)

// NewWithdrawCmd creates the withdraw command
func NewWithdrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw the registry's accumulated fees",
		Long: `Withdraws the registry contract's balance to the active account. Only
the contract owner may withdraw; anyone else is refused before any
transaction is submitted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.WithdrawFunds.Run(cmd.Context())
			if err != nil {
				return err
			}

			return app.WithdrawRenderer.Render(result)
		},
	}
}
