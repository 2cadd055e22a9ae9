package cli

import (
	"github.com/spf13/cobra"

	"github.com/blockns-org/bns-cli/internal/usecase"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var recent int

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List minted domains",
		Long:    `Fetches every minted domain from the registry and lists it with its record and owner.`,
		Example: `  # List everything
  bns list

  # List the four most recent mints
  bns list --recent 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListMints.Run(cmd.Context(), usecase.ListMintsParams{Recent: recent})
			if err != nil {
				return err
			}

			return app.MintsRenderer.Render(result)
		},
	}

	cmd.Flags().IntVar(&recent, "recent", 0, "Show only the N most recent mints")

	return cmd
}
