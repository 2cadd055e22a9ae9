package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/blockns-org/bns-cli/internal/usecase"
)

// NewMintCmd creates the mint command
func NewMintCmd() *cobra.Command {
	var record string

	cmd := &cobra.Command{
		Use:   "mint <name>",
		Short: "Mint a new domain",
		Long: `Mints a domain on the registry. The price depends on the name length
and is charged on top of gas. After the registration confirms, the
record is set in a second transaction.`,
		Example: `  # Mint ninja.block with a record
  bns mint ninja --record "my ninja vault"

  # Mint without a record
  bns mint ninja`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			// Accept "ninja.block" as well as "ninja"
			name := strings.TrimSuffix(args[0], app.Config.TLD)

			result, err := app.MintDomain.Run(cmd.Context(), usecase.MintDomainParams{
				Name:   name,
				Record: record,
			})
			if err != nil {
				return err
			}

			return app.MintRenderer.Render(result)
		},
	}

	cmd.Flags().StringVarP(&record, "record", "r", "", "Record value to store with the domain")

	return cmd
}
