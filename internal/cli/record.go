package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/blockns-org/bns-cli/internal/usecase"
)

// NewRecordCmd creates the record command group
func NewRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Manage domain records",
	}

	cmd.AddCommand(newRecordSetCmd())
	cmd.AddCommand(newRecordEditCmd())

	return cmd
}

// newRecordSetCmd sets a record non-interactively
func newRecordSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> <value>",
		Short: "Set the record of a domain you own",
		Example: `  # Point ninja.block at a new value
  bns record set ninja "my new vault"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			name := strings.TrimSuffix(args[0], app.Config.TLD)

			result, err := app.UpdateRecord.Run(cmd.Context(), usecase.UpdateRecordParams{
				Name:   name,
				Record: args[1],
			})
			if err != nil {
				return err
			}

			return app.UpdateRenderer.Render(result)
		},
	}
}

// newRecordEditCmd runs the interactive edit flow
func newRecordEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [name]",
		Short: "Edit a record interactively",
		Long: `Picks one of the domains the active account owns and prompts for a
new record value. With a name argument the selection step is skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			var name string
			if len(args) > 0 {
				name = strings.TrimSuffix(args[0], app.Config.TLD)
			}

			result, err := app.EditRecord.Run(cmd.Context(), usecase.EditRecordParams{Name: name})
			if err != nil {
				return err
			}

			return app.UpdateRenderer.Render(result)
		},
	}
}
