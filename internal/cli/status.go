package cli

import (
	"github.com/spf13/cobra"
)

// NewStatusCmd creates the status command
func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show wallet connection and registry status",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowStatus.Run(cmd.Context())
			if err != nil {
				return err
			}

			return app.StatusRenderer.Render(result)
		},
	}
}
