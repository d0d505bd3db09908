package cli

import (
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show aggregate incident metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctrl, err := app.authed(ctx)
			if err != nil {
				return err
			}
			dash, err := ctrl.Client.Dashboard(ctx)
			if err != nil {
				return app.finish(ctx, ctrl, err)
			}
			return writeOut(cmd, app, dash)
		},
	}
}
