package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"opslog-cli/internal/export"
)

func newExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all incidents as a CSV report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctrl, err := app.authed(ctx)
			if err != nil {
				return err
			}
			incidents, err := export.FetchAll(ctx, ctrl.Client)
			if err != nil {
				return app.finish(ctx, ctrl, err)
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := export.WriteCSV(f, incidents); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d incidents to %s.\n", len(incidents), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", export.DefaultFileName, "Output file")
	return cmd
}
