package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteRequestsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-requests",
		Short: "Two-phase incident deletion: submit, list and approve requests",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "submit <incident-id>",
		Short: "Request deletion of an incident",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctrl, err := app.authed(ctx)
			if err != nil {
				return err
			}
			if err := ctrl.Client.SubmitDeleteRequest(ctx, args[0]); err != nil {
				return app.finish(ctx, ctrl, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Delete request submitted successfully.")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List delete requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctrl, err := app.authed(ctx)
			if err != nil {
				return err
			}
			rows, err := ctrl.Client.ListDeleteRequests(ctx)
			if err != nil {
				return app.finish(ctx, ctrl, err)
			}
			return writeOut(cmd, app, rows)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "approve <incident-id>",
		Short: "Approve a pending delete request (permanently removes the incident)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctrl, err := app.authed(ctx)
			if err != nil {
				return err
			}
			if err := ctrl.Client.ApproveDelete(ctx, args[0]); err != nil {
				return app.finish(ctx, ctrl, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Incident %s was deleted permanently.\n", args[0])
			return nil
		},
	})

	return cmd
}
