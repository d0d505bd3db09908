package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newUsersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "User administration (Manager only)",
	}
	cmd.AddCommand(newUsersListCmd(app))
	cmd.AddCommand(newUsersAssignRoleCmd(app))
	cmd.AddCommand(newUsersSetStatusCmd(app))
	return cmd
}

func newUsersListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctrl, err := app.authed(ctx)
			if err != nil {
				return err
			}
			rows, err := ctrl.Client.ListUsers(ctx)
			if err != nil {
				return app.finish(ctx, ctrl, err)
			}
			return writeOut(cmd, app, rows)
		},
	}
}

func newUsersAssignRoleCmd(app *App) *cobra.Command {
	var username, role string

	cmd := &cobra.Command{
		Use:   "assign-role",
		Short: "Assign a role to an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(username) == "" {
				return errMissingFlag("username")
			}
			// A role must be selected; the backend rejects empty roles too,
			// but this is validated locally first.
			if strings.TrimSpace(role) == "" {
				return errMissingFlag("role")
			}
			ctx := cmd.Context()
			ctrl, err := app.authed(ctx)
			if err != nil {
				return err
			}
			if err := ctrl.Client.AssignRole(ctx, username, role); err != nil {
				return app.finish(ctx, ctrl, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "User role updated successfully.")
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Target account")
	cmd.Flags().StringVar(&role, "role", "", "Role to assign")
	return cmd
}

func newUsersSetStatusCmd(app *App) *cobra.Command {
	var username string
	var active bool

	cmd := &cobra.Command{
		Use:   "set-status",
		Short: "Activate or suspend an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(username) == "" {
				return errMissingFlag("username")
			}
			ctx := cmd.Context()
			ctrl, err := app.authed(ctx)
			if err != nil {
				return err
			}
			if err := ctrl.Client.SetUserActive(ctx, username, active); err != nil {
				return app.finish(ctx, ctrl, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "User account status updated successfully.")
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Target account")
	cmd.Flags().BoolVar(&active, "active", true, "Account active flag")
	return cmd
}
