package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"opslog-cli/internal/api"
)

func newLoginCmd(app *App) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and persist the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(username) == "" {
				return errMissingFlag("username")
			}
			if password == "" {
				// Allow piping the password in.
				fmt.Fprint(cmd.OutOrStdout(), "Password: ")
				sc := bufio.NewScanner(cmd.InOrStdin())
				if sc.Scan() {
					password = strings.TrimSpace(sc.Text())
				}
			}

			ctx := cmd.Context()
			ctrl := app.controller()
			token, err := ctrl.Login(ctx, username, password)
			if err != nil {
				return err
			}
			// Bootstrap validates the token and persists the session; any
			// failure rolls the sign-in back.
			sess, err := ctrl.Bootstrap(ctx, token)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s).\n", sess.Profile.Username, sess.Profile.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Account username")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")
	return cmd
}

func newRegisterCmd(app *App) *cobra.Command {
	var p api.RegisterPayload

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account (role assigned later by a Manager)",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range []struct{ name, val string }{
				{"full-name", p.FullName},
				{"email", p.Email},
				{"username", p.Username},
				{"password", p.Password},
			} {
				if strings.TrimSpace(f.val) == "" {
					return errMissingFlag(f.name)
				}
			}
			if err := app.controller().Register(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Registration completed. Please wait for manager role assignment.")
			return nil
		},
	}

	cmd.Flags().StringVar(&p.FullName, "full-name", "", "Full name")
	cmd.Flags().StringVar(&p.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&p.Username, "username", "", "Username")
	cmd.Flags().StringVar(&p.Password, "password", "", "Password")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctrl := app.controller()
			creds, err := ctrl.Restore(ctx)
			if err != nil {
				return err
			}
			ctrl.Client.SetToken(creds.Token)
			// Backend notification is best-effort; local logout always wins.
			ctrl.Logout(ctx)
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the authenticated profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctrl, err := app.authed(ctx)
			if err != nil {
				return err
			}
			profile, err := ctrl.Client.Me(ctx)
			if err != nil {
				return app.finish(ctx, ctrl, err)
			}
			return writeOut(cmd, app, profile)
		},
	}
}
