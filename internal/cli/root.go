package cli

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"opslog-cli/internal/api"
	"opslog-cli/internal/session"
	"opslog-cli/internal/store"
	"opslog-cli/internal/tui"
)

type App struct {
	Server     string
	DataDir    string
	Format     string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "opslog",
		Short:        "OpsLog incident-management client (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  opslog

  # Scriptable commands
  opslog login --username ops1
  opslog incidents search --keyword timeout
  opslog dashboard --format json
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return tui.Run(app.Server, app.DataDir)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Server, "server", envOr("OPSLOG_SERVER", api.DefaultBaseURL), "Backend origin")
	cmd.PersistentFlags().StringVar(&app.DataDir, "data-dir", store.DefaultDir(), "Directory for the persisted session")
	cmd.PersistentFlags().StringVar(&app.Format, "format", "table", "Output format: table|json")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newRegisterCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newWhoamiCmd(app))
	cmd.AddCommand(newDashboardCmd(app))
	cmd.AddCommand(newIncidentsCmd(app))
	cmd.AddCommand(newDeleteRequestsCmd(app))
	cmd.AddCommand(newUsersCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func (a *App) controller() *session.Controller {
	return &session.Controller{
		Client: api.NewClient(a.Server),
		Store:  store.Store{Dir: a.DataDir},
	}
}

// authed returns a controller whose client carries the persisted token.
func (a *App) authed(ctx context.Context) (*session.Controller, error) {
	ctrl := a.controller()
	creds, err := ctrl.Restore(ctx)
	if err != nil {
		return nil, err
	}
	if creds.Token == "" {
		return nil, errNotSignedIn()
	}
	ctrl.Client.SetToken(creds.Token)
	return ctrl, nil
}

// finish maps an API failure to its CLI presentation. A rejected token means
// the session cannot be trusted: clear it so the next command starts clean.
func (a *App) finish(ctx context.Context, ctrl *session.Controller, err error) error {
	if err == nil {
		return nil
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Unauthenticated() {
		ctrl.Client.SetToken("")
		_ = ctrl.Store.Clear(ctx)
		return errSessionExpired(apiErr.Message)
	}
	return err
}
