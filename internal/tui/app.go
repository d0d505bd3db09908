package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"opslog-cli/internal/api"
	"opslog-cli/internal/session"
	"opslog-cli/internal/store"
)

// Run starts the interactive client. A persisted token, when present, is
// bootstrapped on startup; if that fails the login page is shown with the
// session cleared.
func Run(server, dataDir string) error {
	applyThemePreference()
	applyColorProfilePreference()

	ctrl := &session.Controller{
		Client: api.NewClient(server),
		Store:  store.Store{Dir: dataDir},
	}

	m := newAppModel(ctrl)
	if creds, err := ctrl.Restore(context.Background()); err == nil && creds.Token != "" {
		m.token = creds.Token
		m.bootstrapping = true
		if creds.Profile != nil {
			// Placeholder until bootstrap returns the authoritative profile.
			m.profile = *creds.Profile
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m appModel) Init() tea.Cmd {
	if m.bootstrapping {
		return bootstrapCmd(m.ctrl, m.token)
	}
	return nil
}
