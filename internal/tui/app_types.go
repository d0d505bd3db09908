package tui

import (
	"opslog-cli/internal/model"
	"opslog-cli/internal/session"
	"opslog-cli/internal/workspace"
)

type view int

const (
	viewAuth view = iota
	viewWorkspace
)

// authPage selects between the two unauthenticated pages. Login is the
// default, mirroring the original client's fragment routes.
type authPage int

const (
	pageLogin authPage = iota
	pageRegister
)

func viewToString(v view) string {
	switch v {
	case viewAuth:
		return "auth"
	case viewWorkspace:
		return "workspace"
	default:
		return "unknown"
	}
}

// Async results. Fetch messages carry the sequence number of the request
// that produced them; responses older than the latest issued for that view
// are discarded instead of overwriting fresher state.

type bootstrapDoneMsg struct {
	sess session.Session
	err  string
}

type loginDoneMsg struct {
	token string
	err   string
}

type registerDoneMsg struct {
	err string
}

type dashboardMsg struct {
	seq  int
	dash model.Dashboard
	err  string
}

type searchMsg struct {
	seq    int
	params workspace.SearchParams
	page   model.SearchPage
	err    string
}

type deleteRequestsMsg struct {
	seq  int
	rows []model.DeleteRequest
	err  string
}

type usersMsg struct {
	seq  int
	rows []model.UserAccount
	err  string
}

type incidentLoadedMsg struct {
	seq int
	inc model.Incident
	err string
}

// mutationDoneMsg reports one mutating command. On success the refresh
// dispatcher re-fetches every view the command invalidates.
type mutationDoneMsg struct {
	cmd        workspace.Command
	okMsg      string
	incidentID string
	err        string
}

type logoutDoneMsg struct{}
