package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"opslog-cli/internal/api"
	"opslog-cli/internal/model"
	"opslog-cli/internal/session"
	"opslog-cli/internal/workspace"
)

// All backend work runs as tea.Cmds so the UI stays responsive. No request
// is cancelled once issued; stale responses are filtered by sequence number
// on receipt instead.

func bootstrapCmd(ctrl *session.Controller, token string) tea.Cmd {
	return func() tea.Msg {
		sess, err := ctrl.Bootstrap(context.Background(), token)
		if err != nil {
			return bootstrapDoneMsg{err: err.Error()}
		}
		return bootstrapDoneMsg{sess: sess}
	}
}

func loginCmd(ctrl *session.Controller, username, password string) tea.Cmd {
	return func() tea.Msg {
		token, err := ctrl.Login(context.Background(), username, password)
		if err != nil {
			return loginDoneMsg{err: err.Error()}
		}
		return loginDoneMsg{token: token}
	}
}

func registerCmd(ctrl *session.Controller, p api.RegisterPayload) tea.Cmd {
	return func() tea.Msg {
		if err := ctrl.Register(context.Background(), p); err != nil {
			return registerDoneMsg{err: err.Error()}
		}
		return registerDoneMsg{}
	}
}

func logoutCmd(ctrl *session.Controller) tea.Cmd {
	return func() tea.Msg {
		ctrl.Logout(context.Background())
		return logoutDoneMsg{}
	}
}

func (m *appModel) fetchDashboardCmd() tea.Cmd {
	seq := m.nextSeq(workspace.ViewDashboard)
	client := m.ctrl.Client
	return func() tea.Msg {
		dash, err := client.Dashboard(context.Background())
		if err != nil {
			return dashboardMsg{seq: seq, err: err.Error()}
		}
		return dashboardMsg{seq: seq, dash: dash}
	}
}

func (m *appModel) fetchSearchCmd(params workspace.SearchParams) tea.Cmd {
	params = params.Normalize()
	seq := m.nextSeq(workspace.ViewSearch)
	client := m.ctrl.Client
	return func() tea.Msg {
		page, err := client.SearchIncidents(context.Background(), params.Keyword, params.Page, params.PageSize)
		if err != nil {
			return searchMsg{seq: seq, params: params, err: err.Error()}
		}
		return searchMsg{seq: seq, params: params, page: page}
	}
}

func (m *appModel) fetchDeleteRequestsCmd() tea.Cmd {
	seq := m.nextSeq(workspace.ViewDeleteRequests)
	client := m.ctrl.Client
	return func() tea.Msg {
		rows, err := client.ListDeleteRequests(context.Background())
		if err != nil {
			return deleteRequestsMsg{seq: seq, err: err.Error()}
		}
		return deleteRequestsMsg{seq: seq, rows: rows}
	}
}

func (m *appModel) fetchUsersCmd() tea.Cmd {
	seq := m.nextSeq(workspace.ViewUsers)
	client := m.ctrl.Client
	return func() tea.Msg {
		rows, err := client.ListUsers(context.Background())
		if err != nil {
			return usersMsg{seq: seq, err: err.Error()}
		}
		return usersMsg{seq: seq, rows: rows}
	}
}

func (m *appModel) loadIncidentCmd(incidentID string) tea.Cmd {
	seq := m.nextSeq(workspace.ViewIncident)
	client := m.ctrl.Client
	return func() tea.Msg {
		inc, err := client.GetIncident(context.Background(), incidentID)
		if err != nil {
			return incidentLoadedMsg{seq: seq, err: err.Error()}
		}
		return incidentLoadedMsg{seq: seq, inc: inc}
	}
}

// mutationCmd wraps one mutating request into a mutationDoneMsg.
func mutationCmd(cmd workspace.Command, okMsg, incidentID string, fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		if err := fn(context.Background()); err != nil {
			return mutationDoneMsg{cmd: cmd, err: err.Error()}
		}
		return mutationDoneMsg{cmd: cmd, okMsg: okMsg, incidentID: incidentID}
	}
}

func (m *appModel) createIncidentCmd(inc model.Incident) tea.Cmd {
	client := m.ctrl.Client
	return func() tea.Msg {
		id, err := client.CreateIncident(context.Background(), inc)
		if err != nil {
			return mutationDoneMsg{cmd: workspace.CmdCreateIncident, err: err.Error()}
		}
		return mutationDoneMsg{
			cmd:        workspace.CmdCreateIncident,
			okMsg:      "Incident " + id + " was created successfully.",
			incidentID: id,
		}
	}
}

// refreshAfterCmd executes the declarative refresh table for a successful
// mutation. incidentID is consulted only when the table names the incident
// view.
func (m *appModel) refreshAfterCmd(cmd workspace.Command, incidentID string) tea.Cmd {
	var cmds []tea.Cmd
	for _, v := range workspace.RefreshViews(cmd) {
		switch v {
		case workspace.ViewDashboard:
			cmds = append(cmds, m.fetchDashboardCmd())
		case workspace.ViewSearch:
			cmds = append(cmds, m.fetchSearchCmd(m.state.Search.SearchParams))
		case workspace.ViewIncident:
			if incidentID != "" {
				cmds = append(cmds, m.loadIncidentCmd(incidentID))
			}
		case workspace.ViewDeleteRequests:
			cmds = append(cmds, m.fetchDeleteRequestsCmd())
		case workspace.ViewUsers:
			cmds = append(cmds, m.fetchUsersCmd())
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
