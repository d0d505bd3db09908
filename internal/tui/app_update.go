package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"opslog-cli/internal/workspace"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			// Quit without touching the session; the token stays persisted.
			return m, tea.Quit
		}
		if m.view == viewAuth {
			return m.updateAuth(msg)
		}
		return m.updateWorkspace(msg)

	case bootstrapDoneMsg:
		m.bootstrapping = false
		if msg.err != "" {
			// Sole authentication-invalidation path: the controller already
			// cleared memory and disk; reflect that here.
			m.resetToAuth()
			m.errMsg = msg.err
			return m, nil
		}
		m.applySession(msg.sess)
		// Populate the workspace: dashboard plus the default first-page
		// search, concurrently.
		return m, tea.Batch(
			m.fetchDashboardCmd(),
			m.fetchSearchCmd(m.state.Search.SearchParams),
		)

	case loginDoneMsg:
		if msg.err != "" {
			m.errMsg = msg.err
			return m, nil
		}
		m.okMsg = "Sign-in successful."
		m.token = msg.token
		m.bootstrapping = true
		return m, bootstrapCmd(m.ctrl, msg.token)

	case registerDoneMsg:
		if msg.err != "" {
			// Keep entered values for retry; the password need not persist.
			m.errMsg = msg.err
			return m, nil
		}
		m.okMsg = "Registration completed. Please wait for manager role assignment."
		clearInputs(m.register.inputs())
		m.register.focus = 0
		applyFocus(m.register.inputs(), 0)
		return m, nil

	case logoutDoneMsg:
		m.resetToAuth()
		return m, nil

	case dashboardMsg:
		if m.stale(workspace.ViewDashboard, msg.seq) {
			m.debugLogf("drop stale dashboard seq=%d latest=%d", msg.seq, m.seq[workspace.ViewDashboard])
			return m, nil
		}
		if msg.err != "" {
			m.errMsg = msg.err
			return m, nil
		}
		m.state = m.state.WithDashboard(msg.dash)
		return m, nil

	case searchMsg:
		if m.stale(workspace.ViewSearch, msg.seq) {
			m.debugLogf("drop stale search seq=%d latest=%d keyword=%q", msg.seq, m.seq[workspace.ViewSearch], msg.params.Keyword)
			return m, nil
		}
		if msg.err != "" {
			m.errMsg = msg.err
			return m, nil
		}
		m.state = m.state.WithSearchResults(msg.params, msg.page)
		return m, nil

	case deleteRequestsMsg:
		if m.stale(workspace.ViewDeleteRequests, msg.seq) {
			return m, nil
		}
		if msg.err != "" {
			m.errMsg = msg.err
			return m, nil
		}
		m.state = m.state.WithDeleteRequests(msg.rows)
		if n := len(m.pendingDeleteRequests()); m.approveIdx >= n {
			m.approveIdx = 0
		}
		return m, nil

	case usersMsg:
		if m.stale(workspace.ViewUsers, msg.seq) {
			return m, nil
		}
		if msg.err != "" {
			m.errMsg = msg.err
			return m, nil
		}
		m.state = m.state.WithUsers(msg.rows)
		return m, nil

	case incidentLoadedMsg:
		if m.stale(workspace.ViewIncident, msg.seq) {
			return m, nil
		}
		if msg.err != "" {
			// A failed load clears any previously loaded incident.
			m.state = m.state.WithLoadedIncident(nil)
			m.errMsg = msg.err
			return m, nil
		}
		inc := msg.inc
		m.state = m.state.WithLoadedIncident(&inc)
		m.update.rootCause.SetValue(inc.RootCause)
		m.update.remark.SetValue(inc.Remark)
		m.update.actionTaken.SetValue(inc.ActionTaken)
		m.update.startTime.SetValue(inc.StartTime)
		m.update.endTime.SetValue(inc.EndTime)
		m.update.statusIdx = indexOf(m.state.StatusChoices(), inc.Status)
		if m.okMsg == "" && m.errMsg == "" {
			m.okMsg = "Incident " + inc.IncidentID + " has been loaded."
		}
		return m, nil

	case mutationDoneMsg:
		if msg.err != "" {
			m.debugLogf("mutation failed cmd=%s err=%q", msg.cmd, msg.err)
			m.errMsg = msg.err
			return m, nil
		}
		m.okMsg = msg.okMsg
		switch msg.cmd {
		case workspace.CmdCreateIncident:
			clearInputs(m.create.inputs())
			m.create.focus = 0
			applyFocus(m.create.inputs(), 0)
		case workspace.CmdSubmitDeleteRequest:
			m.deleteReq.incidentID.SetValue("")
		}
		return m, m.refreshAfterCmd(msg.cmd, msg.incidentID)
	}

	return m, nil
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return 0
}
