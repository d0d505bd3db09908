package tui

import (
	"context"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"opslog-cli/internal/api"
	"opslog-cli/internal/model"
	"opslog-cli/internal/workspace"
)

func (m appModel) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		// Toggle between the two unauthenticated pages.
		if m.authPage == pageLogin {
			m.authPage = pageRegister
		} else {
			m.authPage = pageLogin
		}
		m.clearAlerts()
		return m, nil
	case "up", "shift+tab":
		return m.moveAuthFocus(-1), nil
	case "down":
		return m.moveAuthFocus(1), nil
	case "enter":
		m.clearAlerts()
		if m.authPage == pageLogin {
			return m, loginCmd(m.ctrl, m.login.username.Value(), m.login.password.Value())
		}
		return m, registerCmd(m.ctrl, api.RegisterPayload{
			FullName: m.register.fullName.Value(),
			Email:    m.register.email.Value(),
			Username: m.register.username.Value(),
			Password: m.register.password.Value(),
		})
	}

	if m.authPage == pageLogin {
		cmd := updateFocused(m.login.inputs(), m.login.focus, msg)
		return m, cmd
	}
	cmd := updateFocused(m.register.inputs(), m.register.focus, msg)
	return m, cmd
}

func (m appModel) moveAuthFocus(delta int) appModel {
	if m.authPage == pageLogin {
		m.login.focus = focusIndex(m.login.focus, delta, len(m.login.inputs()))
		applyFocus(m.login.inputs(), m.login.focus)
	} else {
		m.register.focus = focusIndex(m.register.focus, delta, len(m.register.inputs()))
		applyFocus(m.register.inputs(), m.register.focus)
	}
	return m
}

func (m appModel) updateWorkspace(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		delta := 1
		if msg.String() == "shift+tab" {
			delta = -1
		}
		return m.cycleTab(delta)
	case "ctrl+r":
		m.clearAlerts()
		return m, m.refreshActiveTabCmd()
	case "ctrl+l":
		m.clearAlerts()
		return m, logoutCmd(m.ctrl)
	}

	switch m.state.ActiveTab {
	case workspace.TabSearch:
		return m.updateSearchTab(msg)
	case workspace.TabCreate:
		return m.updateCreateTab(msg)
	case workspace.TabUpdate:
		return m.updateUpdateTab(msg)
	case workspace.TabDeleteRequest:
		return m.updateDeleteRequestTab(msg)
	case workspace.TabDeleteApprove:
		return m.updateDeleteApproveTab(msg)
	case workspace.TabUsers:
		return m.updateUsersTab(msg)
	default:
		return m, nil
	}
}

// cycleTab moves the active tab within the role's menu and auto-fetches the
// lists owned by the newly active tab.
func (m appModel) cycleTab(delta int) (tea.Model, tea.Cmd) {
	menu := workspace.Menu(m.profile.Role)
	if len(menu) == 0 {
		return m, nil
	}
	cur := 0
	for i, t := range menu {
		if t == m.state.ActiveTab {
			cur = i
			break
		}
	}
	m.state.ActiveTab = menu[focusIndex(cur, delta, len(menu))]
	m.clearAlerts()
	return m, m.tabActivationCmd()
}

// tabActivationCmd fetches the list owned by the tab that just became
// active.
func (m *appModel) tabActivationCmd() tea.Cmd {
	switch m.state.ActiveTab {
	case workspace.TabDeleteApprove:
		return m.fetchDeleteRequestsCmd()
	case workspace.TabUsers:
		return m.fetchUsersCmd()
	default:
		return nil
	}
}

func (m *appModel) refreshActiveTabCmd() tea.Cmd {
	switch m.state.ActiveTab {
	case workspace.TabDashboard:
		return m.fetchDashboardCmd()
	case workspace.TabSearch:
		return m.fetchSearchCmd(m.state.Search.SearchParams)
	case workspace.TabDeleteApprove:
		return m.fetchDeleteRequestsCmd()
	case workspace.TabUsers:
		return m.fetchUsersCmd()
	case workspace.TabUpdate:
		if m.state.LoadedIncident != nil {
			return m.loadIncidentCmd(m.state.LoadedIncident.IncidentID)
		}
	}
	return nil
}

func (m appModel) updateSearchTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		m.search.focus = focusIndex(m.search.focus, -1, 3)
		applyFocus(m.search.inputs(), m.search.focus)
		return m, nil
	case "down":
		m.search.focus = focusIndex(m.search.focus, 1, 3)
		applyFocus(m.search.inputs(), m.search.focus)
		return m, nil
	case "enter":
		m.clearAlerts()
		params := workspace.SearchParams{
			Keyword:  m.search.keyword.Value(),
			PageSize: workspace.ParsePageSize(m.search.pageSize.Value()),
			Page:     workspace.ParsePage(m.search.page.Value()),
		}
		// Submitting from the keyword or page-size field resets to page 1;
		// only the page field navigates.
		if m.search.focus != 2 {
			params.Page = 1
		}
		m.search.page.SetValue(strconv.Itoa(params.Page))
		m.search.pageSize.SetValue(strconv.Itoa(params.PageSize))
		return m, m.fetchSearchCmd(params)
	}
	return m, updateFocused(m.search.inputs(), m.search.focus, msg)
}

func (m appModel) updateCreateTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	inputs := m.create.inputs()
	switch msg.String() {
	case "up":
		m.create.focus = focusIndex(m.create.focus, -1, len(inputs))
		applyFocus(inputs, m.create.focus)
		return m, nil
	case "down":
		m.create.focus = focusIndex(m.create.focus, 1, len(inputs))
		applyFocus(inputs, m.create.focus)
		return m, nil
	case "enter":
		m.clearAlerts()
		if strings.TrimSpace(m.create.component.Value()) == "" ||
			strings.TrimSpace(m.create.errorName.Value()) == "" {
			m.errMsg = "Component and Error Name are required."
			return m, nil
		}
		inc := model.Incident{
			IncidentID:  m.create.incidentID.Value(),
			ErrorName:   m.create.errorName.Value(),
			Component:   m.create.component.Value(),
			RootCause:   m.create.rootCause.Value(),
			Remark:      m.create.remark.Value(),
			ActionTaken: m.create.actionTaken.Value(),
			StartDate:   workspace.ISOToDisplay(m.create.startDate.Value()),
			StartTime:   m.create.startTime.Value(),
			EndDate:     workspace.ISOToDisplay(m.create.endDate.Value()),
			EndTime:     m.create.endTime.Value(),
		}
		return m, m.createIncidentCmd(inc)
	}
	return m, updateFocused(inputs, m.create.focus, msg)
}

func (m appModel) updateUpdateTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	loaded := m.state.LoadedIncident

	rows := 1 // just the id input until an incident is loaded
	if loaded != nil {
		rows = updateFormStatusRow + 1
	}

	switch msg.String() {
	case "up":
		m.update.focus = focusIndex(m.update.focus, -1, rows)
		applyFocus(m.update.inputs(), m.update.focus)
		return m, nil
	case "down":
		m.update.focus = focusIndex(m.update.focus, 1, rows)
		applyFocus(m.update.inputs(), m.update.focus)
		return m, nil
	case "left", "right":
		if m.update.focus == updateFormStatusRow && loaded != nil {
			choices := m.state.StatusChoices()
			delta := 1
			if msg.String() == "left" {
				delta = -1
			}
			m.update.statusIdx = focusIndex(m.update.statusIdx, delta, len(choices))
			return m, nil
		}
	case "enter":
		m.clearAlerts()
		if m.update.focus == 0 {
			id := strings.TrimSpace(m.update.id.Value())
			if id == "" {
				m.errMsg = "Incident ID is required."
				return m, nil
			}
			return m, m.loadIncidentCmd(id)
		}
		if loaded == nil {
			return m, nil
		}
		upd := model.IncidentUpdate{
			RootCause:   ptr(m.update.rootCause.Value()),
			Remark:      ptr(m.update.remark.Value()),
			ActionTaken: ptr(m.update.actionTaken.Value()),
			StartTime:   ptr(m.update.startTime.Value()),
			EndTime:     ptr(m.update.endTime.Value()),
		}
		if choices := m.state.StatusChoices(); len(choices) > 0 {
			idx := m.update.statusIdx
			if idx < 0 || idx >= len(choices) {
				idx = 0
			}
			upd.Status = ptr(choices[idx])
		}
		id := loaded.IncidentID
		client := m.ctrl.Client
		return m, mutationCmd(workspace.CmdUpdateIncident,
			"Incident "+id+" was updated successfully.", id,
			func(ctx context.Context) error {
				return client.UpdateIncident(ctx, id, upd)
			})
	}

	if m.update.focus < len(m.update.inputs()) {
		return m, updateFocused(m.update.inputs(), m.update.focus, msg)
	}
	return m, nil
}

func (m appModel) updateDeleteRequestTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		m.clearAlerts()
		id := strings.TrimSpace(m.deleteReq.incidentID.Value())
		if id == "" {
			m.errMsg = "Incident ID is required."
			return m, nil
		}
		client := m.ctrl.Client
		return m, mutationCmd(workspace.CmdSubmitDeleteRequest,
			"Delete request submitted successfully.", id,
			func(ctx context.Context) error {
				return client.SubmitDeleteRequest(ctx, id)
			})
	}
	var cmd tea.Cmd
	m.deleteReq.incidentID, cmd = m.deleteReq.incidentID.Update(msg)
	return m, cmd
}

func (m appModel) updateDeleteApproveTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pending := m.pendingDeleteRequests()
	switch msg.String() {
	case "up":
		m.approveIdx = focusIndex(m.approveIdx, -1, len(pending))
		return m, nil
	case "down":
		m.approveIdx = focusIndex(m.approveIdx, 1, len(pending))
		return m, nil
	case "enter":
		if len(pending) == 0 {
			return m, nil
		}
		m.clearAlerts()
		if m.approveIdx >= len(pending) {
			m.approveIdx = 0
		}
		id := pending[m.approveIdx].IncidentID
		client := m.ctrl.Client
		return m, mutationCmd(workspace.CmdApproveDelete,
			"Incident "+id+" was deleted permanently.", id,
			func(ctx context.Context) error {
				return client.ApproveDelete(ctx, id)
			})
	}
	return m, nil
}

func (m appModel) updateUsersTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		m.users.focus = focusIndex(m.users.focus, -1, usersRowCount)
		applyFocus(m.users.inputs(), m.users.focusedInput())
		return m, nil
	case "down":
		m.users.focus = focusIndex(m.users.focus, 1, usersRowCount)
		applyFocus(m.users.inputs(), m.users.focusedInput())
		return m, nil
	case "left", "right":
		switch m.users.focus {
		case usersRowRolePicker:
			roles := m.state.Meta.Roles
			if len(roles) == 0 {
				return m, nil
			}
			delta := 1
			if msg.String() == "left" {
				delta = -1
			}
			if m.users.roleIdx < 0 {
				m.users.roleIdx = 0
			} else {
				m.users.roleIdx = focusIndex(m.users.roleIdx, delta, len(roles))
			}
			return m, nil
		case usersRowActiveToggle:
			m.users.active = !m.users.active
			return m, nil
		}
	case "enter":
		m.clearAlerts()
		client := m.ctrl.Client
		switch m.users.focus {
		case usersRowRoleUsername, usersRowRolePicker:
			username := strings.TrimSpace(m.users.roleUsername.Value())
			if username == "" {
				m.errMsg = "Username is required."
				return m, nil
			}
			roles := m.state.Meta.Roles
			if m.users.roleIdx < 0 || m.users.roleIdx >= len(roles) {
				m.errMsg = "Please select a role before submitting."
				return m, nil
			}
			role := roles[m.users.roleIdx]
			return m, mutationCmd(workspace.CmdAssignRole,
				"User role updated successfully.", "",
				func(ctx context.Context) error {
					return client.AssignRole(ctx, username, role)
				})
		case usersRowStatusUsername, usersRowActiveToggle:
			username := strings.TrimSpace(m.users.statusUsername.Value())
			if username == "" {
				m.errMsg = "Username is required."
				return m, nil
			}
			active := m.users.active
			return m, mutationCmd(workspace.CmdSetUserStatus,
				"User account status updated successfully.", "",
				func(ctx context.Context) error {
					return client.SetUserActive(ctx, username, active)
				})
		}
	}

	if idx := m.users.focusedInput(); idx >= 0 {
		return m, updateFocused(m.users.inputs(), idx, msg)
	}
	return m, nil
}

func ptr(s string) *string { return &s }
