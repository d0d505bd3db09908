package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"opslog-cli/internal/workspace"
)

var tabTitles = map[workspace.Tab]string{
	workspace.TabDashboard:     "Dashboard",
	workspace.TabSearch:        "Search",
	workspace.TabCreate:        "Create",
	workspace.TabUpdate:        "Update",
	workspace.TabDeleteRequest: "Delete Request",
	workspace.TabDeleteApprove: "Delete Approval",
	workspace.TabUsers:         "Users",
}

func (m appModel) View() string {
	if m.bootstrapping {
		return "\n  " + styleMuted.Render("Restoring session…") + "\n"
	}
	if m.view == viewAuth {
		return m.viewAuth()
	}
	return m.viewWorkspace()
}

func (m appModel) alertLine() string {
	switch {
	case m.errMsg != "":
		return styleError.Render(m.errMsg)
	case m.okMsg != "":
		return styleOK.Render(m.okMsg)
	}
	return ""
}

func (m appModel) viewAuth() string {
	var b strings.Builder
	b.WriteString("\n  " + styleHeader.Render("OpsLog") + "\n\n")

	pages := []string{"Sign In", "Register"}
	var tabs []string
	for i, p := range pages {
		if (i == 0) == (m.authPage == pageLogin) {
			tabs = append(tabs, styleTabActive.Render(p))
		} else {
			tabs = append(tabs, styleTab.Render(p))
		}
	}
	b.WriteString("  " + strings.Join(tabs, "   ") + "\n\n")

	if m.authPage == pageLogin {
		b.WriteString(renderField("Username", m.login.username))
		b.WriteString(renderField("Password", m.login.password))
	} else {
		b.WriteString(renderField("Full Name", m.register.fullName))
		b.WriteString(renderField("Email", m.register.email))
		b.WriteString(renderField("Username", m.register.username))
		b.WriteString(renderField("Password", m.register.password))
	}

	if a := m.alertLine(); a != "" {
		b.WriteString("\n  " + a + "\n")
	}
	b.WriteString("\n  " + styleMuted.Render("tab switch page · up/down move · enter submit · ctrl+c quit") + "\n")
	return b.String()
}

func renderField(label string, in textinput.Model) string {
	return "  " + styleFieldLabel.Render(padToWidth(label, 14)) + in.View() + "\n"
}

func (m appModel) viewWorkspace() string {
	var b strings.Builder

	b.WriteString("\n  " + styleHeader.Render("OpsLog") + "  " +
		styleMuted.Render(m.profile.FullName+" ("+m.profile.Role+")") + "\n\n")

	var tabs []string
	for _, t := range workspace.Menu(m.profile.Role) {
		title := tabTitles[t]
		if t == m.state.ActiveTab {
			tabs = append(tabs, styleTabActive.Render(title))
		} else {
			tabs = append(tabs, styleTab.Render(title))
		}
	}
	b.WriteString("  " + strings.Join(tabs, "  ") + "\n\n")

	if a := m.alertLine(); a != "" {
		b.WriteString("  " + a + "\n\n")
	}

	switch m.state.ActiveTab {
	case workspace.TabDashboard:
		b.WriteString(m.viewDashboard())
	case workspace.TabSearch:
		b.WriteString(m.viewSearch())
	case workspace.TabCreate:
		b.WriteString(m.viewCreate())
	case workspace.TabUpdate:
		b.WriteString(m.viewUpdate())
	case workspace.TabDeleteRequest:
		b.WriteString(m.viewDeleteRequest())
	case workspace.TabDeleteApprove:
		b.WriteString(m.viewDeleteApprove())
	case workspace.TabUsers:
		b.WriteString(m.viewUsers())
	}

	b.WriteString("\n\n  " + styleMuted.Render("tab/shift+tab switch view · ctrl+r refresh · ctrl+l sign out · ctrl+c quit") + "\n")
	return b.String()
}

func (m appModel) viewDashboard() string {
	d := m.state.Dashboard
	if d == nil {
		return "  " + styleMuted.Render("Loading…") + "\n"
	}

	card := func(label string, value string) string {
		return styleCard.Render(styleMuted.Render(label) + "\n" + styleHeader.Render(value))
	}
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total", strconv.Itoa(d.TotalIncidents)),
		card("Open", strconv.Itoa(d.OpenCases)),
		card("Monitoring", strconv.Itoa(d.MonitoringCases)),
		card("Resolved/Closed", strconv.Itoa(d.ResolvedClosedCases)),
		card("Last 7 Days", strconv.Itoa(d.IncidentsLast7Days)),
		card("Avg Duration", fmt.Sprintf("%.1f min", d.AvgDurationMinutes)),
	)

	var b strings.Builder
	b.WriteString(indentBlock(cards, "  "))

	if len(d.StatusBreakdown) > 0 {
		rows := make([][]string, 0, len(d.StatusBreakdown))
		for _, s := range d.StatusBreakdown {
			rows = append(rows, []string{s.Status, strconv.Itoa(s.Total)})
		}
		b.WriteString("\n\n  " + styleHeader.Render("By Status") + "\n")
		b.WriteString(indentBlock(renderRows([]string{"Status", "Count"}, []int{20, 6}, rows), "  "))
	}
	if len(d.TopComponents) > 0 {
		rows := make([][]string, 0, len(d.TopComponents))
		for _, c := range d.TopComponents {
			rows = append(rows, []string{c.Component, strconv.Itoa(c.Total)})
		}
		b.WriteString("\n\n  " + styleHeader.Render("Top Components") + "\n")
		b.WriteString(indentBlock(renderRows([]string{"Component", "Count"}, []int{30, 6}, rows), "  "))
	}
	return b.String()
}

func (m appModel) viewSearch() string {
	var b strings.Builder
	b.WriteString(renderField("Keyword", m.search.keyword))
	b.WriteString(renderField("Page Size", m.search.pageSize))
	b.WriteString(renderField("Page", m.search.page))

	page := m.state.Search
	b.WriteString("\n  " + styleMuted.Render(fmt.Sprintf("Total records: %d", page.Total)) + "\n")
	if len(page.Rows) == 0 {
		b.WriteString("  " + styleMuted.Render("No records were found.") + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(page.Rows))
	for _, r := range page.Rows {
		rows = append(rows, []string{
			r.IncidentID, r.ErrorName, r.Component, r.Status,
			r.StartDate + " " + r.StartTime,
			fmt.Sprintf("%.0f", r.DurationMinutes),
		})
	}
	b.WriteString(indentBlock(renderRows(
		[]string{"ID", "Error", "Component", "Status", "Start", "Min"},
		[]int{14, 28, 16, 12, 20, 5}, rows), "  "))
	return b.String()
}

func (m appModel) viewCreate() string {
	labels := []string{
		"Incident ID", "Error Name", "Component", "Root Cause", "Remark",
		"Action Taken", "Start Date", "Start Time", "End Date", "End Time",
	}
	var b strings.Builder
	for i, in := range m.create.inputs() {
		b.WriteString(renderField(labels[i], *in))
	}
	b.WriteString("\n  " + styleMuted.Render("enter submits; Component and Error Name are required") + "\n")
	return b.String()
}

func (m appModel) viewUpdate() string {
	var b strings.Builder
	b.WriteString(renderField("Incident ID", m.update.id))

	loaded := m.state.LoadedIncident
	if loaded == nil {
		b.WriteString("\n  " + styleMuted.Render("Load an incident by ID to edit it.") + "\n")
		return b.String()
	}

	b.WriteString("\n  " + styleMuted.Render(loaded.IncidentID+" · "+loaded.ErrorName+" · "+loaded.Component) + "\n\n")
	b.WriteString(renderField("Root Cause", m.update.rootCause))
	b.WriteString(renderField("Remark", m.update.remark))
	b.WriteString(renderField("Action Taken", m.update.actionTaken))
	b.WriteString(renderField("Start Time", m.update.startTime))
	b.WriteString(renderField("End Time", m.update.endTime))
	b.WriteString("  " + styleFieldLabel.Render(padToWidth("Status", 14)) +
		m.statusPickerLine() + "\n")
	return b.String()
}

// statusPickerLine renders the status choices with the current selection
// highlighted. Choices come from the meta list unioned with the loaded
// incident's own status.
func (m appModel) statusPickerLine() string {
	choices := m.state.StatusChoices()
	if len(choices) == 0 {
		return styleMuted.Render("(none)")
	}
	idx := m.update.statusIdx
	if idx < 0 || idx >= len(choices) {
		idx = 0
	}
	parts := make([]string, 0, len(choices))
	for i, c := range choices {
		if i == idx {
			parts = append(parts, styleSelected.Render("["+c+"]"))
		} else {
			parts = append(parts, styleMuted.Render(c))
		}
	}
	return strings.Join(parts, " ")
}

func (m appModel) viewDeleteRequest() string {
	var b strings.Builder
	b.WriteString(renderField("Incident ID", m.deleteReq.incidentID))
	b.WriteString("\n  " + styleMuted.Render("Submits a deletion request for manager approval.") + "\n")
	return b.String()
}

func (m appModel) viewDeleteApprove() string {
	pending := m.pendingDeleteRequests()
	if len(pending) == 0 {
		return "  " + styleMuted.Render("No pending delete requests.") + "\n"
	}
	var b strings.Builder
	idx := m.approveIdx
	if idx >= len(pending) {
		idx = 0
	}
	for i, r := range pending {
		line := padToWidth(r.IncidentID, 16) + "  " +
			padToWidth(r.RequestedBy, 16) + "  " + r.RequestedAt
		if i == idx {
			b.WriteString("  " + styleSelected.Render("> "+line) + "\n")
		} else {
			b.WriteString("    " + line + "\n")
		}
	}
	b.WriteString("\n  " + styleMuted.Render("enter approves the selected request; deletion is permanent") + "\n")
	return b.String()
}

func (m appModel) viewUsers() string {
	var b strings.Builder

	if len(m.state.Users) > 0 {
		rows := make([][]string, 0, len(m.state.Users))
		for _, u := range m.state.Users {
			active := "Inactive"
			if u.IsActive.Bool() {
				active = "Active"
			}
			rows = append(rows, []string{u.Username, u.FullName, u.Email, u.Role, active})
		}
		b.WriteString(indentBlock(renderRows(
			[]string{"Username", "Full Name", "Email", "Role", "Status"},
			[]int{14, 22, 26, 22, 8}, rows), "  "))
		b.WriteString("\n\n")
	}

	b.WriteString("  " + styleHeader.Render("Assign Role") + "\n")
	b.WriteString(renderField("Username", m.users.roleUsername))
	b.WriteString("  " + styleFieldLabel.Render(padToWidth("Role", 14)) + m.rolePickerLine() + "\n\n")

	b.WriteString("  " + styleHeader.Render("Account Status") + "\n")
	b.WriteString(renderField("Username", m.users.statusUsername))
	toggle := "Inactive"
	if m.users.active {
		toggle = "Active"
	}
	toggleLine := styleSelected.Render("[" + toggle + "]")
	if m.users.focus != usersRowActiveToggle {
		toggleLine = styleMuted.Render(toggle)
	}
	b.WriteString("  " + styleFieldLabel.Render(padToWidth("Active", 14)) + toggleLine + "\n")
	return b.String()
}

func (m appModel) rolePickerLine() string {
	roles := m.state.Meta.Roles
	if len(roles) == 0 {
		return styleMuted.Render("(none)")
	}
	parts := make([]string, 0, len(roles))
	for i, r := range roles {
		switch {
		case i == m.users.roleIdx:
			parts = append(parts, styleSelected.Render("["+r+"]"))
		default:
			parts = append(parts, styleMuted.Render(r))
		}
	}
	if m.users.roleIdx < 0 {
		return styleMuted.Render("(select with left/right) ") + strings.Join(parts, " ")
	}
	return strings.Join(parts, " ")
}

func indentBlock(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
