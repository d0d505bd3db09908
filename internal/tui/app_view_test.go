package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"opslog-cli/internal/model"
	"opslog-cli/internal/workspace"
)

func setAsciiProfile(t *testing.T) {
	t.Helper()
	old := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(old) })
}

func TestViewAuthShowsLoginPage(t *testing.T) {
	setAsciiProfile(t)

	m := newTestModel(t, workspace.RoleSOEngineer)
	m.resetToAuth()

	out := m.View()
	for _, want := range []string{"OpsLog", "Sign In", "Register", "Username", "Password"} {
		if !strings.Contains(out, want) {
			t.Fatalf("auth view missing %q:\n%s", want, out)
		}
	}
}

func TestViewMenuMatchesRole(t *testing.T) {
	setAsciiProfile(t)

	m := newTestModel(t, workspace.RoleManager)
	out := m.View()

	for _, want := range []string{"Dashboard", "Search", "Delete Approval", "Users"} {
		if !strings.Contains(out, want) {
			t.Fatalf("manager view missing tab %q:\n%s", want, out)
		}
	}
	for _, forbidden := range []string{"Create", "Update", "Delete Request"} {
		if strings.Contains(out, forbidden) {
			t.Fatalf("manager view shows forbidden tab %q:\n%s", forbidden, out)
		}
	}
}

func TestViewDashboardRendersCounts(t *testing.T) {
	setAsciiProfile(t)

	m := newTestModel(t, workspace.RoleSOEngineer)
	m.state = m.state.WithDashboard(model.Dashboard{
		TotalIncidents:      42,
		OpenCases:           7,
		MonitoringCases:     3,
		ResolvedClosedCases: 32,
		AvgDurationMinutes:  95.5,
		IncidentsLast7Days:  5,
		StatusBreakdown:     []model.StatusCount{{Status: "Open Case", Total: 7}},
		TopComponents:       []model.ComponentCount{{Component: "Gateway", Total: 9}},
	})

	out := m.View()
	for _, want := range []string{"42", "95.5 min", "Open Case", "Gateway"} {
		if !strings.Contains(out, want) {
			t.Fatalf("dashboard view missing %q:\n%s", want, out)
		}
	}
}

func TestViewSearchEmptyResult(t *testing.T) {
	setAsciiProfile(t)

	m := newTestModel(t, workspace.RoleSOEngineer)
	m.state.ActiveTab = workspace.TabSearch
	m.state = m.state.WithSearchResults(workspace.DefaultSearch(), model.SearchPage{})

	out := m.View()
	if !strings.Contains(out, "Total records: 0") {
		t.Fatalf("search view missing total line:\n%s", out)
	}
	if !strings.Contains(out, "No records were found.") {
		t.Fatalf("search view missing empty message:\n%s", out)
	}
}

func TestViewUpdateShowsStatusPicker(t *testing.T) {
	setAsciiProfile(t)

	m := newTestModel(t, workspace.RoleSOEngineer)
	m.state.ActiveTab = workspace.TabUpdate
	inc := model.Incident{IncidentID: "INC-9", ErrorName: "Crash", Component: "API", Status: "Legacy"}
	m.state = m.state.WithLoadedIncident(&inc)
	m.update.statusIdx = indexOf(m.state.StatusChoices(), "Legacy")

	out := m.View()
	if !strings.Contains(out, "[Legacy]") {
		t.Fatalf("status picker does not highlight the union status:\n%s", out)
	}
}

func TestViewDeleteApproveListsPendingOnly(t *testing.T) {
	setAsciiProfile(t)

	m := newTestModel(t, workspace.RoleManager)
	m.state.ActiveTab = workspace.TabDeleteApprove
	m.state = m.state.WithDeleteRequests([]model.DeleteRequest{
		{IncidentID: "INC-1", Status: "Approved", RequestedBy: "carol"},
		{IncidentID: "INC-2", Status: model.DeleteRequestPending, RequestedBy: "dave"},
	})

	out := m.View()
	if strings.Contains(out, "INC-1") {
		t.Fatalf("approved request should not be listed:\n%s", out)
	}
	if !strings.Contains(out, "INC-2") {
		t.Fatalf("pending request missing:\n%s", out)
	}
}
