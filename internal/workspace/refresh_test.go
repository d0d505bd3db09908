package workspace

import (
	"reflect"
	"testing"
)

func TestRefreshViewsTable(t *testing.T) {
	t.Parallel()

	cases := []struct {
		cmd  Command
		want []View
	}{
		{CmdCreateIncident, []View{ViewDashboard, ViewSearch}},
		{CmdUpdateIncident, []View{ViewDashboard, ViewSearch, ViewIncident}},
		{CmdSubmitDeleteRequest, []View{}},
		{CmdApproveDelete, []View{ViewDeleteRequests, ViewDashboard, ViewSearch}},
		{CmdAssignRole, []View{ViewUsers}},
		{CmdSetUserStatus, []View{ViewUsers}},
	}
	for _, tc := range cases {
		got := RefreshViews(tc.cmd)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("RefreshViews(%q) = %v, want %v", tc.cmd, got, tc.want)
		}
	}
}

func TestRefreshViewsReturnsCopy(t *testing.T) {
	t.Parallel()

	got := RefreshViews(CmdCreateIncident)
	got[0] = View("mutated")
	if again := RefreshViews(CmdCreateIncident); again[0] != ViewDashboard {
		t.Fatalf("table aliased by caller mutation: %v", again)
	}
}
