package workspace

// Command identifies a mutating action dispatched from the workspace.
type Command string

const (
	CmdCreateIncident      Command = "create-incident"
	CmdUpdateIncident      Command = "update-incident"
	CmdSubmitDeleteRequest Command = "submit-delete-request"
	CmdApproveDelete       Command = "approve-delete"
	CmdAssignRole          Command = "assign-role"
	CmdSetUserStatus       Command = "set-user-status"
)

// View identifies a read view that can be re-fetched.
type View string

const (
	ViewDashboard      View = "dashboard"
	ViewSearch         View = "search"
	ViewIncident       View = "incident"
	ViewDeleteRequests View = "delete-requests"
	ViewUsers          View = "users"
)

// refreshAfter declares, per mutating command, which read views must be
// re-fetched after the mutation succeeds so no stale derived data stays
// visible. This table is the consistency contract; the dispatcher executes
// it verbatim.
var refreshAfter = map[Command][]View{
	CmdCreateIncident:      {ViewDashboard, ViewSearch},
	CmdUpdateIncident:      {ViewDashboard, ViewSearch, ViewIncident},
	CmdSubmitDeleteRequest: {},
	CmdApproveDelete:       {ViewDeleteRequests, ViewDashboard, ViewSearch},
	CmdAssignRole:          {ViewUsers},
	CmdSetUserStatus:       {ViewUsers},
}

// RefreshViews returns the views invalidated by a successful command, in
// dispatch order.
func RefreshViews(cmd Command) []View {
	views := refreshAfter[cmd]
	out := make([]View, len(views))
	copy(out, views)
	return out
}
