// Package workspace holds the pure view-state core of the client: role-based
// menu derivation, the app state snapshot and its reducers, the
// refresh-after-mutation table, and date conversion helpers. No I/O.
package workspace

// Tab identifies a workspace view. Values double as stable ids in tests and
// in the refresh table.
type Tab string

const (
	TabDashboard     Tab = "dashboard"
	TabSearch        Tab = "search"
	TabCreate        Tab = "create"
	TabUpdate        Tab = "update"
	TabDeleteRequest Tab = "delete-request"
	TabDeleteApprove Tab = "delete-approve"
	TabUsers         Tab = "users"
)

// Roles as served by the backend. Managers are read/oversight only for
// incident content; the assignable operational roles are the other three.
const (
	RoleManager       = "Manager"
	RoleCSLeader      = "CS Leader"
	RoleSOEngineer    = "SO Engineer"
	RoleFieldEngineer = "Service Field Engineer"
)

// Menu returns the ordered workspace tabs permitted for a role. Order is
// display order and is part of the contract.
func Menu(role string) []Tab {
	tabs := []Tab{TabDashboard, TabSearch}
	if role != RoleManager {
		tabs = append(tabs, TabCreate, TabUpdate)
	}
	if role == RoleCSLeader {
		tabs = append(tabs, TabDeleteRequest)
	}
	if role == RoleManager || role == RoleCSLeader {
		tabs = append(tabs, TabDeleteApprove)
	}
	if role == RoleManager {
		tabs = append(tabs, TabUsers)
	}
	return tabs
}

// EnsureTab returns active if it is a member of menu, otherwise the menu's
// first entry (or dashboard for an empty menu). The active tab must always
// be a member of the computed menu.
func EnsureTab(menu []Tab, active Tab) Tab {
	for _, t := range menu {
		if t == active {
			return active
		}
	}
	if len(menu) > 0 {
		return menu[0]
	}
	return TabDashboard
}
