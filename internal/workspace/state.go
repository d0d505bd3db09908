package workspace

import (
	"strconv"
	"strings"

	"opslog-cli/internal/model"
)

// Search defaults and bounds. page_size is clamped before dispatch; the
// backend enforces the same bounds.
const (
	DefaultPageSize = 10
	MinPageSize     = 1
	MaxPageSize     = 100
)

type SearchParams struct {
	Keyword  string
	Page     int
	PageSize int
}

// DefaultSearch is the query issued right after bootstrap.
func DefaultSearch() SearchParams {
	return SearchParams{Keyword: "", Page: 1, PageSize: DefaultPageSize}
}

// Normalize clamps page and page_size into their legal ranges.
func (p SearchParams) Normalize() SearchParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < MinPageSize {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// ParsePage turns free-form numeric input into a page number; empty or
// invalid input falls back to 1.
func ParsePage(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// ParsePageSize turns free-form numeric input into a page size; empty or
// invalid input falls back to the default, out-of-range values are clamped.
func ParsePageSize(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < MinPageSize {
		return DefaultPageSize
	}
	if n > MaxPageSize {
		return MaxPageSize
	}
	return n
}

type SearchState struct {
	SearchParams
	Total int
	Rows  []model.Incident
}

// State is the single source of truth for everything the workspace displays.
// Reducer methods return a new snapshot; callers replace their copy wholesale
// so no partial update is ever visible.
type State struct {
	Meta      model.Meta
	ActiveTab Tab

	Dashboard      *model.Dashboard
	Search         SearchState
	DeleteRequests []model.DeleteRequest
	Users          []model.UserAccount

	// LoadedIncident is the incident currently held by the update form.
	LoadedIncident *model.Incident
}

func NewState() State {
	return State{
		ActiveTab: TabDashboard,
		Search:    SearchState{SearchParams: DefaultSearch()},
	}
}

// WithTabGuard re-validates the active tab against the menu for role.
func (s State) WithTabGuard(role string) State {
	s.ActiveTab = EnsureTab(Menu(role), s.ActiveTab)
	return s
}

func (s State) WithMeta(meta model.Meta) State {
	s.Meta = meta
	return s
}

func (s State) WithDashboard(d model.Dashboard) State {
	s.Dashboard = &d
	return s
}

// WithSearchResults replaces the whole search snapshot; results are never
// merged with a previous page.
func (s State) WithSearchResults(params SearchParams, page model.SearchPage) State {
	s.Search = SearchState{SearchParams: params, Total: page.Total, Rows: page.Rows}
	return s
}

func (s State) WithDeleteRequests(rows []model.DeleteRequest) State {
	s.DeleteRequests = rows
	return s
}

func (s State) WithUsers(rows []model.UserAccount) State {
	s.Users = rows
	return s
}

func (s State) WithLoadedIncident(inc *model.Incident) State {
	s.LoadedIncident = inc
	return s
}

// StatusChoices is the status dropdown content for the update form: the
// metadata enumeration plus the loaded incident's own status. The union
// keeps a current value selectable even when the metadata snapshot is stale.
func (s State) StatusChoices() []string {
	choices := make([]string, 0, len(s.Meta.IncidentStatuses)+1)
	seen := map[string]bool{}
	for _, st := range s.Meta.IncidentStatuses {
		if !seen[st] {
			seen[st] = true
			choices = append(choices, st)
		}
	}
	if s.LoadedIncident != nil && s.LoadedIncident.Status != "" && !seen[s.LoadedIncident.Status] {
		choices = append(choices, s.LoadedIncident.Status)
	}
	return choices
}

// DefaultRole is the initial selection for the role-assignment control.
func (s State) DefaultRole() string {
	if len(s.Meta.Roles) > 0 {
		return s.Meta.Roles[0]
	}
	return ""
}
