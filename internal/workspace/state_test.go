package workspace

import (
	"reflect"
	"testing"

	"opslog-cli/internal/model"
)

func TestParsePageAndPageSizeDefaults(t *testing.T) {
	t.Parallel()

	if got := ParsePage(""); got != 1 {
		t.Errorf("ParsePage(\"\") = %d", got)
	}
	if got := ParsePage("abc"); got != 1 {
		t.Errorf("ParsePage(abc) = %d", got)
	}
	if got := ParsePage("0"); got != 1 {
		t.Errorf("ParsePage(0) = %d", got)
	}
	if got := ParsePage("7"); got != 7 {
		t.Errorf("ParsePage(7) = %d", got)
	}

	if got := ParsePageSize(""); got != DefaultPageSize {
		t.Errorf("ParsePageSize(\"\") = %d", got)
	}
	if got := ParsePageSize("250"); got != MaxPageSize {
		t.Errorf("ParsePageSize(250) = %d", got)
	}
	if got := ParsePageSize("25"); got != 25 {
		t.Errorf("ParsePageSize(25) = %d", got)
	}
}

func TestSearchParamsNormalize(t *testing.T) {
	t.Parallel()

	p := SearchParams{Keyword: "x", Page: -3, PageSize: 0}.Normalize()
	if p.Page != 1 || p.PageSize != DefaultPageSize {
		t.Fatalf("normalized = %+v", p)
	}
	p = SearchParams{Page: 4, PageSize: 400}.Normalize()
	if p.Page != 4 || p.PageSize != MaxPageSize {
		t.Fatalf("normalized = %+v", p)
	}
}

func TestStateSearchResultsReplacedWholesale(t *testing.T) {
	t.Parallel()

	s := NewState()
	first := model.SearchPage{Total: 2, Rows: []model.Incident{{IncidentID: "INC-1"}, {IncidentID: "INC-2"}}}
	s = s.WithSearchResults(SearchParams{Keyword: "a", Page: 1, PageSize: 10}, first)

	second := model.SearchPage{Total: 1, Rows: []model.Incident{{IncidentID: "INC-9"}}}
	s = s.WithSearchResults(SearchParams{Keyword: "b", Page: 1, PageSize: 10}, second)

	if s.Search.Total != 1 || len(s.Search.Rows) != 1 || s.Search.Rows[0].IncidentID != "INC-9" {
		t.Fatalf("search state merged instead of replaced: %+v", s.Search)
	}
	if s.Search.Keyword != "b" {
		t.Fatalf("keyword = %q", s.Search.Keyword)
	}
}

func TestStatusChoicesUnionWithLoadedIncident(t *testing.T) {
	t.Parallel()

	s := NewState().WithMeta(model.Meta{IncidentStatuses: []string{"Open Case", "Monitoring", "Resolved", "Closed"}})

	// Metadata already contains the loaded status: no duplicate.
	inc := model.Incident{IncidentID: "INC-1", Status: "Monitoring"}
	got := s.WithLoadedIncident(&inc).StatusChoices()
	want := []string{"Open Case", "Monitoring", "Resolved", "Closed"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("choices = %v", got)
	}

	// A status missing from stale metadata stays selectable.
	legacy := model.Incident{IncidentID: "INC-2", Status: "Escalated"}
	got = s.WithLoadedIncident(&legacy).StatusChoices()
	want = []string{"Open Case", "Monitoring", "Resolved", "Closed", "Escalated"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("choices = %v", got)
	}
}

func TestStateTabGuard(t *testing.T) {
	t.Parallel()

	s := NewState()
	s.ActiveTab = TabUsers
	s = s.WithTabGuard(RoleSOEngineer)
	if s.ActiveTab != TabDashboard {
		t.Fatalf("active tab = %q", s.ActiveTab)
	}

	s.ActiveTab = TabCreate
	s = s.WithTabGuard(RoleSOEngineer)
	if s.ActiveTab != TabCreate {
		t.Fatalf("member tab reset: %q", s.ActiveTab)
	}
}

func TestDefaultRole(t *testing.T) {
	t.Parallel()

	s := NewState()
	if s.DefaultRole() != "" {
		t.Fatalf("DefaultRole with no metadata = %q", s.DefaultRole())
	}
	s = s.WithMeta(model.Meta{Roles: []string{"SO Engineer", "Service Field Engineer", "CS Leader"}})
	if s.DefaultRole() != "SO Engineer" {
		t.Fatalf("DefaultRole = %q", s.DefaultRole())
	}
}
