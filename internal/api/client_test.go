package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"opslog-cli/internal/model"
)

func TestClient_BearerHeaderAndContentType(t *testing.T) {
	t.Parallel()

	var gotAuth, gotCT string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotCT = r.Header.Get("Content-Type")
		_ = json.NewEncoder(w).Encode(model.Profile{Username: "ops1"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.SetToken("tok-123")
	if _, err := c.Me(context.Background()); err != nil {
		t.Fatalf("Me: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if gotCT != "application/json" {
		t.Fatalf("Content-Type = %q", gotCT)
	}
}

func TestClient_SearchQueryEncoding(t *testing.T) {
	t.Parallel()

	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"keyword":   q.Get("keyword"),
			"page":      q.Get("page"),
			"page_size": q.Get("page_size"),
		}
		_ = json.NewEncoder(w).Encode(model.SearchPage{Total: 1, Rows: []model.Incident{{IncidentID: "INC-1"}}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	page, err := c.SearchIncidents(context.Background(), "db timeout", 2, 25)
	if err != nil {
		t.Fatalf("SearchIncidents: %v", err)
	}
	if gotQuery["keyword"] != "db timeout" || gotQuery["page"] != "2" || gotQuery["page_size"] != "25" {
		t.Fatalf("query = %v", gotQuery)
	}
	if page.Total != 1 || len(page.Rows) != 1 || page.Rows[0].IncidentID != "INC-1" {
		t.Fatalf("page = %+v", page)
	}
}

func TestClient_ErrorDetailRendered(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"detail":[{"loc":["body","password"],"msg":"too short"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	err := c.Register(context.Background(), RegisterPayload{Username: "x"})
	if err == nil {
		t.Fatal("expected error")
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type %T", err)
	}
	if apiErr.Message != "body -> password: too short" {
		t.Fatalf("message = %q", apiErr.Message)
	}
}

func TestClient_NonJSONErrorBodyTolerated(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Dashboard(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type %T", err)
	}
	if apiErr.Message != "Request failed." {
		t.Fatalf("message = %q", apiErr.Message)
	}
}

func TestClient_UnauthenticatedStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Session expired or invalid token."}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Me(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type %T", err)
	}
	if !apiErr.Unauthenticated() {
		t.Fatalf("Unauthenticated() = false for status %d", apiErr.Status)
	}
}

func TestClient_IncidentIDPathEscaped(t *testing.T) {
	t.Parallel()

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_ = json.NewEncoder(w).Encode(model.Incident{IncidentID: "INC 42"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.GetIncident(context.Background(), "INC 42"); err != nil {
		t.Fatalf("GetIncident: %v", err)
	}
	if gotPath != "/incidents/INC%2042" {
		t.Fatalf("path = %q", gotPath)
	}
}

func TestClient_UserActiveFlagTolerated(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// SQLite-backed backends serve is_active as 0/1.
		_, _ = w.Write([]byte(`[{"username":"ops1","is_active":1},{"username":"ops2","is_active":false}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	users, err := c.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 2 || !users[0].IsActive.Bool() || users[1].IsActive.Bool() {
		t.Fatalf("users = %+v", users)
	}
}
