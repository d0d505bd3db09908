package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"opslog-cli/internal/api"
	"opslog-cli/internal/model"
	"opslog-cli/internal/store"
)

func newBackend(t *testing.T, mux *http.ServeMux) *api.Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return api.NewClient(srv.URL)
}

func okBackendMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-1",
			"user":  model.Profile{Username: "ops1", FullName: "Ops One", Role: "CS Leader"},
		})
	})
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Session expired or invalid token."}`))
			return
		}
		_ = json.NewEncoder(w).Encode(model.Profile{Username: "ops1", FullName: "Ops One", Role: "CS Leader"})
	})
	mux.HandleFunc("GET /meta", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(model.Meta{
			Roles:            []string{"SO Engineer", "Service Field Engineer", "CS Leader"},
			IncidentStatuses: []string{"Open Case", "Monitoring", "Resolved", "Closed"},
		})
	})
	return mux
}

func TestLoginThenBootstrapPersistsSession(t *testing.T) {
	t.Parallel()

	ctrl := &Controller{Client: newBackend(t, okBackendMux()), Store: store.Store{Dir: t.TempDir()}}
	ctx := context.Background()

	token, err := ctrl.Login(ctx, "ops1", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token != "tok-1" {
		t.Fatalf("token = %q", token)
	}

	sess, err := ctrl.Bootstrap(ctx, token)
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if sess.Profile.Role != "CS Leader" {
		t.Fatalf("profile = %+v", sess.Profile)
	}
	if len(sess.Meta.IncidentStatuses) != 4 {
		t.Fatalf("meta = %+v", sess.Meta)
	}

	creds, err := ctrl.Store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if creds.Token != "tok-1" || creds.Profile == nil || creds.Profile.Username != "ops1" {
		t.Fatalf("persisted creds = %+v", creds)
	}
}

func TestBootstrapFailureForcesLogout(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Session expired or invalid token."}`))
	})
	mux.HandleFunc("GET /meta", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(model.Meta{})
	})

	client := newBackend(t, mux)
	st := store.Store{Dir: t.TempDir()}
	ctx := context.Background()

	// Simulate a stale persisted session.
	if err := st.Save(ctx, store.Credentials{Token: "expired", Profile: &model.Profile{Username: "ops1"}}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	ctrl := &Controller{Client: client, Store: st}
	if _, err := ctrl.Bootstrap(ctx, "expired"); err == nil {
		t.Fatal("expected bootstrap error")
	}

	if client.Token() != "" {
		t.Fatalf("client token not cleared: %q", client.Token())
	}
	creds, err := st.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if creds.Token != "" || creds.Profile != nil {
		t.Fatalf("persisted creds not cleared: %+v", creds)
	}
}

func TestBootstrapPartialFailureIsFatal(t *testing.T) {
	t.Parallel()

	// Profile succeeds, metadata fails: join-all-or-fail means the whole
	// bootstrap fails.
	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(model.Profile{Username: "ops1"})
	})
	mux.HandleFunc("GET /meta", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"meta unavailable"}`))
	})

	ctrl := &Controller{Client: newBackend(t, mux), Store: store.Store{Dir: t.TempDir()}}
	if _, err := ctrl.Bootstrap(context.Background(), "tok"); err == nil {
		t.Fatal("expected bootstrap error")
	}
	creds, _ := ctrl.Store.Load(context.Background())
	if creds.Token != "" {
		t.Fatalf("credentials survived failed bootstrap: %+v", creds)
	}
}

func TestLogoutSwallowsBackendFailure(t *testing.T) {
	t.Parallel()

	var notified atomic.Bool
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, r *http.Request) {
		notified.Store(true)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"boom"}`))
	})

	client := newBackend(t, mux)
	client.SetToken("tok-1")
	st := store.Store{Dir: t.TempDir()}
	ctx := context.Background()
	if err := st.Save(ctx, store.Credentials{Token: "tok-1"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	ctrl := &Controller{Client: client, Store: st}
	ctrl.Logout(ctx)

	if !notified.Load() {
		t.Fatal("backend logout was not attempted")
	}
	if client.Token() != "" {
		t.Fatalf("client token not cleared: %q", client.Token())
	}
	creds, _ := st.Load(ctx)
	if creds.Token != "" {
		t.Fatalf("persisted token not cleared: %+v", creds)
	}
}

func TestLoginFailureLeavesExistingSessionAlone(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Invalid username or password."}`))
	})

	client := newBackend(t, mux)
	client.SetToken("existing")
	st := store.Store{Dir: t.TempDir()}
	ctx := context.Background()
	if err := st.Save(ctx, store.Credentials{Token: "existing"}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	ctrl := &Controller{Client: client, Store: st}
	if _, err := ctrl.Login(ctx, "ops1", "wrong"); err == nil {
		t.Fatal("expected login error")
	}

	if client.Token() != "existing" {
		t.Fatalf("token changed on failed login: %q", client.Token())
	}
	creds, _ := st.Load(ctx)
	if creds.Token != "existing" {
		t.Fatalf("persisted creds touched on failed login: %+v", creds)
	}
}
