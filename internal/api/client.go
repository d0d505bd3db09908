package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"opslog-cli/internal/model"
)

// DefaultBaseURL matches the backend's development origin.
const DefaultBaseURL = "http://127.0.0.1:8000"

// Client is a thin JSON client for the OpsLog backend. All requests carry
// Content-Type: application/json; authenticated requests carry a bearer
// token. Methods never retry: every failure is terminal for that attempt.
type Client struct {
	BaseURL string
	HTTP    *http.Client

	token string
}

func NewClient(baseURL string) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{BaseURL: baseURL, HTTP: &http.Client{}}
}

// SetToken sets the bearer token used for subsequent requests. An empty
// token reverts the client to unauthenticated requests.
func (c *Client) SetToken(token string) { c.token = strings.TrimSpace(token) }

func (c *Client) Token() string { return c.token }

// Error is a failed API call. Message is the rendered `detail` payload and is
// safe to show to the user as-is.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Unauthenticated reports whether the call was rejected for a missing or
// expired session.
func (e *Error) Unauthenticated() bool { return e.Status == http.StatusUnauthorized }

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		// Tolerate empty or non-JSON error bodies.
		var payload map[string]any
		if err := json.Unmarshal(data, &payload); err != nil {
			payload = map[string]any{}
		}
		return &Error{Status: res.StatusCode, Message: FormatDetail(payload["detail"])}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

type LoginResult struct {
	Token string        `json:"token"`
	User  model.Profile `json:"user"`
}

func (c *Client) Login(ctx context.Context, username, password string) (LoginResult, error) {
	var out LoginResult
	err := c.do(ctx, http.MethodPost, "/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, &out)
	return out, err
}

type RegisterPayload struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *Client) Register(ctx context.Context, p RegisterPayload) error {
	return c.do(ctx, http.MethodPost, "/auth/register", p, nil)
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (c *Client) Me(ctx context.Context) (model.Profile, error) {
	var out model.Profile
	err := c.do(ctx, http.MethodGet, "/auth/me", nil, &out)
	return out, err
}

func (c *Client) Meta(ctx context.Context) (model.Meta, error) {
	var out model.Meta
	err := c.do(ctx, http.MethodGet, "/meta", nil, &out)
	return out, err
}

func (c *Client) Dashboard(ctx context.Context) (model.Dashboard, error) {
	var out model.Dashboard
	err := c.do(ctx, http.MethodGet, "/dashboard", nil, &out)
	return out, err
}

func (c *Client) SearchIncidents(ctx context.Context, keyword string, page, pageSize int) (model.SearchPage, error) {
	q := url.Values{}
	q.Set("keyword", keyword)
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))
	var out model.SearchPage
	err := c.do(ctx, http.MethodGet, "/incidents?"+q.Encode(), nil, &out)
	return out, err
}

func (c *Client) GetIncident(ctx context.Context, incidentID string) (model.Incident, error) {
	var out model.Incident
	err := c.do(ctx, http.MethodGet, "/incidents/"+url.PathEscape(incidentID), nil, &out)
	return out, err
}

// CreateIncident returns the backend-assigned incident id.
func (c *Client) CreateIncident(ctx context.Context, inc model.Incident) (string, error) {
	var out struct {
		IncidentID string `json:"incident_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/incidents", inc, &out); err != nil {
		return "", err
	}
	return out.IncidentID, nil
}

func (c *Client) UpdateIncident(ctx context.Context, incidentID string, upd model.IncidentUpdate) error {
	return c.do(ctx, http.MethodPatch, "/incidents/"+url.PathEscape(incidentID), upd, nil)
}

func (c *Client) IncidentChanges(ctx context.Context, incidentID string) ([]model.ChangeLogEntry, error) {
	var out []model.ChangeLogEntry
	err := c.do(ctx, http.MethodGet, "/incidents/"+url.PathEscape(incidentID)+"/changes", nil, &out)
	return out, err
}

func (c *Client) SubmitDeleteRequest(ctx context.Context, incidentID string) error {
	return c.do(ctx, http.MethodPost, "/delete-requests", map[string]string{"incident_id": incidentID}, nil)
}

func (c *Client) ListDeleteRequests(ctx context.Context) ([]model.DeleteRequest, error) {
	var out []model.DeleteRequest
	err := c.do(ctx, http.MethodGet, "/delete-requests", nil, &out)
	return out, err
}

func (c *Client) ApproveDelete(ctx context.Context, incidentID string) error {
	return c.do(ctx, http.MethodPost, "/delete-requests/approve", map[string]string{"incident_id": incidentID}, nil)
}

func (c *Client) ListUsers(ctx context.Context) ([]model.UserAccount, error) {
	var out []model.UserAccount
	err := c.do(ctx, http.MethodGet, "/users", nil, &out)
	return out, err
}

func (c *Client) AssignRole(ctx context.Context, username, role string) error {
	return c.do(ctx, http.MethodPost, "/users/role", map[string]string{
		"username": username,
		"role":     role,
	}, nil)
}

func (c *Client) SetUserActive(ctx context.Context, username string, active bool) error {
	return c.do(ctx, http.MethodPost, "/users/status", map[string]any{
		"username":  username,
		"is_active": active,
	}, nil)
}
