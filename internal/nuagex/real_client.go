package nuagex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultEndpoint is the public NuageX API endpoint.
const DefaultEndpoint = "https://experience.nuagenetworks.net/api"

// createReason is recorded on the remote side for audit purposes.
const createReason = "Created by nuagex"

// Client implements API against the NuageX REST service. It owns the cached
// bearer token; there is no process-wide state.
type Client struct {
	username   string
	password   string
	endpoint   string
	token      string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithEndpoint overrides the API endpoint (useful for testing).
func WithEndpoint(endpoint string) ClientOption {
	return func(c *Client) {
		c.endpoint = strings.TrimRight(endpoint, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a NuageX API client with optional configuration.
func NewClient(username, password string, opts ...ClientOption) *Client {
	c := &Client{
		username: username,
		password: password,
		endpoint: DefaultEndpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Authenticate logs in and caches the access token. Calling it again after a
// successful login is a no-op; there is no re-authentication on expiry.
func (c *Client) Authenticate(ctx context.Context) error {
	if c.token != "" {
		return nil
	}

	body, err := json.Marshal(map[string]string{
		"username": c.username,
		"password": c.password,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("login request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &AuthError{Username: c.username}
	}

	var login struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		return fmt.Errorf("parse login response: %w", err)
	}

	c.token = login.AccessToken
	return nil
}

// LabByName returns the first lab matching name, or nil if none exists.
// The listing endpoint is treated as the authoritative observed state.
func (c *Client) LabByName(ctx context.Context, name string) (*Lab, error) {
	var labs []labPayload
	if err := c.get(ctx, "/labs?name="+url.QueryEscape(name), &labs); err != nil {
		return nil, fmt.Errorf("list labs: %w", err)
	}

	if len(labs) == 0 {
		return nil, nil
	}
	return labs[0].lab(), nil
}

// CreateLab requests creation of a new lab from the given template.
func (c *Client) CreateLab(ctx context.Context, name string, tpl Template) (*Lab, error) {
	payload := map[string]any{
		"name":     name,
		"template": tpl.ID,
		"services": []any{},
		"networks": []any{},
		"servers":  []any{},
		// Zero time makes the service apply its default expiry (~4.5 days).
		"expires": "0001-01-01T00:00:00Z",
		"reason":  createReason,
	}

	var created labPayload
	if err := c.post(ctx, "/labs", payload, &created); err != nil {
		return nil, fmt.Errorf("create lab %q: %w", name, err)
	}
	return created.lab(), nil
}

// DeleteLab requests deletion of the lab.
func (c *Client) DeleteLab(ctx context.Context, lab *Lab) error {
	if err := c.delete(ctx, "/labs/"+lab.ID); err != nil {
		return fmt.Errorf("delete lab %q: %w", lab.Name, err)
	}
	return nil
}

// Templates returns all templates available to the account.
func (c *Client) Templates(ctx context.Context) ([]Template, error) {
	var templates []Template
	if err := c.get(ctx, "/templates", &templates); err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return templates, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	return c.do(ctx, http.MethodPost, path, payload, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do performs an authenticated API call and decodes the response into out.
// Responses outside [200,300) surface as *APIError.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	if err := c.Authenticate(ctx); err != nil {
		return err
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}
