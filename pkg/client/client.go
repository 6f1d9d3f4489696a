// Package client is a typed gateway to the portfolio REST API: one method per
// (resource, operation). Calls return decoded records or an error carrying a
// generic "failed to <verb> <resource>" message on any non-2xx status; callers
// are not handed structured error codes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"os"
	"sync"

	"pfbe/models"
)

const defaultBaseURL = "http://localhost:8000/api"

// Client talks to one API base URL and optionally carries a server-issued
// session token. The zero http.Client is used as-is: no retries, no timeout,
// one request per call, matching the contract the frontend was written
// against. Cancellation comes from the caller's context.
type Client struct {
	baseURL string
	hc      *http.Client

	mu           sync.RWMutex
	token        string
	refreshToken string
}

// New builds a client for baseURL. An empty baseURL falls back to the
// PORTFOLIO_API_URL environment variable, then to the local dev default.
// A nil hc uses a fresh http.Client.
func New(baseURL string, hc *http.Client) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("PORTFOLIO_API_URL")
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if hc == nil {
		hc = &http.Client{}
	}
	return &Client{baseURL: baseURL, hc: hc}
}

// LoggedIn reports whether the client holds a session token. It is a UI hint
// derived from a verified login, not an authorization mechanism; the server
// re-checks the token on every mutating call.
func (c *Client) LoggedIn() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token != ""
}

// Login authenticates with email+password. A 2xx response means success and
// stores the issued session token; any other status reports false without an
// error, mirroring the boolean login contract.
func (c *Client) Login(ctx context.Context, email, password string) (bool, error) {
	body, err := c.do(ctx, http.MethodPost, "/login", nil,
		map[string]string{"email": email, "password": password}, "")
	if err != nil {
		var httpErr *statusError
		if errors.As(err, &httpErr) {
			return false, nil
		}
		return false, err
	}
	var resp struct {
		Token        string `json:"token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return false, errors.New("failed to decode login response")
	}
	c.mu.Lock()
	c.token = resp.Token
	c.refreshToken = resp.RefreshToken
	c.mu.Unlock()
	return true, nil
}

// Logout revokes the refresh token (best effort) and drops the session.
func (c *Client) Logout(ctx context.Context) {
	c.mu.Lock()
	refresh := c.refreshToken
	c.token = ""
	c.refreshToken = ""
	c.mu.Unlock()
	if refresh != "" {
		_, _ = c.do(ctx, http.MethodPost, "/revoke_refresh", nil,
			map[string]string{"refresh_token": refresh}, "")
	}
}

// Refresh exchanges the held refresh token for a new access token pair.
func (c *Client) Refresh(ctx context.Context) error {
	c.mu.RLock()
	refresh := c.refreshToken
	c.mu.RUnlock()
	if refresh == "" {
		return errors.New("no refresh token")
	}
	body, err := c.do(ctx, http.MethodPost, "/refresh", nil,
		map[string]string{"refresh_token": refresh}, "failed to refresh session")
	if err != nil {
		return err
	}
	var resp struct {
		Token        string `json:"token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return errors.New("failed to decode refresh response")
	}
	c.mu.Lock()
	c.token = resp.Token
	c.refreshToken = resp.RefreshToken
	c.mu.Unlock()
	return nil
}

func (c *Client) GetProfile(ctx context.Context) (*models.Profile, error) {
	body, err := c.do(ctx, http.MethodGet, "/profile", nil, nil, "failed to fetch profile")
	if err != nil {
		return nil, err
	}
	var p models.Profile
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, errors.New("failed to fetch profile")
	}
	return &p, nil
}

func (c *Client) CreateProfile(ctx context.Context, profile models.Profile) (*models.Profile, error) {
	body, err := c.do(ctx, http.MethodPost, "/profile", nil, profile, "failed to create profile")
	if err != nil {
		return nil, err
	}
	var p models.Profile
	if err := decodeCreated(body, &p); err != nil {
		return nil, errors.New("failed to create profile")
	}
	return &p, nil
}

func (c *Client) UpdateProfile(ctx context.Context, id string, profile models.Profile) (*models.Profile, error) {
	body, err := c.do(ctx, http.MethodPut, "/profile/"+id, nil, profile, "failed to update profile")
	if err != nil {
		return nil, err
	}
	var p models.Profile
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, errors.New("failed to update profile")
	}
	return &p, nil
}

func (c *Client) ListProjects(ctx context.Context, profileID string) ([]models.Project, error) {
	body, err := c.do(ctx, http.MethodGet, "/projects", scoped(profileID), nil, "failed to fetch projects")
	if err != nil {
		return nil, err
	}
	var out []models.Project
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.New("failed to fetch projects")
	}
	return out, nil
}

func (c *Client) CreateProject(ctx context.Context, project models.Project) (*models.Project, error) {
	body, err := c.do(ctx, http.MethodPost, "/projects", nil, project, "failed to create project")
	if err != nil {
		return nil, err
	}
	var p models.Project
	if err := decodeCreated(body, &p); err != nil {
		return nil, errors.New("failed to create project")
	}
	return &p, nil
}

func (c *Client) UpdateProject(ctx context.Context, id string, project models.Project) (*models.Project, error) {
	body, err := c.do(ctx, http.MethodPut, "/projects/"+id, nil, project, "failed to update project")
	if err != nil {
		return nil, err
	}
	var p models.Project
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, errors.New("failed to update project")
	}
	return &p, nil
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/projects/"+id, nil, nil, "failed to delete project")
	return err
}

func (c *Client) ListCertificates(ctx context.Context, profileID string) ([]models.Certificate, error) {
	body, err := c.do(ctx, http.MethodGet, "/certificates", scoped(profileID), nil, "failed to fetch certificates")
	if err != nil {
		return nil, err
	}
	var out []models.Certificate
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.New("failed to fetch certificates")
	}
	return out, nil
}

func (c *Client) GetCertificateBySlug(ctx context.Context, slug string) (*models.Certificate, error) {
	body, err := c.do(ctx, http.MethodGet, "/certificates/"+slug, nil, nil, "failed to fetch certificate")
	if err != nil {
		return nil, err
	}
	var cert models.Certificate
	if err := json.Unmarshal(body, &cert); err != nil {
		return nil, errors.New("failed to fetch certificate")
	}
	return &cert, nil
}

func (c *Client) CreateCertificate(ctx context.Context, cert models.Certificate) (*models.Certificate, error) {
	body, err := c.do(ctx, http.MethodPost, "/certificates", nil, cert, "failed to create certificate")
	if err != nil {
		return nil, err
	}
	var out models.Certificate
	if err := decodeCreated(body, &out); err != nil {
		return nil, errors.New("failed to create certificate")
	}
	return &out, nil
}

func (c *Client) UpdateCertificate(ctx context.Context, id string, cert models.Certificate) (*models.Certificate, error) {
	body, err := c.do(ctx, http.MethodPut, "/certificates/"+id, nil, cert, "failed to update certificate")
	if err != nil {
		return nil, err
	}
	var out models.Certificate
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.New("failed to update certificate")
	}
	return &out, nil
}

func (c *Client) DeleteCertificate(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/certificates/"+id, nil, nil, "failed to delete certificate")
	return err
}

func (c *Client) ListExperiences(ctx context.Context, profileID string) ([]models.Experience, error) {
	body, err := c.do(ctx, http.MethodGet, "/experiences", scoped(profileID), nil, "failed to fetch experiences")
	if err != nil {
		return nil, err
	}
	var out []models.Experience
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.New("failed to fetch experiences")
	}
	return out, nil
}

func (c *Client) CreateExperience(ctx context.Context, exp models.Experience) (*models.Experience, error) {
	body, err := c.do(ctx, http.MethodPost, "/experiences", nil, exp, "failed to create experience")
	if err != nil {
		return nil, err
	}
	var out models.Experience
	if err := decodeCreated(body, &out); err != nil {
		return nil, errors.New("failed to create experience")
	}
	return &out, nil
}

func (c *Client) DeleteExperience(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/experiences/"+id, nil, nil, "failed to delete experience")
	return err
}

func (c *Client) ListInterests(ctx context.Context, profileID string) ([]models.Interest, error) {
	body, err := c.do(ctx, http.MethodGet, "/interests", scoped(profileID), nil, "failed to fetch interests")
	if err != nil {
		return nil, err
	}
	var out []models.Interest
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.New("failed to fetch interests")
	}
	return out, nil
}

func (c *Client) CreateInterest(ctx context.Context, in models.Interest) (*models.Interest, error) {
	body, err := c.do(ctx, http.MethodPost, "/interests", nil, in, "failed to create interest")
	if err != nil {
		return nil, err
	}
	var out models.Interest
	if err := decodeCreated(body, &out); err != nil {
		return nil, errors.New("failed to create interest")
	}
	return &out, nil
}

func (c *Client) DeleteInterest(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/interests/"+id, nil, nil, "failed to delete interest")
	return err
}

func (c *Client) ListServices(ctx context.Context, profileID string) ([]models.Service, error) {
	body, err := c.do(ctx, http.MethodGet, "/services", scoped(profileID), nil, "failed to fetch services")
	if err != nil {
		return nil, err
	}
	var out []models.Service
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.New("failed to fetch services")
	}
	return out, nil
}

func (c *Client) CreateService(ctx context.Context, svc models.Service) (*models.Service, error) {
	body, err := c.do(ctx, http.MethodPost, "/services", nil, svc, "failed to create service")
	if err != nil {
		return nil, err
	}
	var out models.Service
	if err := decodeCreated(body, &out); err != nil {
		return nil, errors.New("failed to create service")
	}
	return &out, nil
}

func (c *Client) DeleteService(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/services/"+id, nil, nil, "failed to delete service")
	return err
}

// SendContact relays a contact-form submission.
func (c *Client) SendContact(ctx context.Context, name, email, message string) error {
	_, err := c.do(ctx, http.MethodPost, "/contact", nil,
		map[string]string{"name": name, "email": email, "message": message}, "failed to send message")
	return err
}

// statusError marks a non-2xx response internally; callers only ever see the
// generic message.
type statusError struct {
	code int
	msg  string
}

func (e *statusError) Error() string { return e.msg }

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in any, failMsg string) ([]byte, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if failMsg == "" {
			failMsg = http.StatusText(resp.StatusCode)
		}
		return nil, &statusError{code: resp.StatusCode, msg: failMsg}
	}
	return data, nil
}

// decodeCreated handles both create-response shapes: the normalized bare
// object and the legacy one-element array some backends return from their
// bulk-insert path.
func decodeCreated(body []byte, out any) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var raw []json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		if len(raw) == 0 {
			return errors.New("empty create response")
		}
		return json.Unmarshal(raw[0], out)
	}
	return json.Unmarshal(trimmed, out)
}

func scoped(profileID string) url.Values {
	if profileID == "" {
		return nil
	}
	return url.Values{"profile_id": []string{profileID}}
}
