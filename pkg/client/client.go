// Package client is a typed API client for the site's admin surface.
// Instead of ambient process-wide session state, the bearer token lives in
// an explicit Session value returned by Login and passed to every
// protected call; callers drop the Session to log out, and a failed
// VerifyToken tells them to do so.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/model"
	"github.com/ShamanthHiremath/Media-Vision-Bangalore-Website-sub000/internal/repository"
)

// User is the admin identity returned by login and verify-token.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Session carries the bearer token for protected calls. The zero value is
// an unauthenticated session.
type Session struct {
	Token string
	User  User
}

// Valid reports whether the session carries a token at all. It says
// nothing about expiry; use VerifyToken for that.
func (s Session) Valid() bool { return s.Token != "" }

// APIError is a non-2xx response decoded from the server's {error} body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Client calls the REST API. Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type authResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Signup creates an admin account and returns a ready session.
func (c *Client) Signup(ctx context.Context, username, email, password string) (Session, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/users/signup", "", map[string]string{
		"username": username, "email": email, "password": password,
	}, &resp)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: resp.Token, User: resp.User}, nil
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, email, password string) (Session, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/users/login", "", map[string]string{
		"email": email, "password": password,
	}, &resp)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: resp.Token, User: resp.User}, nil
}

// VerifyToken is the route guard: it confirms the session's token is still
// accepted and returns the identity embedded in it. On any APIError with
// status 401 the caller should discard the session.
func (c *Client) VerifyToken(ctx context.Context, s Session) (User, error) {
	var resp struct {
		Valid bool `json:"valid"`
		User  User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/users/verify-token", s.Token, nil, &resp); err != nil {
		return User{}, err
	}
	return resp.User, nil
}

// Events lists all events, newest date first. Public.
func (c *Client) Events(ctx context.Context) ([]model.Event, error) {
	var out []model.Event
	err := c.do(ctx, http.MethodGet, "/events", "", nil, &out)
	return out, err
}

// Event fetches one event by id. Public.
func (c *Client) Event(ctx context.Context, id string) (model.Event, error) {
	var out model.Event
	err := c.do(ctx, http.MethodGet, "/events/"+id, "", nil, &out)
	return out, err
}

// DeleteEvent removes an event. Requires a session.
func (c *Client) DeleteEvent(ctx context.Context, s Session, id string) error {
	return c.do(ctx, http.MethodDelete, "/events/"+id, s.Token, nil, nil)
}

// Team lists all team members in display order. Public.
func (c *Client) Team(ctx context.Context) ([]model.TeamMember, error) {
	var out []model.TeamMember
	err := c.do(ctx, http.MethodGet, "/team", "", nil, &out)
	return out, err
}

// ReorderTeam applies id/order pairs and returns the re-sorted list.
func (c *Client) ReorderTeam(ctx context.Context, s Session, updates []repository.OrderUpdate) ([]model.TeamMember, error) {
	var out []model.TeamMember
	err := c.do(ctx, http.MethodPost, "/team/order", s.Token, map[string]any{
		"orderUpdates": updates,
	}, &out)
	return out, err
}

// DeleteTeamMember removes a team member. Requires a session.
func (c *Client) DeleteTeamMember(ctx context.Context, s Session, id string) error {
	return c.do(ctx, http.MethodDelete, "/team/"+id, s.Token, nil, nil)
}

// Registrations lists volunteer registrations. Requires a session.
func (c *Client) Registrations(ctx context.Context, s Session) ([]model.Registration, error) {
	var out []model.Registration
	err := c.do(ctx, http.MethodGet, "/registrations", s.Token, nil, &out)
	return out, err
}

// Contacts lists contact messages. Requires a session.
func (c *Client) Contacts(ctx context.Context, s Session) ([]model.Contact, error) {
	var out []model.Contact
	err := c.do(ctx, http.MethodGet, "/contact", s.Token, nil, &out)
	return out, err
}

// DeleteContact removes a contact message. Requires a session.
func (c *Client) DeleteContact(ctx context.Context, s Session, id string) error {
	return c.do(ctx, http.MethodDelete, "/contact/"+id, s.Token, nil, nil)
}

// SubmitContact sends a public contact-form message.
func (c *Client) SubmitContact(ctx context.Context, name, email, subject, message string) error {
	return c.do(ctx, http.MethodPost, "/contact", "", map[string]string{
		"name": name, "email": email, "subject": subject, "message": message,
	}, nil)
}

// do issues a JSON request, attaching the bearer token when present, and
// decodes the response into out (when non-nil). Non-2xx responses become
// *APIError with the server's error message.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var rd io.Reader
	if body != nil {
		bs, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(bs)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error == "" {
			apiErr.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
