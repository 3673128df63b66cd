// Package apiclient is a Go client for the paveradmin HTTP API. It mirrors
// the browser client's session handling: cookies ride along automatically,
// and when the server answers with the shared unauthorized message the
// OnUnauthorized hook fires so callers can send the user back to the login
// screen.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/paverbrasil/paveradmin/internal"
	"github.com/paverbrasil/paveradmin/internal/store"
)

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Unauthorized reports whether the error is the server's session-expired
// signal. Only the exact shared message counts; other 401s (e.g. a failed
// login) do not trip the redirect.
func (e *APIError) Unauthorized() bool {
	return e.Message == internal.UnauthorizedMessage
}

type Client struct {
	baseURL string
	http    *http.Client

	// OnUnauthorized fires once per request whose error message matches the
	// shared unauthorized constant. The error is still returned.
	OnUnauthorized func()
}

func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
	}, nil
}

// do funnels every API call. Non-2xx responses decode the {message} envelope
// into an APIError, and the unauthorized hook fires on the exact match.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := &APIError{StatusCode: res.StatusCode}
		var envelope struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(res.Body).Decode(&envelope); err == nil {
			apiErr.Message = envelope.Message
		}
		if apiErr.Unauthorized() && c.OnUnauthorized != nil {
			c.OnUnauthorized()
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}

type LoginResult struct {
	Success bool `json:"success"`
	User    struct {
		ID       int64   `json:"id"`
		Username *string `json:"username"`
		Name     string  `json:"name"`
		Email    string  `json:"email"`
		Role     string  `json:"role"`
	} `json:"user"`
}

func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	result := new(LoginResult)
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

// Me returns the authenticated user, or nil when the session is anonymous.
func (c *Client) Me(ctx context.Context) (*store.User, error) {
	var user *store.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return user, nil
}
