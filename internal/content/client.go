package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the content service.
type Client struct {
	base string
	hc   *http.Client
}

// NewClient creates a client for baseURL (e.g. "http://localhost:3000").
// A nil hc uses a client with a 10 second timeout.
func NewClient(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{base: strings.TrimRight(baseURL, "/"), hc: hc}
}

// Recipes lists recipes. No recipes is an empty slice, not an error.
func (c *Client) Recipes(ctx context.Context) ([]Card, error) {
	var out []Card
	if err := c.do(ctx, http.MethodGet, "/api/recipes", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Games lists game cards.
func (c *Client) Games(ctx context.Context) ([]Card, error) {
	var out []Card
	if err := c.do(ctx, http.MethodGet, "/api/games", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Hero fetches the landing banner.
func (c *Client) Hero(ctx context.Context) (Hero, error) {
	var out Hero
	err := c.do(ctx, http.MethodGet, "/api/hero", "", nil, &out)
	return out, err
}

// Register creates an account and returns its token.
func (c *Client) Register(ctx context.Context, name, email, password string) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/register", "",
		registerRequest{Name: name, Email: email, Password: password}, &out)
	return out, err
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	var out AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/login", "",
		loginRequest{Email: email, Password: password}, &out)
	return out, err
}

// Me returns the account the token belongs to.
func (c *Client) Me(ctx context.Context, token string) (User, error) {
	var out User
	err := c.do(ctx, http.MethodGet, "/api/me", token, nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("content: cannot encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return fmt.Errorf("content: cannot build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("content: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		//nolint:errcheck // Non-JSON error bodies leave Message empty
		json.NewDecoder(resp.Body).Decode(&eb)
		return &APIError{
			Status:  resp.StatusCode,
			Message: eb.Error,
			Err:     classify(resp.StatusCode, eb.Error),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("content: cannot decode %s: %w", path, err)
	}
	return nil
}
