// Package menuapi talks to the dining backend's HTTP API.
package menuapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goforj/menucache/menu"
)

// API is the backend surface the sync layer depends on. Implemented by
// *Client; menufake provides a test double.
type API interface {
	AllData(ctx context.Context, token string) (Payload, error)
	GeneralData(ctx context.Context) (Payload, error)
	PostPreferences(ctx context.Context, preferences []menu.Item, token string) ([]menu.Item, error)
}

var _ API = (*Client)(nil)

// Payload is the combined-read response shape. The unauthenticated endpoint
// omits the favorites fields.
type Payload struct {
	AllItems           []menu.Item      `json:"allItems"`
	DailyItems         []menu.DailyItem `json:"dailyItems"`
	AvailableFavorites []menu.Item      `json:"availableFavorites"`
	UserPreferences    []menu.Item      `json:"userPreferences"`
}

// Client talks to the backend HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultBaseURL   = "http://localhost:8080"
	defaultUserAgent = "menucache/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given base URL; empty uses the default.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// AllData retrieves the combined dataset. A non-empty token authenticates
// the request so the favorites fields are populated.
func (c *Client) AllData(ctx context.Context, token string) (Payload, error) {
	if c == nil {
		return Payload{}, fmt.Errorf("client is nil")
	}
	var payload Payload
	if err := c.do(ctx, http.MethodGet, "/api/allData", token, nil, &payload); err != nil {
		return Payload{}, err
	}
	return payload, nil
}

// GeneralData retrieves the non-user-exclusive dataset.
func (c *Client) GeneralData(ctx context.Context) (Payload, error) {
	if c == nil {
		return Payload{}, fmt.Errorf("client is nil")
	}
	var payload Payload
	if err := c.do(ctx, http.MethodGet, "/api/generalData", "", nil, &payload); err != nil {
		return Payload{}, err
	}
	return payload, nil
}

// PostPreferences uploads the full preference set and returns the server's
// canonical available-favorites list.
func (c *Client) PostPreferences(ctx context.Context, preferences []menu.Item, token string) ([]menu.Item, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if preferences == nil {
		preferences = []menu.Item{}
	}
	var favorites []menu.Item
	if err := c.do(ctx, http.MethodPost, "/api/userPreferences", token, preferences, &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, body, dest any) error {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("api %s returned status %d", path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
