package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"upcoming-elections/internal/models"
)

const (
	upcomingPath   = "/elections/upcoming"
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 512
)

// StatusError is returned when the elections API answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("client: elections api returned status %d: %s", e.StatusCode, e.Body)
}

// Client queries the upcoming elections endpoint
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the timeout for each request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// New creates a new elections API client
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Upcoming fetches the elections for a comma-joined set of OCD division IDs.
func (c *Client) Upcoming(ctx context.Context, divisionIDs string) ([]models.Election, error) {
	params := url.Values{}
	params.Set("district-divisions", divisionIDs)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+upcomingPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("client: failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var elections []models.Election
	if err := json.NewDecoder(resp.Body).Decode(&elections); err != nil {
		return nil, fmt.Errorf("client: failed to decode response: %w", err)
	}

	return elections, nil
}
