package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/piresc/commutemap/internal/pkg/logger"
)

// DefaultTimeout for HTTP requests
const DefaultTimeout = 30 * time.Second

// Config describes one upstream provider
type Config struct {
	Name       string
	BaseURL    string
	Timeout    time.Duration
	AuthHeader string
	AuthKey    string
}

// StatusError is returned by the JSON helpers for non-2xx responses
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error: %d %s", e.StatusCode, e.Status)
}

// Client is a JSON HTTP client bound to one provider base URL
type Client struct {
	httpClient *nethttp.Client
	baseURL    string
	name       string
	authHeader string
	authKey    string
}

// NewClient creates a new provider client
func NewClient(config Config) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		httpClient: &nethttp.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(config.BaseURL, "/"),
		name:       config.Name,
		authHeader: config.AuthHeader,
		authKey:    config.AuthKey,
	}
}

// HasAuth reports whether the client carries a credential
func (c *Client) HasAuth() bool {
	return c.authKey != ""
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, endpoint string) (*nethttp.Response, error) {
	return c.doRequest(ctx, nethttp.MethodGet, endpoint, nil)
}

// Post performs a POST request with a JSON body
func (c *Client) Post(ctx context.Context, endpoint string, body interface{}) (*nethttp.Response, error) {
	return c.doRequest(ctx, nethttp.MethodPost, endpoint, body)
}

// GetJSON performs a GET request and decodes the JSON response into result
func (c *Client) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	resp, err := c.Get(ctx, endpoint)
	if err != nil {
		return err
	}
	return decode(resp, result)
}

// PostJSON performs a POST request and decodes the JSON response into result
func (c *Client) PostJSON(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	resp, err := c.Post(ctx, endpoint, body)
	if err != nil {
		return err
	}
	return decode(resp, result)
}

func decode(resp *nethttp.Response, result interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, method, endpoint string, body interface{}) (*nethttp.Response, error) {
	url := c.baseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			logger.Error("Failed to marshal request body",
				logger.String("method", method),
				logger.String("url", url),
				logger.Err(err))
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		logger.Error("Failed to create HTTP request",
			logger.String("method", method),
			logger.String("url", url),
			logger.Err(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.authKey != "" && c.authHeader != "" {
		req.Header.Set(c.authHeader, c.authKey)
	}

	logger.Debug("Making HTTP request",
		logger.String("method", method),
		logger.String("url", url),
		logger.String("provider", c.name))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("HTTP request failed",
			logger.String("method", method),
			logger.String("url", url),
			logger.String("provider", c.name),
			logger.Err(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}

	logger.Debug("HTTP request completed",
		logger.String("method", method),
		logger.String("url", url),
		logger.String("provider", c.name),
		logger.Int("status_code", resp.StatusCode))

	return resp, nil
}
