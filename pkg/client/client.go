// Package client is a thin API client for the sports-admin service. It
// reproduces the gateway error contract the admin panel relies on: any
// response with status >= 400 surfaces as a normalized list of message
// errors, and transport failures collapse to a single generic message.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const genericErrorMessage = "something went wrong"

// APIError is one normalized error entry from the service.
type APIError struct {
	Message string `json:"message"`
}

// APIErrors is the error list surfaced for any failed request.
type APIErrors []APIError

func (e APIErrors) Error() string {
	messages := make([]string, len(e))
	for i, err := range e {
		messages[i] = err.Message
	}
	return strings.Join(messages, "; ")
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// SetToken attaches a session token to subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Get fetches path and decodes the JSON response into target.
func (c *Client) Get(ctx context.Context, path string, target any) error {
	return c.do(ctx, http.MethodGet, path, nil, target)
}

// Post sends body as JSON to path and decodes the response into target.
func (c *Client) Post(ctx context.Context, path string, body, target any) error {
	return c.do(ctx, http.MethodPost, path, body, target)
}

func (c *Client) do(ctx context.Context, method, path string, body, target any) error {
	reqBody := &bytes.Buffer{}
	if body != nil {
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return APIErrors{{Message: genericErrorMessage}}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return APIErrors{{Message: genericErrorMessage}}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeErrors(resp)
	}

	if target == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return APIErrors{{Message: genericErrorMessage}}
	}
	return nil
}

func decodeErrors(resp *http.Response) APIErrors {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Message == "" {
		return APIErrors{{Message: genericErrorMessage}}
	}
	return APIErrors{{Message: envelope.Message}}
}
