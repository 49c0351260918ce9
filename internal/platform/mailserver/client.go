// Package mailserver provides a minimal client for the mail platform's
// management API.
//
// The client covers only what tenant provisioning needs: authenticated
// JSON requests against the /api prefix, with principal creation as the
// single typed convenience. Non-2xx responses and transport failures are
// both surfaced as *APIError so callers can decide per step whether a
// failure is fatal.
package mailserver

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	apiPrefix      = "/api"
	defaultTimeout = 30 * time.Second
)

// Client is a management API client authenticated as the super-admin.
type Client struct {
	baseURL    string
	authHeader string
	httpClient *http.Client
}

// APIError describes a management API call that did not return a 2xx
// response. StatusCode is 0 when the request never completed (transport
// failure). Body carries the verbatim response body or transport error.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("API request failed: %s", e.Body)
	}
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Body)
}

// AlreadyExists reports whether the error is the duplicate-create class:
// an HTTP 409, or a response body that names an existing record. These are
// expected on re-runs against a partially provisioned tenant.
func (e *APIError) AlreadyExists() bool {
	return e.StatusCode == http.StatusConflict ||
		strings.Contains(strings.ToLower(e.Body), "already exists")
}

// NewClient creates a management API client for the given base URL,
// authenticating every request with HTTP Basic auth.
func NewClient(serverURL, username, secret string) *Client {
	cred := base64.StdEncoding.EncodeToString([]byte(username + ":" + secret))
	return &Client{
		baseURL:    strings.TrimRight(serverURL, "/"),
		authHeader: "Basic " + cred,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// CreatePrincipal creates a principal (tenant, domain, or individual) via
// POST /principal. The payload is serialized as JSON.
func (c *Client) CreatePrincipal(ctx context.Context, payload any) ([]byte, error) {
	return c.Do(ctx, http.MethodPost, "/principal", payload)
}

// Do performs one request against {baseURL}/api{endpoint}. A non-nil
// payload is JSON-encoded and sent with Content-Type: application/json.
// On a 2xx response the body is returned; any other outcome is an
// *APIError.
func (c *Client) Do(ctx context.Context, method, endpoint string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+endpoint, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Body: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return respBody, nil
}
