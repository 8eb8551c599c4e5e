// Package notify talks to the remote notification provider. The provider
// owns platform support detection, permission state and the interactive
// permission prompt; this client is a thin pass-through.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/aidigest/pkg/domain"
)

// Client queries the notification provider over HTTP.
// An empty base URL means the platform has no notification support at all.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a notification provider client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Supported reports whether notifications are available on this platform
func (c *Client) Supported(ctx context.Context) (bool, error) {
	if c.baseURL == "" {
		return false, nil
	}

	var resp struct {
		Supported bool `json:"supported"`
	}
	if err := c.get(ctx, "/v1/support", &resp); err != nil {
		return false, fmt.Errorf("query notification support: %w", err)
	}
	return resp.Supported, nil
}

// Permission returns the current notification permission state
func (c *Client) Permission(ctx context.Context) (domain.PermissionState, error) {
	if c.baseURL == "" {
		return domain.PermissionUnsupported, nil
	}

	var resp struct {
		State string `json:"state"`
	}
	if err := c.get(ctx, "/v1/permission", &resp); err != nil {
		return "", fmt.Errorf("query notification permission: %w", err)
	}

	switch state := domain.PermissionState(resp.State); state {
	case domain.PermissionDefault, domain.PermissionGranted, domain.PermissionDenied, domain.PermissionUnsupported:
		return state, nil
	default:
		return "", fmt.Errorf("unknown permission state %q", resp.State)
	}
}

// RequestPermission asks the provider to prompt the user. The call blocks
// until the prompt resolves or ctx is done, and reports whether permission
// was granted.
func (c *Client) RequestPermission(ctx context.Context) (bool, error) {
	if c.baseURL == "" {
		return false, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/permission/request", http.NoBody)
	if err != nil {
		return false, fmt.Errorf("create permission request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("request notification permission: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("unexpected status code %d from permission request", resp.StatusCode)
	}

	var result struct {
		Granted bool `json:"granted"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("decode permission response: %w", err)
	}

	lgr.Printf("[DEBUG] permission request resolved, granted: %v", result.Granted)
	return result.Granted, nil
}

// get performs a GET against the provider and decodes the JSON response
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
