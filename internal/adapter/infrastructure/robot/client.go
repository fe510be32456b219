// Package robot provides the HTTP client adapter for the robot's command API.
package robot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"pragyan-remote/internal/port"
	"pragyan-remote/internal/types"

	"github.com/google/uuid"
)

// RequestIDHeader carries a per-request identifier for correlating robot-side logs.
const RequestIDHeader = "X-Request-ID"

// ClientAdapter is an adapter that implements the RobotClient port for a single endpoint.
// It is cheap to build and meant to be discarded after one call.
type ClientAdapter struct {
	httpClient *http.Client
	url        string
}

// Ensure ClientAdapter implements the RobotClient port
var _ port.RobotClient = (*ClientAdapter)(nil)

// NewClientAdapter creates a client that posts commands to endpoint's command path.
func NewClientAdapter(httpClient *http.Client, endpoint types.ResolvedEndpoint, commandPath string) *ClientAdapter {
	return &ClientAdapter{
		httpClient: httpClient,
		url:        endpoint.CommandURL(commandPath),
	}
}

// NewClientFactory returns a ClientFactory sharing one http.Client (and its connection pool)
// across the transient clients it builds.
func NewClientFactory(httpClient *http.Client, commandPath string) port.ClientFactory {
	return func(endpoint types.ResolvedEndpoint) port.RobotClient {
		return NewClientAdapter(httpClient, endpoint, commandPath)
	}
}

// URL returns the command URL this client posts to.
func (c *ClientAdapter) URL() string {
	return c.url
}

// SendCommand posts cmd as JSON. Any non-2xx status is reported as an error.
func (c *ClientAdapter) SendCommand(ctx context.Context, cmd types.Command) error {
	body, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("failed to encode command: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send command to %s: %w", c.url, err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("robot rejected command: %s", resp.Status)
	}
	return nil
}
