//go:build unit

package robot

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pragyan-remote/internal/types"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	method      string
	path        string
	contentType string
	requestID   string
	body        map[string]any
}

func newRobotServer(t *testing.T, status int) (*httptest.Server, chan capturedRequest) {
	t.Helper()
	requests := make(chan capturedRequest, 8)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		var body map[string]any
		assert.NoError(t, json.Unmarshal(data, &body))

		requests <- capturedRequest{
			method:      r.Method,
			path:        r.URL.Path,
			contentType: r.Header.Get("Content-Type"),
			requestID:   r.Header.Get(RequestIDHeader),
			body:        body,
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	t.Cleanup(server.Close)
	return server, requests
}

func endpointFor(server *httptest.Server) types.ResolvedEndpoint {
	return types.ResolvedEndpoint{BaseURL: server.URL + "/"}
}

func TestClientAdapter_SendCommand(t *testing.T) {
	server, requests := newRobotServer(t, http.StatusOK)
	client := NewClientAdapter(server.Client(), endpointFor(server), "command")
	assert.Equal(t, server.URL+"/command", client.URL())

	t.Run("Instant", func(t *testing.T) {
		require.NoError(t, client.SendCommand(context.Background(), types.MovementCommand(types.DirectionForward)))

		req := <-requests
		assert.Equal(t, http.MethodPost, req.method)
		assert.Equal(t, "/command", req.path)
		assert.Equal(t, "application/json", req.contentType)
		assert.Equal(t, map[string]any{"type": "instant", "command": "F"}, req.body)

		_, err := uuid.Parse(req.requestID)
		assert.NoError(t, err)
	})

	t.Run("Feature", func(t *testing.T) {
		require.NoError(t, client.SendCommand(context.Background(), types.FeatureCommand(types.FeatureLineFollowing)))

		req := <-requests
		assert.Equal(t, map[string]any{"type": "feature", "feature": "line_following"}, req.body)
	})

	t.Run("Control", func(t *testing.T) {
		require.NoError(t, client.SendCommand(context.Background(), types.ControlCommand(types.DirectionStop)))

		req := <-requests
		assert.Equal(t, map[string]any{"type": "feature", "command": "S"}, req.body)
	})
}

func TestClientAdapter_Failures(t *testing.T) {
	t.Run("RejectedStatus", func(t *testing.T) {
		server, _ := newRobotServer(t, http.StatusInternalServerError)
		client := NewClientAdapter(server.Client(), endpointFor(server), "command")

		err := client.SendCommand(context.Background(), types.MovementCommand(types.DirectionLeft))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "robot rejected command")
	})

	t.Run("ConnectionRefused", func(t *testing.T) {
		server, _ := newRobotServer(t, http.StatusOK)
		endpoint := endpointFor(server)
		server.Close()

		client := NewClientAdapter(http.DefaultClient, endpoint, "command")
		err := client.SendCommand(context.Background(), types.MovementCommand(types.DirectionRight))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to send command")
	})

	t.Run("Timeout", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		client := NewClientAdapter(server.Client(), endpointFor(server), "command")
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := client.SendCommand(ctx, types.MovementCommand(types.DirectionBackward))
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestNewClientFactory(t *testing.T) {
	factory := NewClientFactory(http.DefaultClient, "/command")

	first := factory(types.ResolvedEndpoint{BaseURL: "http://192.168.1.236:5001/"})
	second := factory(types.ResolvedEndpoint{BaseURL: "http://10.5.5.5:5001/"})

	assert.Equal(t, "http://192.168.1.236:5001/command", first.(*ClientAdapter).URL())
	assert.Equal(t, "http://10.5.5.5:5001/command", second.(*ClientAdapter).URL())
}
