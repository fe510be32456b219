// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"

	"pragyan-remote/internal/types"
)

// EndpointResolver is the primary port for control-endpoint resolution.
// It computes the robot's base URL and publishes every explicit change to subscribers.
type EndpointResolver interface {
	// ResolveCurrent computes the endpoint now. It never fails; it falls back instead.
	ResolveCurrent() types.ResolvedEndpoint

	// SetMode switches between auto and manual mode and publishes the result.
	SetMode(useManual bool, address string)

	// Mode returns whether manual mode is enabled and the stored manual address.
	Mode() (manual bool, address string)

	// Subscribe returns a replay-latest stream of endpoints, closed when ctx ends.
	Subscribe(ctx context.Context) <-chan types.ResolvedEndpoint
}

// CommandSender is the primary port for fire-and-forget command delivery.
type CommandSender interface {
	// Send dispatches the command asynchronously and never reports failure to the caller.
	Send(cmd types.Command)
}
