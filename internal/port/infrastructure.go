// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"
	"net"

	"pragyan-remote/internal/types"

	"github.com/vishvananda/netlink"
)

// NetworkManager is a port for read-only network interface queries.
// This interface abstracts the netlink operations used to find the active network.
type NetworkManager interface {
	// GetLinkByIndex returns a network link by interface index
	GetLinkByIndex(index int) (netlink.Link, error)

	// ListAddresses returns all addresses configured on the link
	ListAddresses(link netlink.Link) ([]netlink.Addr, error)

	// ListRoutes returns IPv4 routes
	ListRoutes() ([]netlink.Route, error)
}

// AddressSource is a port for one way of asking the host for its own addresses.
// Implementations may return IPv4 and IPv6 addresses; callers do the filtering.
type AddressSource interface {
	// Name identifies the source in logs and probe output
	Name() string

	// Addresses returns zero or more addresses assigned to the host
	Addresses() ([]net.IP, error)
}

// RobotClient is a port for a transient client bound to a single endpoint.
type RobotClient interface {
	// SendCommand posts the command and reports only success or failure
	SendCommand(ctx context.Context, cmd types.Command) error
}

// ClientFactory builds a RobotClient for the endpoint resolved at call time.
type ClientFactory func(endpoint types.ResolvedEndpoint) RobotClient
