// Package endpoint provides the endpoint resolver adapter: it locates the robot's
// control endpoint from the host's own address or a manual override.
package endpoint

import (
	"context"
	"net"
	"strings"
	"sync"

	"pragyan-remote/internal/pkg/broadcast"
	"pragyan-remote/internal/pkg/logging"
	"pragyan-remote/internal/port"
	"pragyan-remote/internal/types"
)

// Resolver implements the EndpointResolver port.
// Auto mode asks each address source in order and keeps the first non-loopback IPv4
// address, swapping its last octet for the configured one. If every source comes up
// empty the configured default address is used instead.
type Resolver struct {
	mu sync.Mutex
	// publishMu orders resolve-then-publish sequences so the stream never goes backwards
	publishMu sync.Mutex
	config    types.EndpointConfig
	sources   []port.AddressSource
	subject   *broadcast.Subject[types.ResolvedEndpoint]
}

// Ensure Resolver implements the EndpointResolver port
var _ port.EndpointResolver = (*Resolver)(nil)

// NewResolver creates a resolver with the given initial configuration and address sources.
// The initial endpoint is computed immediately and becomes the replayed value.
func NewResolver(config types.EndpointConfig, sources ...port.AddressSource) *Resolver {
	r := &Resolver{
		config:  config,
		sources: sources,
	}
	r.subject = broadcast.NewSubject(r.ResolveCurrent())
	return r
}

// ResolveCurrent computes the endpoint from the current mode and live network state.
func (r *Resolver) ResolveCurrent() types.ResolvedEndpoint {
	r.mu.Lock()
	config := r.config
	r.mu.Unlock()

	if config.Mode == types.ModeManual && config.ManualAddress != "" {
		return types.NewResolvedEndpoint(config.ManualAddress, config.Port)
	}
	return types.NewResolvedEndpoint(r.autoAddress(config).String(), config.Port)
}

// SetMode switches between manual and automatic resolution. An empty address leaves the
// stored manual address untouched. The recomputed endpoint is always published, even
// when it equals the previous one.
func (r *Resolver) SetMode(useManual bool, address string) {
	address = strings.TrimSpace(address)

	r.publishMu.Lock()
	defer r.publishMu.Unlock()

	r.mu.Lock()
	if useManual {
		r.config.Mode = types.ModeManual
		if address != "" {
			r.config.ManualAddress = address
		}
	} else {
		r.config.Mode = types.ModeAuto
	}
	mode := r.config.Mode
	r.mu.Unlock()

	resolved := r.ResolveCurrent()
	logging.WithComponentAndEndpoint("resolver", resolved.BaseURL).
		WithField("mode", mode.String()).
		Info("Endpoint mode changed")
	r.subject.Publish(resolved)
}

// Mode returns whether manual mode is enabled and the stored manual address.
func (r *Resolver) Mode() (bool, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.config.Mode == types.ModeManual, r.config.ManualAddress
}

// Subscribe returns a replay-latest stream of endpoints, closed when ctx ends.
func (r *Resolver) Subscribe(ctx context.Context) <-chan types.ResolvedEndpoint {
	return r.subject.Subscribe(ctx)
}

// Sources returns the configured address sources in query order.
func (r *Resolver) Sources() []port.AddressSource {
	return r.sources
}

// autoAddress derives the robot's address from the host's own address.
func (r *Resolver) autoAddress(config types.EndpointConfig) types.NetworkAddress {
	logger := logging.WithComponent("resolver")

	for _, source := range r.sources {
		ips, err := source.Addresses()
		if err != nil {
			logger.WithError(err).WithField("source", source.Name()).Debug("Address source failed")
		}
		if host, ok := FirstUsableIPv4(ips); ok {
			return host.WithLastOctet(config.FixedLastOctet)
		}
	}

	logger.WithField("default", config.DefaultAddress.String()).
		Debug("No host address found, using default address")
	return config.DefaultAddress
}

// FirstUsableIPv4 returns the first non-loopback, non-unspecified IPv4 address.
func FirstUsableIPv4(ips []net.IP) (types.NetworkAddress, bool) {
	for _, ip := range ips {
		if ip == nil || ip.IsLoopback() || ip.IsUnspecified() {
			continue
		}
		if addr, ok := types.NetworkAddressFromIP(ip); ok {
			return addr, true
		}
	}
	return types.NetworkAddress{}, false
}
