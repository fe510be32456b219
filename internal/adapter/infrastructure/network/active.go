package network

import (
	"fmt"
	"net"
	"sort"

	"pragyan-remote/internal/port"

	"github.com/vishvananda/netlink"
)

// ActiveSource reports the addresses assigned to the link carrying the default IPv4 route.
// When several default routes exist, the one with the lowest metric is tried first.
type ActiveSource struct {
	networkMgr port.NetworkManager
}

// Ensure ActiveSource implements the AddressSource port
var _ port.AddressSource = (*ActiveSource)(nil)

// NewActiveSource creates an address source for the active network.
func NewActiveSource(networkMgr port.NetworkManager) *ActiveSource {
	return &ActiveSource{networkMgr: networkMgr}
}

// Name identifies the source.
func (s *ActiveSource) Name() string {
	return "active-network"
}

// Addresses returns the addresses of the default-route link(s).
func (s *ActiveSource) Addresses() ([]net.IP, error) {
	routes, err := s.networkMgr.ListRoutes()
	if err != nil {
		return nil, fmt.Errorf("failed to list routes: %w", err)
	}

	defaults := defaultRoutes(routes)
	if len(defaults) == 0 {
		return nil, fmt.Errorf("no default route")
	}

	var ips []net.IP
	seen := make(map[int]bool)
	for _, route := range defaults {
		if seen[route.LinkIndex] {
			continue
		}
		seen[route.LinkIndex] = true

		link, err := s.networkMgr.GetLinkByIndex(route.LinkIndex)
		if err != nil {
			return ips, fmt.Errorf("failed to get default route link: %w", err)
		}

		addrs, err := s.networkMgr.ListAddresses(link)
		if err != nil {
			return ips, fmt.Errorf("failed to list addresses on %s: %w", link.Attrs().Name, err)
		}
		for _, addr := range addrs {
			if addr.IPNet != nil {
				ips = append(ips, addr.IPNet.IP)
			}
		}
	}

	return ips, nil
}

// defaultRoutes returns the 0.0.0.0/0 routes ordered by metric.
func defaultRoutes(routes []netlink.Route) []netlink.Route {
	var defaults []netlink.Route
	for _, route := range routes {
		if route.LinkIndex <= 0 {
			continue
		}
		if route.Dst == nil {
			defaults = append(defaults, route)
			continue
		}
		// Newer netlink versions report the default route as 0.0.0.0/0
		if ones, _ := route.Dst.Mask.Size(); ones == 0 && route.Dst.IP.IsUnspecified() {
			defaults = append(defaults, route)
		}
	}

	sort.SliceStable(defaults, func(i, j int) bool {
		return defaults[i].Priority < defaults[j].Priority
	})
	return defaults
}
