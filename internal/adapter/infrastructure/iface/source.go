// Package iface provides an address source that enumerates every network interface.
package iface

import (
	"fmt"
	"net"

	"pragyan-remote/internal/port"

	"github.com/insomniacslk/dhcp/interfaces"
)

// Source is an adapter that implements the AddressSource port by walking all
// non-loopback interfaces reported by insomniacslk/dhcp.
type Source struct {
	listInterfaces func() ([]net.Interface, error)
	interfaceAddrs func(iface net.Interface) ([]net.Addr, error)
}

// Ensure Source implements the AddressSource port
var _ port.AddressSource = (*Source)(nil)

// NewSource creates an all-interfaces address source.
func NewSource() *Source {
	return &Source{
		listInterfaces: interfaces.GetNonLoopbackInterfaces,
		interfaceAddrs: func(iface net.Interface) ([]net.Addr, error) {
			return iface.Addrs()
		},
	}
}

// Name identifies the source.
func (s *Source) Name() string {
	return "all-interfaces"
}

// Addresses returns the addresses of every interface that is up, in kernel order.
// An interface whose addresses cannot be read is skipped.
func (s *Source) Addresses() ([]net.IP, error) {
	ifaces, err := s.listInterfaces()
	if err != nil {
		return nil, fmt.Errorf("failed to list interfaces: %w", err)
	}

	var ips []net.IP
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		addrs, err := s.interfaceAddrs(iface)
		if err != nil {
			continue
		}
		for _, a := range addrs {
			if ip := ipOf(a); ip != nil {
				ips = append(ips, ip)
			}
		}
	}
	return ips, nil
}

func ipOf(a net.Addr) net.IP {
	switch v := a.(type) {
	case *net.IPNet:
		return v.IP
	case *net.IPAddr:
		return v.IP
	default:
		return nil
	}
}
