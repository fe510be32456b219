// Package ifreq provides the legacy address source: a single SIOCGIFADDR query against
// one named interface, for hosts where netlink and interface enumeration come up empty.
package ifreq

import (
	"net"

	"pragyan-remote/internal/port"
)

// Source is an adapter that implements the AddressSource port with an ioctl on one interface.
type Source struct {
	ifaceName string
	query     func(ifaceName string) (net.IP, error)
}

// Ensure Source implements the AddressSource port
var _ port.AddressSource = (*Source)(nil)

// NewSource creates a legacy address source for the named interface (e.g., "wlan0").
func NewSource(ifaceName string) *Source {
	return &Source{
		ifaceName: ifaceName,
		query:     queryInterfaceAddr,
	}
}

// Name identifies the source.
func (s *Source) Name() string {
	return "legacy-ioctl:" + s.ifaceName
}

// Addresses returns the single IPv4 address of the configured interface.
func (s *Source) Addresses() ([]net.IP, error) {
	ip, err := s.query(s.ifaceName)
	if err != nil {
		return nil, err
	}
	if ip == nil || ip.IsUnspecified() {
		return nil, nil
	}
	return []net.IP{ip}, nil
}
