// Package types defines common types used across the application.
package types

import (
	"fmt"
	"net"
	"net/netip"
	"strings"
)

// NetworkAddress is a dotted-quad IPv4 address.
type NetworkAddress [4]byte

// ParseNetworkAddress parses a dotted-quad IPv4 address (e.g., "192.168.1.42").
func ParseNetworkAddress(s string) (NetworkAddress, error) {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return NetworkAddress{}, fmt.Errorf("invalid IPv4 address %q: %w", s, err)
	}
	if !addr.Is4() {
		return NetworkAddress{}, fmt.Errorf("invalid IPv4 address %q: not a dotted-quad address", s)
	}
	return NetworkAddress(addr.As4()), nil
}

// NetworkAddressFromIP converts a net.IP into a NetworkAddress.
// The second return value is false if ip has no IPv4 form.
func NetworkAddressFromIP(ip net.IP) (NetworkAddress, bool) {
	v4 := ip.To4()
	if v4 == nil {
		return NetworkAddress{}, false
	}
	return NetworkAddress{v4[0], v4[1], v4[2], v4[3]}, true
}

// WithLastOctet returns a copy of the address with its last octet replaced.
func (a NetworkAddress) WithLastOctet(octet uint8) NetworkAddress {
	a[3] = octet
	return a
}

// IsLoopback reports whether the address is in 127.0.0.0/8.
func (a NetworkAddress) IsLoopback() bool {
	return a[0] == 127
}

// IsZero reports whether the address is 0.0.0.0.
func (a NetworkAddress) IsZero() bool {
	return a == NetworkAddress{}
}

func (a NetworkAddress) String() string {
	return netip.AddrFrom4(a).String()
}

// MarshalText implements encoding.TextMarshaler.
func (a NetworkAddress) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *NetworkAddress) UnmarshalText(text []byte) error {
	parsed, err := ParseNetworkAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
