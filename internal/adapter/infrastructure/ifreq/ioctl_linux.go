//go:build linux

package ifreq

import (
	"fmt"
	"net"

	"golang.org/x/sys/unix"
)

func queryInterfaceAddr(ifaceName string) (net.IP, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open query socket: %w", err)
	}
	defer unix.Close(fd)

	ifr, err := unix.NewIfreq(ifaceName)
	if err != nil {
		return nil, fmt.Errorf("invalid interface name %q: %w", ifaceName, err)
	}

	if err := unix.IoctlIfreq(fd, unix.SIOCGIFADDR, ifr); err != nil {
		return nil, fmt.Errorf("failed to query address of %s: %w", ifaceName, err)
	}

	raw, err := ifr.Inet4Addr()
	if err != nil {
		return nil, fmt.Errorf("failed to decode address of %s: %w", ifaceName, err)
	}
	return net.IPv4(raw[0], raw[1], raw[2], raw[3]), nil
}
