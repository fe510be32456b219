//go:build !linux

package ifreq

import (
	"fmt"
	"net"
)

func queryInterfaceAddr(ifaceName string) (net.IP, error) {
	return nil, fmt.Errorf("legacy address query of %s is only supported on linux", ifaceName)
}
