//go:build unit

package ifreq

import (
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_Name(t *testing.T) {
	assert.Equal(t, "legacy-ioctl:wlan0", NewSource("wlan0").Name())
}

func TestSource_Addresses(t *testing.T) {
	t.Run("Assigned", func(t *testing.T) {
		source := &Source{ifaceName: "wlan0", query: func(string) (net.IP, error) {
			return net.IPv4(192, 168, 1, 42), nil
		}}
		ips, err := source.Addresses()
		require.NoError(t, err)
		require.Len(t, ips, 1)
		assert.Equal(t, "192.168.1.42", ips[0].String())
	})

	t.Run("Unassigned", func(t *testing.T) {
		source := &Source{ifaceName: "wlan0", query: func(string) (net.IP, error) {
			return net.IPv4zero, nil
		}}
		ips, err := source.Addresses()
		require.NoError(t, err)
		assert.Empty(t, ips)
	})

	t.Run("QueryFails", func(t *testing.T) {
		source := &Source{ifaceName: "wlan0", query: func(string) (net.IP, error) {
			return nil, errors.New("no such device")
		}}
		_, err := source.Addresses()
		assert.Error(t, err)
	})
}

func TestSource_MissingInterface(t *testing.T) {
	// Real ioctl against an interface name that cannot exist
	_, err := NewSource("nonexistent0").Addresses()
	assert.Error(t, err)
}
