//go:build unit

package types

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseNetworkAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetworkAddress
		wantErr bool
	}{
		{name: "Valid", input: "192.168.1.42", want: NetworkAddress{192, 168, 1, 42}},
		{name: "Whitespace", input: " 10.0.0.5 ", want: NetworkAddress{10, 0, 0, 5}},
		{name: "IPv6", input: "fe80::1", wantErr: true},
		{name: "IPv4MappedIPv6", input: "::ffff:192.168.1.1", wantErr: true},
		{name: "Malformed", input: "192.168.1", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
		{name: "Hostname", input: "robot.local", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNetworkAddress(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNetworkAddressFromIP(t *testing.T) {
	addr, ok := NetworkAddressFromIP(net.ParseIP("192.168.1.42"))
	assert.True(t, ok)
	assert.Equal(t, NetworkAddress{192, 168, 1, 42}, addr)

	_, ok = NetworkAddressFromIP(net.ParseIP("fe80::1"))
	assert.False(t, ok)

	_, ok = NetworkAddressFromIP(nil)
	assert.False(t, ok)
}

func TestNetworkAddressWithLastOctet(t *testing.T) {
	addr := NetworkAddress{192, 168, 1, 42}

	assert.Equal(t, "192.168.1.236", addr.WithLastOctet(236).String())
	assert.Equal(t, "192.168.1.42", addr.String(), "original must be unchanged")

	// The result is always a well-formed dotted quad
	for _, octet := range []uint8{0, 1, 236, 255} {
		_, err := ParseNetworkAddress(addr.WithLastOctet(octet).String())
		assert.NoError(t, err)
	}
}

func TestNetworkAddressPredicates(t *testing.T) {
	assert.True(t, NetworkAddress{127, 0, 0, 1}.IsLoopback())
	assert.True(t, NetworkAddress{127, 1, 2, 3}.IsLoopback())
	assert.False(t, NetworkAddress{192, 168, 1, 1}.IsLoopback())

	assert.True(t, NetworkAddress{}.IsZero())
	assert.False(t, NetworkAddress{10, 0, 0, 1}.IsZero())
}

func TestNetworkAddressYAML(t *testing.T) {
	var holder struct {
		Address NetworkAddress `yaml:"address"`
	}

	require.NoError(t, yaml.Unmarshal([]byte("address: 192.168.151.236\n"), &holder))
	assert.Equal(t, NetworkAddress{192, 168, 151, 236}, holder.Address)

	assert.Error(t, yaml.Unmarshal([]byte("address: not-an-ip\n"), &holder))

	out, err := yaml.Marshal(holder)
	require.NoError(t, err)
	assert.Equal(t, "address: 192.168.151.236\n", string(out))
}
