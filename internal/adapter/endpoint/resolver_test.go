//go:build unit

package endpoint

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"pragyan-remote/internal/mock"
	"pragyan-remote/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() types.EndpointConfig {
	return types.EndpointConfig{
		Mode:           types.ModeAuto,
		FixedLastOctet: 236,
		Port:           5001,
		DefaultAddress: types.NetworkAddress{192, 168, 151, 236},
	}
}

func staticSource(ctrl *gomock.Controller, name string, ips []net.IP, err error) *mock.MockAddressSource {
	source := mock.NewMockAddressSource(ctrl)
	source.EXPECT().Name().Return(name).AnyTimes()
	source.EXPECT().Addresses().Return(ips, err).AnyTimes()
	return source
}

func ips(addrs ...string) []net.IP {
	out := make([]net.IP, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, net.ParseIP(a))
	}
	return out
}

func next(t *testing.T, ch <-chan types.ResolvedEndpoint) types.ResolvedEndpoint {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "subscription closed")
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for endpoint")
	}
	return types.ResolvedEndpoint{}
}

func assertNoValue(t *testing.T, ch <-chan types.ResolvedEndpoint) {
	t.Helper()
	select {
	case v := <-ch:
		t.Fatalf("unexpected endpoint published: %s", v)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestResolver_AutoMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("ReplacesLastOctet", func(t *testing.T) {
		source := staticSource(ctrl, "active-network", ips("192.168.1.42"), nil)
		resolver := NewResolver(testConfig(), source)
		assert.Equal(t, "http://192.168.1.236:5001/", resolver.ResolveCurrent().BaseURL)
	})

	t.Run("AnyHostAddress", func(t *testing.T) {
		for _, host := range []string{"10.0.0.1", "172.16.5.254", "192.168.0.0", "1.2.3.4"} {
			addr, err := types.ParseNetworkAddress(host)
			require.NoError(t, err)
			for _, octet := range []uint8{0, 1, 236, 255} {
				config := testConfig()
				config.FixedLastOctet = octet
				resolver := NewResolver(config, staticSource(ctrl, "src", ips(host), nil))

				want := fmt.Sprintf("http://%d.%d.%d.%d:5001/", addr[0], addr[1], addr[2], octet)
				assert.Equal(t, want, resolver.ResolveCurrent().BaseURL)
			}
		}
	})

	t.Run("SkipsLoopbackAndIPv6", func(t *testing.T) {
		source := staticSource(ctrl, "all-interfaces", ips("127.0.0.1", "fe80::1", "::1", "10.1.2.3"), nil)
		resolver := NewResolver(testConfig(), source)
		assert.Equal(t, "http://10.1.2.236:5001/", resolver.ResolveCurrent().BaseURL)
	})

	t.Run("FallsThroughSourcesInOrder", func(t *testing.T) {
		active := staticSource(ctrl, "active-network", nil, errors.New("no default route"))
		all := staticSource(ctrl, "all-interfaces", ips("127.0.0.1"), nil)
		legacy := staticSource(ctrl, "legacy-ioctl:wlan0", ips("192.168.7.9"), nil)

		resolver := NewResolver(testConfig(), active, all, legacy)
		assert.Equal(t, "http://192.168.7.236:5001/", resolver.ResolveCurrent().BaseURL)
	})

	t.Run("FirstSourceWins", func(t *testing.T) {
		active := staticSource(ctrl, "active-network", ips("192.168.1.42"), nil)
		all := mock.NewMockAddressSource(ctrl)
		// Not expected to be queried

		resolver := NewResolver(testConfig(), active, all)
		assert.Equal(t, "http://192.168.1.236:5001/", resolver.ResolveCurrent().BaseURL)
	})

	t.Run("DefaultWhenNothingFound", func(t *testing.T) {
		active := staticSource(ctrl, "active-network", nil, errors.New("no default route"))
		all := staticSource(ctrl, "all-interfaces", nil, nil)
		legacy := staticSource(ctrl, "legacy-ioctl:wlan0", nil, errors.New("no such device"))

		resolver := NewResolver(testConfig(), active, all, legacy)
		assert.Equal(t, "http://192.168.151.236:5001/", resolver.ResolveCurrent().BaseURL)
	})

	t.Run("DefaultWithoutSources", func(t *testing.T) {
		resolver := NewResolver(testConfig())
		assert.Equal(t, "http://192.168.151.236:5001/", resolver.ResolveCurrent().BaseURL)
	})
}

func TestResolver_SetMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("ManualIgnoresHostAddress", func(t *testing.T) {
		resolver := NewResolver(testConfig(), staticSource(ctrl, "src", ips("192.168.1.42"), nil))
		resolver.SetMode(true, "10.0.0.5")

		assert.Equal(t, "http://10.0.0.5:5001/", resolver.ResolveCurrent().BaseURL)
		manual, address := resolver.Mode()
		assert.True(t, manual)
		assert.Equal(t, "10.0.0.5", address)
	})

	t.Run("ManualWithEmptyAddressIsAuto", func(t *testing.T) {
		resolver := NewResolver(testConfig(), staticSource(ctrl, "src", ips("192.168.1.42"), nil))
		resolver.SetMode(true, "")

		assert.Equal(t, "http://192.168.1.236:5001/", resolver.ResolveCurrent().BaseURL)
		manual, address := resolver.Mode()
		assert.True(t, manual)
		assert.Empty(t, address)
	})

	t.Run("EmptyAddressKeepsPreviousManual", func(t *testing.T) {
		resolver := NewResolver(testConfig(), staticSource(ctrl, "src", ips("192.168.1.42"), nil))
		resolver.SetMode(true, "10.5.5.5")
		resolver.SetMode(false, "")
		resolver.SetMode(true, "  ")

		assert.Equal(t, "http://10.5.5.5:5001/", resolver.ResolveCurrent().BaseURL)
	})

	t.Run("DisableManualRevertsToAuto", func(t *testing.T) {
		resolver := NewResolver(testConfig(), staticSource(ctrl, "src", ips("192.168.1.42"), nil))
		resolver.SetMode(true, "10.5.5.5")
		resolver.SetMode(false, "10.9.9.9")

		assert.Equal(t, "http://192.168.1.236:5001/", resolver.ResolveCurrent().BaseURL)
		_, address := resolver.Mode()
		assert.Equal(t, "10.5.5.5", address)
	})
}

func TestResolver_Subscribe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resolver := NewResolver(testConfig(), staticSource(ctrl, "src", ips("192.168.1.42"), nil))
	updates := resolver.Subscribe(ctx)

	t.Run("ReplaysCurrentValue", func(t *testing.T) {
		assert.Equal(t, "http://192.168.1.236:5001/", next(t, updates).BaseURL)
		assertNoValue(t, updates)
	})

	t.Run("ManualThenAuto", func(t *testing.T) {
		resolver.SetMode(true, "10.5.5.5")
		assert.Equal(t, "http://10.5.5.5:5001/", next(t, updates).BaseURL)

		resolver.SetMode(false, "")
		assert.Equal(t, "http://192.168.1.236:5001/", next(t, updates).BaseURL)
	})

	t.Run("EveryCallPublishesOnce", func(t *testing.T) {
		resolver.SetMode(false, "")
		resolver.SetMode(false, "")
		resolver.SetMode(false, "10.1.1.1")

		for i := 0; i < 3; i++ {
			assert.Equal(t, "http://192.168.1.236:5001/", next(t, updates).BaseURL)
		}
		assertNoValue(t, updates)
	})

	t.Run("LateSubscriberGetsLatest", func(t *testing.T) {
		resolver.SetMode(true, "10.0.0.5")
		assert.Equal(t, "http://10.0.0.5:5001/", next(t, updates).BaseURL)

		late := resolver.Subscribe(ctx)
		assert.Equal(t, "http://10.0.0.5:5001/", next(t, late).BaseURL)
		assertNoValue(t, late)
	})
}

func TestFirstUsableIPv4(t *testing.T) {
	_, ok := FirstUsableIPv4(nil)
	assert.False(t, ok)

	_, ok = FirstUsableIPv4(ips("127.0.0.1", "0.0.0.0", "::1"))
	assert.False(t, ok)

	addr, ok := FirstUsableIPv4(append([]net.IP{nil}, ips("::ffff:192.168.3.4")...))
	assert.True(t, ok)
	assert.Equal(t, "192.168.3.4", addr.String())
}
