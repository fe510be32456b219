package types

import (
	"fmt"
	"net/url"
	"strings"
)

// Mode selects how the control endpoint is determined.
type Mode int

const (
	// ModeAuto derives the endpoint from the host's own IPv4 address.
	ModeAuto Mode = iota
	// ModeManual uses a user-supplied address override.
	ModeManual
)

func (m Mode) String() string {
	switch m {
	case ModeManual:
		return "manual"
	default:
		return "auto"
	}
}

// EndpointConfig holds the state used to compute the control endpoint.
// ManualAddress is only honoured while Mode is ModeManual and it is non-empty.
type EndpointConfig struct {
	Mode           Mode
	ManualAddress  string
	FixedLastOctet uint8
	Port           uint16
	DefaultAddress NetworkAddress
}

// ResolvedEndpoint is a ready-to-use connection target such as "http://192.168.1.236:5001/".
type ResolvedEndpoint struct {
	BaseURL string
}

// NewResolvedEndpoint builds the endpoint for host and port.
func NewResolvedEndpoint(host string, port uint16) ResolvedEndpoint {
	return ResolvedEndpoint{BaseURL: fmt.Sprintf("http://%s:%d/", host, port)}
}

// Host returns the address portion of the base URL without scheme or port.
func (e ResolvedEndpoint) Host() string {
	u, err := url.Parse(e.BaseURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// CommandURL joins path onto the base URL.
func (e ResolvedEndpoint) CommandURL(path string) string {
	return strings.TrimSuffix(e.BaseURL, "/") + "/" + strings.TrimPrefix(path, "/")
}

func (e ResolvedEndpoint) String() string {
	return e.BaseURL
}
