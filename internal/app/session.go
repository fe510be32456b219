// Package app wires the endpoint resolver and command dispatcher into a session whose
// lifetime bounds every background send and watcher.
package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"pragyan-remote/internal/adapter/dispatch"
	"pragyan-remote/internal/adapter/endpoint"
	"pragyan-remote/internal/adapter/infrastructure/iface"
	"pragyan-remote/internal/adapter/infrastructure/ifreq"
	"pragyan-remote/internal/adapter/infrastructure/network"
	"pragyan-remote/internal/adapter/infrastructure/robot"
	"pragyan-remote/internal/pkg/broadcast"
	"pragyan-remote/internal/pkg/config"
	"pragyan-remote/internal/pkg/logging"
	"pragyan-remote/internal/port"
)

// Options configures a Session. Zero values select the production adapters.
type Options struct {
	Config     *config.Config
	Sources    []port.AddressSource
	HTTPClient *http.Client
}

// Session owns the endpoint configuration, the resolver and the dispatcher for one run.
type Session struct {
	ctx    context.Context
	cancel context.CancelFunc
	config *config.Config

	resolver   *endpoint.Resolver
	dispatcher *dispatch.Dispatcher
	results    *broadcast.Subject[dispatch.Result]
}

// DefaultSources returns the address sources in the order they are consulted:
// the active network, every interface, then the legacy single-interface query.
func DefaultSources(cfg *config.Config) []port.AddressSource {
	return []port.AddressSource{
		network.NewActiveSource(network.NewManagerAdapter()),
		iface.NewSource(),
		ifreq.NewSource(cfg.Endpoint.LegacyInterface),
	}
}

// NewSession validates the configuration and builds a session bound to parent.
func NewSession(parent context.Context, opts Options) (*Session, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	sources := opts.Sources
	if sources == nil {
		sources = DefaultSources(cfg)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Dispatch.Timeout}
	}

	ctx, cancel := context.WithCancel(parent)
	s := &Session{
		ctx:     ctx,
		cancel:  cancel,
		config:  cfg,
		results: broadcast.NewEmptySubject[dispatch.Result](),
	}

	s.resolver = endpoint.NewResolver(cfg.EndpointDefaults(), sources...)
	s.dispatcher = dispatch.NewDispatcher(ctx, s.resolver,
		robot.NewClientFactory(httpClient, cfg.Dispatch.Path),
		dispatch.WithTimeout(cfg.Dispatch.Timeout),
		dispatch.WithResultHook(s.results.Publish),
	)

	logging.WithComponentAndEndpoint("session", s.resolver.ResolveCurrent().BaseURL).
		WithField("sources", len(sources)).
		Debug("Session started")
	return s, nil
}

// Context returns the session context; it is cancelled by Close.
func (s *Session) Context() context.Context {
	return s.ctx
}

// Config returns the configuration the session was built with.
func (s *Session) Config() *config.Config {
	return s.config
}

// Resolver returns the endpoint resolver.
func (s *Session) Resolver() *endpoint.Resolver {
	return s.resolver
}

// Dispatcher returns the command dispatcher.
func (s *Session) Dispatcher() *dispatch.Dispatcher {
	return s.dispatcher
}

// Results streams the outcome of every completed send made after subscribing.
func (s *Session) Results(ctx context.Context) <-chan dispatch.Result {
	return s.results.Subscribe(ctx)
}

// StartWatch re-resolves the endpoint in the background at the configured interval.
// A zero interval disables watching.
func (s *Session) StartWatch() {
	interval := s.config.Endpoint.RefreshInterval
	if interval <= 0 {
		return
	}
	go func() {
		_ = s.resolver.Watch(s.ctx, interval)
	}()
}

// StreamURL returns the video stream URL. A configured video.url wins; otherwise the URL
// follows the host of the currently resolved endpoint.
func (s *Session) StreamURL() string {
	return StreamURL(s.config.Video, s.resolver.ResolveCurrent().Host())
}

// StreamURL builds the stream URL for host from the video configuration.
func StreamURL(video config.VideoConfig, host string) string {
	if video.URL != "" {
		return video.URL
	}
	path := video.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if video.Port == 0 || video.Port == 80 {
		return fmt.Sprintf("http://%s%s", host, path)
	}
	return fmt.Sprintf("http://%s:%d%s", host, video.Port, path)
}

// Close cancels the session and waits for in-flight sends to finish.
func (s *Session) Close() {
	s.cancel()
	s.dispatcher.Wait()
}
