package endpoint

import (
	"context"
	"time"

	"pragyan-remote/internal/pkg/logging"
)

// Watch re-resolves the endpoint every interval and publishes it when it differs from
// the last published value, so address changes on the host reach subscribers without
// user action. It runs until the context is cancelled.
func (r *Resolver) Watch(ctx context.Context, interval time.Duration) error {
	logger := logging.WithComponent("resolver").WithField("interval", interval.String())
	logger.Debug("Starting endpoint monitoring")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Endpoint monitoring stopped due to context cancellation")
			return ctx.Err()
		case <-ticker.C:
			r.refresh()
		}
	}
}

// refresh publishes the current endpoint if it changed since the last publish.
func (r *Resolver) refresh() bool {
	r.publishMu.Lock()
	defer r.publishMu.Unlock()

	current := r.ResolveCurrent()
	if last, ok := r.subject.Latest(); ok && last == current {
		return false
	}

	logging.WithComponentAndEndpoint("resolver", current.BaseURL).Info("Endpoint changed")
	r.subject.Publish(current)
	return true
}
