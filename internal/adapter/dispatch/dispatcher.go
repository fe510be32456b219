// Package dispatch provides the fire-and-forget command dispatcher.
package dispatch

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"pragyan-remote/internal/pkg/logging"
	"pragyan-remote/internal/port"
	"pragyan-remote/internal/types"
)

// DefaultTimeout bounds a single command request.
const DefaultTimeout = 4 * time.Second

// Result describes the outcome of one completed send.
type Result struct {
	Command  types.Command
	Endpoint types.ResolvedEndpoint
	Err      error
	At       time.Time
	Duration time.Duration
}

// Failed reports whether the send did not reach the robot.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Stats counts completed sends.
type Stats struct {
	Sent   uint64
	Failed uint64
}

// Dispatcher implements the CommandSender port. Every Send resolves the endpoint at call
// time, builds a throwaway client for it and posts in the background. Failures are logged
// and recorded but never returned.
type Dispatcher struct {
	ctx      context.Context
	resolver port.EndpointResolver
	factory  port.ClientFactory
	timeout  time.Duration
	onResult func(Result)

	wg     sync.WaitGroup
	mu     sync.Mutex
	last   Result
	done   bool
	sent   atomic.Uint64
	failed atomic.Uint64
}

// Ensure Dispatcher implements the CommandSender port
var _ port.CommandSender = (*Dispatcher)(nil)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.timeout = timeout
		}
	}
}

// WithResultHook registers fn to be called from the sending goroutine after each send.
func WithResultHook(fn func(Result)) Option {
	return func(d *Dispatcher) {
		d.onResult = fn
	}
}

// NewDispatcher creates a dispatcher whose sends live no longer than ctx.
func NewDispatcher(ctx context.Context, resolver port.EndpointResolver, factory port.ClientFactory, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		ctx:      ctx,
		resolver: resolver,
		factory:  factory,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Send dispatches cmd asynchronously and returns immediately.
func (d *Dispatcher) Send(cmd types.Command) {
	endpoint := d.resolver.ResolveCurrent()
	client := d.factory(endpoint)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.deliver(client, endpoint, cmd)
	}()
}

// Wait blocks until every in-flight send has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// LastResult returns the most recently completed send, if any.
func (d *Dispatcher) LastResult() (Result, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last, d.done
}

// Stats returns counters of completed sends.
func (d *Dispatcher) Stats() Stats {
	return Stats{Sent: d.sent.Load(), Failed: d.failed.Load()}
}

func (d *Dispatcher) deliver(client port.RobotClient, endpoint types.ResolvedEndpoint, cmd types.Command) {
	logger := logging.WithComponentAndEndpoint("dispatch", endpoint.BaseURL).WithField("command", cmd.String())
	start := time.Now()

	ctx, cancel := context.WithTimeout(d.ctx, d.timeout)
	defer cancel()

	err := d.safeSend(ctx, client, cmd)
	result := Result{
		Command:  cmd,
		Endpoint: endpoint,
		Err:      err,
		At:       time.Now(),
		Duration: time.Since(start),
	}

	d.sent.Add(1)
	if err != nil {
		d.failed.Add(1)
		logger.WithError(err).Warn("Command not delivered")
	} else {
		logger.WithField("duration", result.Duration.String()).Debug("Command delivered")
	}

	d.mu.Lock()
	d.last = result
	d.done = true
	d.mu.Unlock()

	if d.onResult != nil {
		d.onResult(result)
	}
}

// safeSend turns a panicking client into an error so nothing escapes the goroutine.
func (d *Dispatcher) safeSend(ctx context.Context, client port.RobotClient, cmd types.Command) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("command client panicked: %v", r)
		}
	}()
	return client.SendCommand(ctx, cmd)
}
