// Package broadcast provides a replay-latest subject: every subscriber first receives
// the most recent value and then every later value, in publish order.
package broadcast

import (
	"context"
	"sync"
)

// Subject fans values out to subscribers. Publish never blocks on a slow subscriber;
// each subscriber owns an unbounded queue drained by its own goroutine.
type Subject[T any] struct {
	mu       sync.Mutex
	latest   T
	hasValue bool
	subs     map[*subscriber[T]]struct{}
}

type subscriber[T any] struct {
	mu     sync.Mutex
	queue  []T
	notify chan struct{}
}

// NewSubject creates a subject seeded with an initial value.
func NewSubject[T any](initial T) *Subject[T] {
	return &Subject[T]{
		latest:   initial,
		hasValue: true,
		subs:     make(map[*subscriber[T]]struct{}),
	}
}

// NewEmptySubject creates a subject with nothing to replay until the first Publish.
func NewEmptySubject[T any]() *Subject[T] {
	return &Subject[T]{subs: make(map[*subscriber[T]]struct{})}
}

// Publish records v as the latest value and queues it for every subscriber.
// Values are not deduplicated.
func (s *Subject[T]) Publish(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest = v
	s.hasValue = true
	for sub := range s.subs {
		sub.push(v)
	}
}

// Latest returns the most recently published value.
func (s *Subject[T]) Latest() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest, s.hasValue
}

// Subscribe returns a channel that yields the latest value followed by every later
// publish. The channel is closed once ctx is done.
func (s *Subject[T]) Subscribe(ctx context.Context) <-chan T {
	sub := &subscriber[T]{notify: make(chan struct{}, 1)}
	out := make(chan T)

	s.mu.Lock()
	if s.hasValue {
		sub.push(s.latest)
	}
	if s.subs == nil {
		s.subs = make(map[*subscriber[T]]struct{})
	}
	s.subs[sub] = struct{}{}
	s.mu.Unlock()

	go func() {
		defer close(out)
		defer s.remove(sub)

		for {
			v, ok := sub.pop()
			if !ok {
				select {
				case <-ctx.Done():
					return
				case <-sub.notify:
				}
				continue
			}
			select {
			case <-ctx.Done():
				return
			case out <- v:
			}
		}
	}()

	return out
}

// Subscribers returns the number of active subscriptions.
func (s *Subject[T]) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

func (s *Subject[T]) remove(sub *subscriber[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, sub)
}

func (sub *subscriber[T]) push(v T) {
	sub.mu.Lock()
	sub.queue = append(sub.queue, v)
	sub.mu.Unlock()

	select {
	case sub.notify <- struct{}{}:
	default:
	}
}

func (sub *subscriber[T]) pop() (T, bool) {
	sub.mu.Lock()
	defer sub.mu.Unlock()

	var zero T
	if len(sub.queue) == 0 {
		return zero, false
	}
	v := sub.queue[0]
	sub.queue[0] = zero
	sub.queue = sub.queue[1:]
	return v, true
}
