//go:build unit

package broadcast

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed unexpectedly")
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for value")
	}
	var zero T
	return zero
}

func TestSubject_ReplaysLatest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	subject := NewSubject("first")
	subject.Publish("second")

	ch := subject.Subscribe(ctx)
	assert.Equal(t, "second", receive(t, ch))
}

func TestSubject_DeliversEveryPublish(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	subject := NewSubject(0)
	ch := subject.Subscribe(ctx)
	assert.Equal(t, 0, receive(t, ch))

	t.Run("InOrder", func(t *testing.T) {
		for i := 1; i <= 5; i++ {
			subject.Publish(i)
		}
		for i := 1; i <= 5; i++ {
			assert.Equal(t, i, receive(t, ch))
		}
	})

	t.Run("DuplicatesNotDropped", func(t *testing.T) {
		subject.Publish(7)
		subject.Publish(7)
		assert.Equal(t, 7, receive(t, ch))
		assert.Equal(t, 7, receive(t, ch))
	})
}

func TestSubject_MultipleSubscribers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	subject := NewSubject("a")
	first := subject.Subscribe(ctx)
	second := subject.Subscribe(ctx)

	subject.Publish("b")

	assert.Equal(t, "a", receive(t, first))
	assert.Equal(t, "b", receive(t, first))
	assert.Equal(t, "a", receive(t, second))
	assert.Equal(t, "b", receive(t, second))
}

func TestSubject_ClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	subject := NewSubject(1)
	ch := subject.Subscribe(ctx)
	assert.Equal(t, 1, receive(t, ch))

	cancel()

	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}

	assert.Eventually(t, func() bool {
		return subject.Subscribers() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestSubject_Latest(t *testing.T) {
	subject := NewSubject("x")
	v, ok := subject.Latest()
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	subject.Publish("y")
	v, _ = subject.Latest()
	assert.Equal(t, "y", v)
}

func TestSubject_Empty(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	subject := NewEmptySubject[string]()
	_, ok := subject.Latest()
	assert.False(t, ok)

	ch := subject.Subscribe(ctx)
	select {
	case v := <-ch:
		t.Fatalf("unexpected replay of %q", v)
	case <-time.After(50 * time.Millisecond):
	}

	subject.Publish("first")
	assert.Equal(t, "first", receive(t, ch))
}
