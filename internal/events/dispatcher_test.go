package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublish_InvokesSubscribers(t *testing.T) {
	t.Parallel()

	dispatcher := NewInMemoryDispatcher()

	var seen []Event
	dispatcher.Subscribe(EventLoginSucceeded, func(_ context.Context, event Event) error {
		seen = append(seen, event)
		return nil
	})

	event := NewEvent(EventLoginSucceeded, "alice", map[string]string{"ip": "10.0.0.1"})
	require.NoError(t, dispatcher.Publish(context.Background(), event))

	require.Len(t, seen, 1)
	assert.Equal(t, "alice", seen[0].Username)
	assert.Equal(t, EventLoginSucceeded, seen[0].Type)
	assert.NotEmpty(t, seen[0].ID)
	assert.False(t, seen[0].OccurredAt.IsZero())
}

func TestPublish_NoSubscribers(t *testing.T) {
	t.Parallel()

	dispatcher := NewInMemoryDispatcher()
	err := dispatcher.Publish(context.Background(), NewEvent(EventLoggedOut, "", nil))
	assert.NoError(t, err)
}

func TestPublish_HandlerErrorDoesNotStopDelivery(t *testing.T) {
	t.Parallel()

	dispatcher := NewInMemoryDispatcher()

	called := 0
	dispatcher.Subscribe(EventLoginFailed, func(context.Context, Event) error {
		called++
		return errors.New("audit sink unavailable")
	})
	dispatcher.Subscribe(EventLoginFailed, func(context.Context, Event) error {
		called++
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), NewEvent(EventLoginFailed, "bob", nil)))
	assert.Equal(t, 2, called)
}

func TestSubscribe_TypeIsolation(t *testing.T) {
	t.Parallel()

	dispatcher := NewInMemoryDispatcher()

	var got EventType
	dispatcher.Subscribe(EventTokenRefreshed, func(_ context.Context, event Event) error {
		got = event.Type
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), NewEvent(EventLoginSucceeded, "alice", nil)))
	assert.Empty(t, got)

	require.NoError(t, dispatcher.Publish(context.Background(), NewEvent(EventTokenRefreshed, "alice", nil)))
	assert.Equal(t, EventTokenRefreshed, got)
}
