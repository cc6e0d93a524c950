package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherInvokesHandlersInOrder(t *testing.T) {
	d := NewInMemoryDispatcher(nil)

	var calls []string
	d.Subscribe(EventCaseCreated, func(ctx context.Context, e Event) error {
		calls = append(calls, "first:"+e.CaseID)
		return nil
	})
	d.Subscribe(EventCaseCreated, func(ctx context.Context, e Event) error {
		calls = append(calls, "second:"+e.CaseID)
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventCaseCreated, CaseID: "c1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first:c1", "second:c1"}, calls)
}

func TestDispatcherFailingHandlerDoesNotBlockOthers(t *testing.T) {
	d := NewInMemoryDispatcher(nil)

	var reached bool
	d.Subscribe(EventCaseStatusChanged, func(ctx context.Context, e Event) error {
		return errors.New("handler down")
	})
	d.Subscribe(EventCaseStatusChanged, func(ctx context.Context, e Event) error {
		reached = true
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventCaseStatusChanged, CaseID: "c2"})
	require.NoError(t, err)
	assert.True(t, reached)
}

func TestDispatcherIgnoresUnsubscribedTypes(t *testing.T) {
	d := NewInMemoryDispatcher(nil)

	var called bool
	d.Subscribe(EventCaseDeleted, func(ctx context.Context, e Event) error {
		called = true
		return nil
	})

	err := d.Publish(context.Background(), Event{Type: EventCaseCommentAdded, CaseID: "c3"})
	require.NoError(t, err)
	assert.False(t, called)
}
