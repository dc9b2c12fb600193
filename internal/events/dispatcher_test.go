package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/garage-assistant/internal/domain"
)

func TestDispatcher_PublishReachesSubscribersInOrder(t *testing.T) {
	d := NewInMemoryDispatcher()
	var seen []string
	d.Subscribe(EventAgentStarted, func(_ context.Context, e Event) error {
		seen = append(seen, "first:"+string(e.Payload.(AgentStartedPayload).Agent))
		return nil
	})
	d.Subscribe(EventAgentStarted, func(_ context.Context, e Event) error {
		seen = append(seen, "second:"+e.RequestID)
		return nil
	})
	d.Subscribe(EventAgentCompleted, func(context.Context, Event) error {
		t.Fatal("unexpected handler")
		return nil
	})

	err := d.Publish(context.Background(), NewEvent(EventAgentStarted, "req-1", AgentStartedPayload{Agent: domain.AgentTicket}))
	require.NoError(t, err)
	assert.Equal(t, []string{"first:ticket_analyzer", "second:req-1"}, seen)
}

func TestDispatcher_HandlerErrorsAreJoined(t *testing.T) {
	d := NewInMemoryDispatcher()
	errA := errors.New("a")
	calls := 0
	d.Subscribe(EventPipelineCompleted, func(context.Context, Event) error { calls++; return errA })
	d.Subscribe(EventPipelineCompleted, func(context.Context, Event) error { calls++; return nil })

	err := d.Publish(context.Background(), NewEvent(EventPipelineCompleted, "req-1", nil))
	assert.ErrorIs(t, err, errA)
	assert.Equal(t, 2, calls)
}

func TestNewEvent(t *testing.T) {
	a := NewEvent(EventPipelineRouted, "req-1", nil)
	b := NewEvent(EventPipelineRouted, "req-1", nil)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.Timestamp.IsZero())
}
