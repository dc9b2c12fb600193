package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/garage-assistant/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventPipelineRouted    EventType = "pipeline_routed"
	EventAgentStarted      EventType = "agent_started"
	EventAgentCompleted    EventType = "agent_completed"
	EventPipelineCompleted EventType = "pipeline_completed"
)

// Event represents a pipeline lifecycle event.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	RequestID string      `json:"request_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(eventType EventType, requestID string, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// PipelineRoutedPayload payload.
type PipelineRoutedPayload struct {
	Agents []domain.AgentName `json:"agents"`
}

// AgentStartedPayload payload.
type AgentStartedPayload struct {
	Agent domain.AgentName `json:"agent"`
}

// AgentCompletedPayload payload.
type AgentCompletedPayload struct {
	Agent    domain.AgentName `json:"agent"`
	Duration time.Duration    `json:"duration"`
	Lines    int              `json:"lines"`
}

// PipelineCompletedPayload payload.
type PipelineCompletedPayload struct {
	Contributors []domain.AgentName `json:"contributors"`
	Response     string             `json:"response"`
	Duration     time.Duration      `json:"duration"`
}
