package worker

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/garage-assistant/internal/events"
	"github.com/spec-kit/garage-assistant/internal/observability"
	"github.com/spec-kit/garage-assistant/internal/persistence"
)

// PipelineWorker reacts to pipeline lifecycle events: it logs each step,
// counts responder runs and keeps the terminal output slot current.
type PipelineWorker struct {
	slot    persistence.OutputSlot
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewPipelineWorker creates the worker.
func NewPipelineWorker(slot persistence.OutputSlot, metrics *observability.Metrics, logger *zap.Logger) *PipelineWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PipelineWorker{slot: slot, metrics: metrics, logger: logger}
}

// StartPipelineWorker subscribes the worker's handlers.
func StartPipelineWorker(dispatcher events.Dispatcher, w *PipelineWorker) {
	if dispatcher == nil || w == nil {
		return
	}
	dispatcher.Subscribe(events.EventAgentStarted, w.handleAgentStarted)
	dispatcher.Subscribe(events.EventAgentCompleted, w.handleAgentCompleted)
	dispatcher.Subscribe(events.EventPipelineCompleted, w.handlePipelineCompleted)
}

func (w *PipelineWorker) handleAgentStarted(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.AgentStartedPayload)
	if !ok {
		return fmt.Errorf("agent_started: unexpected payload %T", event.Payload)
	}
	w.logger.Info("AgentStarted", zap.String("request_id", event.RequestID), zap.String("agent", string(payload.Agent)))
	return nil
}

func (w *PipelineWorker) handleAgentCompleted(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.AgentCompletedPayload)
	if !ok {
		return fmt.Errorf("agent_completed: unexpected payload %T", event.Payload)
	}
	w.metrics.RecordResponder(string(payload.Agent), payload.Duration)
	w.logger.Info("AgentCompleted",
		zap.String("request_id", event.RequestID),
		zap.String("agent", string(payload.Agent)),
		zap.Duration("duration", payload.Duration),
		zap.Int("lines", payload.Lines))
	return nil
}

func (w *PipelineWorker) handlePipelineCompleted(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.PipelineCompletedPayload)
	if !ok {
		return fmt.Errorf("pipeline_completed: unexpected payload %T", event.Payload)
	}
	w.logger.Info("PipelineCompleted",
		zap.String("request_id", event.RequestID),
		zap.Any("agents", payload.Contributors),
		zap.Duration("duration", payload.Duration))
	if w.slot == nil {
		return nil
	}
	if err := w.slot.Store(ctx, payload.Response); err != nil {
		return fmt.Errorf("pipeline_completed: %w", err)
	}
	return nil
}
