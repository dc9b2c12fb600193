package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/garage-assistant/internal/agents"
	"github.com/spec-kit/garage-assistant/internal/domain"
	"github.com/spec-kit/garage-assistant/internal/events"
)

// Phase is a state of the dispatch loop.
type Phase string

const (
	PhaseRouting     Phase = "routing"
	PhaseRunning     Phase = "running"
	PhaseSummarizing Phase = "summarizing"
	PhaseDone        Phase = "done"
)

// validTransitions defines the legal phase transitions.
var validTransitions = map[Phase]map[Phase]bool{
	PhaseRouting:     {PhaseRunning: true, PhaseSummarizing: true},
	PhaseRunning:     {PhaseRunning: true, PhaseSummarizing: true},
	PhaseSummarizing: {PhaseDone: true},
}

// IsValidTransition checks if a phase transition is legal.
func IsValidTransition(from, to Phase) bool {
	return validTransitions[from][to]
}

// nextPhase applies the loop's only decision: run the head of the queue, or
// summarize once it is empty.
func nextPhase(state *domain.RequestState) Phase {
	if len(state.Pending) == 0 {
		return PhaseSummarizing
	}
	return PhaseRunning
}

// DispatchLoop runs routed responders one at a time, in order, then summarizes.
type DispatchLoop struct {
	router     *Router
	registry   *agents.Registry
	summarizer *Summarizer
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// DispatchDependencies bundles collaborators for the loop.
type DispatchDependencies struct {
	Router     *Router
	Registry   *agents.Registry
	Summarizer *Summarizer
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewDispatchLoop creates the loop.
func NewDispatchLoop(deps DispatchDependencies) *DispatchLoop {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DispatchLoop{
		router:     deps.Router,
		registry:   deps.Registry,
		summarizer: deps.Summarizer,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// Run drives state from ROUTING to DONE. The final answer is the last entry of
// state.Messages. Cancellation is checked between steps; a step already
// running is allowed to finish.
func (d *DispatchLoop) Run(ctx context.Context, state *domain.RequestState) error {
	started := time.Now()
	logger := d.logger.With(zap.String("request_id", state.ID))

	phase := PhaseRouting
	state.Pending = d.router.Route(ctx, state.UserInput)
	logger.Info("routed", zap.Any("agents", state.Pending))
	d.publish(ctx, logger, events.NewEvent(events.EventPipelineRouted, state.ID,
		events.PipelineRoutedPayload{Agents: append([]domain.AgentName(nil), state.Pending...)}))

	for phase != PhaseDone {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("dispatch %s: %w", phase, err)
		}

		var next Phase
		if phase == PhaseSummarizing {
			next = PhaseDone
		} else {
			next = nextPhase(state)
		}
		if !IsValidTransition(phase, next) {
			return fmt.Errorf("illegal transition %s -> %s", phase, next)
		}
		phase = next

		switch phase {
		case PhaseRunning:
			name, _ := state.Next()
			if err := d.step(ctx, logger, state, name); err != nil {
				return err
			}
		case PhaseSummarizing:
			logger.Debug("summarizing", zap.Int("responses", len(state.Responses)))
		case PhaseDone:
			final := d.summarizer.Summarize(ctx, state)
			state.Finish(final)
			d.publish(ctx, logger, events.NewEvent(events.EventPipelineCompleted, state.ID,
				events.PipelineCompletedPayload{
					Contributors: state.Contributors(),
					Response:     final,
					Duration:     time.Since(started),
				}))
		}
	}
	return nil
}

// step runs one responder. Names without an implementation resolve to chat.
func (d *DispatchLoop) step(ctx context.Context, logger *zap.Logger, state *domain.RequestState, name domain.AgentName) error {
	responder, ok := d.registry.Resolve(name)
	if !ok {
		return fmt.Errorf("no responder for %q", name)
	}
	if responder.Name() != name {
		logger.Warn("unknown responder; using fallback", zap.String("requested", string(name)), zap.String("resolved", string(responder.Name())))
	}
	resolved := responder.Name()

	d.publish(ctx, logger, events.NewEvent(events.EventAgentStarted, state.ID,
		events.AgentStartedPayload{Agent: resolved}))

	started := time.Now()
	text := responder.Handle(ctx, state.UserInput)
	state.Record(resolved, text)

	d.publish(ctx, logger, events.NewEvent(events.EventAgentCompleted, state.ID,
		events.AgentCompletedPayload{
			Agent:    resolved,
			Duration: time.Since(started),
			Lines:    strings.Count(text, "\n") + 1,
		}))
	return nil
}

func (d *DispatchLoop) publish(ctx context.Context, logger *zap.Logger, event events.Event) {
	if d.dispatcher == nil {
		return
	}
	if err := d.dispatcher.Publish(ctx, event); err != nil {
		logger.Warn("event handler failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}
