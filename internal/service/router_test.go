package service

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/garage-assistant/internal/domain"
	"github.com/spec-kit/garage-assistant/internal/llm/llmtest"
)

func TestRouter_OverviewSkipsClassifier(t *testing.T) {
	classifier := llmtest.FailingClassifier()
	r := NewRouter(classifier, nil)

	got := r.Route(context.Background(), "What's EVERYTHING HAPPENING today?")
	want := []domain.AgentName{domain.AgentTicket, domain.AgentNews, domain.AgentActivity, domain.AgentInfrastructure}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Route mismatch (-want +got):\n%s", diff)
	}
	assert.Zero(t, classifier.Calls())

	// The caller must not be able to corrupt the shared overview route.
	got[0] = domain.AgentChat
	assert.Equal(t, domain.AgentTicket, OverviewRoute[0])
}

func TestRouter_ClassifierDecision(t *testing.T) {
	tests := []struct {
		name   string
		agents []string
		want   []domain.AgentName
	}{
		{
			name:   "labels keep order",
			agents: []string{"TicketAnalyzerAgent", "NewsAggregatorAgent"},
			want:   []domain.AgentName{domain.AgentTicket, domain.AgentNews},
		},
		{
			name:   "keys accepted",
			agents: []string{"activity_tracker", "infrastructure_cost_monitor"},
			want:   []domain.AgentName{domain.AgentActivity, domain.AgentInfrastructure},
		},
		{
			name:   "unknown maps to chat",
			agents: []string{"WeatherAgent", "TicketAnalyzerAgent"},
			want:   []domain.AgentName{domain.AgentChat, domain.AgentTicket},
		},
		{
			name:   "duplicates keep first position",
			agents: []string{"TicketAnalyzerAgent", "ChatAgent", "ticket_analyzer", "Bogus"},
			want:   []domain.AgentName{domain.AgentTicket, domain.AgentChat},
		},
		{
			name:   "empty list",
			agents: []string{},
			want:   []domain.AgentName{domain.AgentChat},
		},
		{
			name:   "missing field",
			agents: nil,
			want:   []domain.AgentName{domain.AgentChat},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRouter(llmtest.ClassifyAs(routeDecision{Agents: tt.agents}), nil)
			got := r.Route(context.Background(), "show open tickets and the news")
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Route mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRouter_ClassifierFailureDefaultsToChat(t *testing.T) {
	r := NewRouter(llmtest.FailingClassifier(), nil)
	assert.Equal(t, []domain.AgentName{domain.AgentChat}, r.Route(context.Background(), "hello"))

	r = NewRouter(nil, nil)
	assert.Equal(t, []domain.AgentName{domain.AgentChat}, r.Route(context.Background(), "hello"))
}

func TestIsOverviewRequest(t *testing.T) {
	assert.True(t, IsOverviewRequest("give me the full status"))
	assert.True(t, IsOverviewRequest("whats happening"))
	assert.False(t, IsOverviewRequest("show open tickets"))
}
