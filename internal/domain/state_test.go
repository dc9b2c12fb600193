package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestState_NextPopsInOrder(t *testing.T) {
	s := NewRequestState("req-1", "hello")
	s.Pending = []AgentName{AgentTicket, AgentActivity}

	first, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, AgentTicket, first)

	second, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, AgentActivity, second)

	_, ok = s.Next()
	assert.False(t, ok)
}

func TestRequestState_RecordKeepsFirstOrder(t *testing.T) {
	s := NewRequestState("req-1", "hello")
	s.Record(AgentNews, "news")
	s.Record(AgentChat, "chat")
	s.Record(AgentNews, "news again")

	assert.Equal(t, []AgentName{AgentNews, AgentChat}, s.Contributors())
	assert.Equal(t, "news again", s.Responses[AgentNews])
	assert.Len(t, s.Messages, 4)

	s.Finish("final")
	assert.Equal(t, "final", s.FinalText())
}

func TestLookupAgent(t *testing.T) {
	byLabel, ok := LookupAgent("InfrastructureCostMonitorAgent")
	require.True(t, ok)
	assert.Equal(t, AgentInfrastructure, byLabel.Name)

	byKey, ok := LookupAgent("news_aggregator")
	require.True(t, ok)
	assert.Equal(t, "NewsAggregatorAgent", byKey.Label)

	_, ok = LookupAgent("WeatherAgent")
	assert.False(t, ok)
}
