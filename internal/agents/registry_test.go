package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/garage-assistant/internal/domain"
)

func TestRegistry_Resolve(t *testing.T) {
	reg := NewDefaultRegistry(testDeps())

	for _, info := range domain.Agents {
		r, ok := reg.Resolve(info.Name)
		require.True(t, ok, info.Name)
		assert.Equal(t, info.Name, r.Name())
	}

	r, ok := reg.Resolve("weather_agent")
	require.True(t, ok)
	assert.Equal(t, domain.AgentChat, r.Name())
}

func TestRegistry_ResolveWithoutChat(t *testing.T) {
	reg := NewRegistry(NewTicketResponder(testDeps()))
	_, ok := reg.Resolve("weather_agent")
	assert.False(t, ok)
}
