package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/garage-assistant/internal/api/dto"
	"github.com/spec-kit/garage-assistant/internal/domain"
)

// AgentsHandler lists the available responders.
type AgentsHandler struct {
	agents []domain.AgentInfo
}

// NewAgentsHandler constructs handler over the catalogue.
func NewAgentsHandler(agents []domain.AgentInfo) *AgentsHandler {
	return &AgentsHandler{agents: agents}
}

// List GET /agents.
func (h *AgentsHandler) List(c *fiber.Ctx) error {
	resp := dto.AgentsResponse{Agents: make([]dto.AgentSummary, 0, len(h.agents))}
	for _, a := range h.agents {
		resp.Agents = append(resp.Agents, dto.AgentSummary{Name: a.Label, Description: a.Description})
	}
	return c.JSON(resp)
}
