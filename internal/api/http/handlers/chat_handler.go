package handlers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/garage-assistant/internal/api/dto"
	"github.com/spec-kit/garage-assistant/internal/observability"
	"github.com/spec-kit/garage-assistant/internal/service"
	apperrors "github.com/spec-kit/garage-assistant/pkg/util"
)

// ChatHandler serves the chat endpoint.
type ChatHandler struct {
	service *service.ChatService
}

// NewChatHandler constructs handler.
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{service: chatService}
}

// Chat POST /chat.
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	result, err := h.service.Process(c.UserContext(), observability.RequestID(c), req.Message)
	if err != nil {
		return err
	}
	return c.JSON(chatResponse(result))
}

func chatResponse(result *service.ChatResult) dto.ChatResponse {
	names := make([]string, 0, len(result.Contributors))
	responses := make(map[string]string, len(result.Responses))
	for _, name := range result.Contributors {
		names = append(names, string(name))
		responses[string(name)] = result.Responses[name]
	}
	return dto.ChatResponse{
		Response:       result.Response,
		QueryType:      strings.Join(names, ", "),
		ExecutionTime:  fmt.Sprintf("%.2fs", result.Duration.Seconds()),
		AgentResponses: responses,
		RequestID:      result.RequestID,
	}
}
