package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/garage-assistant/internal/persistence"
	apperrors "github.com/spec-kit/garage-assistant/pkg/util"
)

// TerminalHandler exposes the most recent chat response as plain text.
type TerminalHandler struct {
	slot persistence.OutputSlot
}

// NewTerminalHandler constructs handler.
func NewTerminalHandler(slot persistence.OutputSlot) *TerminalHandler {
	return &TerminalHandler{slot: slot}
}

// Output GET /terminal-output.
func (h *TerminalHandler) Output(c *fiber.Ctx) error {
	text, err := h.slot.Load(c.UserContext())
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(text)
}
