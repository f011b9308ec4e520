package handlers

import (
	"errors"

	"github.com/JasminHed/project-final-sub000/internal/dto"
	"github.com/JasminHed/project-final-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ChatHandler struct {
	service *services.ChatService
}

func NewChatHandler(service *services.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Relay handles POST /api/chat. Upstream failures are passed through with
// the provider's status and raw body.
func (h *ChatHandler) Relay(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Message: "Invalid request body",
		})
	}

	reply, err := h.service.Relay(req.Message)
	if err != nil {
		if errors.Is(err, services.ErrEmptyMessage) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Success: false, Message: err.Error(),
			})
		}
		var upstream *services.UpstreamError
		if errors.As(err, &upstream) {
			return c.Status(upstream.Status).JSON(dto.ErrorResponse{
				Success: false, Message: upstream.Body,
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Success: false, Message: err.Error(),
		})
	}

	return c.JSON(dto.ChatResponse{Reply: reply})
}
