package api

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shopassist/internal/domain/entity"
	"shopassist/internal/usecase"
)

type ChatHandler struct {
	orchestrator *usecase.Orchestrator
}

func NewChatHandler(orch *usecase.Orchestrator) *ChatHandler {
	return &ChatHandler{orchestrator: orch}
}

func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req entity.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "message is required"})
	}

	requestID := uuid.NewString()
	c.Set("X-Request-ID", requestID)

	answer, err := h.orchestrator.Chat(c.Context(), c.IP(), req.Message, req.GroqAPIKey)
	if err != nil {
		log.Printf("[%s] chat failed: %v", requestID, err)
		// The delivery layer maps domain errors to HTTP status codes.
		switch {
		case errors.Is(err, entity.ErrMissingCredential):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": entity.ErrMissingCredential.Error()})
		case errors.Is(err, entity.ErrRateLimitExceeded):
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": entity.ErrRateLimitExceeded.Error()})
		case errors.Is(err, entity.ErrCatalogUnavailable):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": entity.ErrCatalogUnavailable.Error()})
		case errors.Is(err, entity.ErrModelRequestFailed):
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": entity.ErrModelRequestFailed.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.Status(fiber.StatusOK).JSON(entity.ChatResponse{Response: answer})
}

func (h *ChatHandler) HandleProducts(c *fiber.Ctx) error {
	products, err := h.orchestrator.Products(c.Context())
	if err != nil {
		log.Printf("products fetch failed: %v", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": entity.ErrCatalogUnavailable.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(entity.ProductsResponse{Products: products, Total: len(products)})
}
