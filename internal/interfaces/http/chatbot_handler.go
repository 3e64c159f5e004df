package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Maxito7/marea_backend/internal/application"
	"github.com/Maxito7/marea_backend/internal/domain"
	"github.com/Maxito7/marea_backend/internal/logger"
)

type ChatbotHandler struct {
	service *application.ChatbotService
	log     logger.Logger
}

func NewChatbotHandler(service *application.ChatbotService, log logger.Logger) *ChatbotHandler {
	return &ChatbotHandler{
		service: service,
		log:     log,
	}
}

func (h *ChatbotHandler) Chat(c *fiber.Ctx) error {
	var req domain.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request format",
		})
	}

	response, err := h.service.Reply(c.UserContext(), req, c.IP())
	if err != nil {
		switch {
		case errors.Is(err, application.ErrEmptyMessage):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Message is required",
			})
		case errors.Is(err, application.ErrInvalidConversationID):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid conversation ID",
			})
		case errors.Is(err, application.ErrRateLimited):
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Demasiados mensajes, intenta nuevamente en un momento",
			})
		}
		h.log.Error("error processing message", logger.Err(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.JSON(response)
}

func (h *ChatbotHandler) QuickReplies(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"quickReplies": h.service.QuickReplies(),
	})
}

// ListFaqs devuelve el dataset para la página de preguntas frecuentes.
// Acepta ?domain=restaurant|cooperative.
func (h *ChatbotHandler) ListFaqs(c *fiber.Ctx) error {
	var filter *domain.FaqDomain
	if raw := c.Query("domain"); raw != "" {
		d, err := domain.ParseFaqDomain(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		filter = &d
	}

	return c.JSON(h.service.ListFaqs(filter))
}

func (h *ChatbotHandler) GetConversation(c *fiber.Ctx) error {
	conversationID := c.Params("id")
	if conversationID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Conversation ID is required",
		})
	}

	conversation, err := h.service.ConversationHistory(c.UserContext(), conversationID)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidConversationID):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid conversation ID",
			})
		case errors.Is(err, domain.ErrConversationNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Conversation not found",
			})
		}
		h.log.Error("error getting conversation", logger.String("conversation_id", conversationID), logger.Err(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.JSON(conversation)
}
