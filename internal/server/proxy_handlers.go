package server

import (
	"lingua/internal/models"
	"lingua/internal/upstream"

	"github.com/gofiber/fiber/v2"
)

// ProxyTranslate handles POST /api/proxy/translate
func (s *Server) ProxyTranslate(c *fiber.Ctx) error {
	var req upstream.TranslateInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if len(req.Text) == 0 || req.TargetLang == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("text and target_lang are required"))
	}

	body, err := s.deepl.Translate(c.Context(), req)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

// ProxyChat handles POST /api/proxy/chat
func (s *Server) ProxyChat(c *fiber.Ctx) error {
	var req upstream.ChatInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if len(req.Messages) == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("messages are required"))
	}

	body, err := s.deepseek.Chat(c.Context(), req)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}

// ProxyDictionary handles GET /api/proxy/dictionary/:word
func (s *Server) ProxyDictionary(c *fiber.Ctx) error {
	word := c.Params("word")
	if word == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("word is required"))
	}

	body, err := s.dictionary.Lookup(c.Context(), word)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}
