package server

import (
	"lingua/internal/models"
	"lingua/internal/service"

	"github.com/gofiber/fiber/v2"
)

type sendMessageRequest struct {
	ReceiverID uint   `json:"receiver_id"`
	Text       string `json:"text"`
}

// SendMessage handles POST /api/chat/send
func (s *Server) SendMessage(c *fiber.Ctx) error {
	var req sendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	msg, err := s.chatService.Send(c.Context(), service.SendMessageInput{
		SenderID:   currentUserID(c),
		ReceiverID: req.ReceiverID,
		Text:       req.Text,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}

// GetChatHistory handles GET /api/chat/:otherId
func (s *Server) GetChatHistory(c *fiber.Ctx) error {
	otherID, err := s.parseID(c, "otherId")
	if err != nil {
		return nil
	}

	msgs, err := s.chatService.History(c.Context(), currentUserID(c), otherID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(msgs)
}

// GetNewMessages handles GET /api/chat/:otherId/new?since=<id>
func (s *Server) GetNewMessages(c *fiber.Ctx) error {
	otherID, err := s.parseID(c, "otherId")
	if err != nil {
		return nil
	}

	since := c.QueryInt("since", 0)
	if since < 0 {
		since = 0
	}

	msgs, err := s.chatService.NewSince(c.Context(), currentUserID(c), otherID, uint(since))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(msgs)
}
