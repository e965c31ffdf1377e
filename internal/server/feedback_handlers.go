package server

import (
	"lingua/internal/models"

	"github.com/gofiber/fiber/v2"
)

type feedbackRequest struct {
	Text string `json:"text"`
}

// SubmitFeedback handles POST /api/feedback
func (s *Server) SubmitFeedback(c *fiber.Ctx) error {
	var req feedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.contentService.SubmitFeedback(c.Context(), currentUserID(c), req.Text); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Feedback received"})
}
