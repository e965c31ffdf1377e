package server

import (
	"lingua/internal/models"
	"lingua/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createTopicRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	ImageURL string `json:"image_url"`
}

type createCommentRequest struct {
	Text string `json:"text"`
}

// GetTopics handles GET /api/plaza/topics
func (s *Server) GetTopics(c *fiber.Ctx) error {
	topics, err := s.plazaService.ListTopics(c.Context())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	if topics == nil {
		topics = []models.Topic{}
	}
	return c.JSON(topics)
}

// GetTopic handles GET /api/plaza/topics/:id
func (s *Server) GetTopic(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	detail, err := s.plazaService.GetTopic(c.Context(), id)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(detail)
}

// CreateTopic handles POST /api/plaza/topics
func (s *Server) CreateTopic(c *fiber.Ctx) error {
	var req createTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	topic, err := s.plazaService.CreateTopic(c.Context(), service.CreateTopicInput{
		UserID:   currentUserID(c),
		Title:    req.Title,
		Body:     req.Body,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(topic)
}

// CreateComment handles POST /api/plaza/topics/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	topicID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req createCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.plazaService.AddComment(c.Context(), topicID, currentUserID(c), req.Text)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// LikeComment handles POST /api/plaza/comments/:id/like
func (s *Server) LikeComment(c *fiber.Ctx) error {
	commentID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	count, err := s.plazaService.LikeComment(c.Context(), commentID, currentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(fiber.Map{"new_count": count})
}
