package server

import (
	"lingua/internal/models"
	"lingua/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createNoteRequest struct {
	Text    string `json:"text"`
	Summary string `json:"summary"`
}

// GetNotes handles GET /api/notes
func (s *Server) GetNotes(c *fiber.Ctx) error {
	notes, err := s.contentService.ListNotes(c.Context(), currentUserID(c), c.Query("search"))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return c.JSON(notes)
}

// CreateNote handles POST /api/notes
func (s *Server) CreateNote(c *fiber.Ctx) error {
	var req createNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	note, err := s.contentService.CreateNote(c.Context(), service.CreateNoteInput{
		UserID:  currentUserID(c),
		Text:    req.Text,
		Summary: req.Summary,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(note)
}

// GetNote handles GET /api/notes/:id
func (s *Server) GetNote(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	note, err := s.contentService.GetNote(c.Context(), id, currentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(note)
}

// DeleteNote handles DELETE /api/notes/:id
func (s *Server) DeleteNote(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.contentService.DeleteNote(c.Context(), id, currentUserID(c)); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Note deleted"})
}
