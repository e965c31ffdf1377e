package server

import (
	"lingua/internal/models"
	"lingua/internal/service"

	"github.com/gofiber/fiber/v2"
)

type addVocabRequest struct {
	Word     string `json:"word"`
	Phonetic string `json:"phonetic"`
	Meaning  string `json:"meaning"`
}

type renameVocabRequest struct {
	Word string `json:"word"`
}

// GetVocab handles GET /api/vocab
func (s *Server) GetVocab(c *fiber.Ctx) error {
	entries, err := s.contentService.ListVocab(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	if entries == nil {
		entries = []models.VocabEntry{}
	}
	return c.JSON(entries)
}

// AddVocab handles POST /api/vocab
func (s *Server) AddVocab(c *fiber.Ctx) error {
	var req addVocabRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	res, err := s.contentService.AddVocab(c.Context(), service.AddVocabInput{
		UserID:   currentUserID(c),
		Word:     req.Word,
		Phonetic: req.Phonetic,
		Meaning:  req.Meaning,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	// A repeated add succeeds and says so instead of erroring.
	if res.Existed {
		return c.JSON(fiber.Map{
			"message": "Word already in vocabulary",
			"entry":   res.Entry,
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Word added",
		"entry":   res.Entry,
	})
}

// RenameVocab handles PUT /api/vocab/:id
func (s *Server) RenameVocab(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req renameVocabRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.contentService.RenameVocab(c.Context(), id, currentUserID(c), req.Word); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Word updated"})
}

// DeleteVocab handles DELETE /api/vocab/:id
func (s *Server) DeleteVocab(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.contentService.DeleteVocab(c.Context(), id, currentUserID(c)); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Word deleted"})
}
