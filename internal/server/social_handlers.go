package server

import (
	"lingua/internal/middleware"
	"lingua/internal/models"

	"github.com/gofiber/fiber/v2"
)

type updateProfileRequest struct {
	Avatar string `json:"avatar"`
}

// GetRank handles GET /api/rank
func (s *Server) GetRank(c *fiber.Ctx) error {
	view, err := s.socialService.Rank(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(view)
}

// ToggleLike handles POST /api/users/:id/like
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	likedID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	res, err := s.socialService.ToggleLike(c.Context(), currentUserID(c), likedID)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	state := "unliked"
	if res.Liked {
		state = "liked"
	}
	middleware.LikeToggles.WithLabelValues(state).Inc()

	return c.JSON(res)
}

// GetMyProfile handles GET /api/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.socialService.Profile(c.Context(), currentUserID(c))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(profile)
}

// UpdateMyProfile handles PUT /api/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.socialService.UpdateAvatar(c.Context(), currentUserID(c), req.Avatar)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(profile)
}
