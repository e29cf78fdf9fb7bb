package server

import (
	"connecthub/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ToggleFollow handles POST /api/follow/:id
func (s *Server) ToggleFollow(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	following, err := s.followService.Toggle(ctx, userID, targetID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"following": following})
}

// FollowStatus handles GET /api/follow/:id/status
func (s *Server) FollowStatus(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := currentUserID(c)

	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	following, err := s.followService.Status(ctx, userID, targetID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"following": following})
}

// GetFollowers handles GET /api/users/:id/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	followers, err := s.followService.Followers(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(followers)
}

// GetFollowing handles GET /api/users/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	following, err := s.followService.Following(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(following)
}
