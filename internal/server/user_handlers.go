package server

import (
	"gardrop/internal/models"
	"gardrop/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.userService.GetUserByID(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req struct {
		Name     string `json:"name"`
		Surname  string `json:"surname"`
		Phone    string `json:"phone"`
		Avatar   string `json:"avatar"`
		Username string `json:"username"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Username != "" {
		if _, err := s.userService.ChangeUsername(ctx, userID, req.Username); err != nil {
			return respondServiceError(c, err)
		}
	}

	user, err := s.userService.UpdateProfile(ctx, service.UpdateProfileInput{
		UserID:  userID,
		Name:    req.Name,
		Surname: req.Surname,
		Phone:   req.Phone,
		Avatar:  req.Avatar,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(user)
}
