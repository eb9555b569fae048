package server

import (
	"gardrop/internal/models"
	"gardrop/internal/service"

	"github.com/gofiber/fiber/v2"
)

// advertRequest is the JSON body shared by create and update.
type advertRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Color        string   `json:"color"`
	Size         string   `json:"size"`
	Gender       string   `json:"gender"`
	Phone        string   `json:"phone"`
	IsChildCloth bool     `json:"is_child_cloth"`
	IsFree       bool     `json:"is_free"`
	IsUsed       bool     `json:"is_used"`
	Category     string   `json:"category,omitempty"`
	ImageURLs    []string `json:"image_urls"`
	City         string   `json:"city,omitempty"`
	LocationNote string   `json:"location_note,omitempty"`
}

// CreateAdvert handles POST /api/adverts
func (s *Server) CreateAdvert(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req advertRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	advert, err := s.advertService.CreateAdvert(ctx, service.CreateAdvertInput{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Color:        req.Color,
		Size:         req.Size,
		Gender:       req.Gender,
		Phone:        req.Phone,
		IsChildCloth: req.IsChildCloth,
		IsFree:       req.IsFree,
		IsUsed:       req.IsUsed,
		CategorySlug: req.Category,
		ImageURLs:    req.ImageURLs,
		City:         req.City,
		LocationNote: req.LocationNote,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(advert)
}

// GetRecentAdverts handles GET /api/adverts
func (s *Server) GetRecentAdverts(c *fiber.Ctx) error {
	ctx := c.Context()
	limit := c.QueryInt("limit", 0)
	userID, _ := s.optionalUserID(c)

	adverts, err := s.advertService.ListRecent(ctx, limit, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(adverts)
}

// GetAdvert handles GET /api/adverts/:id
func (s *Server) GetAdvert(c *fiber.Ctx) error {
	ctx := c.Context()
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, _ := s.optionalUserID(c)

	advert, err := s.advertService.GetAdvert(ctx, id, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(advert)
}

// GetUserAdverts handles GET /api/users/:id/adverts
func (s *Server) GetUserAdverts(c *fiber.Ctx) error {
	ctx := c.Context()
	userIDParam, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	page := parsePagination(c, 20)
	currentUserID, _ := s.optionalUserID(c)

	adverts, err := s.advertService.GetUserAdverts(ctx, userIDParam, page.Limit, page.Offset, currentUserID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(adverts)
}

// UpdateAdvert handles PUT /api/adverts/:id
func (s *Server) UpdateAdvert(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	advertID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req advertRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	advert, err := s.advertService.UpdateAdvert(ctx, service.UpdateAdvertInput{
		UserID:       userID,
		AdvertID:     advertID,
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Color:        req.Color,
		Size:         req.Size,
		Gender:       req.Gender,
		Phone:        req.Phone,
		IsChildCloth: req.IsChildCloth,
		IsFree:       req.IsFree,
		IsUsed:       req.IsUsed,
		CategorySlug: req.Category,
		ImageURLs:    req.ImageURLs,
		City:         req.City,
		LocationNote: req.LocationNote,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(advert)
}

// DeleteAdvert handles DELETE /api/adverts/:id
func (s *Server) DeleteAdvert(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	advertID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.advertService.DeleteAdvert(ctx, service.DeleteAdvertInput{
		UserID:   userID,
		AdvertID: advertID,
	}); err != nil {
		return respondServiceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// SaveAdvert handles POST /api/adverts/:id/save
func (s *Server) SaveAdvert(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	advertID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	advert, err := s.advertService.SaveAdvert(ctx, userID, advertID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(advert)
}

// UnsaveAdvert handles DELETE /api/adverts/:id/save
func (s *Server) UnsaveAdvert(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	advertID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	advert, err := s.advertService.UnsaveAdvert(ctx, userID, advertID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(advert)
}

// IsAdvertSaved handles GET /api/adverts/:id/saved
func (s *Server) IsAdvertSaved(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	// An id that cannot name an advert answers false, same as an advert
	// that does not exist.
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.JSON(fiber.Map{"saved": false})
	}

	saved, err := s.advertService.IsSaved(ctx, userID, uint(id))
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"saved": saved})
}

// GetSavedAdverts handles GET /api/adverts/saved
func (s *Server) GetSavedAdverts(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	page := parsePagination(c, 20)

	adverts, err := s.advertService.ListSaved(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(adverts)
}
