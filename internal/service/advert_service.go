// Package service contains the business logic between handlers and repositories.
package service

import (
	"context"
	"strings"

	"gardrop/internal/models"
	"gardrop/internal/observability"
	"gardrop/internal/repository"
	"gardrop/internal/validation"
)

type AdvertService struct {
	advertRepo   repository.AdvertRepository
	categoryRepo repository.CategoryRepository

	// defaultCategory is the slug adverts land in when no category is given.
	defaultCategory     string
	placeholderImageURL string
	recentPageSize      int
}

type CreateAdvertInput struct {
	UserID       uint
	Title        string
	Description  string
	Price        float64
	Color        string
	Size         string
	Gender       string
	Phone        string
	IsChildCloth bool
	IsFree       bool
	IsUsed       bool
	CategorySlug string
	ImageURLs    []string
	City         string
	LocationNote string
}

type UpdateAdvertInput struct {
	UserID       uint
	AdvertID     uint
	Title        string
	Description  string
	Price        float64
	Color        string
	Size         string
	Gender       string
	Phone        string
	IsChildCloth bool
	IsFree       bool
	IsUsed       bool
	CategorySlug string

	// ImageURLs replaces the advert's image set when non-nil.
	ImageURLs    []string
	City         string
	LocationNote string
}

type DeleteAdvertInput struct {
	UserID   uint
	AdvertID uint
}

func NewAdvertService(
	advertRepo repository.AdvertRepository,
	categoryRepo repository.CategoryRepository,
	defaultCategory string,
	placeholderImageURL string,
	recentPageSize int,
) *AdvertService {
	return &AdvertService{
		advertRepo:          advertRepo,
		categoryRepo:        categoryRepo,
		defaultCategory:     defaultCategory,
		placeholderImageURL: placeholderImageURL,
		recentPageSize:      recentPageSize,
	}
}

func (s *AdvertService) CreateAdvert(ctx context.Context, in CreateAdvertInput) (*models.Advert, error) {
	if in.IsFree {
		in.Price = 0
	}
	if err := validation.ValidateAdvert(validation.AdvertInput{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Size:        in.Size,
		Gender:      in.Gender,
		Color:       in.Color,
		Phone:       in.Phone,
		IsFree:      in.IsFree,
	}); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	category, err := s.resolveCategory(ctx, in.CategorySlug)
	if err != nil {
		return nil, err
	}

	advert := &models.Advert{
		Title:        strings.TrimSpace(in.Title),
		Description:  in.Description,
		Price:        in.Price,
		Color:        in.Color,
		Size:         in.Size,
		Gender:       in.Gender,
		Phone:        in.Phone,
		IsChildCloth: in.IsChildCloth,
		IsFree:       in.IsFree,
		IsUsed:       in.IsUsed,
		UserID:       in.UserID,
		CategoryID:   category.ID,
		Images:       s.buildImages(in.ImageURLs),
	}
	if strings.TrimSpace(in.City) != "" {
		advert.Location = &models.Location{
			City:   strings.TrimSpace(in.City),
			Detail: in.LocationNote,
		}
	}

	if err := s.advertRepo.Create(ctx, advert); err != nil {
		return nil, err
	}
	return s.advertRepo.GetByID(ctx, advert.ID, in.UserID)
}

// buildImages turns the ordered URL list into image rows. An empty list gets
// the placeholder so every advert renders with a cover image.
func (s *AdvertService) buildImages(urls []string) []models.AdvertImage {
	var clean []string
	for _, u := range urls {
		if strings.TrimSpace(u) != "" {
			clean = append(clean, strings.TrimSpace(u))
		}
	}
	if len(clean) == 0 {
		clean = []string{s.placeholderImageURL}
	}
	images := make([]models.AdvertImage, len(clean))
	for i, u := range clean {
		images[i] = models.AdvertImage{URL: u, Position: i}
	}
	return images
}

func (s *AdvertService) resolveCategory(ctx context.Context, slug string) (*models.Category, error) {
	if slug == "" {
		slug = s.defaultCategory
	}
	return s.categoryRepo.GetBySlug(ctx, slug)
}

func (s *AdvertService) GetAdvert(ctx context.Context, id uint, currentUserID uint) (*models.Advert, error) {
	return s.advertRepo.GetByID(ctx, id, currentUserID)
}

func (s *AdvertService) ListRecent(ctx context.Context, limit int, currentUserID uint) ([]*models.Advert, error) {
	if limit <= 0 || limit > s.recentPageSize {
		limit = s.recentPageSize
	}
	return s.advertRepo.ListRecent(ctx, limit, currentUserID)
}

func (s *AdvertService) GetUserAdverts(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Advert, error) {
	return s.advertRepo.GetByUserID(ctx, userID, limit, offset, currentUserID)
}

func (s *AdvertService) UpdateAdvert(ctx context.Context, in UpdateAdvertInput) (*models.Advert, error) {
	advert, err := s.advertRepo.GetByID(ctx, in.AdvertID, in.UserID)
	if err != nil {
		return nil, err
	}
	if advert.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only update your own adverts")
	}

	if in.IsFree {
		in.Price = 0
	}
	if err := validation.ValidateAdvert(validation.AdvertInput{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Size:        in.Size,
		Gender:      in.Gender,
		Color:       in.Color,
		Phone:       in.Phone,
		IsFree:      in.IsFree,
	}); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if in.CategorySlug != "" {
		category, err := s.categoryRepo.GetBySlug(ctx, in.CategorySlug)
		if err != nil {
			return nil, err
		}
		advert.CategoryID = category.ID
	}

	advert.Title = strings.TrimSpace(in.Title)
	advert.Description = in.Description
	advert.Price = in.Price
	advert.Color = in.Color
	advert.Size = in.Size
	advert.Gender = in.Gender
	advert.Phone = in.Phone
	advert.IsChildCloth = in.IsChildCloth
	advert.IsFree = in.IsFree
	advert.IsUsed = in.IsUsed

	var images []models.AdvertImage
	replaceImages := in.ImageURLs != nil
	if replaceImages {
		images = s.buildImages(in.ImageURLs)
	}
	if strings.TrimSpace(in.City) != "" {
		advert.Location = &models.Location{
			City:   strings.TrimSpace(in.City),
			Detail: in.LocationNote,
		}
	} else {
		advert.Location = nil
	}

	if err := s.advertRepo.Update(ctx, advert, images, replaceImages); err != nil {
		return nil, err
	}
	return s.advertRepo.GetByID(ctx, in.AdvertID, in.UserID)
}

func (s *AdvertService) DeleteAdvert(ctx context.Context, in DeleteAdvertInput) error {
	advert, err := s.advertRepo.GetByID(ctx, in.AdvertID, in.UserID)
	if err != nil {
		return err
	}
	if advert.UserID != in.UserID {
		return models.NewUnauthorizedError("You can only delete your own adverts")
	}
	return s.advertRepo.Delete(ctx, in.AdvertID)
}

func (s *AdvertService) SaveAdvert(ctx context.Context, userID, advertID uint) (*models.Advert, error) {
	advert, err := s.advertRepo.GetByID(ctx, advertID, userID)
	if err != nil {
		return nil, err
	}
	if advert.UserID == userID {
		return nil, models.NewValidationError("You cannot save your own advert")
	}
	if err := s.advertRepo.Save(ctx, userID, advertID); err != nil {
		return nil, err
	}
	observability.AdvertSaves.WithLabelValues("save").Inc()
	return s.advertRepo.GetByID(ctx, advertID, userID)
}

func (s *AdvertService) UnsaveAdvert(ctx context.Context, userID, advertID uint) (*models.Advert, error) {
	if _, err := s.advertRepo.GetByID(ctx, advertID, userID); err != nil {
		return nil, err
	}
	if err := s.advertRepo.Unsave(ctx, userID, advertID); err != nil {
		return nil, err
	}
	observability.AdvertSaves.WithLabelValues("unsave").Inc()
	return s.advertRepo.GetByID(ctx, advertID, userID)
}

func (s *AdvertService) IsSaved(ctx context.Context, userID, advertID uint) (bool, error) {
	return s.advertRepo.IsSaved(ctx, userID, advertID)
}

func (s *AdvertService) ListSaved(ctx context.Context, userID uint, limit, offset int) ([]*models.Advert, error) {
	return s.advertRepo.ListSavedByUser(ctx, userID, limit, offset)
}
