package repository

import (
	"context"
	"errors"

	"gardrop/internal/cache"
	"gardrop/internal/models"

	"gorm.io/gorm"
)

// AdvertRepository defines the interface for advert data operations
type AdvertRepository interface {
	Create(ctx context.Context, advert *models.Advert) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Advert, error)
	GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Advert, error)
	ListRecent(ctx context.Context, limit int, currentUserID uint) ([]*models.Advert, error)
	Update(ctx context.Context, advert *models.Advert, images []models.AdvertImage, replaceImages bool) error
	Delete(ctx context.Context, id uint) error
	Save(ctx context.Context, userID, advertID uint) error
	Unsave(ctx context.Context, userID, advertID uint) error
	IsSaved(ctx context.Context, userID, advertID uint) (bool, error)
	ListSavedByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Advert, error)
}

// advertRepository implements AdvertRepository
type advertRepository struct {
	db *gorm.DB
}

// NewAdvertRepository creates a new advert repository
func NewAdvertRepository(db *gorm.DB) AdvertRepository {
	return &advertRepository{db: db}
}

func (r *advertRepository) Create(ctx context.Context, advert *models.Advert) error {
	// Images and location are created as associations in the same transaction.
	err := r.db.WithContext(ctx).Create(advert).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateRecent(ctx)
	return nil
}

func (r *advertRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Advert, error) {
	var advert models.Advert
	key := cache.AdvertKey(id)

	var err error
	if currentUserID == 0 {
		err = cache.Aside(ctx, key, &advert, cache.AdvertTTL, func() error {
			return r.fetchByID(ctx, &advert, id, 0)
		})
	} else {
		err = r.fetchByID(ctx, &advert, id, currentUserID)
	}

	if err != nil {
		return nil, err
	}
	return &advert, nil
}

func (r *advertRepository) fetchByID(ctx context.Context, advert *models.Advert, id uint, currentUserID uint) error {
	err := r.applyAdvertDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Location").
		First(advert, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Advert", id)
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *advertRepository) GetByUserID(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Advert, error) {
	var adverts []*models.Advert
	err := r.applyAdvertDetails(r.db.WithContext(ctx), currentUserID).
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Location").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&adverts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return adverts, nil
}

func (r *advertRepository) ListRecent(ctx context.Context, limit int, currentUserID uint) ([]*models.Advert, error) {
	var adverts []*models.Advert

	fetch := func() error {
		return r.applyAdvertDetails(r.db.WithContext(ctx), currentUserID).
			Preload("User").
			Preload("Category").
			Preload("Images", func(db *gorm.DB) *gorm.DB {
				return db.Order("position ASC")
			}).
			Preload("Location").
			Order("created_at DESC").
			Limit(limit).
			Find(&adverts).Error
	}

	var err error
	if currentUserID == 0 {
		err = cache.Aside(ctx, cache.RecentAdvertsKey(limit), &adverts, cache.RecentTTL, fetch)
	} else {
		err = fetch()
	}

	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return adverts, nil
}

// applyAdvertDetails adds the saved status subquery so a single query answers
// whether the requesting user has saved each advert.
func (r *advertRepository) applyAdvertDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	if currentUserID != 0 {
		return db.Select("adverts.*, EXISTS(SELECT 1 FROM advert_saves WHERE advert_saves.advert_id = adverts.id AND advert_saves.user_id = ?) as saved", currentUserID)
	}
	return db.Select("adverts.*, false as saved")
}

func (r *advertRepository) Update(ctx context.Context, advert *models.Advert, images []models.AdvertImage, replaceImages bool) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// saved_count only ever moves together with its advert_saves row;
		// writing the value read before this transaction would rewind
		// concurrent saves.
		if err := tx.Omit("Images", "Location", "User", "Category", "SavedCount", "CreatedAt").Save(advert).Error; err != nil {
			return err
		}
		if replaceImages {
			if err := tx.Where("advert_id = ?", advert.ID).Delete(&models.AdvertImage{}).Error; err != nil {
				return err
			}
			for i := range images {
				images[i].ID = 0
				images[i].AdvertID = advert.ID
			}
			if len(images) > 0 {
				if err := tx.Create(&images).Error; err != nil {
					return err
				}
			}
		}
		// The location row always mirrors the edit: a nil Location clears it.
		if err := tx.Where("advert_id = ?", advert.ID).Delete(&models.Location{}).Error; err != nil {
			return err
		}
		if advert.Location != nil {
			loc := *advert.Location
			loc.ID = 0
			loc.AdvertID = advert.ID
			if err := tx.Create(&loc).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateAdvert(ctx, advert.ID)
	return nil
}

func (r *advertRepository) Delete(ctx context.Context, id uint) error {
	// Dependent rows go first so the advert never points at orphans.
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("advert_id = ?", id).Delete(&models.AdvertImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("advert_id = ?", id).Delete(&models.Location{}).Error; err != nil {
			return err
		}
		if err := tx.Where("advert_id = ?", id).Delete(&models.AdvertSave{}).Error; err != nil {
			return err
		}
		if err := tx.Exec(
			"DELETE FROM answers WHERE question_id IN (SELECT id FROM questions WHERE advert_id = ?)", id,
		).Error; err != nil {
			return err
		}
		if err := tx.Where("advert_id = ?", id).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Advert{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateAdvert(ctx, id)
	return nil
}

func (r *advertRepository) Save(ctx context.Context, userID, advertID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// ON CONFLICT DO NOTHING keeps concurrent double-saves from racing;
		// RowsAffected tells us whether this call actually inserted.
		result := tx.Exec(
			`INSERT INTO advert_saves (user_id, advert_id, created_at)
			 VALUES (?, ?, NOW())
			 ON CONFLICT (user_id, advert_id) DO NOTHING`,
			userID, advertID,
		)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.NewConflictError("Advert already saved")
		}
		return tx.Model(&models.Advert{}).
			Where("id = ?", advertID).
			UpdateColumn("saved_count", gorm.Expr("saved_count + 1")).Error
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateAdvert(ctx, advertID)
	return nil
}

func (r *advertRepository) Unsave(ctx context.Context, userID, advertID uint) error {
	removed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND advert_id = ?", userID, advertID).Delete(&models.AdvertSave{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Unsaving an advert that was never saved is a no-op.
			return nil
		}
		removed = true
		return tx.Model(&models.Advert{}).
			Where("id = ?", advertID).
			UpdateColumn("saved_count", gorm.Expr("GREATEST(saved_count - 1, 0)")).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	if removed {
		cache.InvalidateAdvert(ctx, advertID)
	}
	return nil
}

func (r *advertRepository) IsSaved(ctx context.Context, userID, advertID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.AdvertSave{}).
		Where("user_id = ? AND advert_id = ?", userID, advertID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *advertRepository) ListSavedByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Advert, error) {
	var adverts []*models.Advert
	err := r.db.WithContext(ctx).
		Select("adverts.*, true as saved").
		Joins("JOIN advert_saves ON advert_saves.advert_id = adverts.id").
		Where("advert_saves.user_id = ?", userID).
		Preload("User").
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Location").
		Order("advert_saves.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&adverts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return adverts, nil
}
