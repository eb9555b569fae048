package models

import "time"

// AdvertSave records that a user bookmarked an advert.
// Row existence is the source of truth for "saved"; Advert.SavedCount is a
// cached derivative. The combination of UserID and AdvertID must be unique.
type AdvertSave struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_advert_user_save" json:"user_id"`
	AdvertID  uint      `gorm:"not null;uniqueIndex:idx_advert_user_save" json:"advert_id"`
	CreatedAt time.Time `json:"created_at"`

	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Advert Advert `gorm:"foreignKey:AdvertID" json:"advert,omitempty"`
}
