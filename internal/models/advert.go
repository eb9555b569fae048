// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Closed enumerations for advert attributes.
const (
	SizeXS  = "xs"
	SizeS   = "s"
	SizeM   = "m"
	SizeL   = "l"
	SizeXL  = "xl"
	SizeXXL = "xxl"

	GenderMale   = "male"
	GenderFemale = "female"
)

// Advert represents a clothing listing for sale or free giveaway.
type Advert struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"type:numeric(10,2)" json:"price"`
	Color       string  `gorm:"not null" json:"color"`
	Size        string  `gorm:"not null" json:"size"`
	Gender      string  `gorm:"not null" json:"gender"`
	Phone       string  `gorm:"not null" json:"phone"`

	IsChildCloth bool `json:"is_child_cloth"`
	IsFree       bool `json:"is_free"`
	IsUsed       bool `json:"is_used"`

	// SavedCount mirrors the number of advert_saves rows for this advert.
	// It is only ever mutated in the same transaction as the join row.
	SavedCount int `gorm:"not null;default:0" json:"saved_count"`

	UserID     uint     `gorm:"not null;index" json:"user_id"`
	User       User     `gorm:"foreignKey:UserID" json:"user"`
	CategoryID uint     `gorm:"not null;index" json:"category_id"`
	Category   Category `gorm:"foreignKey:CategoryID" json:"category"`

	Images   []AdvertImage `gorm:"foreignKey:AdvertID" json:"images"`
	Location *Location     `gorm:"foreignKey:AdvertID" json:"location,omitempty"`

	// Saved indicates whether the current requesting user saved this advert (computed)
	Saved bool `gorm:"->" json:"saved"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// AdvertImage is a photo attached to an advert. Position 0 is the cover image.
type AdvertImage struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	URL      string `gorm:"not null" json:"url"`
	AdvertID uint   `gorm:"not null;index" json:"advert_id"`
	Position int    `gorm:"not null;default:0" json:"position"`
}

// Location is the optional pickup location of an advert (at most one per advert).
type Location struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	City     string `gorm:"not null" json:"city"`
	Detail   string `json:"detail"`
	AdvertID uint   `gorm:"not null;uniqueIndex" json:"advert_id"`
}
