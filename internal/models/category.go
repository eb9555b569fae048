package models

// Category is static reference data; every advert references exactly one.
// Categories are seeded at bootstrap and never mutated through the API.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
	Slug string `gorm:"unique;not null" json:"slug"`
}
