// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"gardrop/internal/models"
)

const (
	// MaxDescriptionLen bounds advert descriptions and question/answer content.
	MaxDescriptionLen = 500
	// MaxTitleLen bounds advert titles.
	MaxTitleLen = 120
)

var validSizes = map[string]struct{}{
	models.SizeXS:  {},
	models.SizeS:   {},
	models.SizeM:   {},
	models.SizeL:   {},
	models.SizeXL:  {},
	models.SizeXXL: {},
}

var validGenders = map[string]struct{}{
	models.GenderMale:   {},
	models.GenderFemale: {},
}

// ValidateSize checks the size against the closed enumeration xs..xxl.
func ValidateSize(size string) error {
	if _, ok := validSizes[size]; !ok {
		return fmt.Errorf("size must be one of xs, s, m, l, xl, xxl")
	}
	return nil
}

// ValidateGender checks the gender against the closed enumeration.
func ValidateGender(gender string) error {
	if _, ok := validGenders[gender]; !ok {
		return fmt.Errorf("gender must be either male or female")
	}
	return nil
}

// AdvertInput holds the validatable fields shared by create and edit.
type AdvertInput struct {
	Title       string
	Description string
	Price       float64
	Size        string
	Gender      string
	Color       string
	Phone       string
	IsFree      bool
}

// ValidateAdvert checks all field constraints. It never touches the store;
// callers must resolve validation before issuing any database call.
func ValidateAdvert(in AdvertInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("title is required")
	}
	// Limits count characters, not bytes; Turkish text is routinely multibyte.
	if utf8.RuneCountInString(in.Title) > MaxTitleLen {
		return fmt.Errorf("title too long (max %d characters)", MaxTitleLen)
	}
	if utf8.RuneCountInString(in.Description) > MaxDescriptionLen {
		return fmt.Errorf("description too long (max %d characters)", MaxDescriptionLen)
	}
	if err := ValidateSize(in.Size); err != nil {
		return err
	}
	if err := ValidateGender(in.Gender); err != nil {
		return err
	}
	if strings.TrimSpace(in.Color) == "" {
		return fmt.Errorf("color is required")
	}
	if strings.TrimSpace(in.Phone) == "" {
		return fmt.Errorf("phone is required")
	}
	if !in.IsFree && in.Price <= 0 {
		return fmt.Errorf("price must be positive for non-free adverts")
	}
	return nil
}

// ValidateContent checks question/answer content constraints.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content is required")
	}
	if utf8.RuneCountInString(content) > MaxDescriptionLen {
		return fmt.Errorf("content too long (max %d characters)", MaxDescriptionLen)
	}
	return nil
}
