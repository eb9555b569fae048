package seed

import (
	"fmt"

	"gardrop/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BuiltInCategory is a permanent system category.
type BuiltInCategory struct {
	Name string
	Slug string
}

// BuiltInCategories defines the permanent clothing categories. The "clothing"
// slug is the configured default landing category for new adverts.
var BuiltInCategories = []BuiltInCategory{
	{Name: "Clothing", Slug: "clothing"},
	{Name: "Tops", Slug: "tops"},
	{Name: "T-Shirts", Slug: "t-shirts"},
	{Name: "Shirts", Slug: "shirts"},
	{Name: "Trousers", Slug: "trousers"},
	{Name: "Jeans", Slug: "jeans"},
	{Name: "Dresses", Slug: "dresses"},
	{Name: "Skirts", Slug: "skirts"},
	{Name: "Outerwear", Slug: "outerwear"},
	{Name: "Knitwear", Slug: "knitwear"},
	{Name: "Shoes", Slug: "shoes"},
	{Name: "Accessories", Slug: "accessories"},
	{Name: "Kids", Slug: "kids"},
	{Name: "Sportswear", Slug: "sportswear"},
}

// Categories seeds the permanent built-in categories. Safe to run repeatedly.
func Categories(db *gorm.DB) error {
	for _, item := range BuiltInCategories {
		category := models.Category{
			Name: item.Name,
			Slug: item.Slug,
		}

		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"name"}),
		}).Create(&category).Error; err != nil {
			return fmt.Errorf("seed built-in category %s: %w", item.Slug, err)
		}
	}
	return nil
}
