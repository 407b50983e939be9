// Package category provides CRUD operations for product categories.
package category

import (
	"errors"

	"gorm.io/gorm"

	"github.com/garantico/feedsite/internal/db/models"
)

var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrSlugExists is returned when creating a category with a taken slug.
	ErrSlugExists = errors.New("category slug already exists")
	// ErrSlugEmpty is returned when a category has no slug.
	ErrSlugEmpty = errors.New("category slug cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// List returns all categories in display order.
func List(db *gorm.DB) ([]models.Category, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var categories []models.Category
	result := db.Order("display_order ASC, id ASC").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}

// Create inserts a new category. A duplicate slug fails with ErrSlugExists.
func Create(db *gorm.DB, c *models.Category) error {
	if db == nil {
		return ErrDBNil
	}
	if c.Slug == "" {
		return ErrSlugEmpty
	}

	var count int64
	if err := db.Model(&models.Category{}).Where("slug = ?", c.Slug).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrSlugExists
	}

	return db.Create(c).Error
}

// Update applies editable fields to the category with the given id.
func Update(db *gorm.DB, id uint64, src *models.Category) error {
	if db == nil {
		return ErrDBNil
	}

	var existing models.Category
	result := db.First(&existing, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return result.Error
	}

	existing.NameTr = src.NameTr
	existing.NameEn = src.NameEn
	existing.Order = src.Order
	existing.Featured = src.Featured

	return db.Save(&existing).Error
}
