// Package pagecontent provides CRUD operations for editable page content blocks.
package pagecontent

import (
	"errors"

	"gorm.io/gorm"

	"github.com/garantico/feedsite/internal/db/models"
)

var (
	// ErrContentNotFound is returned when a content block is not found.
	ErrContentNotFound = errors.New("page content not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// List returns all content blocks ordered by page and display order.
func List(db *gorm.DB) ([]models.PageContent, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var contents []models.PageContent
	result := db.Order("page ASC, display_order ASC, id ASC").Find(&contents)
	if result.Error != nil {
		return nil, result.Error
	}

	return contents, nil
}

// ListForPage returns the active content blocks of one page in display order.
func ListForPage(db *gorm.DB, page string) ([]models.PageContent, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var contents []models.PageContent
	result := db.Where("page = ? AND active = ?", page, true).
		Order("display_order ASC, id ASC").
		Find(&contents)
	if result.Error != nil {
		return nil, result.Error
	}

	return contents, nil
}

// Create inserts a new content block.
func Create(db *gorm.DB, c *models.PageContent) error {
	if db == nil {
		return ErrDBNil
	}

	if c.Type == "" {
		c.Type = models.ContentTypeText
	}

	return db.Create(c).Error
}

// Update applies the editable translation fields to a content block.
func Update(db *gorm.DB, id uint64, contentTr, contentEn string) error {
	if db == nil {
		return ErrDBNil
	}

	var existing models.PageContent
	result := db.First(&existing, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrContentNotFound
		}
		return result.Error
	}

	existing.ContentTr = contentTr
	existing.ContentEn = contentEn

	return db.Save(&existing).Error
}

// Delete removes a content block.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.PageContent{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrContentNotFound
	}

	return nil
}
