// Package inquiry provides operations for product inquiries submitted
// through the public quote form.
package inquiry

import (
	"errors"

	"gorm.io/gorm"

	"github.com/garantico/feedsite/internal/db/models"
	"github.com/garantico/feedsite/internal/i18n"
)

var (
	// ErrInquiryNotFound is returned when an inquiry is not found.
	ErrInquiryNotFound = errors.New("inquiry not found")
	// ErrInvalidStatus is returned for status values outside the workflow enum.
	ErrInvalidStatus = errors.New("invalid inquiry status")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Create stores a new inquiry. The status always starts as pending and the
// language is normalized to a supported locale.
func Create(db *gorm.DB, inq *models.ProductInquiry) error {
	if db == nil {
		return ErrDBNil
	}

	inq.Status = models.InquiryStatusPending
	inq.Language = i18n.Normalize(inq.Language)

	return db.Create(inq).Error
}

// List returns inquiries newest first, optionally filtered by status.
// An empty filter or "all" returns everything.
func List(db *gorm.DB, status string) ([]models.ProductInquiry, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	query := db.Preload("Product").Order("created_at DESC")
	if status != "" && status != "all" {
		if !models.ValidInquiryStatus(status) {
			return nil, ErrInvalidStatus
		}

		query = query.Where("status = ?", status)
	}

	var inquiries []models.ProductInquiry
	result := query.Find(&inquiries)
	if result.Error != nil {
		return nil, result.Error
	}

	return inquiries, nil
}

// UpdateStatus transitions an inquiry to a new workflow status.
func UpdateStatus(db *gorm.DB, id uint64, status string) error {
	if db == nil {
		return ErrDBNil
	}
	if !models.ValidInquiryStatus(status) {
		return ErrInvalidStatus
	}

	result := db.Model(&models.ProductInquiry{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInquiryNotFound
	}

	return nil
}
