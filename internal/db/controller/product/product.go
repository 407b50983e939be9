// Package product provides CRUD operations for products.
package product

import (
	"errors"

	"gorm.io/gorm"

	"github.com/garantico/feedsite/internal/db/models"
)

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrSlugExists is returned when creating or updating a product with a slug
	// that is already taken.
	ErrSlugExists = errors.New("product slug already exists")
	// ErrSlugEmpty is returned when a product has no slug.
	ErrSlugEmpty = errors.New("product slug cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// ListActive returns all active products, featured first, for the storefront.
// The category association is preloaded.
func ListActive(db *gorm.DB) ([]models.Product, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var products []models.Product
	result := db.Preload("Category").
		Where("active = ?", true).
		Order("featured DESC, id ASC").
		Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}

	return products, nil
}

// ListAll returns every product including deactivated ones, for the admin panel.
func ListAll(db *gorm.DB) ([]models.Product, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var products []models.Product
	result := db.Preload("Category").Order("id ASC").Find(&products)
	if result.Error != nil {
		return nil, result.Error
	}

	return products, nil
}

// GetBySlug returns an active product by its slug.
func GetBySlug(db *gorm.DB, slug string) (*models.Product, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if slug == "" {
		return nil, ErrSlugEmpty
	}

	var product models.Product
	result := db.Preload("Category").
		Where("slug = ? AND active = ?", slug, true).
		First(&product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, result.Error
	}

	return &product, nil
}

// GetByID returns a product by id, regardless of its active flag.
func GetByID(db *gorm.DB, id uint64) (*models.Product, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var product models.Product
	result := db.First(&product, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, result.Error
	}

	return &product, nil
}

// Create inserts a new product. A duplicate slug fails with ErrSlugExists and
// leaves the table untouched.
func Create(db *gorm.DB, p *models.Product) error {
	if db == nil {
		return ErrDBNil
	}
	if p.Slug == "" {
		return ErrSlugEmpty
	}

	var count int64
	if err := db.Model(&models.Product{}).Where("slug = ?", p.Slug).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrSlugExists
	}

	p.Active = true

	return db.Create(p).Error
}

// Update applies editable fields of src to the product with the given id.
// The slug is immutable after creation.
func Update(db *gorm.DB, id uint64, src *models.Product) error {
	if db == nil {
		return ErrDBNil
	}

	existing, err := GetByID(db, id)
	if err != nil {
		return err
	}

	existing.CategoryID = src.CategoryID
	existing.NameTr = src.NameTr
	existing.NameEn = src.NameEn
	existing.NameRu = src.NameRu
	existing.NameFa = src.NameFa
	existing.NameAz = src.NameAz
	existing.NameAr = src.NameAr
	existing.DescriptionTr = src.DescriptionTr
	existing.DescriptionEn = src.DescriptionEn
	existing.DescriptionRu = src.DescriptionRu
	existing.DescriptionFa = src.DescriptionFa
	existing.DescriptionAz = src.DescriptionAz
	existing.DescriptionAr = src.DescriptionAr
	existing.Specifications = src.Specifications
	existing.PackagingOptions = src.PackagingOptions
	existing.Certificates = src.Certificates
	existing.ProteinMin = src.ProteinMin
	existing.AshMax = src.AshMax
	existing.MoistureMax = src.MoistureMax
	existing.Featured = src.Featured
	existing.Active = src.Active

	return db.Save(existing).Error
}

// SetImage stores the uploaded image URL on a product.
func SetImage(db *gorm.DB, id uint64, imageURL string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Model(&models.Product{}).Where("id = ?", id).Update("image_url", imageURL)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// SoftDelete deactivates a product. It disappears from the storefront but
// stays visible in the admin listing.
func SoftDelete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Model(&models.Product{}).Where("id = ?", id).Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}

	return nil
}
