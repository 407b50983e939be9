package admin

import (
	"encoding/json"
	"errors"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/garantico/feedsite/internal/db/controller/product"
	"github.com/garantico/feedsite/internal/db/models"
	"github.com/garantico/feedsite/internal/media"
	"github.com/garantico/feedsite/internal/web/handler"
)

// productRequest is the create/update body for a product.
type productRequest struct {
	CategoryID *uint64 `json:"categoryId"`
	Slug       string  `json:"slug" validate:"required,max=255"`

	NameTr string `json:"nameTr" validate:"required,max=255"`
	NameEn string `json:"nameEn" validate:"required,max=255"`
	NameRu string `json:"nameRu" validate:"max=255"`
	NameFa string `json:"nameFa" validate:"max=255"`
	NameAz string `json:"nameAz" validate:"max=255"`
	NameAr string `json:"nameAr" validate:"max=255"`

	DescriptionTr string `json:"descriptionTr"`
	DescriptionEn string `json:"descriptionEn"`
	DescriptionRu string `json:"descriptionRu"`
	DescriptionFa string `json:"descriptionFa"`
	DescriptionAz string `json:"descriptionAz"`
	DescriptionAr string `json:"descriptionAr"`

	Specifications   json.RawMessage `json:"specifications"`
	PackagingOptions json.RawMessage `json:"packagingOptions"`
	Certificates     json.RawMessage `json:"certificates"`

	ProteinMin  string `json:"proteinMin" validate:"max=16"`
	AshMax      string `json:"ashMax" validate:"max=16"`
	MoistureMax string `json:"moistureMax" validate:"max=16"`

	Featured bool `json:"featured"`
	Active   bool `json:"active"`
}

func (r *productRequest) toModel() *models.Product {
	return &models.Product{
		CategoryID:       r.CategoryID,
		Slug:             r.Slug,
		NameTr:           r.NameTr,
		NameEn:           r.NameEn,
		NameRu:           r.NameRu,
		NameFa:           r.NameFa,
		NameAz:           r.NameAz,
		NameAr:           r.NameAr,
		DescriptionTr:    r.DescriptionTr,
		DescriptionEn:    r.DescriptionEn,
		DescriptionRu:    r.DescriptionRu,
		DescriptionFa:    r.DescriptionFa,
		DescriptionAz:    r.DescriptionAz,
		DescriptionAr:    r.DescriptionAr,
		Specifications:   []byte(r.Specifications),
		PackagingOptions: []byte(r.PackagingOptions),
		Certificates:     []byte(r.Certificates),
		ProteinMin:       r.ProteinMin,
		AshMax:           r.AshMax,
		MoistureMax:      r.MoistureMax,
		Featured:         r.Featured,
		Active:           r.Active,
	}
}

// ListProducts returns every product, inactive ones included.
func (s *Service) ListProducts(c *fiber.Ctx) error {
	products, err := product.ListAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list products")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return handler.JSONData(c, products)
}

// CreateProduct creates a product. A taken slug answers 400.
func (s *Service) CreateProduct(c *fiber.Ctx) error {
	req := new(productRequest)
	if err := c.BodyParser(req); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := s.validator.Struct(req); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	p := req.toModel()
	if err := product.Create(s.db, p); err != nil {
		switch {
		case errors.Is(err, product.ErrSlugExists):
			return handler.JSONError(c, fiber.StatusBadRequest, "A product with this slug already exists")
		case errors.Is(err, product.ErrSlugEmpty):
			return handler.JSONError(c, fiber.StatusBadRequest, "Slug is required")
		default:
			log.Error().Err(err).Msg("failed to create product")
			return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
		}
	}

	log.Info().Uint64("id", p.ID).Str("slug", p.Slug).Msg("product created")

	return handler.JSONCreated(c, p)
}

// UpdateProduct updates a product. The slug is immutable.
func (s *Service) UpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return handler.JSONError(c, fiber.StatusBadRequest, "Invalid product id")
	}

	req := new(productRequest)
	if err := c.BodyParser(req); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := s.validator.Struct(req); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, validationMessage(err))
	}

	if err := product.Update(s.db, uint64(id), req.toModel()); err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			return handler.JSONError(c, fiber.StatusNotFound, "Product not found")
		}

		log.Error().Err(err).Msg("failed to update product")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return handler.JSONMessage(c, "Product updated")
}

// DeleteProduct deactivates a product. Rows are kept so existing inquiries
// keep their product reference.
func (s *Service) DeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return handler.JSONError(c, fiber.StatusBadRequest, "Invalid product id")
	}

	if err := product.SoftDelete(s.db, uint64(id)); err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			return handler.JSONError(c, fiber.StatusNotFound, "Product not found")
		}

		log.Error().Err(err).Msg("failed to delete product")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return handler.JSONMessage(c, "Product deleted")
}

// UploadProductImage stores an uploaded image and points the product at it.
func (s *Service) UploadProductImage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return handler.JSONError(c, fiber.StatusBadRequest, "Invalid product id")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "No file provided")
	}

	filename, err := media.ImageFilename(fileHeader.Filename)
	if err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "Invalid file type")
	}

	if err := c.SaveFile(fileHeader, filepath.Join(s.cfg.Site.UploadDir, filename)); err != nil {
		log.Error().Err(err).Msg("failed to save uploaded product image")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	imageURL := media.URLPath(filename)
	if err := product.SetImage(s.db, uint64(id), imageURL); err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			return handler.JSONError(c, fiber.StatusNotFound, "Product not found")
		}

		log.Error().Err(err).Msg("failed to set product image")
		return handler.JSONError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	return handler.JSONData(c, fiber.Map{"imageUrl": imageURL})
}
