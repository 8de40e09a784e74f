package service

import (
	"time"

	"github.com/google/uuid"

	"goatgrids/internal/dto"
	"goatgrids/internal/model"
	"goatgrids/internal/repository"
)

// ProductFields carries the multipart form fields of a product create or
// update; nil pointers are left untouched on update.
type ProductFields struct {
	Name        *string
	Tag         *string
	TagIcon     *string
	Description *string
	Price       *float64
	Image       *string
	Specs       *[]string
	Badge       *string
	BadgeType   *string
	InStock     *bool
}

type CatalogService interface {
	Products() ([]model.Product, error)
	Product(id string) (*model.Product, error)
	CreateProduct(fields *ProductFields) (*model.Product, error)
	UpdateProduct(id string, fields *ProductFields) (*model.Product, error)
	DeleteProduct(id string) (*model.Product, error)
	ToggleStock(id string) (*model.Product, error)

	Gallery() ([]model.GalleryImage, error)
	AddGalleryImage(imagePath, alt string) (*model.GalleryImage, error)
	ReorderGallery(req *dto.ReorderRequest) ([]model.GalleryImage, error)
	UpdateGalleryAlt(id, alt string) (*model.GalleryImage, error)
	DeleteGalleryImage(id string) (*model.GalleryImage, error)
}

type catalogServiceImpl struct {
	products repository.ProductRepository
	gallery  repository.GalleryRepository
}

func NewCatalogService(products repository.ProductRepository, gallery repository.GalleryRepository) CatalogService {
	return &catalogServiceImpl{
		products: products,
		gallery:  gallery,
	}
}

func (s *catalogServiceImpl) Products() ([]model.Product, error) {
	return s.products.All()
}

func (s *catalogServiceImpl) Product(id string) (*model.Product, error) {
	return s.products.FindByID(id)
}

func (s *catalogServiceImpl) CreateProduct(fields *ProductFields) (*model.Product, error) {
	product := &model.Product{
		ID:        uuid.NewString(),
		TagIcon:   "fas fa-star",
		Specs:     []string{},
		BadgeType: "bestseller",
		CreatedAt: time.Now().UTC(),
	}
	applyProductFields(product, fields)

	if product.Name == "" {
		return nil, Validationf("Product name required")
	}

	if err := s.products.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *catalogServiceImpl) UpdateProduct(id string, fields *ProductFields) (*model.Product, error) {
	return s.products.Update(id, func(product *model.Product) {
		applyProductFields(product, fields)
		now := time.Now().UTC()
		product.UpdatedAt = &now
	})
}

func (s *catalogServiceImpl) DeleteProduct(id string) (*model.Product, error) {
	return s.products.Delete(id)
}

func (s *catalogServiceImpl) ToggleStock(id string) (*model.Product, error) {
	return s.products.Update(id, func(product *model.Product) {
		product.InStock = !product.InStock
		now := time.Now().UTC()
		product.UpdatedAt = &now
	})
}

func applyProductFields(product *model.Product, fields *ProductFields) {
	if fields.Name != nil {
		product.Name = *fields.Name
	}
	if fields.Tag != nil {
		product.Tag = *fields.Tag
	}
	if fields.TagIcon != nil {
		product.TagIcon = *fields.TagIcon
	}
	if fields.Description != nil {
		product.Description = *fields.Description
	}
	if fields.Price != nil {
		product.Price = *fields.Price
	}
	if fields.Image != nil {
		product.Image = *fields.Image
	}
	if fields.Specs != nil {
		product.Specs = *fields.Specs
	}
	if fields.Badge != nil {
		product.Badge = *fields.Badge
	}
	if fields.BadgeType != nil {
		product.BadgeType = *fields.BadgeType
	}
	if fields.InStock != nil {
		product.InStock = *fields.InStock
	}
}

func (s *catalogServiceImpl) Gallery() ([]model.GalleryImage, error) {
	return s.gallery.All()
}

func (s *catalogServiceImpl) AddGalleryImage(imagePath, alt string) (*model.GalleryImage, error) {
	if imagePath == "" {
		return nil, Validationf("Image file required")
	}
	if alt == "" {
		alt = "Gallery image"
	}

	count, err := s.gallery.Count()
	if err != nil {
		return nil, err
	}

	image := &model.GalleryImage{
		ID:    uuid.NewString(),
		Image: imagePath,
		Alt:   alt,
		Order: count,
	}
	if err := s.gallery.Create(image); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *catalogServiceImpl) ReorderGallery(req *dto.ReorderRequest) ([]model.GalleryImage, error) {
	if req.Items == nil {
		return nil, Validationf("Items array required")
	}
	orders := make(map[string]int, len(req.Items))
	for _, item := range req.Items {
		orders[item.ID] = item.Order
	}
	return s.gallery.Reorder(orders)
}

func (s *catalogServiceImpl) UpdateGalleryAlt(id, alt string) (*model.GalleryImage, error) {
	return s.gallery.UpdateAlt(id, alt)
}

func (s *catalogServiceImpl) DeleteGalleryImage(id string) (*model.GalleryImage, error) {
	return s.gallery.Delete(id)
}
