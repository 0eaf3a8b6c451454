package service

import (
	"errors"
	"mime/multipart"

	"go-storefront/internal/model"
	"go-storefront/internal/repository"
	"go-storefront/internal/ws"
	"go-storefront/pkg/storage"
	"go-storefront/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const sellerPageSize = 10

// ProductInput is the seller's create/update form (file parts handled
// separately).
type ProductInput struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CategoryID  uint            `json:"category_id" validate:"required"`
	Condition   model.Condition `json:"condition" validate:"required,oneof=new good used flawed"`
}

// SellerProductsPage is one page of the seller's management table
type SellerProductsPage struct {
	Products []model.Product `json:"products"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PerPage  int             `json:"per_page"`
}

type ProductService interface {
	ListOwned(sellerID uuid.UUID, search string, page int) (*SellerProductsPage, error)
	Create(sellerID uuid.UUID, input *ProductInput, image *multipart.FileHeader, gallery []*multipart.FileHeader) (*model.Product, error)
	Update(sellerID, productID uuid.UUID, input *ProductInput, image *multipart.FileHeader, gallery []*multipart.FileHeader) (*model.Product, error)
	Delete(sellerID, productID uuid.UUID) error
	ToggleStatus(sellerID, productID uuid.UUID) (*model.Product, error)
	DeleteGalleryImage(sellerID, imageID uuid.UUID) error
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	store        *storage.Store
	hub          *ws.Hub
}

func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	store *storage.Store,
	hub *ws.Hub,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		store:        store,
		hub:          hub,
	}
}

func (s *productService) ListOwned(sellerID uuid.UUID, search string, page int) (*SellerProductsPage, error) {
	if page < 1 {
		page = 1
	}
	products, total, err := s.productRepo.FindBySeller(sellerID, repository.SearchParams{
		Search:  search,
		Page:    page,
		PerPage: sellerPageSize,
	})
	if err != nil {
		return nil, err
	}
	return &SellerProductsPage{Products: products, Total: total, Page: page, PerPage: sellerPageSize}, nil
}

func (s *productService) Create(sellerID uuid.UUID, input *ProductInput, image *multipart.FileHeader, gallery []*multipart.FileHeader) (*model.Product, error) {
	// 1. Validate the form
	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		return nil, newValidationError(errs)
	}
	if input.Price.IsNegative() {
		return nil, validationErrorf("price must not be negative")
	}
	if input.Stock < 1 {
		return nil, validationErrorf("stock must be at least 1")
	}
	if image == nil {
		return nil, validationErrorf("main image is required")
	}

	// 2. The category must exist
	if _, err := s.categoryRepo.FindByID(input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	// 3. Store the main photo
	imageURL, err := s.store.Save(image, "products")
	if err != nil {
		return nil, err
	}

	product := &model.Product{
		SellerID:    sellerID,
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		SoldCount:   0,
		Condition:   input.Condition,
		ImageURL:    imageURL,
		IsActive:    true,
		IsSold:      false,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	// 4. Optional gallery photos
	if err := s.attachGallery(product.ID, gallery); err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Publish(ws.CatalogEvent{
			Type: ws.EventProductCreated,
			Payload: map[string]interface{}{
				"product_id": product.ID,
				"name":       product.Name,
				"price":      product.Price,
				"stock":      product.Stock,
			},
		})
	}

	return product, nil
}

func (s *productService) Update(sellerID, productID uuid.UUID, input *ProductInput, image *multipart.FileHeader, gallery []*multipart.FileHeader) (*model.Product, error) {
	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		return nil, newValidationError(errs)
	}
	if input.Price.IsNegative() {
		return nil, validationErrorf("price must not be negative")
	}
	if input.Stock < 0 {
		return nil, validationErrorf("stock must not be negative")
	}

	product, err := s.ownedProduct(sellerID, productID)
	if err != nil {
		return nil, err
	}

	if _, err := s.categoryRepo.FindByID(input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Stock = input.Stock
	product.CategoryID = input.CategoryID
	product.Condition = input.Condition
	// Restocking brings a sold-out listing back into the catalogue
	product.IsSold = input.Stock == 0

	// Replace the main photo, removing the old file
	if image != nil {
		imageURL, err := s.store.Save(image, "products")
		if err != nil {
			return nil, err
		}
		if product.ImageURL != "" {
			s.store.Remove(product.ImageURL)
		}
		product.ImageURL = imageURL
	}

	if err := s.productRepo.Save(product); err != nil {
		return nil, err
	}

	if err := s.attachGallery(product.ID, gallery); err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Publish(ws.CatalogEvent{
			Type: ws.EventProductUpdated,
			Payload: map[string]interface{}{
				"product_id": product.ID,
				"name":       product.Name,
				"price":      product.Price,
				"stock":      product.Stock,
			},
		})
	}

	return product, nil
}

func (s *productService) Delete(sellerID, productID uuid.UUID) error {
	product, err := s.ownedProduct(sellerID, productID)
	if err != nil {
		return err
	}

	detail, err := s.productRepo.FindDetail(productID)
	if err == nil {
		for _, img := range detail.Images {
			s.store.Remove(img.ImageURL)
		}
	}
	if product.ImageURL != "" {
		s.store.Remove(product.ImageURL)
	}

	return s.productRepo.Delete(productID)
}

func (s *productService) ToggleStatus(sellerID, productID uuid.UUID) (*model.Product, error) {
	product, err := s.ownedProduct(sellerID, productID)
	if err != nil {
		return nil, err
	}
	product.IsActive = !product.IsActive
	if err := s.productRepo.Save(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) DeleteGalleryImage(sellerID, imageID uuid.UUID) error {
	image, err := s.productRepo.FindImageByID(imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrImageNotFound
		}
		return err
	}

	if _, err := s.ownedProduct(sellerID, image.ProductID); err != nil {
		return err
	}

	s.store.Remove(image.ImageURL)
	return s.productRepo.DeleteImage(imageID)
}

// ownedProduct loads a product and enforces that the caller is its seller
func (s *productService) ownedProduct(sellerID, productID uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if product.SellerID != sellerID {
		return nil, ErrNotOwner
	}
	return product, nil
}

func (s *productService) attachGallery(productID uuid.UUID, gallery []*multipart.FileHeader) error {
	for _, photo := range gallery {
		url, err := s.store.Save(photo, "products/gallery")
		if err != nil {
			return err
		}
		img := &model.ProductImage{ProductID: productID, ImageURL: url}
		if err := s.productRepo.AddImage(img); err != nil {
			return err
		}
	}
	return nil
}
