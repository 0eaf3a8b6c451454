package service

import (
	"errors"

	"go-storefront/internal/model"
	"go-storefront/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	homeCarouselSize  = 6
	homeGridSize      = 12
	cataloguePageSize = 12
	autocompleteSize  = 8
)

// HomePage is the landing page payload
type HomePage struct {
	Banners           []model.Banner   `json:"banners"`
	TopProducts       []model.Product  `json:"top_products"`
	CatalogueProducts []model.Product  `json:"catalogue_products"`
	Categories        []model.Category `json:"categories"`
	BestSellerCount   int              `json:"best_seller_count"`
	Filters           CatalogFilters   `json:"filters"`
}

// CataloguePage is one page of the public catalogue
type CataloguePage struct {
	Products   []model.Product  `json:"products"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PerPage    int              `json:"per_page"`
	Categories []model.Category `json:"categories"`
	Filters    CatalogFilters   `json:"filters"`
}

// CatalogFilters echoes the active filters back to the client
type CatalogFilters struct {
	Search     string `json:"search"`
	CategoryID uint   `json:"category_id"`
}

// ProductDetail is the product page payload
type ProductDetail struct {
	Product *model.Product `json:"product"`
	Reviews []model.Review `json:"reviews"`
}

type CatalogService interface {
	Home(filters CatalogFilters) (*HomePage, error)
	Catalogue(filters CatalogFilters, page int) (*CataloguePage, error)
	Detail(id uuid.UUID) (*ProductDetail, error)
	Autocomplete(query string) ([]model.Product, error)
}

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	reviewRepo   repository.ReviewRepository
	bannerRepo   repository.BannerRepository
}

func NewCatalogService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	reviewRepo repository.ReviewRepository,
	bannerRepo repository.BannerRepository,
) CatalogService {
	return &catalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		reviewRepo:   reviewRepo,
		bannerRepo:   bannerRepo,
	}
}

func (s *catalogService) Home(filters CatalogFilters) (*HomePage, error) {
	banners, err := s.bannerRepo.FindActive()
	if err != nil {
		return nil, err
	}

	topProducts, err := s.productRepo.TopSellers(homeCarouselSize)
	if err != nil {
		return nil, err
	}

	grid, err := s.productRepo.Newest(repository.SearchParams{
		Search:     filters.Search,
		CategoryID: filters.CategoryID,
	}, homeGridSize)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, err
	}

	maxSold, err := s.productRepo.MaxSoldCount()
	if err != nil {
		return nil, err
	}

	return &HomePage{
		Banners:           banners,
		TopProducts:       topProducts,
		CatalogueProducts: grid,
		Categories:        categories,
		BestSellerCount:   maxSold,
		Filters:           filters,
	}, nil
}

func (s *catalogService) Catalogue(filters CatalogFilters, page int) (*CataloguePage, error) {
	if page < 1 {
		page = 1
	}

	products, total, err := s.productRepo.Search(repository.SearchParams{
		Search:     filters.Search,
		CategoryID: filters.CategoryID,
		Page:       page,
		PerPage:    cataloguePageSize,
	}, true)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, err
	}

	return &CataloguePage{
		Products:   products,
		Total:      total,
		Page:       page,
		PerPage:    cataloguePageSize,
		Categories: categories,
		Filters:    filters,
	}, nil
}

func (s *catalogService) Detail(id uuid.UUID) (*ProductDetail, error) {
	product, err := s.productRepo.FindDetail(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	reviews, err := s.reviewRepo.FindByProduct(id)
	if err != nil {
		return nil, err
	}

	return &ProductDetail{Product: product, Reviews: reviews}, nil
}

func (s *catalogService) Autocomplete(query string) ([]model.Product, error) {
	if query == "" {
		return []model.Product{}, nil
	}
	return s.productRepo.Autocomplete(query, autocompleteSize)
}
