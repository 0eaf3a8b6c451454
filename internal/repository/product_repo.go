package repository

import (
	"go-storefront/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// reviewAggregates pulls the derived rating average and count alongside each
// product row. Computed per query, never stored.
const reviewAggregates = `products.*,
	(SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE reviews.product_id = products.id AND reviews.deleted_at IS NULL) AS reviews_avg_rating,
	(SELECT COUNT(*) FROM reviews WHERE reviews.product_id = products.id AND reviews.deleted_at IS NULL) AS reviews_count`

// SearchParams filters the public catalogue and the seller panel listing
type SearchParams struct {
	Search     string
	CategoryID uint
	Page       int
	PerPage    int
}

type ProductRepository interface {
	Create(product *model.Product) error
	Save(product *model.Product) error
	Delete(id uuid.UUID) error
	FindByID(id uuid.UUID) (*model.Product, error)
	FindDetail(id uuid.UUID) (*model.Product, error)
	Search(params SearchParams, activeOnly bool) ([]model.Product, int64, error)
	FindBySeller(sellerID uuid.UUID, params SearchParams) ([]model.Product, int64, error)
	TopSellers(limit int) ([]model.Product, error)
	Newest(params SearchParams, limit int) ([]model.Product, error)
	Autocomplete(query string, limit int) ([]model.Product, error)
	MaxSoldCount() (int, error)
	FindForSale(tx *gorm.DB, id uuid.UUID) (*model.Product, error)
	ReserveStock(tx *gorm.DB, id uuid.UUID) (bool, error)
	AddImage(image *model.ProductImage) error
	FindImageByID(id uuid.UUID) (*model.ProductImage, error)
	DeleteImage(id uuid.UUID) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) Save(product *model.Product) error {
	return r.db.Save(product).Error
}

// Delete removes the product permanently. Sales referencing it keep a nulled
// product id.
func (r *productRepo) Delete(id uuid.UUID) error {
	return r.db.Unscoped().Delete(&model.Product{}, "id = ?", id).Error
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindDetail loads a product with category, gallery, reviews (with reviewer)
// and the derived review aggregates, the full product page payload.
func (r *productRepo) FindDetail(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Select(reviewAggregates).
		Preload("Category").
		Preload("Images").
		First(&product, "products.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// search applies the shared name/description/category-name filter
func searchFilter(db *gorm.DB, search string) *gorm.DB {
	like := "%" + search + "%"
	return db.Where(
		"products.name ILIKE ? OR products.description ILIKE ? OR products.category_id IN (SELECT id FROM categories WHERE name ILIKE ?)",
		like, like, like,
	)
}

func (r *productRepo) Search(params SearchParams, activeOnly bool) ([]model.Product, int64, error) {
	query := r.db.Model(&model.Product{})
	if activeOnly {
		query = query.Where("is_active = ? AND is_sold = ?", true, false)
	}
	if params.Search != "" {
		query = searchFilter(query, params.Search)
	}
	if params.CategoryID != 0 {
		query = query.Where("category_id = ?", params.CategoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []model.Product
	err := query.Select(reviewAggregates).
		Preload("Category").
		Order("created_at DESC").
		Offset((params.Page - 1) * params.PerPage).
		Limit(params.PerPage).
		Find(&products).Error
	return products, total, err
}

func (r *productRepo) FindBySeller(sellerID uuid.UUID, params SearchParams) ([]model.Product, int64, error) {
	query := r.db.Model(&model.Product{}).Where("seller_id = ?", sellerID)
	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where("products.name ILIKE ? OR products.description ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []model.Product
	err := query.Preload("Category").Preload("Images").
		Order("created_at DESC").
		Offset((params.Page - 1) * params.PerPage).
		Limit(params.PerPage).
		Find(&products).Error
	return products, total, err
}

// TopSellers returns the best-selling active, in-stock products for the
// landing page carousel.
func (r *productRepo) TopSellers(limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Select(reviewAggregates).
		Where("is_active = ? AND stock > 0", true).
		Preload("Category").
		Order("sold_count DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

// Newest returns the most recent active products for the landing page grid,
// honoring the optional search/category filter.
func (r *productRepo) Newest(params SearchParams, limit int) ([]model.Product, error) {
	query := r.db.Where("is_active = ? AND is_sold = ?", true, false)
	if params.CategoryID != 0 {
		query = query.Where("category_id = ?", params.CategoryID)
	}
	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	var products []model.Product
	err := query.Preload("Category").
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

// Autocomplete backs the navbar global search
func (r *productRepo) Autocomplete(query string, limit int) ([]model.Product, error) {
	var products []model.Product
	err := searchFilter(r.db.Where("is_active = ? AND is_sold = ?", true, false), query).
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *productRepo) MaxSoldCount() (int, error) {
	var max int
	err := r.db.Model(&model.Product{}).
		Select("COALESCE(MAX(sold_count), 0)").
		Scan(&max).Error
	return max, err
}

// FindForSale loads a product on the sale transaction, so the category and
// stock snapshot come from the same view the reservation runs against.
func (r *productRepo) FindForSale(tx *gorm.DB, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := tx.First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ReserveStock performs the check-and-decrement as a single conditional
// update so stock can never go negative under concurrent sales. Returns
// false when the product has no stock left (zero rows affected). The last
// unit sold also flags the listing as sold out.
func (r *productRepo) ReserveStock(tx *gorm.DB, id uuid.UUID) (bool, error) {
	result := tx.Model(&model.Product{}).
		Where("id = ? AND stock >= 1", id).
		UpdateColumns(map[string]interface{}{
			"is_sold":    gorm.Expr("(stock = 1)"),
			"stock":      gorm.Expr("stock - 1"),
			"sold_count": gorm.Expr("sold_count + 1"),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *productRepo) AddImage(image *model.ProductImage) error {
	return r.db.Create(image).Error
}

func (r *productRepo) FindImageByID(id uuid.UUID) (*model.ProductImage, error) {
	var image model.ProductImage
	if err := r.db.First(&image, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *productRepo) DeleteImage(id uuid.UUID) error {
	return r.db.Unscoped().Delete(&model.ProductImage{}, "id = ?", id).Error
}
