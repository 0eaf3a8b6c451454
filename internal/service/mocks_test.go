package service

import (
	"go-storefront/internal/model"
	"go-storefront/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// fakeTxManager runs the callback directly, without a database, handing it a
// fixed tx value. Repositories used inside are mocks, so the tx is never
// dereferenced; expectations pin it to verify every step runs on the
// transaction.
type fakeTxManager struct {
	tx *gorm.DB
}

func (m *fakeTxManager) Transaction(fn func(tx *gorm.DB) error) error {
	return fn(m.tx)
}

// MockProductRepository is a mock implementation of repository.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(product *model.Product) error {
	return m.Called(product).Error(0)
}

func (m *MockProductRepository) Save(product *model.Product) error {
	return m.Called(product).Error(0)
}

func (m *MockProductRepository) Delete(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

func (m *MockProductRepository) FindByID(id uuid.UUID) (*model.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) FindDetail(id uuid.UUID) (*model.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) Search(params repository.SearchParams, activeOnly bool) ([]model.Product, int64, error) {
	args := m.Called(params, activeOnly)
	var products []model.Product
	if v := args.Get(0); v != nil {
		products = v.([]model.Product)
	}
	return products, int64(args.Int(1)), args.Error(2)
}

func (m *MockProductRepository) FindBySeller(sellerID uuid.UUID, params repository.SearchParams) ([]model.Product, int64, error) {
	args := m.Called(sellerID, params)
	var products []model.Product
	if v := args.Get(0); v != nil {
		products = v.([]model.Product)
	}
	return products, int64(args.Int(1)), args.Error(2)
}

func (m *MockProductRepository) TopSellers(limit int) ([]model.Product, error) {
	args := m.Called(limit)
	var products []model.Product
	if v := args.Get(0); v != nil {
		products = v.([]model.Product)
	}
	return products, args.Error(1)
}

func (m *MockProductRepository) Newest(params repository.SearchParams, limit int) ([]model.Product, error) {
	args := m.Called(params, limit)
	var products []model.Product
	if v := args.Get(0); v != nil {
		products = v.([]model.Product)
	}
	return products, args.Error(1)
}

func (m *MockProductRepository) Autocomplete(query string, limit int) ([]model.Product, error) {
	args := m.Called(query, limit)
	var products []model.Product
	if v := args.Get(0); v != nil {
		products = v.([]model.Product)
	}
	return products, args.Error(1)
}

func (m *MockProductRepository) MaxSoldCount() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockProductRepository) FindForSale(tx *gorm.DB, id uuid.UUID) (*model.Product, error) {
	args := m.Called(tx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) ReserveStock(tx *gorm.DB, id uuid.UUID) (bool, error) {
	args := m.Called(tx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) AddImage(image *model.ProductImage) error {
	return m.Called(image).Error(0)
}

func (m *MockProductRepository) FindImageByID(id uuid.UUID) (*model.ProductImage, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductImage), args.Error(1)
}

func (m *MockProductRepository) DeleteImage(id uuid.UUID) error {
	return m.Called(id).Error(0)
}

// MockClientRepository is a mock implementation of repository.ClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindOrCreate(tx *gorm.DB, sellerID uuid.UUID, name string) (*model.Client, error) {
	args := m.Called(tx, sellerID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Client), args.Error(1)
}

func (m *MockClientRepository) FindBySeller(sellerID uuid.UUID) ([]model.Client, error) {
	args := m.Called(sellerID)
	var clients []model.Client
	if v := args.Get(0); v != nil {
		clients = v.([]model.Client)
	}
	return clients, args.Error(1)
}

// MockSaleRepository is a mock implementation of repository.SaleRepository
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) Create(tx *gorm.DB, sale *model.Sale) error {
	return m.Called(tx, sale).Error(0)
}

func (m *MockSaleRepository) FindBySeller(sellerID uuid.UUID) ([]model.Sale, error) {
	args := m.Called(sellerID)
	var sales []model.Sale
	if v := args.Get(0); v != nil {
		sales = v.([]model.Sale)
	}
	return sales, args.Error(1)
}

func (m *MockSaleRepository) Recent(sellerID uuid.UUID, limit int) ([]model.Sale, error) {
	args := m.Called(sellerID, limit)
	var sales []model.Sale
	if v := args.Get(0); v != nil {
		sales = v.([]model.Sale)
	}
	return sales, args.Error(1)
}

func (m *MockSaleRepository) GetSellerStats(sellerID uuid.UUID) (*repository.SellerStats, error) {
	args := m.Called(sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.SellerStats), args.Error(1)
}

// MockCategoryRepository is a mock implementation of repository.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindAll() ([]model.Category, error) {
	args := m.Called()
	var categories []model.Category
	if v := args.Get(0); v != nil {
		categories = v.([]model.Category)
	}
	return categories, args.Error(1)
}

func (m *MockCategoryRepository) FindByID(id uint) (*model.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByName(name string) (*model.Category, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) SeedDefaults() error {
	return m.Called().Error(0)
}

// MockReviewRepository is a mock implementation of repository.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(review *model.Review) error {
	return m.Called(review).Error(0)
}

func (m *MockReviewRepository) FindByProduct(productID uuid.UUID) ([]model.Review, error) {
	args := m.Called(productID)
	var reviews []model.Review
	if v := args.Get(0); v != nil {
		reviews = v.([]model.Review)
	}
	return reviews, args.Error(1)
}
