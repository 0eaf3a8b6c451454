package service

import (
	"testing"

	"go-storefront/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func ownedTestProduct(sellerID uuid.UUID) *model.Product {
	return &model.Product{
		BaseModel:  model.BaseModel{ID: uuid.New()},
		SellerID:   sellerID,
		CategoryID: 2,
		Name:       "Hoodie",
		Price:      decimal.NewFromInt(100),
		Condition:  model.ConditionGood,
	}
}

func updateInput(stock int) *ProductInput {
	return &ProductInput{
		Name:       "Hoodie",
		Price:      decimal.NewFromInt(100),
		Stock:      stock,
		CategoryID: 2,
		Condition:  model.ConditionGood,
	}
}

func TestProductUpdateRestockClearsSoldFlag(t *testing.T) {
	sellerID := uuid.New()
	product := ownedTestProduct(sellerID)
	product.Stock = 0
	product.IsSold = true

	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	productRepo.On("FindByID", product.ID).Return(product, nil).Once()
	categoryRepo.On("FindByID", uint(2)).Return(&model.Category{ID: 2, Name: "Pants"}, nil).Once()
	productRepo.On("Save", product).Return(nil).Once()

	svc := NewProductService(productRepo, categoryRepo, nil, nil)
	updated, err := svc.Update(sellerID, product.ID, updateInput(3), nil, nil)

	require.NoError(t, err)
	assert.Equal(t, 3, updated.Stock)
	assert.False(t, updated.IsSold)
	productRepo.AssertExpectations(t)
}

func TestProductUpdateZeroStockMarksSold(t *testing.T) {
	sellerID := uuid.New()
	product := ownedTestProduct(sellerID)
	product.Stock = 4

	productRepo := new(MockProductRepository)
	categoryRepo := new(MockCategoryRepository)
	productRepo.On("FindByID", product.ID).Return(product, nil).Once()
	categoryRepo.On("FindByID", uint(2)).Return(&model.Category{ID: 2, Name: "Pants"}, nil).Once()
	productRepo.On("Save", product).Return(nil).Once()

	svc := NewProductService(productRepo, categoryRepo, nil, nil)
	updated, err := svc.Update(sellerID, product.ID, updateInput(0), nil, nil)

	require.NoError(t, err)
	assert.True(t, updated.IsSold)
}

func TestProductUpdateRejectsForeignSeller(t *testing.T) {
	product := ownedTestProduct(uuid.New())

	productRepo := new(MockProductRepository)
	productRepo.On("FindByID", product.ID).Return(product, nil).Once()

	svc := NewProductService(productRepo, new(MockCategoryRepository), nil, nil)
	_, err := svc.Update(uuid.New(), product.ID, updateInput(3), nil, nil)

	assert.ErrorIs(t, err, ErrNotOwner)
	productRepo.AssertNotCalled(t, "Save", product)
}

func TestProductUpdateUnknownProduct(t *testing.T) {
	productID := uuid.New()

	productRepo := new(MockProductRepository)
	productRepo.On("FindByID", productID).Return(nil, gorm.ErrRecordNotFound).Once()

	svc := NewProductService(productRepo, new(MockCategoryRepository), nil, nil)
	_, err := svc.Update(uuid.New(), productID, updateInput(3), nil, nil)

	assert.ErrorIs(t, err, ErrProductNotFound)
}
