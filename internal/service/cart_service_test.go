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

func testProduct(id uuid.UUID, price int64, stock int) *model.Product {
	return &model.Product{
		BaseModel: model.BaseModel{ID: id},
		Name:      "Test Product",
		Price:     decimal.NewFromInt(price),
		Stock:     stock,
		ImageURL:  "/storage/products/p.jpg",
	}
}

func TestCartAddNewLineSnapshotsProduct(t *testing.T) {
	productID := uuid.New()
	productRepo := new(MockProductRepository)
	productRepo.On("FindByID", productID).Return(testProduct(productID, 100, 5), nil).Once()

	svc := NewCartService(productRepo)
	cart := model.NewCart()

	require.NoError(t, svc.Add(cart, productID))

	line, ok := cart.Line(productID)
	require.True(t, ok)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, "Test Product", line.Name)
	assert.Equal(t, 5, line.Stock)
	assert.Equal(t, "/storage/products/p.jpg", line.ImageURL)
	assert.True(t, line.Price.Equal(decimal.NewFromInt(100)))
	productRepo.AssertExpectations(t)
}

func TestCartAddExistingLineIncrementsQuantity(t *testing.T) {
	productID := uuid.New()
	productRepo := new(MockProductRepository)
	productRepo.On("FindByID", productID).Return(testProduct(productID, 100, 5), nil).Once()

	svc := NewCartService(productRepo)
	cart := model.NewCart()

	require.NoError(t, svc.Add(cart, productID))
	require.NoError(t, svc.Add(cart, productID))
	require.NoError(t, svc.Add(cart, productID))

	line, _ := cart.Line(productID)
	assert.Equal(t, 3, line.Quantity)
	// The product is only looked up for the first add
	productRepo.AssertNumberOfCalls(t, "FindByID", 1)
}

func TestCartAddUnknownProduct(t *testing.T) {
	productID := uuid.New()
	productRepo := new(MockProductRepository)
	productRepo.On("FindByID", productID).Return(nil, gorm.ErrRecordNotFound).Once()

	svc := NewCartService(productRepo)
	cart := model.NewCart()

	err := svc.Add(cart, productID)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Empty(t, cart.Lines)
}

func TestCartSetQuantity(t *testing.T) {
	productID := uuid.New()
	productRepo := new(MockProductRepository)
	productRepo.On("FindByID", productID).Return(testProduct(productID, 100, 5), nil)

	svc := NewCartService(productRepo)
	cart := model.NewCart()
	require.NoError(t, svc.Add(cart, productID))

	tests := []struct {
		name     string
		quantity int
		want     int
	}{
		{"sets a valid quantity", 4, 4},
		{"clamps zero to one", 0, 1},
		{"clamps negative to one", -3, 1},
		{"clamps above snapshotted stock", 99, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc.SetQuantity(cart, productID, tt.quantity)
			line, _ := cart.Line(productID)
			assert.Equal(t, tt.want, line.Quantity)
		})
	}
}

func TestCartSetQuantityMissingLineIsNoOp(t *testing.T) {
	svc := NewCartService(new(MockProductRepository))
	cart := model.NewCart()

	// SetQuantity never creates lines
	svc.SetQuantity(cart, uuid.New(), 3)
	assert.Empty(t, cart.Lines)
}

func TestCartRemove(t *testing.T) {
	productID := uuid.New()
	productRepo := new(MockProductRepository)
	productRepo.On("FindByID", productID).Return(testProduct(productID, 100, 5), nil)

	svc := NewCartService(productRepo)
	cart := model.NewCart()
	require.NoError(t, svc.Add(cart, productID))

	svc.Remove(cart, productID)
	assert.Empty(t, cart.Lines)

	// Removing again is a quiet no-op
	svc.Remove(cart, productID)
	assert.Empty(t, cart.Lines)
}
