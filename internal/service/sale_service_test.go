package service

import (
	"testing"

	"go-storefront/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type saleMocks struct {
	tx         *gorm.DB
	products   *MockProductRepository
	clients    *MockClientRepository
	sales      *MockSaleRepository
	categories *MockCategoryRepository
}

func newSaleService() (SaleService, saleMocks) {
	m := saleMocks{
		tx:         &gorm.DB{},
		products:   new(MockProductRepository),
		clients:    new(MockClientRepository),
		sales:      new(MockSaleRepository),
		categories: new(MockCategoryRepository),
	}
	svc := NewSaleService(&fakeTxManager{tx: m.tx}, m.products, m.clients, m.sales, m.categories, nil)
	return svc, m
}

func (m saleMocks) assertExpectations(t *testing.T) {
	m.products.AssertExpectations(t)
	m.clients.AssertExpectations(t)
	m.sales.AssertExpectations(t)
	m.categories.AssertExpectations(t)
}

func money(value int64) *decimal.Decimal {
	d := decimal.NewFromInt(value)
	return &d
}

func TestRecordSaleProductBacked(t *testing.T) {
	svc, m := newSaleService()

	sellerID := uuid.New()
	productID := uuid.New()
	clientID := uuid.New()

	product := &model.Product{
		BaseModel:  model.BaseModel{ID: productID},
		Name:       "Blue Hoodie",
		CategoryID: 3,
		Stock:      4,
		SoldCount:  10,
	}

	// Every step inside the transaction must run on the same tx
	m.clients.On("FindOrCreate", m.tx, sellerID, "Ana Torres").
		Return(&model.Client{BaseModel: model.BaseModel{ID: clientID}, Name: "Ana Torres"}, nil).Once()
	m.products.On("FindForSale", m.tx, productID).Return(product, nil).Once()
	m.products.On("ReserveStock", m.tx, productID).Return(true, nil).Once()
	m.sales.On("Create", m.tx, mock.AnythingOfType("*model.Sale")).Return(nil).Once()

	sale, err := svc.RecordSale(sellerID, &RecordSaleInput{
		ClientName: "Ana Torres",
		Concept:    "Blue Hoodie",
		Amount:     money(450),
		ProductID:  &productID,
	})

	require.NoError(t, err)
	assert.Equal(t, sellerID, sale.SellerID)
	assert.Equal(t, clientID, sale.ClientID)
	require.NotNil(t, sale.ProductID)
	assert.Equal(t, productID, *sale.ProductID)
	assert.Equal(t, uint(3), sale.CategoryID)
	assert.True(t, sale.Amount.Equal(decimal.NewFromInt(450)))
	assert.True(t, sale.IsManual)
	m.assertExpectations(t)
}

func TestRecordSaleInsufficientStock(t *testing.T) {
	svc, m := newSaleService()

	sellerID := uuid.New()
	productID := uuid.New()

	m.clients.On("FindOrCreate", m.tx, sellerID, "Ana Torres").
		Return(&model.Client{Name: "Ana Torres"}, nil).Once()
	m.products.On("FindForSale", m.tx, productID).
		Return(&model.Product{BaseModel: model.BaseModel{ID: productID}, Stock: 0}, nil).Once()
	m.products.On("ReserveStock", m.tx, productID).Return(false, nil).Once()

	sale, err := svc.RecordSale(sellerID, &RecordSaleInput{
		ClientName: "Ana Torres",
		Concept:    "Blue Hoodie",
		Amount:     money(450),
		ProductID:  &productID,
	})

	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Nil(t, sale)
	// The ledger row must not be written when the reservation fails
	m.sales.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.assertExpectations(t)
}

func TestRecordSaleManualFallsBackToGeneralCategory(t *testing.T) {
	svc, m := newSaleService()

	sellerID := uuid.New()

	m.clients.On("FindOrCreate", m.tx, sellerID, "Walk-in").
		Return(&model.Client{Name: "Walk-in"}, nil).Once()
	m.categories.On("FindByName", model.GeneralCategoryName).
		Return(&model.Category{ID: 1, Name: model.GeneralCategoryName}, nil).Once()
	m.sales.On("Create", m.tx, mock.AnythingOfType("*model.Sale")).Return(nil).Once()

	sale, err := svc.RecordSale(sellerID, &RecordSaleInput{
		ClientName: "Walk-in",
		Concept:    "Alteration service",
		Amount:     money(80),
	})

	require.NoError(t, err)
	assert.Nil(t, sale.ProductID)
	assert.Equal(t, uint(1), sale.CategoryID)
	assert.True(t, sale.IsManual)
	m.products.AssertNotCalled(t, "ReserveStock", mock.Anything, mock.Anything)
	m.assertExpectations(t)
}

func TestRecordSaleValidatesBeforeTouchingAnything(t *testing.T) {
	svc, m := newSaleService()

	sale, err := svc.RecordSale(uuid.New(), &RecordSaleInput{
		ClientName: "",
		Concept:    "Blue Hoodie",
		Amount:     money(450),
	})

	assert.Nil(t, sale)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	m.clients.AssertNotCalled(t, "FindOrCreate", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordSaleRequiresAmount(t *testing.T) {
	svc, m := newSaleService()

	// JSON bodies omitting amount leave the field nil; that is a validation
	// failure, not a zero-amount sale
	sale, err := svc.RecordSale(uuid.New(), &RecordSaleInput{
		ClientName: "Ana Torres",
		Concept:    "Blue Hoodie",
	})

	assert.Nil(t, sale)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	m.clients.AssertNotCalled(t, "FindOrCreate", mock.Anything, mock.Anything, mock.Anything)
	m.sales.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecordSaleAllowsZeroAmount(t *testing.T) {
	svc, m := newSaleService()

	sellerID := uuid.New()

	m.clients.On("FindOrCreate", m.tx, sellerID, "Walk-in").
		Return(&model.Client{Name: "Walk-in"}, nil).Once()
	m.categories.On("FindByName", model.GeneralCategoryName).
		Return(&model.Category{ID: 1, Name: model.GeneralCategoryName}, nil).Once()
	m.sales.On("Create", m.tx, mock.AnythingOfType("*model.Sale")).Return(nil).Once()

	sale, err := svc.RecordSale(sellerID, &RecordSaleInput{
		ClientName: "Walk-in",
		Concept:    "Giveaway",
		Amount:     money(0),
	})

	require.NoError(t, err)
	assert.True(t, sale.Amount.IsZero())
	m.assertExpectations(t)
}

func TestRecordSaleRejectsNegativeAmount(t *testing.T) {
	svc, m := newSaleService()

	sale, err := svc.RecordSale(uuid.New(), &RecordSaleInput{
		ClientName: "Ana Torres",
		Concept:    "Refund typo",
		Amount:     money(-10),
	})

	assert.Nil(t, sale)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	m.clients.AssertNotCalled(t, "FindOrCreate", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordSaleUnknownProduct(t *testing.T) {
	svc, m := newSaleService()

	sellerID := uuid.New()
	productID := uuid.New()

	m.clients.On("FindOrCreate", m.tx, sellerID, "Ana Torres").
		Return(&model.Client{Name: "Ana Torres"}, nil).Once()
	m.products.On("FindForSale", m.tx, productID).Return(nil, gorm.ErrRecordNotFound).Once()

	sale, err := svc.RecordSale(sellerID, &RecordSaleInput{
		ClientName: "Ana Torres",
		Concept:    "Blue Hoodie",
		Amount:     money(450),
		ProductID:  &productID,
	})

	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Nil(t, sale)
	m.sales.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
