package service

import (
	"errors"

	"go-storefront/internal/model"
	"go-storefront/internal/repository"
	"go-storefront/internal/ws"
	"go-storefront/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecordSaleInput is the quick-entry sale form. Amount is a pointer so an
// omitted field fails validation instead of recording a zero-amount sale.
type RecordSaleInput struct {
	ClientName string           `json:"client_name" validate:"required,max=255"`
	Concept    string           `json:"concept" validate:"required,max=255"`
	Amount     *decimal.Decimal `json:"amount" validate:"required"`
	ProductID  *uuid.UUID       `json:"product_id"`
}

type SaleService interface {
	RecordSale(sellerID uuid.UUID, input *RecordSaleInput) (*model.Sale, error)
	ListSales(sellerID uuid.UUID) ([]model.Sale, error)
}

type saleService struct {
	tx           repository.TxManager
	productRepo  repository.ProductRepository
	clientRepo   repository.ClientRepository
	saleRepo     repository.SaleRepository
	categoryRepo repository.CategoryRepository
	hub          *ws.Hub
}

func NewSaleService(
	tx repository.TxManager,
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	saleRepo repository.SaleRepository,
	categoryRepo repository.CategoryRepository,
	hub *ws.Hub,
) SaleService {
	return &saleService{
		tx:           tx,
		productRepo:  productRepo,
		clientRepo:   clientRepo,
		saleRepo:     saleRepo,
		categoryRepo: categoryRepo,
		hub:          hub,
	}
}

// RecordSale translates a quick-entry sale into an immutable ledger row.
// Validation happens before anything is touched; the client find-or-create,
// stock reservation and sale insert then run in one transaction so a failure
// partway leaves no partial rows.
func (s *saleService) RecordSale(sellerID uuid.UUID, input *RecordSaleInput) (*model.Sale, error) {
	// 1. Validate, then act
	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		return nil, newValidationError(errs)
	}
	if input.Amount.IsNegative() {
		return nil, validationErrorf("amount must not be negative")
	}

	var (
		sale     *model.Sale
		soldItem *model.Product
	)

	err := s.tx.Transaction(func(tx *gorm.DB) error {
		// 2. Resolve or create the client scoped to this seller
		client, err := s.clientRepo.FindOrCreate(tx, sellerID, input.ClientName)
		if err != nil {
			return err
		}

		var (
			categoryID uint
			productID  *uuid.UUID
		)

		if input.ProductID != nil {
			// 3a. Product-backed sale: reserve one unit atomically
			product, err := s.productRepo.FindForSale(tx, *input.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrProductNotFound
				}
				return err
			}

			ok, err := s.productRepo.ReserveStock(tx, product.ID)
			if err != nil {
				return err
			}
			if !ok {
				return ErrInsufficientStock
			}

			categoryID = product.CategoryID
			productID = &product.ID
			soldItem = product
		} else {
			// 3b. Free-text manual sale: fall back to the generic category
			general, err := s.categoryRepo.FindByName(model.GeneralCategoryName)
			if err != nil {
				return ErrCategoryNotFound
			}
			categoryID = general.ID
		}

		// 4. Append the ledger row
		sale = &model.Sale{
			SellerID:   sellerID,
			ClientID:   client.ID,
			ProductID:  productID,
			CategoryID: categoryID,
			Concept:    input.Concept,
			Amount:     *input.Amount,
			IsManual:   true,
		}
		return s.saleRepo.Create(tx, sale)
	})
	if err != nil {
		return nil, err
	}

	// 5. Push the stock change to connected clients, after commit
	if s.hub != nil && soldItem != nil {
		s.hub.Publish(ws.CatalogEvent{
			Type: ws.EventSaleRecorded,
			Payload: map[string]interface{}{
				"product_id": soldItem.ID,
				"name":       soldItem.Name,
				"new_stock":  soldItem.Stock - 1,
				"sold_count": soldItem.SoldCount + 1,
			},
		})
	}

	return sale, nil
}

func (s *saleService) ListSales(sellerID uuid.UUID) ([]model.Sale, error) {
	return s.saleRepo.FindBySeller(sellerID)
}
