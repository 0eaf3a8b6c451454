package service

import (
	"errors"

	"go-storefront/internal/model"
	"go-storefront/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartService mutates a session-resident cart. The cart value itself is
// owned by the caller (it lives in the session); this service only applies
// the mutation rules and resolves products against the catalog.
type CartService interface {
	Add(cart *model.Cart, productID uuid.UUID) error
	SetQuantity(cart *model.Cart, productID uuid.UUID, quantity int)
	Remove(cart *model.Cart, productID uuid.UUID)
}

type cartService struct {
	productRepo repository.ProductRepository
}

func NewCartService(productRepo repository.ProductRepository) CartService {
	return &cartService{productRepo: productRepo}
}

// Add puts one unit of the product into the cart. An existing line gets its
// quantity bumped by 1; a new line snapshots the product's current name,
// price, image and stock. No stock bound is enforced at add time; the cart
// is only re-validated against the catalog at checkout.
func (s *cartService) Add(cart *model.Cart, productID uuid.UUID) error {
	if line, ok := cart.Line(productID); ok {
		line.Quantity++
		cart.Put(line)
		return nil
	}

	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	cart.Put(model.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		ImageURL:  product.ImageURL,
		Stock:     product.Stock,
		Quantity:  1,
	})
	return nil
}

// SetQuantity updates an existing line's quantity. The line is only ever
// mutated, never created, and the quantity is clamped to [1, snapshotted
// stock] so untrusted callers cannot push it to zero or past inventory.
func (s *cartService) SetQuantity(cart *model.Cart, productID uuid.UUID, quantity int) {
	line, ok := cart.Line(productID)
	if !ok {
		return
	}

	if quantity < 1 {
		quantity = 1
	}
	if line.Stock > 0 && quantity > line.Stock {
		quantity = line.Stock
	}

	line.Quantity = quantity
	cart.Put(line)
}

// Remove drops the line if present. Removing an absent line is a no-op, not
// an error.
func (s *cartService) Remove(cart *model.Cart, productID uuid.UUID) {
	cart.Remove(productID)
}
