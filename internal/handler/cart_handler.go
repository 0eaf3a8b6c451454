package handler

import (
	"encoding/json"

	"go-storefront/internal/model"
	"go-storefront/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const cartSessionKey = "cart"

// CartHandler round-trips the cart value through the session store and
// applies mutations via the cart service.
type CartHandler struct {
	service  service.CartService
	sessions *session.Store
}

func NewCartHandler(s service.CartService, sessions *session.Store) *CartHandler {
	return &CartHandler{service: s, sessions: sessions}
}

// loadCart decodes the session cart, returning an empty cart for new sessions
func (h *CartHandler) loadCart(sess *session.Session) *model.Cart {
	raw, ok := sess.Get(cartSessionKey).([]byte)
	if !ok {
		return model.NewCart()
	}
	cart := model.NewCart()
	if err := json.Unmarshal(raw, cart); err != nil {
		return model.NewCart()
	}
	return cart
}

func (h *CartHandler) saveCart(sess *session.Session, cart *model.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	sess.Set(cartSessionKey, raw)
	return sess.Save()
}

// GetCart renders the current cart and its totals
// GET /cart
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Session unavailable"})
	}
	cart := h.loadCart(sess)
	totals := cart.Totals()

	return c.JSON(fiber.Map{
		"cart":  cart,
		"count": totals.Count,
		"total": totals.Total,
	})
}

// AddToCart puts one unit of a product into the session cart
// POST /cart/add/:id
func (h *CartHandler) AddToCart(c *fiber.Ctx) error {
	productID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	sess, err := h.sessions.Get(c)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Session unavailable"})
	}

	cart := h.loadCart(sess)
	if err := h.service.Add(cart, productID); err != nil {
		return fail(c, err)
	}
	if err := h.saveCart(sess, cart); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save session"})
	}

	return c.JSON(fiber.Map{"message": "Product added to cart", "count": cart.Totals().Count})
}

// UpdateCartRequest sets a line's quantity
type UpdateCartRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// UpdateCart sets the quantity of an existing line
// PATCH /cart/update
func (h *CartHandler) UpdateCart(c *fiber.Ctx) error {
	var req UpdateCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	productID, err := parseUUID(req.ProductID)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	sess, err := h.sessions.Get(c)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Session unavailable"})
	}

	cart := h.loadCart(sess)
	h.service.SetQuantity(cart, productID, req.Quantity)
	if err := h.saveCart(sess, cart); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save session"})
	}

	return c.JSON(fiber.Map{"message": "Cart updated", "cart": cart})
}

// RemoveCartRequest identifies the line to drop
type RemoveCartRequest struct {
	ProductID string `json:"product_id"`
}

// RemoveFromCart drops a line; removing an absent line succeeds quietly
// DELETE /cart/remove
func (h *CartHandler) RemoveFromCart(c *fiber.Ctx) error {
	var req RemoveCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	productID, err := parseUUID(req.ProductID)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	sess, err := h.sessions.Get(c)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Session unavailable"})
	}

	cart := h.loadCart(sess)
	h.service.Remove(cart, productID)
	if err := h.saveCart(sess, cart); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save session"})
	}

	return c.JSON(fiber.Map{"message": "Product removed from cart"})
}

// Checkout is a stub: the storefront does not process payments, and the cart
// never commits itself into the sales ledger.
// POST /cart/checkout
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	return c.Status(501).JSON(fiber.Map{"error": "Checkout is not available yet"})
}
