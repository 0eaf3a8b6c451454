package handler

import (
	"go-storefront/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SaleHandler struct {
	service service.SaleService
}

func NewSaleHandler(s service.SaleService) *SaleHandler {
	return &SaleHandler{service: s}
}

// RecordSale records a manual/product sale for the authenticated seller
// POST /sales
func (h *SaleHandler) RecordSale(c *fiber.Ctx) error {
	var input service.RecordSaleInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	sellerID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	sale, err := h.service.RecordSale(sellerID, &input)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Sale recorded", "data": sale})
}

// ListSales returns the seller's own ledger, newest first
// GET /sales
func (h *SaleHandler) ListSales(c *fiber.Ctx) error {
	sellerID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	sales, err := h.service.ListSales(sellerID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(sales)
}
