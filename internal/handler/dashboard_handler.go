package handler

import (
	"go-storefront/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// RecentSales returns the seller's latest ledger entries
// GET /dashboard/sales
func (h *DashboardHandler) RecentSales(c *fiber.Ctx) error {
	sellerID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	sales, err := h.service.RecentSales(sellerID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(sales)
}

// Stats returns the seller's overview numbers
// GET /dashboard/stats
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	sellerID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	stats, err := h.service.Stats(sellerID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(stats)
}
