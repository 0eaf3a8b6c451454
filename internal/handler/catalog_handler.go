package handler

import (
	"strconv"

	"go-storefront/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

func catalogFilters(c *fiber.Ctx) service.CatalogFilters {
	filters := service.CatalogFilters{Search: c.Query("search")}
	if raw := c.Query("category_id"); raw != "" && raw != "all" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			filters.CategoryID = uint(id)
		}
	}
	return filters
}

// Home renders the landing page payload
// GET /
func (h *CatalogHandler) Home(c *fiber.Ctx) error {
	page, err := h.service.Home(catalogFilters(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(page)
}

// Catalogue renders one page of the public catalogue
// GET /products
func (h *CatalogHandler) Catalogue(c *fiber.Ctx) error {
	pageNum := c.QueryInt("page", 1)
	page, err := h.service.Catalogue(catalogFilters(c), pageNum)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(page)
}

// Search backs the navbar autocomplete
// GET /products/search
func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	products, err := h.service.Autocomplete(c.Query("query"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(products)
}

// Detail renders the product page with reviews and aggregates
// GET /products/:id
func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	detail, err := h.service.Detail(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(detail)
}
