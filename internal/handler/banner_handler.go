package handler

import (
	"go-storefront/internal/service"

	"github.com/gofiber/fiber/v2"
)

// BannerHandler is the site-configuration panel, gated by banner:manage
type BannerHandler struct {
	service service.BannerService
}

func NewBannerHandler(s service.BannerService) *BannerHandler {
	return &BannerHandler{service: s}
}

// List returns all banners ordered for display
// GET /admin/banners
func (h *BannerHandler) List(c *fiber.Ctx) error {
	banners, err := h.service.List()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(banners)
}

// Create stores a banner image with an optional title
// POST /admin/banners
func (h *BannerHandler) Create(c *fiber.Ctx) error {
	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	banner, err := h.service.Create(c.FormValue("title"), image)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Banner added", "data": banner})
}

// Delete removes a banner and its file
// DELETE /admin/banners/:id
func (h *BannerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid banner ID"})
	}

	if err := h.service.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Banner deleted"})
}
