package handler

import (
	"mime/multipart"
	"strconv"

	"go-storefront/internal/model"
	"go-storefront/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// ProductHandler covers the seller's own product management panel
type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// parseProductForm reads the multipart create/update form. Numeric fields
// fall back to zero values and are rejected by service validation.
func parseProductForm(c *fiber.Ctx) (*service.ProductInput, *multipart.FileHeader, []*multipart.FileHeader) {
	input := &service.ProductInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Condition:   model.Condition(c.FormValue("condition")),
	}
	if price, err := decimal.NewFromString(c.FormValue("price")); err == nil {
		input.Price = price
	}
	if stock, err := strconv.Atoi(c.FormValue("stock")); err == nil {
		input.Stock = stock
	}
	if categoryID, err := strconv.ParseUint(c.FormValue("category_id"), 10, 32); err == nil {
		input.CategoryID = uint(categoryID)
	}

	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	var gallery []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		gallery = form.File["gallery"]
	}

	return input, image, gallery
}

// ListOwned renders the seller's management table
// GET /my/products
func (h *ProductHandler) ListOwned(c *fiber.Ctx) error {
	sellerID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	page, err := h.service.ListOwned(sellerID, c.Query("search"), c.QueryInt("page", 1))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(page)
}

// Create stores a new listing with its main image and optional gallery
// POST /my/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	sellerID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	input, image, gallery := parseProductForm(c)
	product, err := h.service.Create(sellerID, input, image, gallery)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

// Update edits an owned listing; a new image replaces (and deletes) the old
// PUT /my/products/:id
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	productID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	sellerID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	input, image, gallery := parseProductForm(c)
	product, err := h.service.Update(sellerID, productID, input, image, gallery)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Product updated", "data": product})
}

// Delete permanently removes an owned listing and its image files
// DELETE /my/products/:id
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	productID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	sellerID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	if err := h.service.Delete(sellerID, productID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}

// ToggleStatus flips the listing's active flag
// POST /my/products/:id/status
func (h *ProductHandler) ToggleStatus(c *fiber.Ctx) error {
	productID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	sellerID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	product, err := h.service.ToggleStatus(sellerID, productID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product status updated", "data": product})
}

// DeleteImage removes one gallery photo
// DELETE /my/product-images/:id
func (h *ProductHandler) DeleteImage(c *fiber.Ctx) error {
	imageID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid image ID"})
	}

	sellerID, err := currentUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	if err := h.service.DeleteGalleryImage(sellerID, imageID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Image removed from gallery"})
}
