package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"futurewear/internal/errs"
	"futurewear/internal/export"
	"futurewear/internal/models"
	"futurewear/internal/services"
)

// AdminProductHandler serves the back-office product CRUD and export
// endpoints, all behind the session gate.
type AdminProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewAdminProductHandler creates a new AdminProductHandler.
func NewAdminProductHandler(service *services.ProductService) *AdminProductHandler {
	return &AdminProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the admin product routes behind the auth
// middleware.
func (h *AdminProductHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	adminRoutes := router.Group("/admin/products", auth)
	adminRoutes.Get("/", h.HandleList)
	adminRoutes.Post("/", h.HandleCreate)
	adminRoutes.Get("/:id", h.HandleGetByID)
	adminRoutes.Put("/:id", h.HandleUpdate)
	adminRoutes.Delete("/:id", h.HandleDelete)

	router.Get("/admin/export/products", auth, h.HandleExport)
}

// listParams reads the shared search/filter parameters for listing and
// export. An invalid category is rejected; filter flags absent from the
// query impose no constraint.
func (h *AdminProductHandler) listParams(c *fiber.Ctx) (services.ListProductsParams, error) {
	params := services.ListProductsParams{
		Search:       c.Query("search"),
		IsNew:        queryBool(c, "isNew"),
		IsBestseller: queryBool(c, "isBestseller"),
		IsOnSale:     queryBool(c, "isOnSale"),
		SortBy:       c.Query("sortBy", "id"),
		Order:        queryOrder(c),
		Page:         queryInt(c, "page", 1),
		PageSize:     queryInt(c, "pageSize", 10),
	}
	if raw := c.Query("category"); raw != "" {
		category := models.Category(raw)
		if !category.Valid() {
			return params, fmt.Errorf("invalid category %q: %w", raw, errs.ErrInvalidInput)
		}
		params.Category = &category
	}
	return params, nil
}

// HandleList runs the full pipeline (search, filter, sort, paginate) over
// the product store.
func (h *AdminProductHandler) HandleList(c *fiber.Ctx) error {
	params, err := h.listParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid category. Must be: top, mid, or bottom",
		})
	}

	items, pagination, err := h.service.List(params)
	if err != nil {
		log.Printf("Error listing products for admin: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch products",
		})
	}

	return c.JSON(fiber.Map{
		"items":      items,
		"pagination": pagination,
	})
}

// HandleGetByID returns a single product for editing.
func (h *AdminProductHandler) HandleGetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid product ID",
		})
	}

	product, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		log.Printf("Error getting product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch product",
		})
	}
	return c.JSON(fiber.Map{"item": product})
}

// HandleCreate creates a product from a validated payload; unknown body
// fields are rejected.
func (h *AdminProductHandler) HandleCreate(c *fiber.Ctx) error {
	var input models.ProductInput
	if err := parseBody(c, &input); err != nil {
		log.Printf("Error parsing product body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	product, err := h.service.Create(input)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create product",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"item": product})
}

// HandleUpdate applies a partial update; any id in the body is ignored by
// the unknown-field rejection, and the path id is immutable.
func (h *AdminProductHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid product ID",
		})
	}

	var updates models.ProductUpdate
	if err := parseBody(c, &updates); err != nil {
		log.Printf("Error parsing product update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(updates); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	product, err := h.service.Update(id, updates)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		log.Printf("Error updating product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update product",
		})
	}
	return c.JSON(fiber.Map{"item": product})
}

// HandleDelete removes a product.
func (h *AdminProductHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid product ID",
		})
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		log.Printf("Error deleting product %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete product",
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleExport streams the searched and filtered product list as an xlsx
// attachment.
func (h *AdminProductHandler) HandleExport(c *fiber.Ctx) error {
	params, err := h.listParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid category. Must be: top, mid, or bottom",
		})
	}

	products, err := h.service.Export(params)
	if err != nil {
		log.Printf("Error exporting products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to export products",
		})
	}

	var buf bytes.Buffer
	if err := export.WriteProducts(&buf, products); err != nil {
		log.Printf("Error writing product workbook: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to export products",
		})
	}

	filename := fmt.Sprintf("products_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}
