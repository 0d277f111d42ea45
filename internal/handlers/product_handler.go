package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"futurewear/internal/errs"
	"futurewear/internal/models"
	"futurewear/internal/services"
)

// ProductHandler serves the public storefront product endpoints. These
// bypass the session gate entirely.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// RegisterRoutes registers the public product routes.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleList)
	productRoutes.Get("/:id", h.HandleGetByID)
}

// HandleList lists products for the storefront. A filter parameter
// (new|bestseller|sale) takes precedence over category; limit is accepted
// as a legacy alias for pageSize.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "pageSize", queryInt(c, "limit", 10))

	params := services.ListProductsParams{
		SortBy:   "id",
		Page:     page,
		PageSize: pageSize,
	}

	truth := true
	filter := c.Query("filter")
	switch filter {
	case "new":
		params.IsNew = &truth
	case "bestseller":
		params.IsBestseller = &truth
	case "sale":
		params.IsOnSale = &truth
	case "":
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid filter. Must be: new, bestseller, or sale",
		})
	}

	if filter == "" {
		if raw := c.Query("category"); raw != "" {
			category := models.Category(raw)
			if !category.Valid() {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Invalid category. Must be: top, mid, or bottom",
				})
			}
			params.Category = &category
		}
	}

	items, pagination, err := h.service.List(params)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch products",
		})
	}

	resp := fiber.Map{
		"items":      items,
		"pagination": pagination,
	}
	if filter != "" {
		resp["filter"] = filter
	} else if params.Category != nil {
		resp["category"] = *params.Category
	} else {
		resp["category"] = "all"
	}
	return c.JSON(resp)
}

// HandleGetByID returns a single product.
func (h *ProductHandler) HandleGetByID(c *fiber.Ctx) error {
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
