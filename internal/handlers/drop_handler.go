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

// DropHandler serves the public storefront drop endpoints.
type DropHandler struct {
	service *services.DropService
}

// NewDropHandler creates a new DropHandler.
func NewDropHandler(service *services.DropService) *DropHandler {
	return &DropHandler{service: service}
}

// RegisterRoutes registers the public drop routes.
func (h *DropHandler) RegisterRoutes(router fiber.Router) {
	dropRoutes := router.Group("/drops")
	dropRoutes.Get("/", h.HandleList)
	dropRoutes.Get("/:id", h.HandleGetByID)
}

// HandleList lists drops for the storefront, optionally narrowed by
// availability.
func (h *DropHandler) HandleList(c *fiber.Ctx) error {
	params := services.ListDropsParams{
		SortBy:   "id",
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "pageSize", 10),
	}

	if raw := c.Query("availability"); raw != "" {
		availability := models.Availability(raw)
		if !availability.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid availability. Must be: avail or soon",
			})
		}
		params.Availability = &availability
	}

	items, pagination, err := h.service.List(params)
	if err != nil {
		log.Printf("Error listing drops: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch drops",
		})
	}

	return c.JSON(fiber.Map{
		"items":      items,
		"pagination": pagination,
	})
}

// HandleGetByID returns a single drop.
func (h *DropHandler) HandleGetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid drop ID",
		})
	}

	drop, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Drop not found",
			})
		}
		log.Printf("Error getting drop %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch drop",
		})
	}
	return c.JSON(fiber.Map{"item": drop})
}
