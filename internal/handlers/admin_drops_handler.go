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

// AdminDropHandler serves the back-office drop CRUD and export endpoints.
type AdminDropHandler struct {
	service  *services.DropService
	validate *validator.Validate
}

// NewAdminDropHandler creates a new AdminDropHandler.
func NewAdminDropHandler(service *services.DropService) *AdminDropHandler {
	return &AdminDropHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the admin drop routes behind the auth
// middleware.
func (h *AdminDropHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	adminRoutes := router.Group("/admin/drops", auth)
	adminRoutes.Get("/", h.HandleList)
	adminRoutes.Post("/", h.HandleCreate)
	adminRoutes.Get("/:id", h.HandleGetByID)
	adminRoutes.Put("/:id", h.HandleUpdate)
	adminRoutes.Delete("/:id", h.HandleDelete)

	router.Get("/admin/export/drops", auth, h.HandleExport)
}

func (h *AdminDropHandler) listParams(c *fiber.Ctx) (services.ListDropsParams, error) {
	params := services.ListDropsParams{
		Search:   c.Query("search"),
		SortBy:   c.Query("sortBy", "id"),
		Order:    queryOrder(c),
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "pageSize", 10),
	}
	if raw := c.Query("availability"); raw != "" {
		availability := models.Availability(raw)
		if !availability.Valid() {
			return params, fmt.Errorf("invalid availability %q: %w", raw, errs.ErrInvalidInput)
		}
		params.Availability = &availability
	}
	return params, nil
}

// HandleList runs the full pipeline (search, filter, sort, paginate) over
// the drop store.
func (h *AdminDropHandler) HandleList(c *fiber.Ctx) error {
	params, err := h.listParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid availability. Must be: avail or soon",
		})
	}

	items, pagination, err := h.service.List(params)
	if err != nil {
		log.Printf("Error listing drops for admin: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch drops",
		})
	}

	return c.JSON(fiber.Map{
		"items":      items,
		"pagination": pagination,
	})
}

// HandleGetByID returns a single drop for editing.
func (h *AdminDropHandler) HandleGetByID(c *fiber.Ctx) error {
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

// HandleCreate creates a drop from a validated payload.
func (h *AdminDropHandler) HandleCreate(c *fiber.Ctx) error {
	var input models.DropInput
	if err := parseBody(c, &input); err != nil {
		log.Printf("Error parsing drop body: %v", err)
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

	drop, err := h.service.Create(input)
	if err != nil {
		log.Printf("Error creating drop: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create drop",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"item": drop})
}

// HandleUpdate applies a partial update; the path id is immutable.
func (h *AdminDropHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid drop ID",
		})
	}

	var updates models.DropUpdate
	if err := parseBody(c, &updates); err != nil {
		log.Printf("Error parsing drop update body: %v", err)
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

	drop, err := h.service.Update(id, updates)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Drop not found",
			})
		}
		log.Printf("Error updating drop %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update drop",
		})
	}
	return c.JSON(fiber.Map{"item": drop})
}

// HandleDelete removes a drop.
func (h *AdminDropHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid drop ID",
		})
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Drop not found",
			})
		}
		log.Printf("Error deleting drop %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete drop",
		})
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleExport streams the searched and filtered drop list as an xlsx
// attachment.
func (h *AdminDropHandler) HandleExport(c *fiber.Ctx) error {
	params, err := h.listParams(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid availability. Must be: avail or soon",
		})
	}

	drops, err := h.service.Export(params)
	if err != nil {
		log.Printf("Error exporting drops: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to export drops",
		})
	}

	var buf bytes.Buffer
	if err := export.WriteDrops(&buf, drops); err != nil {
		log.Printf("Error writing drop workbook: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to export drops",
		})
	}

	filename := fmt.Sprintf("drops_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}
