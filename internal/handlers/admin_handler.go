package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"futurewear/internal/models"
	"futurewear/internal/services"
)

// AdminHandler serves the back-office dashboard stats, profile and
// settings endpoints.
type AdminHandler struct {
	service  *services.AdminService
	validate *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(service *services.AdminService) *AdminHandler {
	return &AdminHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the dashboard routes behind the auth middleware.
// The middleware is mounted per sub-path so the neighbouring
// /admin/auth routes stay reachable.
func (h *AdminHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	router.Get("/admin/stats", auth, h.HandleStats)

	profileRoutes := router.Group("/admin/profile", auth)
	profileRoutes.Get("/", h.HandleGetProfile)
	profileRoutes.Put("/", h.HandleUpdateProfile)

	settingsRoutes := router.Group("/admin/settings", auth)
	settingsRoutes.Get("/", h.HandleGetSettings)
	settingsRoutes.Put("/", h.HandleUpdateSettings)
}

// HandleStats returns the dashboard counters.
func (h *AdminHandler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats()
	if err != nil {
		log.Printf("Error computing stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch statistics",
		})
	}
	return c.JSON(stats)
}

// HandleGetProfile returns the admin profile.
func (h *AdminHandler) HandleGetProfile(c *fiber.Ctx) error {
	return c.JSON(h.service.Profile())
}

// HandleUpdateProfile replaces the editable profile fields.
func (h *AdminHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var input models.AdminProfileInput
	if err := parseBody(c, &input); err != nil {
		log.Printf("Error parsing profile body: %v", err)
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
	return c.JSON(h.service.UpdateProfile(input))
}

// HandleGetSettings returns the admin settings.
func (h *AdminHandler) HandleGetSettings(c *fiber.Ctx) error {
	return c.JSON(h.service.Settings())
}

// HandleUpdateSettings applies a partial settings update; omitted sections
// are left untouched.
func (h *AdminHandler) HandleUpdateSettings(c *fiber.Ctx) error {
	var update models.AdminSettingsUpdate
	if err := parseBody(c, &update); err != nil {
		log.Printf("Error parsing settings body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}
	return c.JSON(h.service.UpdateSettings(update))
}
