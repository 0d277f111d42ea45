package handlers

import (
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"futurewear/internal/models"
	"futurewear/internal/services"
)

// CartHandler drives the cart state machine over HTTP. The size query
// parameter on line endpoints is significant in two ways: absent means
// "all sizes of this id", present-but-empty means "only the unsized line".
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGet)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Patch("/items/:id", h.HandleUpdateQuantity)
	cartRoutes.Delete("/items/:id", h.HandleRemoveItem)
	cartRoutes.Delete("/", h.HandleClear)
}

// HandleGet returns the cart lines and totals.
func (h *CartHandler) HandleGet(c *fiber.Ctx) error {
	return c.JSON(h.cartState())
}

// HandleAddItem adds a line to the cart, merging with an existing
// (id, size) line. Quantity defaults to 1.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var input models.CartItemInput
	if err := parseBody(c, &input); err != nil {
		log.Printf("Error parsing cart item body: %v", err)
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

	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}
	h.service.AddItem(models.CartItem{
		ID:    input.ID,
		Name:  input.Name,
		Price: input.Price,
		Image: input.Image,
		Size:  input.Size,
	}, quantity)

	return c.Status(fiber.StatusCreated).JSON(h.cartState())
}

// HandleUpdateQuantity sets a line's quantity; zero or less removes the
// line.
func (h *CartHandler) HandleUpdateQuantity(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid item ID",
		})
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := parseBody(c, &body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if c.Context().QueryArgs().Has("size") {
		h.service.UpdateQuantitySized(id, body.Quantity, c.Query("size"))
	} else {
		h.service.UpdateQuantity(id, body.Quantity)
	}
	return c.JSON(h.cartState())
}

// HandleRemoveItem removes lines for an id: every size when the size
// parameter is absent, only the exact size when present.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid item ID",
		})
	}

	if c.Context().QueryArgs().Has("size") {
		h.service.RemoveItemSized(id, c.Query("size"))
	} else {
		h.service.RemoveItem(id)
	}
	return c.JSON(h.cartState())
}

// HandleClear empties the cart.
func (h *CartHandler) HandleClear(c *fiber.Ctx) error {
	h.service.Clear()
	return c.JSON(h.cartState())
}

func (h *CartHandler) cartState() fiber.Map {
	return fiber.Map{
		"items":      h.service.Items(),
		"totalItems": h.service.TotalItems(),
		"totalPrice": h.service.TotalPrice(),
		"isOpen":     h.service.IsOpen(),
	}
}
