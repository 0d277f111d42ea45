package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"futurewear/internal/query"
)

// parseBody decodes a JSON request body into dst, rejecting unknown fields.
func parseBody(c *fiber.Ctx, dst interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// validationMessages flattens validator errors into a field -> reason map.
func validationMessages(err error) map[string]string {
	messages := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		messages["body"] = err.Error()
		return messages
	}
	for _, e := range validationErrors {
		messages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return messages
}

// queryBool returns the boolean-as-string query parameter, or nil when the
// parameter is absent. Only the literal "true" counts as true.
func queryBool(c *fiber.Ctx, name string) *bool {
	if !c.Context().QueryArgs().Has(name) {
		return nil
	}
	v := c.Query(name) == "true"
	return &v
}

// queryInt returns the integer query parameter, or def when absent or
// malformed.
func queryInt(c *fiber.Ctx, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// queryOrder returns the sort direction, defaulting to ascending for
// anything other than "desc".
func queryOrder(c *fiber.Ctx) query.SortOrder {
	if c.Query("order") == "desc" {
		return query.OrderDesc
	}
	return query.OrderAsc
}
