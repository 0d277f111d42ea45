package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"futurewear/internal/services"
)

// TokenCookie is the cookie carrying the admin session token.
const TokenCookie = "admin_token"

// TokenFromRequest extracts the session token from the admin_token cookie,
// falling back to a Bearer Authorization header.
func TokenFromRequest(c *fiber.Ctx) string {
	if token := c.Cookies(TokenCookie); token != "" {
		return token
	}
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// AuthRequired rejects requests without a valid session token. Public
// storefront listings bypass this entirely; only admin mutations and
// back-office reads sit behind it.
func AuthRequired(validator services.SessionValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := TokenFromRequest(c)
		if token == "" || !validator.Validate(token) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		return c.Next()
	}
}
