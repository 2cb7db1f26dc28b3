package handlers

import (
	"slices"

	"github.com/gofiber/fiber/v3"
)

// Preflight answers OPTIONS requests that the CORS middleware passes through,
// such as those sent without an Origin header.
func Preflight(origins []string) fiber.Handler {
	wildcard := slices.Contains(origins, "*")
	return func(c fiber.Ctx) error {
		if wildcard {
			c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
		}
		c.Set(fiber.HeaderAccessControlAllowMethods, "GET, POST, OPTIONS")
		c.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type")
		return c.SendStatus(fiber.StatusNoContent)
	}
}
