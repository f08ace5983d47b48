package utils

import (
	"github.com/gofiber/fiber/v2"
)

// PickQuery extracts only the whitelisted, non-empty query parameters.
func PickQuery(c *fiber.Ctx, fields []string) map[string]string {
	picked := make(map[string]string)
	for _, field := range fields {
		if value := c.Query(field); value != "" {
			picked[field] = value
		}
	}
	return picked
}
