package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// HeaderAPIKey is the request header carrying the API key.
const HeaderAPIKey = "X-Api-Key"

// APIKey validates the configured API key on every request. An empty
// configured key disables the check entirely.
func APIKey(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if key == "" {
			return c.Next()
		}
		provided := c.Get(HeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid api key",
			})
		}
		return c.Next()
	}
}
