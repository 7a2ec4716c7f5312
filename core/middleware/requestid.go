package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderRequestID is the response header carrying the request ID.
const HeaderRequestID = "X-Request-Id"

// RequestID assigns a unique ID to every incoming request. The ID is stored
// in the context locals under "request_id" and echoed in the response header.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("request_id", rid)
		c.Set(HeaderRequestID, rid)
		return c.Next()
	}
}
