package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "sbb_backend/internals/helpers"
)

// Global limiter for every endpoint.
func GlobalRateLimiter(max int) fiber.Handler {
	return newLimiter(max, 1*time.Minute, "too many requests, try again later")
}

// Stricter limiter for endpoints that write questions or answers.
func WriteRateLimiter() fiber.Handler {
	return newLimiter(20, 1*time.Minute, "too many posts, slow down a little")
}

func newLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}
