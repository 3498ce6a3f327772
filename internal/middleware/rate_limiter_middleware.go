package middleware

import (
	"time"

	"github.com/MITNIK27/ai-excel-mock-interviewer/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"go.uber.org/zap"
)

// RateLimiter allows max requests per client IP within a sliding window of
// expiration.
func RateLimiter(max int, expiration time.Duration) fiber.Handler {
	return newLimiter(max, expiration, func(c *fiber.Ctx) string {
		return c.IP()
	})
}

// SessionRateLimiter keys the window on the client IP and the session_id
// found in the query or JSON body, so one busy session cannot starve others
// behind the same address.
func SessionRateLimiter(max int, expiration time.Duration) fiber.Handler {
	return newLimiter(max, expiration, func(c *fiber.Ctx) string {
		sessionID := c.Query("session_id")
		if sessionID == "" {
			var body struct {
				SessionID string `json:"session_id"`
			}
			if err := c.BodyParser(&body); err == nil {
				sessionID = body.SessionID
			}
		}
		return c.IP() + "|" + sessionID
	})
}

func newLimiter(max int, expiration time.Duration, key func(*fiber.Ctx) string) fiber.Handler {
	if max == 0 {
		max = 50
	}
	if expiration == 0 {
		expiration = 1 * time.Minute
	}
	return limiter.New(limiter.Config{
		Max:          max,
		Expiration:   expiration,
		KeyGenerator: key,
		LimitReached: func(c *fiber.Ctx) error {
			zap.S().Named("limiter").Debugf("rate limit reached for %s %s", c.Method(), c.Path())
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusTooManyRequests,
				Message: "Too many requests",
			})
		},
		LimiterMiddleware: limiter.SlidingWindow{},
	})
}
