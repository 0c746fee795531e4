package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "eventpoint_backend/internals/helpers"
)

// perIPLimiter membangun limiter sliding-window keyed by IP.
// Respons 429 memakai envelope error standar aplikasi.
func perIPLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               max,
		Expiration:        window,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// Limiter longgar untuk seluruh API
func GlobalRateLimiter() fiber.Handler {
	return perIPLimiter(120, 1*time.Minute,
		"Terlalu banyak permintaan dari IP ini, coba lagi sebentar lagi")
}

// Login dibatasi ketat untuk menahan brute force kredensial
func LoginRateLimiter() fiber.Handler {
	return perIPLimiter(5, 1*time.Minute,
		"Terlalu banyak percobaan login, tunggu satu menit")
}

// Register dibatasi per IP untuk menahan pendaftaran massal
func RegisterRateLimiter() fiber.Handler {
	return perIPLimiter(3, 5*time.Minute,
		"Terlalu banyak pendaftaran dari IP ini, tunggu beberapa menit")
}

// Forgot-password sangat ketat: tiap permintaan mengirim email
func ForgotPasswordRateLimiter() fiber.Handler {
	return perIPLimiter(2, 10*time.Minute,
		"Terlalu banyak permintaan reset password, coba lagi dalam 10 menit")
}
