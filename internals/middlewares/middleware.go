package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMiddleware "eventpoint_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar (urutan penting: recovery paling awal)
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
