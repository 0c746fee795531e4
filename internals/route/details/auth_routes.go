package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifService "eventpoint_backend/internals/features/notifications/service"
	authController "eventpoint_backend/internals/features/users/auth/controller"
	"eventpoint_backend/internals/middlewares"
	authMiddleware "eventpoint_backend/internals/middlewares/auth"
)

// AuthRoutes: endpoint publik + beberapa yang butuh token
func AuthRoutes(app *fiber.App, db *gorm.DB, fcm *notifService.FcmService) {
	ctrl := authController.NewAuthController(db, fcm)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/refresh-token", ctrl.RefreshToken)
	auth.Post("/forgot-password", middlewares.ForgotPasswordRateLimiter(), ctrl.ForgotPassword)

	secured := auth.Group("", authMiddleware.AuthMiddleware(db))
	secured.Post("/logout", ctrl.Logout)
	secured.Patch("/change-password", ctrl.ChangePassword)
}
