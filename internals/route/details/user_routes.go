package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifService "eventpoint_backend/internals/features/notifications/service"
	"eventpoint_backend/internals/features/storage"
	authController "eventpoint_backend/internals/features/users/auth/controller"

	"eventpoint_backend/internals/constants"
	authMiddleware "eventpoint_backend/internals/middlewares/auth"
)

// UserRoutes: profil, leaderboard, FCM token + manajemen user oleh admin
func UserRoutes(r fiber.Router, db *gorm.DB, fcm *notifService.FcmService, s3 *storage.S3Storage) {
	ctrl := authController.NewUserController(db, fcm, s3)

	users := r.Group("/users")
	users.Get("/profile", ctrl.GetProfile)
	users.Patch("/profile", ctrl.UpdateProfile)
	users.Patch("/fcm-token", ctrl.SaveFcmToken)
	users.Get("/leaderboard", ctrl.Leaderboard)

	admin := users.Group("",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("manajemen user"), constants.AdminOnly))
	admin.Get("/", ctrl.ListUsers)
	admin.Get("/inactive", ctrl.ListInactiveUsers)
	admin.Patch("/:userId/activate", ctrl.ActivateUser)
}
