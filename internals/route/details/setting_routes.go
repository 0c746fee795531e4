package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventpoint_backend/internals/constants"
	settingController "eventpoint_backend/internals/features/settings/controller"
	authMiddleware "eventpoint_backend/internals/middlewares/auth"
)

// SettingRoutes: flag global (admin) + toggle notifikasi per-user
func SettingRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := settingController.NewSettingController(db)

	settings := r.Group("/settings")
	settings.Get("/me", ctrl.GetMyNotifySetting)
	settings.Patch("/me", ctrl.UpdateMyNotifySetting)

	adminGuard := authMiddleware.OnlyRolesSlice(
		constants.RoleErrorAdmin("pengaturan global"), constants.AdminOnly)
	settings.Get("/admin", adminGuard, ctrl.GetAdminSetting)
	settings.Patch("/admin", adminGuard, ctrl.UpdateAdminSetting)
}
