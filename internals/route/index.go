package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifService "eventpoint_backend/internals/features/notifications/service"
	"eventpoint_backend/internals/features/storage"
	authMiddleware "eventpoint_backend/internals/middlewares/auth"
	routeDetails "eventpoint_backend/internals/route/details"
)

// SetupRoutes memasang seluruh route aplikasi.
// /api/auth → publik; /api/u → login wajib; /api/a → login + role ADMIN.
func SetupRoutes(app *fiber.App, db *gorm.DB, fcm *notifService.FcmService) {
	s3 := storage.NewS3Storage()

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db, fcm)

	protected := app.Group("/api", authMiddleware.AuthMiddleware(db))

	log.Println("[INFO] Setting up UserRoutes...")
	routeDetails.UserRoutes(protected, db, fcm, s3)

	log.Println("[INFO] Setting up EventRoutes...")
	routeDetails.EventRoutes(protected, db, fcm)

	log.Println("[INFO] Setting up EnrollmentRoutes...")
	routeDetails.EnrollmentRoutes(protected, db, fcm)

	log.Println("[INFO] Setting up AttendanceRoutes...")
	routeDetails.AttendanceRoutes(protected, db)

	log.Println("[INFO] Setting up SettingRoutes...")
	routeDetails.SettingRoutes(protected, db)
}
