package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventpoint_backend/internals/constants"
	enrollController "eventpoint_backend/internals/features/enrollments/controller"
	notifService "eventpoint_backend/internals/features/notifications/service"
	authMiddleware "eventpoint_backend/internals/middlewares/auth"
)

// EnrollmentRoutes: pendaftaran event + alur klaim/approval poin
func EnrollmentRoutes(r fiber.Router, db *gorm.DB, fcm *notifService.FcmService) {
	ctrl := enrollController.NewEnrollmentController(db, fcm)

	adminGuard := authMiddleware.OnlyRolesSlice(
		constants.RoleErrorAdmin("approval poin"), constants.AdminOnly)

	enroll := r.Group("/enrollments")
	enroll.Post("/createEnroll/:eventId", ctrl.CreateEnrollment)
	enroll.Post("/claim-points", ctrl.ClaimPoints)
	enroll.Get("/my", ctrl.MyEnrollments)
	enroll.Get("/my/attended", ctrl.MyAttended)

	enroll.Get("/AllClaimed-point", adminGuard, ctrl.GetAllClaimed)
	enroll.Patch("/approvePoint/:enrollmentId", adminGuard, ctrl.UpdateEnrollmentStatus)
}
