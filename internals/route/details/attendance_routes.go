package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventpoint_backend/internals/constants"
	attendanceController "eventpoint_backend/internals/features/attendance/controller"
	authMiddleware "eventpoint_backend/internals/middlewares/auth"
)

// AttendanceRoutes: absen harian + rekap per tanggal untuk admin
func AttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	att := r.Group("/attendance")
	att.Post("/record", ctrl.RecordAttendance)
	att.Get("/me/today", ctrl.MyToday)

	att.Get("/by-date",
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("rekap kehadiran"), constants.AdminOnly),
		ctrl.GetByDate)
}
