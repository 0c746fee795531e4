package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"eventpoint_backend/internals/constants"
	attendanceDto "eventpoint_backend/internals/features/attendance/dto"
	attendanceModel "eventpoint_backend/internals/features/attendance/model"
	helper "eventpoint_backend/internals/helpers"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// 🔒 POST /record — absen hari ini (maks 1x per hari kalender UTC)
func (ctrl *AttendanceController) RecordAttendance(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	dayStart, dayEnd := helper.TodayRangeUTC()

	var existing int64
	if err := ctrl.DB.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_user_id = ? AND attendance_date BETWEEN ? AND ?", userID, dayStart, dayEnd).
		Count(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kehadiran")
	}
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Sudah absen hari ini")
	}

	rec := attendanceModel.AttendanceModel{
		AttendanceUserID: userID,
		AttendanceStatus: constants.AttendancePresent,
		AttendanceDate:   time.Now().UTC(),
	}
	if err := ctrl.DB.Create(&rec).Error; err != nil {
		// Check-in serentak yang lolos hitungan di atas mentok di unique
		// index (user, day) → tetap 409, bukan baris ganda
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Sudah absen hari ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan kehadiran")
	}
	return helper.JsonCreated(c, "Kehadiran tercatat", attendanceDto.ToAttendanceResponse(&rec))
}

// 🔒👑 GET /by-date?date=YYYY-MM-DD — semua kehadiran di satu hari UTC
func (ctrl *AttendanceController) GetByDate(c *fiber.Ctx) error {
	dateStr := strings.TrimSpace(c.Query("date"))
	if dateStr == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query date wajib diisi (YYYY-MM-DD)")
	}
	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format date harus YYYY-MM-DD")
	}

	dayStart, dayEnd := helper.DayRangeUTC(day)

	var rows []attendanceDto.AttendanceWithUserResponse
	if err := ctrl.DB.Table("attendances").
		Select(`attendances.*, users.user_name`).
		Joins("JOIN users ON users.id = attendances.attendance_user_id").
		Where("attendances.attendance_date BETWEEN ? AND ?", dayStart, dayEnd).
		Order("attendances.attendance_created_at ASC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kehadiran")
	}
	return helper.JsonOK(c, "Kehadiran tanggal "+dateStr, rows)
}

// 🔒 GET /me/today — status absen user hari ini
func (ctrl *AttendanceController) MyToday(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	dayStart, dayEnd := helper.TodayRangeUTC()

	var rec attendanceModel.AttendanceModel
	err = ctrl.DB.
		Where("attendance_user_id = ? AND attendance_date BETWEEN ? AND ?", userID, dayStart, dayEnd).
		First(&rec).Error
	if err != nil {
		return helper.JsonOK(c, "Belum absen hari ini", fiber.Map{"present": false})
	}
	return helper.JsonOK(c, "Sudah absen hari ini", fiber.Map{
		"present":    true,
		"attendance": attendanceDto.ToAttendanceResponse(&rec),
	})
}

// isUniqueViolation: deteksi pelanggaran unique constraint Postgres (23505)
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") || strings.Contains(msg, "duplicate key")
}
