package database

import (
	"log"

	"gorm.io/gorm"

	attendanceModel "eventpoint_backend/internals/features/attendance/model"
	enrollModel "eventpoint_backend/internals/features/enrollments/model"
	eventModel "eventpoint_backend/internals/features/events/model"
	settingModel "eventpoint_backend/internals/features/settings/model"
	authModel "eventpoint_backend/internals/features/users/auth/model"
)

// Migrate menjalankan AutoMigrate untuk semua tabel aplikasi.
// Urutan: users dulu karena tabel lain mengacu ke sana.
func Migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&authModel.UserModel{},
		&authModel.TokenBlacklist{},
		&eventModel.EventModel{},
		&eventModel.OutsideEventModel{},
		&enrollModel.EnrollmentModel{},
		&attendanceModel.AttendanceModel{},
		&settingModel.AdminSettingModel{},
	)
	if err != nil {
		log.Fatalf("❌ Gagal migrasi database: %v", err)
	}
	log.Println("✅ Migrasi database selesai")
}
