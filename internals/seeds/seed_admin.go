package seeds

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"eventpoint_backend/internals/configs"
	"eventpoint_backend/internals/constants"
	settingModel "eventpoint_backend/internals/features/settings/model"
	userModel "eventpoint_backend/internals/features/users/auth/model"
)

// SeedAdmin membuat akun admin awal dari env. Skip kalau sudah ada admin.
func SeedAdmin(db *gorm.DB) {
	var count int64
	if err := db.Model(&userModel.UserModel{}).
		Where("role = ?", constants.RoleAdmin).
		Count(&count).Error; err != nil {
		log.Printf("[SEED] Gagal cek admin: %v", err)
		return
	}
	if count > 0 {
		return
	}

	if configs.AdminUsername == "" || configs.AdminPassword == "" {
		log.Println("[SEED] ADMIN_USERNAME / ADMIN_PASSWORD belum diset, seeding admin dilewati")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(configs.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[SEED] Gagal hash password admin: %v", err)
		return
	}

	admin := userModel.UserModel{
		FirstName: "Admin",
		LastName:  "Utama",
		UserName:  configs.AdminUsername,
		Password:  string(hashed),
		Role:      constants.RoleAdmin,
		IsActive:  true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[SEED] Gagal buat admin: %v", err)
		return
	}
	log.Printf("[SEED] Admin %s dibuat", configs.AdminUsername)
}

// SeedAdminSetting memastikan baris konfigurasi singleton selalu ada.
func SeedAdminSetting(db *gorm.DB) {
	var count int64
	if err := db.Model(&settingModel.AdminSettingModel{}).
		Where("admin_setting_id = ?", settingModel.AdminSettingRowID).
		Count(&count).Error; err != nil {
		log.Printf("[SEED] Gagal cek admin setting: %v", err)
		return
	}
	if count > 0 {
		return
	}

	setting := settingModel.AdminSettingModel{
		AdminSettingID:    settingModel.AdminSettingRowID,
		AutoApprovePoint:  false,
		AllowCustomEvent:  true,
		NotifyEventCreate: true,
		EventReminders:    true,
	}
	if err := db.Create(&setting).Error; err != nil {
		log.Printf("[SEED] Gagal buat admin setting: %v", err)
		return
	}
	log.Println("[SEED] Baris admin setting dibuat")
}
