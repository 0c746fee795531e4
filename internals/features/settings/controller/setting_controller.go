package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingDto "eventpoint_backend/internals/features/settings/dto"
	settingModel "eventpoint_backend/internals/features/settings/model"
	userModel "eventpoint_backend/internals/features/users/auth/model"
	helper "eventpoint_backend/internals/helpers"
)

var validate = validator.New()

type SettingController struct {
	DB *gorm.DB
}

func NewSettingController(db *gorm.DB) *SettingController {
	return &SettingController{DB: db}
}

/* ===================== ADMIN SETTING (SINGLETON) ===================== */

// 🔒👑 GET /admin
func (ctrl *SettingController) GetAdminSetting(c *fiber.Ctx) error {
	var setting settingModel.AdminSettingModel
	if err := ctrl.DB.First(&setting, "admin_setting_id = ?", settingModel.AdminSettingRowID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca pengaturan")
	}
	return helper.JsonOK(c, "Pengaturan admin", settingDto.ToAdminSettingResponse(&setting))
}

// 🔒👑 PATCH /admin — update parsial flag global
func (ctrl *SettingController) UpdateAdminSetting(c *fiber.Ctx) error {
	var req settingDto.UpdateAdminSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var setting settingModel.AdminSettingModel
	if err := ctrl.DB.First(&setting, "admin_setting_id = ?", settingModel.AdminSettingRowID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca pengaturan")
	}

	req.ApplyToModel(&setting)
	if err := ctrl.DB.Save(&setting).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengaturan")
	}
	return helper.JsonUpdated(c, "Pengaturan diperbarui", settingDto.ToAdminSettingResponse(&setting))
}

/* ===================== USER NOTIFY SETTING ===================== */

// 🔒 GET /me
func (ctrl *SettingController) GetMyNotifySetting(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.JsonOK(c, "Pengaturan notifikasi", settingDto.UserNotifySettingResponse{
		IsEventApproveNotify: user.IsEventApproveNotify,
		IsNewEventNotify:     user.IsNewEventNotify,
		IsEventReminder:      user.IsEventReminder,
	})
}

// 🔒 PATCH /me — toggle notifikasi per-user
func (ctrl *SettingController) UpdateMyNotifySetting(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req settingDto.UpdateUserNotifySettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.IsEventApproveNotify != nil {
		updates["is_event_approve_notify"] = *req.IsEventApproveNotify
	}
	if req.IsNewEventNotify != nil {
		updates["is_new_event_notify"] = *req.IsNewEventNotify
	}
	if req.IsEventReminder != nil {
		updates["is_event_reminder"] = *req.IsEventReminder
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada perubahan dikirim")
	}

	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan pengaturan")
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membaca ulang pengaturan")
	}
	return helper.JsonUpdated(c, "Pengaturan notifikasi diperbarui", settingDto.UserNotifySettingResponse{
		IsEventApproveNotify: user.IsEventApproveNotify,
		IsNewEventNotify:     user.IsNewEventNotify,
		IsEventReminder:      user.IsEventReminder,
	})
}
