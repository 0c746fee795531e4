package controller

import (
	"errors"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	notifService "eventpoint_backend/internals/features/notifications/service"
	"eventpoint_backend/internals/features/storage"
	authDto "eventpoint_backend/internals/features/users/auth/dto"
	authModel "eventpoint_backend/internals/features/users/auth/model"
	authService "eventpoint_backend/internals/features/users/auth/service"
	helper "eventpoint_backend/internals/helpers"
)

type UserController struct {
	DB      *gorm.DB
	Service *authService.AuthService
	Storage *storage.S3Storage
}

func NewUserController(db *gorm.DB, fcm *notifService.FcmService, s3 *storage.S3Storage) *UserController {
	return &UserController{
		DB:      db,
		Service: authService.New(db, fcm),
		Storage: s3,
	}
}

// 🔒 GET /profile
func (ctrl *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var user authModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}
	return helper.JsonOK(c, "Profil ditemukan", authDto.ToUserResponse(&user))
}

// 🔒 PATCH /profile — multipart: field JSON opsional + file "image" opsional
func (ctrl *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var user authModel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	var req authDto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.ApplyToModel(&user)

	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "File tidak bisa dibaca")
		}
		defer f.Close()

		buf, err := io.ReadAll(f)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "File tidak bisa dibaca")
		}

		contentType := fh.Header.Get("Content-Type")
		url, err := ctrl.Storage.Upload(c.Context(), "profiles", fh.Filename, contentType, buf)
		if err != nil {
			log.Printf("[ERROR] Upload foto profil gagal: %v", err)
			return helper.JsonError(c, fiber.StatusBadGateway, "Upload foto gagal")
		}
		user.Image = &url
	}

	if err := ctrl.DB.Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan profil")
	}
	return helper.JsonUpdated(c, "Profil diperbarui", authDto.ToUserResponse(&user))
}

// 🔒 PATCH /fcm-token — simpan device token untuk push
func (ctrl *UserController) SaveFcmToken(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req authDto.SaveFcmTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.DB.Model(&authModel.UserModel{}).
		Where("id = ?", userID).
		UpdateColumn("fcm_token", req.FcmToken).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan token")
	}
	return helper.JsonUpdated(c, "FCM token tersimpan", nil)
}

// 🔒 GET /leaderboard — lima besar berdasarkan saldo poin
func (ctrl *UserController) Leaderboard(c *fiber.Ctx) error {
	var rows []authDto.LeaderboardEntry
	if err := ctrl.DB.Model(&authModel.UserModel{}).
		Select("id, first_name, last_name, user_name, point, image").
		Where("is_active = ? AND is_deleted = ?", true, false).
		Order("point DESC").
		Limit(5).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil leaderboard")
	}
	return helper.JsonOK(c, "Leaderboard", rows)
}

/* ===================== ADMIN ===================== */

// 🔒👑 GET /users — semua user aktif, dengan pagination
func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	base := ctrl.DB.Model(&authModel.UserModel{}).Where("is_deleted = ?", false)
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung user")
	}

	var users []authModel.UserModel
	if err := base.Session(&gorm.Session{}).
		Order("created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	out := make([]authDto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, authDto.ToUserResponse(&users[i]))
	}
	return helper.JsonList(c, "Daftar user", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// 🔒👑 GET /users/inactive — akun yang belum diaktifkan
func (ctrl *UserController) ListInactiveUsers(c *fiber.Ctx) error {
	var users []authModel.UserModel
	if err := ctrl.DB.
		Where("is_active = ? AND is_deleted = ?", false, false).
		Order("created_at ASC").
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	out := make([]authDto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, authDto.ToUserResponse(&users[i]))
	}
	return helper.JsonOK(c, "User belum aktif", out)
}

// 🔒👑 PATCH /users/:userId/activate
func (ctrl *UserController) ActivateUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "userId tidak valid")
	}

	if err := ctrl.Service.ActivateUser(userID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Akun diaktifkan", nil)
}
