package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifService "eventpoint_backend/internals/features/notifications/service"
	authDto "eventpoint_backend/internals/features/users/auth/dto"
	authService "eventpoint_backend/internals/features/users/auth/service"
	helper "eventpoint_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB      *gorm.DB
	Service *authService.AuthService
}

func NewAuthController(db *gorm.DB, fcm *notifService.FcmService) *AuthController {
	return &AuthController{
		DB:      db,
		Service: authService.New(db, fcm),
	}
}

// 🟢 POST /register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req authDto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := ctrl.Service.Register(&req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Registrasi berhasil, tunggu aktivasi admin", authDto.ToUserResponse(user))
}

// 🟢 POST /login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req authDto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := ctrl.Service.Login(&req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Login berhasil", res)
}

// 🟢 POST /refresh-token
func (ctrl *AuthController) RefreshToken(c *fiber.Ctx) error {
	var req authDto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := ctrl.Service.RefreshTokens(req.RefreshToken)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Token diperbarui", res)
}

// 🔒 POST /logout — token aktif masuk blacklist
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	raw := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if raw == "" {
		raw = c.Cookies("access_token")
	}
	if raw == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token tidak ditemukan")
	}

	if err := ctrl.Service.Logout(raw); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// 🔒 PATCH /change-password
func (ctrl *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req authDto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.Service.ChangePassword(userID, &req); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Password berhasil diganti", nil)
}

// 🟢 POST /forgot-password — respons selalu 200 supaya tidak bocor keberadaan akun
func (ctrl *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var req authDto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ctrl.Service.ForgotPassword(c.Context(), &req)
	return helper.JsonOK(c, "Kalau akun terdaftar, email reset sudah dikirim", nil)
}
