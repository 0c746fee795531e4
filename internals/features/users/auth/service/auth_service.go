package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"eventpoint_backend/internals/configs"
	"eventpoint_backend/internals/features/mailer"
	notifService "eventpoint_backend/internals/features/notifications/service"
	authDto "eventpoint_backend/internals/features/users/auth/dto"
	authModel "eventpoint_backend/internals/features/users/auth/model"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

type AuthService struct {
	DB  *gorm.DB
	FCM *notifService.FcmService
}

func New(db *gorm.DB, fcm *notifService.FcmService) *AuthService {
	return &AuthService{DB: db, FCM: fcm}
}

/* ===================== TOKEN ===================== */

func generateToken(user *authModel.UserModel, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func (s *AuthService) issueTokenPair(user *authModel.UserModel) (access, refresh string, err error) {
	access, err = generateToken(user, configs.JWTSecret, accessTokenTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = generateToken(user, configs.JWTRefreshSecret, refreshTokenTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

/* ===================== REGISTER / LOGIN ===================== */

// Register: akun baru selalu inactive sampai admin mengaktifkan
func (s *AuthService) Register(req *authDto.RegisterRequest) (*authModel.UserModel, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := req.ToModel(string(hashed))
	if err := s.DB.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "Username sudah dipakai")
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(req *authDto.LoginRequest) (*authDto.LoginResponse, error) {
	var user authModel.UserModel
	if err := s.DB.First(&user, "user_name = ?", req.UserName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Username atau password salah")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Username atau password salah")
	}
	if user.IsDeleted {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Akun sudah dihapus")
	}
	if !user.IsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Akun belum diaktifkan admin")
	}

	access, refresh, err := s.issueTokenPair(&user)
	if err != nil {
		return nil, err
	}
	return &authDto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         authDto.ToUserResponse(&user),
	}, nil
}

// RefreshTokens memvalidasi refresh token lalu menerbitkan pasangan baru
func (s *AuthService) RefreshTokens(refreshToken string) (*authDto.TokenPairResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("metode signing tidak dikenal")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak valid")
	}
	idStr, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak valid")
	}

	var user authModel.UserModel
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if user.IsDeleted || !user.IsActive {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Akun tidak aktif")
	}

	access, refresh, err := s.issueTokenPair(&user)
	if err != nil {
		return nil, err
	}
	return &authDto.TokenPairResponse{AccessToken: access, RefreshToken: refresh}, nil
}

/* ===================== LOGOUT / PASSWORD ===================== */

// Logout memasukkan access token ke blacklist sampai kedaluwarsa alaminya
func (s *AuthService) Logout(rawToken string) error {
	expiredAt := time.Now().Add(accessTokenTTL)
	if token, _, err := jwt.NewParser().ParseUnverified(rawToken, jwt.MapClaims{}); err == nil {
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if exp, ok := claims["exp"].(float64); ok {
				expiredAt = time.Unix(int64(exp), 0)
			}
		}
	}

	return s.DB.Create(&authModel.TokenBlacklist{
		Token:     rawToken,
		ExpiredAt: expiredAt,
	}).Error
}

func (s *AuthService) ChangePassword(userID uuid.UUID, req *authDto.ChangePasswordRequest) error {
	var user authModel.UserModel
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Password lama salah")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.DB.Model(&authModel.UserModel{}).
		Where("id = ?", userID).
		UpdateColumn("password", string(hashed)).Error
}

// ForgotPassword: reset password ke nilai acak lalu kirim lewat antrean email.
// Respons selalu sama ada/tidaknya user, supaya tidak bocor keberadaan akun.
func (s *AuthService) ForgotPassword(ctx context.Context, req *authDto.ForgotPasswordRequest) {
	var user authModel.UserModel
	if err := s.DB.First(&user, "user_name = ? AND is_deleted = ?", req.UserName, false).Error; err != nil {
		return
	}

	newPassword := uuid.New().String()[:12]
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] Gagal hash password reset: %v", err)
		return
	}
	if err := s.DB.Model(&authModel.UserModel{}).
		Where("id = ?", user.ID).
		UpdateColumn("password", string(hashed)).Error; err != nil {
		log.Printf("[ERROR] Gagal simpan password reset: %v", err)
		return
	}

	mailer.Enqueue(ctx, mailer.MailJob{
		To:      req.Email,
		Subject: "Reset Password",
		Body: fmt.Sprintf(
			"<p>Halo %s,</p><p>Password sementara kamu: <b>%s</b></p><p>Segera ganti setelah login.</p>",
			user.FirstName, newPassword),
	})
}

/* ===================== ADMIN ===================== */

// ActivateUser: admin mengaktifkan akun; user dikabari via push kalau punya token
func (s *AuthService) ActivateUser(userID uuid.UUID) error {
	var user authModel.UserModel
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return err
	}
	if user.IsActive {
		return fiber.NewError(fiber.StatusBadRequest, "Akun sudah aktif")
	}

	if err := s.DB.Model(&authModel.UserModel{}).
		Where("id = ?", userID).
		UpdateColumn("is_active", true).Error; err != nil {
		return err
	}

	if user.FcmToken != nil {
		if err := s.FCM.SendPush(*user.FcmToken, "Akun aktif",
			"Akun kamu sudah diaktifkan admin, selamat datang!",
			map[string]string{"type": "account_activated"},
		); err != nil {
			log.Printf("[ERROR] Push aktivasi akun gagal: %v", err)
		}
	}
	return nil
}

// isUniqueViolation: deteksi pelanggaran unique constraint Postgres (23505)
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") || strings.Contains(msg, "duplicate key")
}
