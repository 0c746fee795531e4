package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "eventpoint_backend/internals/features/users/auth/model"
)

/* ===================== REQUESTS ===================== */

type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
	UserName  string `json:"user_name" validate:"required,min=3,max=50"`
	Password  string `json:"password" validate:"required,min=8"`
}

// ToModel: password DIHASH di service, bukan di sini.
// Akun baru selalu inactive sampai diaktifkan admin.
func (r RegisterRequest) ToModel(hashedPassword string) *model.UserModel {
	return &model.UserModel{
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		UserName:  strings.TrimSpace(r.UserName),
		Password:  hashedPassword,
		IsActive:  false,
	}
}

type LoginRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

type ForgotPasswordRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

// Update profil parsial; image di-upload sebagai multipart, bukan bagian JSON ini
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=100"`
}

func (r *UpdateProfileRequest) ApplyToModel(m *model.UserModel) {
	if r.FirstName != nil {
		m.FirstName = strings.TrimSpace(*r.FirstName)
	}
	if r.LastName != nil {
		m.LastName = strings.TrimSpace(*r.LastName)
	}
}

type SaveFcmTokenRequest struct {
	FcmToken string `json:"fcm_token" validate:"required"`
}

/* ===================== RESPONSES ===================== */

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	UserName  string    `json:"user_name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	Point     int       `json:"point"`
	Image     *string   `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUserResponse(u *model.UserModel) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		UserName:  u.UserName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		Point:     u.Point,
		Image:     u.Image,
		CreatedAt: u.CreatedAt,
	}
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LeaderboardEntry: lima besar berdasarkan saldo poin
type LeaderboardEntry struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	UserName  string    `json:"user_name"`
	Point     int       `json:"point"`
	Image     *string   `json:"image,omitempty"`
}
