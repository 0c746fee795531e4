// internals/middlewares/auth/claim_utils.go
package auth

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "eventpoint_backend/internals/features/users/auth/model"
)

/* ======== Extractors ======== */

func extractBearerToken(c *fiber.Ctx) (string, error) {
	// 1) Ambil dari Authorization header atau fallback cookie
	auth := strings.TrimSpace(c.Get("Authorization"))
	if auth == "" {
		if cookieTok := c.Cookies("access_token"); cookieTok != "" {
			auth = "Bearer " + cookieTok
		}
	}
	if auth == "" {
		return "", fmt.Errorf("unauthorized - No token provided")
	}

	// 2) Robust split: toleransi spasi ganda & case-insensitive
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", fmt.Errorf("unauthorized - Invalid token format")
	}
	tok := strings.TrimSpace(fields[1])
	tok = strings.Trim(tok, "\"'")

	if tok == "" {
		return "", fmt.Errorf("unauthorized - Empty token")
	}
	return tok, nil
}

func validateTokenExpiry(claims jwt.MapClaims, skew time.Duration) error {
	expVal, ok := claims["exp"]
	if !ok {
		return fmt.Errorf("token has no exp")
	}

	var expUnix int64
	switch t := expVal.(type) {
	case float64:
		expUnix = int64(t)
	case int64:
		expUnix = t
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid exp format")
		}
		expUnix = n
	default:
		return fmt.Errorf("invalid exp type")
	}

	if time.Now().Add(-skew).Unix() > expUnix {
		return fmt.Errorf("token expired")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["user_id"]
	if !ok {
		// fallback klaim standar
		raw, ok = claims["sub"]
		if !ok {
			return uuid.Nil, fmt.Errorf("missing user_id claim")
		}
	}
	s, ok := raw.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fmt.Errorf("invalid user_id claim")
	}
	return uuid.Parse(strings.TrimSpace(s))
}

func ensureUserActive(db *gorm.DB, userID uuid.UUID) error {
	var u userModel.UserModel
	if err := db.Select("id", "is_active", "is_deleted").Where("id = ?", userID).First(&u).Error; err != nil {
		return err
	}
	if !u.IsActive || u.IsDeleted {
		return fmt.Errorf("user inactive or deleted")
	}
	return nil
}

func storeBasicClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if role, ok := claims["role"].(string); ok {
		c.Locals("userRole", role)
	}
	// klaim dari auth service bernama "user_name"
	if username, ok := claims["user_name"].(string); ok {
		c.Locals("userName", username)
	}
}
