package auth

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractUserID(t *testing.T) {
	id := uuid.New()

	got, err := extractUserID(jwt.MapClaims{"user_id": id.String()})
	require.NoError(t, err)
	assert.Equal(t, id, got)

	// fallback ke klaim sub
	got, err = extractUserID(jwt.MapClaims{"sub": id.String()})
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = extractUserID(jwt.MapClaims{})
	assert.Error(t, err)

	_, err = extractUserID(jwt.MapClaims{"user_id": "bukan-uuid"})
	assert.Error(t, err)
}

func TestValidateTokenExpiry(t *testing.T) {
	future := float64(time.Now().Add(time.Hour).Unix())
	past := float64(time.Now().Add(-time.Hour).Unix())

	assert.NoError(t, validateTokenExpiry(jwt.MapClaims{"exp": future}, 0))
	assert.Error(t, validateTokenExpiry(jwt.MapClaims{"exp": past}, 0))
	assert.Error(t, validateTokenExpiry(jwt.MapClaims{}, 0))

	// skew menoleransi token yang baru saja lewat
	justPast := float64(time.Now().Add(-30 * time.Second).Unix())
	assert.NoError(t, validateTokenExpiry(jwt.MapClaims{"exp": justPast}, time.Minute))
}

// Klaim yang diterbitkan auth service memakai key "user_name" — pastikan
// yang tersimpan di locals memang terisi, bukan string kosong.
func TestStoreBasicClaimsToLocals(t *testing.T) {
	app := fiber.New()
	app.Get("/whoami", func(c *fiber.Ctx) error {
		claims := jwt.MapClaims{
			"user_id":   uuid.New().String(),
			"user_name": "budi",
			"role":      "ADMIN",
		}
		storeBasicClaimsToLocals(c, claims)

		name, _ := c.Locals("userName").(string)
		role, _ := c.Locals("userRole").(string)
		return c.SendString(name + "|" + role)
	})

	res, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	require.NoError(t, err)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, "budi|ADMIN", string(body))
}
