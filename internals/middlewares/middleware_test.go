package middlewares

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "eventpoint_backend/internals/helpers"
)

func TestPerIPLimiterBlocksAfterMax(t *testing.T) {
	app := fiber.New()
	app.Use(perIPLimiter(2, time.Minute, "Terlalu banyak permintaan"))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	for i := 0; i < 2; i++ {
		res, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, res.StatusCode)
	}

	res, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, res.StatusCode)

	// respons 429 pakai envelope error standar, bukan fiber.Map polos
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var parsed helper.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &parsed))
	assert.False(t, parsed.Success)
	assert.Equal(t, "TOO_MANY_REQUESTS", parsed.ErrorCode)
	assert.Equal(t, "Terlalu banyak permintaan", parsed.Message)
}

func TestRecoveryMiddlewareTurnsPanicInto500(t *testing.T) {
	app := fiber.New()
	app.Use(RecoveryMiddleware())
	app.Get("/boom", func(c *fiber.Ctx) error {
		panic("meledak")
	})

	res, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, res.StatusCode)
}
