package helper

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)

	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, int64(45), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestBuildPaginationFromPageEmpty(t *testing.T) {
	p := BuildPaginationFromPage(0, 1, 20)

	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestBuildPaginationFromPageNormalizesBadInput(t *testing.T) {
	p := BuildPaginationFromPage(10, 0, -5)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
}

func TestStatusToErrorCode(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", statusToErrorCode(fiber.StatusBadRequest))
	assert.Equal(t, "UNAUTHORIZED", statusToErrorCode(fiber.StatusUnauthorized))
	assert.Equal(t, "FORBIDDEN", statusToErrorCode(fiber.StatusForbidden))
	assert.Equal(t, "NOT_FOUND", statusToErrorCode(fiber.StatusNotFound))
	assert.Equal(t, "CONFLICT", statusToErrorCode(fiber.StatusConflict))
	assert.Equal(t, "TOO_MANY_REQUESTS", statusToErrorCode(fiber.StatusTooManyRequests))
	assert.Equal(t, "INTERNAL_ERROR", statusToErrorCode(fiber.StatusInternalServerError))
	assert.Equal(t, "ERROR", statusToErrorCode(fiber.StatusTeapot))
}

func TestValidationErrorMapsFieldTags(t *testing.T) {
	type form struct {
		Name string `validate:"required"`
		Age  int    `validate:"gte=0"`
	}

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		err := validator.New().Struct(form{Name: "", Age: -1})
		return ValidationError(c, err)
	})

	res, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var parsed ErrorResponse
	require.NoError(t, json.Unmarshal(body, &parsed))
	assert.Equal(t, "VALIDATION_ERROR", parsed.ErrorCode)
	assert.Contains(t, parsed.Errors["Name"], "required")
	assert.Contains(t, parsed.Errors["Age"], "gte")
}

func TestValidationErrorNonValidatorFallsBack(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return ValidationError(c, errors.New("body rusak"))
	})

	res, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, res.StatusCode)
}

func TestLenOf(t *testing.T) {
	assert.Equal(t, 0, lenOf(nil))
	assert.Equal(t, 3, lenOf([]int{1, 2, 3}))
	assert.Equal(t, 2, lenOf(map[string]int{"a": 1, "b": 2}))
	assert.Equal(t, 0, lenOf(42))
}
