package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	model "eventpoint_backend/internals/features/users/auth/model"
)

var validate = validator.New()

func TestRegisterRequestToModel(t *testing.T) {
	req := RegisterRequest{
		FirstName: "  Budi ",
		LastName:  "Santoso",
		UserName:  " budi123 ",
		Password:  "rahasia-banget",
	}

	m := req.ToModel("$2a$10$hashed")

	assert.Equal(t, "Budi", m.FirstName)
	assert.Equal(t, "budi123", m.UserName)
	assert.Equal(t, "$2a$10$hashed", m.Password)
	assert.False(t, m.IsActive) // selalu nonaktif sampai diaktifkan admin
}

func TestRegisterRequestValidation(t *testing.T) {
	assert.Error(t, validate.Struct(RegisterRequest{
		FirstName: "Budi",
		LastName:  "Santoso",
		UserName:  "bu", // < 3
		Password:  "pendek", // < 8
	}))

	assert.NoError(t, validate.Struct(RegisterRequest{
		FirstName: "Budi",
		LastName:  "Santoso",
		UserName:  "budi123",
		Password:  "rahasia-banget",
	}))
}

func TestUpdateProfileRequestApplyToModelPartial(t *testing.T) {
	m := &model.UserModel{FirstName: "Budi", LastName: "Santoso"}

	newFirst := " Bambang "
	req := UpdateProfileRequest{FirstName: &newFirst}
	req.ApplyToModel(m)

	assert.Equal(t, "Bambang", m.FirstName)
	assert.Equal(t, "Santoso", m.LastName)
}

func TestToUserResponseHidesPassword(t *testing.T) {
	u := &model.UserModel{
		UserName: "budi123",
		Password: "secret-hash",
		Point:    120,
	}

	res := ToUserResponse(u)
	assert.Equal(t, "budi123", res.UserName)
	assert.Equal(t, 120, res.Point)
	// UserResponse memang tidak punya field password sama sekali
}
