package controller

import (
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eventpoint_backend/internals/constants"
	attendanceModel "eventpoint_backend/internals/features/attendance/model"
	userModel "eventpoint_backend/internals/features/users/auth/model"
)

// Butuh Postgres sungguhan untuk unique index (user, day).
// Set TEST_DATABASE_URL untuk menjalankan.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL tidak diset, skip test DB")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&attendanceModel.AttendanceModel{},
	))
	db.Exec("TRUNCATE attendances, users CASCADE")

	return db
}

func makeUser(t *testing.T, db *gorm.DB) *userModel.UserModel {
	t.Helper()
	u := &userModel.UserModel{
		FirstName: "Test",
		LastName:  "User",
		UserName:  "user_" + uuid.New().String()[:8],
		Password:  "hashed",
		IsActive:  true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

// app mini: middleware stub mengisi locals seperti auth middleware asli
func testApp(db *gorm.DB, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		return c.Next()
	})
	ctrl := NewAttendanceController(db)
	app.Post("/record", ctrl.RecordAttendance)
	return app
}

func TestRecordAttendanceDuplicateSameDay(t *testing.T) {
	db := setupTestDB(t)
	user := makeUser(t, db)
	app := testApp(db, user.ID)

	res, err := app.Test(httptest.NewRequest("POST", "/record", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, res.StatusCode)

	// hari yang sama → 409, tidak ada baris kedua
	res, err = app.Test(httptest.NewRequest("POST", "/record", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, res.StatusCode)

	var count int64
	require.NoError(t, db.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_user_id = ?", user.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

// Dua insert langsung (melewati guard count di controller) tetap mentok
// di unique index — ini yang menutup celah check-in serentak.
func TestAttendanceUniquePerUserPerDay(t *testing.T) {
	db := setupTestDB(t)
	user := makeUser(t, db)
	now := time.Now().UTC()

	first := attendanceModel.AttendanceModel{
		AttendanceUserID: user.ID,
		AttendanceStatus: constants.AttendancePresent,
		AttendanceDate:   now,
	}
	require.NoError(t, db.Create(&first).Error)

	second := attendanceModel.AttendanceModel{
		AttendanceUserID: user.ID,
		AttendanceStatus: constants.AttendancePresent,
		AttendanceDate:   now.Add(2 * time.Hour), // jam beda, hari sama
	}
	err := db.Create(&second).Error
	require.Error(t, err)
	assert.True(t, isUniqueViolation(err))

	// hari berbeda tetap boleh
	third := attendanceModel.AttendanceModel{
		AttendanceUserID: user.ID,
		AttendanceStatus: constants.AttendancePresent,
		AttendanceDate:   now.Add(24 * time.Hour),
	}
	assert.NoError(t, db.Create(&third).Error)
}

func TestAttendanceOtherUserSameDayAllowed(t *testing.T) {
	db := setupTestDB(t)
	now := time.Now().UTC()

	for i := 0; i < 2; i++ {
		u := makeUser(t, db)
		rec := attendanceModel.AttendanceModel{
			AttendanceUserID: u.ID,
			AttendanceStatus: constants.AttendancePresent,
			AttendanceDate:   now,
		}
		assert.NoError(t, db.Create(&rec).Error)
	}
}
