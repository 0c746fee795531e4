package service

import (
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
	enrollModel "eventpoint_backend/internals/features/enrollments/model"
	eventModel "eventpoint_backend/internals/features/events/model"
	notifService "eventpoint_backend/internals/features/notifications/service"
	settingModel "eventpoint_backend/internals/features/settings/model"
	userModel "eventpoint_backend/internals/features/users/auth/model"
)

// setupTestDB butuh Postgres sungguhan (gen_random_uuid, perilaku
// transaksi & unique constraint). Set TEST_DATABASE_URL untuk menjalankan.
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
		&eventModel.EventModel{},
		&enrollModel.EnrollmentModel{},
		&attendanceModel.AttendanceModel{},
		&settingModel.AdminSettingModel{},
	))

	db.Exec("TRUNCATE enrollments, attendances, events, admin_settings, users CASCADE")

	require.NoError(t, db.Create(&settingModel.AdminSettingModel{
		AdminSettingID:   settingModel.AdminSettingRowID,
		AllowCustomEvent: true,
	}).Error)

	return db
}

func newService(db *gorm.DB) *EnrollmentService {
	// FCM tanpa credential → push jadi no-op, cocok untuk test
	return New(db, &notifService.FcmService{})
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

func makeEvent(t *testing.T, db *gorm.DB, pointValue, maxStudent int) *eventModel.EventModel {
	t.Helper()
	e := &eventModel.EventModel{
		EventTitle:       "Event Test",
		EventDescription: "deskripsi",
		EventPointValue:  pointValue,
		EventDate:        time.Now().UTC(),
		EventTime:        "10:00",
		EventMaxStudent:  maxStudent,
	}
	require.NoError(t, db.Create(e).Error)
	return e
}

func setAutoApprove(t *testing.T, db *gorm.DB, on bool) {
	t.Helper()
	require.NoError(t, db.Model(&settingModel.AdminSettingModel{}).
		Where("admin_setting_id = ?", settingModel.AdminSettingRowID).
		UpdateColumn("auto_approve_point", on).Error)
}

func fiberStatus(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "harus *fiber.Error, dapat: %v", err)
	return fe.Code
}

/* ===================== CREATE ===================== */

func TestCreateEnrollment(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	user := makeUser(t, db)
	event := makeEvent(t, db, 10, 5)

	enr, err := svc.CreateEnrollment(user.ID, event.EventID)
	require.NoError(t, err)
	assert.Equal(t, constants.EnrollStatusJoin, enr.EnrollmentStatus)
	assert.False(t, enr.EnrollmentClaimPoint)

	var updated eventModel.EventModel
	require.NoError(t, db.First(&updated, "event_id = ?", event.EventID).Error)
	assert.Equal(t, 1, updated.EventStudentEnrolled)
}

func TestCreateEnrollmentEventNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	user := makeUser(t, db)

	_, err := svc.CreateEnrollment(user.ID, uuid.New())
	assert.Equal(t, fiber.StatusNotFound, fiberStatus(t, err))
}

func TestCreateEnrollmentCapacityFull(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	event := makeEvent(t, db, 10, 1)

	_, err := svc.CreateEnrollment(makeUser(t, db).ID, event.EventID)
	require.NoError(t, err)

	_, err = svc.CreateEnrollment(makeUser(t, db).ID, event.EventID)
	assert.Equal(t, fiber.StatusBadRequest, fiberStatus(t, err))

	// counter tidak boleh lewat kuota walau attempt kedua gagal
	var updated eventModel.EventModel
	require.NoError(t, db.First(&updated, "event_id = ?", event.EventID).Error)
	assert.Equal(t, 1, updated.EventStudentEnrolled)
}

func TestCreateEnrollmentDuplicate(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	user := makeUser(t, db)
	event := makeEvent(t, db, 10, 5)

	_, err := svc.CreateEnrollment(user.ID, event.EventID)
	require.NoError(t, err)

	_, err = svc.CreateEnrollment(user.ID, event.EventID)
	assert.Equal(t, fiber.StatusConflict, fiberStatus(t, err))

	// rollback: counter tetap 1
	var updated eventModel.EventModel
	require.NoError(t, db.First(&updated, "event_id = ?", event.EventID).Error)
	assert.Equal(t, 1, updated.EventStudentEnrolled)
}

/* ===================== CLAIM ===================== */

func TestClaimPointsMissingIDsFailsWholeBatch(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	user := makeUser(t, db)
	event := makeEvent(t, db, 10, 5)

	enr, err := svc.CreateEnrollment(user.ID, event.EventID)
	require.NoError(t, err)

	ghost := uuid.New()
	_, err = svc.ClaimPoints(user.ID, []uuid.UUID{enr.EnrollmentID, ghost})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberStatus(t, err))
	assert.Contains(t, err.Error(), ghost.String())

	// baris valid ikut batal
	var row enrollModel.EnrollmentModel
	require.NoError(t, db.First(&row, "enrollment_id = ?", enr.EnrollmentID).Error)
	assert.False(t, row.EnrollmentClaimPoint)
}

func TestClaimPointsManualBranch(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	setAutoApprove(t, db, false)
	user := makeUser(t, db)
	event := makeEvent(t, db, 40, 5)

	enr, err := svc.CreateEnrollment(user.ID, event.EventID)
	require.NoError(t, err)

	res, err := svc.ClaimPoints(user.ID, []uuid.UUID{enr.EnrollmentID})
	require.NoError(t, err)
	assert.False(t, res.AutoApproved)
	assert.Equal(t, 1, res.Claimed)
	assert.Equal(t, 0, res.PointAwarded)

	var row enrollModel.EnrollmentModel
	require.NoError(t, db.First(&row, "enrollment_id = ?", enr.EnrollmentID).Error)
	assert.True(t, row.EnrollmentClaimPoint)
	assert.Equal(t, constants.EnrollStatusJoin, row.EnrollmentStatus) // tetap JOIN

	var u userModel.UserModel
	require.NoError(t, db.First(&u, "id = ?", user.ID).Error)
	assert.Equal(t, 0, u.Point) // poin belum masuk
}

func TestClaimPointsAutoApprove(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	setAutoApprove(t, db, true)
	user := makeUser(t, db)
	e1 := makeEvent(t, db, 40, 5)
	e2 := makeEvent(t, db, 25, 5)

	enr1, err := svc.CreateEnrollment(user.ID, e1.EventID)
	require.NoError(t, err)
	enr2, err := svc.CreateEnrollment(user.ID, e2.EventID)
	require.NoError(t, err)

	res, err := svc.ClaimPoints(user.ID, []uuid.UUID{enr1.EnrollmentID, enr2.EnrollmentID})
	require.NoError(t, err)
	assert.True(t, res.AutoApproved)
	assert.Equal(t, 65, res.PointAwarded)

	var u userModel.UserModel
	require.NoError(t, db.First(&u, "id = ?", user.ID).Error)
	assert.Equal(t, 65, u.Point)

	var row enrollModel.EnrollmentModel
	require.NoError(t, db.First(&row, "enrollment_id = ?", enr1.EnrollmentID).Error)
	assert.Equal(t, constants.EnrollStatusAttended, row.EnrollmentStatus)
	assert.True(t, row.EnrollmentClaimPoint)
}

func TestClaimPointsDuplicateIDsCountedOnce(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	setAutoApprove(t, db, true)
	user := makeUser(t, db)
	event := makeEvent(t, db, 30, 5)

	enr, err := svc.CreateEnrollment(user.ID, event.EventID)
	require.NoError(t, err)

	// ID sama dua kali dalam satu batch → diproses sekali, bukan 404
	res, err := svc.ClaimPoints(user.ID, []uuid.UUID{enr.EnrollmentID, enr.EnrollmentID})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Claimed)
	assert.Equal(t, 30, res.PointAwarded)

	var u userModel.UserModel
	require.NoError(t, db.First(&u, "id = ?", user.ID).Error)
	assert.Equal(t, 30, u.Point)
}

func TestClaimPointsTwiceRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	setAutoApprove(t, db, false)
	user := makeUser(t, db)
	event := makeEvent(t, db, 10, 5)

	enr, err := svc.CreateEnrollment(user.ID, event.EventID)
	require.NoError(t, err)

	_, err = svc.ClaimPoints(user.ID, []uuid.UUID{enr.EnrollmentID})
	require.NoError(t, err)

	_, err = svc.ClaimPoints(user.ID, []uuid.UUID{enr.EnrollmentID})
	assert.Equal(t, fiber.StatusBadRequest, fiberStatus(t, err))
}

/* ===================== UPDATE STATUS ===================== */

func markPresent(t *testing.T, db *gorm.DB, userID uuid.UUID, day time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&attendanceModel.AttendanceModel{
		AttendanceUserID: userID,
		AttendanceStatus: constants.AttendancePresent,
		AttendanceDate:   day,
	}).Error)
}

func TestUpdateStatusAttendedRequiresAttendance(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	user := makeUser(t, db)
	event := makeEvent(t, db, 30, 5)

	enr, err := svc.CreateEnrollment(user.ID, event.EventID)
	require.NoError(t, err)

	// belum absen → ditolak
	_, err = svc.UpdateEnrollmentStatus(enr.EnrollmentID, constants.EnrollStatusAttended)
	assert.Equal(t, fiber.StatusBadRequest, fiberStatus(t, err))

	var u userModel.UserModel
	require.NoError(t, db.First(&u, "id = ?", user.ID).Error)
	assert.Equal(t, 0, u.Point)

	// setelah absen di hari event → poin masuk atomik
	markPresent(t, db, user.ID, event.EventDate)
	updated, err := svc.UpdateEnrollmentStatus(enr.EnrollmentID, constants.EnrollStatusAttended)
	require.NoError(t, err)
	assert.Equal(t, constants.EnrollStatusAttended, updated.EnrollmentStatus)
	assert.True(t, updated.EnrollmentClaimPoint)

	require.NoError(t, db.First(&u, "id = ?", user.ID).Error)
	assert.Equal(t, 30, u.Point)
}

func TestUpdateStatusAttendedTwiceRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	user := makeUser(t, db)
	event := makeEvent(t, db, 30, 5)

	enr, err := svc.CreateEnrollment(user.ID, event.EventID)
	require.NoError(t, err)
	markPresent(t, db, user.ID, event.EventDate)

	_, err = svc.UpdateEnrollmentStatus(enr.EnrollmentID, constants.EnrollStatusAttended)
	require.NoError(t, err)

	_, err = svc.UpdateEnrollmentStatus(enr.EnrollmentID, constants.EnrollStatusAttended)
	assert.Equal(t, fiber.StatusBadRequest, fiberStatus(t, err))

	// poin tidak dobel
	var u userModel.UserModel
	require.NoError(t, db.First(&u, "id = ?", user.ID).Error)
	assert.Equal(t, 30, u.Point)
}

func TestUpdateStatusRejectedAwardsNothing(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	user := makeUser(t, db)
	event := makeEvent(t, db, 30, 5)

	enr, err := svc.CreateEnrollment(user.ID, event.EventID)
	require.NoError(t, err)

	updated, err := svc.UpdateEnrollmentStatus(enr.EnrollmentID, constants.EnrollStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, constants.EnrollStatusRejected, updated.EnrollmentStatus)

	var u userModel.UserModel
	require.NoError(t, db.First(&u, "id = ?", user.ID).Error)
	assert.Equal(t, 0, u.Point)

	// terminal: tidak bisa diubah lagi
	_, err = svc.UpdateEnrollmentStatus(enr.EnrollmentID, constants.EnrollStatusAttended)
	assert.Equal(t, fiber.StatusBadRequest, fiberStatus(t, err))
}

func TestUpdateStatusInvalidTarget(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)

	_, err := svc.UpdateEnrollmentStatus(uuid.New(), "APPROVED")
	assert.Equal(t, fiber.StatusBadRequest, fiberStatus(t, err))

	_, err = svc.UpdateEnrollmentStatus(uuid.New(), constants.EnrollStatusJoin)
	assert.Equal(t, fiber.StatusBadRequest, fiberStatus(t, err))
}

/* ===================== LIST ===================== */

func TestGetAllClaimedOnlyManualQueue(t *testing.T) {
	db := setupTestDB(t)
	svc := newService(db)
	setAutoApprove(t, db, false)
	user := makeUser(t, db)
	e1 := makeEvent(t, db, 10, 5)
	e2 := makeEvent(t, db, 20, 5)

	enr1, err := svc.CreateEnrollment(user.ID, e1.EventID)
	require.NoError(t, err)
	_, err = svc.CreateEnrollment(user.ID, e2.EventID)
	require.NoError(t, err)

	_, err = svc.ClaimPoints(user.ID, []uuid.UUID{enr1.EnrollmentID})
	require.NoError(t, err)

	rows, err := svc.GetAllClaimed()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, enr1.EnrollmentID, rows[0].EnrollmentID)
	assert.Equal(t, user.UserName, rows[0].UserName)
	assert.Equal(t, 10, rows[0].EventPointValue)
}
