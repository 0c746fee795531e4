package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventpoint_backend/internals/constants"
	enrollDto "eventpoint_backend/internals/features/enrollments/dto"
	enrollService "eventpoint_backend/internals/features/enrollments/service"
	notifService "eventpoint_backend/internals/features/notifications/service"
	helper "eventpoint_backend/internals/helpers"
)

var validate = validator.New()

type EnrollmentController struct {
	DB      *gorm.DB
	Service *enrollService.EnrollmentService
}

func NewEnrollmentController(db *gorm.DB, fcm *notifService.FcmService) *EnrollmentController {
	return &EnrollmentController{
		DB:      db,
		Service: enrollService.New(db, fcm),
	}
}

// 🔒 POST /createEnroll/:eventId — daftar ke event (kuota dicek atomik)
func (ctrl *EnrollmentController) CreateEnrollment(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	eventID, err := uuid.Parse(c.Params("eventId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "eventId tidak valid")
	}

	enr, err := ctrl.Service.CreateEnrollment(userID, eventID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Berhasil mendaftar event", enrollDto.ToEnrollmentResponse(enr))
}

// 🔒 POST /claim-points — klaim batch, all-or-nothing
func (ctrl *EnrollmentController) ClaimPoints(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req enrollDto.ClaimPointsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := ctrl.Service.ClaimPoints(userID, req.EnrollmentIDs)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	msg := "Klaim tercatat, menunggu approval admin"
	if res.AutoApproved {
		msg = "Klaim disetujui otomatis"
	}
	return helper.JsonOK(c, msg, res)
}

// 🔒👑 PATCH /approvePoint/:enrollmentId — approve/scan/reject oleh admin
func (ctrl *EnrollmentController) UpdateEnrollmentStatus(c *fiber.Ctx) error {
	enrollmentID, err := uuid.Parse(c.Params("enrollmentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "enrollmentId tidak valid")
	}

	var req enrollDto.UpdateEnrollmentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	enr, err := ctrl.Service.UpdateEnrollmentStatus(enrollmentID, req.Status)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Status enrollment diperbarui", enrollDto.ToEnrollmentResponse(enr))
}

// 🔒👑 GET /AllClaimed-point — antrean klaim manual
func (ctrl *EnrollmentController) GetAllClaimed(c *fiber.Ctx) error {
	rows, err := ctrl.Service.GetAllClaimed()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil antrean klaim")
	}
	return helper.JsonOK(c, "Antrean klaim poin", rows)
}

// 🔒 GET /my — semua enrollment milik user
func (ctrl *EnrollmentController) MyEnrollments(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	rows, err := ctrl.Service.ListUserEnrollments(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil enrollment")
	}
	return helper.JsonOK(c, "Enrollment kamu", rows)
}

// 🔒 GET /my/attended — riwayat yang sudah dihadiri
func (ctrl *EnrollmentController) MyAttended(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	rows, err := ctrl.Service.ListUserEnrollments(userID, constants.EnrollStatusAttended)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat")
	}
	return helper.JsonOK(c, "Event yang sudah dihadiri", rows)
}
