package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventpoint_backend/internals/constants"
	attendanceModel "eventpoint_backend/internals/features/attendance/model"
	enrollDto "eventpoint_backend/internals/features/enrollments/dto"
	enrollModel "eventpoint_backend/internals/features/enrollments/model"
	eventModel "eventpoint_backend/internals/features/events/model"
	notifService "eventpoint_backend/internals/features/notifications/service"
	settingModel "eventpoint_backend/internals/features/settings/model"
	userModel "eventpoint_backend/internals/features/users/auth/model"
	helper "eventpoint_backend/internals/helpers"
)

type EnrollmentService struct {
	DB  *gorm.DB
	FCM *notifService.FcmService
}

func New(db *gorm.DB, fcm *notifService.FcmService) *EnrollmentService {
	return &EnrollmentService{DB: db, FCM: fcm}
}

// pendingPush: notifikasi yang DITUNDA sampai commit sukses. Kalau transaksi
// rollback, tidak ada push yang keluar; kalau push gagal setelah commit,
// cukup dicatat di log (mutasi data tidak ikut gagal).
type pendingPush struct {
	token string
	title string
	body  string
	data  map[string]string
}

func (s *EnrollmentService) flushOutbox(outbox []pendingPush) {
	for _, p := range outbox {
		if err := s.FCM.SendPush(p.token, p.title, p.body, p.data); err != nil {
			log.Printf("[ERROR] Push setelah commit gagal: %v", err)
		}
	}
}

/* ===================== CREATE ENROLLMENT ===================== */

// CreateEnrollment mendaftarkan user ke event. Kapasitas dijaga lewat satu
// UPDATE kondisional (event_student_enrolled < event_max_student) sehingga
// dua pendaftar serentak tidak bisa melewati kuota.
func (s *EnrollmentService) CreateEnrollment(userID, eventID uuid.UUID) (*enrollModel.EnrollmentModel, error) {
	var created enrollModel.EnrollmentModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var event eventModel.EventModel
		if err := tx.First(&event, "event_id = ?", eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Event tidak ditemukan")
			}
			return err
		}

		res := tx.Model(&eventModel.EventModel{}).
			Where("event_id = ? AND event_student_enrolled < event_max_student", eventID).
			UpdateColumn("event_student_enrolled", gorm.Expr("event_student_enrolled + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Kuota event sudah penuh")
		}

		created = enrollModel.EnrollmentModel{
			EnrollmentUserID:  userID,
			EnrollmentEventID: eventID,
			EnrollmentStatus:  constants.EnrollStatusJoin,
		}
		if err := tx.Create(&created).Error; err != nil {
			if isUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "Kamu sudah terdaftar di event ini")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

/* ===================== CLAIM POINTS (BATCH) ===================== */

// ClaimPoints memproses klaim poin batch milik satu user.
// Validasi all-or-nothing: semua id harus ada & milik user tsb; id yang
// hilang disebut satu per satu. Baris yang status-nya bukan JOIN atau sudah
// pernah klaim menggagalkan seluruh batch.
func (s *EnrollmentService) ClaimPoints(userID uuid.UUID, ids []uuid.UUID) (*enrollDto.ClaimPointsResult, error) {
	// ID ganda dalam satu batch dihitung satu kali
	seen := make(map[uuid.UUID]bool, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	ids = unique

	result := &enrollDto.ClaimPointsResult{}
	var outbox []pendingPush

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var rows []enrollModel.EnrollmentModel
		if err := tx.
			Where("enrollment_id IN ? AND enrollment_user_id = ?", ids, userID).
			Find(&rows).Error; err != nil {
			return err
		}

		if len(rows) != len(ids) {
			found := make(map[uuid.UUID]bool, len(rows))
			for _, r := range rows {
				found[r.EnrollmentID] = true
			}
			var missing []string
			for _, id := range ids {
				if !found[id] {
					missing = append(missing, id.String())
				}
			}
			return fiber.NewError(fiber.StatusNotFound,
				fmt.Sprintf("Enrollment tidak ditemukan: %s", strings.Join(missing, ", ")))
		}

		for _, r := range rows {
			if r.EnrollmentClaimPoint {
				return fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("Enrollment %s sudah pernah diklaim", r.EnrollmentID))
			}
			if r.EnrollmentStatus != constants.EnrollStatusJoin {
				return fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("Enrollment %s berstatus %s, tidak bisa diklaim", r.EnrollmentID, r.EnrollmentStatus))
			}
		}

		var setting settingModel.AdminSettingModel
		if err := tx.First(&setting, "admin_setting_id = ?", settingModel.AdminSettingRowID).Error; err != nil {
			return err
		}

		if !setting.AutoApprovePoint {
			// Branch manual: tandai klaim saja, poin menunggu approval admin
			if err := tx.Model(&enrollModel.EnrollmentModel{}).
				Where("enrollment_id IN ?", ids).
				UpdateColumn("enrollment_claim_point", true).Error; err != nil {
				return err
			}
			result.Claimed = len(rows)
			return nil
		}

		// Branch auto-approve: langsung ATTENDED + poin masuk
		total := 0
		for _, r := range rows {
			var event eventModel.EventModel
			if err := tx.First(&event, "event_id = ?", r.EnrollmentEventID).Error; err != nil {
				return err
			}
			total += event.EventPointValue
		}

		if err := tx.Model(&enrollModel.EnrollmentModel{}).
			Where("enrollment_id IN ?", ids).
			Updates(map[string]interface{}{
				"enrollment_status":      constants.EnrollStatusAttended,
				"enrollment_claim_point": true,
			}).Error; err != nil {
			return err
		}

		if err := tx.Model(&userModel.UserModel{}).
			Where("id = ?", userID).
			UpdateColumn("point", gorm.Expr("point + ?", total)).Error; err != nil {
			return err
		}

		result.Claimed = len(rows)
		result.AutoApproved = true
		result.PointAwarded = total

		var user userModel.UserModel
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}
		if user.IsEventApproveNotify && user.FcmToken != nil {
			outbox = append(outbox, pendingPush{
				token: *user.FcmToken,
				title: "Poin disetujui",
				body:  fmt.Sprintf("Klaim kamu disetujui otomatis, +%d poin", total),
				data:  map[string]string{"type": "point_approved"},
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.flushOutbox(outbox)
	return result, nil
}

/* ===================== UPDATE STATUS (ADMIN) ===================== */

// UpdateEnrollmentStatus menangani approve/scan/reject oleh admin.
// ATTENDED mensyaratkan ada record kehadiran PRESENT pada hari kalender UTC
// tanggal event, lalu poin diberikan atomik bersama perubahan status.
// SCANNED dan REJECTED tidak pernah memberi poin.
func (s *EnrollmentService) UpdateEnrollmentStatus(enrollmentID uuid.UUID, newStatus string) (*enrollModel.EnrollmentModel, error) {
	if !constants.IsValidEnrollStatus(newStatus) || newStatus == constants.EnrollStatusJoin {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Status tujuan tidak valid")
	}

	var updated enrollModel.EnrollmentModel
	var outbox []pendingPush

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var enr enrollModel.EnrollmentModel
		if err := tx.First(&enr, "enrollment_id = ?", enrollmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Enrollment tidak ditemukan")
			}
			return err
		}

		switch enr.EnrollmentStatus {
		case constants.EnrollStatusAttended:
			return fiber.NewError(fiber.StatusBadRequest, "Enrollment sudah ATTENDED")
		case constants.EnrollStatusRejected:
			return fiber.NewError(fiber.StatusBadRequest, "Enrollment sudah REJECTED")
		}
		if newStatus == constants.EnrollStatusScanned && enr.EnrollmentStatus != constants.EnrollStatusJoin {
			return fiber.NewError(fiber.StatusBadRequest, "Hanya enrollment JOIN yang bisa di-scan")
		}

		var event eventModel.EventModel
		if err := tx.First(&event, "event_id = ?", enr.EnrollmentEventID).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{"enrollment_status": newStatus}

		if newStatus == constants.EnrollStatusAttended {
			dayStart, dayEnd := helper.DayRangeUTC(event.EventDate)
			var present int64
			if err := tx.Model(&attendanceModel.AttendanceModel{}).
				Where("attendance_user_id = ? AND attendance_status = ? AND attendance_date BETWEEN ? AND ?",
					enr.EnrollmentUserID, constants.AttendancePresent, dayStart, dayEnd).
				Count(&present).Error; err != nil {
				return err
			}
			if present == 0 {
				return fiber.NewError(fiber.StatusBadRequest,
					"User tidak tercatat hadir pada tanggal event")
			}

			updates["enrollment_claim_point"] = true
			if err := tx.Model(&userModel.UserModel{}).
				Where("id = ?", enr.EnrollmentUserID).
				UpdateColumn("point", gorm.Expr("point + ?", event.EventPointValue)).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&enrollModel.EnrollmentModel{}).
			Where("enrollment_id = ?", enrollmentID).
			Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.First(&updated, "enrollment_id = ?", enrollmentID).Error; err != nil {
			return err
		}

		var user userModel.UserModel
		if err := tx.First(&user, "id = ?", enr.EnrollmentUserID).Error; err != nil {
			return err
		}
		if user.IsEventApproveNotify && user.FcmToken != nil {
			switch newStatus {
			case constants.EnrollStatusAttended:
				outbox = append(outbox, pendingPush{
					token: *user.FcmToken,
					title: "Poin disetujui",
					body:  fmt.Sprintf("Kehadiranmu di %s disetujui, +%d poin", event.EventTitle, event.EventPointValue),
					data:  map[string]string{"type": "point_approved", "event_id": event.EventID.String()},
				})
			case constants.EnrollStatusRejected:
				outbox = append(outbox, pendingPush{
					token: *user.FcmToken,
					title: "Klaim ditolak",
					body:  fmt.Sprintf("Klaim poin untuk %s ditolak admin", event.EventTitle),
					data:  map[string]string{"type": "point_rejected", "event_id": event.EventID.String()},
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.flushOutbox(outbox)
	return &updated, nil
}

/* ===================== LISTS ===================== */

// GetAllClaimed: antrean approval manual (claim_point=true, status masih JOIN)
func (s *EnrollmentService) GetAllClaimed() ([]enrollDto.ClaimedEnrollmentResponse, error) {
	var rows []enrollDto.ClaimedEnrollmentResponse
	err := s.DB.Table("enrollments").
		Select(`enrollments.enrollment_id,
		        enrollments.enrollment_status,
		        enrollments.enrollment_claim_point,
		        enrollments.enrollment_created_at,
		        users.id AS user_id,
		        users.user_name,
		        events.event_id,
		        events.event_title,
		        events.event_point_value,
		        events.event_date`).
		Joins("JOIN users ON users.id = enrollments.enrollment_user_id").
		Joins("JOIN events ON events.event_id = enrollments.enrollment_event_id").
		Where("enrollments.enrollment_claim_point = ? AND enrollments.enrollment_status = ?",
			true, constants.EnrollStatusJoin).
		Order("enrollments.enrollment_created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListUserEnrollments: enrollment milik user dengan detail event-nya.
// statuses kosong = semua status.
func (s *EnrollmentService) ListUserEnrollments(userID uuid.UUID, statuses ...string) ([]enrollDto.UserEnrollmentResponse, error) {
	q := s.DB.Table("enrollments").
		Select(`enrollments.enrollment_id,
		        enrollments.enrollment_status,
		        enrollments.enrollment_claim_point,
		        enrollments.enrollment_created_at,
		        events.event_id,
		        events.event_title,
		        events.event_date,
		        events.event_time,
		        events.event_point_value`).
		Joins("JOIN events ON events.event_id = enrollments.enrollment_event_id").
		Where("enrollments.enrollment_user_id = ?", userID)
	if len(statuses) > 0 {
		q = q.Where("enrollments.enrollment_status IN ?", statuses)
	}

	var rows []enrollDto.UserEnrollmentResponse
	if err := q.Order("events.event_date DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// isUniqueViolation: deteksi pelanggaran unique constraint Postgres (23505)
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") || strings.Contains(msg, "duplicate key")
}
