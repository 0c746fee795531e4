package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventpoint_backend/internals/constants"
	attendanceModel "eventpoint_backend/internals/features/attendance/model"
	eventDto "eventpoint_backend/internals/features/events/dto"
	eventModel "eventpoint_backend/internals/features/events/model"
	settingModel "eventpoint_backend/internals/features/settings/model"
	userModel "eventpoint_backend/internals/features/users/auth/model"
	helper "eventpoint_backend/internals/helpers"
)

/* ===================== OUTSIDE EVENT ===================== */

// CreateOutsideEvent: user mengajukan event di luar katalog.
// Ditolak 403 kalau admin mematikan allow_custom_event.
func (s *EventService) CreateOutsideEvent(m *eventModel.OutsideEventModel) error {
	var setting settingModel.AdminSettingModel
	if err := s.DB.First(&setting, "admin_setting_id = ?", settingModel.AdminSettingRowID).Error; err != nil {
		return err
	}
	if !setting.AllowCustomEvent {
		return fiber.NewError(fiber.StatusForbidden, "Pengajuan event mandiri sedang dinonaktifkan admin")
	}
	return s.DB.Create(m).Error
}

// ListUnapprovedOutsideEvents: antrean review admin, ikut nama pengajunya
func (s *EventService) ListUnapprovedOutsideEvents() ([]eventDto.OutsideEventWithUserResponse, error) {
	var rows []eventDto.OutsideEventWithUserResponse
	err := s.DB.Table("outside_events").
		Select(`outside_events.*, users.user_name`).
		Joins("JOIN users ON users.id = outside_events.outside_event_user_id").
		Where("outside_events.outside_event_approved = ?", false).
		Order("outside_events.outside_event_created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ApproveOutsideEvent: syaratnya user tercatat PRESENT pada hari kalender UTC
// tanggal event. Poin + flag approved berubah dalam satu transaksi; push
// baru dikirim setelah commit.
func (s *EventService) ApproveOutsideEvent(outsideEventID uuid.UUID) (*eventModel.OutsideEventModel, error) {
	var oe eventModel.OutsideEventModel
	var user userModel.UserModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&oe, "outside_event_id = ?", outsideEventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Outside event tidak ditemukan")
			}
			return err
		}
		if oe.OutsideEventApproved {
			return fiber.NewError(fiber.StatusBadRequest, "Outside event sudah approved")
		}

		dayStart, dayEnd := helper.DayRangeUTC(oe.OutsideEventDate)
		var present int64
		if err := tx.Model(&attendanceModel.AttendanceModel{}).
			Where("attendance_user_id = ? AND attendance_status = ? AND attendance_date BETWEEN ? AND ?",
				oe.OutsideEventUserID, constants.AttendancePresent, dayStart, dayEnd).
			Count(&present).Error; err != nil {
			return err
		}
		if present == 0 {
			return fiber.NewError(fiber.StatusBadRequest,
				"User tidak tercatat hadir pada tanggal event")
		}

		if err := tx.Model(&eventModel.OutsideEventModel{}).
			Where("outside_event_id = ?", outsideEventID).
			UpdateColumn("outside_event_approved", true).Error; err != nil {
			return err
		}
		if err := tx.Model(&userModel.UserModel{}).
			Where("id = ?", oe.OutsideEventUserID).
			UpdateColumn("point", gorm.Expr("point + ?", oe.OutsideEventPointValue)).Error; err != nil {
			return err
		}
		oe.OutsideEventApproved = true

		return tx.First(&user, "id = ?", oe.OutsideEventUserID).Error
	})
	if err != nil {
		return nil, err
	}

	if user.IsEventApproveNotify && user.FcmToken != nil {
		if err := s.FCM.SendPush(*user.FcmToken, "Event kamu disetujui",
			fmt.Sprintf("%s disetujui admin, +%d poin", oe.OutsideEventTitle, oe.OutsideEventPointValue),
			map[string]string{"type": "outside_event_approved", "outside_event_id": oe.OutsideEventID.String()},
		); err != nil {
			log.Printf("[ERROR] Push approval outside event gagal: %v", err)
		}
	}
	return &oe, nil
}

// RejectOutsideEvent: hapus baris (hanya yang belum approved), lalu kabari user
func (s *EventService) RejectOutsideEvent(outsideEventID uuid.UUID) error {
	var oe eventModel.OutsideEventModel
	if err := s.DB.First(&oe, "outside_event_id = ?", outsideEventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Outside event tidak ditemukan")
		}
		return err
	}
	if oe.OutsideEventApproved {
		return fiber.NewError(fiber.StatusBadRequest, "Outside event yang sudah approved tidak bisa ditolak")
	}

	if err := s.DB.Delete(&eventModel.OutsideEventModel{}, "outside_event_id = ?", outsideEventID).Error; err != nil {
		return err
	}

	var user userModel.UserModel
	if err := s.DB.First(&user, "id = ?", oe.OutsideEventUserID).Error; err == nil &&
		user.IsEventApproveNotify && user.FcmToken != nil {
		if err := s.FCM.SendPush(*user.FcmToken, "Event kamu ditolak",
			fmt.Sprintf("Pengajuan %s ditolak admin", oe.OutsideEventTitle),
			map[string]string{"type": "outside_event_rejected"},
		); err != nil {
			log.Printf("[ERROR] Push penolakan outside event gagal: %v", err)
		}
	}
	return nil
}

// ApprovedOutsideEvents: riwayat event mandiri user yang sudah disetujui
func (s *EventService) ApprovedOutsideEvents(userID uuid.UUID) ([]eventModel.OutsideEventModel, error) {
	var rows []eventModel.OutsideEventModel
	err := s.DB.
		Where("outside_event_user_id = ? AND outside_event_approved = ?", userID, true).
		Order("outside_event_date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteOutsideEvent: pemilik boleh hapus selama belum approved
func (s *EventService) DeleteOutsideEvent(outsideEventID, userID uuid.UUID) error {
	var oe eventModel.OutsideEventModel
	if err := s.DB.First(&oe, "outside_event_id = ?", outsideEventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Outside event tidak ditemukan")
		}
		return err
	}
	if oe.OutsideEventUserID != userID {
		return fiber.NewError(fiber.StatusForbidden, "Bukan milik kamu")
	}
	if oe.OutsideEventApproved {
		return fiber.NewError(fiber.StatusBadRequest, "Outside event yang sudah approved tidak bisa dihapus")
	}
	return s.DB.Delete(&eventModel.OutsideEventModel{}, "outside_event_id = ?", outsideEventID).Error
}
