package service

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventpoint_backend/internals/constants"
	eventDto "eventpoint_backend/internals/features/events/dto"
	eventModel "eventpoint_backend/internals/features/events/model"
	notifService "eventpoint_backend/internals/features/notifications/service"
	settingModel "eventpoint_backend/internals/features/settings/model"
	userModel "eventpoint_backend/internals/features/users/auth/model"
)

type EventService struct {
	DB  *gorm.DB
	FCM *notifService.FcmService
}

func New(db *gorm.DB, fcm *notifService.FcmService) *EventService {
	return &EventService{DB: db, FCM: fcm}
}

/* ===================== EVENT (ADMIN) ===================== */

// CreateEvent menyimpan event baru, lalu (di luar transaksi) broadcast push
// ke user aktif yang opt-in, kalau flag notify_on_event_create menyala.
func (s *EventService) CreateEvent(m *eventModel.EventModel) error {
	if err := s.DB.Create(m).Error; err != nil {
		return err
	}

	var setting settingModel.AdminSettingModel
	if err := s.DB.First(&setting, "admin_setting_id = ?", settingModel.AdminSettingRowID).Error; err != nil {
		log.Printf("[ERROR] Gagal baca admin setting: %v", err)
		return nil
	}
	if !setting.NotifyEventCreate {
		return nil
	}

	var tokens []string
	if err := s.DB.Model(&userModel.UserModel{}).
		Where("is_active = ? AND is_deleted = ? AND is_new_event_notify = ? AND fcm_token IS NOT NULL",
			true, false, true).
		Pluck("fcm_token", &tokens).Error; err != nil {
		log.Printf("[ERROR] Gagal ambil token untuk broadcast event baru: %v", err)
		return nil
	}

	res := s.FCM.SendBulkPush(tokens, "Event baru",
		fmt.Sprintf("%s — %d poin, daftar sekarang!", m.EventTitle, m.EventPointValue),
		map[string]string{"type": "new_event", "event_id": m.EventID.String()})
	if len(res.InvalidTokens) > 0 {
		s.clearInvalidTokens(res.InvalidTokens)
	}
	return nil
}

// UpdateEvent: parsial; kuota tidak boleh turun di bawah jumlah terdaftar
func (s *EventService) UpdateEvent(eventID uuid.UUID, req *eventDto.UpdateEventRequest) (*eventModel.EventModel, error) {
	var event eventModel.EventModel
	if err := s.DB.First(&event, "event_id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return nil, err
	}

	req.ApplyToModel(&event)
	if event.EventMaxStudent < event.EventStudentEnrolled {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			"Kuota baru lebih kecil dari jumlah peserta terdaftar")
	}

	if err := s.DB.Save(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *EventService) DeleteEvent(eventID uuid.UUID) error {
	res := s.DB.Delete(&eventModel.EventModel{}, "event_id = ?", eventID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Event tidak ditemukan")
	}
	return nil
}

/* ===================== EVENT (USER) ===================== */

// UpcomingEvents: event mendatang + penanda sudah terdaftar atau belum
func (s *EventService) UpcomingEvents(userID uuid.UUID) ([]eventDto.UpcomingEventResponse, error) {
	var events []eventModel.EventModel
	if err := s.DB.
		Where("event_date >= CURRENT_DATE").
		Order("event_date ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}

	var enrolledIDs []uuid.UUID
	if err := s.DB.Table("enrollments").
		Where("enrollment_user_id = ?", userID).
		Pluck("enrollment_event_id", &enrolledIDs).Error; err != nil {
		return nil, err
	}
	enrolled := make(map[uuid.UUID]bool, len(enrolledIDs))
	for _, id := range enrolledIDs {
		enrolled[id] = true
	}

	out := make([]eventDto.UpcomingEventResponse, 0, len(events))
	for i := range events {
		out = append(out, eventDto.UpcomingEventResponse{
			EventResponse: eventDto.ToEventResponse(&events[i]),
			IsEnrolled:    enrolled[events[i].EventID],
		})
	}
	return out, nil
}

// UserEventStats: rekap join vs hadir untuk dashboard user
func (s *EventService) UserEventStats(userID uuid.UUID) (*eventDto.EventStatsResponse, error) {
	stats := &eventDto.EventStatsResponse{}
	base := s.DB.Table("enrollments").Where("enrollment_user_id = ?", userID)

	if err := base.Session(&gorm.Session{}).Count(&stats.TotalJoined).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).
		Where("enrollment_status = ?", constants.EnrollStatusAttended).
		Count(&stats.TotalAttended).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *EventService) clearInvalidTokens(tokens []string) {
	if err := s.DB.Model(&userModel.UserModel{}).
		Where("fcm_token IN ?", tokens).
		UpdateColumn("fcm_token", nil).Error; err != nil {
		log.Printf("[ERROR] Gagal bersihkan token invalid: %v", err)
	}
}
