package scheduler

import (
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	enrollModel "eventpoint_backend/internals/features/enrollments/model"
	eventModel "eventpoint_backend/internals/features/events/model"
	notifService "eventpoint_backend/internals/features/notifications/service"
	settingModel "eventpoint_backend/internals/features/settings/model"
	userModel "eventpoint_backend/internals/features/users/auth/model"
)

// StartEventReminderScheduler menjalankan sweep H-24 tiap jam.
// Reminder dikirim maksimal sekali per enrollment (flag reminder_sent),
// jadi sweep yang tumpang tindih antar jam tidak menggandakan push.
func StartEventReminderScheduler(db *gorm.DB, fcm *notifService.FcmService) {
	go func() {
		log.Println("[REMINDER] Scheduler reminder event jalan")
		for {
			sweep(db, fcm)
			time.Sleep(1 * time.Hour)
		}
	}()
}

func sweep(db *gorm.DB, fcm *notifService.FcmService) {
	var setting settingModel.AdminSettingModel
	if err := db.First(&setting, "admin_setting_id = ?", settingModel.AdminSettingRowID).Error; err != nil {
		log.Printf("[REMINDER] Gagal baca admin setting: %v", err)
		return
	}
	if !setting.EventReminders {
		return
	}

	// Window H-24 dengan toleransi ±1 jam supaya tidak ada event yang lolos
	// di antara dua sweep berurutan.
	now := time.Now().UTC()
	winStart := now.Add(23 * time.Hour)
	winEnd := now.Add(25 * time.Hour)

	var events []eventModel.EventModel
	if err := db.
		Where("event_date BETWEEN ? AND ?", winStart.Truncate(24*time.Hour), winEnd).
		Find(&events).Error; err != nil {
		log.Printf("[REMINDER] Gagal ambil event: %v", err)
		return
	}

	for i := range events {
		ev := &events[i]
		start := combineDateTime(ev.EventDate, ev.EventTime)
		if start.Before(winStart) || start.After(winEnd) {
			continue
		}
		remindEvent(db, fcm, ev)
	}
}

// remindEvent kirim push ke peserta opt-in yang belum pernah diingatkan
func remindEvent(db *gorm.DB, fcm *notifService.FcmService, ev *eventModel.EventModel) {
	type target struct {
		EnrollmentID string  `gorm:"column:enrollment_id"`
		FcmToken     *string `gorm:"column:fcm_token"`
	}
	var targets []target
	if err := db.Table("enrollments").
		Select("enrollments.enrollment_id, users.fcm_token").
		Joins("JOIN users ON users.id = enrollments.enrollment_user_id").
		Where(`enrollments.enrollment_event_id = ?
		       AND enrollments.enrollment_reminder_sent = ?
		       AND users.is_active = ? AND users.is_deleted = ?
		       AND users.is_event_reminder = ?
		       AND users.fcm_token IS NOT NULL`,
			ev.EventID, false, true, false, true).
		Scan(&targets).Error; err != nil {
		log.Printf("[REMINDER] Gagal ambil peserta event %s: %v", ev.EventID, err)
		return
	}
	if len(targets) == 0 {
		return
	}

	tokens := make([]string, 0, len(targets))
	enrollmentIDs := make([]string, 0, len(targets))
	for _, t := range targets {
		if t.FcmToken != nil && *t.FcmToken != "" {
			tokens = append(tokens, *t.FcmToken)
		}
		enrollmentIDs = append(enrollmentIDs, t.EnrollmentID)
	}

	res := fcm.SendBulkPush(tokens, "Reminder event",
		fmt.Sprintf("%s mulai besok jam %s, jangan lupa hadir!", ev.EventTitle, ev.EventTime),
		map[string]string{"type": "event_reminder", "event_id": ev.EventID.String()})

	// Tandai terkirim sebelum apa pun yang lain; kalaupun sebagian push gagal,
	// lebih baik user kehilangan satu reminder daripada dapat dobel.
	if err := db.Model(&enrollModel.EnrollmentModel{}).
		Where("enrollment_id IN ?", enrollmentIDs).
		UpdateColumn("enrollment_reminder_sent", true).Error; err != nil {
		log.Printf("[REMINDER] Gagal tandai reminder_sent event %s: %v", ev.EventID, err)
	}

	if len(res.InvalidTokens) > 0 {
		if err := db.Model(&userModel.UserModel{}).
			Where("fcm_token IN ?", res.InvalidTokens).
			UpdateColumn("fcm_token", nil).Error; err != nil {
			log.Printf("[REMINDER] Gagal bersihkan token invalid: %v", err)
		}
	}

	log.Printf("[REMINDER] Event %s: %d push terkirim, %d token gagal",
		ev.EventTitle, res.SuccessCount, len(res.FailedTokens))
}

// combineDateTime gabungkan tanggal event dengan jam "HH:MM"; jam tidak
// valid dianggap tengah malam.
func combineDateTime(date time.Time, hhmm string) time.Time {
	base := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	t, err := time.Parse("15:04", strings.TrimSpace(hhmm))
	if err != nil {
		return base
	}
	return base.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute)
}
