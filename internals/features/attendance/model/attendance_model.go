package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceModel: catatan kehadiran harian. Maksimal satu baris per user
// per hari kalender UTC, dijaga oleh unique index (user, day) — bukan cuma
// count-then-create, supaya dua check-in serentak tidak lolos dua-duanya.
type AttendanceModel struct {
	AttendanceID     uuid.UUID `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`
	AttendanceUserID uuid.UUID `gorm:"column:attendance_user_id;type:uuid;not null;uniqueIndex:ux_attendances_user_day" json:"attendance_user_id"`

	AttendanceStatus string    `gorm:"column:attendance_status;type:varchar(10);not null;default:'PRESENT'" json:"attendance_status"`
	AttendanceDate   time.Time `gorm:"column:attendance_date;type:timestamptz;not null;index"               json:"attendance_date"`

	// Hari kalender UTC turunan dari attendance_date; diisi BeforeCreate
	AttendanceDay time.Time `gorm:"column:attendance_day;type:date;not null;uniqueIndex:ux_attendances_user_day" json:"-"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;type:timestamptz;autoCreateTime" json:"attendance_created_at"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}

func (a *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if a.AttendanceID == uuid.Nil {
		a.AttendanceID = uuid.New()
	}
	if a.AttendanceDate.IsZero() {
		a.AttendanceDate = time.Now().UTC()
	}
	u := a.AttendanceDate.UTC()
	a.AttendanceDay = time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return nil
}
