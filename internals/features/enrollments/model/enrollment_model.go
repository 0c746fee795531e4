package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventpoint_backend/internals/constants"
)

// EnrollmentModel: relasi user↔event pembawa status workflow.
// Invariant:
//   - status mulai dari JOIN
//   - enrollment_claim_point hanya boleh transisi false→true
//   - poin diberikan maksimal sekali per enrollment, atomik dengan transisi status
//
// Pasangan (user_id, event_id) unik:
//
//	CREATE UNIQUE INDEX ux_enrollments_user_event ON enrollments (enrollment_user_id, enrollment_event_id);
type EnrollmentModel struct {
	EnrollmentID      uuid.UUID `gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"enrollment_id"`
	EnrollmentUserID  uuid.UUID `gorm:"column:enrollment_user_id;type:uuid;not null;uniqueIndex:ux_enrollments_user_event" json:"enrollment_user_id"`
	EnrollmentEventID uuid.UUID `gorm:"column:enrollment_event_id;type:uuid;not null;uniqueIndex:ux_enrollments_user_event" json:"enrollment_event_id"`

	EnrollmentStatus     string `gorm:"column:enrollment_status;type:varchar(10);not null;default:'JOIN'" json:"enrollment_status"`
	EnrollmentClaimPoint bool   `gorm:"column:enrollment_claim_point;not null;default:false"              json:"enrollment_claim_point"`

	// Penanda reminder H-24 sudah terkirim (at-most-once per enrollment)
	EnrollmentReminderSent bool `gorm:"column:enrollment_reminder_sent;not null;default:false" json:"enrollment_reminder_sent"`

	EnrollmentCreatedAt time.Time `gorm:"column:enrollment_created_at;type:timestamptz;autoCreateTime" json:"enrollment_created_at"`
}

func (EnrollmentModel) TableName() string {
	return "enrollments"
}

func (e *EnrollmentModel) BeforeCreate(tx *gorm.DB) error {
	if e.EnrollmentID == uuid.Nil {
		e.EnrollmentID = uuid.New()
	}
	if e.EnrollmentStatus == "" {
		e.EnrollmentStatus = constants.EnrollStatusJoin
	}
	return nil
}
