package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OutsideEventModel: event usulan user (non-katalog), poin menunggu approval admin.
// Setelah approved tidak bisa diubah maupun dihapus; reject = hapus baris.
type OutsideEventModel struct {
	OutsideEventID          uuid.UUID `gorm:"column:outside_event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"outside_event_id"`
	OutsideEventTitle       string    `gorm:"column:outside_event_title;type:varchar(255);not null"                  json:"outside_event_title"`
	OutsideEventDescription string    `gorm:"column:outside_event_description;type:text"                             json:"outside_event_description"`
	OutsideEventPointValue  int       `gorm:"column:outside_event_point_value;not null"                              json:"outside_event_point_value"`
	OutsideEventDate        time.Time `gorm:"column:outside_event_date;type:timestamptz;not null"                    json:"outside_event_date"`
	OutsideEventApproved    bool      `gorm:"column:outside_event_approved;not null;default:false"                   json:"outside_event_approved"`
	OutsideEventUserID      uuid.UUID `gorm:"column:outside_event_user_id;type:uuid;not null;index:idx_outside_events_user_id" json:"outside_event_user_id"`

	OutsideEventCreatedAt time.Time `gorm:"column:outside_event_created_at;type:timestamptz;autoCreateTime" json:"outside_event_created_at"`
}

func (OutsideEventModel) TableName() string {
	return "outside_events"
}

func (e *OutsideEventModel) BeforeCreate(tx *gorm.DB) error {
	if e.OutsideEventID == uuid.Nil {
		e.OutsideEventID = uuid.New()
	}
	return nil
}
