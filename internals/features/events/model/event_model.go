package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"eventpoint_backend/internals/constants"
)

type EventModel struct {
	EventID          uuid.UUID `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventTitle       string    `gorm:"column:event_title;type:varchar(255);not null"                  json:"event_title"`
	EventDescription string    `gorm:"column:event_description;type:text"                             json:"event_description"`
	EventPointValue  int       `gorm:"column:event_point_value;not null;default:0"                    json:"event_point_value"`
	EventDate        time.Time `gorm:"column:event_date;type:timestamptz;not null;index:idx_events_date" json:"event_date"`
	EventTime        string    `gorm:"column:event_time;type:varchar(20);not null"                    json:"event_time"`
	EventMaxStudent  int       `gorm:"column:event_max_student;not null"                              json:"event_max_student"`

	// Counter terenrol; invariant: event_student_enrolled <= event_max_student.
	// Increment dilakukan lewat conditional UPDATE, bukan read-then-write.
	EventStudentEnrolled int `gorm:"column:event_student_enrolled;not null;default:0" json:"event_student_enrolled"`

	EventType string `gorm:"column:event_type;type:varchar(10);not null;default:'INSIDE'" json:"event_type"`

	EventCreatedAt time.Time `gorm:"column:event_created_at;type:timestamptz;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time `gorm:"column:event_updated_at;type:timestamptz;autoUpdateTime" json:"event_updated_at"`
}

func (EventModel) TableName() string {
	return "events"
}

func (e *EventModel) BeforeCreate(tx *gorm.DB) error {
	if e.EventID == uuid.Nil {
		e.EventID = uuid.New()
	}
	if e.EventType == "" {
		e.EventType = constants.EventTypeInside
	}
	return nil
}
