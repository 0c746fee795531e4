package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"eventpoint_backend/internals/constants"
	model "eventpoint_backend/internals/features/events/model"
)

/* ===================== REQUESTS ===================== */

type CreateEventRequest struct {
	EventTitle       string `json:"event_title" validate:"required,min=3,max=100"`
	EventDescription string `json:"event_description" validate:"required,min=3"`
	EventPointValue  int    `json:"event_point_value" validate:"gte=0"` // 0 = event gratis tanpa poin
	EventDate        string `json:"event_date" validate:"required,datetime=2006-01-02"` // YYYY-MM-DD
	EventTime        string `json:"event_time" validate:"required,max=20"`
	EventMaxStudent  int    `json:"event_max_student" validate:"required,gte=1"`
	EventType        string `json:"event_type" validate:"omitempty,oneof=INSIDE OUTSIDE"`
}

// ToModel: builder untuk create. student_enrolled selalu mulai dari 0.
func (r CreateEventRequest) ToModel() *model.EventModel {
	d, _ := time.Parse("2006-01-02", strings.TrimSpace(r.EventDate))

	m := &model.EventModel{
		EventTitle:           strings.TrimSpace(r.EventTitle),
		EventDescription:     strings.TrimSpace(r.EventDescription),
		EventPointValue:      r.EventPointValue,
		EventDate:            d,
		EventTime:            strings.TrimSpace(r.EventTime),
		EventMaxStudent:      r.EventMaxStudent,
		EventStudentEnrolled: 0,
		EventType:            constants.EventTypeInside,
	}
	if t := strings.TrimSpace(r.EventType); t != "" {
		m.EventType = t
	}
	return m
}

/* ===================== UPDATE (partial) ===================== */

type UpdateEventRequest struct {
	EventTitle       *string `json:"event_title" validate:"omitempty,min=3,max=100"`
	EventDescription *string `json:"event_description" validate:"omitempty,min=3"`
	EventPointValue  *int    `json:"event_point_value" validate:"omitempty,gte=0"`
	EventDate        *string `json:"event_date" validate:"omitempty,datetime=2006-01-02"`
	EventTime        *string `json:"event_time" validate:"omitempty,max=20"`
	EventMaxStudent  *int    `json:"event_max_student" validate:"omitempty,gte=1"`
}

// ApplyToModel: terapkan hanya field yang dikirim.
// max_student tidak boleh turun di bawah student_enrolled (dicek di service).
func (r *UpdateEventRequest) ApplyToModel(m *model.EventModel) {
	if r.EventTitle != nil {
		m.EventTitle = strings.TrimSpace(*r.EventTitle)
	}
	if r.EventDescription != nil {
		m.EventDescription = strings.TrimSpace(*r.EventDescription)
	}
	if r.EventPointValue != nil {
		m.EventPointValue = *r.EventPointValue
	}
	if r.EventDate != nil {
		if ds := strings.TrimSpace(*r.EventDate); ds != "" {
			if parsed, err := time.Parse("2006-01-02", ds); err == nil {
				m.EventDate = parsed
			}
		}
	}
	if r.EventTime != nil {
		m.EventTime = strings.TrimSpace(*r.EventTime)
	}
	if r.EventMaxStudent != nil {
		m.EventMaxStudent = *r.EventMaxStudent
	}
}

/* ===================== RESPONSES ===================== */

type EventResponse struct {
	EventID              uuid.UUID `json:"event_id"`
	EventTitle           string    `json:"event_title"`
	EventDescription     string    `json:"event_description"`
	EventPointValue      int       `json:"event_point_value"`
	EventDate            time.Time `json:"event_date"`
	EventTime            string    `json:"event_time"`
	EventMaxStudent      int       `json:"event_max_student"`
	EventStudentEnrolled int       `json:"event_student_enrolled"`
	EventType            string    `json:"event_type"`
	EventCreatedAt       time.Time `json:"event_created_at"`
}

func ToEventResponse(m *model.EventModel) EventResponse {
	return EventResponse{
		EventID:              m.EventID,
		EventTitle:           m.EventTitle,
		EventDescription:     m.EventDescription,
		EventPointValue:      m.EventPointValue,
		EventDate:            m.EventDate,
		EventTime:            m.EventTime,
		EventMaxStudent:      m.EventMaxStudent,
		EventStudentEnrolled: m.EventStudentEnrolled,
		EventType:            m.EventType,
		EventCreatedAt:       m.EventCreatedAt,
	}
}

// UpcomingEventResponse: event + penanda apakah user pemanggil sudah terdaftar
type UpcomingEventResponse struct {
	EventResponse
	IsEnrolled bool `json:"is_enrolled"`
}

// EventStatsResponse: rekap per-user untuk dashboard
type EventStatsResponse struct {
	TotalJoined   int64 `json:"total_joined"`
	TotalAttended int64 `json:"total_attended"`
}
