package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "eventpoint_backend/internals/features/events/model"
)

/* ===================== REQUESTS ===================== */

// Create: user_id diambil dari token oleh controller (BUKAN dari body)
type CreateOutsideEventRequest struct {
	OutsideEventTitle       string `json:"outside_event_title" validate:"required,min=3,max=100"`
	OutsideEventDescription string `json:"outside_event_description" validate:"required,min=3"`
	OutsideEventPointValue  int    `json:"outside_event_point_value" validate:"gte=0"` // 0 diperbolehkan
	OutsideEventDate        string `json:"outside_event_date" validate:"required,datetime=2006-01-02"` // YYYY-MM-DD
}

func (r CreateOutsideEventRequest) ToModel(userID uuid.UUID) *model.OutsideEventModel {
	d, _ := time.Parse("2006-01-02", strings.TrimSpace(r.OutsideEventDate))

	return &model.OutsideEventModel{
		OutsideEventTitle:       strings.TrimSpace(r.OutsideEventTitle),
		OutsideEventDescription: strings.TrimSpace(r.OutsideEventDescription),
		OutsideEventPointValue:  r.OutsideEventPointValue,
		OutsideEventDate:        d,
		OutsideEventApproved:    false,
		OutsideEventUserID:      userID,
	}
}

/* ===================== RESPONSES ===================== */

type OutsideEventResponse struct {
	OutsideEventID          uuid.UUID `json:"outside_event_id"`
	OutsideEventTitle       string    `json:"outside_event_title"`
	OutsideEventDescription string    `json:"outside_event_description"`
	OutsideEventPointValue  int       `json:"outside_event_point_value"`
	OutsideEventDate        time.Time `json:"outside_event_date"`
	OutsideEventApproved    bool      `json:"outside_event_approved"`
	OutsideEventUserID      uuid.UUID `json:"outside_event_user_id"`
	OutsideEventCreatedAt   time.Time `json:"outside_event_created_at"`
}

func ToOutsideEventResponse(m *model.OutsideEventModel) OutsideEventResponse {
	return OutsideEventResponse{
		OutsideEventID:          m.OutsideEventID,
		OutsideEventTitle:       m.OutsideEventTitle,
		OutsideEventDescription: m.OutsideEventDescription,
		OutsideEventPointValue:  m.OutsideEventPointValue,
		OutsideEventDate:        m.OutsideEventDate,
		OutsideEventApproved:    m.OutsideEventApproved,
		OutsideEventUserID:      m.OutsideEventUserID,
		OutsideEventCreatedAt:   m.OutsideEventCreatedAt,
	}
}

// OutsideEventWithUserResponse: daftar pending untuk admin, ikut nama pengajunya
type OutsideEventWithUserResponse struct {
	OutsideEventResponse
	UserName string `json:"user_name"`
}
