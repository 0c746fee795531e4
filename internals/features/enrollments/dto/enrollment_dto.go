package dto

import (
	"time"

	"github.com/google/uuid"

	model "eventpoint_backend/internals/features/enrollments/model"
)

/* ===================== REQUESTS ===================== */

// Klaim batch: semua id harus ada di DB, kalau ada yang hilang seluruh
// batch ditolak (id yang hilang disebut satu per satu di pesan error).
type ClaimPointsRequest struct {
	EnrollmentIDs []uuid.UUID `json:"enrollment_ids" validate:"required,min=1,dive,required"`
}

// Admin mengubah status satu enrollment: ATTENDED | SCANNED | REJECTED
type UpdateEnrollmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ATTENDED SCANNED REJECTED"`
}

/* ===================== RESPONSES ===================== */

type EnrollmentResponse struct {
	EnrollmentID         uuid.UUID `json:"enrollment_id"`
	EnrollmentUserID     uuid.UUID `json:"enrollment_user_id"`
	EnrollmentEventID    uuid.UUID `json:"enrollment_event_id"`
	EnrollmentStatus     string    `json:"enrollment_status"`
	EnrollmentClaimPoint bool      `json:"enrollment_claim_point"`
	EnrollmentCreatedAt  time.Time `json:"enrollment_created_at"`
}

func ToEnrollmentResponse(m *model.EnrollmentModel) EnrollmentResponse {
	return EnrollmentResponse{
		EnrollmentID:         m.EnrollmentID,
		EnrollmentUserID:     m.EnrollmentUserID,
		EnrollmentEventID:    m.EnrollmentEventID,
		EnrollmentStatus:     m.EnrollmentStatus,
		EnrollmentClaimPoint: m.EnrollmentClaimPoint,
		EnrollmentCreatedAt:  m.EnrollmentCreatedAt,
	}
}

// ClaimedEnrollmentResponse: antrean klaim manual untuk admin (ikut detail
// user & event supaya admin tidak perlu query tambahan)
type ClaimedEnrollmentResponse struct {
	EnrollmentID         uuid.UUID `json:"enrollment_id"`
	EnrollmentStatus     string    `json:"enrollment_status"`
	EnrollmentClaimPoint bool      `json:"enrollment_claim_point"`
	EnrollmentCreatedAt  time.Time `json:"enrollment_created_at"`

	UserID   uuid.UUID `json:"user_id"`
	UserName string    `json:"user_name"`

	EventID         uuid.UUID `json:"event_id"`
	EventTitle      string    `json:"event_title"`
	EventPointValue int       `json:"event_point_value"`
	EventDate       time.Time `json:"event_date"`
}

// UserEnrollmentResponse: daftar enrollment milik user + detail event-nya
type UserEnrollmentResponse struct {
	EnrollmentID         uuid.UUID `json:"enrollment_id"`
	EnrollmentStatus     string    `json:"enrollment_status"`
	EnrollmentClaimPoint bool      `json:"enrollment_claim_point"`
	EnrollmentCreatedAt  time.Time `json:"enrollment_created_at"`

	EventID         uuid.UUID `json:"event_id"`
	EventTitle      string    `json:"event_title"`
	EventDate       time.Time `json:"event_date"`
	EventTime       string    `json:"event_time"`
	EventPointValue int       `json:"event_point_value"`
}

// ClaimPointsResult: ringkasan hasil klaim batch
type ClaimPointsResult struct {
	Claimed      int  `json:"claimed"`
	AutoApproved bool `json:"auto_approved"`
	PointAwarded int  `json:"point_awarded"`
}
