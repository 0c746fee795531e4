package dto

import (
	"time"

	"github.com/google/uuid"

	model "eventpoint_backend/internals/features/attendance/model"
)

// Record tidak punya request body: user_id dari token, tanggal selalu
// server-side (now UTC) supaya tidak bisa absen mundur.

/* ===================== RESPONSES ===================== */

type AttendanceResponse struct {
	AttendanceID        uuid.UUID `json:"attendance_id"`
	AttendanceUserID    uuid.UUID `json:"attendance_user_id"`
	AttendanceStatus    string    `json:"attendance_status"`
	AttendanceDate      time.Time `json:"attendance_date"`
	AttendanceCreatedAt time.Time `json:"attendance_created_at"`
}

func ToAttendanceResponse(m *model.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID:        m.AttendanceID,
		AttendanceUserID:    m.AttendanceUserID,
		AttendanceStatus:    m.AttendanceStatus,
		AttendanceDate:      m.AttendanceDate,
		AttendanceCreatedAt: m.AttendanceCreatedAt,
	}
}

// AttendanceWithUserResponse: listing per tanggal untuk admin
type AttendanceWithUserResponse struct {
	AttendanceResponse
	UserName string `json:"user_name"`
}
