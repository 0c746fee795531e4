package dto

import (
	"time"

	model "eventpoint_backend/internals/features/settings/model"
)

/* ===================== REQUESTS ===================== */

// Update parsial: hanya flag yang dikirim yang diubah
type UpdateAdminSettingRequest struct {
	AutoApprovePoint  *bool `json:"auto_approve_point" validate:"omitempty"`
	AllowCustomEvent  *bool `json:"allow_custom_event" validate:"omitempty"`
	NotifyEventCreate *bool `json:"notify_on_event_create" validate:"omitempty"`
	EventReminders    *bool `json:"event_reminders" validate:"omitempty"`
}

func (r *UpdateAdminSettingRequest) ApplyToModel(m *model.AdminSettingModel) {
	if r.AutoApprovePoint != nil {
		m.AutoApprovePoint = *r.AutoApprovePoint
	}
	if r.AllowCustomEvent != nil {
		m.AllowCustomEvent = *r.AllowCustomEvent
	}
	if r.NotifyEventCreate != nil {
		m.NotifyEventCreate = *r.NotifyEventCreate
	}
	if r.EventReminders != nil {
		m.EventReminders = *r.EventReminders
	}
}

// Toggle notifikasi per-user
type UpdateUserNotifySettingRequest struct {
	IsEventApproveNotify *bool `json:"is_event_approve_notify" validate:"omitempty"`
	IsNewEventNotify     *bool `json:"is_new_event_notify" validate:"omitempty"`
	IsEventReminder      *bool `json:"is_event_reminder" validate:"omitempty"`
}

/* ===================== RESPONSES ===================== */

type AdminSettingResponse struct {
	AutoApprovePoint  bool      `json:"auto_approve_point"`
	AllowCustomEvent  bool      `json:"allow_custom_event"`
	NotifyEventCreate bool      `json:"notify_on_event_create"`
	EventReminders    bool      `json:"event_reminders"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func ToAdminSettingResponse(m *model.AdminSettingModel) AdminSettingResponse {
	return AdminSettingResponse{
		AutoApprovePoint:  m.AutoApprovePoint,
		AllowCustomEvent:  m.AllowCustomEvent,
		NotifyEventCreate: m.NotifyEventCreate,
		EventReminders:    m.EventReminders,
		UpdatedAt:         m.UpdatedAt,
	}
}

type UserNotifySettingResponse struct {
	IsEventApproveNotify bool `json:"is_event_approve_notify"`
	IsNewEventNotify     bool `json:"is_new_event_notify"`
	IsEventReminder      bool `json:"is_event_reminder"`
}
