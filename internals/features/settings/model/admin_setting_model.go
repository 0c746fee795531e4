package model

import "time"

// AdminSettingModel: baris konfigurasi tunggal (PK selalu 1).
// Semua flag perilaku global dibaca dari sini, bukan dari kolom per-admin.
type AdminSettingModel struct {
	AdminSettingID int `gorm:"column:admin_setting_id;primaryKey" json:"admin_setting_id"`

	AutoApprovePoint  bool `gorm:"column:auto_approve_point;not null;default:false"    json:"auto_approve_point"`
	AllowCustomEvent  bool `gorm:"column:allow_custom_event;not null;default:true"     json:"allow_custom_event"`
	NotifyEventCreate bool `gorm:"column:notify_on_event_create;not null;default:true" json:"notify_on_event_create"`
	EventReminders    bool `gorm:"column:event_reminders;not null;default:true"        json:"event_reminders"`

	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (AdminSettingModel) TableName() string {
	return "admin_settings"
}

// AdminSettingRowID: id baris singleton.
const AdminSettingRowID = 1
